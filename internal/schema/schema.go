// Package schema loads flat YAML schema definitions (key -> type) and
// validates parsed .env files against them.
package schema

import (
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Type is a supported value type in a schema.
type Type int

const (
	TypeString Type = iota
	TypeInt
	TypeBool
)

// UnknownTypeError is returned when a schema maps a key to an unrecognized
// type token. It aborts schema loading; validation never starts.
type UnknownTypeError struct {
	Key   string
	Token string
}

func (e *UnknownTypeError) Error() string {
	return fmt.Sprintf("invalid type '%s' for key '%s' (expected: string, int, bool)", e.Token, e.Key)
}

// ParseType parses a type token into a Type. Tokens are case-insensitive;
// unrecognized tokens are rejected rather than defaulting to string.
func ParseType(token, key string) (Type, error) {
	switch strings.ToLower(token) {
	case "string", "str":
		return TypeString, nil
	case "int", "integer":
		return TypeInt, nil
	case "bool", "boolean":
		return TypeBool, nil
	default:
		return TypeString, &UnknownTypeError{Key: key, Token: token}
	}
}

// Accepts reports whether value coerces to this type.
func (t Type) Accepts(value string) bool {
	switch t {
	case TypeInt:
		_, err := strconv.ParseInt(value, 10, 64)
		return err == nil
	case TypeBool:
		lower := strings.ToLower(value)
		return lower == "true" || lower == "false"
	default:
		return true
	}
}

// Description returns a human-readable description of valid values,
// used in validation messages.
func (t Type) Description() string {
	switch t {
	case TypeInt:
		return "an integer (e.g., 42, -10)"
	case TypeBool:
		return "true or false"
	default:
		return "any string"
	}
}

func (t Type) String() string {
	switch t {
	case TypeInt:
		return "int"
	case TypeBool:
		return "bool"
	default:
		return "string"
	}
}

// Schema is a flat mapping from expected key names to required value types.
// Keys are case-sensitive and matched against entry keys verbatim.
type Schema struct {
	Fields map[string]Type
}

// Parse parses a schema from YAML content.
func Parse(data []byte) (*Schema, error) {
	var raw map[string]string
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse schema YAML: %w", err)
	}

	fields := make(map[string]Type, len(raw))
	for key, token := range raw {
		t, err := ParseType(token, key)
		if err != nil {
			return nil, err
		}
		fields[key] = t
	}

	return &Schema{Fields: fields}, nil
}

// Load reads and parses the schema file at path.
func Load(path string) (*Schema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read schema file: %w", err)
	}
	return Parse(data)
}

// Keys returns the schema's key names, sorted.
func (s *Schema) Keys() []string {
	keys := make([]string, 0, len(s.Fields))
	for key := range s.Fields {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
