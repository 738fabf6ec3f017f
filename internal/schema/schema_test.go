package schema

import (
	"errors"
	"testing"
)

func TestParseSchema(t *testing.T) {
	yaml := `
PORT: int
DEBUG: bool
DATABASE_URL: string
`
	s, err := Parse([]byte(yaml))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	tests := []struct {
		key      string
		expected Type
	}{
		{"PORT", TypeInt},
		{"DEBUG", TypeBool},
		{"DATABASE_URL", TypeString},
	}

	for _, tt := range tests {
		got, ok := s.Fields[tt.key]
		if !ok {
			t.Errorf("Fields[%q] missing", tt.key)
			continue
		}
		if got != tt.expected {
			t.Errorf("Fields[%q] = %v, want %v", tt.key, got, tt.expected)
		}
	}
}

func TestParseTypeAliases(t *testing.T) {
	tests := []struct {
		token    string
		expected Type
	}{
		{"string", TypeString},
		{"str", TypeString},
		{"STR", TypeString},
		{"int", TypeInt},
		{"integer", TypeInt},
		{"Integer", TypeInt},
		{"bool", TypeBool},
		{"boolean", TypeBool},
		{"BOOLEAN", TypeBool},
	}

	for _, tt := range tests {
		got, err := ParseType(tt.token, "KEY")
		if err != nil {
			t.Errorf("ParseType(%q) error: %v", tt.token, err)
			continue
		}
		if got != tt.expected {
			t.Errorf("ParseType(%q) = %v, want %v", tt.token, got, tt.expected)
		}
	}
}

func TestParseSchemaUnknownType(t *testing.T) {
	_, err := Parse([]byte("PORT: number\n"))
	if err == nil {
		t.Fatal("Parse should reject unknown type tokens")
	}

	var unknownErr *UnknownTypeError
	if !errors.As(err, &unknownErr) {
		t.Fatalf("error = %v, want *UnknownTypeError", err)
	}
	if unknownErr.Key != "PORT" || unknownErr.Token != "number" {
		t.Errorf("UnknownTypeError = %+v, want key PORT and token number", unknownErr)
	}
}

func TestParseSchemaBadYAML(t *testing.T) {
	if _, err := Parse([]byte("PORT: [not\n")); err == nil {
		t.Error("Parse should fail on invalid YAML")
	}
}

func TestTypeAccepts(t *testing.T) {
	tests := []struct {
		typ   Type
		value string
		ok    bool
	}{
		{TypeString, "", true},
		{TypeString, "anything at all", true},
		{TypeInt, "42", true},
		{TypeInt, "-10", true},
		{TypeInt, "0", true},
		{TypeInt, "abc", false},
		{TypeInt, "3.14", false},
		{TypeInt, "1,000", false},
		{TypeInt, " 1", false},
		{TypeInt, "9223372036854775807", true},
		{TypeInt, "9223372036854775808", false}, // int64 overflow
		{TypeBool, "true", true},
		{TypeBool, "TRUE", true},
		{TypeBool, "False", true},
		{TypeBool, "FALSE", true},
		{TypeBool, "yes", false},
		{TypeBool, "no", false},
		{TypeBool, "1", false},
		{TypeBool, "0", false},
		{TypeBool, "", false},
	}

	for _, tt := range tests {
		if got := tt.typ.Accepts(tt.value); got != tt.ok {
			t.Errorf("%v.Accepts(%q) = %v, want %v", tt.typ, tt.value, got, tt.ok)
		}
	}
}

func TestTypeDescriptions(t *testing.T) {
	tests := []struct {
		typ      Type
		expected string
	}{
		{TypeString, "any string"},
		{TypeInt, "an integer (e.g., 42, -10)"},
		{TypeBool, "true or false"},
	}

	for _, tt := range tests {
		if got := tt.typ.Description(); got != tt.expected {
			t.Errorf("%v.Description() = %q, want %q", tt.typ, got, tt.expected)
		}
	}
}
