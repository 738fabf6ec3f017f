package schema

import (
	"sort"

	"envcraft/internal/envfile"
)

// IssueKind classifies a validation issue.
type IssueKind int

const (
	// MissingKey: the schema requires a key the file does not define.
	MissingKey IssueKind = iota
	// TypeError: the key is present but its value does not coerce to the
	// schema type.
	TypeError
	// ExtraKey: the file defines a key the schema does not know. Callers
	// treat these as warnings, not errors.
	ExtraKey
)

// Issue is a single validation finding.
type Issue struct {
	Kind     IssueKind
	Key      string
	Value    string // TypeError only: the offending raw value
	Expected Type   // TypeError only
}

// Issues is an ordered collection of validation findings.
type Issues []Issue

// Errors returns the number of error-class issues (missing keys and type
// errors). Extra keys do not count.
func (issues Issues) Errors() int {
	n := 0
	for _, issue := range issues {
		if issue.Kind != ExtraKey {
			n++
		}
	}
	return n
}

// Warnings returns the number of extra-key warnings.
func (issues Issues) Warnings() int {
	return len(issues) - issues.Errors()
}

// Valid reports whether validation passed. Warnings do not fail validation.
func (issues Issues) Valid() bool {
	return issues.Errors() == 0
}

// Validate checks a parsed file against a schema. All issues are collected
// before returning; nothing short-circuits. Ordering is deterministic:
// missing keys (sorted), then type errors (sorted), then extra keys (sorted).
func Validate(s *Schema, f *envfile.File) Issues {
	var missing, typeErrors, extra Issues

	for key, expected := range s.Fields {
		value, ok := f.Get(key)
		if !ok {
			missing = append(missing, Issue{Kind: MissingKey, Key: key})
			continue
		}
		if !expected.Accepts(value) {
			typeErrors = append(typeErrors, Issue{Kind: TypeError, Key: key, Value: value, Expected: expected})
		}
	}

	for _, key := range f.Keys() {
		if _, ok := s.Fields[key]; !ok {
			extra = append(extra, Issue{Kind: ExtraKey, Key: key})
		}
	}

	byKey := func(issues Issues) func(i, j int) bool {
		return func(i, j int) bool { return issues[i].Key < issues[j].Key }
	}
	sort.Slice(missing, byKey(missing))
	sort.Slice(typeErrors, byKey(typeErrors))
	// extra is already sorted: f.Keys() returns sorted keys

	result := make(Issues, 0, len(missing)+len(typeErrors)+len(extra))
	result = append(result, missing...)
	result = append(result, typeErrors...)
	result = append(result, extra...)
	return result
}
