package schema

import (
	"testing"

	"envcraft/internal/envfile"
)

func mustSchema(t *testing.T, yaml string) *Schema {
	t.Helper()
	s, err := Parse([]byte(yaml))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	return s
}

func TestValidateSuccess(t *testing.T) {
	s := mustSchema(t, "PORT: int\nDEBUG: bool")
	f := envfile.Parse("PORT=8080\nDEBUG=true\n")

	issues := Validate(s, f)
	if !issues.Valid() {
		t.Errorf("Validate = %+v, want no issues", issues)
	}
	if len(issues) != 0 {
		t.Errorf("len(issues) = %d, want 0", len(issues))
	}
}

func TestValidateMissingKey(t *testing.T) {
	s := mustSchema(t, "PORT: int\nDEBUG: bool")
	f := envfile.Parse("PORT=8080\n")

	issues := Validate(s, f)
	if issues.Valid() {
		t.Fatal("Validate should fail with missing key")
	}
	if len(issues) != 1 || issues[0].Kind != MissingKey || issues[0].Key != "DEBUG" {
		t.Errorf("issues = %+v, want single MissingKey(DEBUG)", issues)
	}
}

func TestValidateMissingCountExact(t *testing.T) {
	// MissingKey count must equal |keys(S) \ keys(F)| exactly.
	s := mustSchema(t, "A: string\nB: string\nC: string\nD: string")
	f := envfile.Parse("B=here\nD=here\nX=extra\n")

	issues := Validate(s, f)
	missing := 0
	for _, issue := range issues {
		if issue.Kind == MissingKey {
			missing++
		}
	}
	if missing != 2 {
		t.Errorf("missing count = %d, want 2", missing)
	}
}

func TestValidateExtraKeyIsWarning(t *testing.T) {
	s := mustSchema(t, "PORT: int")
	f := envfile.Parse("PORT=8080\nEXTRA=value\n")

	issues := Validate(s, f)
	if !issues.Valid() {
		t.Error("extra keys must not fail validation")
	}
	if issues.Warnings() != 1 {
		t.Errorf("Warnings() = %d, want 1", issues.Warnings())
	}
	if issues.Errors() != 0 {
		t.Errorf("Errors() = %d, want 0", issues.Errors())
	}
	if len(issues) != 1 || issues[0].Kind != ExtraKey || issues[0].Key != "EXTRA" {
		t.Errorf("issues = %+v, want single ExtraKey(EXTRA)", issues)
	}
}

func TestValidateTypeErrors(t *testing.T) {
	// Two type errors, zero missing keys.
	s := mustSchema(t, "PORT: int\nDEBUG: bool")
	f := envfile.Parse("PORT=abc\nDEBUG=maybe\n")

	issues := Validate(s, f)
	if issues.Errors() != 2 {
		t.Fatalf("Errors() = %d, want 2", issues.Errors())
	}
	for _, issue := range issues {
		if issue.Kind != TypeError {
			t.Errorf("issue %+v should be TypeError", issue)
		}
	}
	// Sorted: DEBUG before PORT
	if issues[0].Key != "DEBUG" || issues[1].Key != "PORT" {
		t.Errorf("type errors order = %q, %q; want DEBUG, PORT", issues[0].Key, issues[1].Key)
	}
	if issues[0].Value != "maybe" || issues[0].Expected != TypeBool {
		t.Errorf("issue = %+v, want raw value and expected type carried", issues[0])
	}
}

func TestValidateBoolCaseInsensitive(t *testing.T) {
	s := mustSchema(t, "A: bool\nB: bool\nC: bool\nD: bool")
	f := envfile.Parse("A=true\nB=TRUE\nC=False\nD=FALSE\n")

	if issues := Validate(s, f); !issues.Valid() {
		t.Errorf("Validate = %+v, want all bool spellings accepted", issues)
	}
}

func TestValidateOrdering(t *testing.T) {
	// Missing first, then type errors, then extras, each group sorted.
	s := mustSchema(t, "ZMISS: int\nAMISS: int\nBAD: int\nOK: string")
	f := envfile.Parse("BAD=nope\nOK=fine\nZEXTRA=1\nAEXTRA=2\n")

	issues := Validate(s, f)
	wantKeys := []string{"AMISS", "ZMISS", "BAD", "AEXTRA", "ZEXTRA"}
	wantKinds := []IssueKind{MissingKey, MissingKey, TypeError, ExtraKey, ExtraKey}
	if len(issues) != len(wantKeys) {
		t.Fatalf("issues = %+v, want %d entries", issues, len(wantKeys))
	}
	for i := range wantKeys {
		if issues[i].Key != wantKeys[i] || issues[i].Kind != wantKinds[i] {
			t.Errorf("issues[%d] = %+v, want %v(%s)", i, issues[i], wantKinds[i], wantKeys[i])
		}
	}
}

func TestValidateSchemaKeysCaseSensitive(t *testing.T) {
	s := mustSchema(t, "PORT: int")
	f := envfile.Parse("port=8080\n")

	issues := Validate(s, f)
	// "port" does not satisfy "PORT": one missing, one extra.
	if issues.Errors() != 1 || issues.Warnings() != 1 {
		t.Errorf("issues = %+v, want MissingKey(PORT) and ExtraKey(port)", issues)
	}
}
