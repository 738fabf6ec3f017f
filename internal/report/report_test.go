package report

import (
	"strings"
	"testing"

	"envcraft/internal/console"
	"envcraft/internal/diff"
	"envcraft/internal/envfile"
	"envcraft/internal/schema"
)

func plain(lines []string) []string {
	out := make([]string, len(lines))
	for i, line := range lines {
		out[i] = console.Strip(line)
	}
	return out
}

func TestValidationPassed(t *testing.T) {
	lines := plain(Validation(nil))
	if len(lines) != 1 || lines[0] != "✓ validation passed" {
		t.Errorf("lines = %v, want single pass summary", lines)
	}
}

func TestValidationWarningsOnly(t *testing.T) {
	issues := schema.Issues{{Kind: schema.ExtraKey, Key: "EXTRA"}}
	lines := plain(Validation(issues))

	want := []string{
		"warning: extra key not in schema: EXTRA",
		"✓ validation passed with 1 warning(s)",
	}
	if len(lines) != len(want) {
		t.Fatalf("lines = %v, want %v", lines, want)
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Errorf("lines[%d] = %q, want %q", i, lines[i], want[i])
		}
	}
}

func TestValidationFailed(t *testing.T) {
	issues := schema.Issues{
		{Kind: schema.MissingKey, Key: "API_KEY"},
		{Kind: schema.TypeError, Key: "PORT", Value: "abc", Expected: schema.TypeInt},
	}
	lines := plain(Validation(issues))

	want := []string{
		"error: missing required key: API_KEY",
		"error: key 'PORT' has invalid value 'abc' (expected an integer (e.g., 42, -10))",
		"✗ validation failed with 2 error(s)",
	}
	if len(lines) != len(want) {
		t.Fatalf("lines = %v, want %v", lines, want)
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Errorf("lines[%d] = %q, want %q", i, lines[i], want[i])
		}
	}
}

func TestDiffEmpty(t *testing.T) {
	lines := plain(Diff(nil, false))
	if len(lines) != 1 || lines[0] != "Files are identical" {
		t.Errorf("lines = %v, want identical message", lines)
	}
}

func TestDiffLines(t *testing.T) {
	entries := []diff.Entry{
		{Kind: diff.Changed, Key: "PORT", Old: "3000", New: "80"},
		{Kind: diff.Removed, Key: "REMOVED", Old: "gone"},
		{Kind: diff.Added, Key: "TOKEN", New: "abc123"},
	}
	lines := plain(Diff(entries, false))

	want := []string{
		"~ PORT: 3000 → 80",
		"- REMOVED=gone",
		"+ TOKEN=abc123",
		"",
		"3 difference(s) found",
	}
	if len(lines) != len(want) {
		t.Fatalf("lines = %v, want %v", lines, want)
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Errorf("lines[%d] = %q, want %q", i, lines[i], want[i])
		}
	}
}

func TestDiffRedactedDoesNotLeakValues(t *testing.T) {
	left := envfile.Parse("SECRET=hunter2\nSHARED=old_token\n")
	right := envfile.Parse("SHARED=new_token\nADDED=super_secret\n")

	lines := plain(Diff(diff.Compare(left, right), true))
	output := strings.Join(lines, "\n")

	for _, secret := range []string{"hunter2", "old_token", "new_token", "super_secret"} {
		if strings.Contains(output, secret) {
			t.Errorf("redacted output leaks %q: %q", secret, output)
		}
	}

	// Keys are still reported
	for _, key := range []string{"SECRET", "SHARED", "ADDED"} {
		if !strings.Contains(output, key) {
			t.Errorf("redacted output should still mention key %q", key)
		}
	}
}

func TestDiffRedactedMarkers(t *testing.T) {
	entries := []diff.Entry{
		{Kind: diff.Added, Key: "A", New: "1"},
		{Kind: diff.Removed, Key: "B", Old: "2"},
		{Kind: diff.Changed, Key: "C", Old: "3", New: "4"},
	}
	lines := plain(Diff(entries, true))

	want := []string{"+ A", "- B", "~ C", "", "3 difference(s) found"}
	for i := range want {
		if lines[i] != want[i] {
			t.Errorf("lines[%d] = %q, want %q", i, lines[i], want[i])
		}
	}
}
