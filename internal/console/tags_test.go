package console

import (
	"strings"
	"testing"

	"envcraft/internal/testutils"
)

func TestExpandTags(t *testing.T) {
	ResetCustomColors()
	RegisterColor("_TestColor_", "{{|red|}}")
	RegisterColor("_Complex_", "{{|blue:yellow:B|}}")
	defer ResetCustomColors()

	tests := []struct {
		input    string
		expected string
	}{
		// Basic pass-through
		{"Hello World", "Hello World"},
		{"{{|red|}}Red Text{{|-|}}", "{{|red|}}Red Text{{|-|}}"},

		// Semantic tag resolution
		{"{{_TestColor_}}Hello", "{{|red|}}Hello"},
		{"Prefix{{_TestColor_}}Suffix", "Prefix{{|red|}}Suffix"},
		{"{{_Complex_}}Bold", "{{|blue:yellow:B|}}Bold"},

		// Unknown tags are stripped
		{"{{_Unknown_}}text", "text"},

		// Mixed
		{"{{_TestColor_}}Red and {{_Complex_}}Complex", "{{|red|}}Red and {{|blue:yellow:B|}}Complex"},
	}

	var cases []testutils.TestCase
	for _, tt := range tests {
		actual := ExpandTags(tt.input)
		cases = append(cases, testutils.TestCase{
			Input:    tt.input,
			Expected: tt.expected,
			Actual:   actual,
			Pass:     actual == tt.expected,
		})
	}

	testutils.PrintTestTable(t, cases)
}

func TestToANSIWithTTY(t *testing.T) {
	old := SetTTY(true)
	defer SetTTY(old)

	out := ToANSI("{{|red|}}danger{{|-|}}")
	if out != CodeRed+"danger"+CodeReset {
		t.Errorf("ToANSI = %q, want red SGR wrapping", out)
	}
}

func TestToANSIStripsWithoutTTY(t *testing.T) {
	old := SetTTY(false)
	defer SetTTY(old)

	out := ToANSI("{{_Pass_}}✓ validation passed{{|-|}}")
	if out != "✓ validation passed" {
		t.Errorf("ToANSI = %q, want tags stripped on non-TTY", out)
	}
}

func TestStrip(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"{{_Pass_}}ok{{|-|}}", "ok"},
		{"{{|cyan::B|}}file{{|-|}}", "file"},
		{"\033[31mred\033[0m", "red"},
		{"plain", "plain"},
	}

	for _, tt := range tests {
		if got := Strip(tt.input); got != tt.expected {
			t.Errorf("Strip(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}

func TestStyleCodeFlags(t *testing.T) {
	ensureMaps()

	out := parseStyleCodeToANSI("cyan::B")
	if !strings.Contains(out, CodeCyan) || !strings.Contains(out, CodeBold) {
		t.Errorf("parseStyleCodeToANSI(cyan::B) = %q, want cyan and bold codes", out)
	}

	out = parseStyleCodeToANSI("white:red")
	if !strings.Contains(out, CodeWhite) || !strings.Contains(out, CodeRedBg) {
		t.Errorf("parseStyleCodeToANSI(white:red) = %q, want white fg and red bg", out)
	}

	if parseStyleCodeToANSI("-") != CodeReset {
		t.Error("parseStyleCodeToANSI(-) should reset")
	}
}
