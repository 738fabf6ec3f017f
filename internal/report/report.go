// Package report renders analysis results as tagged console lines. The
// semantic tags strip to plain text on non-TTY output, so the rendered lines
// match the tool's documented plain output exactly.
package report

import (
	"fmt"

	"envcraft/internal/diff"
	"envcraft/internal/schema"
)

// Validation renders validation issues in report order plus the summary line.
func Validation(issues schema.Issues) []string {
	var lines []string

	for _, issue := range issues {
		switch issue.Kind {
		case schema.MissingKey:
			lines = append(lines, fmt.Sprintf(
				"{{_Error_}}error:{{|-|}} missing required key: {{_Var_}}%s{{|-|}}", issue.Key))
		case schema.TypeError:
			lines = append(lines, fmt.Sprintf(
				"{{_Error_}}error:{{|-|}} key '{{_Var_}}%s{{|-|}}' has invalid value '%s' (expected %s)",
				issue.Key, issue.Value, issue.Expected.Description()))
		case schema.ExtraKey:
			lines = append(lines, fmt.Sprintf(
				"{{_Warn_}}warning:{{|-|}} extra key not in schema: {{_Var_}}%s{{|-|}}", issue.Key))
		}
	}

	switch {
	case !issues.Valid():
		lines = append(lines, fmt.Sprintf(
			"{{_Fail_}}✗ validation failed with %d error(s){{|-|}}", issues.Errors()))
	case issues.Warnings() > 0:
		lines = append(lines, fmt.Sprintf(
			"{{_Pass_}}✓ validation passed with %d warning(s){{|-|}}", issues.Warnings()))
	default:
		lines = append(lines, "{{_Pass_}}✓ validation passed{{|-|}}")
	}

	return lines
}

// Diff renders diff entries. Under redact, values are omitted entirely and
// only the marker and key are shown.
func Diff(entries []diff.Entry, redact bool) []string {
	if len(entries) == 0 {
		return []string{"Files are identical"}
	}

	var lines []string
	for _, entry := range entries {
		lines = append(lines, diffLine(entry, redact))
	}
	lines = append(lines, "", fmt.Sprintf("%d difference(s) found", len(entries)))
	return lines
}

func diffLine(entry diff.Entry, redact bool) string {
	switch entry.Kind {
	case diff.Added:
		if redact {
			return fmt.Sprintf("{{_DiffAdded_}}+ %s{{|-|}}", entry.Key)
		}
		return fmt.Sprintf("{{_DiffAdded_}}+ %s=%s{{|-|}}", entry.Key, entry.New)
	case diff.Removed:
		if redact {
			return fmt.Sprintf("{{_DiffRemoved_}}- %s{{|-|}}", entry.Key)
		}
		return fmt.Sprintf("{{_DiffRemoved_}}- %s=%s{{|-|}}", entry.Key, entry.Old)
	default:
		if redact {
			return fmt.Sprintf("{{_DiffChanged_}}~ %s{{|-|}}", entry.Key)
		}
		return fmt.Sprintf("{{_DiffChanged_}}~ %s: %s → %s{{|-|}}", entry.Key, entry.Old, entry.New)
	}
}
