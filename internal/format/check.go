package format

import (
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// CheckLines compares original text against its canonical form and returns a
// unified-style line diff with semantic color tags, one element per output
// line. An empty result means the text is already canonical.
func CheckLines(original, formatted string) []string {
	if original == formatted {
		return nil
	}

	dmp := diffmatchpatch.New()
	a, b, lineArray := dmp.DiffLinesToChars(original, formatted)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(a, b, false), lineArray)

	var out []string
	for _, d := range diffs {
		text := strings.TrimSuffix(d.Text, "\n")
		for _, line := range strings.Split(text, "\n") {
			switch d.Type {
			case diffmatchpatch.DiffDelete:
				out = append(out, "{{_DiffRemoved_}}- "+line+"{{|-|}}")
			case diffmatchpatch.DiffInsert:
				out = append(out, "{{_DiffAdded_}}+ "+line+"{{|-|}}")
			default:
				out = append(out, "  "+line)
			}
		}
	}
	return out
}
