// Package format re-serializes a parsed .env file into canonical form:
// trimmed values, uppercased keys, entries sorted by key, comments preserved.
//
// Comment policy: the comment/blank run before the first entry is a header
// block and stays at the top; a run immediately preceding an entry travels
// with that entry when entries are re-sorted; a run after the last entry
// stays at the end.
//
// Duplicate policy: occurrences that collapse to the same uppercased key
// emit a single line carrying the last occurrence's value, with the pinned
// comment runs of all occurrences kept in source order. Case-distinct keys
// like "a" and "A" collapse the same way.
//
// Malformed lines are dropped from formatted output.
package format

import (
	"sort"
	"strings"

	"envcraft/internal/envfile"
)

type formattedEntry struct {
	key      string // uppercased
	value    string
	comments []string // preceding comment/blank run, verbatim
}

// Render returns the canonical text for a parsed file.
func Render(f *envfile.File) string {
	var (
		header    []string
		pending   []string
		ordered   []*formattedEntry
		index     = make(map[string]*formattedEntry)
		seenEntry bool
	)

	for _, line := range f.Lines {
		switch line.Kind {
		case envfile.LineComment:
			if seenEntry {
				pending = append(pending, line.Raw)
			} else {
				header = append(header, line.Raw)
			}
		case envfile.LineBlank:
			if seenEntry {
				pending = append(pending, "")
			} else {
				header = append(header, "")
			}
		case envfile.LineEntry:
			seenEntry = true
			key := strings.ToUpper(line.Key)
			value := strings.TrimSpace(line.Value)
			if existing, ok := index[key]; ok {
				// Collapse: last value wins, comment runs merge in source order
				existing.value = value
				existing.comments = append(existing.comments, pending...)
			} else {
				entry := &formattedEntry{key: key, value: value, comments: pending}
				index[key] = entry
				ordered = append(ordered, entry)
			}
			pending = nil
		case envfile.LineMalformed:
			// dropped
		}
	}

	sort.SliceStable(ordered, func(i, j int) bool { return ordered[i].key < ordered[j].key })

	var out strings.Builder
	writeLine := func(s string) {
		out.WriteString(s)
		out.WriteByte('\n')
	}

	for _, comment := range header {
		writeLine(comment)
	}
	for _, entry := range ordered {
		for _, comment := range entry.comments {
			writeLine(comment)
		}
		writeLine(entry.key + "=" + entry.value)
	}
	// pending now holds the trailing run after the last entry
	for _, comment := range pending {
		writeLine(comment)
	}

	return out.String()
}
