// Package envfile parses .env-style files into an ordered line model plus a
// derived key map. Parsing is total: unparseable lines are kept as Malformed
// lines instead of aborting, so callers decide how strict to be.
package envfile

import (
	"sort"
	"strings"
)

// LineKind identifies the kind of a parsed line.
type LineKind int

const (
	// LineBlank is a line that is empty after trimming.
	LineBlank LineKind = iota
	// LineComment is a line whose trimmed form starts with '#'.
	LineComment
	// LineEntry is a recognized KEY=VALUE assignment.
	LineEntry
	// LineMalformed is a line with no '=' or an empty key.
	LineMalformed
)

// Line is a single parsed line. Exactly one interpretation applies:
//   - LineBlank:     all fields empty
//   - LineComment:   Raw holds the trimmed comment text including '#'
//   - LineEntry:     Key and Value hold the parsed assignment
//   - LineMalformed: Raw holds the original line text verbatim
type Line struct {
	Kind  LineKind
	Raw   string
	Key   string
	Value string
}

// File is the full structural parse of one file: all lines in order plus a
// key map derived from the Entry lines. When a key appears more than once,
// the last occurrence wins in the map; every occurrence stays in Lines.
type File struct {
	Lines []Line

	// entries maps key (case-sensitive, as found) to the index in Lines of
	// the winning Entry.
	entries map[string]int
}

// Parse parses .env content into a File. It never fails; the number of
// parsed lines always equals the number of input lines.
func Parse(text string) *File {
	f := &File{entries: make(map[string]int)}

	if text == "" {
		return f
	}

	// "a\nb\n" is two lines, "\n" is one blank line
	text = strings.TrimSuffix(text, "\n")

	for _, raw := range strings.Split(text, "\n") {
		raw = strings.TrimSuffix(raw, "\r")
		line := parseLine(raw)
		if line.Kind == LineEntry {
			f.entries[line.Key] = len(f.Lines)
		}
		f.Lines = append(f.Lines, line)
	}

	return f
}

func parseLine(raw string) Line {
	trimmed := strings.TrimSpace(raw)

	if trimmed == "" {
		return Line{Kind: LineBlank}
	}

	if strings.HasPrefix(trimmed, "#") {
		return Line{Kind: LineComment, Raw: trimmed}
	}

	key, rest, found := strings.Cut(raw, "=")
	if !found {
		return Line{Kind: LineMalformed, Raw: raw}
	}

	key = strings.TrimSpace(key)
	if key == "" {
		return Line{Kind: LineMalformed, Raw: raw}
	}

	// Trimming and one layer of matching quotes are the only value
	// transformations. Anything past the first '=' is otherwise opaque,
	// including inline '#' text.
	value := stripQuotes(strings.TrimSpace(rest))

	return Line{Kind: LineEntry, Key: key, Value: value}
}

// stripQuotes removes one layer of surrounding quotes if they match.
// The interior is used verbatim; no escape processing.
func stripQuotes(value string) string {
	if len(value) >= 2 {
		first := value[0]
		last := value[len(value)-1]
		if (first == '"' && last == '"') || (first == '\'' && last == '\'') {
			return value[1 : len(value)-1]
		}
	}
	return value
}

// Get returns the value for a key from the key map.
func (f *File) Get(key string) (string, bool) {
	idx, ok := f.entries[key]
	if !ok {
		return "", false
	}
	return f.Lines[idx].Value, true
}

// Has reports whether the key map contains key.
func (f *File) Has(key string) bool {
	_, ok := f.entries[key]
	return ok
}

// Keys returns all keys in the key map, sorted.
func (f *File) Keys() []string {
	keys := make([]string, 0, len(f.entries))
	for key := range f.entries {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// Len returns the number of distinct keys.
func (f *File) Len() int {
	return len(f.entries)
}

// Malformed returns the raw text of all malformed lines, in file order.
func (f *File) Malformed() []string {
	var lines []string
	for _, line := range f.Lines {
		if line.Kind == LineMalformed {
			lines = append(lines, line.Raw)
		}
	}
	return lines
}
