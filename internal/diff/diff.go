// Package diff computes the structural delta between two parsed .env files.
package diff

import (
	"sort"

	"envcraft/internal/envfile"
)

// Kind classifies a single difference.
type Kind int

const (
	// Added: the key only exists in the right file.
	Added Kind = iota
	// Removed: the key only exists in the left file.
	Removed
	// Changed: the key exists in both files with differing values.
	Changed
)

// Entry is a single difference. Old is set for Removed and Changed, New for
// Added and Changed. Both values are always carried; whether they are shown
// is the rendering layer's choice (redaction).
type Entry struct {
	Kind Kind
	Key  string
	Old  string
	New  string
}

// Compare diffs the key maps of two files. Keys present in both with equal
// values (post trim/unquote, exact string comparison) are omitted. The result
// is sorted by key for deterministic output regardless of file order.
func Compare(left, right *envfile.File) []Entry {
	var entries []Entry

	for _, key := range left.Keys() {
		oldValue, _ := left.Get(key)
		newValue, ok := right.Get(key)
		switch {
		case !ok:
			entries = append(entries, Entry{Kind: Removed, Key: key, Old: oldValue})
		case oldValue != newValue:
			entries = append(entries, Entry{Kind: Changed, Key: key, Old: oldValue, New: newValue})
		}
	}

	for _, key := range right.Keys() {
		if !left.Has(key) {
			newValue, _ := right.Get(key)
			entries = append(entries, Entry{Kind: Added, Key: key, New: newValue})
		}
	}

	sort.Slice(entries, func(i, j int) bool { return entries[i].Key < entries[j].Key })

	return entries
}
