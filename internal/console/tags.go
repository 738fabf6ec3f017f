package console

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	// semanticRegex matches {{_content_}} format for semantic tags
	semanticRegex = regexp.MustCompile(`\{\{_([A-Za-z0-9_]+)_\}\}`)

	// directRegex matches {{|content|}} format for direct style codes
	directRegex = regexp.MustCompile(`\{\{\|([A-Za-z0-9_:\-#]+)\|\}\}`)

	// ansiRegex matches SGR escape sequences
	ansiRegex = regexp.MustCompile(`\x1b\[[0-9;]*m`)
)

// ExpandTags converts semantic tags to the standardized {{|style|}} format.
// Unknown semantic tags are stripped.
func ExpandTags(text string) string {
	ensureMaps()

	return semanticRegex.ReplaceAllStringFunc(text, func(match string) string {
		content := strings.ToLower(match[3 : len(match)-3])
		if tag, ok := semanticMap[content]; ok {
			return tag
		}
		return ""
	})
}

// ToANSI converts semantic and direct tags to ANSI escape sequences.
// When stdout is not a terminal, all tags are stripped instead.
func ToANSI(text string) string {
	ensureMaps()
	if !isTTYGlobal {
		return Strip(text)
	}

	// Pass 1: semantic tags expand to {{|style|}} form
	text = ExpandTags(text)

	// Pass 2: direct tags resolve to ANSI
	return directRegex.ReplaceAllStringFunc(text, func(match string) string {
		content := match[3 : len(match)-3]
		return parseStyleCodeToANSI(content)
	})
}

// Strip removes all semantic and direct tags as well as ANSI escape
// sequences, leaving plain text.
func Strip(text string) string {
	text = semanticRegex.ReplaceAllString(text, "")
	text = directRegex.ReplaceAllString(text, "")
	return StripANSI(text)
}

// StripANSI removes ANSI SGR escape sequences from text.
func StripANSI(text string) string {
	return ansiRegex.ReplaceAllString(text, "")
}

// Parse is a convenience alias for ToANSI
func Parse(text string) string {
	return ToANSI(text)
}

// Println prints a line with tags resolved to ANSI codes
func Println(a ...any) {
	fmt.Println(ToANSI(fmt.Sprint(a...)))
}
