package console

import (
	"reflect"
	"strings"
)

var (
	// semanticMap stores semantic tag -> standardized {{|style|}} mappings
	// (e.g., "pass" -> "{{|green|}}")
	semanticMap map[string]string

	// ansiMap stores color/flag names -> ANSI code mappings
	ansiMap map[string]string

	// attributeMap stores non-color attribute names -> ANSI code mappings
	attributeMap map[string]string
)

func init() {
	semanticMap = make(map[string]string)
	ansiMap = make(map[string]string)

	// Non-color attributes. Colors are resolved via ansiMap or the
	// detected terminal profile.
	attributeMap = map[string]string{
		"reset":          CodeReset,
		"-":              CodeReset,
		"bold":           CodeBold,
		"dim":            CodeDim,
		"underline":      CodeUnderline,
		"blink":          CodeBlink,
		"reverse":        CodeReverse,
		"italic":         CodeItalic,
		"strikethrough":  CodeStrikethrough,
		"-bold":          CodeBoldOff,
		"-dim":           CodeDimOff,
		"-underline":     CodeUnderlineOff,
		"-blink":         CodeBlinkOff,
		"-reverse":       CodeReverseOff,
		"-italic":        CodeItalicOff,
		"-strikethrough": CodeStrikethroughOff,
	}
}

// ensureMaps ensures color maps are built if they were missed by init
func ensureMaps() {
	if len(ansiMap) == 0 {
		BuildColorMap()
	}
}

// BuildColorMap initializes the ANSI code mappings and semantic tag
// definitions. Existing semantic tags registered by callers are preserved.
func BuildColorMap() {
	ansiMap = make(map[string]string)
	if semanticMap == nil {
		semanticMap = make(map[string]string)
	}

	// Flag characters (case-sensitive: upper = on, lower = off)
	ansiMap["-"] = CodeReset
	ansiMap["reset"] = CodeReset
	ansiMap["B"] = CodeBold
	ansiMap["b"] = CodeBoldOff
	ansiMap["D"] = CodeDim
	ansiMap["d"] = CodeDimOff
	ansiMap["U"] = CodeUnderline
	ansiMap["u"] = CodeUnderlineOff
	ansiMap["L"] = CodeBlink
	ansiMap["l"] = CodeBlinkOff
	ansiMap["R"] = CodeReverse
	ansiMap["r"] = CodeReverseOff
	ansiMap["I"] = CodeItalic
	ansiMap["i"] = CodeItalicOff
	ansiMap["S"] = CodeStrikethrough
	ansiMap["s"] = CodeStrikethroughOff

	// Foreground colors
	ansiMap["black"] = CodeBlack
	ansiMap["red"] = CodeRed
	ansiMap["green"] = CodeGreen
	ansiMap["yellow"] = CodeYellow
	ansiMap["blue"] = CodeBlue
	ansiMap["magenta"] = CodeMagenta
	ansiMap["cyan"] = CodeCyan
	ansiMap["white"] = CodeWhite

	// Foreground colors (bright)
	ansiMap["bright-black"] = CodeBrightBlack
	ansiMap["bright-red"] = CodeBrightRed
	ansiMap["bright-green"] = CodeBrightGreen
	ansiMap["bright-yellow"] = CodeBrightYellow
	ansiMap["bright-blue"] = CodeBrightBlue
	ansiMap["bright-magenta"] = CodeBrightMagenta
	ansiMap["bright-cyan"] = CodeBrightCyan
	ansiMap["bright-white"] = CodeBrightWhite

	// Background colors (with "bg" suffix for fg:bg parsing)
	ansiMap["blackbg"] = CodeBlackBg
	ansiMap["redbg"] = CodeRedBg
	ansiMap["greenbg"] = CodeGreenBg
	ansiMap["yellowbg"] = CodeYellowBg
	ansiMap["bluebg"] = CodeBlueBg
	ansiMap["magentabg"] = CodeMagentaBg
	ansiMap["cyanbg"] = CodeCyanBg
	ansiMap["whitebg"] = CodeWhiteBg

	// Build semantic map from the Colors struct
	val := reflect.ValueOf(Colors)
	typ := val.Type()
	for i := 0; i < val.NumField(); i++ {
		key := strings.ToLower(typ.Field(i).Name)
		semanticMap[key] = val.Field(i).String()
	}
}

// RegisterSemanticTag registers a semantic tag with its {{|style|}} value
func RegisterSemanticTag(name, taggedValue string) {
	ensureMaps()
	semanticMap[strings.ToLower(name)] = taggedValue
}

// RegisterColor registers a semantic tag, accepting the legacy underscore
// wrapped form (e.g. "_NC_").
func RegisterColor(name, value string) {
	name = strings.TrimPrefix(name, "_")
	name = strings.TrimSuffix(name, "_")
	RegisterSemanticTag(name, value)
}

// GetColorDefinition returns the {{|style|}} value for a semantic tag
func GetColorDefinition(name string) string {
	ensureMaps()
	name = strings.TrimPrefix(name, "_")
	name = strings.TrimSuffix(name, "_")
	return semanticMap[strings.ToLower(name)]
}

// UnregisterColor removes a semantic tag
func UnregisterColor(name string) {
	ensureMaps()
	name = strings.TrimPrefix(name, "_")
	name = strings.TrimSuffix(name, "_")
	delete(semanticMap, strings.ToLower(name))
}

// ResetCustomColors clears all semantic tags and rebuilds from the Colors
// struct and base tag registrations.
func ResetCustomColors() {
	semanticMap = make(map[string]string)
	BuildColorMap()
	RegisterBaseTags()
}
