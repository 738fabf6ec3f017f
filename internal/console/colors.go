package console

// Raw ANSI color and attribute codes
const (
	// Reset
	CodeReset = "\033[0m"

	// Modifiers
	CodeBold          = "\033[1m"
	CodeDim           = "\033[2m"
	CodeItalic        = "\033[3m"
	CodeUnderline     = "\033[4m"
	CodeBlink         = "\033[5m"
	CodeReverse       = "\033[7m"
	CodeStrikethrough = "\033[9m"

	// Modifier resets
	CodeBoldOff          = "\033[22m"
	CodeDimOff           = "\033[22m"
	CodeItalicOff        = "\033[23m"
	CodeUnderlineOff     = "\033[24m"
	CodeBlinkOff         = "\033[25m"
	CodeReverseOff       = "\033[27m"
	CodeStrikethroughOff = "\033[29m"

	// Foreground
	CodeBlack   = "\033[30m"
	CodeRed     = "\033[31m"
	CodeGreen   = "\033[32m"
	CodeYellow  = "\033[33m"
	CodeBlue    = "\033[34m"
	CodeMagenta = "\033[35m"
	CodeCyan    = "\033[36m"
	CodeWhite   = "\033[37m"

	// Foreground (bright)
	CodeBrightBlack   = "\033[90m"
	CodeBrightRed     = "\033[91m"
	CodeBrightGreen   = "\033[92m"
	CodeBrightYellow  = "\033[93m"
	CodeBrightBlue    = "\033[94m"
	CodeBrightMagenta = "\033[95m"
	CodeBrightCyan    = "\033[96m"
	CodeBrightWhite   = "\033[97m"

	// Background
	CodeBlackBg   = "\033[40m"
	CodeRedBg     = "\033[41m"
	CodeGreenBg   = "\033[42m"
	CodeYellowBg  = "\033[43m"
	CodeBlueBg    = "\033[44m"
	CodeMagentaBg = "\033[45m"
	CodeCyanBg    = "\033[46m"
	CodeWhiteBg   = "\033[47m"
)

// AppColors defines the program-wide semantic styles in tag format
// (fg:bg:flags, resolved through the style parser).
type AppColors struct {
	// Log levels
	Trace       string
	Debug       string
	Info        string
	Notice      string
	Warn        string
	Error       string
	Fatal       string
	FatalFooter string

	// Analysis results
	Pass        string
	Fail        string
	DiffAdded   string
	DiffRemoved string
	DiffChanged string

	// Entities
	ApplicationName        string
	Version                string
	File                   string
	Var                    string
	SchemaType             string
	UserCommand            string
	UserCommandError       string
	UserCommandErrorMarker string

	// Usage
	UsageCommand string
	UsageOption  string
	UsageFile    string
	UsageVar     string
}

// Colors is the global instance for application output (stdout)
var Colors AppColors

func init() {
	Colors = AppColors{
		Trace:       "{{|blue|}}",
		Debug:       "{{|blue|}}",
		Info:        "{{|blue|}}",
		Notice:      "{{|green|}}",
		Warn:        "{{|yellow|}}",
		Error:       "{{|red|}}",
		Fatal:       "{{|white:red|}}",
		FatalFooter: "{{|-|}}",

		Pass:        "{{|green|}}",
		Fail:        "{{|red|}}",
		DiffAdded:   "{{|green|}}",
		DiffRemoved: "{{|red|}}",
		DiffChanged: "{{|yellow|}}",

		ApplicationName:        "{{|cyan::B|}}",
		Version:                "{{|cyan|}}",
		File:                   "{{|cyan::B|}}",
		Var:                    "{{|magenta|}}",
		SchemaType:             "{{|cyan|}}",
		UserCommand:            "{{|yellow::B|}}",
		UserCommandError:       "{{|red::U|}}",
		UserCommandErrorMarker: "{{|red|}}",

		UsageCommand: "{{|yellow::B|}}",
		UsageOption:  "{{|yellow|}}",
		UsageFile:    "{{|cyan::B|}}",
		UsageVar:     "{{|magenta|}}",
	}
	RegisterBaseTags()
}

// RegisterBaseTags registers the shorthand aliases used throughout the
// application. The AppColors fields themselves are registered as
// {{_FieldName_}} by BuildColorMap.
func RegisterBaseTags() {
	RegisterColor("_NC_", "{{|-|}}")
	RegisterColor("_BD_", "{{|::B|}}")
	RegisterColor("_UL_", "{{|::U|}}")
	RegisterColor("_DM_", "{{|::D|}}")
}
