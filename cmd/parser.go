package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"

	"envcraft/internal/strutil"
	"envcraft/internal/version"
)

// ParseError wraps argument parsing errors to provide rich output with the
// failing option highlighted and pointed at.
type ParseError struct {
	Args           []string // The full argument list passed to Parse
	Index          int      // The index where the error occurred
	Message        string   // The specific error message; %o expands to the failing option
	FailingCommand string   // The command being processed (e.g. "--check")
}

func (e *ParseError) Error() string {
	indent := "   "

	// Build the command line string with the failing option highlighted
	cmdLineParts := []string{fmt.Sprintf("{{_UserCommand_}}%s{{|-|}}", version.CommandName)}
	for i := 0; i <= e.Index && i < len(e.Args); i++ {
		str := e.Args[i]
		if i == e.Index {
			str = fmt.Sprintf("{{_UserCommandError_}}%s{{|-|}}", str)
		} else {
			str = fmt.Sprintf("{{_UserCommand_}}%s{{|-|}}", str)
		}
		cmdLineParts = append(cmdLineParts, str)
	}
	cmdLineStr := "'" + strings.Join(cmdLineParts, " ") + "'"

	// Caret pointing at the failing option
	caretOffset := len(indent) + 1 + len(version.CommandName) + 1
	for i := 0; i < e.Index && i < len(e.Args); i++ {
		caretOffset += len(e.Args[i]) + 1
	}
	pointerLine := strutil.Repeat(" ", caretOffset) + "{{_UserCommandErrorMarker_}}^{{|-|}}"

	failingOpt := ""
	if e.Index < len(e.Args) {
		failingOpt = e.Args[e.Index]
	}
	formattedMsg := strings.NewReplacer(
		"%c", fmt.Sprintf("'{{_UserCommand_}}%s{{|-|}}'", e.FailingCommand),
		"%o", fmt.Sprintf("'{{_UserCommand_}}%s{{|-|}}'", failingOpt),
	).Replace(e.Message)

	out := fmt.Sprintf("Error in command line:\n\n%s%s\n%s\n\n%s%s\n", indent, cmdLineStr, pointerLine, indent, formattedMsg)

	if e.FailingCommand != "" {
		out += fmt.Sprintf("\n%sUsage is:\n", indent)
		for _, line := range strings.Split(GetUsage(e.FailingCommand), "\n") {
			out += fmt.Sprintf("%s%s\n", indent, line)
		}
	} else {
		out += fmt.Sprintf("\n%sRun '{{_UserCommand_}}%s --help{{|-|}}' for usage.\n", indent, version.CommandName)
	}

	return out
}

// CommandGroup represents a parsed group of modifier flags and a command
// with its arguments.
type CommandGroup struct {
	Flags   []string
	Command string
	Args    []string
}

// FullSlice returns the reconstructed slice of strings for the group
func (cg CommandGroup) FullSlice() []string {
	var s []string
	s = append(s, cg.Flags...)
	if cg.Command != "" {
		s = append(s, cg.Command)
	}
	s = append(s, cg.Args...)
	return s
}

// Parse parses the raw command line arguments into groups of command
// operations. Modifier flags apply to the command that follows them and are
// reset between commands.
func Parse(args []string) ([]CommandGroup, error) {
	// Make sure flag definitions and help text are available
	InitFlags()

	modifiers := map[string]bool{
		"-v": true, "--verbose": true,
		"-x": true, "--debug": true,
		"-r": true, "--redact": true,
		"-w": true, "--write": true,
		"--fail-on-diff": true,
	}

	// Expand combined short flags (e.g. -rw -> -r -w)
	var expandedArgs []string
	for _, arg := range args {
		if strings.HasPrefix(arg, "-") && !strings.HasPrefix(arg, "--") && len(arg) > 2 {
			for _, c := range arg[1:] {
				expandedArgs = append(expandedArgs, fmt.Sprintf("-%c", c))
			}
		} else {
			expandedArgs = append(expandedArgs, arg)
		}
	}

	var groups []CommandGroup
	var currentGroup CommandGroup
	var lastCommand string

	i := 0
	for i < len(expandedArgs) {
		arg := expandedArgs[i]

		if !strings.HasPrefix(arg, "-") {
			return nil, &ParseError{Args: expandedArgs, Index: i, Message: "Invalid option %o", FailingCommand: lastCommand}
		}

		if modifiers[arg] {
			currentGroup.Flags = append(currentGroup.Flags, arg)
			lastCommand = arg
			i++
			continue
		}

		// Not a modifier: must be a known command flag
		cmdName := strings.TrimLeft(arg, "-")
		var validFlag *pflag.Flag
		if strings.HasPrefix(arg, "--") {
			validFlag = pflag.Lookup(cmdName)
		} else if len(cmdName) == 1 {
			validFlag = pflag.CommandLine.ShorthandLookup(cmdName)
		}
		if validFlag == nil {
			return nil, &ParseError{Args: expandedArgs, Index: i, Message: "Invalid option %o"}
		}

		currentGroup.Command = arg
		lastCommand = arg
		cmd := arg
		i++

		// Consume the command's arguments
		takeOne := func() bool {
			if i < len(expandedArgs) && !strings.HasPrefix(expandedArgs[i], "-") {
				currentGroup.Args = append(currentGroup.Args, expandedArgs[i])
				i++
				return true
			}
			return false
		}

		switch cmd {
		// Commands that require exactly TWO arguments
		case "-c", "--check", "-d", "--diff":
			for n := 0; n < 2; n++ {
				if !takeOne() {
					return nil, &ParseError{Args: expandedArgs, Index: i - 1, FailingCommand: cmd,
						Message: fmt.Sprintf("Command %%c requires two file arguments, got %d.", n)}
				}
			}

		// Commands that require exactly ONE argument
		case "-f", "--format", "--format-check", "--schema-list", "--schema-table":
			if !takeOne() {
				return nil, &ParseError{Args: expandedArgs, Index: i - 1, FailingCommand: cmd,
					Message: "Command %c requires a file argument."}
			}

		// Help allows an optional flag/command argument
		case "-h", "--help":
			if i < len(expandedArgs) && strings.HasPrefix(expandedArgs[i], "-") {
				currentGroup.Args = append(currentGroup.Args, expandedArgs[i])
				i++
			}

		// Commands that take NO arguments
		case "-V", "--version", "--config-show":
		}

		groups = append(groups, currentGroup)
		currentGroup = CommandGroup{}
	}

	// Trailing modifiers with no command
	if len(currentGroup.Flags) > 0 {
		groups = append(groups, currentGroup)
	}

	return groups, nil
}
