package cmd

import (
	"fmt"
	"strings"

	"envcraft/internal/console"
	"envcraft/internal/version"
)

type usageEntry struct {
	names   []string
	args    string
	summary string
}

var commandUsage = []usageEntry{
	{[]string{"-c", "--check"}, "<schema.yaml> <file.env>", "Validate an env file against a YAML schema"},
	{[]string{"-d", "--diff"}, "<left.env> <right.env>", "Show entry differences between two env files"},
	{[]string{"-f", "--format"}, "<file.env>", "Print the canonical form of an env file"},
	{[]string{"--format-check"}, "<file.env>", "Check whether an env file is already canonical"},
	{[]string{"--schema-list"}, "<schema.yaml>", "List schema keys and their types"},
	{[]string{"--schema-table"}, "<schema.yaml>", "List schema keys and their types as a table"},
	{[]string{"--config-show"}, "", "Show the active configuration"},
	{[]string{"-V", "--version"}, "", "Show version information"},
	{[]string{"-h", "--help"}, "[command]", "Show this help, or help for one command"},
}

var modifierUsage = []usageEntry{
	{[]string{"-v", "--verbose"}, "", "Verbose output for the following command"},
	{[]string{"-x", "--debug"}, "", "Debug output for the following command"},
	{[]string{"-r", "--redact"}, "", "Hide values in diff output"},
	{[]string{"-w", "--write"}, "", "Write formatted output back to the file"},
	{[]string{"--fail-on-diff"}, "", "Exit non-zero when the diff is not empty"},
}

func findUsage(name string) *usageEntry {
	for i := range commandUsage {
		for _, n := range commandUsage[i].names {
			if n == name {
				return &commandUsage[i]
			}
		}
	}
	for i := range modifierUsage {
		for _, n := range modifierUsage[i].names {
			if n == name {
				return &modifierUsage[i]
			}
		}
	}
	return nil
}

func (e usageEntry) render() string {
	names := make([]string, len(e.names))
	for i, n := range e.names {
		names[i] = fmt.Sprintf("{{_UsageCommand_}}%s{{|-|}}", n)
	}
	line := strings.Join(names, ", ")
	if e.args != "" {
		line += fmt.Sprintf(" {{_UsageVar_}}%s{{|-|}}", e.args)
	}
	return line
}

// GetUsage returns the usage lines for a single command or modifier, or the
// empty string when the name is unknown.
func GetUsage(name string) string {
	entry := findUsage(name)
	if entry == nil {
		return ""
	}
	return fmt.Sprintf("%s\n   %s", entry.render(), entry.summary)
}

// PrintHelp prints the full usage screen, or detailed usage for one command
// when arg names it.
func PrintHelp(arg string) {
	if arg != "" {
		if usage := GetUsage(arg); usage != "" {
			console.Println(usage)
			return
		}
		console.Println(fmt.Sprintf("Unknown command '{{_UserCommand_}}%s{{|-|}}'\n", arg))
	}

	console.Println(fmt.Sprintf("{{_ApplicationName_}}%s{{|-|}} validates, diffs and formats .env files.", version.ApplicationName))
	console.Println("")
	console.Println(fmt.Sprintf("Usage: {{_UserCommand_}}%s{{|-|}} [modifiers] <command> [args] ...", version.CommandName))
	console.Println("")
	console.Println("Commands:")
	printUsageBlock(commandUsage)
	console.Println("")
	console.Println("Modifiers (apply to the command that follows them):")
	printUsageBlock(modifierUsage)
	console.Println("")
	console.Println("Multiple commands run left to right and stop at the first failure, e.g.")
	console.Println(fmt.Sprintf("   {{_UserCommand_}}%s -c schema.yaml .env -w -f .env{{|-|}}", version.CommandName))
}

func printUsageBlock(entries []usageEntry) {
	for _, e := range entries {
		console.Println("   " + e.render())
		console.Println("      " + e.summary)
	}
}
