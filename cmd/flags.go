package cmd

import (
	"github.com/spf13/pflag"
)

// InitFlags defines the pflags used for argument validation and help.
func InitFlags() {
	if pflag.Lookup("verbose") != nil {
		return // already initialized
	}

	// Modifiers
	pflag.BoolP("verbose", "v", false, "Verbose output")
	pflag.BoolP("debug", "x", false, "Debug output")
	pflag.BoolP("redact", "r", false, "Hide values in diff output")
	pflag.BoolP("write", "w", false, "Write formatted output back to the file")
	pflag.Bool("fail-on-diff", false, "Exit non-zero when the diff is not empty")
	pflag.BoolP("help", "h", false, "Show help")

	// Analysis commands
	pflag.BoolP("check", "c", false, "Validate a .env file against a YAML schema")
	pflag.BoolP("diff", "d", false, "Show differences between two .env files")
	pflag.BoolP("format", "f", false, "Normalize a .env file")
	pflag.Bool("format-check", false, "Check whether a .env file is in canonical form")

	// Schema inspection
	pflag.Bool("schema-list", false, "List schema keys and types")
	pflag.Bool("schema-table", false, "List schema keys and types as a table")

	// Misc
	pflag.Bool("config-show", false, "Show configuration")
	pflag.BoolP("version", "V", false, "Show version")
}
