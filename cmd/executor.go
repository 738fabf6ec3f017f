package cmd

import (
	"context"
	"log/slog"
	"strings"

	"envcraft/internal/config"
	"envcraft/internal/console"
	"envcraft/internal/logger"
)

// CmdState carries the modifier flags that apply to a single command group.
type CmdState struct {
	Redact     bool
	Write      bool
	FailOnDiff bool
}

// Execute runs the parsed command groups in order. Execution stops at the
// first command that returns a non-zero exit code, and that code is returned.
func Execute(ctx context.Context, groups []CommandGroup) int {
	conf := config.LoadAppConfig()
	console.ApplyColorMode(conf.Output.Color)

	if len(groups) == 0 {
		PrintHelp("")
		return 0
	}

	for _, group := range groups {
		state := CmdState{}
		for _, flag := range group.Flags {
			switch flag {
			case "-v", "--verbose":
				logger.SetLevel(logger.LevelInfo)
			case "-x", "--debug":
				logger.SetLevel(logger.LevelTrace)
			case "-r", "--redact":
				state.Redact = true
			case "-w", "--write":
				state.Write = true
			case "--fail-on-diff":
				state.FailOnDiff = true
			}
		}

		if group.Command == "" {
			logger.Fatal(ctx, "Modifier flags given without a command: {{_UserCommand_}}%s{{|-|}}",
				strings.Join(group.Flags, " "))
		}

		logger.Trace(ctx, "Running command group: %v", group.FullSlice())

		var code int
		switch group.Command {
		case "-c", "--check":
			code = handleCheck(ctx, conf, state, group.Args)
		case "-d", "--diff":
			code = handleDiff(ctx, conf, state, group.Args)
		case "-f", "--format":
			code = handleFormat(ctx, conf, state, group.Args)
		case "--format-check":
			code = handleFormatCheck(ctx, conf, state, group.Args)
		case "--schema-list":
			code = handleSchemaList(ctx, group.Args, false)
		case "--schema-table":
			code = handleSchemaList(ctx, group.Args, true)
		case "--config-show":
			code = handleConfigShow(ctx, conf)
		case "-V", "--version":
			code = handleVersion(ctx)
		case "-h", "--help":
			arg := ""
			if len(group.Args) > 0 {
				arg = group.Args[0]
			}
			PrintHelp(arg)
		}

		if code != 0 {
			slog.Log(ctx, logger.LevelTrace, "Command returned non-zero exit code", "command", group.Command, "code", code)
			return code
		}
	}

	return 0
}
