package cmd

import (
	"context"
	"fmt"
	"os"
	"sort"

	"envcraft/internal/config"
	"envcraft/internal/console"
	"envcraft/internal/diff"
	"envcraft/internal/envfile"
	"envcraft/internal/format"
	"envcraft/internal/logger"
	"envcraft/internal/paths"
	"envcraft/internal/report"
	"envcraft/internal/schema"
	"envcraft/internal/version"
)

// handleCheck validates an env file against a schema. Exit code 1 means the
// file failed validation, 2 means the inputs could not be read or parsed.
func handleCheck(ctx context.Context, conf config.AppConfig, state CmdState, args []string) int {
	schemaPath, envPath := args[0], args[1]

	s, err := schema.Load(schemaPath)
	if err != nil {
		logger.Error(ctx, "Unable to load schema {{_File_}}%s{{|-|}}: %v", schemaPath, err)
		return 2
	}
	f, err := envfile.Load(envPath)
	if err != nil {
		logger.Error(ctx, "Unable to load env file {{_File_}}%s{{|-|}}: %v", envPath, err)
		return 2
	}

	for _, raw := range f.Malformed() {
		logger.Debug(ctx, "Skipping malformed line: %s", raw)
	}

	issues := schema.Validate(s, f)
	for _, line := range report.Validation(issues) {
		console.Println(line)
	}

	if !issues.Valid() {
		return 1
	}
	return 0
}

// handleDiff compares two env files entry by entry. A non-empty diff is exit
// code 0 unless --fail-on-diff was given.
func handleDiff(ctx context.Context, conf config.AppConfig, state CmdState, args []string) int {
	leftPath, rightPath := args[0], args[1]

	left, err := envfile.Load(leftPath)
	if err != nil {
		logger.Error(ctx, "Unable to load env file {{_File_}}%s{{|-|}}: %v", leftPath, err)
		return 2
	}
	right, err := envfile.Load(rightPath)
	if err != nil {
		logger.Error(ctx, "Unable to load env file {{_File_}}%s{{|-|}}: %v", rightPath, err)
		return 2
	}

	redact := state.Redact || conf.Diff.Redact
	entries := diff.Compare(left, right)
	for _, line := range report.Diff(entries, redact) {
		console.Println(line)
	}

	if state.FailOnDiff && len(entries) > 0 {
		return 1
	}
	return 0
}

// handleFormat renders the canonical form of an env file to stdout, or
// rewrites the file in place under --write.
func handleFormat(ctx context.Context, conf config.AppConfig, state CmdState, args []string) int {
	path := args[0]

	f, err := envfile.Load(path)
	if err != nil {
		logger.Error(ctx, "Unable to load env file {{_File_}}%s{{|-|}}: %v", path, err)
		return 2
	}

	formatted := format.Render(f)

	if state.Write {
		if err := envfile.WriteInPlace(path, formatted); err != nil {
			logger.Error(ctx, "Unable to write env file {{_File_}}%s{{|-|}}: %v", path, err)
			return 2
		}
		logger.Notice(ctx, "Formatted: {{_File_}}%s{{|-|}}", path)
		return 0
	}

	fmt.Print(formatted)
	return 0
}

// handleFormatCheck reports whether a file is already in canonical form
// without modifying it. A dirty file is exit code 1.
func handleFormatCheck(ctx context.Context, conf config.AppConfig, state CmdState, args []string) int {
	path := args[0]

	data, err := os.ReadFile(path)
	if err != nil {
		logger.Error(ctx, "Unable to load env file {{_File_}}%s{{|-|}}: failed to read file: %v", path, err)
		return 2
	}

	original := string(data)
	formatted := format.Render(envfile.Parse(original))

	lines := format.CheckLines(original, formatted)
	if lines == nil {
		console.Println(fmt.Sprintf("{{_Pass_}}✓ %s is formatted{{|-|}}", path))
		return 0
	}

	console.Println(fmt.Sprintf("{{_Fail_}}✗ %s is not formatted{{|-|}}", path))
	for _, line := range lines {
		console.Println(line)
	}
	return 1
}

// handleSchemaList prints the schema's keys and types, either as plain lines
// or as a table.
func handleSchemaList(ctx context.Context, args []string, asTable bool) int {
	schemaPath := args[0]

	s, err := schema.Load(schemaPath)
	if err != nil {
		logger.Error(ctx, "Unable to load schema {{_File_}}%s{{|-|}}: %v", schemaPath, err)
		return 2
	}

	keys := s.Keys()
	sort.Strings(keys)

	if asTable {
		data := make([]string, 0, len(keys)*2)
		for _, key := range keys {
			data = append(data, fmt.Sprintf("{{_Var_}}%s{{|-|}}", key),
				fmt.Sprintf("{{_SchemaType_}}%s{{|-|}}", s.Fields[key]))
		}
		console.PrintTable([]string{"Key", "Type"}, data, true)
		return 0
	}

	for _, key := range keys {
		console.Println(fmt.Sprintf("{{_Var_}}%s{{|-|}}: {{_SchemaType_}}%s{{|-|}}", key, s.Fields[key]))
	}
	return 0
}

// handleConfigShow prints the active configuration and where it came from.
func handleConfigShow(ctx context.Context, conf config.AppConfig) int {
	console.Println(fmt.Sprintf("Config file: {{_File_}}%s{{|-|}}", paths.GetConfigFilePath()))
	console.Println(fmt.Sprintf("output.color = %s", conf.Output.Color))
	console.Println(fmt.Sprintf("diff.redact = %t", conf.Diff.Redact))
	return 0
}

func handleVersion(ctx context.Context) int {
	console.Println(fmt.Sprintf("{{_ApplicationName_}}%s{{|-|}} {{_Version_}}%s{{|-|}}",
		version.ApplicationName, version.Version))
	console.Println(fmt.Sprintf("Commit: %s", version.Commit))
	console.Println(fmt.Sprintf("Built:  %s", version.BuildDate))
	return 0
}
