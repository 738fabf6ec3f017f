package version

import (
	"os"
	"path/filepath"
	"strings"
)

// ApplicationName is the human-readable name of the application.
var ApplicationName = "EnvCraft"

// CommandName is the name of the executable command (e.g., "envcraft").
// It is initialized dynamically from the executable filename.
var CommandName = "envcraft"

// Version is the current version of the application.
// This is intended to be overwritten at build time using:
// -ldflags "-X envcraft/internal/version.Version=vX.Y.Z"
var Version = "v0.0.0-dev"

// Commit is the git commit hash of the build.
var Commit = "none"

// BuildDate is the date the binary was built.
var BuildDate = "unknown"

func init() {
	// Dynamically determine the command name from the executable
	exePath := os.Args[0]
	baseName := filepath.Base(exePath)
	// Strip extension (e.g., .exe on Windows)
	ext := filepath.Ext(baseName)
	CommandName = strings.TrimSuffix(baseName, ext)

	// Fallback if the binary was run from a build artifact name (e.g. dev run)
	if strings.EqualFold(CommandName, "main") || CommandName == "" {
		CommandName = "envcraft"
	}
}
