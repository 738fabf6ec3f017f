// Package paths resolves the application's on-disk locations through XDG
// base directories.
package paths

import (
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"

	"envcraft/internal/version"
)

// ConfigHomeOverride replaces xdg.ConfigHome when non-empty (test hook).
var ConfigHomeOverride string

// GetConfigDir returns the directory holding the application config file.
func GetConfigDir() string {
	home := xdg.ConfigHome
	if ConfigHomeOverride != "" {
		home = ConfigHomeOverride
	}
	return filepath.Join(home, strings.ToLower(version.ApplicationName))
}

// GetConfigFilePath returns the full path of the TOML config file.
func GetConfigFilePath() string {
	return filepath.Join(GetConfigDir(), strings.ToLower(version.ApplicationName)+".toml")
}
