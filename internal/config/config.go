package config

import (
	"os"
	"path/filepath"

	toml "github.com/pelletier/go-toml/v2"

	"envcraft/internal/paths"
)

// AppConfig holds the application configuration settings.
type AppConfig struct {
	Output OutputConfig `toml:"output"`
	Diff   DiffConfig   `toml:"diff"`
}

// OutputConfig holds terminal output related settings.
type OutputConfig struct {
	// Color is "auto", "always" or "never"
	Color string `toml:"color"`
}

// DiffConfig holds diff related settings.
type DiffConfig struct {
	// Redact hides values in diff output by default; the --redact flag
	// enables it per invocation
	Redact bool `toml:"redact"`
}

// Defaults returns the built-in configuration.
func Defaults() AppConfig {
	return AppConfig{
		Output: OutputConfig{Color: "auto"},
		Diff:   DiffConfig{Redact: false},
	}
}

// LoadAppConfig reads the configuration file and returns the configuration.
// Missing files yield the defaults, which are saved for the next run; an
// unreadable or invalid file also yields the defaults.
func LoadAppConfig() AppConfig {
	conf := Defaults()

	path := paths.GetConfigFilePath()
	data, err := os.ReadFile(path)
	if err == nil {
		if err := toml.Unmarshal(data, &conf); err == nil {
			return conf
		}
		return Defaults()
	}

	_ = SaveAppConfig(conf)
	return conf
}

// SaveAppConfig writes the configuration to the TOML config file.
func SaveAppConfig(conf AppConfig) error {
	path := paths.GetConfigFilePath()

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	data, err := toml.Marshal(conf)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}
