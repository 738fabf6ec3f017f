package config

import (
	"os"
	"testing"

	"envcraft/internal/paths"
)

func TestSaveLoadRoundTrip(t *testing.T) {
	paths.ConfigHomeOverride = t.TempDir()
	defer func() { paths.ConfigHomeOverride = "" }()

	conf := AppConfig{
		Output: OutputConfig{Color: "never"},
		Diff:   DiffConfig{Redact: true},
	}

	if err := SaveAppConfig(conf); err != nil {
		t.Fatalf("SaveAppConfig failed: %v", err)
	}

	loaded := LoadAppConfig()
	if loaded.Output.Color != "never" {
		t.Errorf("Output.Color = %q, want never", loaded.Output.Color)
	}
	if !loaded.Diff.Redact {
		t.Error("Diff.Redact = false, want true")
	}
}

func TestLoadWritesDefaults(t *testing.T) {
	paths.ConfigHomeOverride = t.TempDir()
	defer func() { paths.ConfigHomeOverride = "" }()

	loaded := LoadAppConfig()
	if loaded.Output.Color != "auto" {
		t.Errorf("Output.Color = %q, want auto default", loaded.Output.Color)
	}

	// Defaults are persisted on first load
	if _, err := os.Stat(paths.GetConfigFilePath()); err != nil {
		t.Errorf("config file not written: %v", err)
	}
}

func TestLoadInvalidFileFallsBack(t *testing.T) {
	paths.ConfigHomeOverride = t.TempDir()
	defer func() { paths.ConfigHomeOverride = "" }()

	if err := os.MkdirAll(paths.GetConfigDir(), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(paths.GetConfigFilePath(), []byte("not [valid toml"), 0644); err != nil {
		t.Fatal(err)
	}

	loaded := LoadAppConfig()
	if loaded.Output.Color != "auto" {
		t.Errorf("Output.Color = %q, want defaults on invalid file", loaded.Output.Color)
	}
}
