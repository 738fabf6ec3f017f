package cmd

import (
	"context"
	"testing"

	"envcraft/internal/logger"
	"envcraft/internal/paths"
)

func TestExecuteTrailingModifiersAreFatal(t *testing.T) {
	paths.ConfigHomeOverride = t.TempDir()
	defer func() { paths.ConfigHomeOverride = "" }()

	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected a fatal panic for modifier flags without a command")
		}
		if _, ok := r.(logger.FatalError); !ok {
			t.Fatalf("recovered %T, want logger.FatalError", r)
		}
	}()

	Execute(context.Background(), []CommandGroup{{Flags: []string{"-v"}}})
}

func TestExecuteStopsAtFirstFailure(t *testing.T) {
	paths.ConfigHomeOverride = t.TempDir()
	defer func() { paths.ConfigHomeOverride = "" }()

	// The first group fails with a hard error, so the second never runs
	groups := []CommandGroup{
		{Command: "--format", Args: []string{"/nonexistent/.env"}},
		{Command: "-V"},
	}
	if got := Execute(context.Background(), groups); got != 2 {
		t.Errorf("Execute = %d, want 2", got)
	}
}

func TestExecuteRunsGroupsInOrder(t *testing.T) {
	paths.ConfigHomeOverride = t.TempDir()
	defer func() { paths.ConfigHomeOverride = "" }()

	envPath := writeTemp(t, "a.env", "A=1\n")
	groups := []CommandGroup{
		{Command: "--format-check", Args: []string{envPath}},
		{Command: "-V"},
	}
	if got := Execute(context.Background(), groups); got != 0 {
		t.Errorf("Execute = %d, want 0", got)
	}
}
