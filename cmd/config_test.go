package cmd

import (
	"strings"
	"testing"

	"github.com/marcus/fadelist/internal/config"
)

func TestConfigInitWritesResolvedSettings(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	t.Cleanup(func() {
		rootCmd.PersistentFlags().Set("debounce", "500ms")
		rootCmd.PersistentFlags().Lookup("debounce").Changed = false
		configInitCmd.Flags().Set("force", "false")
	})

	out, err := execute(t, "config", "init", "--debounce=0s")
	if err != nil {
		t.Fatalf("config init: %v", err)
	}
	if !strings.HasPrefix(out, "WROTE ") {
		t.Errorf("output = %q", out)
	}

	cfg, err := config.Load(dir)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.DebounceMS != 0 {
		t.Errorf("DebounceMS = %d, want 0 from the flag", cfg.DebounceMS)
	}

	if _, err := execute(t, "config", "init"); err == nil {
		t.Error("second init without --force should fail")
	}
	if _, err := execute(t, "config", "init", "--force"); err != nil {
		t.Errorf("init --force: %v", err)
	}
}

func TestConfigShow(t *testing.T) {
	t.Chdir(t.TempDir())

	out, err := execute(t, "config", "show")
	if err != nil {
		t.Fatalf("config show: %v", err)
	}
	if !strings.Contains(out, `"debounce_ms": 500`) {
		t.Errorf("output should hold the default debounce:\n%s", out)
	}
}
