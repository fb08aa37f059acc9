package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefaultRuntimeConfig(t *testing.T) {
	cfg := DefaultRuntimeConfig()

	// Test timer defaults
	if cfg.Timer.TickInterval != time.Second {
		t.Errorf("expected Timer.TickInterval = 1s, got %v", cfg.Timer.TickInterval)
	}

	// Test storage defaults
	if cfg.Storage.Backend != "badger" {
		t.Errorf("expected Storage.Backend = badger, got %q", cfg.Storage.Backend)
	}
	if cfg.Storage.Path != "" {
		t.Errorf("expected empty Storage.Path, got %q", cfg.Storage.Path)
	}
	if cfg.Storage.MinFreeSpace != 10*1024*1024 {
		t.Errorf("expected Storage.MinFreeSpace = 10MB, got %d", cfg.Storage.MinFreeSpace)
	}
	if cfg.Storage.MinFreeSpaceWarning != 50*1024*1024 {
		t.Errorf("expected Storage.MinFreeSpaceWarning = 50MB, got %d", cfg.Storage.MinFreeSpaceWarning)
	}

	// Test notify defaults
	if cfg.Notify.BeepFrequency != 800 {
		t.Errorf("expected Notify.BeepFrequency = 800, got %v", cfg.Notify.BeepFrequency)
	}
	if cfg.Notify.BeepDuration != 500*time.Millisecond {
		t.Errorf("expected Notify.BeepDuration = 500ms, got %v", cfg.Notify.BeepDuration)
	}
}

func TestGlobalConfigExists(t *testing.T) {
	if Global == nil {
		t.Fatal("Global config should not be nil")
	}
}

func TestConfigReset(t *testing.T) {
	// Modify global config
	Global.Timer.TickInterval = 5 * time.Second

	// Reset
	Global.Reset()

	// Verify it's back to defaults
	if Global.Timer.TickInterval != time.Second {
		t.Errorf("expected Timer.TickInterval = 1s after reset, got %v", Global.Timer.TickInterval)
	}
}

func TestConfigLoadFromEnv(t *testing.T) {
	t.Setenv("POMOTIME_TICK_INTERVAL", "250ms")
	t.Setenv("POMOTIME_BACKEND", "SQLite")
	t.Setenv("POMOTIME_DB", "/tmp/pomo.db")
	t.Setenv("POMOTIME_BEEP_FREQUENCY", "440")

	cfg := DefaultRuntimeConfig()
	cfg.loadFromEnv()

	if cfg.Timer.TickInterval != 250*time.Millisecond {
		t.Errorf("expected Timer.TickInterval = 250ms from env, got %v", cfg.Timer.TickInterval)
	}
	if cfg.Storage.Backend != "sqlite" {
		t.Errorf("expected Storage.Backend = sqlite from env, got %q", cfg.Storage.Backend)
	}
	if cfg.Storage.Path != "/tmp/pomo.db" {
		t.Errorf("expected Storage.Path from env, got %q", cfg.Storage.Path)
	}
	if cfg.Notify.BeepFrequency != 440 {
		t.Errorf("expected Notify.BeepFrequency = 440 from env, got %v", cfg.Notify.BeepFrequency)
	}
}

func TestConfigLoadFromEnvInvalidValues(t *testing.T) {
	t.Setenv("POMOTIME_TICK_INTERVAL", "invalid")
	t.Setenv("POMOTIME_MIN_FREE_SPACE", "not-a-number")
	t.Setenv("POMOTIME_BEEP_FREQUENCY", "-3")

	// Create new config with invalid env - should keep defaults
	cfg := DefaultRuntimeConfig()
	cfg.loadFromEnv()

	if cfg.Timer.TickInterval != time.Second {
		t.Errorf("expected Timer.TickInterval = 1s (default), got %v", cfg.Timer.TickInterval)
	}
	if cfg.Storage.MinFreeSpace != 10*1024*1024 {
		t.Errorf("expected Storage.MinFreeSpace = 10MB (default), got %d", cfg.Storage.MinFreeSpace)
	}
	if cfg.Notify.BeepFrequency != 800 {
		t.Errorf("expected Notify.BeepFrequency = 800 (default), got %v", cfg.Notify.BeepFrequency)
	}
}

func TestLoadDotEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	content := "POMOTIME_TEST_DOTENV=from-file\nPOMOTIME_TEST_PRESET=from-file\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}

	t.Setenv("POMOTIME_TEST_PRESET", "from-env")
	// Registers cleanup for a variable the file will set.
	t.Setenv("POMOTIME_TEST_DOTENV", "")
	os.Unsetenv("POMOTIME_TEST_DOTENV")

	if err := LoadDotEnv(filepath.Join(dir, "missing.env"), path); err != nil {
		t.Fatalf("LoadDotEnv: %v", err)
	}

	if got := os.Getenv("POMOTIME_TEST_DOTENV"); got != "from-file" {
		t.Errorf("expected POMOTIME_TEST_DOTENV from file, got %q", got)
	}
	if got := os.Getenv("POMOTIME_TEST_PRESET"); got != "from-env" {
		t.Errorf("expected existing variable to win, got %q", got)
	}
}

func TestDotEnvPaths(t *testing.T) {
	paths := DotEnvPaths()
	if len(paths) != 2 {
		t.Fatalf("expected 2 paths, got %d", len(paths))
	}
	if paths[0] != ".env" {
		t.Errorf("expected .env first, got %q", paths[0])
	}
}
