// Package config provides centralized configuration for pomotime runtime values.
package config

import (
	"errors"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/adrg/xdg"
	"github.com/joho/godotenv"
)

// EnvPrefix is the prefix of every environment override.
const EnvPrefix = "POMOTIME_"

// RuntimeConfig holds runtime tuning values. User preferences such as
// session lengths live in the stored settings record instead.
type RuntimeConfig struct {
	// Timer configuration
	Timer TimerConfig

	// Storage configuration
	Storage StorageConfig

	// Notification configuration
	Notify NotifyConfig
}

// TimerConfig holds countdown configuration.
type TimerConfig struct {
	// TickInterval is the time between countdown ticks.
	// Default: 1s
	TickInterval time.Duration
}

// StorageConfig holds storage-related configuration.
type StorageConfig struct {
	// Backend selects the store: badger, sqlite or memory.
	// Default: badger
	Backend string

	// Path overrides the backend's default location.
	// Default: "" (XDG data directory)
	Path string

	// MinFreeSpace is the minimum free space required for write operations.
	// Default: 10MB (10 * 1024 * 1024 bytes)
	MinFreeSpace uint64

	// MinFreeSpaceWarning is the threshold for warning about low disk space.
	// Default: 50MB (50 * 1024 * 1024 bytes)
	MinFreeSpaceWarning uint64
}

// NotifyConfig holds sound and desktop notification configuration.
type NotifyConfig struct {
	// BeepFrequency is the completion tone in Hz.
	// Default: 800
	BeepFrequency float64

	// BeepDuration is the length of the completion tone.
	// Default: 500ms
	BeepDuration time.Duration

	// StartBeepDuration is the length of the tone played on start.
	// Default: 100ms
	StartBeepDuration time.Duration

	// Icon is an optional icon path for desktop notifications.
	// Default: ""
	Icon string
}

// DefaultRuntimeConfig returns the default runtime configuration.
func DefaultRuntimeConfig() *RuntimeConfig {
	return &RuntimeConfig{
		Timer: TimerConfig{
			TickInterval: time.Second,
		},
		Storage: StorageConfig{
			Backend:             "badger",
			MinFreeSpace:        10 * 1024 * 1024, // 10MB
			MinFreeSpaceWarning: 50 * 1024 * 1024, // 50MB
		},
		Notify: NotifyConfig{
			BeepFrequency:     800,
			BeepDuration:      500 * time.Millisecond,
			StartBeepDuration: 100 * time.Millisecond,
		},
	}
}

// Global holds the global runtime configuration instance.
// It is initialized with defaults and can be overridden via environment variables.
var Global = initGlobal()

// initGlobal initializes the global config with defaults and environment overrides.
func initGlobal() *RuntimeConfig {
	cfg := DefaultRuntimeConfig()
	cfg.loadFromEnv()
	return cfg
}

// DotEnvPaths returns the .env files consulted by LoadDotEnv, in order.
func DotEnvPaths() []string {
	return []string{
		".env",
		filepath.Join(xdg.ConfigHome, "pomotime", ".env"),
	}
}

// LoadDotEnv loads variables from the given .env files into the process
// environment. Missing files are skipped and variables that are already set
// win. With no paths, DotEnvPaths is used.
func LoadDotEnv(paths ...string) error {
	if len(paths) == 0 {
		paths = DotEnvPaths()
	}
	for _, p := range paths {
		if _, err := os.Stat(p); errors.Is(err, os.ErrNotExist) {
			continue
		}
		if err := godotenv.Load(p); err != nil {
			return err
		}
	}
	return nil
}

// loadFromEnv loads configuration overrides from environment variables.
func (c *RuntimeConfig) loadFromEnv() {
	// Timer configuration
	if v := os.Getenv("POMOTIME_TICK_INTERVAL"); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			c.Timer.TickInterval = d
		}
	}

	// Storage configuration
	if v := os.Getenv("POMOTIME_BACKEND"); v != "" {
		c.Storage.Backend = strings.ToLower(v)
	}
	if v := os.Getenv("POMOTIME_DB"); v != "" {
		c.Storage.Path = v
	}
	if v := os.Getenv("POMOTIME_MIN_FREE_SPACE"); v != "" {
		if n, err := strconv.ParseUint(v, 10, 64); err == nil {
			c.Storage.MinFreeSpace = n
		}
	}
	if v := os.Getenv("POMOTIME_MIN_FREE_SPACE_WARNING"); v != "" {
		if n, err := strconv.ParseUint(v, 10, 64); err == nil {
			c.Storage.MinFreeSpaceWarning = n
		}
	}

	// Notification configuration
	if v := os.Getenv("POMOTIME_BEEP_FREQUENCY"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil && f > 0 {
			c.Notify.BeepFrequency = f
		}
	}
	if v := os.Getenv("POMOTIME_BEEP_DURATION"); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d >= 0 {
			c.Notify.BeepDuration = d
		}
	}
	if v := os.Getenv("POMOTIME_NOTIFY_ICON"); v != "" {
		c.Notify.Icon = v
	}
}

// ReloadFromEnv reloads configuration from environment variables.
// This is useful for testing or when environment variables change.
func (c *RuntimeConfig) ReloadFromEnv() {
	c.loadFromEnv()
}

// Reset resets the configuration to defaults.
// This is primarily useful for testing.
func (c *RuntimeConfig) Reset() {
	defaults := DefaultRuntimeConfig()
	*c = *defaults
}
