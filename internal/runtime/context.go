// Package runtime provides application runtime context for pomotime.
package runtime

import (
	"fmt"
	"log/slog"

	"github.com/manav03panchal/pomotime/internal/config"
	"github.com/manav03panchal/pomotime/internal/errors"
	"github.com/manav03panchal/pomotime/internal/logging"
	"github.com/manav03panchal/pomotime/internal/output"
	"github.com/manav03panchal/pomotime/internal/storage"
	"github.com/manav03panchal/pomotime/internal/timer"
)

// Context holds the application runtime context.
type Context struct {
	Store     storage.Store
	Backend   storage.Backend
	Bus       *storage.Bus
	Formatter *output.Formatter
	Clock     timer.Clock

	// Repositories
	Settings *storage.SettingsRepo
	Stats    *storage.StatsRepo

	// Fallback is set when the configured store could not be opened and
	// an in-memory store is used instead. Warning says why; StoreErr is the
	// open error with the stack where it was caught.
	Fallback bool
	Warning  string
	StoreErr error

	// Debug mode
	Debug bool
}

// Options configures the runtime context.
type Options struct {
	Backend      storage.Backend
	DBPath       string
	MinFreeSpace uint64
	Format       output.Format
	ColorMode    output.ColorMode
	Debug        bool
}

// DefaultOptions returns default runtime options.
func DefaultOptions() Options {
	backend, err := storage.ParseBackend(config.Global.Storage.Backend)
	if err != nil {
		backend = storage.BackendBadger
	}
	return Options{
		Backend:      backend,
		DBPath:       config.Global.Storage.Path,
		MinFreeSpace: config.Global.Storage.MinFreeSpace,
		Format:       output.FormatCLI,
		ColorMode:    output.ColorAuto,
		Debug:        false,
	}
}

// New creates a new runtime context. A store that cannot be opened, for
// any reason, is replaced by an in-memory one so the timer still runs;
// nothing recorded in that session survives the process.
func New(opts Options) (*Context, error) {
	backendOpts := storage.BackendOptions{
		Backend:      opts.Backend,
		Path:         opts.DBPath,
		MinFreeSpace: opts.MinFreeSpace,
	}
	logger := logging.With(logging.KeyBackend, string(opts.Backend))

	ctx := &Context{
		Backend: opts.Backend,
		Bus:     storage.NewBus(),
		Clock:   timer.SystemClock{},
		Debug:   opts.Debug,
	}

	store, err := storage.OpenStore(backendOpts)
	if err != nil {
		logger.Warn("falling back to in-memory storage", logging.KeyError, err)
		store = storage.NewMemoryStore()
		ctx.Backend = storage.BackendMemory
		ctx.Fallback = true
		ctx.Warning = fallbackWarning(err, backendOpts.ResolvedPath())
		ctx.StoreErr = errors.WithStack(err)
	}
	ctx.Store = store

	if path := backendOpts.ResolvedPath(); path != "" && !ctx.Fallback {
		if msg := storage.CheckDiskSpaceWarning(path, config.Global.Storage.MinFreeSpaceWarning); msg != "" {
			ctx.Warning = msg
		}
	}

	ctx.Settings = storage.NewSettingsRepo(store, ctx.Bus).WithLogger(logger)
	ctx.Stats = storage.NewStatsRepo(store, ctx.Bus).WithLogger(logger)

	// Create formatter
	formatter := output.NewFormatter()
	formatter.Format = opts.Format
	formatter.ColorMode = opts.ColorMode
	ctx.Formatter = formatter

	return ctx, nil
}

// fallbackWarning describes an open error that the in-memory store
// replaces. A corrupted store is backed up first.
func fallbackWarning(err error, path string) string {
	switch {
	case storage.IsLocked(err):
		return fmt.Sprintf("%s is in use by another pomotime; history will not be saved this run", path)
	case storage.IsDatabaseCorrupted(err):
		backup, berr := storage.CreateBackup(path)
		if berr != nil {
			logging.Warn("backup of corrupted store failed", logging.KeyPath, path, logging.KeyError, berr)
			return fmt.Sprintf("%s looks corrupted; history will not be saved this run", path)
		}
		return fmt.Sprintf("%s looks corrupted (backup at %s); history will not be saved this run", path, backup)
	}
	return fmt.Sprintf("storage at %s is unavailable (%v); history will not be saved this run", path, err)
}

// Close releases the store and closes the change bus.
func (c *Context) Close() error {
	if c.Bus != nil {
		c.Bus.Close()
	}
	if c.Store != nil {
		return c.Store.Close()
	}
	return nil
}

// Logger returns a logger tagged with the active backend.
func (c *Context) Logger() *slog.Logger {
	return logging.With(logging.KeyBackend, string(c.Backend))
}

// CLIFormatter returns a CLI formatter.
func (c *Context) CLIFormatter() *output.CLIFormatter {
	return output.NewCLIFormatter(c.Formatter)
}

// JSONFormatter returns a JSON formatter.
func (c *Context) JSONFormatter() *output.JSONFormatter {
	return output.NewJSONFormatter(c.Formatter)
}

// IsJSON returns true if output format is JSON.
func (c *Context) IsJSON() bool {
	return c.Formatter.Format == output.FormatJSON
}

// IsCLI returns true if output format is CLI.
func (c *Context) IsCLI() bool {
	return c.Formatter.Format == output.FormatCLI
}

// Debugf prints debug output if debug mode is enabled.
func (c *Context) Debugf(format string, args ...any) {
	if c.Debug {
		c.Formatter.Printf("[DEBUG] "+format+"\n", args...)
	}
}
