package storage

import (
	"log/slog"

	"github.com/manav03panchal/pomotime/internal/logging"
	"github.com/manav03panchal/pomotime/internal/model"
	"github.com/manav03panchal/pomotime/internal/validate"
)

// SettingsRepo reads and writes the settings record.
type SettingsRepo struct {
	store  Store
	bus    *Bus
	logger *slog.Logger
}

// NewSettingsRepo creates a new settings repository. bus may be nil.
func NewSettingsRepo(store Store, bus *Bus) *SettingsRepo {
	return &SettingsRepo{store: store, bus: bus}
}

// WithLogger sets the logger used for storage warnings.
func (r *SettingsRepo) WithLogger(logger *slog.Logger) *SettingsRepo {
	r.logger = logger
	return r
}

func (r *SettingsRepo) log() *slog.Logger {
	if r.logger != nil {
		return r.logger
	}
	return logging.Logger()
}

// Load returns the stored settings, or the defaults when none are stored or
// the stored value cannot be read.
func (r *SettingsRepo) Load() model.Settings {
	var s model.Settings
	err := getJSON(r.store, model.KeySettings, &s)
	if err != nil {
		if !IsErrKeyNotFound(err) {
			r.log().Warn("failed to read settings, using defaults",
				logging.KeyKey, model.KeySettings,
				logging.KeyError, err)
		}
		return model.DefaultSettings()
	}
	return validate.ClampSettings(s)
}

// Save clamps and stores s, replacing the previous record. Subscribers are
// notified only when the write succeeds.
func (r *SettingsRepo) Save(s model.Settings) error {
	s = validate.ClampSettings(s)
	if err := setJSON(r.store, model.KeySettings, s); err != nil {
		r.log().Warn("failed to save settings",
			logging.KeyKey, model.KeySettings,
			logging.KeyError, err)
		return err
	}
	r.bus.Publish(Change{Kind: SettingsChanged, Settings: s})
	return nil
}
