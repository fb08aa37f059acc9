package storage

import (
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/manav03panchal/pomotime/internal/logging"
	"github.com/manav03panchal/pomotime/internal/model"
)

// DaysInWeek is the length of the weekly view.
const DaysInWeek = 7

// StatsRepo reads and appends per-day session history.
type StatsRepo struct {
	store  Store
	bus    *Bus
	logger *slog.Logger

	// Now returns the current time. Defaults to time.Now.
	Now func() time.Time
}

// NewStatsRepo creates a new stats repository. bus may be nil.
func NewStatsRepo(store Store, bus *Bus) *StatsRepo {
	return &StatsRepo{store: store, bus: bus, Now: time.Now}
}

// WithLogger sets the logger used for storage warnings.
func (r *StatsRepo) WithLogger(logger *slog.Logger) *StatsRepo {
	r.logger = logger
	return r
}

func (r *StatsRepo) log() *slog.Logger {
	if r.logger != nil {
		return r.logger
	}
	return logging.Logger()
}

// Today returns today's date key.
func (r *StatsRepo) Today() string {
	return model.DateKey(r.Now())
}

// Load returns the history for date, or an empty record when nothing is
// stored or the stored value cannot be read.
func (r *StatsRepo) Load(date string) model.DailyStats {
	var d model.DailyStats
	key := model.StatsKey(date)
	if err := getJSON(r.store, key, &d); err != nil {
		if !IsErrKeyNotFound(err) {
			r.log().Warn("failed to read stats",
				logging.KeyKey, key,
				logging.KeyError, err)
		}
		return model.NewDailyStats(date)
	}
	if d.Sessions == nil {
		d.Sessions = []model.SessionRecord{}
	}
	d.Date = date
	return d
}

// Append adds record to the history for date and returns the updated
// value. A failed write is logged and the in-memory value is returned
// without notifying subscribers.
func (r *StatsRepo) Append(record model.SessionRecord, date string) model.DailyStats {
	d := r.Load(date)
	d.Add(record)

	key := model.StatsKey(date)
	if err := setJSON(r.store, key, d); err != nil {
		r.log().Warn("failed to save stats",
			logging.KeyKey, key,
			logging.KeySession, record.Type,
			logging.KeyError, err)
		return d
	}

	r.bus.Publish(Change{Kind: StatsChanged, Stats: d.Clone()})
	return d
}

// AppendToday appends record to today's history.
func (r *StatsRepo) AppendToday(record model.SessionRecord) model.DailyStats {
	return r.Append(record, r.Today())
}

// Weekly returns the seven days ending today, oldest first. Days without
// history are empty records.
func (r *StatsRepo) Weekly() model.Week {
	now := r.Now()
	week := make(model.Week, 0, DaysInWeek)
	for i := DaysInWeek - 1; i >= 0; i-- {
		week = append(week, r.Load(model.DateKey(now.AddDate(0, 0, -i))))
	}
	return week
}

// Dates lists the dates with stored history, oldest first.
func (r *StatsRepo) Dates() ([]string, error) {
	keys, err := r.store.Keys(model.PrefixStats)
	if err != nil {
		return nil, err
	}
	dates := make([]string, 0, len(keys))
	for _, k := range keys {
		date := strings.TrimPrefix(k, model.PrefixStats)
		if _, err := model.ParseDateKey(date); err != nil {
			continue
		}
		dates = append(dates, date)
	}
	sort.Strings(dates)
	return dates, nil
}
