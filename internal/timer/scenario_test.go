package timer

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/manav03panchal/pomotime/internal/model"
	"github.com/manav03panchal/pomotime/internal/storage"
)

func setupRepos(t *testing.T) (*storage.StatsRepo, *storage.MemoryStore, *ManualClock) {
	t.Helper()
	clock := NewManualClock(testStart)
	store := storage.NewMemoryStore()
	stats := storage.NewStatsRepo(store, storage.NewBus())
	stats.Now = clock.Now
	return stats, store, clock
}

func TestScenarioFirstWorkSession(t *testing.T) {
	stats, _, clock := setupRepos(t)
	e := NewEngine(model.DefaultSettings(), EngineOptions{Stats: stats, Clock: clock})

	require.Equal(t, 1500, e.State().TimeRemaining)
	e.Start()
	tickN(e, 1500)

	assert.Equal(t, State{
		TimeRemaining:     300,
		IsRunning:         false,
		SessionType:       model.SessionBreak,
		SessionsCompleted: 1,
	}, e.State())

	today := stats.Load(model.DateKey(testStart))
	require.Len(t, today.Sessions, 1)
	rec := today.Sessions[0]
	assert.Equal(t, model.SessionWork, rec.Type)
	assert.Equal(t, 1500, rec.Duration)
	assert.True(t, rec.Completed)
	assert.Equal(t, 1, today.SessionsCompleted)
	assert.Equal(t, 1500, today.TotalWorkTime)
}

func TestScenarioFourthWorkSession(t *testing.T) {
	stats, _, clock := setupRepos(t)
	for i := 0; i < 3; i++ {
		stats.AppendToday(model.NewSessionRecord(model.SessionWork, 1500, testStart))
	}

	e := NewEngine(model.DefaultSettings(), EngineOptions{Stats: stats, Clock: clock})
	require.Equal(t, 3, e.State().SessionsCompleted)

	e.Start()
	tickN(e, 1500)

	s := e.State()
	assert.Equal(t, model.SessionLongBreak, s.SessionType)
	assert.Equal(t, 900, s.TimeRemaining)
	assert.Equal(t, 4, s.SessionsCompleted)
	assert.Equal(t, 4, stats.Load(stats.Today()).SessionsCompleted)
}

func TestScenarioBreakRecord(t *testing.T) {
	stats, _, clock := setupRepos(t)
	e := NewEngine(model.DefaultSettings(), EngineOptions{Stats: stats, Clock: clock})

	require.NoError(t, e.SelectSession(model.SessionBreak))
	e.Start()
	tickN(e, 300)

	today := stats.Load(stats.Today())
	require.Len(t, today.Sessions, 1)
	assert.Equal(t, model.SessionBreak, today.Sessions[0].Type)
	assert.Equal(t, 300, today.Sessions[0].Duration)
	assert.Zero(t, today.SessionsCompleted)
	assert.Zero(t, today.TotalWorkTime)

	assert.Equal(t, model.SessionWork, e.State().SessionType)
	assert.Zero(t, e.State().SessionsCompleted)
}

func TestScenarioFullCycle(t *testing.T) {
	stats, _, clock := setupRepos(t)
	settings := model.Settings{WorkDuration: 5, BreakDuration: 2, LongBreakDuration: 3}
	e := NewEngine(settings, EngineOptions{Stats: stats, Clock: clock})

	var order []model.SessionType
	for i := 0; i < 8; i++ {
		order = append(order, e.State().SessionType)
		e.Start()
		tickN(e, e.State().TimeRemaining)
		clock.Advance(time.Minute)
	}

	assert.Equal(t, []model.SessionType{
		model.SessionWork, model.SessionBreak,
		model.SessionWork, model.SessionBreak,
		model.SessionWork, model.SessionBreak,
		model.SessionWork, model.SessionLongBreak,
	}, order)
	assert.Equal(t, model.SessionWork, e.State().SessionType)

	today := stats.Load(stats.Today())
	assert.Len(t, today.Sessions, 8)
	assert.Equal(t, 4, today.SessionsCompleted)
	assert.Equal(t, 20, today.TotalWorkTime)
	assert.Equal(t, 50, today.CompletionRate())
}

func TestScenarioStorageFailure(t *testing.T) {
	stats, store, clock := setupRepos(t)
	store.FailWrites(fmt.Errorf("quota exceeded"))
	e := NewEngine(model.DefaultSettings(), EngineOptions{Stats: stats, Clock: clock})

	e.Start()
	tickN(e, 1500)

	s := e.State()
	assert.Equal(t, model.SessionBreak, s.SessionType)
	assert.Equal(t, 300, s.TimeRemaining)
	assert.Equal(t, 1, s.SessionsCompleted)

	events := e.DrainEvents()
	require.Len(t, events, 2)
	assert.Equal(t, EventCompleted, events[1].Kind)

	assert.Empty(t, stats.Load(stats.Today()).Sessions)
}
