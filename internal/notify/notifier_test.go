package notify

import (
	"bytes"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/gen2brain/beeep"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/manav03panchal/pomotime/internal/model"
	"github.com/manav03panchal/pomotime/internal/timer"
)

// =============================================================================
// Fakes
// =============================================================================

type beep struct {
	freq float64
	ms   int
}

type toast struct {
	title, body string
}

type fakeOutputs struct {
	mu        sync.Mutex
	beeps     []beep
	toasts    []toast
	beepErr   error
	notifyErr error
	bell      bytes.Buffer
}

func (f *fakeOutputs) beep(freq float64, ms int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.beepErr != nil {
		return f.beepErr
	}
	f.beeps = append(f.beeps, beep{freq, ms})
	return nil
}

func (f *fakeOutputs) notify(title, body string, _ any) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.notifyErr != nil {
		return f.notifyErr
	}
	f.toasts = append(f.toasts, toast{title, body})
	return nil
}

func newTestNotifier(f *fakeOutputs) *Notifier {
	return New(Options{
		Frequency:     800,
		Duration:      500 * time.Millisecond,
		StartDuration: 100 * time.Millisecond,
		Bell:          &f.bell,
		Beep:          f.beep,
		Notify:        f.notify,
		Logger:        slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
}

func completed() timer.Event {
	return timer.Event{
		Kind:     timer.EventCompleted,
		Finished: model.SessionWork,
		Next:     model.SessionBreak,
		Title:    timer.NotificationTitle,
		Body:     timer.WorkDoneBody,
	}
}

func started() timer.Event {
	return timer.Event{Kind: timer.EventStarted, Finished: model.SessionWork, Next: model.SessionWork}
}

// =============================================================================
// Handle Tests
// =============================================================================

func TestHandleCompleted(t *testing.T) {
	f := &fakeOutputs{}
	n := newTestNotifier(f)

	results := n.Handle([]timer.Event{completed()}, model.DefaultSettings())

	require.Len(t, results, 2)
	for _, r := range results {
		assert.NoError(t, r.Err)
	}
	assert.Equal(t, []beep{{800, 500}}, f.beeps)
	assert.Equal(t, []toast{{"Pomodoro Timer", "Work session completed! Time for a break."}}, f.toasts)
}

func TestHandleStarted(t *testing.T) {
	f := &fakeOutputs{}
	n := newTestNotifier(f)

	results := n.Handle([]timer.Event{started()}, model.DefaultSettings())

	require.Len(t, results, 1)
	assert.Equal(t, ChannelSound, results[0].Channel)
	assert.Equal(t, []beep{{800, 100}}, f.beeps)
	assert.Empty(t, f.toasts)
}

func TestHandleRespectsSettings(t *testing.T) {
	tests := map[string]struct {
		sound, desktop       bool
		wantBeeps, wantToast int
	}{
		"both_off":     {false, false, 0, 0},
		"sound_only":   {true, false, 1, 0},
		"desktop_only": {false, true, 0, 1},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			f := &fakeOutputs{}
			n := newTestNotifier(f)
			s := model.DefaultSettings()
			s.SoundEnabled = tt.sound
			s.NotificationsEnabled = tt.desktop

			n.Handle([]timer.Event{completed()}, s)

			assert.Len(t, f.beeps, tt.wantBeeps)
			assert.Len(t, f.toasts, tt.wantToast)
		})
	}
}

func TestHandleNoEvents(t *testing.T) {
	f := &fakeOutputs{}
	n := newTestNotifier(f)
	assert.Nil(t, n.Handle(nil, model.DefaultSettings()))
}

// =============================================================================
// Degradation Tests
// =============================================================================

func TestSoundFallsBackToBell(t *testing.T) {
	f := &fakeOutputs{beepErr: beeep.ErrUnsupported}
	n := newTestNotifier(f)
	s := model.DefaultSettings()
	s.NotificationsEnabled = false

	results := n.Handle([]timer.Event{completed()}, s)
	require.Len(t, results, 1)
	assert.Equal(t, ChannelBell, results[0].Channel)
	assert.NoError(t, results[0].Err)

	// Later sounds go straight to the bell.
	f.beepErr = nil
	n.Handle([]timer.Event{started()}, s)
	assert.Empty(t, f.beeps)
	assert.Equal(t, "\a\a", f.bell.String())
}

func TestDesktopSwitchesOffWhenUnsupported(t *testing.T) {
	f := &fakeOutputs{notifyErr: beeep.ErrUnsupported}
	n := newTestNotifier(f)
	s := model.DefaultSettings()
	s.SoundEnabled = false

	results := n.Handle([]timer.Event{completed()}, s)
	require.Len(t, results, 1)
	assert.ErrorIs(t, results[0].Err, beeep.ErrUnsupported)

	available, _ := n.DesktopAvailable()
	assert.False(t, available)

	f.notifyErr = nil
	assert.Nil(t, n.Handle([]timer.Event{completed()}, s))
	assert.Empty(t, f.toasts)
}

func TestTransientErrorsKeepChannelOn(t *testing.T) {
	f := &fakeOutputs{notifyErr: errors.New("dbus hiccup"), beepErr: errors.New("device busy")}
	n := newTestNotifier(f)

	results := n.Handle([]timer.Event{completed()}, model.DefaultSettings())
	require.Len(t, results, 2)
	for _, r := range results {
		assert.Error(t, r.Err)
	}

	f.notifyErr, f.beepErr = nil, nil
	n.Handle([]timer.Event{completed()}, model.DefaultSettings())
	assert.Len(t, f.beeps, 1)
	assert.Len(t, f.toasts, 1)
	assert.Empty(t, f.bell.String())
}

// =============================================================================
// Prepare Tests
// =============================================================================

func TestPrepare(t *testing.T) {
	t.Run("available", func(t *testing.T) {
		f := &fakeOutputs{}
		n := newTestNotifier(f)

		_, checked := n.DesktopAvailable()
		assert.False(t, checked)

		require.NoError(t, n.Prepare())
		available, checked := n.DesktopAvailable()
		assert.True(t, available)
		assert.True(t, checked)
		assert.Len(t, f.toasts, 1)
	})

	t.Run("unsupported", func(t *testing.T) {
		f := &fakeOutputs{notifyErr: beeep.ErrUnsupported}
		n := newTestNotifier(f)

		assert.ErrorIs(t, n.Prepare(), beeep.ErrUnsupported)
		available, checked := n.DesktopAvailable()
		assert.False(t, available)
		assert.True(t, checked)
	})
}

func TestNewDefaults(t *testing.T) {
	n := New(Options{})
	assert.Equal(t, 800.0, n.opts.Frequency)
	assert.Equal(t, 500*time.Millisecond, n.opts.Duration)
	assert.NotNil(t, n.opts.Beep)
	assert.NotNil(t, n.opts.Notify)
	assert.NotNil(t, n.opts.Bell)
}
