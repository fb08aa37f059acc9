// Package notify delivers timer events as sounds and desktop notifications.
package notify

import (
	"errors"
	"io"
	"log/slog"
	"os"
	"sync"
	"time"

	"github.com/gen2brain/beeep"

	"github.com/manav03panchal/pomotime/internal/config"
	"github.com/manav03panchal/pomotime/internal/logging"
	"github.com/manav03panchal/pomotime/internal/model"
	"github.com/manav03panchal/pomotime/internal/timer"
)

// Channel names a delivery channel.
type Channel string

const (
	ChannelSound   Channel = "sound"
	ChannelBell    Channel = "bell"
	ChannelDesktop Channel = "desktop"
)

// Result is the outcome of one delivery.
type Result struct {
	Channel Channel
	Err     error
}

// Options configures a Notifier. Zero values fall back to config.Global
// and the beeep package.
type Options struct {
	Frequency     float64
	Duration      time.Duration
	StartDuration time.Duration
	Icon          string

	// Bell receives the terminal bell when no audio device is available.
	Bell io.Writer

	Beep   func(freq float64, durationMs int) error
	Notify func(title, message string, icon any) error

	Logger *slog.Logger
}

// Notifier turns engine events into sound and desktop alerts. Each channel
// fails on its own: an unsupported channel is switched off for the life of
// the Notifier, other errors are logged and dropped. Safe for concurrent use.
type Notifier struct {
	opts Options

	mu             sync.Mutex
	soundFallback  bool
	desktopOff     bool
	desktopChecked bool
}

// New creates a Notifier.
func New(opts Options) *Notifier {
	cfg := config.Global.Notify
	if opts.Frequency <= 0 {
		opts.Frequency = cfg.BeepFrequency
	}
	if opts.Duration <= 0 {
		opts.Duration = cfg.BeepDuration
	}
	if opts.StartDuration <= 0 {
		opts.StartDuration = cfg.StartBeepDuration
	}
	if opts.Icon == "" {
		opts.Icon = cfg.Icon
	}
	if opts.Bell == nil {
		opts.Bell = os.Stderr
	}
	if opts.Beep == nil {
		opts.Beep = beeep.Beep
	}
	if opts.Notify == nil {
		beeep.AppName = "pomotime"
		opts.Notify = beeep.Notify
	}
	if opts.Logger == nil {
		opts.Logger = logging.Logger()
	}
	return &Notifier{opts: opts}
}

// Prepare checks that desktop notifications can be shown, by sending one.
// It runs when notifications are switched on. An unsupported desktop
// switches the channel off and returns the error.
func (n *Notifier) Prepare() error {
	n.mu.Lock()
	n.desktopChecked = true
	n.mu.Unlock()

	err := n.opts.Notify(timer.NotificationTitle, "Notifications are on.", n.opts.Icon)
	if err != nil {
		n.fail(ChannelDesktop, err)
	}
	return err
}

// DesktopAvailable reports whether the desktop channel is still on, and
// whether Prepare has checked it.
func (n *Notifier) DesktopAvailable() (available, checked bool) {
	n.mu.Lock()
	defer n.mu.Unlock()
	return !n.desktopOff, n.desktopChecked
}

// Handle delivers events according to settings. Completion alerts go out
// on all enabled channels concurrently; Handle returns when all are done.
func (n *Notifier) Handle(events []timer.Event, settings model.Settings) []Result {
	var results []Result
	for _, ev := range events {
		results = append(results, n.handle(ev, settings)...)
	}
	return results
}

func (n *Notifier) handle(ev timer.Event, settings model.Settings) []Result {
	var jobs []func() Result

	switch ev.Kind {
	case timer.EventStarted:
		if settings.SoundEnabled {
			jobs = append(jobs, func() Result { return n.sound(n.opts.StartDuration) })
		}
	case timer.EventCompleted:
		if settings.SoundEnabled {
			jobs = append(jobs, func() Result { return n.sound(n.opts.Duration) })
		}
		if settings.NotificationsEnabled && n.desktopEnabled() {
			jobs = append(jobs, func() Result { return n.desktop(ev.Title, ev.Body) })
		}
	}

	if len(jobs) == 0 {
		return nil
	}

	var wg sync.WaitGroup
	results := make([]Result, len(jobs))
	for i, job := range jobs {
		wg.Add(1)
		go func(idx int, job func() Result) {
			defer wg.Done()
			results[idx] = job()
		}(i, job)
	}
	wg.Wait()
	return results
}

func (n *Notifier) sound(d time.Duration) Result {
	if n.useBell() {
		return n.bell()
	}
	err := n.opts.Beep(n.opts.Frequency, int(d/time.Millisecond))
	if err == nil {
		return Result{Channel: ChannelSound}
	}
	n.fail(ChannelSound, err)
	if errors.Is(err, beeep.ErrUnsupported) {
		return n.bell()
	}
	return Result{Channel: ChannelSound, Err: err}
}

func (n *Notifier) bell() Result {
	_, err := io.WriteString(n.opts.Bell, "\a")
	return Result{Channel: ChannelBell, Err: err}
}

func (n *Notifier) desktop(title, body string) Result {
	err := n.opts.Notify(title, body, n.opts.Icon)
	if err != nil {
		n.fail(ChannelDesktop, err)
	}
	return Result{Channel: ChannelDesktop, Err: err}
}

func (n *Notifier) useBell() bool {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.soundFallback
}

func (n *Notifier) desktopEnabled() bool {
	n.mu.Lock()
	defer n.mu.Unlock()
	return !n.desktopOff
}

func (n *Notifier) fail(ch Channel, err error) {
	unsupported := errors.Is(err, beeep.ErrUnsupported)

	n.mu.Lock()
	switch {
	case unsupported && ch == ChannelSound:
		n.soundFallback = true
	case unsupported && ch == ChannelDesktop:
		n.desktopOff = true
	}
	n.mu.Unlock()

	if unsupported {
		n.opts.Logger.Info("notification channel unavailable", logging.KeyChannel, string(ch), logging.KeyError, err)
		return
	}
	n.opts.Logger.Warn("notification failed", logging.KeyChannel, string(ch), logging.KeyError, err)
}
