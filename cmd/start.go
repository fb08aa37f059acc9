package cmd

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/manav03panchal/pomotime/internal/config"
	"github.com/manav03panchal/pomotime/internal/logging"
	"github.com/manav03panchal/pomotime/internal/model"
	"github.com/manav03panchal/pomotime/internal/notify"
	"github.com/manav03panchal/pomotime/internal/timer"
	"github.com/manav03panchal/pomotime/internal/tui"
	"github.com/manav03panchal/pomotime/internal/validate"
)

// Start command flags.
var (
	startFlagHeadless bool
	startFlagSessions int
	startFlagStats    bool
)

// startCmd represents the start command.
var startCmd = &cobra.Command{
	Use:     "start [work|break|long-break]",
	Aliases: []string{"s", "timer"},
	Short:   "Open the timer",
	Long: `Open the Pomodoro timer, optionally on a given session.

The widget starts paused. Sessions stop when they complete; start the next
one with space.

Keyboard Controls:
  SPACE  Start/pause the timer
  R      Reset to a full work session
  1 2 3  Select work, short break or long break (while paused)
  TAB    Select the next session (while paused)
  W      Show or hide weekly stats
  Q      Quit

With --headless a single status line is printed instead, the timer starts
at once and each session starts the next. Space, r and q work as above.

Examples:
  pomotime start
  pomotime start long-break
  pomotime start --headless --sessions 4`,
	Args:              cobra.MaximumNArgs(1),
	ValidArgsFunction: completeSessionTypes,
	RunE:              runStart,
}

func init() {
	startCmd.Flags().BoolVar(&startFlagHeadless, "headless", false, "Print a status line instead of the widget")
	startCmd.Flags().IntVarP(&startFlagSessions, "sessions", "n", 0, "Stop after this many work sessions (headless, 0 for no limit)")
	startCmd.Flags().BoolVarP(&startFlagStats, "stats", "w", false, "Open with the weekly stats panel")

	rootCmd.AddCommand(startCmd)
}

func runStart(cmd *cobra.Command, args []string) error {
	settings := ctx.Settings.Load()
	instance := logging.NewInstanceContext(cmd.Context())
	logger := logging.LoggerFromContext(instance)

	engine := timer.NewEngine(settings, timer.EngineOptions{
		Stats:  ctx.Stats,
		Clock:  ctx.Clock,
		Logger: logger,
	})
	if len(args) == 1 {
		sessionType, err := validate.SessionType(args[0])
		if err != nil {
			return err
		}
		if err := engine.SelectSession(sessionType); err != nil {
			return err
		}
	}

	notifier := notify.New(notify.Options{Logger: logger})

	if startFlagHeadless || !term.IsTerminal(int(os.Stdout.Fd())) {
		return runHeadless(instance, engine, notifier)
	}

	// The widget owns the terminal.
	logging.Discard()
	return tui.Run(tui.TimerConfig{
		Engine:       engine,
		Stats:        ctx.Stats,
		Bus:          ctx.Bus,
		Alerter:      notifier,
		TickInterval: config.Global.Timer.TickInterval,
		ShowStats:    startFlagStats,
		Notice:       ctx.Warning,
	})
}

// runHeadless runs the timer with a plain status line until interrupted or
// the session budget is used up.
func runHeadless(parent context.Context, engine *timer.Engine, notifier *notify.Notifier) error {
	runCtx, stop := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	defer stop()

	display := timer.NewCountdownDisplay()
	display.UseColor = ctx.Formatter.IsColorEnabled()

	cli := ctx.CLIFormatter()
	if ctx.Warning != "" {
		cli.Warning(ctx.Warning)
	}
	if ctx.Fallback {
		cli.Muted("Sessions will not be saved.")
	}

	runner := timer.NewRunner(engine, timer.RunnerOptions{
		Interval:     config.Global.Timer.TickInterval,
		AutoContinue: true,
		WorkSessions: startFlagSessions,
		OnState: func(s timer.State) {
			display.Update(s, engine.TotalDuration())
		},
		OnEvent: func(ev timer.Event) {
			if ev.Kind == timer.EventCompleted {
				display.Complete(ev)
			}
			notifier.Handle([]timer.Event{ev}, engine.Settings())
		},
		OnError: func(err error) {
			cli.Error(err.Error())
		},
	})

	restore, raw := readKeys(runCtx, runner)
	defer restore()
	if raw {
		display.Writer = crlfWriter{display.Writer}
		ctx.Formatter.Writer = crlfWriter{ctx.Formatter.Writer}
	}

	engine.Start()
	if err := runner.Run(runCtx); err != nil {
		return err
	}

	restore()
	fmt.Fprintln(display.Writer)
	fmt.Fprintln(display.Writer, display.RenderSummary(runner.WorkSessionsDone(), ctx.Stats.Load(ctx.Stats.Today())))
	return nil
}

// readKeys forwards single key presses from a terminal stdin to runner.
// It returns a function that restores the terminal, safe to call twice,
// and whether the terminal was put in raw mode.
func readKeys(runCtx context.Context, runner *timer.Runner) (func(), bool) {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return func() {}, false
	}
	old, err := term.MakeRaw(fd)
	if err != nil {
		logging.DebugLog("raw mode unavailable", logging.KeyError, err)
		return func() {}, false
	}

	go func() {
		buf := make([]byte, 1)
		for {
			if _, err := os.Stdin.Read(buf); err != nil {
				return
			}
			if cmd, ok := keyCommand(buf[0]); ok {
				runner.Send(cmd)
				if cmd.Kind == timer.CommandQuit {
					return
				}
			}
			if runCtx.Err() != nil {
				return
			}
		}
	}()

	restored := false
	return func() {
		if !restored {
			restored = true
			term.Restore(fd, old)
		}
	}, true
}

// crlfWriter writes "\r\n" for every "\n"; raw mode turns off the
// terminal's own translation.
type crlfWriter struct {
	w io.Writer
}

func (c crlfWriter) Write(p []byte) (int, error) {
	if _, err := c.w.Write(bytes.ReplaceAll(p, []byte("\n"), []byte("\r\n"))); err != nil {
		return 0, err
	}
	return len(p), nil
}

// keyCommand maps a key press to a runner command.
func keyCommand(b byte) (timer.Command, bool) {
	switch b {
	case ' ':
		return timer.Command{Kind: timer.CommandToggle}, true
	case 'r', 'R':
		return timer.Command{Kind: timer.CommandReset}, true
	case '1':
		return timer.Command{Kind: timer.CommandSelect, Session: model.SessionWork}, true
	case '2':
		return timer.Command{Kind: timer.CommandSelect, Session: model.SessionBreak}, true
	case '3':
		return timer.Command{Kind: timer.CommandSelect, Session: model.SessionLongBreak}, true
	case 'q', 'Q', 3: // 3 is ctrl+c in raw mode
		return timer.Command{Kind: timer.CommandQuit}, true
	}
	return timer.Command{}, false
}
