package timer

import (
	"context"
	"time"

	"github.com/manav03panchal/pomotime/internal/logging"
	"github.com/manav03panchal/pomotime/internal/model"
)

// CommandKind identifies a runner command.
type CommandKind int

const (
	CommandStart CommandKind = iota
	CommandPause
	CommandToggle
	CommandReset
	CommandSelect
	CommandQuit
)

// Command is a control request sent to a running Runner.
type Command struct {
	Kind    CommandKind
	Session model.SessionType // for CommandSelect
}

// RunnerOptions configures a Runner.
type RunnerOptions struct {
	// Interval between ticks. Defaults to one second.
	Interval time.Duration
	// AutoContinue starts the next session as soon as one completes.
	AutoContinue bool
	// WorkSessions stops the run after this many completed work sessions.
	// 0 means no limit.
	WorkSessions int

	OnState func(State)
	OnEvent func(Event)
	OnError func(error)
}

// Runner drives an Engine from its clock in a single goroutine.
type Runner struct {
	engine *Engine
	opts   RunnerOptions
	cmds   chan Command

	workDone int
}

// NewRunner creates a runner for engine.
func NewRunner(engine *Engine, opts RunnerOptions) *Runner {
	if opts.Interval <= 0 {
		opts.Interval = time.Second
	}
	return &Runner{
		engine: engine,
		opts:   opts,
		cmds:   make(chan Command, 8),
	}
}

// Send queues a command. It drops the command if the queue is full.
func (r *Runner) Send(cmd Command) {
	select {
	case r.cmds <- cmd:
	default:
		logging.DebugLog("runner command dropped", logging.KeyOperation, cmd.Kind)
	}
}

// WorkSessionsDone returns the number of work sessions completed during Run.
func (r *Runner) WorkSessionsDone() int {
	return r.workDone
}

// Run blocks until ctx is cancelled, a quit command arrives or the work
// session budget is used up.
func (r *Runner) Run(ctx context.Context) error {
	ticker := r.engine.Clock().NewTicker(r.opts.Interval)
	defer ticker.Stop()

	r.publish()

	for {
		select {
		case <-ctx.Done():
			return nil

		case cmd := <-r.cmds:
			if cmd.Kind == CommandQuit {
				return nil
			}
			r.apply(cmd)
			r.publish()

		case <-ticker.C():
			if !r.engine.Tick() {
				r.publish()
				continue
			}
			finished := r.publish()
			if r.budgetUsed() {
				return nil
			}
			if r.opts.AutoContinue && finished {
				r.engine.Start()
				r.publish()
			}
		}
	}
}

func (r *Runner) apply(cmd Command) {
	switch cmd.Kind {
	case CommandStart:
		r.engine.Start()
	case CommandPause:
		r.engine.Pause()
	case CommandToggle:
		r.engine.Toggle()
	case CommandReset:
		r.engine.Reset()
	case CommandSelect:
		if err := r.engine.SelectSession(cmd.Session); err != nil && r.opts.OnError != nil {
			r.opts.OnError(err)
		}
	}
}

// publish hands queued events and the current state to the callbacks. It
// reports whether a session completed.
func (r *Runner) publish() bool {
	completed := false
	for _, ev := range r.engine.DrainEvents() {
		if ev.Kind == EventCompleted {
			completed = true
			if ev.Finished == model.SessionWork {
				r.workDone++
			}
		}
		if r.opts.OnEvent != nil {
			r.opts.OnEvent(ev)
		}
	}
	if r.opts.OnState != nil {
		r.opts.OnState(r.engine.State())
	}
	return completed
}

func (r *Runner) budgetUsed() bool {
	return r.opts.WorkSessions > 0 && r.workDone >= r.opts.WorkSessions
}
