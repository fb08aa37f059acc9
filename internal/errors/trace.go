package errors

import (
	"errors"
	"fmt"
	"runtime"
	"strings"
)

// StackFrame represents a single frame in a stack trace.
type StackFrame struct {
	Function string
	File     string
	Line     int
}

// tracedError carries the stack captured by WithStack.
type tracedError struct {
	err   error
	stack []StackFrame
}

func (e *tracedError) Error() string { return e.err.Error() }
func (e *tracedError) Unwrap() error { return e.err }

// WithStack records the caller's stack on err. The message is unchanged.
func WithStack(err error) error {
	if err == nil {
		return nil
	}
	if len(GetStack(err)) > 0 {
		return err
	}
	return &tracedError{err: err, stack: captureStack(2)}
}

// GetStack extracts the stack trace from an error if available.
func GetStack(err error) []StackFrame {
	var traced *tracedError
	if errors.As(err, &traced) {
		return traced.stack
	}
	return nil
}

func captureStack(skip int) []StackFrame {
	const maxDepth = 32
	var pcs [maxDepth]uintptr
	n := runtime.Callers(skip+1, pcs[:])

	frames := runtime.CallersFrames(pcs[:n])
	stack := make([]StackFrame, 0, n)
	for {
		frame, more := frames.Next()
		if !strings.HasPrefix(frame.Function, "runtime.") &&
			!strings.HasPrefix(frame.Function, "testing.") {
			stack = append(stack, StackFrame{
				Function: frame.Function,
				File:     frame.File,
				Line:     frame.Line,
			})
		}
		if !more {
			break
		}
	}
	return stack
}

// Chain returns the messages of err and every error it wraps, outermost
// first. Wrappers that repeat their cause's message are skipped.
func Chain(err error) []string {
	var chain []string
	for err != nil {
		msg := err.Error()
		if len(chain) == 0 || chain[len(chain)-1] != msg {
			chain = append(chain, msg)
		}
		err = errors.Unwrap(err)
	}
	return chain
}

// RootCause returns the innermost wrapped error.
func RootCause(err error) error {
	for {
		next := errors.Unwrap(err)
		if next == nil {
			return err
		}
		err = next
	}
}

// FormatDebugError formats an error with its chain, category and stack for
// --debug output.
func FormatDebugError(err error, suggestion string) string {
	if err == nil {
		return ""
	}

	var sb strings.Builder
	sb.WriteString("Error: " + err.Error() + "\n")

	if chain := Chain(err); len(chain) > 1 {
		sb.WriteString("\nError chain:\n")
		for i, msg := range chain {
			fmt.Fprintf(&sb, "  %d. %s\n", i+1, msg)
		}
	}

	fmt.Fprintf(&sb, "\nCategory: %s\n", Classify(err))

	if suggestion != "" {
		fmt.Fprintf(&sb, "\nSuggestion: %s\n", suggestion)
	}

	if stack := GetStack(err); len(stack) > 0 {
		sb.WriteString("\nStack trace:\n")
		for i, frame := range stack {
			fmt.Fprintf(&sb, "  %d. %s\n       at %s:%d\n", i+1, frame.Function, frame.File, frame.Line)
		}
	}
	return sb.String()
}
