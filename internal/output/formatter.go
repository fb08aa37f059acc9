// Package output provides output formatting for pomotime.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/mattn/go-isatty"
	"golang.org/x/term"
)

// Format represents the output format type.
type Format string

const (
	FormatCLI   Format = "cli"
	FormatJSON  Format = "json"
	FormatPlain Format = "plain"
)

// ColorMode represents the color output mode.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

// Formatter handles output formatting.
type Formatter struct {
	Writer    io.Writer
	Format    Format
	ColorMode ColorMode
	NoNewline bool
}

// NewFormatter creates a new formatter with default settings.
func NewFormatter() *Formatter {
	return &Formatter{
		Writer:    os.Stdout,
		Format:    FormatCLI,
		ColorMode: ColorAuto,
	}
}

// IsColorEnabled returns true if color output is enabled.
func (f *Formatter) IsColorEnabled() bool {
	switch f.ColorMode {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	default:
		// Auto-detect based on terminal
		if w, ok := f.Writer.(*os.File); ok {
			return isatty.IsTerminal(w.Fd()) || isatty.IsCygwinTerminal(w.Fd())
		}
		return false
	}
}

// Print outputs formatted text.
func (f *Formatter) Print(a ...any) {
	fmt.Fprint(f.Writer, a...)
}

// Println outputs formatted text with newline.
func (f *Formatter) Println(a ...any) {
	fmt.Fprintln(f.Writer, a...)
}

// Printf outputs formatted text.
func (f *Formatter) Printf(format string, a ...any) {
	fmt.Fprintf(f.Writer, format, a...)
}

// JSON outputs data as JSON.
func (f *Formatter) JSON(v any) error {
	encoder := json.NewEncoder(f.Writer)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}

// PrintJSON is an alias for JSON for consistency.
func (f *Formatter) PrintJSON(v any) error {
	return f.JSON(v)
}

// FormatDuration formats a duration in human-readable form.
func FormatDuration(d time.Duration) string {
	if d < time.Minute {
		return fmt.Sprintf("%ds", int(d.Seconds()))
	}
	if d < time.Hour {
		minutes := int(d.Minutes())
		seconds := int(d.Seconds()) % 60
		if seconds > 0 {
			return fmt.Sprintf("%dm %ds", minutes, seconds)
		}
		return fmt.Sprintf("%dm", minutes)
	}

	hours := int(d.Hours())
	minutes := int(d.Minutes()) % 60

	if minutes > 0 {
		return fmt.Sprintf("%dh %dm", hours, minutes)
	}
	return fmt.Sprintf("%dh", hours)
}

// FormatDurationShort formats a duration in short form (e.g., "2h 15m").
func FormatDurationShort(d time.Duration) string {
	if d < time.Minute {
		return fmt.Sprintf("%ds", int(d.Seconds()))
	}
	if d < time.Hour {
		return fmt.Sprintf("%dm", int(d.Minutes()))
	}

	hours := int(d.Hours())
	minutes := int(d.Minutes()) % 60

	if minutes > 0 {
		return fmt.Sprintf("%dh %dm", hours, minutes)
	}
	return fmt.Sprintf("%dh", hours)
}

// FormatTimeOnly formats time without date.
func FormatTimeOnly(t time.Time) string {
	return t.Local().Format("15:04")
}

// ParseFormat parses an output format name.
func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(s)) {
	case "", FormatCLI:
		return FormatCLI, nil
	case FormatJSON:
		return FormatJSON, nil
	case FormatPlain:
		return FormatPlain, nil
	}
	return "", fmt.Errorf("unknown format %q (use cli, json or plain)", s)
}

// ParseColorMode parses a color mode name.
func ParseColorMode(s string) (ColorMode, error) {
	switch ColorMode(strings.ToLower(s)) {
	case "", ColorAuto:
		return ColorAuto, nil
	case ColorAlways:
		return ColorAlways, nil
	case ColorNever:
		return ColorNever, nil
	}
	return "", fmt.Errorf("unknown color mode %q (use auto, always or never)", s)
}

// DefaultWidth is used when the output is not a terminal.
const DefaultWidth = 80

// Width returns the terminal width of the formatter's writer.
func (f *Formatter) Width() int {
	if w, ok := f.Writer.(*os.File); ok {
		if width, _, err := term.GetSize(int(w.Fd())); err == nil && width > 0 {
			return width
		}
	}
	return DefaultWidth
}
