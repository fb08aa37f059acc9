package parser

import (
	"strings"

	"github.com/manav03panchal/pomotime/internal/errors"
)

// DurationExamples provides example duration formats.
var DurationExamples = []string{
	"25",
	"25m",
	"1h",
	"1h30m",
	"45 minutes",
}

// DateExamples provides example date formats.
var DateExamples = []string{
	"today",
	"yesterday",
	"2026-03-10",
	"3 days ago",
	"last monday",
}

// parseError builds a UserError listing valid examples.
func parseError(field, input, message string, cause error, examples []string) *errors.UserError {
	return errors.NewUserErrorWithField(field, input, message,
		"Valid examples: "+strings.Join(examples, ", "),
	).WithCause(cause)
}
