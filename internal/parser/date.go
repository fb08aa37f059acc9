package parser

import (
	"strings"
	"time"

	"github.com/markusmobius/go-dateparser"

	"github.com/manav03panchal/pomotime/internal/errors"
	"github.com/manav03panchal/pomotime/internal/model"
)

// ParseDate resolves a natural language date relative to now and returns
// its date key.
func ParseDate(input string, now time.Time) (string, error) {
	input = strings.TrimSpace(input)
	switch strings.ToLower(input) {
	case "", "today", "now":
		return model.DateKey(now), nil
	case "yesterday":
		return model.DateKey(now.AddDate(0, 0, -1)), nil
	}

	if t, err := model.ParseDateKey(input); err == nil {
		return model.DateKey(t), nil
	}

	cfg := &dateparser.Configuration{
		CurrentTime: now,
	}

	result, err := dateparser.Parse(cfg, input)
	if err != nil || result.Time.IsZero() {
		return "", parseError("date", input, "Invalid date", errors.ErrInvalidDate, DateExamples)
	}

	return model.DateKey(result.Time.In(now.Location())), nil
}
