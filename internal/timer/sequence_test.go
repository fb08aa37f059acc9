package timer

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/manav03panchal/pomotime/internal/model"
)

func TestNextSessionAfterWork(t *testing.T) {
	settings := model.DefaultSettings()

	for count := 0; count < 40; count++ {
		tr := NextSession(model.SessionWork, count, settings)
		assert.Equal(t, count+1, tr.CompletedWorkCount)

		if (count+1)%4 == 0 {
			assert.Equal(t, model.SessionLongBreak, tr.Next, "count %d", count)
			assert.Equal(t, settings.LongBreakDuration, tr.Duration)
		} else {
			assert.Equal(t, model.SessionBreak, tr.Next, "count %d", count)
			assert.Equal(t, settings.BreakDuration, tr.Duration)
		}
	}
}

func TestNextSessionAfterBreaks(t *testing.T) {
	settings := model.Settings{WorkDuration: 1200, BreakDuration: 120, LongBreakDuration: 600}

	for _, current := range []model.SessionType{model.SessionBreak, model.SessionLongBreak} {
		for count := 0; count < 10; count++ {
			tr := NextSession(current, count, settings)
			assert.Equal(t, model.SessionWork, tr.Next)
			assert.Equal(t, 1200, tr.Duration)
			assert.Equal(t, count, tr.CompletedWorkCount)
		}
	}
}

func TestSessionDuration(t *testing.T) {
	settings := model.Settings{WorkDuration: 1500, BreakDuration: 300, LongBreakDuration: 900}

	tests := []struct {
		sessionType model.SessionType
		expected    int
	}{
		{model.SessionWork, 1500},
		{model.SessionBreak, 300},
		{model.SessionLongBreak, 900},
		{model.SessionType("nap"), 1500},
	}

	for _, tt := range tests {
		t.Run(string(tt.sessionType), func(t *testing.T) {
			assert.Equal(t, tt.expected, SessionDuration(tt.sessionType, settings))
		})
	}
}
