package engine3d

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTime_advance(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	tm := &Time{Time: start}

	tm.advance(start.Add(250 * time.Millisecond))

	assert.Equal(t, 250*time.Millisecond, tm.Dt)
	assert.InDelta(t, 0.25, tm.Seconds(), 1e-6)
	assert.Equal(t, start.Add(250*time.Millisecond), tm.Time)
}

func TestTimeModule(t *testing.T) {
	app := NewAppBuilder().UseModule(TimeModule{}).Build()
	app.Step()

	tm, ok := Resource[Time](app)
	if assert.True(t, ok) {
		assert.GreaterOrEqual(t, tm.Dt, time.Duration(0))
	}
}
