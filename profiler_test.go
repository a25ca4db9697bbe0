package engine3d

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestProfiler_Scopes(t *testing.T) {
	p := NewProfiler()
	clock := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	p.now = func() time.Time { return clock }

	p.BeginScope("tick")
	clock = clock.Add(1500 * time.Microsecond)
	p.EndScope("tick")

	p.BeginScope("render")
	p.BeginScope("tick")
	p.EndScope("render")

	assert.Equal(t, []string{"tick", "render"}, p.Order)
	assert.Equal(t, 1500*time.Microsecond, p.Scopes["tick"])

	p.SetCount("planes", 3)
	p.SetCount("lines", 4)
	stats := p.StatsString()
	assert.Contains(t, stats, "tick           : 1.50 ms")
	assert.Less(t, strings.Index(stats, "lines"), strings.Index(stats, "planes"))

	p.Reset()
	assert.Zero(t, p.Scopes["tick"])
	assert.Len(t, p.Order, 2)
}

func TestProfiler_EndWithoutBegin(t *testing.T) {
	p := NewProfiler()
	p.EndScope("nothing")
	assert.Empty(t, p.Scopes)
}
