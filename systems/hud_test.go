package systems

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHealthRatio(t *testing.T) {
	tests := []struct {
		name     string
		current  float64
		max      float64
		expected float32
	}{
		{"full", 100, 100, 1},
		{"half", 50, 100, 0.5},
		{"empty", 0, 100, 0},
		{"overkill", -20, 100, 0},
		{"overheal", 150, 100, 1},
		{"no max", 10, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, HealthRatio(tt.current, tt.max))
		})
	}
}

func TestHUDBarsSitInOppositeCorners(t *testing.T) {
	assert.Equal(t, float32(hudMargin), hudBarX(0, 1024))
	assert.Equal(t, float32(1024-hudMargin-hudBarWidth), hudBarX(1, 1024))
}

func TestDebugLine(t *testing.T) {
	line := DebugLine(DebugStats{Queued: 3, Timers: 2, Now: "1.5s"})
	assert.Contains(t, line, "queued 3")
	assert.Contains(t, line, "timers 2")
	assert.Contains(t, line, "t=1.5s")
}
