package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBaseSpeed(t *testing.T) {
	assert.Equal(t, 5.0, BaseSpeed(ModeWalk))
	assert.Equal(t, 30.0, BaseSpeed(ModeBus))
	assert.Equal(t, 40.0, BaseSpeed(ModeCar))
	assert.Equal(t, 30.0, BaseSpeed("hovercraft"), "unknown modes fall back to bus speed")
}

func TestEstimateTime(t *testing.T) {
	t.Run("free-flowing road", func(t *testing.T) {
		// length 40 at car speed 40 with zero density is exactly one hour.
		assert.Equal(t, 60.0, EstimateTime(40, 0, ModeCar))
	})

	t.Run("saturated road floors speed", func(t *testing.T) {
		for _, mode := range []TravelMode{ModeWalk, ModeBus, ModeCar, "unknown"} {
			result := EstimateTime(2.5, 1.0, mode)
			assert.Equal(t, 150.0, result, "mode %s: speed floored to 1", mode)
		}
	})

	t.Run("density slows travel", func(t *testing.T) {
		fast := EstimateTime(3, 0.1, ModeBus)
		slow := EstimateTime(3, 0.9, ModeBus)
		assert.Less(t, fast, slow)
	})

	t.Run("rounded to two decimals", func(t *testing.T) {
		// 5 / (30 * 0.7) * 60 = 14.2857... -> 14.29
		assert.Equal(t, 14.29, EstimateTime(5, 0.3, ModeBus))
	})

	t.Run("always positive", func(t *testing.T) {
		assert.Positive(t, EstimateTime(0.1, 1.0, ModeWalk))
	})
}

func TestAdjustDensity(t *testing.T) {
	tests := []struct {
		name     string
		density  float64
		active   bool
		expected float64
	}{
		{"inactive passes through", 0.5, false, 0.5},
		{"active adds bump", 0.5, true, 0.8},
		{"clamped at one", 0.8, true, 1.0},
		{"already saturated", 1.0, true, 1.0},
		{"zero density", 0.0, true, 0.3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, AdjustDensity(tt.density, tt.active), 1e-9)
		})
	}
}
