package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestComputeScore(t *testing.T) {
	tests := []struct {
		name     string
		obs      Observation
		expected float64
	}{
		{
			"vehicle count only",
			Observation{VehicleCount: 50},
			60.0,
		},
		{
			"rain with accident",
			Observation{VehicleCount: 100, Weather: WeatherRain, AccidentReported: true},
			165.0,
		},
		{
			"fog",
			Observation{VehicleCount: 10, Weather: WeatherFog},
			27.0,
		},
		{
			"clear subtracts",
			Observation{VehicleCount: 10, Weather: WeatherClear},
			7.0,
		},
		{
			"all flags",
			Observation{VehicleCount: 0, SchoolZone: true, EventNearby: true},
			25.0,
		},
		{
			"empty observation",
			Observation{},
			0.0,
		},
		{
			"clear with no vehicles goes negative",
			Observation{Weather: WeatherClear},
			-5.0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ComputeScore(tt.obs))
		})
	}
}

func TestComputeScore_Deterministic(t *testing.T) {
	obs := Observation{VehicleCount: 73, Weather: WeatherRain, SchoolZone: true}
	assert.Equal(t, ComputeScore(obs), ComputeScore(obs))
}

func TestClassifyRisk_Boundaries(t *testing.T) {
	tests := []struct {
		score    float64
		expected RiskLevel
	}{
		{-10, RiskLow},
		{0, RiskLow},
		{29.99, RiskLow},
		{30.00, RiskModerate},
		{59.99, RiskModerate},
		{60.00, RiskSevere},
		{1000, RiskSevere},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, ClassifyRisk(tt.score), "score %v", tt.score)
	}
}

func TestScoreForLocation(t *testing.T) {
	loc := Coordinate{Latitude: 17.385, Longitude: 78.4867}

	t.Run("mean of matched observations", func(t *testing.T) {
		matches := []Observation{
			{Location: loc, VehicleCount: 50},  // 60
			{Location: loc, VehicleCount: 100}, // 120
		}
		result := ScoreForLocation(matches, loc, FallbackSimulate)

		assert.Equal(t, 90.0, result.Score)
		assert.Equal(t, RiskSevere, result.RiskLevel)
		assert.Equal(t, SourceObserved, result.Source)
		assert.Equal(t, 2, result.SampleCount)
	})

	t.Run("simulated fallback stays in range", func(t *testing.T) {
		SetRandSeed(1)
		defer SetRandSeed(42)

		for i := 0; i < 50; i++ {
			result := ScoreForLocation(nil, loc, FallbackSimulate)
			assert.Equal(t, SourceSimulated, result.Source)
			assert.GreaterOrEqual(t, result.Score, 10.0)
			assert.Less(t, result.Score, 80.0)
			assert.Equal(t, ClassifyRisk(result.Score), result.RiskLevel)
		}
	})

	t.Run("report policy surfaces no data", func(t *testing.T) {
		result := ScoreForLocation(nil, loc, FallbackReport)

		assert.Equal(t, SourceNoData, result.Source)
		assert.Zero(t, result.Score)
		assert.Zero(t, result.SampleCount)
	})
}

func TestAverageScore(t *testing.T) {
	loc := Coordinate{Latitude: 17.385, Longitude: 78.4867}

	t.Run("mean of nearby observations", func(t *testing.T) {
		matches := []Observation{
			{Location: loc, VehicleCount: 10}, // 12
			{Location: loc, VehicleCount: 20}, // 24
		}
		result := AverageScore(matches, loc, FallbackSimulate)

		assert.Equal(t, 18.0, result.Score)
		assert.Equal(t, SourceObserved, result.Source)
	})

	t.Run("fallback uses the nearby range", func(t *testing.T) {
		SetRandSeed(1)
		defer SetRandSeed(42)

		for i := 0; i < 50; i++ {
			result := AverageScore(nil, loc, FallbackSimulate)
			assert.Equal(t, SourceSimulated, result.Source)
			assert.GreaterOrEqual(t, result.Score, 20.0)
			assert.Less(t, result.Score, 70.0)
		}
	})
}

func TestNightAndPeakHelpers(t *testing.T) {
	day := time.Date(2025, 7, 26, 12, 0, 0, 0, time.UTC)
	lateNight := time.Date(2025, 7, 26, 23, 0, 0, 0, time.UTC)
	earlyMorning := time.Date(2025, 7, 26, 5, 59, 0, 0, time.UTC)

	assert.False(t, IsNightTime(day))
	assert.True(t, IsNightTime(lateNight))
	assert.True(t, IsNightTime(earlyMorning))

	assert.Equal(t, 50.0, AdjustScoreForNight(50, day))
	assert.Equal(t, 60.0, AdjustScoreForNight(50, lateNight))

	assert.True(t, IsPeakHour(time.Date(2025, 7, 26, 8, 0, 0, 0, time.UTC)))
	assert.True(t, IsPeakHour(time.Date(2025, 7, 26, 10, 59, 0, 0, time.UTC)))
	assert.True(t, IsPeakHour(time.Date(2025, 7, 26, 17, 0, 0, 0, time.UTC)))
	assert.False(t, IsPeakHour(time.Date(2025, 7, 26, 12, 0, 0, 0, time.UTC)))
	assert.False(t, IsPeakHour(time.Date(2025, 7, 26, 20, 0, 0, 0, time.UTC)))
}

func TestAnalyze(t *testing.T) {
	t.Run("empty set yields zeros", func(t *testing.T) {
		assert.Equal(t, ScoreStats{}, Analyze(nil))
	})

	t.Run("min max avg", func(t *testing.T) {
		observations := []Observation{
			{VehicleCount: 10}, // 12
			{VehicleCount: 50}, // 60
			{VehicleCount: 40}, // 48
		}
		stats := Analyze(observations)

		assert.Equal(t, 60.0, stats.Max)
		assert.Equal(t, 12.0, stats.Min)
		assert.Equal(t, 40.0, stats.Avg)
	})
}
