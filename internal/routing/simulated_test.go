package routing

import (
	"testing"
	"time"

	"github.com/couchcryptid/transit-traffic-service/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSimulatedPlanner_Plan(t *testing.T) {
	domain.SetRandSeed(7)
	t.Cleanup(func() { domain.SetRandSeed(42) })

	planner := NewSimulatedPlanner()
	departure := time.Date(2025, 7, 26, 9, 0, 0, 0, time.UTC)

	plan, err := planner.Plan(PlanRequest{
		UserID:        "user-1",
		DepartureTime: departure,
	})
	require.NoError(t, err)

	assert.Equal(t, "simulated", plan.Strategy)
	assert.Equal(t, "user-1", plan.UserID)
	assert.NotEmpty(t, plan.ID)
	require.Len(t, plan.Segments, 3)

	// The itinerary is fixed; only durations and congestion vary.
	assert.Equal(t, "Main Road", plan.Segments[0].RoadName)
	assert.Equal(t, "Second Street", plan.Segments[1].RoadName)
	assert.Equal(t, "Expressway", plan.Segments[2].RoadName)

	bounds := []struct{ lo, hi float64 }{{5, 15}, {5, 10}, {10, 20}}
	var total, delay float64
	for i, seg := range plan.Segments {
		assert.GreaterOrEqual(t, seg.DurationMinutes, bounds[i].lo)
		assert.Less(t, seg.DurationMinutes, bounds[i].hi)
		assert.Contains(t, congestionLevels, seg.CongestionLevel)

		total += seg.DurationMinutes
		switch seg.CongestionLevel {
		case CongestionHigh:
			delay += 5
		case CongestionMedium:
			delay += 2
		}
	}

	assert.Equal(t, domain.Round2(total+delay), plan.TotalMinutes)
	assert.Equal(t, departure.Add(time.Duration(delay)*time.Minute), plan.SuggestedDeparture)
	assert.Equal(t, "Suggested time includes delays due to congestion", plan.Notes)
}

func TestSimulatedPlanner_WeatherLengthensSegments(t *testing.T) {
	planner := NewSimulatedPlanner()

	domain.SetRandSeed(7)
	dry, err := planner.Plan(PlanRequest{DepartureTime: time.Now()})
	require.NoError(t, err)

	domain.SetRandSeed(7)
	wet, err := planner.Plan(PlanRequest{DepartureTime: time.Now(), Weather: domain.WeatherRain})
	require.NoError(t, err)
	t.Cleanup(func() { domain.SetRandSeed(42) })

	for i := range dry.Segments {
		assert.InDelta(t, dry.Segments[i].DurationMinutes+3, wet.Segments[i].DurationMinutes, 1e-9)
	}
}

func TestAdjustForWeather(t *testing.T) {
	segments := func() []Segment {
		return []Segment{
			{RoadName: "Main Road", DurationMinutes: 10},
			{RoadName: "Expressway", DurationMinutes: 15},
		}
	}

	tests := []struct {
		name     string
		weather  domain.Weather
		expected []float64
	}{
		{"rain adds three", domain.WeatherRain, []float64{13, 18}},
		{"fog adds two", domain.WeatherFog, []float64{12, 17}},
		{"clear unchanged", domain.WeatherClear, []float64{10, 15}},
		{"empty unchanged", "", []float64{10, 15}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			segs := segments()
			AdjustForWeather(segs, tt.weather)
			for i, want := range tt.expected {
				assert.Equal(t, want, segs[i].DurationMinutes)
			}
		})
	}
}

func TestAdjustForSchoolZones(t *testing.T) {
	segs := []Segment{
		{RoadName: "School Street", DurationMinutes: 10},
		{RoadName: "Main Road", DurationMinutes: 10},
	}

	t.Run("not near a school", func(t *testing.T) {
		copied := append([]Segment(nil), segs...)
		AdjustForSchoolZones(copied, false)
		assert.Equal(t, 10.0, copied[0].DurationMinutes)
	})

	t.Run("substring match only", func(t *testing.T) {
		copied := append([]Segment(nil), segs...)
		AdjustForSchoolZones(copied, true)
		assert.Equal(t, 14.0, copied[0].DurationMinutes)
		assert.Equal(t, 10.0, copied[1].DurationMinutes, "names without School are untouched")
	})
}
