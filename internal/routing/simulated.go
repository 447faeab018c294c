package routing

import (
	"strings"
	"time"

	"github.com/couchcryptid/transit-traffic-service/internal/domain"

	"github.com/google/uuid"
)

// Per-segment delay added per congestion level when computing the suggested
// departure time.
const (
	highDelayMinutes   = 5
	mediumDelayMinutes = 2
)

var congestionLevels = []CongestionLevel{CongestionLow, CongestionMedium, CongestionHigh}

// simulatedLeg defines one fabricated segment: a fixed road name and the
// bounds for its randomized duration.
type simulatedLeg struct {
	roadName    string
	minDuration float64
	maxDuration float64
}

// simulatedLegs is the fixed itinerary. Every plan has exactly these three
// segments regardless of origin and destination.
var simulatedLegs = []simulatedLeg{
	{roadName: "Main Road", minDuration: 5, maxDuration: 15},
	{roadName: "Second Street", minDuration: 5, maxDuration: 10},
	{roadName: "Expressway", minDuration: 10, maxDuration: 20},
}

// SimulatedPlanner is the legacy strategy: a fixed three-segment itinerary
// with randomized durations and congestion levels, independent of the road
// catalog.
type SimulatedPlanner struct{}

// NewSimulatedPlanner creates the legacy planner.
func NewSimulatedPlanner() *SimulatedPlanner {
	return &SimulatedPlanner{}
}

func (p *SimulatedPlanner) Name() string { return "simulated" }

// Plan fabricates the itinerary, applies weather and school-zone
// adjustments when the request carries them, and derives total time and a
// suggested departure from the per-segment congestion delays.
func (p *SimulatedPlanner) Plan(req PlanRequest) (Plan, error) {
	segments := simulateSegments()
	AdjustForWeather(segments, req.Weather)
	AdjustForSchoolZones(segments, req.NearSchool)

	var total float64
	delay := 0.0
	for _, seg := range segments {
		total += seg.DurationMinutes
		switch seg.CongestionLevel {
		case CongestionHigh:
			delay += highDelayMinutes
		case CongestionMedium:
			delay += mediumDelayMinutes
		}
	}

	departure := req.DepartureTime
	if departure.IsZero() {
		departure = domain.Now()
	}

	return Plan{
		ID:                 uuid.NewString(),
		UserID:             req.UserID,
		Strategy:           p.Name(),
		Segments:           segments,
		TotalMinutes:       domain.Round2(total + delay),
		SuggestedDeparture: departure.Add(time.Duration(delay) * time.Minute),
		Notes:              "Suggested time includes delays due to congestion",
	}, nil
}

func simulateSegments() []Segment {
	segments := make([]Segment, 0, len(simulatedLegs))
	for _, leg := range simulatedLegs {
		segments = append(segments, Segment{
			RoadName:        leg.roadName,
			DurationMinutes: domain.RandFloat(leg.minDuration, leg.maxDuration),
			CongestionLevel: congestionLevels[domain.RandIntn(len(congestionLevels))],
		})
	}
	return segments
}

// AdjustForWeather adds a flat per-segment delay for bad weather: 3 minutes
// in rain, 2 in fog. Mutates the segments in place; the planner owns them
// during adjustment.
func AdjustForWeather(segments []Segment, weather domain.Weather) {
	var extra float64
	switch weather {
	case domain.WeatherRain:
		extra = 3
	case domain.WeatherFog:
		extra = 2
	default:
		return
	}
	for i := range segments {
		segments[i].DurationMinutes += extra
	}
}

// AdjustForSchoolZones adds 4 minutes to segments whose road name contains
// "School" when the route passes near a school. The substring match is
// intentional; there is no join against the road catalog.
func AdjustForSchoolZones(segments []Segment, nearSchool bool) {
	if !nearSchool {
		return
	}
	for i := range segments {
		if strings.Contains(segments[i].RoadName, "School") {
			segments[i].DurationMinutes += 4
		}
	}
}
