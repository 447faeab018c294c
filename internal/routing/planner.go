// Package routing provides the two route estimation strategies the service
// exposes. CatalogPlanner ranks every road in the fixed catalog by adjusted
// travel time; SimulatedPlanner fabricates a fixed three-segment itinerary
// with randomized durations. The two grew up independently and compute
// unrelated numbers for the same question, so they are kept as separately
// named strategies rather than merged.
package routing

import (
	"time"

	"github.com/couchcryptid/transit-traffic-service/internal/domain"
)

// CongestionLevel labels a simulated route segment.
type CongestionLevel string

const (
	CongestionLow    CongestionLevel = "Low"
	CongestionMedium CongestionLevel = "Medium"
	CongestionHigh   CongestionLevel = "High"
)

// PlanRequest carries everything either strategy may consult. Strategies
// ignore fields they have no use for.
type PlanRequest struct {
	UserID        string            `json:"user_id,omitempty"`
	Current       domain.Coordinate `json:"current_location"`
	Destination   domain.Coordinate `json:"destination"`
	Mode          domain.TravelMode `json:"mode,omitempty"`
	DepartureTime time.Time         `json:"current_time,omitzero"`
	Weather       domain.Weather    `json:"weather,omitempty"`
	NearSchool    bool              `json:"near_school,omitempty"`
	Events        []domain.Event    `json:"events,omitempty"`
}

// Segment is one leg of a simulated itinerary.
type Segment struct {
	RoadName        string          `json:"road_name"`
	DurationMinutes float64         `json:"duration_minutes"`
	CongestionLevel CongestionLevel `json:"congestion_level"`
}

// AlternateRoute is one ranked candidate from the catalog strategy.
type AlternateRoute struct {
	RouteID       string   `json:"route_id"`
	Path          []string `json:"path"`
	EstimatedTime float64  `json:"estimated_time"`
	Reason        string   `json:"reason"`
}

// Plan is the common envelope both strategies produce. CatalogPlanner fills
// Alternates; SimulatedPlanner fills Segments, TotalMinutes,
// SuggestedDeparture, and Notes.
type Plan struct {
	ID                 string           `json:"id"`
	UserID             string           `json:"user_id,omitempty"`
	Strategy           string           `json:"strategy"`
	Alternates         []AlternateRoute `json:"alternates,omitempty"`
	Segments           []Segment        `json:"route,omitempty"`
	TotalMinutes       float64          `json:"estimated_total_time,omitempty"`
	SuggestedDeparture time.Time        `json:"suggested_departure_time,omitzero"`
	Notes              string           `json:"notes,omitempty"`
}

// Planner is the route estimation capability. Implementations are
// interchangeable at the call site but their outputs are not reconcilable.
type Planner interface {
	Name() string
	Plan(req PlanRequest) (Plan, error)
}
