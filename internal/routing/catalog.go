package routing

import (
	"sort"

	"github.com/couchcryptid/transit-traffic-service/internal/domain"

	"github.com/google/uuid"
)

// CatalogPlanner ranks every road in the catalog by estimated travel time,
// bumping density on roads hit by an active event from the request.
type CatalogPlanner struct {
	roads []domain.Road
}

// NewCatalogPlanner creates a planner over the given road catalog.
func NewCatalogPlanner(roads []domain.Road) *CatalogPlanner {
	return &CatalogPlanner{roads: roads}
}

func (p *CatalogPlanner) Name() string { return "catalog" }

// RoadCount returns the size of the underlying catalog.
func (p *CatalogPlanner) RoadCount() int { return len(p.roads) }

// Plan produces one AlternateRoute per cataloged road, sorted ascending by
// estimated time. The sort is stable, so ties keep catalog order. Given a
// non-empty catalog the result is never empty.
func (p *CatalogPlanner) Plan(req PlanRequest) (Plan, error) {
	now := domain.Now()

	alternates := make([]AlternateRoute, 0, len(p.roads))
	for _, road := range p.roads {
		affected := domain.RoadAffected(road.ID, req.Events, now)
		density := domain.AdjustDensity(road.Density, affected)
		estimated := domain.EstimateTime(road.Length, density, req.Mode)

		reason := "Traffic Data"
		if affected {
			reason = "Event Impact"
		}

		alternates = append(alternates, AlternateRoute{
			RouteID:       road.ID,
			Path:          []string{road.ID},
			EstimatedTime: estimated,
			Reason:        reason,
		})
	}

	sort.SliceStable(alternates, func(i, j int) bool {
		return alternates[i].EstimatedTime < alternates[j].EstimatedTime
	})

	return Plan{
		ID:         uuid.NewString(),
		UserID:     req.UserID,
		Strategy:   p.Name(),
		Alternates: alternates,
	}, nil
}

// DensitySummary is one row of the per-road density/ETA table served by the
// density and debug endpoints.
type DensitySummary struct {
	Road        string  `json:"road"`
	Density     float64 `json:"density"`
	ETA         float64 `json:"eta"`
	EventImpact bool    `json:"event_impact"`
}

// Summarize computes current adjusted density and ETA for every cataloged
// road against the given event calendar.
func (p *CatalogPlanner) Summarize(events []domain.Event, mode domain.TravelMode) []DensitySummary {
	now := domain.Now()

	summaries := make([]DensitySummary, 0, len(p.roads))
	for _, road := range p.roads {
		affected := domain.RoadAffected(road.ID, events, now)
		density := domain.AdjustDensity(road.Density, affected)
		summaries = append(summaries, DensitySummary{
			Road:        road.ID,
			Density:     domain.Round2(density),
			ETA:         domain.EstimateTime(road.Length, density, mode),
			EventImpact: affected,
		})
	}
	return summaries
}
