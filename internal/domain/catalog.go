package domain

import "time"

// Road is one entry in the fixed road catalog. Density is the baseline
// occupancy fraction in [0, 1]; Length is in catalog distance units.
type Road struct {
	ID      string  `json:"id"`
	Density float64 `json:"density"`
	Length  float64 `json:"length"`
}

// Event is a time-windowed condition that temporarily raises density on the
// roads it affects.
type Event struct {
	Name          string    `json:"name"`
	StartTime     time.Time `json:"start_time"`
	EndTime       time.Time `json:"end_time"`
	AffectedRoads []string  `json:"affected_roads"`
}

// Active reports whether t falls inside the event window, inclusive on both
// ends.
func (e Event) Active(t time.Time) bool {
	return !t.Before(e.StartTime) && !t.After(e.EndTime)
}

// Affects reports whether the event impacts the given road.
func (e Event) Affects(roadID string) bool {
	for _, id := range e.AffectedRoads {
		if id == roadID {
			return true
		}
	}
	return false
}

// roads is the fixed catalog. Slice order is the stable tie-break order for
// route ranking, so entries must not be reordered.
var roads = []Road{
	{ID: "main_road", Density: 0.8, Length: 4.2},
	{ID: "school_road", Density: 0.5, Length: 2.5},
	{ID: "bypass_road", Density: 0.3, Length: 5.0},
	{ID: "narrow_street", Density: 0.2, Length: 1.2},
	{ID: "college_road", Density: 0.6, Length: 3.0},
	{ID: "market_road", Density: 0.9, Length: 1.8},
}

// defaultEvents is the fixed event calendar.
var defaultEvents = []Event{
	{
		Name:          "School Closing",
		StartTime:     time.Date(2025, time.July, 26, 12, 30, 0, 0, time.UTC),
		EndTime:       time.Date(2025, time.July, 26, 13, 30, 0, 0, time.UTC),
		AffectedRoads: []string{"school_road"},
	},
	{
		Name:          "Friday Market",
		StartTime:     time.Date(2025, time.July, 26, 17, 0, 0, 0, time.UTC),
		EndTime:       time.Date(2025, time.July, 26, 21, 0, 0, 0, time.UTC),
		AffectedRoads: []string{"market_road"},
	},
}

// Roads returns a copy of the fixed road catalog in stable order.
func Roads() []Road {
	out := make([]Road, len(roads))
	copy(out, roads)
	return out
}

// DefaultEvents returns a copy of the fixed event calendar.
func DefaultEvents() []Event {
	out := make([]Event, len(defaultEvents))
	copy(out, defaultEvents)
	return out
}

// ActiveEvents filters events down to those active at t.
func ActiveEvents(events []Event, t time.Time) []Event {
	active := make([]Event, 0, len(events))
	for _, e := range events {
		if e.Active(t) {
			active = append(active, e)
		}
	}
	return active
}

// RoadAffected reports whether any event in the list is active at t and
// impacts the given road.
func RoadAffected(roadID string, events []Event, t time.Time) bool {
	for _, e := range events {
		if e.Active(t) && e.Affects(roadID) {
			return true
		}
	}
	return false
}
