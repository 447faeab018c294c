package domain

import (
	"math"
	"time"
)

// Weather is the reported weather condition at an observation site.
type Weather string

const (
	WeatherRain  Weather = "rain"
	WeatherFog   Weather = "fog"
	WeatherClear Weather = "clear"
)

// RiskLevel is the three-bucket label derived from a congestion score.
type RiskLevel string

const (
	RiskLow      RiskLevel = "Low"
	RiskModerate RiskLevel = "Moderate"
	RiskSevere   RiskLevel = "Severe"
)

// ScoreSource records where a score came from: real observations, a
// simulated placeholder, or nothing at all (no data, substitution disabled).
type ScoreSource string

const (
	SourceObserved  ScoreSource = "observed"
	SourceSimulated ScoreSource = "simulated"
	SourceNoData    ScoreSource = "no_data"
)

// FallbackPolicy decides what happens when a score query matches no
// observations: substitute a simulated value (the default) or report the
// absence explicitly.
type FallbackPolicy string

const (
	FallbackSimulate FallbackPolicy = "simulate"
	FallbackReport   FallbackPolicy = "report"
)

// Coordinate is a WGS-84 latitude/longitude pair. Equality for score lookups
// is approximate; see RoundedEqual.
type Coordinate struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// RoundedEqual reports whether two coordinates are equal after rounding both
// axes to two decimals. This is the matching rule for location score lookups.
func (c Coordinate) RoundedEqual(other Coordinate) bool {
	return Round2(c.Latitude) == Round2(other.Latitude) &&
		Round2(c.Longitude) == Round2(other.Longitude)
}

// Within reports whether other lies within tolerance of c on both axes
// independently. This is the matching rule for nearby averages, deliberately
// different from RoundedEqual.
func (c Coordinate) Within(other Coordinate, tolerance float64) bool {
	return math.Abs(c.Latitude-other.Latitude) < tolerance &&
		math.Abs(c.Longitude-other.Longitude) < tolerance
}

// Observation is a single submitted traffic report. Observations are
// append-only; they are never mutated after submission.
type Observation struct {
	ID               string     `json:"id,omitempty"`
	Location         Coordinate `json:"location"`
	VehicleCount     int        `json:"vehicle_count"`
	Timestamp        time.Time  `json:"timestamp"`
	Weather          Weather    `json:"weather,omitempty"`
	AccidentReported bool       `json:"accident_reported"`
	SchoolZone       bool       `json:"school_zone"`
	EventNearby      bool       `json:"event_nearby"`
}

// ScoreResult is a derived congestion score for a location. It is computed
// per request and never stored.
type ScoreResult struct {
	Location    Coordinate  `json:"location"`
	Score       float64     `json:"score"`
	RiskLevel   RiskLevel   `json:"risk_level"`
	Source      ScoreSource `json:"source"`
	SampleCount int         `json:"sample_count"`
}

// Round2 rounds v to two decimal places.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
