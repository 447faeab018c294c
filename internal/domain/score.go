package domain

import "time"

// Weight and threshold constants for congestion scoring. The values are
// tuned heuristics with no physical derivation.
const (
	vehicleWeight  = 1.2
	rainPenalty    = 20
	fogPenalty     = 15
	clearBonus     = 5
	accidentBonus  = 25
	schoolBonus    = 10
	eventBonus     = 15
	nightPenalty   = 10
	riskLowUpper   = 30
	riskModerUpper = 60
)

// Simulated fallback ranges. The two query paths have always used different
// ranges; both are preserved.
const (
	locationFallbackLo = 10
	locationFallbackHi = 80
	nearbyFallbackLo   = 20
	nearbyFallbackHi   = 70
)

// ComputeScore derives a congestion score from a single observation.
// Deterministic: identical input yields identical output.
func ComputeScore(obs Observation) float64 {
	score := float64(obs.VehicleCount) * vehicleWeight

	switch obs.Weather {
	case WeatherRain:
		score += rainPenalty
	case WeatherFog:
		score += fogPenalty
	case WeatherClear:
		score -= clearBonus
	}

	if obs.AccidentReported {
		score += accidentBonus
	}
	if obs.SchoolZone {
		score += schoolBonus
	}
	if obs.EventNearby {
		score += eventBonus
	}

	return Round2(score)
}

// ClassifyRisk maps a score to its risk bucket. Total over all reals:
// <30 Low, <60 Moderate, else Severe.
func ClassifyRisk(score float64) RiskLevel {
	switch {
	case score < riskLowUpper:
		return RiskLow
	case score < riskModerUpper:
		return RiskModerate
	default:
		return RiskSevere
	}
}

// ScoreForLocation computes the score for a query coordinate from the
// observations that matched it (rounded-equality matching, done by the
// store). With no matches the outcome depends on policy: a uniform random
// score in [10, 80) tagged simulated, or an explicit no-data result.
func ScoreForLocation(matches []Observation, loc Coordinate, policy FallbackPolicy) ScoreResult {
	if len(matches) == 0 {
		if policy == FallbackReport {
			return ScoreResult{Location: loc, Source: SourceNoData}
		}
		score := RandFloat(locationFallbackLo, locationFallbackHi)
		return ScoreResult{
			Location:  loc,
			Score:     score,
			RiskLevel: ClassifyRisk(score),
			Source:    SourceSimulated,
		}
	}

	var total float64
	for _, obs := range matches {
		total += ComputeScore(obs)
	}
	score := total / float64(len(matches))

	return ScoreResult{
		Location:    loc,
		Score:       score,
		RiskLevel:   ClassifyRisk(score),
		Source:      SourceObserved,
		SampleCount: len(matches),
	}
}

// AverageScore computes the mean congestion score of observations near a
// coordinate (tolerance matching, done by the store). Same fallback policy
// as ScoreForLocation but over [20, 70); the asymmetry is intentional.
func AverageScore(matches []Observation, loc Coordinate, policy FallbackPolicy) ScoreResult {
	if len(matches) == 0 {
		if policy == FallbackReport {
			return ScoreResult{Location: loc, Source: SourceNoData}
		}
		score := RandFloat(nearbyFallbackLo, nearbyFallbackHi)
		return ScoreResult{
			Location:  loc,
			Score:     score,
			RiskLevel: ClassifyRisk(score),
			Source:    SourceSimulated,
		}
	}

	var total float64
	for _, obs := range matches {
		total += ComputeScore(obs)
	}
	score := total / float64(len(matches))

	return ScoreResult{
		Location:    loc,
		Score:       score,
		RiskLevel:   ClassifyRisk(score),
		Source:      SourceObserved,
		SampleCount: len(matches),
	}
}

// IsNightTime reports whether t falls in the night window (before 06:00 or
// after 21:59).
func IsNightTime(t time.Time) bool {
	return t.Hour() < 6 || t.Hour() > 21
}

// AdjustScoreForNight adds a flat penalty at night, assuming extra caution
// is required. Daytime scores pass through unchanged.
func AdjustScoreForNight(score float64, t time.Time) float64 {
	if IsNightTime(t) {
		return score + nightPenalty
	}
	return score
}

// IsPeakHour reports whether t falls in the morning (08–10) or evening
// (17–19) rush window, hour-granular and inclusive.
func IsPeakHour(t time.Time) bool {
	h := t.Hour()
	return (h >= 8 && h <= 10) || (h >= 17 && h <= 19)
}

// ScoreStats summarizes the stored scores for the analytics endpoint.
type ScoreStats struct {
	Max float64 `json:"max"`
	Min float64 `json:"min"`
	Avg float64 `json:"avg"`
}

// Analyze computes min/max/avg congestion score over a set of observations.
// An empty set yields all zeros.
func Analyze(observations []Observation) ScoreStats {
	if len(observations) == 0 {
		return ScoreStats{}
	}

	stats := ScoreStats{Max: ComputeScore(observations[0]), Min: ComputeScore(observations[0])}
	var total float64
	for _, obs := range observations {
		score := ComputeScore(obs)
		if score > stats.Max {
			stats.Max = score
		}
		if score < stats.Min {
			stats.Min = score
		}
		total += score
	}
	stats.Avg = total / float64(len(observations))
	return stats
}
