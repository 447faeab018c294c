// Package domain models traffic observations and route estimation for the
// transit prototype.
//
// # Data Source
//
// There is no live traffic feed. Observations are submitted by clients (or
// seeded by cmd/seed) and held in memory for the process lifetime. Road and
// event data are fixed tables compiled into the binary; see [Roads] and
// [DefaultEvents].
//
// # Congestion Scoring
//
// A congestion score is a unitless severity measure derived from a single
// observation:
//
//	score = vehicle_count × 1.2
//	        + 20 (rain) | + 15 (fog) | − 5 (clear)
//	        + 25 if an accident was reported
//	        + 10 if inside a school zone
//	        + 15 if a public event is nearby
//
// rounded to two decimals. Scores map to a three-level risk label:
//
//	< 30 Low | < 60 Moderate | ≥ 60 Severe
//
// # Location Matching
//
// Two different notions of "near" exist and are kept distinct on purpose:
//
//   - Score lookups match observations whose coordinates are equal after
//     rounding both latitude and longitude to two decimals.
//   - Nearby averages match observations within an absolute tolerance of
//     0.01 on each axis independently (not a distance).
//
// # Simulated Fallbacks
//
// When no observations match a query, the default behavior substitutes a
// uniform random score instead of reporting "no data": [10, 80] for location
// scores and [20, 70] for nearby averages (another deliberate asymmetry).
// [ScoreForLocation] and [AverageScore] surface the distinction through
// [ScoreSource], and config selects whether the substitution happens at all.
//
// # Travel Time Estimation
//
// Per-road travel time uses base speeds of 5 (walk), 30 (bus), and 40 (car)
// units, 30 for unknown modes. Effective speed is base × (1 − density),
// floored at 1 so a saturated road yields a large finite time rather than a
// division by zero. An active event raises a road's density by 0.3, clamped
// to 1.0.
//
// # Determinism
//
// Time comes from a package-level clock (see [SetClock]) and randomness from
// a package-level seedable source (see [SetRandSeed]) so tests can pin both.
package domain
