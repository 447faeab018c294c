package domain

import "github.com/google/uuid"

// seedWeathers are the conditions cycled through by the seed generator.
var seedWeathers = []Weather{WeatherRain, WeatherClear, WeatherFog}

// RandomObservation fabricates a plausible observation at the given
// coordinate for seeding demos and fixtures. Vehicle count is uniform in
// [10, 200], flags are coin flips, and the timestamp comes from the package
// clock.
func RandomObservation(loc Coordinate) Observation {
	return Observation{
		ID:               uuid.NewString(),
		Location:         loc,
		VehicleCount:     10 + RandIntn(191),
		Timestamp:        Now(),
		Weather:          seedWeathers[RandIntn(len(seedWeathers))],
		AccidentReported: RandIntn(2) == 1,
		SchoolZone:       RandIntn(2) == 1,
		EventNearby:      RandIntn(2) == 1,
	}
}
