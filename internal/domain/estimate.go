package domain

// TravelMode selects the base speed used for travel time estimation.
type TravelMode string

const (
	ModeWalk TravelMode = "walk"
	ModeBus  TravelMode = "bus"
	ModeCar  TravelMode = "car"
)

// eventDensityBump is how much an active event raises a road's density.
const eventDensityBump = 0.3

// BaseSpeed returns the travel speed for a mode in catalog units per hour.
// Unknown modes fall back to the bus speed.
func BaseSpeed(mode TravelMode) float64 {
	switch mode {
	case ModeWalk:
		return 5
	case ModeBus:
		return 30
	case ModeCar:
		return 40
	default:
		return 30
	}
}

// EstimateTime computes travel time in minutes for a road of the given
// length and density. Effective speed is base × (1 − density), floored at 1
// so the result is always finite and positive. Rounded to two decimals.
func EstimateTime(length, density float64, mode TravelMode) float64 {
	speed := BaseSpeed(mode) * (1 - density)
	if speed <= 0 {
		speed = 1
	}
	return Round2((length / speed) * 60)
}

// AdjustDensity raises density by the event bump when an active event
// affects the road, clamped to 1.0. Unaffected roads pass through unchanged.
func AdjustDensity(density float64, eventActive bool) float64 {
	if !eventActive {
		return density
	}
	return min(1.0, density+eventDensityBump)
}
