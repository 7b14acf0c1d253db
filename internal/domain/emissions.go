package domain

import "math"

// Coarse per-kilometer emission factors in grams of CO2.
const (
	ICEGramsPerKm = 192.0
	EVGramsPerKm  = 50.0
)

// Emissions is the CO2 estimate for a single trip, in kilograms.
type Emissions struct {
	CO2Kg        float64
	CO2SavingsKg float64
}

// EstimateEmissions returns the CO2 emitted by a trip and the CO2 saved compared
// with driving the same distance in an internal-combustion car.
//
// Walking and cycling emit nothing and save the full ICE figure. Driving is
// counted as driving electric: it emits the EV figure and saves the difference.
// Any other mode, and any non-positive distance, yields zero for both.
func EstimateEmissions(distanceMeters float64, mode TravelMode) Emissions {
	if !(distanceMeters > 0) {
		return Emissions{}
	}
	km := distanceMeters / 1000.0

	var emittedG, savedG float64
	switch mode {
	case ModeWalk, ModeCycle:
		savedG = ICEGramsPerKm * km
	case ModeDrive:
		emittedG = EVGramsPerKm * km
		savedG = (ICEGramsPerKm - EVGramsPerKm) * km
	}

	return Emissions{
		CO2Kg:        roundTo(emittedG/1000.0, 3),
		CO2SavingsKg: roundTo(savedG/1000.0, 3),
	}
}

func roundTo(v float64, places int) float64 {
	p := math.Pow10(places)
	return math.Round(v*p) / p
}
