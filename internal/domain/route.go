package domain

// RouteResult is the aggregated answer to a route request.
// Path runs from the start vicinity to the end vicinity and is never empty.
// It is immutable request-scoped data.
type RouteResult struct {
	Start           Coordinates
	End             Coordinates
	Mode            TravelMode
	DistanceMeters  float64
	DurationSeconds float64
	CO2Kg           float64
	CO2SavingsKg    float64
	Path            []Coordinates
}

// RoundMetric rounds distance and duration values for output (1 decimal place).
func RoundMetric(v float64) float64 { return roundTo(v, 1) }
