package domain

// ChargingStation is the stable shape of one charging-station listing.
// Every field may be absent because the directory does not guarantee a schema.
type ChargingStation struct {
	Name        *string
	Address     *string
	Lat         *float64
	Lon         *float64
	UsageCost   *string
	Operator    *string
	Network     *string
	NumPoints   *int
	Status      *string
	Connections []ConnectionInfo
}

// ConnectionInfo describes one connector on a station.
type ConnectionInfo struct {
	PowerKW       *float64
	CurrentType   *string
	ConnectorType *string
}

// Warnings attached to a station listing when the directory could not be used.
const (
	WarningStationsRequestFailed = "OpenChargeMap request failed"
	WarningStationsUnavailable   = "OpenChargeMap unavailable"
)

// StationsResult is a best-effort station listing. Warning is empty when the
// directory answered normally.
type StationsResult struct {
	Stations []ChargingStation
	Warning  string
}

// GeocodeSuggestion is one autocomplete candidate.
type GeocodeSuggestion struct {
	Label       *string
	Coordinates Coordinates
}
