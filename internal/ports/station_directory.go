package ports

import (
	"context"
	"ecovia-route-service/internal/domain"
)

// StationRecord mirrors the charging-station directory's record shape.
// Every nested structure is optional and is modeled as a pointer so that an
// absent sub-structure is visible at the type level.
type StationRecord struct {
	AddressInfo    *StationAddress     `json:"AddressInfo"`
	Connections    []StationConnection `json:"Connections"`
	StatusType     *Titled             `json:"StatusType"`
	OperatorInfo   *Titled             `json:"OperatorInfo"`
	DataProvider   *Titled             `json:"DataProvider"`
	UsageCost      *string             `json:"UsageCost"`
	NumberOfPoints *int                `json:"NumberOfPoints"`
}

type StationAddress struct {
	Title           *string  `json:"Title"`
	AddressLine1    *string  `json:"AddressLine1"`
	Town            *string  `json:"Town"`
	StateOrProvince *string  `json:"StateOrProvince"`
	Postcode        *string  `json:"Postcode"`
	Country         *Titled  `json:"Country"`
	Latitude        *float64 `json:"Latitude"`
	Longitude       *float64 `json:"Longitude"`
}

// IsEmpty reports whether the address carries no field at all ({} upstream).
func (a *StationAddress) IsEmpty() bool {
	return a == nil || *a == (StationAddress{})
}

type StationConnection struct {
	PowerKW        *float64 `json:"PowerKW"`
	CurrentType    *Titled  `json:"CurrentType"`
	ConnectionType *Titled  `json:"ConnectionType"`
}

// Titled is the directory's generic {"Title": ...} reference object.
type Titled struct {
	Title *string `json:"Title"`
}

// TitleOf returns t.Title, tolerating a nil receiver.
func (t *Titled) TitleOf() *string {
	if t == nil {
		return nil
	}
	return t.Title
}

// Contract for listing charging stations around a point.
type StationDirectory interface {
	// Return up to maxResults stations within radiusKm of center, in directory order.
	NearbyStations(ctx context.Context, center domain.Coordinates, radiusKm float64, maxResults int) ([]StationRecord, error)
}
