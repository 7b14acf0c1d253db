package services

import (
	"context"
	"ecovia-route-service/internal/adapters/mock"
	"ecovia-route-service/internal/domain"
	"ecovia-route-service/internal/platform/obs"
	"ecovia-route-service/internal/ports"
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeStationsFullRecord(t *testing.T) {
	records := []ports.StationRecord{{
		AddressInfo: &ports.StationAddress{
			Title:           strp("Gare de Lyon"),
			AddressLine1:    strp("1 Rue A"),
			Town:            strp("Paris"),
			StateOrProvince: strp(""),
			Postcode:        strp("75012"),
			Country:         titled("France"),
			Latitude:        f64p(48.84),
			Longitude:       f64p(2.37),
		},
		Connections: []ports.StationConnection{
			{PowerKW: f64p(22), CurrentType: titled("AC (Three-Phase)"), ConnectionType: titled("Type 2 (Socket Only)")},
			{PowerKW: nil, ConnectionType: titled("CCS (Type 2)")},
		},
		StatusType:     titled("Operational"),
		OperatorInfo:   titled("Ionity"),
		DataProvider:   titled("Open Charge Map Contributors"),
		UsageCost:      strp("0.35 EUR/kWh"),
		NumberOfPoints: intp(4),
	}}

	got := NormalizeStations(records)
	require.Len(t, got, 1)

	s := got[0]
	assert.Equal(t, "Gare de Lyon", *s.Name)
	assert.Equal(t, "1 Rue A, Paris, 75012, France", *s.Address)
	assert.Equal(t, 48.84, *s.Lat)
	assert.Equal(t, 2.37, *s.Lon)
	assert.Equal(t, "0.35 EUR/kWh", *s.UsageCost)
	assert.Equal(t, "Ionity", *s.Operator)
	assert.Equal(t, "Open Charge Map Contributors", *s.Network)
	assert.Equal(t, 4, *s.NumPoints)
	assert.Equal(t, "Operational", *s.Status)

	require.Len(t, s.Connections, 2)
	assert.Equal(t, 22.0, *s.Connections[0].PowerKW)
	assert.Equal(t, "AC (Three-Phase)", *s.Connections[0].CurrentType)
	assert.Equal(t, "Type 2 (Socket Only)", *s.Connections[0].ConnectorType)
	assert.Nil(t, s.Connections[1].PowerKW)
	assert.Nil(t, s.Connections[1].CurrentType)
	assert.Equal(t, "CCS (Type 2)", *s.Connections[1].ConnectorType)
}

func TestNormalizeStationsDropsRecordsWithoutAddress(t *testing.T) {
	records := []ports.StationRecord{
		{AddressInfo: &ports.StationAddress{Title: strp("A"), AddressLine1: strp("1 Rue A"), Town: strp("Paris")}},
		{AddressInfo: nil, OperatorInfo: titled("Orphan")},
		{AddressInfo: &ports.StationAddress{}},
		{AddressInfo: &ports.StationAddress{Title: strp("B"), Town: strp("Lyon")}},
	}

	got := NormalizeStations(records)
	require.Len(t, got, 2)
	assert.Equal(t, "A", *got[0].Name)
	assert.Equal(t, "1 Rue A, Paris", *got[0].Address)
	assert.Equal(t, "B", *got[1].Name)
	assert.Equal(t, "Lyon", *got[1].Address)
}

func TestNormalizeStationsOptionalParts(t *testing.T) {
	records := []ports.StationRecord{{
		AddressInfo: &ports.StationAddress{Title: strp("Lonely"), Latitude: f64p(1), Longitude: f64p(2)},
	}}

	got := NormalizeStations(records)
	require.Len(t, got, 1)

	s := got[0]
	assert.Nil(t, s.Address)
	assert.Nil(t, s.Operator)
	assert.Nil(t, s.Network)
	assert.Nil(t, s.Status)
	assert.Nil(t, s.NumPoints)
	assert.NotNil(t, s.Connections)
	assert.Empty(t, s.Connections)
}

func TestNormalizeStationsEmpty(t *testing.T) {
	assert.Empty(t, NormalizeStations(nil))
	assert.NotNil(t, NormalizeStations(nil))
}

func TestStationFinderListStations(t *testing.T) {
	dir := &mock.StationDirectory{Records: []ports.StationRecord{
		{AddressInfo: &ports.StationAddress{Title: strp("A"), Town: strp("Paris")}},
	}}
	f := NewStationFinder(dir, 0, nil, nil)

	center := domain.Coordinates{Lat: 48.85, Lon: 2.35}
	res := f.ListStations(context.Background(), center, 10)

	assert.Empty(t, res.Warning)
	require.Len(t, res.Stations, 1)
	assert.Equal(t, 1, dir.Calls())
	assert.Equal(t, center, dir.LastCenter)
	assert.Equal(t, 10.0, dir.LastRadiusKm)
	assert.Equal(t, DefaultStationsMaxResults, dir.LastMaxResults)
}

func TestStationFinderWarnings(t *testing.T) {
	cases := []struct {
		name    string
		err     error
		warning string
	}{
		{"non-success status", statusErr{code: 500}, domain.WarningStationsRequestFailed},
		{"timeout", context.DeadlineExceeded, domain.WarningStationsUnavailable},
		{"decode", errors.New("decode stations: unexpected EOF"), domain.WarningStationsUnavailable},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			metrics := obs.NewMetrics(prometheus.NewRegistry())
			dir := &mock.StationDirectory{Err: tc.err}
			f := NewStationFinder(dir, 50, nil, metrics)

			res := f.ListStations(context.Background(), domain.Coordinates{Lat: 1, Lon: 2}, 5)

			assert.Equal(t, tc.warning, res.Warning)
			assert.NotNil(t, res.Stations)
			assert.Empty(t, res.Stations)
			assert.Equal(t, 1, dir.Calls())
			assert.Equal(t, 1.0, testutil.ToFloat64(metrics.StationWarnings.WithLabelValues(tc.warning)))
		})
	}
}
