package services

import (
	"context"
	"ecovia-route-service/internal/domain"
	"ecovia-route-service/internal/platform/obs"
	"ecovia-route-service/internal/ports"
	"errors"
	"strings"

	"go.uber.org/zap"
)

const DefaultStationsMaxResults = 50

// StationFinder lists charging stations around a point on a best-effort basis.
type StationFinder struct {
	directory  ports.StationDirectory
	maxResults int
	logger     *zap.Logger
	metrics    *obs.Metrics
}

// NewStationFinder returns a finder that asks directory for at most maxResults
// records. metrics may be nil.
func NewStationFinder(directory ports.StationDirectory, maxResults int, logger *zap.Logger, metrics *obs.Metrics) *StationFinder {
	if maxResults <= 0 {
		maxResults = DefaultStationsMaxResults
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &StationFinder{
		directory:  directory,
		maxResults: maxResults,
		logger:     logger,
		metrics:    metrics,
	}
}

// ListStations never fails. When the directory cannot be used the result is
// empty and carries a warning instead.
func (f *StationFinder) ListStations(ctx context.Context, center domain.Coordinates, radiusKm float64) domain.StationsResult {
	if f.directory == nil {
		return f.degraded(domain.WarningStationsUnavailable, errors.New("no station directory configured"))
	}

	records, err := f.directory.NearbyStations(ctx, center, radiusKm, f.maxResults)
	if err != nil {
		var sc statusCoder
		if errors.As(err, &sc) {
			return f.degraded(domain.WarningStationsRequestFailed, err)
		}
		return f.degraded(domain.WarningStationsUnavailable, err)
	}

	return domain.StationsResult{Stations: NormalizeStations(records)}
}

func (f *StationFinder) degraded(warning string, err error) domain.StationsResult {
	f.logger.Warn("station lookup degraded", zap.String("warning", warning), zap.Error(err))
	if f.metrics != nil {
		f.metrics.StationWarnings.WithLabelValues(warning).Inc()
	}
	return domain.StationsResult{Stations: []domain.ChargingStation{}, Warning: warning}
}

// NormalizeStations maps raw directory records onto ChargingStation.
// Records without address information are dropped; order is preserved.
func NormalizeStations(records []ports.StationRecord) []domain.ChargingStation {
	out := make([]domain.ChargingStation, 0, len(records))
	for _, rec := range records {
		addr := rec.AddressInfo
		if addr.IsEmpty() {
			continue
		}

		conns := make([]domain.ConnectionInfo, 0, len(rec.Connections))
		for _, c := range rec.Connections {
			conns = append(conns, domain.ConnectionInfo{
				PowerKW:       c.PowerKW,
				CurrentType:   c.CurrentType.TitleOf(),
				ConnectorType: c.ConnectionType.TitleOf(),
			})
		}

		out = append(out, domain.ChargingStation{
			Name:        addr.Title,
			Address:     joinAddress(addr.AddressLine1, addr.Town, addr.StateOrProvince, addr.Postcode, addr.Country.TitleOf()),
			Lat:         addr.Latitude,
			Lon:         addr.Longitude,
			UsageCost:   rec.UsageCost,
			Operator:    rec.OperatorInfo.TitleOf(),
			Network:     rec.DataProvider.TitleOf(),
			NumPoints:   rec.NumberOfPoints,
			Status:      rec.StatusType.TitleOf(),
			Connections: conns,
		})
	}
	return out
}

// joinAddress joins the present, non-empty parts with ", ".
// It returns nil when no part is present.
func joinAddress(parts ...*string) *string {
	kept := make([]string, 0, len(parts))
	for _, p := range parts {
		if p != nil && *p != "" {
			kept = append(kept, *p)
		}
	}
	if len(kept) == 0 {
		return nil
	}
	s := strings.Join(kept, ", ")
	return &s
}
