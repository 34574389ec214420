package service

import (
	"context"
	"fmt"
	"log/slog"
	"math"

	"github.com/mmynk/shopassist/internal/geo"
	"github.com/mmynk/shopassist/internal/models"
	"github.com/mmynk/shopassist/internal/storage"
)

// PlaceService owns geofence registration and proximity checks.
type PlaceService struct {
	store storage.Store
}

// NewPlaceService creates a PlaceService with the given storage backend.
func NewPlaceService(store storage.Store) *PlaceService {
	return &PlaceService{store: store}
}

// RegisterPlace validates and inserts a new place. radiusMeters of zero
// selects the default (100 m); a negative radius is rejected. Registering
// an existing name creates a second record.
func (s *PlaceService) RegisterPlace(ctx context.Context, ownerID, name string, lat, lon float64, radiusMeters int) error {
	if err := models.ValidateCoordinates(lat, lon); err != nil {
		return err
	}
	if radiusMeters == 0 {
		radiusMeters = models.DefaultRadiusMeters
	}
	if radiusMeters < 0 {
		return models.ErrInvalidRadius
	}

	place := &models.Place{
		OwnerID:      ownerID,
		Name:         name,
		Latitude:     lat,
		Longitude:    lon,
		RadiusMeters: radiusMeters,
	}
	if err := s.store.AddPlace(ctx, place); err != nil {
		return fmt.Errorf("register place %q: %w", name, err)
	}

	slog.Info("place registered", "owner_id", ownerID, "name", name, "radius_m", radiusMeters)
	return nil
}

// CheckProximity returns the first registered place (in storage order)
// whose radius contains the given coordinates. This is deliberately a
// first-match policy, not nearest-match: with several places in range the
// result depends on registration order.
func (s *PlaceService) CheckProximity(ctx context.Context, ownerID string, lat, lon float64) (*models.ProximityResult, error) {
	if err := models.ValidateCoordinates(lat, lon); err != nil {
		return nil, err
	}

	places, err := s.store.ListPlaces(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list places: %w", err)
	}
	if len(places) == 0 {
		return &models.ProximityResult{
			WithinRange: false,
			Message:     "no places registered",
		}, nil
	}

	for _, p := range places {
		d := geo.Distance(lat, lon, p.Latitude, p.Longitude)
		if d <= float64(p.RadiusMeters) {
			meters := int(math.Round(d))
			return &models.ProximityResult{
				WithinRange:    true,
				PlaceName:      p.Name,
				DistanceMeters: meters,
				Message:        fmt.Sprintf("near %s (%dm)", p.Name, meters),
			}, nil
		}
	}

	return &models.ProximityResult{
		WithinRange: false,
		Message:     "not near any registered place",
	}, nil
}
