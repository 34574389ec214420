package models

import "errors"

// Validation errors for place registration and proximity checks.
var (
	ErrInvalidLatitude  = errors.New("latitude must be in [-90, 90]")
	ErrInvalidLongitude = errors.New("longitude must be in [-180, 180]")
	ErrInvalidRadius    = errors.New("radius must be a positive number of meters")
)

// DefaultRadiusMeters is the geofence radius applied when the caller does
// not supply one.
const DefaultRadiusMeters = 100

// Place is a geofenced store location registered by a user.
// Re-registering the same name creates a second record; there is no
// update-by-name.
type Place struct {
	// ID is the unique identifier for the place (UUID format).
	ID string `json:"id"`

	// OwnerID identifies the user who registered the place.
	// Immutable after creation.
	OwnerID string `json:"ownerId"`

	// Name is the display name of the place (e.g., "Market").
	Name string `json:"name"`

	// Latitude in degrees, range [-90, 90].
	Latitude float64 `json:"latitude"`

	// Longitude in degrees, range [-180, 180].
	Longitude float64 `json:"longitude"`

	// RadiusMeters is the proximity trigger radius. Always positive.
	RadiusMeters int `json:"radiusMeters"`

	// CreatedAt is the Unix timestamp when the place was registered.
	CreatedAt int64 `json:"createdAt"`
}

// ValidateCoordinates checks that a latitude/longitude pair is in range.
func ValidateCoordinates(lat, lon float64) error {
	if lat < -90 || lat > 90 {
		return ErrInvalidLatitude
	}
	if lon < -180 || lon > 180 {
		return ErrInvalidLongitude
	}
	return nil
}

// ProximityResult is the structured outcome of a proximity check.
type ProximityResult struct {
	// WithinRange reports whether the coordinates fall inside any
	// registered place's radius.
	WithinRange bool `json:"withinRange"`

	// PlaceName is the first in-range place by storage order.
	// Empty when WithinRange is false.
	PlaceName string `json:"placeName,omitempty"`

	// DistanceMeters is the rounded distance to the matched place.
	DistanceMeters int `json:"distanceMeters,omitempty"`

	// Message is a short human-readable summary fed to the synthesizer.
	Message string `json:"message"`
}
