package service

import (
	"context"
	"errors"
	"testing"

	"github.com/mmynk/shopassist/internal/models"
	"github.com/mmynk/shopassist/internal/storage/memory"
)

func TestRegisterPlaceValidation(t *testing.T) {
	svc := NewPlaceService(memory.New())
	ctx := context.Background()

	tests := []struct {
		name    string
		lat     float64
		lon     float64
		radius  int
		wantErr error
	}{
		{"latitude too high", 91, 0, 100, models.ErrInvalidLatitude},
		{"latitude too low", -90.5, 0, 100, models.ErrInvalidLatitude},
		{"longitude too high", 0, 181, 100, models.ErrInvalidLongitude},
		{"longitude too low", 0, -180.5, 100, models.ErrInvalidLongitude},
		{"negative radius", 35, 139, -1, models.ErrInvalidRadius},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := svc.RegisterPlace(ctx, "u1", "Market", tt.lat, tt.lon, tt.radius)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("RegisterPlace error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestRegisterPlaceDefaultsRadius(t *testing.T) {
	store := memory.New()
	svc := NewPlaceService(store)
	ctx := context.Background()

	if err := svc.RegisterPlace(ctx, "u1", "Market", 35.0, 139.0, 0); err != nil {
		t.Fatalf("RegisterPlace failed: %v", err)
	}

	places, err := store.ListPlaces(ctx, "u1")
	if err != nil {
		t.Fatalf("ListPlaces failed: %v", err)
	}
	if len(places) != 1 || places[0].RadiusMeters != models.DefaultRadiusMeters {
		t.Errorf("places = %+v, want one place with radius 100", places)
	}
}

func TestCheckProximity(t *testing.T) {
	svc := NewPlaceService(memory.New())
	ctx := context.Background()

	t.Run("no places registered", func(t *testing.T) {
		result, err := svc.CheckProximity(ctx, "u-none", 35.0, 139.0)
		if err != nil {
			t.Fatalf("CheckProximity failed: %v", err)
		}
		if result.WithinRange {
			t.Error("expected WithinRange=false with no places")
		}
		if result.Message != "no places registered" {
			t.Errorf("Message = %q", result.Message)
		}
	})

	if err := svc.RegisterPlace(ctx, "u1", "Market", 35.0, 139.0, 100); err != nil {
		t.Fatalf("RegisterPlace failed: %v", err)
	}

	t.Run("exactly at the place", func(t *testing.T) {
		result, err := svc.CheckProximity(ctx, "u1", 35.0, 139.0)
		if err != nil {
			t.Fatalf("CheckProximity failed: %v", err)
		}
		if !result.WithinRange || result.PlaceName != "Market" || result.DistanceMeters != 0 {
			t.Errorf("result = %+v, want within range at Market, 0m", result)
		}
	})

	t.Run("one degree of latitude away", func(t *testing.T) {
		result, err := svc.CheckProximity(ctx, "u1", 36.0, 139.0)
		if err != nil {
			t.Fatalf("CheckProximity failed: %v", err)
		}
		if result.WithinRange {
			t.Errorf("~111 km exceeds a 100 m radius, got %+v", result)
		}
	})

	t.Run("other owners see nothing", func(t *testing.T) {
		result, err := svc.CheckProximity(ctx, "u2", 35.0, 139.0)
		if err != nil {
			t.Fatalf("CheckProximity failed: %v", err)
		}
		if result.WithinRange {
			t.Error("place must not be visible to another owner")
		}
	})

	t.Run("invalid coordinates rejected", func(t *testing.T) {
		if _, err := svc.CheckProximity(ctx, "u1", 120.0, 139.0); !errors.Is(err, models.ErrInvalidLatitude) {
			t.Errorf("error = %v, want ErrInvalidLatitude", err)
		}
	})
}

func TestCheckProximityFirstMatchPolicy(t *testing.T) {
	svc := NewPlaceService(memory.New())
	ctx := context.Background()

	// Far is registered first but Near is closer; first-match by storage
	// order must return Far.
	if err := svc.RegisterPlace(ctx, "u1", "Far", 35.001, 139.0, 200); err != nil {
		t.Fatalf("RegisterPlace failed: %v", err)
	}
	if err := svc.RegisterPlace(ctx, "u1", "Near", 35.0, 139.0, 200); err != nil {
		t.Fatalf("RegisterPlace failed: %v", err)
	}

	result, err := svc.CheckProximity(ctx, "u1", 35.0, 139.0)
	if err != nil {
		t.Fatalf("CheckProximity failed: %v", err)
	}
	if result.PlaceName != "Far" {
		t.Errorf("PlaceName = %q, want Far (first in storage order)", result.PlaceName)
	}
}
