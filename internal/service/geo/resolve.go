package geo

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/incident-desk/internal/domain"
	"github.com/heartmarshall/incident-desk/internal/validate"
)

// ResolveInput names either an address or a coordinate pair, never both.
type ResolveInput struct {
	Address   string   `json:"address"   validate:"omitempty,max=500"`
	Latitude  *float64 `json:"latitude"  validate:"omitempty,latitude"`
	Longitude *float64 `json:"longitude" validate:"omitempty,longitude"`
}

// Validate normalizes and validates the input.
func (i *ResolveInput) Validate() error {
	i.Address = strings.TrimSpace(i.Address)
	if err := validate.Struct(i); err != nil {
		return err
	}

	hasCoords := i.Latitude != nil && i.Longitude != nil
	switch {
	case (i.Latitude == nil) != (i.Longitude == nil):
		return domain.NewValidationError("coordinates", "latitude and longitude must be provided together")
	case i.Address == "" && !hasCoords:
		return domain.NewValidationError("address", "address or latitude and longitude required")
	case i.Address != "" && hasCoords:
		return domain.NewValidationError("address", "give either an address or coordinates, not both")
	}
	return nil
}

// Resolve geocodes an address, or reverse geocodes a coordinate pair.
func (s *Service) Resolve(ctx context.Context, input ResolveInput) (*domain.GeoLocation, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	if input.Address != "" {
		return s.Lookup(ctx, input.Address)
	}
	return s.Reverse(ctx, *input.Latitude, *input.Longitude)
}

// Lookup geocodes a free-text address.
func (s *Service) Lookup(ctx context.Context, address string) (*domain.GeoLocation, error) {
	if !s.Enabled() {
		return nil, fmt.Errorf("geo: provider not configured: %w", domain.ErrGeolocation)
	}

	loc, err := s.provider.Geocode(ctx, address)
	if err != nil {
		return nil, s.wrap(ctx, "geocode", err)
	}
	return loc, nil
}

// Reverse finds the address nearest to a coordinate pair.
func (s *Service) Reverse(ctx context.Context, lat, lng float64) (*domain.GeoLocation, error) {
	if !s.Enabled() {
		return nil, fmt.Errorf("geo: provider not configured: %w", domain.ErrGeolocation)
	}
	if !(domain.Coordinates{Latitude: lat, Longitude: lng}).Valid() {
		return nil, domain.NewValidationError("coordinates", "latitude must be in [-90, 90] and longitude in [-180, 180]")
	}

	loc, err := s.provider.ReverseGeocode(ctx, lat, lng)
	if err != nil {
		return nil, s.wrap(ctx, "reverse geocode", err)
	}
	return loc, nil
}

func (s *Service) wrap(ctx context.Context, op string, err error) error {
	if errors.Is(err, domain.ErrNotFound) {
		return fmt.Errorf("geo.%s: %w", strings.ReplaceAll(op, " ", "_"), err)
	}
	if errors.Is(err, context.Canceled) {
		return err
	}
	s.log.WarnContext(ctx, "geocoding provider failed",
		slog.String("op", op),
		slog.String("error", err.Error()))
	return fmt.Errorf("geo.%s: %w: %w", strings.ReplaceAll(op, " ", "_"), domain.ErrGeolocation, err)
}
