// Package geo resolves free-text addresses and coordinate pairs through a
// geocoding provider.
package geo

import (
	"context"
	"log/slog"

	"github.com/heartmarshall/incident-desk/internal/domain"
)

// provider is the geocoding backend. Implementations return
// domain.ErrNotFound when the query has no result.
type provider interface {
	Geocode(ctx context.Context, address string) (*domain.GeoLocation, error)
	ReverseGeocode(ctx context.Context, lat, lng float64) (*domain.GeoLocation, error)
}

// Service implements location resolution.
type Service struct {
	log      *slog.Logger
	provider provider
}

// NewService creates a geo service. A nil provider disables it: every call
// then fails with domain.ErrGeolocation.
func NewService(logger *slog.Logger, p provider) *Service {
	return &Service{
		log:      logger.With("service", "geo"),
		provider: p,
	}
}

// Enabled reports whether a geocoding provider is configured.
func (s *Service) Enabled() bool {
	return s.provider != nil
}
