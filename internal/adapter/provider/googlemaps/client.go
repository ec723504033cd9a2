// Package googlemaps resolves addresses and coordinates with the Google Maps
// Geocoding API.
package googlemaps

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"googlemaps.github.io/maps"

	"github.com/heartmarshall/incident-desk/internal/config"
	"github.com/heartmarshall/incident-desk/internal/domain"
)

// Client wraps the maps client.
type Client struct {
	maps *maps.Client
	log  *slog.Logger
}

// NewClient creates a geocoding client from config.
func NewClient(cfg config.GeoConfig, logger *slog.Logger) (*Client, error) {
	opts := []maps.ClientOption{
		maps.WithAPIKey(cfg.APIKey),
		maps.WithHTTPClient(&http.Client{Timeout: cfg.Timeout}),
	}
	if cfg.BaseURL != "" {
		opts = append(opts, maps.WithBaseURL(cfg.BaseURL))
	}

	mc, err := maps.NewClient(opts...)
	if err != nil {
		return nil, fmt.Errorf("googlemaps: new client: %w", err)
	}

	return &Client{
		maps: mc,
		log:  logger.With("adapter", "googlemaps"),
	}, nil
}

// Geocode returns the best match for a free-text address.
func (c *Client) Geocode(ctx context.Context, address string) (*domain.GeoLocation, error) {
	c.log.DebugContext(ctx, "geocode request", slog.String("address", address))

	results, err := c.maps.Geocode(ctx, &maps.GeocodingRequest{Address: address})
	if err != nil {
		return nil, mapError("geocode", err)
	}
	return first(results, "address "+address)
}

// ReverseGeocode returns the address nearest to a coordinate pair.
func (c *Client) ReverseGeocode(ctx context.Context, lat, lng float64) (*domain.GeoLocation, error) {
	c.log.DebugContext(ctx, "reverse geocode request",
		slog.Float64("lat", lat),
		slog.Float64("lng", lng))

	results, err := c.maps.ReverseGeocode(ctx, &maps.GeocodingRequest{
		LatLng: &maps.LatLng{Lat: lat, Lng: lng},
	})
	if err != nil {
		return nil, mapError("reverse geocode", err)
	}
	return first(results, fmt.Sprintf("coordinates %f,%f", lat, lng))
}

func first(results []maps.GeocodingResult, query string) (*domain.GeoLocation, error) {
	if len(results) == 0 {
		return nil, fmt.Errorf("googlemaps: %s: %w", query, domain.ErrNotFound)
	}
	r := results[0]
	return &domain.GeoLocation{
		Latitude:  r.Geometry.Location.Lat,
		Longitude: r.Geometry.Location.Lng,
		Address:   r.FormattedAddress,
	}, nil
}

func mapError(op string, err error) error {
	if strings.Contains(err.Error(), "ZERO_RESULTS") {
		return fmt.Errorf("googlemaps: %s: %w", op, domain.ErrNotFound)
	}
	return fmt.Errorf("googlemaps: %s: %w", op, err)
}
