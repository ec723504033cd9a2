package rest

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/incident-desk/internal/domain"
	"github.com/heartmarshall/incident-desk/internal/service/geo"
)

type geoService interface {
	Enabled() bool
	Resolve(ctx context.Context, input geo.ResolveInput) (*domain.GeoLocation, error)
}

// LocationHandler serves address and coordinate resolution.
type LocationHandler struct {
	svc geoService
	log *slog.Logger
}

// NewLocationHandler creates a LocationHandler.
func NewLocationHandler(svc geoService, logger *slog.Logger) *LocationHandler {
	return &LocationHandler{svc: svc, log: logger.With("handler", "location")}
}

type locationResponse struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Address   string  `json:"address"`
}

// Resolve handles POST /locations/resolve.
func (h *LocationHandler) Resolve(w http.ResponseWriter, r *http.Request) {
	if !h.svc.Enabled() {
		writeError(w, http.StatusServiceUnavailable, "location lookup is not available")
		return
	}

	var input geo.ResolveInput
	if err := decodeJSON(w, r, smallBodyLimit, &input); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	loc, err := h.svc.Resolve(r.Context(), input)
	if err != nil {
		if errors.Is(err, domain.ErrGeolocation) {
			writeError(w, http.StatusBadGateway, "location provider failed")
			return
		}
		if errors.Is(err, domain.ErrNotFound) {
			writeError(w, http.StatusNotFound, "location not found")
			return
		}
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, locationResponse{
		Latitude:  loc.Latitude,
		Longitude: loc.Longitude,
		Address:   loc.Address,
	})
}
