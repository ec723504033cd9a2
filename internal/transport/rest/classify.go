package rest

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/incident-desk/internal/domain"
	"github.com/heartmarshall/incident-desk/internal/service/classify"
)

type classifyService interface {
	Classify(ctx context.Context, input classify.ClassifyInput) (*domain.Classification, error)
}

// ClassifyHandler serves the image analysis endpoint used by the intake form.
type ClassifyHandler struct {
	svc         classifyService
	log         *slog.Logger
	maxBodySize int64
}

// NewClassifyHandler creates a ClassifyHandler.
func NewClassifyHandler(svc classifyService, logger *slog.Logger, maxBodySize int64) *ClassifyHandler {
	return &ClassifyHandler{svc: svc, log: logger.With("handler", "classify"), maxBodySize: maxBodySize}
}

type classifyResponse struct {
	Title       string `json:"title"`
	ReportType  string `json:"reportType"`
	Description string `json:"description"`
}

// Classify handles POST /images/classify.
func (h *ClassifyHandler) Classify(w http.ResponseWriter, r *http.Request) {
	var input classify.ClassifyInput
	if err := decodeJSON(w, r, h.maxBodySize, &input); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	result, err := h.svc.Classify(r.Context(), input)
	if err != nil {
		if errors.Is(err, domain.ErrValidation) {
			handleError(w, r, h.log, err)
			return
		}
		h.log.ErrorContext(r.Context(), "classify image", slog.String("error", err.Error()))
		writeError(w, http.StatusInternalServerError, "Failed to analyze image")
		return
	}

	writeJSON(w, http.StatusOK, classifyResponse{
		Title:       result.Title,
		ReportType:  result.Category.Label(),
		Description: result.Description,
	})
}
