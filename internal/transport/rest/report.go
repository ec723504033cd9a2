package rest

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/heartmarshall/incident-desk/internal/domain"
	"github.com/heartmarshall/incident-desk/internal/service/report"
)

// reportService defines the minimal interface needed by ReportHandler.
type reportService interface {
	Submit(ctx context.Context, input report.SubmitInput) (*domain.Report, error)
	List(ctx context.Context, input report.ListInput) ([]domain.ReportSummary, int, error)
	Get(ctx context.Context, reportID string) (*domain.Report, error)
	History(ctx context.Context, reportID string) ([]domain.StatusChange, error)
	Image(ctx context.Context, reportID string) (io.ReadCloser, string, error)
	Transition(ctx context.Context, input report.TransitionInput) (*domain.Report, error)
}

// ReportHandler serves report intake and triage endpoints.
type ReportHandler struct {
	svc         reportService
	log         *slog.Logger
	maxBodySize int64
}

// NewReportHandler creates a ReportHandler. maxBodySize bounds the submit
// body, which carries the base64 image.
func NewReportHandler(svc reportService, logger *slog.Logger, maxBodySize int64) *ReportHandler {
	return &ReportHandler{svc: svc, log: logger.With("handler", "report"), maxBodySize: maxBodySize}
}

type submitRequest struct {
	Urgency      string   `json:"urgency"`
	Category     string   `json:"category"`
	Type         string   `json:"type"`
	SpecificType string   `json:"specificType"`
	ReportType   string   `json:"reportType"`
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	Location     string   `json:"location"`
	Latitude     *float64 `json:"latitude"`
	Longitude    *float64 `json:"longitude"`
	Image        string   `json:"image"`
}

type submitResponse struct {
	Success  bool              `json:"success"`
	ReportID string            `json:"reportId,omitempty"`
	Message  string            `json:"message,omitempty"`
	Error    string            `json:"error,omitempty"`
	Fields   map[string]string `json:"fields,omitempty"`
}

type transitionRequest struct {
	Status  string `json:"status"`
	Version *int   `json:"version"`
}

type reportResponse struct {
	ReportID    string    `json:"reportId"`
	Urgency     string    `json:"urgency"`
	Category    string    `json:"category"`
	ReportType  string    `json:"reportType"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Location    *string   `json:"location"`
	Latitude    *float64  `json:"latitude"`
	Longitude   *float64  `json:"longitude"`
	ImageURL    *string   `json:"imageUrl"`
	Status      string    `json:"status"`
	Version     int       `json:"version,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type statusChangeResponse struct {
	From      string    `json:"from"`
	To        string    `json:"to"`
	ActorID   string    `json:"actorId"`
	CreatedAt time.Time `json:"createdAt"`
}

// Submit handles POST /reports. The response envelope is the one the
// public intake form expects.
func (h *ReportHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req submitRequest
	if err := decodeJSON(w, r, h.maxBodySize, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, submitResponse{Error: "validation failed", Fields: fieldMap(err)})
		return
	}

	created, err := h.svc.Submit(r.Context(), report.SubmitInput{
		Urgency:      req.Urgency,
		Category:     req.Category,
		Type:         req.Type,
		SpecificType: req.SpecificType,
		ReportType:   req.ReportType,
		Title:        req.Title,
		Description:  req.Description,
		Location:     req.Location,
		Latitude:     req.Latitude,
		Longitude:    req.Longitude,
		Image:        req.Image,
	})
	if err != nil {
		if errors.Is(err, domain.ErrValidation) {
			writeJSON(w, http.StatusBadRequest, submitResponse{Error: "validation failed", Fields: fieldMap(err)})
			return
		}
		h.log.ErrorContext(r.Context(), "submit report", slog.String("error", err.Error()))
		writeJSON(w, http.StatusInternalServerError, submitResponse{Error: "Failed to submit report"})
		return
	}

	writeJSON(w, http.StatusOK, submitResponse{
		Success:  true,
		ReportID: created.ReportID,
		Message:  "Report submitted successfully",
	})
}

// List handles GET /reports.
func (h *ReportHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	var fields []domain.FieldError
	limit := queryInt(q.Get("limit"), "limit", &fields)
	offset := queryInt(q.Get("offset"), "offset", &fields)
	if len(fields) > 0 {
		handleError(w, r, h.log, domain.NewValidationErrors(fields))
		return
	}

	summaries, total, err := h.svc.List(r.Context(), report.ListInput{
		Status:   q.Get("status"),
		Category: q.Get("category"),
		Urgency:  q.Get("urgency"),
		Type:     q.Get("type"),
		Limit:    limit,
		Offset:   offset,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	out := make([]reportResponse, 0, len(summaries))
	for _, s := range summaries {
		out = append(out, toSummaryResponse(s))
	}

	w.Header().Set("X-Total-Count", strconv.Itoa(total))
	writeJSON(w, http.StatusOK, out)
}

// Get handles GET /reports/{reportId}.
func (h *ReportHandler) Get(w http.ResponseWriter, r *http.Request) {
	rep, err := h.svc.Get(r.Context(), chi.URLParam(r, "reportId"))
	if err != nil {
		h.handleLookupError(w, r, err, "Failed to fetch report details")
		return
	}
	writeJSON(w, http.StatusOK, toReportResponse(rep))
}

// Image handles GET /reports/{reportId}/image.
func (h *ReportHandler) Image(w http.ResponseWriter, r *http.Request) {
	body, contentType, err := h.svc.Image(r.Context(), chi.URLParam(r, "reportId"))
	if err != nil {
		h.handleLookupError(w, r, err, "Failed to fetch report image")
		return
	}
	defer body.Close()

	w.Header().Set("Content-Type", contentType)
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.Header().Set("Cache-Control", "private, max-age=3600")
	w.WriteHeader(http.StatusOK)
	if _, err := io.Copy(w, body); err != nil {
		h.log.WarnContext(r.Context(), "stream report image", slog.String("error", err.Error()))
	}
}

// History handles GET /reports/{reportId}/history.
func (h *ReportHandler) History(w http.ResponseWriter, r *http.Request) {
	changes, err := h.svc.History(r.Context(), chi.URLParam(r, "reportId"))
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	out := make([]statusChangeResponse, 0, len(changes))
	for _, c := range changes {
		out = append(out, statusChangeResponse{
			From:      c.FromStatus.String(),
			To:        c.ToStatus.String(),
			ActorID:   c.ActorID.String(),
			CreatedAt: c.CreatedAt,
		})
	}
	writeJSON(w, http.StatusOK, out)
}

// Transition handles PATCH /reports/{reportId}.
func (h *ReportHandler) Transition(w http.ResponseWriter, r *http.Request) {
	var req transitionRequest
	if err := decodeJSON(w, r, smallBodyLimit, &req); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	updated, err := h.svc.Transition(r.Context(), report.TransitionInput{
		ReportID: chi.URLParam(r, "reportId"),
		Status:   req.Status,
		Version:  req.Version,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toReportResponse(updated))
}

func (h *ReportHandler) handleLookupError(w http.ResponseWriter, r *http.Request, err error, message string) {
	if errors.Is(err, domain.ErrNotFound) {
		writeError(w, http.StatusNotFound, "Report not found")
		return
	}
	h.log.ErrorContext(r.Context(), "report lookup",
		slog.String("path", r.URL.Path),
		slog.String("error", err.Error()))
	writeError(w, http.StatusInternalServerError, message)
}

func queryInt(raw, field string, errs *[]domain.FieldError) int {
	if raw == "" {
		return 0
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		*errs = append(*errs, domain.FieldError{Field: field, Message: "must be an integer"})
		return 0
	}
	return n
}

func imageURL(reportID string) *string {
	u := "/reports/" + reportID + "/image"
	return &u
}

func toReportResponse(r *domain.Report) reportResponse {
	resp := reportResponse{
		ReportID:    r.ReportID,
		Urgency:     r.Urgency.String(),
		Category:    r.Category.String(),
		ReportType:  r.Category.Label(),
		Title:       r.Title,
		Description: r.Description,
		Location:    r.Location,
		Latitude:    r.Latitude,
		Longitude:   r.Longitude,
		Status:      r.Status.String(),
		Version:     r.Version,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
	if r.HasImage() {
		resp.ImageURL = imageURL(r.ReportID)
	}
	return resp
}

func toSummaryResponse(s domain.ReportSummary) reportResponse {
	resp := reportResponse{
		ReportID:    s.ReportID,
		Urgency:     s.Urgency.String(),
		Category:    s.Category.String(),
		ReportType:  s.Category.Label(),
		Title:       s.Title,
		Description: s.Description,
		Location:    s.Location,
		Latitude:    s.Latitude,
		Longitude:   s.Longitude,
		Status:      s.Status.String(),
		CreatedAt:   s.CreatedAt,
		UpdatedAt:   s.UpdatedAt,
	}
	if s.HasImage {
		resp.ImageURL = imageURL(s.ReportID)
	}
	return resp
}
