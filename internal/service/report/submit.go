package report

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/incident-desk/internal/domain"
	"github.com/heartmarshall/incident-desk/pkg/imagedata"
)

// Submit validates an anonymous submission, stores its image, assigns a
// fresh report id and persists the report as PENDING.
// Collaborator failures (classification, geocoding) never fail the call.
func (s *Service) Submit(ctx context.Context, input SubmitInput) (*domain.Report, error) {
	// Step 1: Build the draft
	draft, errs := s.buildDraft(input)

	// Step 2: Fill gaps from the image and the location before validating
	if len(errs) == 0 {
		draft = s.assist(ctx, draft)
	}

	// Step 3: Validate
	if err := draft.Validate(); err != nil {
		fields, ok := domain.AsFieldErrors(err)
		if !ok {
			return nil, err
		}
		errs = append(errs, fields...)
	}
	if len(errs) > 0 {
		return nil, &domain.ValidationError{Errors: errs}
	}

	internalID := uuid.New()

	// Step 4: Store the image
	imageKey, contentType, err := s.storeImage(ctx, internalID, draft)
	if err != nil {
		return nil, err
	}

	// Step 5: Persist, retrying on report id collisions
	report, err := s.create(ctx, internalID, draft, imageKey, contentType)
	if err != nil {
		if imageKey != nil {
			if delErr := s.blobs.Delete(context.WithoutCancel(ctx), *imageKey); delErr != nil {
				s.log.WarnContext(ctx, "orphaned report image",
					slog.String("key", *imageKey),
					slog.String("error", delErr.Error()))
			}
		}
		return nil, err
	}

	s.log.InfoContext(ctx, "report submitted",
		slog.String("report_id", report.ReportID),
		slog.String("urgency", report.Urgency.String()),
		slog.String("category", report.Category.String()),
		slog.Bool("has_image", report.HasImage()))

	return report, nil
}

// buildDraft assembles the immutable draft. Errors that the draft itself
// cannot express (half a coordinate pair, undecodable image) are returned
// separately.
func (s *Service) buildDraft(input SubmitInput) (domain.ReportDraft, []domain.FieldError) {
	var errs []domain.FieldError

	draft := domain.NewReportDraft().
		WithUrgency(input.resolveUrgency()).
		WithCategory(input.resolveCategory()).
		WithTitle(input.Title).
		WithDescription(input.Description).
		WithLocation(input.Location)

	switch {
	case input.Latitude != nil && input.Longitude != nil:
		draft = draft.WithCoordinates(*input.Latitude, *input.Longitude)
	case input.Latitude != nil || input.Longitude != nil:
		errs = append(errs, domain.FieldError{Field: "coordinates", Message: "latitude and longitude must be provided together"})
	}

	if input.Image != "" {
		img, err := imagedata.Decode(input.Image, s.maxImage)
		if err != nil {
			errs = append(errs, domain.FieldError{Field: "image", Message: imagedata.Message(err)})
		} else {
			draft = draft.WithImage(img.Data, img.ContentType)
		}
	}

	return draft, errs
}

// assist runs the optional collaborators. Each one only fills empty fields.
func (s *Service) assist(ctx context.Context, draft domain.ReportDraft) domain.ReportDraft {
	if img, ok := draft.Image(); ok && s.cfg.AutoClassify && s.classifier.Enabled() && needsClassification(draft) {
		classifyCtx, cancel := context.WithTimeout(ctx, s.cfg.ClassifyTimeout)
		c, err := s.classifier.ClassifyImage(classifyCtx, img)
		cancel()
		if err != nil {
			s.log.WarnContext(ctx, "intake classification failed", slog.String("error", err.Error()))
		} else {
			draft = draft.WithClassification(*c)
		}
	}

	if !s.cfg.ReverseGeocode || !s.geo.Enabled() {
		return draft
	}

	coords, hasCoords := draft.Coordinates()
	if !hasCoords || !coords.Valid() || draft.Location() != "" {
		return draft
	}

	geoCtx, cancel := context.WithTimeout(ctx, s.cfg.GeocodeTimeout)
	defer cancel()
	loc, err := s.geo.Reverse(geoCtx, coords.Latitude, coords.Longitude)
	if err != nil {
		s.log.WarnContext(ctx, "intake reverse geocoding failed", slog.String("error", err.Error()))
		return draft
	}
	return draft.WithResolvedAddress(*loc)
}

func needsClassification(d domain.ReportDraft) bool {
	return d.Title() == "" || d.Category() == "" || d.Description() == ""
}

func (s *Service) storeImage(ctx context.Context, id uuid.UUID, draft domain.ReportDraft) (*string, *string, error) {
	img, ok := draft.Image()
	if !ok {
		return nil, nil, nil
	}

	key := id.String() + imagedata.Extension(img.ContentType)
	if err := s.blobs.Put(ctx, key, img.Data, img.ContentType); err != nil {
		return nil, nil, fmt.Errorf("report.Submit store image: %w: %w", domain.ErrStorage, err)
	}
	contentType := img.ContentType
	return &key, &contentType, nil
}

func (s *Service) create(ctx context.Context, id uuid.UUID, draft domain.ReportDraft, imageKey, contentType *string) (*domain.Report, error) {
	report := &domain.Report{
		ID:               id,
		Urgency:          draft.Urgency(),
		Category:         draft.Category(),
		Title:            draft.Title(),
		Description:      draft.Description(),
		Location:         optional(draft.Location()),
		ImageKey:         imageKey,
		ImageContentType: contentType,
		Status:           domain.ReportStatusPending,
		Version:          1,
		CreatedAt:        time.Now(),
	}
	if c, ok := draft.Coordinates(); ok {
		report.Latitude = &c.Latitude
		report.Longitude = &c.Longitude
	}

	attempts := max(s.cfg.IDAttempts, 1)
	for attempt := 1; attempt <= attempts; attempt++ {
		reportID, err := s.ids.Generate()
		if err != nil {
			return nil, fmt.Errorf("report.Submit generate id: %w", err)
		}
		report.ReportID = reportID

		created, err := s.reports.Create(ctx, report)
		if err == nil {
			return created, nil
		}
		if !errors.Is(err, domain.ErrAlreadyExists) {
			return nil, fmt.Errorf("report.Submit: %w", err)
		}
		s.log.WarnContext(ctx, "report id collision",
			slog.String("report_id", reportID),
			slog.Int("attempt", attempt))
	}

	return nil, fmt.Errorf("report.Submit: no free report id after %d attempts: %w", attempts, domain.ErrConflict)
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

