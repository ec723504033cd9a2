package report

import (
	"context"
	"fmt"
	"io"

	"github.com/heartmarshall/incident-desk/internal/domain"
	"github.com/heartmarshall/incident-desk/pkg/ctxutil"
	"github.com/heartmarshall/incident-desk/pkg/reportid"
)

// List returns report summaries for operators, newest first, and the total
// number of matches.
func (s *Service) List(ctx context.Context, input ListInput) ([]domain.ReportSummary, int, error) {
	if _, ok := ctxutil.OperatorFromCtx(ctx); !ok {
		return nil, 0, domain.ErrUnauthorized
	}

	filter, err := input.toFilter(s.cfg.DefaultPageSize)
	if err != nil {
		return nil, 0, err
	}

	reports, err := s.reports.List(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("report.List: %w", err)
	}

	total, err := s.reports.Count(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("report.List count: %w", err)
	}

	summaries := make([]domain.ReportSummary, 0, len(reports))
	for _, r := range reports {
		summaries = append(summaries, r.Summary())
	}
	return summaries, total, nil
}

// Get returns a report by its external id. Malformed ids are reported as
// not found without a store lookup.
func (s *Service) Get(ctx context.Context, reportID string) (*domain.Report, error) {
	if !reportid.Valid(reportID) {
		return nil, fmt.Errorf("report %q: %w", reportID, domain.ErrNotFound)
	}

	report, err := s.reports.GetByReportID(ctx, reportID)
	if err != nil {
		return nil, fmt.Errorf("report.Get: %w", err)
	}
	return report, nil
}

// History returns the status changes of a report, oldest first.
func (s *Service) History(ctx context.Context, reportID string) ([]domain.StatusChange, error) {
	if _, ok := ctxutil.OperatorFromCtx(ctx); !ok {
		return nil, domain.ErrUnauthorized
	}

	if _, err := s.Get(ctx, reportID); err != nil {
		return nil, err
	}

	changes, err := s.reports.ListStatusChanges(ctx, reportID)
	if err != nil {
		return nil, fmt.Errorf("report.History: %w", err)
	}

	out := make([]domain.StatusChange, 0, len(changes))
	for _, c := range changes {
		out = append(out, *c)
	}
	return out, nil
}

// Image opens the stored image of a report. The caller closes the reader.
func (s *Service) Image(ctx context.Context, reportID string) (io.ReadCloser, string, error) {
	report, err := s.Get(ctx, reportID)
	if err != nil {
		return nil, "", err
	}
	if !report.HasImage() {
		return nil, "", fmt.Errorf("report %s image: %w", reportID, domain.ErrNotFound)
	}

	body, err := s.blobs.Get(ctx, *report.ImageKey)
	if err != nil {
		return nil, "", fmt.Errorf("report.Image: %w", err)
	}

	contentType := "application/octet-stream"
	if report.ImageContentType != nil {
		contentType = *report.ImageContentType
	}
	return body, contentType, nil
}
