package report

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/heartmarshall/incident-desk/internal/domain"
	"github.com/heartmarshall/incident-desk/pkg/ctxutil"
	"github.com/heartmarshall/incident-desk/pkg/reportid"
)

// Transition moves a report to a new status on behalf of the operator in ctx.
// The update is a compare-and-swap on the report version; a concurrent
// writer that got there first makes this call fail with ErrConflict.
func (s *Service) Transition(ctx context.Context, input TransitionInput) (*domain.Report, error) {
	// Step 1: Authorize before touching the store
	operator, ok := ctxutil.OperatorFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	// Step 2: Validate input. A malformed id cannot name a report.
	if !reportid.Valid(input.ReportID) {
		return nil, fmt.Errorf("report %q: %w", input.ReportID, domain.ErrNotFound)
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}
	to := domain.ReportStatus(input.Status)

	// Step 3: Load the current state
	current, err := s.reports.GetByReportID(ctx, input.ReportID)
	if err != nil {
		return nil, fmt.Errorf("report.Transition: %w", err)
	}

	if input.Version != nil && *input.Version != current.Version {
		return nil, fmt.Errorf("report.Transition: report %s is at version %d, not %d: %w",
			current.ReportID, current.Version, *input.Version, domain.ErrConflict)
	}

	// Step 4: Check the edge
	if err := domain.CheckTransition(current.Status, to); err != nil {
		return nil, fmt.Errorf("report.Transition: %w", err)
	}

	// Step 5: Update and record history atomically
	var updated *domain.Report
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		r, err := s.reports.UpdateStatus(txCtx, current.ReportID, current.Version, to)
		if err != nil {
			return err
		}
		if err := s.reports.AddStatusChange(txCtx, &domain.StatusChange{
			ReportID:   current.ReportID,
			FromStatus: current.Status,
			ToStatus:   to,
			ActorID:    operator.ID,
			CreatedAt:  time.Now(),
		}); err != nil {
			return fmt.Errorf("record status change: %w", err)
		}
		updated = r
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("report.Transition: %w", err)
	}

	s.log.InfoContext(ctx, "report status changed",
		slog.String("report_id", updated.ReportID),
		slog.String("from", current.Status.String()),
		slog.String("to", updated.Status.String()),
		slog.String("operator_id", operator.ID.String()))

	return updated, nil
}
