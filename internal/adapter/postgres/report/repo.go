// Package report implements the incident report repository using PostgreSQL.
// Point lookups and writes use raw SQL; the filtered list is built with squirrel.
package report

import (
	"context"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/incident-desk/internal/adapter/postgres"
	"github.com/heartmarshall/incident-desk/internal/domain"
)

// reportIDIndex is the unique index on the external report id.
const reportIDIndex = "ux_reports_report_id"

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// Repo provides report persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new report repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ---------------------------------------------------------------------------
// SQL constants
// ---------------------------------------------------------------------------

const reportColumns = `id, report_id, urgency, category, title, description, location,
latitude, longitude, image_key, image_content_type, status, version, created_at, updated_at`

const createSQL = `
INSERT INTO reports (id, report_id, urgency, category, title, description, location,
                     latitude, longitude, image_key, image_content_type, status, version,
                     created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, 1, $13, $13)
RETURNING ` + reportColumns

const getByReportIDSQL = `
SELECT ` + reportColumns + `
FROM reports
WHERE report_id = $1`

const updateStatusSQL = `
UPDATE reports
SET status = $3, version = version + 1, updated_at = now()
WHERE report_id = $1 AND version = $2
RETURNING ` + reportColumns

const existsSQL = `
SELECT EXISTS(SELECT 1 FROM reports WHERE report_id = $1)`

const addStatusChangeSQL = `
INSERT INTO report_status_changes (id, report_id, from_status, to_status, actor_id, created_at)
SELECT $1, r.id, $3, $4, $5, $6
FROM reports r
WHERE r.report_id = $2`

const listStatusChangesSQL = `
SELECT c.id, r.report_id, c.from_status, c.to_status, c.actor_id, c.created_at
FROM report_status_changes c
JOIN reports r ON r.id = c.report_id
WHERE r.report_id = $1
ORDER BY c.created_at, c.id`

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByReportID returns a report by its external identifier.
// Returns domain.ErrNotFound if no such report exists.
func (r *Repo) GetByReportID(ctx context.Context, reportID string) (*domain.Report, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	report, err := scanReport(querier.QueryRow(ctx, getByReportIDSQL, reportID))
	if err != nil {
		return nil, postgres.MapError(err, "report", reportID)
	}

	return report, nil
}

// List returns reports matching the filter, newest first.
func (r *Repo) List(ctx context.Context, filter domain.ReportFilter) ([]*domain.Report, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	query := applyFilter(psql.Select(reportColumns).From("reports"), filter).
		OrderBy("created_at DESC", "id DESC")
	if filter.Limit > 0 {
		query = query.Limit(uint64(filter.Limit))
	}
	if filter.Offset > 0 {
		query = query.Offset(uint64(filter.Offset))
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list reports query: %w", err)
	}

	rows, err := querier.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list reports: %w", err)
	}
	defer rows.Close()

	reports, err := scanReports(rows)
	if err != nil {
		return nil, fmt.Errorf("list reports: %w", err)
	}

	return reports, nil
}

// Count returns the number of reports matching the filter, ignoring paging.
func (r *Repo) Count(ctx context.Context, filter domain.ReportFilter) (int, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := applyFilter(psql.Select("count(*)").From("reports"), filter).ToSql()
	if err != nil {
		return 0, fmt.Errorf("build count reports query: %w", err)
	}

	var total int
	if err := querier.QueryRow(ctx, sql, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("count reports: %w", err)
	}

	return total, nil
}

// Exists reports whether a report with the given external id is stored.
func (r *Repo) Exists(ctx context.Context, reportID string) (bool, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	var exists bool
	if err := querier.QueryRow(ctx, existsSQL, reportID).Scan(&exists); err != nil {
		return false, postgres.MapError(err, "report", reportID)
	}

	return exists, nil
}

// ListStatusChanges returns the triage history of a report, oldest first.
func (r *Repo) ListStatusChanges(ctx context.Context, reportID string) ([]*domain.StatusChange, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, listStatusChangesSQL, reportID)
	if err != nil {
		return nil, postgres.MapError(err, "report", reportID)
	}
	defer rows.Close()

	changes := []*domain.StatusChange{}
	for rows.Next() {
		var (
			c          domain.StatusChange
			fromStatus string
			toStatus   string
			actorID    *uuid.UUID
		)
		if err := rows.Scan(&c.ID, &c.ReportID, &fromStatus, &toStatus, &actorID, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan status change: %w", err)
		}
		c.FromStatus = domain.ReportStatus(fromStatus)
		c.ToStatus = domain.ReportStatus(toStatus)
		if actorID != nil {
			c.ActorID = *actorID
		}
		changes = append(changes, &c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list status changes: %w", err)
	}

	return changes, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a new report with version 1 and returns the stored row.
// A collision on the external report id returns domain.ErrAlreadyExists so
// the caller can retry with a fresh id.
func (r *Repo) Create(ctx context.Context, report *domain.Report) (*domain.Report, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	id := report.ID
	if id == uuid.Nil {
		id = uuid.New()
	}
	createdAt := report.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}
	status := report.Status
	if status == "" {
		status = domain.ReportStatusPending
	}

	row := querier.QueryRow(ctx, createSQL,
		id,
		report.ReportID,
		string(report.Urgency),
		string(report.Category),
		report.Title,
		report.Description,
		report.Location,
		report.Latitude,
		report.Longitude,
		report.ImageKey,
		report.ImageContentType,
		string(status),
		createdAt.UTC().Truncate(time.Microsecond),
	)

	created, err := scanReport(row)
	if err != nil {
		if postgres.IsUniqueViolation(err, reportIDIndex) {
			return nil, fmt.Errorf("report %s: %w", report.ReportID, domain.ErrAlreadyExists)
		}
		return nil, postgres.MapError(err, "report", report.ReportID)
	}

	return created, nil
}

// UpdateStatus sets a new status if the stored version still equals
// expectedVersion, bumping the version. A missing report returns
// domain.ErrNotFound; a stale version returns domain.ErrConflict.
func (r *Repo) UpdateStatus(ctx context.Context, reportID string, expectedVersion int, status domain.ReportStatus) (*domain.Report, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	updated, err := scanReport(querier.QueryRow(ctx, updateStatusSQL, reportID, expectedVersion, string(status)))
	if err == nil {
		return updated, nil
	}
	if !isNoRows(err) {
		return nil, postgres.MapError(err, "report", reportID)
	}

	exists, existsErr := r.Exists(ctx, reportID)
	if existsErr != nil {
		return nil, existsErr
	}
	if !exists {
		return nil, fmt.Errorf("report %s: %w", reportID, domain.ErrNotFound)
	}
	return nil, fmt.Errorf("report %s: version %d is stale: %w", reportID, expectedVersion, domain.ErrConflict)
}

// AddStatusChange records one history entry for the report.
func (r *Repo) AddStatusChange(ctx context.Context, change *domain.StatusChange) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	id := change.ID
	if id == uuid.Nil {
		id = uuid.New()
	}
	createdAt := change.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}
	var actorID *uuid.UUID
	if change.ActorID != uuid.Nil {
		actorID = &change.ActorID
	}

	ct, err := querier.Exec(ctx, addStatusChangeSQL,
		id,
		change.ReportID,
		string(change.FromStatus),
		string(change.ToStatus),
		actorID,
		createdAt.UTC().Truncate(time.Microsecond),
	)
	if err != nil {
		return postgres.MapError(err, "report", change.ReportID)
	}
	if ct.RowsAffected() == 0 {
		return fmt.Errorf("report %s: %w", change.ReportID, domain.ErrNotFound)
	}

	return nil
}

// ---------------------------------------------------------------------------
// Query helpers
// ---------------------------------------------------------------------------

func applyFilter(b sq.SelectBuilder, filter domain.ReportFilter) sq.SelectBuilder {
	if filter.Status != nil {
		b = b.Where(sq.Eq{"status": string(*filter.Status)})
	}
	if filter.Category != nil {
		b = b.Where(sq.Eq{"category": string(*filter.Category)})
	}
	if filter.Urgency != nil {
		b = b.Where(sq.Eq{"urgency": string(*filter.Urgency)})
	}
	return b
}

func isNoRows(err error) bool {
	return errors.Is(err, pgx.ErrNoRows)
}

// ---------------------------------------------------------------------------
// Row scanning helpers
// ---------------------------------------------------------------------------

func scanReport(row pgx.Row) (*domain.Report, error) {
	var (
		rep      domain.Report
		urgency  string
		category string
		status   string
	)

	err := row.Scan(
		&rep.ID, &rep.ReportID, &urgency, &category, &rep.Title, &rep.Description, &rep.Location,
		&rep.Latitude, &rep.Longitude, &rep.ImageKey, &rep.ImageContentType, &status, &rep.Version,
		&rep.CreatedAt, &rep.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	rep.Urgency = domain.Urgency(urgency)
	rep.Category = domain.Category(category)
	rep.Status = domain.ReportStatus(status)
	return &rep, nil
}

func scanReports(rows pgx.Rows) ([]*domain.Report, error) {
	reports := []*domain.Report{}
	for rows.Next() {
		rep, err := scanReport(rows)
		if err != nil {
			return nil, err
		}
		reports = append(reports, rep)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return reports, nil
}
