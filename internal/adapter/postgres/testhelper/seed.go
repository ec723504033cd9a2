package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/incident-desk/internal/domain"
	"github.com/heartmarshall/incident-desk/pkg/reportid"
)

func uniqueSuffix() string {
	return uuid.NewString()[:8]
}

// SeedUser inserts an operator with an unusable password hash. mutate
// callbacks run before the insert.
func SeedUser(t *testing.T, pool *pgxpool.Pool, mutate ...func(*domain.User)) domain.User {
	t.Helper()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	u := domain.User{
		ID:           uuid.New(),
		Email:        "operator-" + suffix + "@example.com",
		Name:         "Operator " + suffix,
		PasswordHash: "!",
		Role:         domain.UserRoleOperator,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	for _, fn := range mutate {
		fn(&u)
	}

	if _, err := pool.Exec(context.Background(),
		`INSERT INTO users (id, email, name, password_hash, role, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		u.ID, u.Email, u.Name, u.PasswordHash, u.Role.String(), u.CreatedAt, u.UpdatedAt,
	); err != nil {
		t.Fatalf("testhelper: SeedUser: %v", err)
	}
	return u
}

// SeedReport inserts a PENDING report with a fresh report id.
// The optional mutate callback can adjust fields before the insert.
func SeedReport(t *testing.T, pool *pgxpool.Pool, mutate ...func(*domain.Report)) domain.Report {
	t.Helper()
	ctx := context.Background()

	rid, err := reportid.New().Generate()
	if err != nil {
		t.Fatalf("testhelper: SeedReport: generate id: %v", err)
	}

	now := time.Now().UTC().Truncate(time.Microsecond)
	report := domain.Report{
		ID:          uuid.New(),
		ReportID:    rid,
		Urgency:     domain.UrgencyNonEmergency,
		Category:    domain.CategoryOther,
		Title:       "Seeded report " + uniqueSuffix(),
		Description: "Seeded for integration tests",
		Status:      domain.ReportStatusPending,
		Version:     1,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	for _, fn := range mutate {
		fn(&report)
	}

	_, err = pool.Exec(ctx,
		`INSERT INTO reports (id, report_id, urgency, category, title, description, location,
		                      latitude, longitude, image_key, image_content_type, status, version,
		                      created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`,
		report.ID, report.ReportID, string(report.Urgency), string(report.Category),
		report.Title, report.Description, report.Location,
		report.Latitude, report.Longitude, report.ImageKey, report.ImageContentType,
		string(report.Status), report.Version, report.CreatedAt, report.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedReport: %v", err)
	}

	return report
}
