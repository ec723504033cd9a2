// Package user stores operator accounts in the users table.
package user

import (
	"context"
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/incident-desk/internal/adapter/postgres"
	"github.com/heartmarshall/incident-desk/internal/domain"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

var columns = []string{"id", "email", "name", "password_hash", "role", "created_at", "updated_at"}

// Emails are unique case-insensitively (ux_users_email on lower(email)).
func byEmail(email string) sq.Sqlizer {
	return sq.Expr("lower(email) = lower(?)", strings.TrimSpace(email))
}

type Repo struct {
	pool *pgxpool.Pool
}

func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// row mirrors the users table for pgx.RowToStructByName.
type row struct {
	ID           uuid.UUID `db:"id"`
	Email        string    `db:"email"`
	Name         string    `db:"name"`
	PasswordHash string    `db:"password_hash"`
	Role         string    `db:"role"`
	CreatedAt    time.Time `db:"created_at"`
	UpdatedAt    time.Time `db:"updated_at"`
}

func (r row) toDomain() *domain.User {
	return &domain.User{
		ID:           r.ID,
		Email:        r.Email,
		Name:         r.Name,
		PasswordHash: r.PasswordHash,
		Role:         domain.UserRole(r.Role),
		CreatedAt:    r.CreatedAt,
		UpdatedAt:    r.UpdatedAt,
	}
}

func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	return r.one(ctx, id.String(),
		psql.Select(columns...).From("users").Where(sq.Eq{"id": id}))
}

// GetByEmail matches case-insensitively.
func (r *Repo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.one(ctx, email,
		psql.Select(columns...).From("users").Where(byEmail(email)))
}

// Create stores u with a lower-cased email; defaults fill a missing id,
// role and creation time. A taken email is domain.ErrAlreadyExists.
func (r *Repo) Create(ctx context.Context, u *domain.User) (*domain.User, error) {
	id := u.ID
	if id == uuid.Nil {
		id = uuid.New()
	}
	role := u.Role
	if role == "" {
		role = domain.UserRoleOperator
	}
	created := u.CreatedAt
	if created.IsZero() {
		created = time.Now()
	}
	created = created.UTC().Truncate(time.Microsecond)

	return r.one(ctx, u.Email,
		psql.Insert("users").
			Columns(columns...).
			Values(id, strings.ToLower(strings.TrimSpace(u.Email)), u.Name, u.PasswordHash, role.String(), created, created).
			Suffix("RETURNING "+strings.Join(columns, ", ")))
}

// UpdateRoleByEmail returns domain.ErrNotFound when no account matches.
func (r *Repo) UpdateRoleByEmail(ctx context.Context, email string, role domain.UserRole) (*domain.User, error) {
	return r.one(ctx, email,
		psql.Update("users").
			Set("role", role.String()).
			Set("updated_at", sq.Expr("now()")).
			Where(byEmail(email)).
			Suffix("RETURNING "+strings.Join(columns, ", ")))
}

// one runs a statement that yields at most one users row. key names the
// account in errors.
func (r *Repo) one(ctx context.Context, key string, stmt sq.Sqlizer) (*domain.User, error) {
	query, args, err := stmt.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build user query: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, query, args...)
	if err != nil {
		return nil, postgres.MapError(err, "user", key)
	}
	got, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[row])
	if err != nil {
		return nil, postgres.MapError(err, "user", key)
	}
	return got.toDomain(), nil
}
