package postgres

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/heartmarshall/incident-desk/internal/domain"
)

const codeUniqueViolation = "23505"

// sqlStateErrors maps SQLSTATE codes to domain errors.
var sqlStateErrors = map[string]error{
	codeUniqueViolation: domain.ErrAlreadyExists,
	"23503":             domain.ErrNotFound,   // foreign_key_violation
	"23514":             domain.ErrValidation, // check_violation
	"23502":             domain.ErrValidation, // not_null_violation
	"22001":             domain.ErrValidation, // string_data_right_truncation
	"40001":             domain.ErrConflict,   // serialization_failure
	"40P01":             domain.ErrConflict,   // deadlock_detected
}

// MapError prefixes err with "<entity> <key>" and translates pgx errors into
// domain errors. Context errors and unknown codes keep their original chain.
func MapError(err error, entity, key string) error {
	if err == nil {
		return nil
	}
	prefix := entity + " " + key

	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("%s: %w", prefix, domain.ErrNotFound)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if target, ok := sqlStateErrors[pgErr.Code]; ok {
			detail := pgErr.ConstraintName
			if detail == "" {
				detail = pgErr.ColumnName
			}
			if detail == "" {
				return fmt.Errorf("%s: %w", prefix, target)
			}
			return fmt.Errorf("%s: %s: %w", prefix, detail, target)
		}
	}

	return fmt.Errorf("%s: %w", prefix, err)
}

// IsUniqueViolation reports whether err violates the named unique
// constraint or index; an empty name matches any.
func IsUniqueViolation(err error, constraint string) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || pgErr.Code != codeUniqueViolation {
		return false
	}
	return constraint == "" || pgErr.ConstraintName == constraint
}
