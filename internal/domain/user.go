package domain

import (
	"time"

	"github.com/google/uuid"
)

// User is an operator account allowed to triage reports.
type User struct {
	ID           uuid.UUID
	Email        string
	Name         string
	PasswordHash string
	Role         UserRole
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
