package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/heartmarshall/incident-desk/internal/domain"
)

// Register creates an operator account and opens a session for it.
// Fails with ErrForbidden while sign-up is disabled and ErrAlreadyExists
// for a taken email.
func (s *Service) Register(ctx context.Context, input RegisterInput) (*Session, error) {
	if !s.cfg.SignupEnabled {
		return nil, fmt.Errorf("auth.Register: signup disabled: %w", domain.ErrForbidden)
	}

	input.Email = normalizeEmail(input.Email)
	input.Name = strings.TrimSpace(input.Name)
	if err := input.Validate(); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), s.cfg.PasswordHashCost)
	if err != nil {
		return nil, fmt.Errorf("auth.Register: hash password: %w", err)
	}

	now := time.Now().UTC()
	user, err := s.users.Create(ctx, &domain.User{
		ID:           uuid.New(),
		Email:        input.Email,
		Name:         input.Name,
		PasswordHash: string(hash),
		Role:         domain.UserRoleOperator,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	switch {
	case errors.Is(err, domain.ErrAlreadyExists):
		return nil, fmt.Errorf("auth.Register: email taken: %w", domain.ErrAlreadyExists)
	case err != nil:
		return nil, fmt.Errorf("auth.Register: %w", err)
	}

	session, err := s.openSession(user)
	if err != nil {
		return nil, fmt.Errorf("auth.Register: %w", err)
	}

	s.log.InfoContext(ctx, "operator registered", slog.String("user_id", user.ID.String()))
	return session, nil
}
