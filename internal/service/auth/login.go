package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"golang.org/x/crypto/bcrypt"

	"github.com/heartmarshall/incident-desk/internal/domain"
)

// LoginWithPassword opens a session for email + password. An unknown email
// and a wrong password both return ErrUnauthorized.
func (s *Service) LoginWithPassword(ctx context.Context, input LoginPasswordInput) (*Session, error) {
	input.Email = normalizeEmail(input.Email)
	if err := input.Validate(); err != nil {
		return nil, err
	}

	user, err := s.users.GetByEmail(ctx, input.Email)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("auth.LoginWithPassword: %w", err)
	}

	hash := s.decoy()
	if user != nil && user.PasswordHash != "" {
		hash = []byte(user.PasswordHash)
	}
	mismatch := bcrypt.CompareHashAndPassword(hash, []byte(input.Password))
	if user == nil || user.PasswordHash == "" || mismatch != nil {
		s.log.WarnContext(ctx, "operator login rejected", slog.Bool("known_email", user != nil))
		return nil, domain.ErrUnauthorized
	}

	session, err := s.openSession(user)
	if err != nil {
		return nil, fmt.Errorf("auth.LoginWithPassword: %w", err)
	}

	s.log.InfoContext(ctx, "operator logged in", slog.String("user_id", user.ID.String()))
	return session, nil
}
