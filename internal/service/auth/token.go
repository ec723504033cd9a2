package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/heartmarshall/incident-desk/internal/domain"
	"github.com/heartmarshall/incident-desk/pkg/ctxutil"
)

// ValidateToken resolves a bearer token into the operator id and role.
// Every failure, including an unknown role, is ErrUnauthorized.
func (s *Service) ValidateToken(_ context.Context, token string) (uuid.UUID, string, error) {
	claims, err := s.tokens.Verify(token)
	if err != nil || !domain.UserRole(claims.Role).IsValid() {
		return uuid.Nil, "", domain.ErrUnauthorized
	}
	return claims.UserID, claims.Role, nil
}

// Me loads the operator behind the request. A token whose account was
// deleted is treated as unauthenticated.
func (s *Service) Me(ctx context.Context) (*domain.User, error) {
	op, ok := ctxutil.OperatorFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	user, err := s.users.GetByID(ctx, op.ID)
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return nil, domain.ErrUnauthorized
	case err != nil:
		return nil, fmt.Errorf("auth.Me: %w", err)
	}
	return user, nil
}
