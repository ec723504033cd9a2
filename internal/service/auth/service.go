// Package auth implements operator sign-up, password login and access token
// verification.
package auth

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	jwtauth "github.com/heartmarshall/incident-desk/internal/auth"
	"github.com/heartmarshall/incident-desk/internal/config"
	"github.com/heartmarshall/incident-desk/internal/domain"
)

type userRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
}

type tokenIssuer interface {
	Issue(userID uuid.UUID, role string) (jwtauth.Token, error)
	Verify(token string) (jwtauth.Claims, error)
}

// Session is the outcome of a successful sign-up or login.
type Session struct {
	AccessToken string
	ExpiresAt   time.Time
	User        *domain.User
}

type Service struct {
	log    *slog.Logger
	users  userRepo
	tokens tokenIssuer
	cfg    config.AuthConfig

	// decoyOnce guards decoyHash, compared against when the email is
	// unknown so both login failures cost one bcrypt comparison.
	decoyOnce sync.Once
	decoyHash []byte
}

func NewService(logger *slog.Logger, users userRepo, tokens tokenIssuer, cfg config.AuthConfig) *Service {
	return &Service{
		log:    logger.With("service", "auth"),
		users:  users,
		tokens: tokens,
		cfg:    cfg,
	}
}

func (s *Service) openSession(user *domain.User) (*Session, error) {
	tok, err := s.tokens.Issue(user.ID, user.Role.String())
	if err != nil {
		return nil, fmt.Errorf("issue access token: %w", err)
	}
	return &Session{AccessToken: tok.Value, ExpiresAt: tok.ExpiresAt, User: user}, nil
}

func (s *Service) decoy() []byte {
	s.decoyOnce.Do(func() {
		s.decoyHash, _ = bcrypt.GenerateFromPassword([]byte("decoy-password"), s.cfg.PasswordHashCost)
	})
	return s.decoyHash
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
