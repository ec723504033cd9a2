package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/heartmarshall/incident-desk/internal/domain"
	"github.com/heartmarshall/incident-desk/internal/service/auth"
)

type authService interface {
	Register(ctx context.Context, input auth.RegisterInput) (*auth.Session, error)
	LoginWithPassword(ctx context.Context, input auth.LoginPasswordInput) (*auth.Session, error)
	Me(ctx context.Context) (*domain.User, error)
}

// AuthHandler serves /auth: operator sign-up, login and the current identity.
type AuthHandler struct {
	svc authService
	log *slog.Logger
}

func NewAuthHandler(svc authService, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{svc: svc, log: logger.With("handler", "auth")}
}

type sessionResponse struct {
	AccessToken string       `json:"accessToken"`
	TokenType   string       `json:"tokenType"`
	ExpiresAt   time.Time    `json:"expiresAt"`
	User        userResponse `json:"user"`
}

type userResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
}

// Register handles POST /auth/register.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var input auth.RegisterInput
	if err := decodeJSON(w, r, smallBodyLimit, &input); err != nil {
		handleError(w, r, h.log, err)
		return
	}
	h.respondSession(w, r, http.StatusCreated, func(ctx context.Context) (*auth.Session, error) {
		return h.svc.Register(ctx, input)
	})
}

// Login handles POST /auth/login.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var input auth.LoginPasswordInput
	if err := decodeJSON(w, r, smallBodyLimit, &input); err != nil {
		handleError(w, r, h.log, err)
		return
	}
	h.respondSession(w, r, http.StatusOK, func(ctx context.Context) (*auth.Session, error) {
		return h.svc.LoginWithPassword(ctx, input)
	})
}

// Me handles GET /auth/me.
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	user, err := h.svc.Me(r.Context())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, newUserResponse(user))
}

func (h *AuthHandler) respondSession(w http.ResponseWriter, r *http.Request, status int, open func(context.Context) (*auth.Session, error)) {
	session, err := open(r.Context())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	w.Header().Set("Cache-Control", "no-store")
	writeJSON(w, status, sessionResponse{
		AccessToken: session.AccessToken,
		TokenType:   "Bearer",
		ExpiresAt:   session.ExpiresAt.UTC(),
		User:        newUserResponse(session.User),
	})
}

func newUserResponse(u *domain.User) userResponse {
	return userResponse{
		ID:        u.ID.String(),
		Email:     u.Email,
		Name:      u.Name,
		Role:      u.Role.String(),
		CreatedAt: u.CreatedAt.UTC(),
	}
}
