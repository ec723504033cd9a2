// Package auth issues and verifies operator access tokens.
package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// ErrInvalidToken wraps every parse or verification failure.
var ErrInvalidToken = errors.New("invalid access token")

// audience pins tokens to the operator API.
const audience = "operators"

// clockSkew tolerated on exp/iat between replicas.
const clockSkew = 30 * time.Second

// Claims is what a verified token says about the caller.
type Claims struct {
	UserID    uuid.UUID
	Role      string
	ExpiresAt time.Time
}

// Token is a signed access token and its expiry.
type Token struct {
	Value     string
	ExpiresAt time.Time
}

// JWTManager signs HS256 tokens with the operator id as subject and the role
// as a private claim.
type JWTManager struct {
	secret []byte
	issuer string
	ttl    time.Duration
	now    func() time.Time
}

// NewJWTManager expects a secret of at least 32 bytes; config validation
// enforces it.
func NewJWTManager(secret, issuer string, ttl time.Duration) *JWTManager {
	return &JWTManager{secret: []byte(secret), issuer: issuer, ttl: ttl, now: time.Now}
}

type operatorClaims struct {
	jwt.RegisteredClaims
	Role string `json:"role"`
}

func (m *JWTManager) Issue(userID uuid.UUID, role string) (Token, error) {
	now := m.now().Truncate(time.Second)
	exp := now.Add(m.ttl)

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, operatorClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   userID.String(),
			Issuer:    m.issuer,
			Audience:  jwt.ClaimStrings{audience},
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(exp),
		},
		Role: role,
	}).SignedString(m.secret)
	if err != nil {
		return Token{}, fmt.Errorf("sign access token: %w", err)
	}
	return Token{Value: signed, ExpiresAt: exp}, nil
}

// Verify checks algorithm, signature, issuer, audience and expiry.
func (m *JWTManager) Verify(token string) (Claims, error) {
	if token == "" {
		return Claims{}, fmt.Errorf("%w: empty", ErrInvalidToken)
	}

	var oc operatorClaims
	_, err := jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(m.issuer),
		jwt.WithAudience(audience),
		jwt.WithExpirationRequired(),
		jwt.WithLeeway(clockSkew),
		jwt.WithTimeFunc(m.now),
	).ParseWithClaims(token, &oc, func(*jwt.Token) (any, error) { return m.secret, nil })
	if err != nil {
		return Claims{}, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}

	userID, err := uuid.Parse(oc.Subject)
	if err != nil {
		return Claims{}, fmt.Errorf("%w: subject: %w", ErrInvalidToken, err)
	}
	return Claims{UserID: userID, Role: oc.Role, ExpiresAt: oc.ExpiresAt.Time}, nil
}
