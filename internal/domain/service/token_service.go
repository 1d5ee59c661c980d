package service

import (
	"time"

	"github.com/google/uuid"

	"github.com/MatheusHenriquePrates/rankfome-backend/internal/domain/entity"
)

// TokenClaims is the identity a resolved token carries.
type TokenClaims struct {
	UserID uuid.UUID   // Subject of the token.
	Name   string      // Display name at issuance time.
	Login  string      // Login identifier at issuance time.
	Role   entity.Role // Role claim driving authorization.
}

// TokenService defines the interface for issuing and validating identity
// tokens. Tokens are signed with a server-held symmetric secret and are valid
// for a fixed window from issuance; expiry is checked with zero clock-skew
// tolerance.
type TokenService interface {
	// IssueToken produces a signed token for the given user.
	IssueToken(user *entity.User) (token string, expiresAt time.Time, err error)

	// ResolveToken validates signature, issuer, audience and expiry, and
	// extracts the identity claims. Any validation failure yields the
	// generic unauthenticated error.
	ResolveToken(token string) (*TokenClaims, error)

	// TokenDuration returns the configured validity window.
	TokenDuration() time.Duration
}
