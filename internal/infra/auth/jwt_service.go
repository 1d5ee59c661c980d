package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/MatheusHenriquePrates/rankfome-backend/config"
	"github.com/MatheusHenriquePrates/rankfome-backend/internal/domain/entity"
	domainerrors "github.com/MatheusHenriquePrates/rankfome-backend/internal/domain/errors"
	"github.com/MatheusHenriquePrates/rankfome-backend/internal/domain/service"
)

// identityClaims is the wire format of the identity token.
type identityClaims struct {
	Name  string `json:"name"`
	Login string `json:"login"`
	Role  string `json:"role"`
	jwt.RegisteredClaims
}

// jwtService is a concrete implementation of the TokenService interface using
// the JWT standard with HS256 and a server-held symmetric secret.
type jwtService struct {
	secret   []byte
	issuer   string
	audience string
	ttl      time.Duration
}

// NewJWTService is the constructor for jwtService. The signing secret, issuer
// and audience come from the immutable configuration value; there is no
// ambient or global access to any of them.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.Auth.Secret == "" {
		return nil, errors.New("jwt secret must be provided")
	}

	return &jwtService{
		secret:   []byte(cfg.Auth.Secret),
		issuer:   cfg.Auth.Issuer,
		audience: cfg.Auth.Audience,
		ttl:      cfg.Auth.TokenTTL,
	}, nil
}

// IssueToken produces a signed token embedding the user's id, display name,
// login identifier and role, valid for the configured window from now.
func (s *jwtService) IssueToken(user *entity.User) (string, time.Time, error) {
	now := time.Now()
	expiresAt := now.Add(s.ttl)

	claims := identityClaims{
		Name:  user.Name,
		Login: user.Login,
		Role:  user.Role.String(),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID.String(),
			Issuer:    s.issuer,
			Audience:  jwt.ClaimStrings{s.audience},
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", time.Time{}, errors.Wrap(err, "failed to sign token")
	}

	return token, expiresAt, nil
}

// ResolveToken validates the token's signature, issuer, audience and expiry
// and extracts the identity claims. Expiry is checked with zero leeway: a
// token expired by one second is rejected. Every failure collapses into the
// generic unauthenticated error so callers leak nothing about the cause.
func (s *jwtService) ResolveToken(tokenString string) (*service.TokenClaims, error) {
	claims := &identityClaims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(s.issuer),
		jwt.WithAudience(s.audience),
		jwt.WithLeeway(0),
		jwt.WithExpirationRequired(),
	)
	if err != nil || !token.Valid {
		return nil, domainerrors.ErrUnauthenticated
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return nil, domainerrors.ErrUnauthenticated
	}

	role := entity.Role(claims.Role)
	if !role.IsValid() {
		return nil, domainerrors.ErrUnauthenticated
	}

	return &service.TokenClaims{
		UserID: userID,
		Name:   claims.Name,
		Login:  claims.Login,
		Role:   role,
	}, nil
}

// TokenDuration returns the configured validity window.
func (s *jwtService) TokenDuration() time.Duration {
	return s.ttl
}
