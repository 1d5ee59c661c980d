package auth

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MatheusHenriquePrates/rankfome-backend/config"
	"github.com/MatheusHenriquePrates/rankfome-backend/internal/domain/entity"
	domainerrors "github.com/MatheusHenriquePrates/rankfome-backend/internal/domain/errors"
)

func newTestAuthConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Auth = config.AuthConfig{
		Secret:   "test_secret_key_very_long_for_testing",
		Issuer:   "rankfome",
		Audience: "rankfome-api",
		TokenTTL: 7 * 24 * time.Hour,
	}

	return cfg
}

func TestJWTService_IssueAndResolveToken(t *testing.T) {
	svc, err := NewJWTService(newTestAuthConfig())
	require.NoError(t, err)

	user := &entity.User{
		ID:    uuid.New(),
		Name:  "Maria Souza",
		Login: "maria@example.com",
		Role:  entity.RoleVendor,
	}

	token, expiresAt, err := svc.IssueToken(user)
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.WithinDuration(t, time.Now().Add(7*24*time.Hour), expiresAt, time.Minute)

	claims, err := svc.ResolveToken(token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, user.Name, claims.Name)
	assert.Equal(t, user.Login, claims.Login)
	assert.Equal(t, entity.RoleVendor, claims.Role)
}

func TestJWTService_MissingSecret(t *testing.T) {
	_, err := NewJWTService(&config.Config{})
	assert.Error(t, err)
}

func TestJWTService_InvalidToken(t *testing.T) {
	svc, err := NewJWTService(newTestAuthConfig())
	require.NoError(t, err)

	claims, err := svc.ResolveToken("clearly-not-a-jwt-token")
	assert.Nil(t, claims)
	assert.ErrorIs(t, err, domainerrors.ErrUnauthenticated)
}

func TestJWTService_WrongIssuerRejected(t *testing.T) {
	issuing := newTestAuthConfig()
	issuing.Auth.Issuer = "someone-else"

	issuer, err := NewJWTService(issuing)
	require.NoError(t, err)

	validator, err := NewJWTService(newTestAuthConfig())
	require.NoError(t, err)

	user := &entity.User{ID: uuid.New(), Login: "x@example.com", Role: entity.RoleCustomer}
	token, _, err := issuer.IssueToken(user)
	require.NoError(t, err)

	_, err = validator.ResolveToken(token)
	assert.ErrorIs(t, err, domainerrors.ErrUnauthenticated)
}

func TestJWTService_ExpiredTokenRejectedWithoutLeeway(t *testing.T) {
	cfg := newTestAuthConfig()
	cfg.Auth.TokenTTL = -time.Second // already expired at issuance

	svc, err := NewJWTService(cfg)
	require.NoError(t, err)

	user := &entity.User{ID: uuid.New(), Login: "x@example.com", Role: entity.RoleCustomer}
	token, _, err := svc.IssueToken(user)
	require.NoError(t, err)

	_, err = svc.ResolveToken(token)
	assert.ErrorIs(t, err, domainerrors.ErrUnauthenticated)
}

func TestJWTService_WrongSecretRejected(t *testing.T) {
	svc, err := NewJWTService(newTestAuthConfig())
	require.NoError(t, err)

	otherCfg := newTestAuthConfig()
	otherCfg.Auth.Secret = "a_completely_different_secret_key"
	other, err := NewJWTService(otherCfg)
	require.NoError(t, err)

	user := &entity.User{ID: uuid.New(), Login: "x@example.com", Role: entity.RoleAdmin}
	token, _, err := other.IssueToken(user)
	require.NoError(t, err)

	_, err = svc.ResolveToken(token)
	assert.ErrorIs(t, err, domainerrors.ErrUnauthenticated)
}
