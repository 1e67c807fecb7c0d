package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storefront/config"
	"storefront/internal/domain/entity"
)

func newTestJWTService(t *testing.T, ttl time.Duration) *jwtService {
	t.Helper()

	cfg := &config.Config{}
	cfg.SecretKey.Access = "test-secret"
	cfg.Auth = &config.AuthConfig{AccessTokenTTL: ttl}

	svc, err := NewJWTService(cfg)
	require.NoError(t, err)

	return svc.(*jwtService)
}

func TestNewJWTService_RequiresSecret(t *testing.T) {
	_, err := NewJWTService(&config.Config{})
	assert.Error(t, err)
}

func TestJWTService_GenerateAndValidate(t *testing.T) {
	svc := newTestJWTService(t, time.Minute)

	session := &entity.Session{Email: "maya@example.com", Name: "Maya", Role: entity.RoleCustomer}
	token, err := svc.GenerateToken(session)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "maya@example.com", claims.Email)
	assert.Equal(t, "Maya", claims.Name)
	assert.Equal(t, "customer", claims.Role)

	restored := claims.Session()
	assert.Equal(t, session.Email, restored.Email)
	assert.Equal(t, session.Role, restored.Role)
}

func TestJWTService_RejectsExpiredToken(t *testing.T) {
	svc := newTestJWTService(t, -time.Minute)

	token, err := svc.GenerateToken(&entity.Session{Email: "old@example.com", Name: "Old"})
	require.NoError(t, err)

	_, err = svc.ValidateToken(token)
	assert.Error(t, err)
}

func TestJWTService_RejectsForeignSignature(t *testing.T) {
	svc := newTestJWTService(t, time.Minute)

	other := &config.Config{}
	other.SecretKey.Access = "other-secret"
	other.Auth = &config.AuthConfig{AccessTokenTTL: time.Minute}
	otherSvc, err := NewJWTService(other)
	require.NoError(t, err)

	token, err := otherSvc.GenerateToken(&entity.Session{Email: "x@example.com", Name: "X"})
	require.NoError(t, err)

	_, err = svc.ValidateToken(token)
	assert.Error(t, err)
}

func TestJWTService_GenerateTokenRequiresSession(t *testing.T) {
	svc := newTestJWTService(t, time.Minute)

	_, err := svc.GenerateToken(nil)
	assert.Error(t, err)
}
