package auth

import (
	"testing"
	"time"
	"tzfield/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	cfg := &config.Config{}
	cfg.Auth.JWTSecret = "test_secret_key"
	hash, err := HashProvisionKey("letmein")
	require.NoError(t, err)
	cfg.Auth.ProvisionKeyHash = hash
	return NewService(cfg)
}

func TestValidateToken(t *testing.T) {
	svc := newTestService(t)

	token, err := svc.GenerateToken("site-blog", true, time.Minute)
	require.NoError(t, err)

	session, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "site-blog", session.ProjectID)
	assert.True(t, session.IsAdmin)
}

func TestValidateToken_Expired(t *testing.T) {
	svc := newTestService(t)

	token, err := svc.GenerateToken("site-blog", false, -time.Minute)
	require.NoError(t, err)

	_, err = svc.ValidateToken(token)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestValidateToken_WrongSecret(t *testing.T) {
	other := &config.Config{}
	other.Auth.JWTSecret = "different_secret"
	token, err := NewService(other).GenerateToken("site-blog", false, time.Minute)
	require.NoError(t, err)

	_, err = newTestService(t).ValidateToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateToken_MissingProject(t *testing.T) {
	svc := newTestService(t)

	token, err := svc.GenerateToken("", false, time.Minute)
	require.NoError(t, err)

	_, err = svc.ValidateToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestCheckProvisionKey(t *testing.T) {
	svc := newTestService(t)

	assert.NoError(t, svc.CheckProvisionKey("letmein"))
	assert.ErrorIs(t, svc.CheckProvisionKey("wrong"), ErrInvalidKey)
	assert.ErrorIs(t, svc.CheckProvisionKey(""), ErrInvalidKey)

	// No configured hash disables key access outright.
	bare := &config.Config{}
	bare.Auth.JWTSecret = "s"
	assert.ErrorIs(t, NewService(bare).CheckProvisionKey("letmein"), ErrInvalidKey)
}
