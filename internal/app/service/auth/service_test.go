package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/fitzone/memberd/internal/models"
	cfgpkg "github.com/fitzone/memberd/pkg/config"
)

func newTestService(secret string, ttl time.Duration) *Service {
	cfg := &cfgpkg.Config{}
	cfg.Auth.JWTSecret = secret
	cfg.Auth.TokenTTL = ttl
	return NewService(cfg, nil, zap.NewNop().Sugar())
}

func TestTokenRoundTrip(t *testing.T) {
	svc := newTestService("test-secret", time.Hour)
	user := &models.User{ID: "u1", Username: "frontdesk", IsAdmin: true}

	token, err := svc.issueToken(user)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "u1", claims.UserID)
	assert.Equal(t, "frontdesk", claims.Username)
	assert.True(t, claims.IsAdmin)
	assert.Equal(t, "memberd", claims.Issuer)
}

func TestValidateToken_RejectsWrongSecret(t *testing.T) {
	issuer := newTestService("secret-a", time.Hour)
	verifier := newTestService("secret-b", time.Hour)

	token, err := issuer.issueToken(&models.User{ID: "u1", Username: "frontdesk"})
	require.NoError(t, err)

	_, err = verifier.ValidateToken(token)
	assert.Error(t, err)
}

func TestValidateToken_RejectsExpired(t *testing.T) {
	svc := newTestService("test-secret", time.Millisecond)

	token, err := svc.issueToken(&models.User{ID: "u1", Username: "frontdesk"})
	require.NoError(t, err)

	time.Sleep(10 * time.Millisecond)
	_, err = svc.ValidateToken(token)
	assert.Error(t, err)
}

func TestValidateToken_RejectsGarbage(t *testing.T) {
	svc := newTestService("test-secret", time.Hour)

	_, err := svc.ValidateToken("not.a.token")
	assert.Error(t, err)
}
