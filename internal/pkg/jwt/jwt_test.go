package jwt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService() Service {
	return NewJWTService("test-secret-key", "15m", "168h")
}

func TestGenerateAccessToken(t *testing.T) {
	svc := newTestService()

	token, expiresAt, err := svc.GenerateAccessToken(Identity{
		UserID: "user-1",
		Role:   "admin",
		Name:   "Back Office",
	})

	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Greater(t, expiresAt, time.Now().Unix())
}

func TestRefreshTokenRoundTrip(t *testing.T) {
	svc := newTestService()

	token, _, err := svc.GenerateRefreshToken(Identity{
		AgentCNIC: "3520212345671",
		Role:      "agent",
		Name:      "Ali Khan",
	})
	require.NoError(t, err)

	identity, err := svc.ParseRefreshToken(token)
	require.NoError(t, err)
	assert.Equal(t, "3520212345671", identity.AgentCNIC)
	assert.Equal(t, "agent", identity.Role)
	assert.Equal(t, "Ali Khan", identity.Name)
	assert.Empty(t, identity.UserID)
}

func TestParseRefreshToken_RejectsAccessToken(t *testing.T) {
	svc := newTestService()

	token, _, err := svc.GenerateAccessToken(Identity{UserID: "user-1", Role: "qa"})
	require.NoError(t, err)

	_, err = svc.ParseRefreshToken(token)
	assert.ErrorIs(t, err, ErrNotRefreshToken)
}

func TestRevokeToken(t *testing.T) {
	svc := newTestService()

	token, _, err := svc.GenerateRefreshToken(Identity{UserID: "user-1", Role: "admin"})
	require.NoError(t, err)

	assert.False(t, svc.IsTokenRevoked(token))
	svc.RevokeToken(token)
	assert.True(t, svc.IsTokenRevoked(token))
}

func TestIdentityFromClaims(t *testing.T) {
	identity := IdentityFromClaims(map[string]interface{}{
		"user_id": "user-9",
		"role":    "qa",
		"name":    "QA Lead",
		"exp":     int64(123),
	})

	assert.Equal(t, "user-9", identity.UserID)
	assert.Equal(t, "qa", identity.Role)
	assert.Empty(t, identity.AgentCNIC)
}
