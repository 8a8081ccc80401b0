package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/hexaline-bpo/agentpay-backend-go/internal/pkg/jwt"
	"github.com/go-chi/jwtauth/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func requestWithToken(t *testing.T, svc jwt.Service, tokenString string) *http.Request {
	t.Helper()
	token, err := svc.JWTAuth().Decode(tokenString)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	return req.WithContext(jwtauth.NewContext(req.Context(), token, nil))
}

func TestAuthRequired_StashesIdentity(t *testing.T) {
	svc := jwt.NewJWTService("test-secret", "15m", "720h")
	access, _, err := svc.GenerateAccessToken(jwt.Identity{
		AgentCNIC: "35202-1234567-1",
		Role:      "agent",
		Name:      "Ali Khan",
	})
	require.NoError(t, err)

	var got jwt.Identity
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, ok := IdentityFromContext(r.Context())
		require.True(t, ok)
		got = id
	})

	rec := httptest.NewRecorder()
	AuthRequired(svc.JWTAuth())(next).ServeHTTP(rec, requestWithToken(t, svc, access))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "35202-1234567-1", got.AgentCNIC)
	assert.Equal(t, "agent", got.Role)
	assert.Equal(t, "Ali Khan", got.Name)
}

func TestAuthRequired_RejectsRefreshToken(t *testing.T) {
	svc := jwt.NewJWTService("test-secret", "15m", "720h")
	refresh, _, err := svc.GenerateRefreshToken(jwt.Identity{UserID: "u1", Role: "admin"})
	require.NoError(t, err)

	nextCalled := false
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		nextCalled = true
	})

	rec := httptest.NewRecorder()
	AuthRequired(svc.JWTAuth())(next).ServeHTTP(rec, requestWithToken(t, svc, refresh))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, nextCalled)
}

func requestWithIdentity(id jwt.Identity) *http.Request {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	return req.WithContext(context.WithValue(req.Context(), identityKey{}, id))
}

func TestAdminOnly(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})

	rec := httptest.NewRecorder()
	AdminOnly(next).ServeHTTP(rec, requestWithIdentity(jwt.Identity{UserID: "u1", Role: "admin"}))
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	AdminOnly(next).ServeHTTP(rec, requestWithIdentity(jwt.Identity{AgentCNIC: "1", Role: "agent"}))
	assert.Equal(t, http.StatusForbidden, rec.Code)

	// No identity on the context at all.
	rec = httptest.NewRecorder()
	AdminOnly(next).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestEvaluatorOnly(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})

	for _, role := range []string{"admin", "qa"} {
		rec := httptest.NewRecorder()
		EvaluatorOnly(next).ServeHTTP(rec, requestWithIdentity(jwt.Identity{UserID: "u1", Role: role}))
		assert.Equal(t, http.StatusOK, rec.Code, role)
	}

	rec := httptest.NewRecorder()
	EvaluatorOnly(next).ServeHTTP(rec, requestWithIdentity(jwt.Identity{AgentCNIC: "1", Role: "agent"}))
	assert.Equal(t, http.StatusForbidden, rec.Code)
}
