package jwt

import (
	"errors"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/lestrrat-go/jwx/v2/jwt"
)

// Identity is what a token asserts about its bearer. Back-office users carry
// a UserID; floor agents carry an AgentCNIC. Exactly one of the two is set.
type Identity struct {
	UserID    string
	AgentCNIC string
	Role      string
	Name      string
}

type Service interface {
	GenerateAccessToken(id Identity) (token string, expiresAt int64, err error)
	GenerateRefreshToken(id Identity) (token string, expiresAt int64, err error)
	ParseRefreshToken(tokenString string) (Identity, error)
	JWTAuth() *jwtauth.JWTAuth
	RefreshTokenCookie(token string, expiresAt int64) *http.Cookie
	RevokeToken(token string)
	IsTokenRevoked(token string) bool
}

var ErrNotRefreshToken = errors.New("token is not a refresh token")

type JWTService struct {
	secretKey                  string
	accessTokenExpirationTime  string
	refreshTokenExpirationTime string
	tokenAuth                  *jwtauth.JWTAuth
	revokedTokens              map[string]int64
	mu                         sync.RWMutex
}

func (j *JWTService) JWTAuth() *jwtauth.JWTAuth {
	return j.tokenAuth
}

func NewJWTService(secretKey string, accessTokenExpirationTime string, refreshTokenExpirationTime string) Service {
	return &JWTService{
		secretKey:                  secretKey,
		accessTokenExpirationTime:  accessTokenExpirationTime,
		refreshTokenExpirationTime: refreshTokenExpirationTime,
		tokenAuth:                  jwtauth.New("HS256", []byte(secretKey), nil, jwt.WithAcceptableSkew(30*time.Second)),
		revokedTokens:              make(map[string]int64),
	}
}

func (j *JWTService) GenerateAccessToken(id Identity) (token string, expiresAt int64, err error) {
	expDuration, err := time.ParseDuration(j.accessTokenExpirationTime)
	if err != nil {
		return "", 0, err
	}
	expiresAt = time.Now().Add(expDuration).Unix()

	_, tokenString, err := j.tokenAuth.Encode(j.claims(id, "access", expiresAt))
	return tokenString, expiresAt, err
}

func (j *JWTService) GenerateRefreshToken(id Identity) (token string, expiresAt int64, err error) {
	expDuration, err := time.ParseDuration(j.refreshTokenExpirationTime)
	if err != nil {
		return "", 0, err
	}
	expiresAt = time.Now().Add(expDuration).Unix()

	_, tokenString, err := j.tokenAuth.Encode(j.claims(id, "refresh", expiresAt))
	return tokenString, expiresAt, err
}

// ParseRefreshToken decodes and validates a refresh token and returns the
// identity it was issued to. Revocation is checked by the caller.
func (j *JWTService) ParseRefreshToken(tokenString string) (Identity, error) {
	token, err := j.tokenAuth.Decode(tokenString)
	if err != nil {
		return Identity{}, err
	}

	tokenType, ok := token.Get("type")
	if !ok || tokenType != "refresh" {
		return Identity{}, ErrNotRefreshToken
	}

	return IdentityFromClaims(claimsMap(token)), nil
}

func (j *JWTService) RefreshTokenCookie(token string, expiresAt int64) *http.Cookie {
	return &http.Cookie{
		Name:     "refresh_token",
		Value:    token,
		Path:     "/api/v1/auth",
		Expires:  time.Unix(expiresAt, 0),
		HttpOnly: true,
		Secure:   false,
		SameSite: http.SameSiteStrictMode,
	}
}

func (j *JWTService) RevokeToken(token string) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.revokedTokens[token] = time.Now().Unix()
}

func (j *JWTService) IsTokenRevoked(token string) bool {
	j.mu.RLock()
	defer j.mu.RUnlock()
	_, revoked := j.revokedTokens[token]
	return revoked
}

func (j *JWTService) claims(id Identity, tokenType string, expiresAt int64) map[string]interface{} {
	claims := map[string]interface{}{
		"role": id.Role,
		"name": id.Name,
		"type": tokenType,
		"exp":  expiresAt,
	}
	if id.UserID != "" {
		claims["user_id"] = id.UserID
	}
	if id.AgentCNIC != "" {
		claims["agent_cnic"] = id.AgentCNIC
	}
	return claims
}

func claimsMap(token jwt.Token) map[string]interface{} {
	claims := map[string]interface{}{}
	for _, key := range []string{"user_id", "agent_cnic", "role", "name"} {
		if v, ok := token.Get(key); ok {
			claims[key] = v
		}
	}
	return claims
}

// IdentityFromClaims rebuilds an Identity from decoded claims, as provided
// by jwtauth middleware or ParseRefreshToken.
func IdentityFromClaims(claims map[string]interface{}) Identity {
	str := func(key string) string {
		if v, ok := claims[key].(string); ok {
			return v
		}
		return ""
	}
	return Identity{
		UserID:    str("user_id"),
		AgentCNIC: str("agent_cnic"),
		Role:      str("role"),
		Name:      str("name"),
	}
}
