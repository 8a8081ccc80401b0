package middleware

import (
	"context"
	"net/http"

	"github.com/hexaline-bpo/agentpay-backend-go/internal/domain/auth"
	"github.com/hexaline-bpo/agentpay-backend-go/internal/handler/http/response"
	"github.com/hexaline-bpo/agentpay-backend-go/internal/pkg/jwt"
	"github.com/go-chi/jwtauth/v5"
)

type identityKey struct{}

// IdentityFromContext returns the bearer identity stashed by AuthRequired.
// Handlers and role middleware read this instead of raw token claims.
func IdentityFromContext(ctx context.Context) (jwt.Identity, bool) {
	id, ok := ctx.Value(identityKey{}).(jwt.Identity)
	return id, ok
}

// AuthRequired rejects anything but a valid access token. Refresh tokens
// carry type "refresh" and are only good on the refresh endpoint, never as
// bearer credentials. On success the decoded identity is placed on the
// request context.
func AuthRequired(ja *jwtauth.JWTAuth) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		hfn := func(w http.ResponseWriter, r *http.Request) {
			token, _, err := jwtauth.FromContext(r.Context())

			if err != nil {
				response.Unauthorized(w, err.Error())
				return
			}

			if token == nil {
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}

			claims, err := token.AsMap(r.Context())
			if err != nil {
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}
			tokenType, ok := claims["type"].(string)
			if tokenType != "access" || !ok {
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}

			ctx := context.WithValue(r.Context(), identityKey{}, jwt.IdentityFromClaims(claims))
			next.ServeHTTP(w, r.WithContext(ctx))
		}
		return http.HandlerFunc(hfn)
	}
}
