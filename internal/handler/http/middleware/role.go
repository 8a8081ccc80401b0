package middleware

import (
	"net/http"

	"github.com/hexaline-bpo/agentpay-backend-go/internal/domain/user"
	"github.com/hexaline-bpo/agentpay-backend-go/internal/handler/http/response"
)

// AdminOnly requires the admin role
func AdminOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, ok := IdentityFromContext(r.Context())
		if !ok || user.Role(id.Role) != user.RoleAdmin {
			response.HandleError(w, user.ErrAdminPrivilegeRequired)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// EvaluatorOnly requires admin or qa role; these are the roles allowed to
// grade sales and apply dock notes.
func EvaluatorOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, ok := IdentityFromContext(r.Context())
		if !ok {
			response.HandleError(w, user.ErrEvaluatorRoleRequired)
			return
		}

		role := user.Role(id.Role)
		if role != user.RoleAdmin && role != user.RoleQA {
			response.HandleError(w, user.ErrEvaluatorRoleRequired)
			return
		}

		next.ServeHTTP(w, r)
	})
}
