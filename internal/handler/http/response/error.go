package response

import (
	"errors"
	"net/http"

	"github.com/hexaline-bpo/agentpay-backend-go/internal/domain/agent"
	"github.com/hexaline-bpo/agentpay-backend-go/internal/domain/attendance"
	"github.com/hexaline-bpo/agentpay-backend-go/internal/domain/auth"
	"github.com/hexaline-bpo/agentpay-backend-go/internal/domain/bonus"
	"github.com/hexaline-bpo/agentpay-backend-go/internal/domain/fine"
	"github.com/hexaline-bpo/agentpay-backend-go/internal/domain/hr"
	"github.com/hexaline-bpo/agentpay-backend-go/internal/domain/sale"
	"github.com/hexaline-bpo/agentpay-backend-go/internal/domain/user"
	"github.com/hexaline-bpo/agentpay-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, "Invalid credentials")
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid token")
	case errors.Is(err, auth.ErrTokenExpired):
		Unauthorized(w, "Token expired")
	case errors.Is(err, auth.ErrTokenRevoked):
		Unauthorized(w, "Token revoked")
	case errors.Is(err, user.ErrAdminPrivilegeRequired):
		Forbidden(w, "Admin privilege required")
	case errors.Is(err, user.ErrEvaluatorRoleRequired):
		Forbidden(w, "Admin or QA role required")
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrUserEmailExists):
		Conflict(w, "Email already registered")

	// Agent roster errors
	case errors.Is(err, agent.ErrAgentNotFound):
		NotFound(w, "Agent not found")
	case errors.Is(err, agent.ErrCNICExists):
		Conflict(w, "Agent with this CNIC already exists")
	case errors.Is(err, agent.ErrAgentAlreadyLeft):
		Conflict(w, "Agent is already marked as left")
	case errors.Is(err, agent.ErrAgentStillActive):
		Conflict(w, "Agent is still active")

	// Sale, fine, bonus errors
	case errors.Is(err, sale.ErrSaleNotFound):
		NotFound(w, "Sale not found")
	case errors.Is(err, fine.ErrFineNotFound):
		NotFound(w, "Fine not found")
	case errors.Is(err, bonus.ErrBonusNotFound):
		NotFound(w, "Bonus not found")

	// Attendance errors
	case errors.Is(err, attendance.ErrRecordNotFound):
		NotFound(w, "Attendance record not found")
	case errors.Is(err, attendance.ErrEmptyImport):
		BadRequest(w, "No usable rows in attendance import", nil)

	// HR errors
	case errors.Is(err, hr.ErrRecordNotFound):
		NotFound(w, "HR record not found")
	case errors.Is(err, hr.ErrRecordExists):
		Conflict(w, "HR record already exists for this agent")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
