package fine

import (
	"github.com/hexaline-bpo/agentpay-backend-go/internal/pkg/validator"
)

type CreateFineRequest struct {
	AgentCNIC string `json:"agent_cnic"`
	Reason    string `json:"reason"`
	Amount    int64  `json:"amount"`
	Date      string `json:"date,omitempty"` // defaults to today
}

func (r *CreateFineRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.AgentCNIC) {
		errs = append(errs, validator.ValidationError{Field: "agent_cnic", Message: "is required"})
	}
	if validator.IsEmpty(r.Reason) {
		errs = append(errs, validator.ValidationError{Field: "reason", Message: "is required"})
	}
	if r.Amount <= 0 {
		errs = append(errs, validator.ValidationError{Field: "amount", Message: "must be positive"})
	}
	if r.Date != "" {
		if _, ok := validator.IsValidDate(r.Date); !ok {
			errs = append(errs, validator.ValidationError{Field: "date", Message: "must be YYYY-MM-DD"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type FineResponse struct {
	ID         string `json:"id"`
	AgentCNIC  string `json:"agent_cnic"`
	AgentName  string `json:"agent_name"`
	Reason     string `json:"reason"`
	Amount     int64  `json:"amount"`
	Date       string `json:"date"`
	CycleLabel string `json:"cycle_label"`
}

type FineFilter struct {
	AgentCNIC  *string
	CycleLabel *string
}
