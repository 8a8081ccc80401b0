package bonus

import (
	"github.com/hexaline-bpo/agentpay-backend-go/internal/pkg/validator"
)

type CreateBonusRequest struct {
	AgentCNIC   string `json:"agent_cnic"`
	CycleLabel  string `json:"cycle_label"`
	Type        string `json:"type"`
	TargetSales int    `json:"target_sales"`
	ActualSales int    `json:"actual_sales"`
	Amount      int64  `json:"amount"`
}

func (r *CreateBonusRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.AgentCNIC) {
		errs = append(errs, validator.ValidationError{Field: "agent_cnic", Message: "is required"})
	}
	if validator.IsEmpty(r.CycleLabel) {
		errs = append(errs, validator.ValidationError{Field: "cycle_label", Message: "is required"})
	}
	if r.Amount <= 0 {
		errs = append(errs, validator.ValidationError{Field: "amount", Message: "must be positive"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type BonusResponse struct {
	ID          string `json:"id"`
	AgentCNIC   string `json:"agent_cnic"`
	AgentName   string `json:"agent_name"`
	CycleLabel  string `json:"cycle_label"`
	Type        string `json:"type"`
	TargetSales int    `json:"target_sales"`
	ActualSales int    `json:"actual_sales"`
	Amount      int64  `json:"amount"`
}

type BonusFilter struct {
	AgentCNIC  *string
	CycleLabel *string
}
