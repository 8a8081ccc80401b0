package agent

import (
	"github.com/hexaline-bpo/agentpay-backend-go/internal/pkg/validator"
)

type CreateAgentRequest struct {
	CNIC       string `json:"cnic"`
	Name       string `json:"name"`
	Team       string `json:"team"`
	Center     string `json:"center"`
	BaseSalary int64  `json:"base_salary"`
	Password   string `json:"password,omitempty"`
}

func (r *CreateAgentRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.CNIC) {
		errs = append(errs, validator.ValidationError{Field: "cnic", Message: "is required"})
	}
	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "is required"})
	}
	if r.BaseSalary < 0 {
		errs = append(errs, validator.ValidationError{Field: "base_salary", Message: "must be non-negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateAgentRequest struct {
	CNIC       string  `json:"-"`
	Name       *string `json:"name,omitempty"`
	Team       *string `json:"team,omitempty"`
	Center     *string `json:"center,omitempty"`
	BaseSalary *int64  `json:"base_salary,omitempty"`
	Password   *string `json:"password,omitempty"`
}

func (r *UpdateAgentRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Name != nil && validator.IsEmpty(*r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "must not be blank"})
	}
	if r.BaseSalary != nil && *r.BaseSalary < 0 {
		errs = append(errs, validator.ValidationError{Field: "base_salary", Message: "must be non-negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type AgentResponse struct {
	CNIC        string  `json:"cnic"`
	Name        string  `json:"name"`
	Team        string  `json:"team"`
	Center      string  `json:"center"`
	BaseSalary  int64   `json:"base_salary"`
	Status      string  `json:"status"`
	ActivatedAt string  `json:"activated_at"`
	LeftAt      *string `json:"left_at,omitempty"`
}

type AgentFilter struct {
	Status *Status
	Team   *string
	Search string
}
