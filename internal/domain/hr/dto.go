package hr

import (
	"github.com/hexaline-bpo/agentpay-backend-go/internal/pkg/validator"
)

type CreateRecordRequest struct {
	AgentCNIC     string `json:"agent_cnic"`
	Designation   string `json:"designation,omitempty"`
	Contact       string `json:"contact,omitempty"`
	FatherName    string `json:"father_name,omitempty"`
	BankName      string `json:"bank_name,omitempty"`
	AccountNumber string `json:"account_number,omitempty"`
	JoiningDate   string `json:"joining_date,omitempty"`
	Status        string `json:"status,omitempty"`
}

func (r *CreateRecordRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.AgentCNIC) {
		errs = append(errs, validator.ValidationError{Field: "agent_cnic", Message: "is required"})
	}
	if r.JoiningDate != "" {
		if _, ok := validator.IsValidDate(r.JoiningDate); !ok {
			errs = append(errs, validator.ValidationError{Field: "joining_date", Message: "must be YYYY-MM-DD"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateRecordRequest struct {
	ID            string  `json:"-"`
	Designation   *string `json:"designation,omitempty"`
	Contact       *string `json:"contact,omitempty"`
	FatherName    *string `json:"father_name,omitempty"`
	BankName      *string `json:"bank_name,omitempty"`
	AccountNumber *string `json:"account_number,omitempty"`
	Status        *string `json:"status,omitempty"`
}

type RecordResponse struct {
	ID            string  `json:"id"`
	AgentCNIC     string  `json:"agent_cnic"`
	Name          string  `json:"name"`
	Designation   string  `json:"designation,omitempty"`
	Contact       string  `json:"contact,omitempty"`
	FatherName    string  `json:"father_name,omitempty"`
	BankName      string  `json:"bank_name,omitempty"`
	AccountNumber string  `json:"account_number,omitempty"`
	JoiningDate   *string `json:"joining_date,omitempty"`
	Status        string  `json:"status,omitempty"`
}
