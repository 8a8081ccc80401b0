package sale

import (
	"github.com/hexaline-bpo/agentpay-backend-go/internal/pkg/validator"
)

type CreateSaleRequest struct {
	AgentCNIC    string `json:"agent_cnic"`
	Date         string `json:"date,omitempty"` // "YYYY-MM-DD", defaults to today
	CustomerName string `json:"customer_name"`
	PhoneNumber  string `json:"phone_number"`
	State        string `json:"state,omitempty"`
	Zip          string `json:"zip,omitempty"`
	Address      string `json:"address,omitempty"`
	CampaignType string `json:"campaign_type,omitempty"`
	Center       string `json:"center,omitempty"`
	TeamLead     string `json:"team_lead,omitempty"`
	Comments     string `json:"comments,omitempty"`
	ListID       string `json:"list_id,omitempty"`
	Disposition  string `json:"disposition"`
	Duration     string `json:"duration,omitempty"`
	XferTime     string `json:"xfer_time,omitempty"`
	XferAttempts string `json:"xfer_attempts,omitempty"`
	Amount       int64  `json:"amount"`
}

func (r *CreateSaleRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.AgentCNIC) {
		errs = append(errs, validator.ValidationError{Field: "agent_cnic", Message: "is required"})
	}
	if validator.IsEmpty(r.CustomerName) {
		errs = append(errs, validator.ValidationError{Field: "customer_name", Message: "is required"})
	}
	if r.Date != "" {
		if _, ok := validator.IsValidDate(r.Date); !ok {
			errs = append(errs, validator.ValidationError{Field: "date", Message: "must be YYYY-MM-DD"})
		}
	}
	if r.Amount < 0 {
		errs = append(errs, validator.ValidationError{Field: "amount", Message: "must be non-negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// UpdateSaleRequest covers both admin field edits and QA evaluation edits.
// A disposition change recomputes status in the same operation; a changed,
// non-empty dock_details value triggers an automatic fine.
type UpdateSaleRequest struct {
	ID                 string  `json:"-"`
	CustomerName       *string `json:"customer_name,omitempty"`
	PhoneNumber        *string `json:"phone_number,omitempty"`
	Comments           *string `json:"comments,omitempty"`
	Disposition        *string `json:"disposition,omitempty"`
	Amount             *int64  `json:"amount,omitempty"`
	Grading            *string `json:"grading,omitempty"`
	Evaluator          *string `json:"evaluator,omitempty"`
	FeedbackBeforeXfer *string `json:"feedback_before_xfer,omitempty"`
	FeedbackAfterXfer  *string `json:"feedback_after_xfer,omitempty"`
	DockDetails        *string `json:"dock_details,omitempty"`
}

func (r *UpdateSaleRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Amount != nil && *r.Amount < 0 {
		errs = append(errs, validator.ValidationError{Field: "amount", Message: "must be non-negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type SaleResponse struct {
	ID                 string `json:"id"`
	AgentCNIC          string `json:"agent_cnic"`
	AgentName          string `json:"agent_name"`
	EnteredAt          string `json:"entered_at"`
	Date               string `json:"date"`
	CycleLabel         string `json:"cycle_label"`
	CustomerName       string `json:"customer_name"`
	PhoneNumber        string `json:"phone_number"`
	State              string `json:"state,omitempty"`
	Zip                string `json:"zip,omitempty"`
	Address            string `json:"address,omitempty"`
	CampaignType       string `json:"campaign_type,omitempty"`
	Center             string `json:"center,omitempty"`
	TeamLead           string `json:"team_lead,omitempty"`
	Comments           string `json:"comments,omitempty"`
	ListID             string `json:"list_id,omitempty"`
	Disposition        string `json:"disposition"`
	Status             string `json:"status"`
	Duration           string `json:"duration,omitempty"`
	XferTime           string `json:"xfer_time,omitempty"`
	XferAttempts       string `json:"xfer_attempts,omitempty"`
	FeedbackBeforeXfer string `json:"feedback_before_xfer,omitempty"`
	FeedbackAfterXfer  string `json:"feedback_after_xfer,omitempty"`
	Grading            string `json:"grading,omitempty"`
	DockDetails        string `json:"dock_details,omitempty"`
	Evaluator          string `json:"evaluator,omitempty"`
	Amount             int64  `json:"amount"`
}

type SaleFilter struct {
	AgentCNIC  *string
	CycleLabel *string
	Status     *Status
	Search     string
}
