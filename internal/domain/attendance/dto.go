package attendance

import (
	"github.com/hexaline-bpo/agentpay-backend-go/internal/pkg/validator"
)

type RecordResponse struct {
	ID         string `json:"id"`
	AgentCNIC  string `json:"agent_cnic"`
	AgentName  string `json:"agent_name"`
	Date       string `json:"date"`
	Status     string `json:"status"`
	LoginTime  string `json:"login_time,omitempty"`
	LogoutTime string `json:"logout_time,omitempty"`
	Late       bool   `json:"late"`
}

type RecordFilter struct {
	AgentCNIC *string
	DateFrom  *string
	DateTo    *string
}

// ImportRequest carries the decoded biometric rows plus an optional late
// threshold override ("HH:MM" 24-hour) for this run.
type ImportRequest struct {
	Rows          [][]string
	LateThreshold string
}

func (r *ImportRequest) Validate() error {
	var errs validator.ValidationErrors

	if len(r.Rows) == 0 {
		errs = append(errs, validator.ValidationError{Field: "rows", Message: "no rows to import"})
	}
	if r.LateThreshold != "" && !validator.IsValidClockTime(r.LateThreshold) {
		errs = append(errs, validator.ValidationError{Field: "late_threshold", Message: "must be HH:MM 24-hour time"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ImportResult struct {
	DatesCovered  int `json:"dates_covered"`
	AgentsCovered int `json:"agents_covered"`
	RecordsSaved  int `json:"records_saved"`
	RowsSkipped   int `json:"rows_skipped"`
}

// MatrixResponse is the day-by-agent attendance grid for a date window.
type MatrixResponse struct {
	Days   []string    `json:"days"`
	Agents []MatrixRow `json:"agents"`
}

type MatrixRow struct {
	AgentCNIC string   `json:"agent_cnic"`
	AgentName string   `json:"agent_name"`
	Cells     []string `json:"cells"` // one status per day, aligned with Days
}
