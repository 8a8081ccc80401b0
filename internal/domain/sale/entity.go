package sale

import "time"

type Status string

const (
	StatusSale         Status = "Sale"
	StatusUnsuccessful Status = "Unsuccessful"
)

// Sale is one logged sales call. Status is always derived from Disposition
// through DeriveStatus; no write path assigns it directly.
type Sale struct {
	ID         string
	AgentCNIC  string
	AgentName  string // denormalized from the roster at read time
	EnteredAt  time.Time
	Date       time.Time
	CycleLabel string

	CustomerName string
	PhoneNumber  string
	State        string
	Zip          string
	Address      string
	CampaignType string
	Center       string
	TeamLead     string
	Comments     string
	ListID       string

	Disposition  string
	Status       Status
	Duration     string
	XferTime     string
	XferAttempts string

	FeedbackBeforeXfer string
	FeedbackAfterXfer  string
	Grading            string
	DockDetails        string
	Evaluator          string

	Amount int64

	CreatedAt time.Time
	UpdatedAt time.Time
}
