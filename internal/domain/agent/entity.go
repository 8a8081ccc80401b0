package agent

import "time"

type Status string

const (
	StatusActive Status = "Active"
	StatusLeft   Status = "Left"
)

// Agent is a sales agent on the call-center floor. CNIC (national ID) is the
// stable key; every referencing entity stores it, and display names are only
// denormalized projections refreshed at read time.
type Agent struct {
	CNIC        string
	Name        string
	Team        string
	Center      string
	BaseSalary  int64
	Status      Status
	ActivatedAt time.Time
	LeftAt      *time.Time

	// Password is compared as a plaintext string, carried over from the
	// legacy system. Not production-safe; replacing it belongs to an
	// authentication redesign.
	Password string

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (a Agent) IsActive() bool {
	return a.Status == StatusActive
}
