package attendance

import "time"

type Status string

const (
	StatusPresent Status = "Present"
	StatusAbsent  Status = "Absent"
	StatusLeave   Status = "Leave"
)

// Record is one agent's attendance for one calendar day. The import engine
// emits exactly one record per (agent, date), never one per raw clock punch.
type Record struct {
	ID        string
	AgentCNIC string
	AgentName string
	Date      time.Time
	Status    Status

	// Times are "HH:MM" 24-hour strings; empty when not applicable. A
	// logout is only recorded when the machine logged more than one punch
	// that day.
	LoginTime  string
	LogoutTime string
	Late       bool

	CreatedAt time.Time
	UpdatedAt time.Time
}
