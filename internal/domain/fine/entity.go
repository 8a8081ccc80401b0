package fine

import "time"

// Fine is a penalty against an agent, created manually or as the automatic
// side effect of a dock note on a sale. Immutable after creation.
type Fine struct {
	ID         string
	AgentCNIC  string
	AgentName  string
	Reason     string
	Amount     int64
	Date       time.Time
	CycleLabel string
	CreatedAt  time.Time
}
