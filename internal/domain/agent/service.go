package agent

import "context"

// AgentService defines business logic for agent roster operations
type AgentService interface {
	CreateAgent(ctx context.Context, req CreateAgentRequest) (AgentResponse, error)
	GetAgent(ctx context.Context, cnic string) (AgentResponse, error)
	ListAgents(ctx context.Context, filter AgentFilter) ([]AgentResponse, error)
	UpdateAgent(ctx context.Context, req UpdateAgentRequest) (AgentResponse, error)

	// MarkLeft sets the termination date and flips status to Left; the agent
	// stops contributing to payroll totals but keeps historical records.
	MarkLeft(ctx context.Context, cnic string) (AgentResponse, error)
	Reactivate(ctx context.Context, cnic string) (AgentResponse, error)

	DeleteAgent(ctx context.Context, cnic string) error
}
