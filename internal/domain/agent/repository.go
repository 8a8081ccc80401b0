package agent

import "context"

type AgentRepository interface {
	Create(ctx context.Context, a Agent) (Agent, error)
	CreateBatch(ctx context.Context, agents []Agent) (int, error)
	GetByCNIC(ctx context.Context, cnic string) (Agent, error)
	GetByName(ctx context.Context, name string) (Agent, error)
	List(ctx context.Context, filter AgentFilter) ([]Agent, error)
	ListActive(ctx context.Context) ([]Agent, error)
	Update(ctx context.Context, req UpdateAgentRequest) (Agent, error)
	SetStatus(ctx context.Context, cnic string, status Status) (Agent, error)
	Delete(ctx context.Context, cnic string) error
}
