package hr

import "context"

type HRRepository interface {
	Create(ctx context.Context, rec Record) (Record, error)
	Upsert(ctx context.Context, rec Record) (Record, error)
	GetByAgent(ctx context.Context, agentCNIC string) (Record, error)
	List(ctx context.Context) ([]Record, error)
	Update(ctx context.Context, req UpdateRecordRequest) (Record, error)
	Delete(ctx context.Context, id string) error
}
