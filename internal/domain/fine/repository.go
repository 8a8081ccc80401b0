package fine

import "context"

type FineRepository interface {
	Create(ctx context.Context, f Fine) (Fine, error)
	List(ctx context.Context, filter FineFilter) ([]Fine, error)
	ListAll(ctx context.Context) ([]Fine, error)
	Delete(ctx context.Context, id string) error
}
