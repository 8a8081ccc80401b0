package sale

import "context"

type SaleRepository interface {
	Create(ctx context.Context, s Sale) (Sale, error)
	CreateBatch(ctx context.Context, sales []Sale) (int, error)
	GetByID(ctx context.Context, id string) (Sale, error)
	List(ctx context.Context, filter SaleFilter) ([]Sale, error)
	ListAll(ctx context.Context) ([]Sale, error)
	Update(ctx context.Context, s Sale) (Sale, error)
	Delete(ctx context.Context, id string) error
}
