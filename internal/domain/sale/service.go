package sale

import "context"

// SaleService defines business logic for sale submissions and QA edits
type SaleService interface {
	CreateSale(ctx context.Context, req CreateSaleRequest) (SaleResponse, error)
	GetSale(ctx context.Context, id string) (SaleResponse, error)
	ListSales(ctx context.Context, filter SaleFilter) ([]SaleResponse, error)

	// UpdateSale recomputes status when the disposition changes and, when
	// the dock-details note changes to a new non-empty value, creates the
	// corresponding fine in the same transaction.
	UpdateSale(ctx context.Context, req UpdateSaleRequest) (SaleResponse, error)

	DeleteSale(ctx context.Context, id string) error
}
