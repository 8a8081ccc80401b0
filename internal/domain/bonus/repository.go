package bonus

import "context"

type BonusRepository interface {
	Create(ctx context.Context, b Bonus) (Bonus, error)
	List(ctx context.Context, filter BonusFilter) ([]Bonus, error)
	ListAll(ctx context.Context) ([]Bonus, error)
	Delete(ctx context.Context, id string) error
}
