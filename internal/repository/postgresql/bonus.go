package postgresql

import (
	"context"
	"fmt"
	"strings"

	"github.com/hexaline-bpo/agentpay-backend-go/internal/domain/bonus"
	"github.com/hexaline-bpo/agentpay-backend-go/internal/pkg/database"
)

type bonusRepository struct {
	db *database.DB
}

const bonusColumns = `
	b.id, b.agent_cnic, COALESCE(a.name, ''), b.cycle_label, b.type,
	b.target_sales, b.actual_sales, b.amount, b.created_at`

// Create implements bonus.BonusRepository.
func (r *bonusRepository) Create(ctx context.Context, b bonus.Bonus) (bonus.Bonus, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO bonuses (agent_cnic, cycle_label, type, target_sales, actual_sales, amount)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at
	`

	err := q.QueryRow(ctx, query,
		b.AgentCNIC, b.CycleLabel, b.Type, b.TargetSales, b.ActualSales, b.Amount,
	).Scan(&b.ID, &b.CreatedAt)
	if err != nil {
		return bonus.Bonus{}, fmt.Errorf("failed to create bonus: %w", err)
	}

	return b, nil
}

// List implements bonus.BonusRepository.
func (r *bonusRepository) List(ctx context.Context, filter bonus.BonusFilter) ([]bonus.Bonus, error) {
	q := GetQuerier(ctx, r.db)

	conditions := []string{"1=1"}
	args := []interface{}{}
	argIdx := 1

	if filter.AgentCNIC != nil && *filter.AgentCNIC != "" {
		conditions = append(conditions, fmt.Sprintf("b.agent_cnic = $%d", argIdx))
		args = append(args, *filter.AgentCNIC)
		argIdx++
	}
	if filter.CycleLabel != nil && *filter.CycleLabel != "" {
		conditions = append(conditions, fmt.Sprintf("b.cycle_label = $%d", argIdx))
		args = append(args, *filter.CycleLabel)
		argIdx++
	}

	query := `
		SELECT ` + bonusColumns + `
		FROM bonuses b
		LEFT JOIN agents a ON a.cnic = b.agent_cnic
		WHERE ` + strings.Join(conditions, " AND ") + `
		ORDER BY b.created_at DESC
	`

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list bonuses: %w", err)
	}
	defer rows.Close()

	var bonuses []bonus.Bonus
	for rows.Next() {
		var b bonus.Bonus
		err := rows.Scan(&b.ID, &b.AgentCNIC, &b.AgentName, &b.CycleLabel, &b.Type,
			&b.TargetSales, &b.ActualSales, &b.Amount, &b.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan bonus: %w", err)
		}
		bonuses = append(bonuses, b)
	}

	return bonuses, rows.Err()
}

// ListAll implements bonus.BonusRepository.
func (r *bonusRepository) ListAll(ctx context.Context) ([]bonus.Bonus, error) {
	return r.List(ctx, bonus.BonusFilter{})
}

// Delete implements bonus.BonusRepository.
func (r *bonusRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM bonuses WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete bonus: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return bonus.ErrBonusNotFound
	}

	return nil
}

func NewBonusRepository(db *database.DB) bonus.BonusRepository {
	return &bonusRepository{db: db}
}
