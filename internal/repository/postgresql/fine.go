package postgresql

import (
	"context"
	"fmt"
	"strings"

	"github.com/hexaline-bpo/agentpay-backend-go/internal/domain/fine"
	"github.com/hexaline-bpo/agentpay-backend-go/internal/pkg/database"
)

type fineRepository struct {
	db *database.DB
}

const fineColumns = `
	f.id, f.agent_cnic, COALESCE(a.name, ''), f.reason, f.amount, f.date, f.cycle_label, f.created_at`

// Create implements fine.FineRepository.
func (r *fineRepository) Create(ctx context.Context, f fine.Fine) (fine.Fine, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO fines (agent_cnic, reason, amount, date, cycle_label)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`

	err := q.QueryRow(ctx, query,
		f.AgentCNIC, f.Reason, f.Amount, f.Date, f.CycleLabel,
	).Scan(&f.ID, &f.CreatedAt)
	if err != nil {
		return fine.Fine{}, fmt.Errorf("failed to create fine: %w", err)
	}

	return f, nil
}

// List implements fine.FineRepository.
func (r *fineRepository) List(ctx context.Context, filter fine.FineFilter) ([]fine.Fine, error) {
	q := GetQuerier(ctx, r.db)

	conditions := []string{"1=1"}
	args := []interface{}{}
	argIdx := 1

	if filter.AgentCNIC != nil && *filter.AgentCNIC != "" {
		conditions = append(conditions, fmt.Sprintf("f.agent_cnic = $%d", argIdx))
		args = append(args, *filter.AgentCNIC)
		argIdx++
	}
	if filter.CycleLabel != nil && *filter.CycleLabel != "" {
		conditions = append(conditions, fmt.Sprintf("f.cycle_label = $%d", argIdx))
		args = append(args, *filter.CycleLabel)
		argIdx++
	}

	query := `
		SELECT ` + fineColumns + `
		FROM fines f
		LEFT JOIN agents a ON a.cnic = f.agent_cnic
		WHERE ` + strings.Join(conditions, " AND ") + `
		ORDER BY f.date DESC, f.created_at DESC
	`

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list fines: %w", err)
	}
	defer rows.Close()

	var fines []fine.Fine
	for rows.Next() {
		var f fine.Fine
		err := rows.Scan(&f.ID, &f.AgentCNIC, &f.AgentName, &f.Reason, &f.Amount, &f.Date, &f.CycleLabel, &f.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan fine: %w", err)
		}
		fines = append(fines, f)
	}

	return fines, rows.Err()
}

// ListAll implements fine.FineRepository.
func (r *fineRepository) ListAll(ctx context.Context) ([]fine.Fine, error) {
	return r.List(ctx, fine.FineFilter{})
}

// Delete implements fine.FineRepository.
func (r *fineRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM fines WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete fine: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fine.ErrFineNotFound
	}

	return nil
}

func NewFineRepository(db *database.DB) fine.FineRepository {
	return &fineRepository{db: db}
}
