package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/hexaline-bpo/agentpay-backend-go/internal/domain/sale"
	"github.com/hexaline-bpo/agentpay-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type saleRepository struct {
	db *database.DB
}

// AgentName is joined from the roster so renames show up without a
// backfill; sales themselves only persist the CNIC.
const saleColumns = `
	s.id, s.agent_cnic, COALESCE(a.name, ''), s.entered_at, s.date, s.cycle_label,
	s.customer_name, s.phone_number, s.state, s.zip, s.address,
	s.campaign_type, s.center, s.team_lead, s.comments, s.list_id,
	s.disposition, s.status, s.duration, s.xfer_time, s.xfer_attempts,
	s.feedback_before_xfer, s.feedback_after_xfer, s.grading, s.dock_details, s.evaluator,
	s.amount, s.created_at, s.updated_at`

const saleFrom = ` FROM sales s LEFT JOIN agents a ON a.cnic = s.agent_cnic `

func scanSale(row pgx.Row) (sale.Sale, error) {
	var s sale.Sale
	err := row.Scan(
		&s.ID, &s.AgentCNIC, &s.AgentName, &s.EnteredAt, &s.Date, &s.CycleLabel,
		&s.CustomerName, &s.PhoneNumber, &s.State, &s.Zip, &s.Address,
		&s.CampaignType, &s.Center, &s.TeamLead, &s.Comments, &s.ListID,
		&s.Disposition, &s.Status, &s.Duration, &s.XferTime, &s.XferAttempts,
		&s.FeedbackBeforeXfer, &s.FeedbackAfterXfer, &s.Grading, &s.DockDetails, &s.Evaluator,
		&s.Amount, &s.CreatedAt, &s.UpdatedAt,
	)
	return s, err
}

const insertSaleQuery = `
	INSERT INTO sales (
		agent_cnic, entered_at, date, cycle_label,
		customer_name, phone_number, state, zip, address,
		campaign_type, center, team_lead, comments, list_id,
		disposition, status, duration, xfer_time, xfer_attempts,
		feedback_before_xfer, feedback_after_xfer, grading, dock_details, evaluator,
		amount
	) VALUES (
		$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14,
		$15, $16, $17, $18, $19, $20, $21, $22, $23, $24, $25
	) RETURNING id, created_at, updated_at
`

func insertSaleArgs(s sale.Sale) []interface{} {
	return []interface{}{
		s.AgentCNIC, s.EnteredAt, s.Date, s.CycleLabel,
		s.CustomerName, s.PhoneNumber, s.State, s.Zip, s.Address,
		s.CampaignType, s.Center, s.TeamLead, s.Comments, s.ListID,
		s.Disposition, s.Status, s.Duration, s.XferTime, s.XferAttempts,
		s.FeedbackBeforeXfer, s.FeedbackAfterXfer, s.Grading, s.DockDetails, s.Evaluator,
		s.Amount,
	}
}

// Create implements sale.SaleRepository.
func (r *saleRepository) Create(ctx context.Context, s sale.Sale) (sale.Sale, error) {
	q := GetQuerier(ctx, r.db)

	err := q.QueryRow(ctx, insertSaleQuery, insertSaleArgs(s)...).
		Scan(&s.ID, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return sale.Sale{}, fmt.Errorf("failed to create sale: %w", err)
	}

	return s, nil
}

// CreateBatch implements sale.SaleRepository. Caller wraps this in a
// transaction so a failing row discards the whole import.
func (r *saleRepository) CreateBatch(ctx context.Context, sales []sale.Sale) (int, error) {
	q := GetQuerier(ctx, r.db)

	for i := range sales {
		s := &sales[i]
		err := q.QueryRow(ctx, insertSaleQuery, insertSaleArgs(*s)...).
			Scan(&s.ID, &s.CreatedAt, &s.UpdatedAt)
		if err != nil {
			return 0, fmt.Errorf("failed to create sale for agent %s: %w", s.AgentCNIC, err)
		}
	}

	return len(sales), nil
}

// GetByID implements sale.SaleRepository.
func (r *saleRepository) GetByID(ctx context.Context, id string) (sale.Sale, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT` + saleColumns + saleFrom + `WHERE s.id = $1`

	s, err := scanSale(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return sale.Sale{}, sale.ErrSaleNotFound
		}
		return sale.Sale{}, fmt.Errorf("failed to get sale: %w", err)
	}

	return s, nil
}

// List implements sale.SaleRepository.
func (r *saleRepository) List(ctx context.Context, filter sale.SaleFilter) ([]sale.Sale, error) {
	q := GetQuerier(ctx, r.db)

	conditions := []string{"1=1"}
	args := []interface{}{}
	argIdx := 1

	if filter.AgentCNIC != nil && *filter.AgentCNIC != "" {
		conditions = append(conditions, fmt.Sprintf("s.agent_cnic = $%d", argIdx))
		args = append(args, *filter.AgentCNIC)
		argIdx++
	}
	if filter.CycleLabel != nil && *filter.CycleLabel != "" {
		conditions = append(conditions, fmt.Sprintf("s.cycle_label = $%d", argIdx))
		args = append(args, *filter.CycleLabel)
		argIdx++
	}
	if filter.Status != nil {
		conditions = append(conditions, fmt.Sprintf("s.status = $%d", argIdx))
		args = append(args, *filter.Status)
		argIdx++
	}
	if filter.Search != "" {
		conditions = append(conditions, fmt.Sprintf("(a.name ILIKE $%d OR s.customer_name ILIKE $%d OR s.phone_number ILIKE $%d)", argIdx, argIdx, argIdx))
		args = append(args, "%"+filter.Search+"%")
		argIdx++
	}

	query := `SELECT` + saleColumns + saleFrom + `
		WHERE ` + strings.Join(conditions, " AND ") + `
		ORDER BY s.date DESC, s.created_at DESC
	`

	return r.querySales(ctx, q, query, args...)
}

// ListAll implements sale.SaleRepository.
func (r *saleRepository) ListAll(ctx context.Context) ([]sale.Sale, error) {
	return r.List(ctx, sale.SaleFilter{})
}

// Update implements sale.SaleRepository. Full-row update; the service layer
// owns status re-derivation and the dock-details fine side effect.
func (r *saleRepository) Update(ctx context.Context, s sale.Sale) (sale.Sale, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE sales SET
			customer_name = $1, phone_number = $2, state = $3, zip = $4, address = $5,
			campaign_type = $6, center = $7, team_lead = $8, comments = $9, list_id = $10,
			disposition = $11, status = $12, duration = $13, xfer_time = $14, xfer_attempts = $15,
			feedback_before_xfer = $16, feedback_after_xfer = $17, grading = $18,
			dock_details = $19, evaluator = $20, amount = $21,
			updated_at = NOW()
		WHERE id = $22
		RETURNING updated_at
	`

	err := q.QueryRow(ctx, query,
		s.CustomerName, s.PhoneNumber, s.State, s.Zip, s.Address,
		s.CampaignType, s.Center, s.TeamLead, s.Comments, s.ListID,
		s.Disposition, s.Status, s.Duration, s.XferTime, s.XferAttempts,
		s.FeedbackBeforeXfer, s.FeedbackAfterXfer, s.Grading,
		s.DockDetails, s.Evaluator, s.Amount,
		s.ID,
	).Scan(&s.UpdatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return sale.Sale{}, sale.ErrSaleNotFound
		}
		return sale.Sale{}, fmt.Errorf("failed to update sale: %w", err)
	}

	return s, nil
}

// Delete implements sale.SaleRepository.
func (r *saleRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM sales WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete sale: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return sale.ErrSaleNotFound
	}

	return nil
}

func (r *saleRepository) querySales(ctx context.Context, q database.Querier, query string, args ...interface{}) ([]sale.Sale, error) {
	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list sales: %w", err)
	}
	defer rows.Close()

	var sales []sale.Sale
	for rows.Next() {
		s, err := scanSale(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan sale: %w", err)
		}
		sales = append(sales, s)
	}

	return sales, rows.Err()
}

func NewSaleRepository(db *database.DB) sale.SaleRepository {
	return &saleRepository{db: db}
}
