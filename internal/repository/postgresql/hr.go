package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/hexaline-bpo/agentpay-backend-go/internal/domain/hr"
	"github.com/hexaline-bpo/agentpay-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type hrRepository struct {
	db *database.DB
}

const hrColumns = `
	h.id, h.agent_cnic, COALESCE(a.name, ''), h.designation, h.contact,
	h.father_name, h.bank_name, h.account_number, h.joining_date, h.status,
	h.created_at, h.updated_at`

func scanHR(row pgx.Row) (hr.Record, error) {
	var rec hr.Record
	err := row.Scan(
		&rec.ID, &rec.AgentCNIC, &rec.Name, &rec.Designation, &rec.Contact,
		&rec.FatherName, &rec.BankName, &rec.AccountNumber, &rec.JoiningDate, &rec.Status,
		&rec.CreatedAt, &rec.UpdatedAt,
	)
	return rec, err
}

// Create implements hr.HRRepository.
func (r *hrRepository) Create(ctx context.Context, rec hr.Record) (hr.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO hr_records (agent_cnic, designation, contact, father_name, bank_name, account_number, joining_date, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		rec.AgentCNIC, rec.Designation, rec.Contact, rec.FatherName,
		rec.BankName, rec.AccountNumber, rec.JoiningDate, rec.Status,
	).Scan(&rec.ID, &rec.CreatedAt, &rec.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return hr.Record{}, hr.ErrRecordExists
		}
		return hr.Record{}, fmt.Errorf("failed to create hr record: %w", err)
	}

	return rec, nil
}

// Upsert implements hr.HRRepository. Agent imports carrying the optional HR
// columns land here so a re-import refreshes the file instead of failing.
func (r *hrRepository) Upsert(ctx context.Context, rec hr.Record) (hr.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO hr_records (agent_cnic, designation, contact, father_name, bank_name, account_number, joining_date, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (agent_cnic) DO UPDATE SET
			designation = EXCLUDED.designation,
			contact = EXCLUDED.contact,
			father_name = EXCLUDED.father_name,
			bank_name = EXCLUDED.bank_name,
			account_number = EXCLUDED.account_number,
			joining_date = EXCLUDED.joining_date,
			status = EXCLUDED.status,
			updated_at = NOW()
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		rec.AgentCNIC, rec.Designation, rec.Contact, rec.FatherName,
		rec.BankName, rec.AccountNumber, rec.JoiningDate, rec.Status,
	).Scan(&rec.ID, &rec.CreatedAt, &rec.UpdatedAt)
	if err != nil {
		return hr.Record{}, fmt.Errorf("failed to upsert hr record: %w", err)
	}

	return rec, nil
}

// GetByAgent implements hr.HRRepository.
func (r *hrRepository) GetByAgent(ctx context.Context, agentCNIC string) (hr.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + hrColumns + `
		FROM hr_records h
		LEFT JOIN agents a ON a.cnic = h.agent_cnic
		WHERE h.agent_cnic = $1
	`

	rec, err := scanHR(q.QueryRow(ctx, query, agentCNIC))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return hr.Record{}, hr.ErrRecordNotFound
		}
		return hr.Record{}, fmt.Errorf("failed to get hr record: %w", err)
	}

	return rec, nil
}

// List implements hr.HRRepository.
func (r *hrRepository) List(ctx context.Context) ([]hr.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + hrColumns + `
		FROM hr_records h
		LEFT JOIN agents a ON a.cnic = h.agent_cnic
		ORDER BY a.name ASC
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list hr records: %w", err)
	}
	defer rows.Close()

	var records []hr.Record
	for rows.Next() {
		rec, err := scanHR(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan hr record: %w", err)
		}
		records = append(records, rec)
	}

	return records, rows.Err()
}

// Update implements hr.HRRepository.
func (r *hrRepository) Update(ctx context.Context, req hr.UpdateRecordRequest) (hr.Record, error) {
	q := GetQuerier(ctx, r.db)

	sets := []string{"updated_at = NOW()"}
	args := []interface{}{}
	argIdx := 1

	if req.Designation != nil {
		sets = append(sets, fmt.Sprintf("designation = $%d", argIdx))
		args = append(args, *req.Designation)
		argIdx++
	}
	if req.Contact != nil {
		sets = append(sets, fmt.Sprintf("contact = $%d", argIdx))
		args = append(args, *req.Contact)
		argIdx++
	}
	if req.FatherName != nil {
		sets = append(sets, fmt.Sprintf("father_name = $%d", argIdx))
		args = append(args, *req.FatherName)
		argIdx++
	}
	if req.BankName != nil {
		sets = append(sets, fmt.Sprintf("bank_name = $%d", argIdx))
		args = append(args, *req.BankName)
		argIdx++
	}
	if req.AccountNumber != nil {
		sets = append(sets, fmt.Sprintf("account_number = $%d", argIdx))
		args = append(args, *req.AccountNumber)
		argIdx++
	}
	if req.Status != nil {
		sets = append(sets, fmt.Sprintf("status = $%d", argIdx))
		args = append(args, *req.Status)
		argIdx++
	}

	args = append(args, req.ID)
	query := fmt.Sprintf(`
		UPDATE hr_records h SET %s
		FROM agents a
		WHERE h.id = $%d AND a.cnic = h.agent_cnic
		RETURNING %s
	`, strings.Join(sets, ", "), argIdx, hrColumns)

	rec, err := scanHR(q.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return hr.Record{}, hr.ErrRecordNotFound
		}
		return hr.Record{}, fmt.Errorf("failed to update hr record: %w", err)
	}

	return rec, nil
}

// Delete implements hr.HRRepository.
func (r *hrRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM hr_records WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete hr record: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return hr.ErrRecordNotFound
	}

	return nil
}

func NewHRRepository(db *database.DB) hr.HRRepository {
	return &hrRepository{db: db}
}
