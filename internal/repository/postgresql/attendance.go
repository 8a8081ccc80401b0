package postgresql

import (
	"context"
	"fmt"
	"strings"

	"github.com/hexaline-bpo/agentpay-backend-go/internal/domain/attendance"
	"github.com/hexaline-bpo/agentpay-backend-go/internal/pkg/database"
)

type attendanceRepository struct {
	db *database.DB
}

const attendanceColumns = `
	r.id, r.agent_cnic, COALESCE(a.name, ''), r.date, r.status,
	r.login_time, r.logout_time, r.late, r.created_at, r.updated_at`

// UpsertBatch implements attendance.AttendanceRepository. One row per
// (agent, date); re-importing the same window replaces the earlier rows.
func (r *attendanceRepository) UpsertBatch(ctx context.Context, records []attendance.Record) (int, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO attendance_records (agent_cnic, date, status, login_time, logout_time, late)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (agent_cnic, date) DO UPDATE SET
			status = EXCLUDED.status,
			login_time = EXCLUDED.login_time,
			logout_time = EXCLUDED.logout_time,
			late = EXCLUDED.late,
			updated_at = NOW()
	`

	for _, rec := range records {
		_, err := q.Exec(ctx, query,
			rec.AgentCNIC, rec.Date, rec.Status, rec.LoginTime, rec.LogoutTime, rec.Late,
		)
		if err != nil {
			return 0, fmt.Errorf("failed to upsert attendance for %s on %s: %w",
				rec.AgentCNIC, rec.Date.Format("2006-01-02"), err)
		}
	}

	return len(records), nil
}

// List implements attendance.AttendanceRepository.
func (r *attendanceRepository) List(ctx context.Context, filter attendance.RecordFilter) ([]attendance.Record, error) {
	q := GetQuerier(ctx, r.db)

	conditions := []string{"1=1"}
	args := []interface{}{}
	argIdx := 1

	if filter.AgentCNIC != nil && *filter.AgentCNIC != "" {
		conditions = append(conditions, fmt.Sprintf("r.agent_cnic = $%d", argIdx))
		args = append(args, *filter.AgentCNIC)
		argIdx++
	}
	if filter.DateFrom != nil && *filter.DateFrom != "" {
		conditions = append(conditions, fmt.Sprintf("r.date >= $%d", argIdx))
		args = append(args, *filter.DateFrom)
		argIdx++
	}
	if filter.DateTo != nil && *filter.DateTo != "" {
		conditions = append(conditions, fmt.Sprintf("r.date <= $%d", argIdx))
		args = append(args, *filter.DateTo)
		argIdx++
	}

	query := `
		SELECT ` + attendanceColumns + `
		FROM attendance_records r
		LEFT JOIN agents a ON a.cnic = r.agent_cnic
		WHERE ` + strings.Join(conditions, " AND ") + `
		ORDER BY r.date ASC, a.name ASC
	`

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance records: %w", err)
	}
	defer rows.Close()

	var records []attendance.Record
	for rows.Next() {
		var rec attendance.Record
		err := rows.Scan(&rec.ID, &rec.AgentCNIC, &rec.AgentName, &rec.Date, &rec.Status,
			&rec.LoginTime, &rec.LogoutTime, &rec.Late, &rec.CreatedAt, &rec.UpdatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attendance record: %w", err)
		}
		records = append(records, rec)
	}

	return records, rows.Err()
}

// Delete implements attendance.AttendanceRepository.
func (r *attendanceRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM attendance_records WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete attendance record: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return attendance.ErrRecordNotFound
	}

	return nil
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepository{db: db}
}
