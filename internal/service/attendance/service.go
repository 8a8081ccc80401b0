package attendance

import (
	"context"
	"fmt"

	"github.com/hexaline-bpo/agentpay-backend-go/internal/domain/agent"
	"github.com/hexaline-bpo/agentpay-backend-go/internal/domain/attendance"
	"github.com/hexaline-bpo/agentpay-backend-go/internal/pkg/cycle"
	"github.com/hexaline-bpo/agentpay-backend-go/internal/pkg/database"
)

// runInTransaction is swapped in tests; the batch write always goes through
// it so a mid-batch failure rolls the whole import back.
var runInTransaction = database.RunInTransaction

type AttendanceServiceImpl struct {
	db                   *database.DB
	attendanceRepo       attendance.AttendanceRepository
	agentRepo            agent.AgentRepository
	defaultLateThreshold string
}

func NewAttendanceService(
	db *database.DB,
	attendanceRepo attendance.AttendanceRepository,
	agentRepo agent.AgentRepository,
	defaultLateThreshold string,
) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		db:                   db,
		attendanceRepo:       attendanceRepo,
		agentRepo:            agentRepo,
		defaultLateThreshold: defaultLateThreshold,
	}
}

func (s *AttendanceServiceImpl) ImportRaw(ctx context.Context, req attendance.ImportRequest) (attendance.ImportResult, error) {
	if err := req.Validate(); err != nil {
		return attendance.ImportResult{}, err
	}

	threshold := req.LateThreshold
	if threshold == "" {
		threshold = s.defaultLateThreshold
	}

	events, skipped := ParseRawLog(req.Rows)
	if len(events) == 0 {
		return attendance.ImportResult{}, attendance.ErrEmptyImport
	}

	activeAgents, err := s.agentRepo.ListActive(ctx)
	if err != nil {
		return attendance.ImportResult{}, fmt.Errorf("failed to list active agents: %w", err)
	}

	records := BuildDailyRecords(events, activeAgents, threshold)

	// All-or-nothing: the batch commits in one transaction, so a failure at
	// any record rolls back everything and the caller sees one aggregate
	// error, never partial state.
	saved := 0
	err = runInTransaction(ctx, s.db, func(txCtx context.Context) error {
		n, err := s.attendanceRepo.UpsertBatch(txCtx, records)
		if err != nil {
			return err
		}
		saved = n
		return nil
	})
	if err != nil {
		return attendance.ImportResult{}, fmt.Errorf("attendance import failed: %w", err)
	}

	dateSet := make(map[string]struct{})
	for key := range events {
		dateSet[key.Date] = struct{}{}
	}

	return attendance.ImportResult{
		DatesCovered:  len(dateSet),
		AgentsCovered: len(activeAgents),
		RecordsSaved:  saved,
		RowsSkipped:   skipped,
	}, nil
}

func (s *AttendanceServiceImpl) ListRecords(ctx context.Context, filter attendance.RecordFilter) ([]attendance.RecordResponse, error) {
	records, err := s.attendanceRepo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance: %w", err)
	}

	result := make([]attendance.RecordResponse, 0, len(records))
	for _, r := range records {
		result = append(result, attendance.RecordResponse{
			ID:         r.ID,
			AgentCNIC:  r.AgentCNIC,
			AgentName:  r.AgentName,
			Date:       r.Date.Format("2006-01-02"),
			Status:     string(r.Status),
			LoginTime:  r.LoginTime,
			LogoutTime: r.LogoutTime,
			Late:       r.Late,
		})
	}
	return result, nil
}

// Matrix builds the day-by-agent grid for a cycle. The day sequence is
// enumerated once for the header and reused per row; missing records render
// as empty cells rather than Absent, since absence is only known for days
// an import covered.
func (s *AttendanceServiceImpl) Matrix(ctx context.Context, cycleLabel string) (attendance.MatrixResponse, error) {
	c := cycle.For(cycleLabel)
	days := c.Days()

	from := days[0]
	to := days[len(days)-1]
	records, err := s.attendanceRepo.List(ctx, attendance.RecordFilter{DateFrom: &from, DateTo: &to})
	if err != nil {
		return attendance.MatrixResponse{}, fmt.Errorf("failed to list attendance: %w", err)
	}

	activeAgents, err := s.agentRepo.ListActive(ctx)
	if err != nil {
		return attendance.MatrixResponse{}, fmt.Errorf("failed to list active agents: %w", err)
	}

	type cellKey struct{ cnic, date string }
	byCell := make(map[cellKey]attendance.Record, len(records))
	for _, r := range records {
		byCell[cellKey{r.AgentCNIC, r.Date.Format("2006-01-02")}] = r
	}

	matrix := attendance.MatrixResponse{Days: days}
	for _, a := range activeAgents {
		row := attendance.MatrixRow{AgentCNIC: a.CNIC, AgentName: a.Name}
		for _, d := range days {
			rec, ok := byCell[cellKey{a.CNIC, d}]
			switch {
			case !ok:
				row.Cells = append(row.Cells, "")
			case rec.Late:
				row.Cells = append(row.Cells, "Late")
			default:
				row.Cells = append(row.Cells, string(rec.Status))
			}
		}
		matrix.Agents = append(matrix.Agents, row)
	}
	return matrix, nil
}
