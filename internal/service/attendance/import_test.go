package attendance

import (
	"context"
	"errors"
	"testing"

	"github.com/hexaline-bpo/agentpay-backend-go/internal/domain/agent"
	"github.com/hexaline-bpo/agentpay-backend-go/internal/domain/attendance"
	"github.com/hexaline-bpo/agentpay-backend-go/internal/pkg/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rawRow(name, datetime string) []string {
	return []string{"1", "dev-01", name, datetime}
}

func TestParseRawLog_BasicPunches(t *testing.T) {
	rows := [][]string{
		rawRow("Ali Khan", "1/5/2026 9:05 AM"),
		rawRow("Ali Khan", "1/5/2026 6:30 PM"),
		rawRow("Ali Khan", "1/5/2026 9:05:00 AM"), // duplicate punch, seconds variant
	}

	events, skipped := ParseRawLog(rows)

	assert.Equal(t, 0, skipped)
	times := events[EventKey{Date: "2026-01-05", AgentName: "ali khan"}]
	require.Equal(t, []string{"09:05", "18:30"}, times)
}

func TestParseRawLog_TwelveHourConversion(t *testing.T) {
	rows := [][]string{
		rawRow("A", "3/1/2026 12:00 AM"), // midnight
		rawRow("B", "3/1/2026 12:15 PM"), // just past noon
		rawRow("C", "3/1/2026 1:00 PM"),
	}

	events, _ := ParseRawLog(rows)

	assert.Equal(t, []string{"00:00"}, events[EventKey{"2026-03-01", "a"}])
	assert.Equal(t, []string{"12:15"}, events[EventKey{"2026-03-01", "b"}])
	assert.Equal(t, []string{"13:00"}, events[EventKey{"2026-03-01", "c"}])
}

func TestParseRawLog_DayFirstSwap(t *testing.T) {
	// First field 25 cannot be a month, so the source must be day-first.
	events, skipped := ParseRawLog([][]string{rawRow("Ali", "25/1/2026 9:00 AM")})

	assert.Equal(t, 0, skipped)
	_, ok := events[EventKey{Date: "2026-01-25", AgentName: "ali"}]
	assert.True(t, ok)
}

func TestParseRawLog_SkipsMalformedRows(t *testing.T) {
	rows := [][]string{
		rawRow("", "1/5/2026 9:00 AM"),       // blank name
		rawRow("Ali", ""),                    // blank datetime
		rawRow("Ali", "2026-01-05 09:00"),    // wrong pattern
		rawRow("Ali", "1/5/2026 9:00"),       // missing meridiem
		{"too", "short"},                     // missing columns entirely
		rawRow("Ali", "1/5/2026 9:00 AM"),    // good
	}

	events, skipped := ParseRawLog(rows)

	assert.Equal(t, 5, skipped)
	assert.Len(t, events, 1)
}

func TestBuildDailyRecords_OneRecordPerAgentPerDay(t *testing.T) {
	events, _ := ParseRawLog([][]string{
		rawRow("Ali", "1/5/2026 9:00 AM"),
		rawRow("Ali", "1/5/2026 6:00 PM"),
		rawRow("Ali", "1/6/2026 9:40 AM"),
		rawRow("Sara", "1/5/2026 8:55 AM"),
	})
	agents := []agent.Agent{
		{CNIC: "1", Name: "Ali", Status: agent.StatusActive},
		{CNIC: "2", Name: "Sara", Status: agent.StatusActive},
	}

	records := BuildDailyRecords(events, agents, "09:15")

	// 2 dates x 2 active agents.
	require.Len(t, records, 4)

	seen := make(map[string]bool)
	for _, r := range records {
		key := r.AgentCNIC + "|" + r.Date.Format("2006-01-02")
		assert.False(t, seen[key], "duplicate record for %s", key)
		seen[key] = true
	}
}

func TestBuildDailyRecords_StatusAndLateness(t *testing.T) {
	events, _ := ParseRawLog([][]string{
		rawRow("Ali", "1/5/2026 9:00 AM"),
		rawRow("Ali", "1/5/2026 6:00 PM"),
		rawRow("Sara", "1/5/2026 9:40 AM"), // single punch, past threshold
	})
	agents := []agent.Agent{
		{CNIC: "1", Name: "Ali", Status: agent.StatusActive},
		{CNIC: "2", Name: "Sara", Status: agent.StatusActive},
		{CNIC: "3", Name: "Bilal", Status: agent.StatusActive}, // no punches
	}

	records := BuildDailyRecords(events, agents, "09:15")
	require.Len(t, records, 3)

	index := make(map[string]int)
	for i, r := range records {
		index[r.AgentName] = i
	}

	ali := records[index["Ali"]]
	assert.Equal(t, attendance.StatusPresent, ali.Status)
	assert.Equal(t, "09:00", ali.LoginTime)
	assert.Equal(t, "18:00", ali.LogoutTime)
	assert.False(t, ali.Late)

	sara := records[index["Sara"]]
	assert.Equal(t, attendance.StatusPresent, sara.Status)
	assert.Equal(t, "09:40", sara.LoginTime)
	assert.Equal(t, "", sara.LogoutTime, "single punch records no logout")
	assert.True(t, sara.Late)

	bilal := records[index["Bilal"]]
	assert.Equal(t, attendance.StatusAbsent, bilal.Status)
	assert.Equal(t, "", bilal.LoginTime)
	assert.False(t, bilal.Late)
}

func TestBuildDailyRecords_InactiveAgentsExcluded(t *testing.T) {
	events, _ := ParseRawLog([][]string{rawRow("Ali", "1/5/2026 9:00 AM")})
	agents := []agent.Agent{
		{CNIC: "1", Name: "Ali", Status: agent.StatusActive},
	}

	// Only active agents are handed in; a left agent simply never appears.
	records := BuildDailyRecords(events, agents, "09:15")
	require.Len(t, records, 1)
	assert.Equal(t, "1", records[0].AgentCNIC)
}

func TestBuildDailyRecords_NameMatchIsCaseInsensitive(t *testing.T) {
	events, _ := ParseRawLog([][]string{rawRow("ALI KHAN", "1/5/2026 9:00 AM")})
	agents := []agent.Agent{{CNIC: "1", Name: "Ali Khan", Status: agent.StatusActive}}

	records := BuildDailyRecords(events, agents, "09:15")
	require.Len(t, records, 1)
	assert.Equal(t, attendance.StatusPresent, records[0].Status)
}

type stubAgentRepo struct {
	agent.AgentRepository
	active []agent.Agent
}

func (s *stubAgentRepo) ListActive(ctx context.Context) ([]agent.Agent, error) {
	return s.active, nil
}

type stubAttendanceRepo struct {
	attendance.AttendanceRepository
	upsertErr  error
	inTx       *bool
	gotRecords []attendance.Record
}

func (s *stubAttendanceRepo) UpsertBatch(ctx context.Context, records []attendance.Record) (int, error) {
	if s.inTx != nil && !*s.inTx {
		return 0, errors.New("batch written outside a transaction")
	}
	if s.upsertErr != nil {
		return 0, s.upsertErr
	}
	s.gotRecords = records
	return len(records), nil
}

func TestImportRaw_BatchWritesInsideOneTransaction(t *testing.T) {
	orig := runInTransaction
	defer func() { runInTransaction = orig }()

	entered := false
	runInTransaction = func(ctx context.Context, db *database.DB, fn func(context.Context) error) error {
		entered = true
		return fn(ctx)
	}

	repo := &stubAttendanceRepo{inTx: &entered}
	svc := NewAttendanceService(nil, repo, &stubAgentRepo{
		active: []agent.Agent{{CNIC: "1", Name: "Ali", Status: agent.StatusActive}},
	}, "09:15")

	result, err := svc.ImportRaw(context.Background(), attendance.ImportRequest{
		Rows: [][]string{rawRow("Ali", "1/5/2026 9:00 AM")},
	})

	require.NoError(t, err)
	assert.True(t, entered, "upsert must run inside the transaction wrapper")
	assert.Equal(t, 1, result.RecordsSaved)
	require.Len(t, repo.gotRecords, 1)
	assert.Equal(t, "1", repo.gotRecords[0].AgentCNIC)
}

func TestImportRaw_FailedBatchReportsOneAggregateError(t *testing.T) {
	orig := runInTransaction
	defer func() { runInTransaction = orig }()
	runInTransaction = func(ctx context.Context, db *database.DB, fn func(context.Context) error) error {
		// Mirrors the real wrapper: fn's error aborts the whole batch.
		return fn(ctx)
	}

	repo := &stubAttendanceRepo{upsertErr: errors.New("connection reset")}
	svc := NewAttendanceService(nil, repo, &stubAgentRepo{
		active: []agent.Agent{{CNIC: "1", Name: "Ali", Status: agent.StatusActive}},
	}, "09:15")

	_, err := svc.ImportRaw(context.Background(), attendance.ImportRequest{
		Rows: [][]string{rawRow("Ali", "1/5/2026 9:00 AM")},
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "attendance import failed")
}
