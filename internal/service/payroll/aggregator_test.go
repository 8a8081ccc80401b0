package payroll

import (
	"testing"
	"time"

	"github.com/hexaline-bpo/agentpay-backend-go/internal/domain/agent"
	"github.com/hexaline-bpo/agentpay-backend-go/internal/domain/bonus"
	"github.com/hexaline-bpo/agentpay-backend-go/internal/domain/fine"
	"github.com/hexaline-bpo/agentpay-backend-go/internal/domain/payroll"
	"github.com/hexaline-bpo/agentpay-backend-go/internal/domain/sale"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(s string) time.Time {
	d, err := time.ParseInLocation("2006-01-02", s, time.Local)
	if err != nil {
		panic(err)
	}
	return d
}

func mkSale(cnic, date, disposition string, amount int64) sale.Sale {
	return sale.Sale{
		AgentCNIC:   cnic,
		Date:        day(date),
		Disposition: disposition,
		Status:      sale.DeriveStatus(disposition),
		Amount:      amount,
	}
}

func TestComputeAgentStats_SingleAgentScenario(t *testing.T) {
	agents := []agent.Agent{
		{CNIC: "1", Name: "Ali", BaseSalary: 30000, Status: agent.StatusActive},
	}
	sales := []sale.Sale{
		mkSale("1", "2026-01-05", "HW- Xfer", 5000),
		mkSale("1", "2026-01-05", "DNC", 0),
	}

	stats := ComputeAgentStats(agents, sales, nil, nil, "January 2026")

	require.Len(t, stats, 1)
	assert.Equal(t, 1, stats[0].TotalSales)
	assert.Equal(t, int64(5000), stats[0].TotalRevenue)
	assert.Equal(t, int64(0), stats[0].TotalFines)
	assert.Equal(t, int64(0), stats[0].TotalBonuses)
	assert.Equal(t, int64(30000), stats[0].NetSalary)
}

func TestComputeAgentStats_NetSalaryInvariant(t *testing.T) {
	agents := []agent.Agent{
		{CNIC: "1", Name: "Ali", BaseSalary: 30000, Status: agent.StatusActive},
		{CNIC: "2", Name: "Sara", BaseSalary: 25000, Status: agent.StatusActive},
	}
	fines := []fine.Fine{
		{AgentCNIC: "1", Amount: 2000, Date: day("2026-01-10")},
		{AgentCNIC: "1", Amount: 1500, Date: day("2025-12-25")},
		{AgentCNIC: "1", Amount: 9999, Date: day("2025-11-01")}, // outside cycle
	}
	bonuses := []bonus.Bonus{
		{AgentCNIC: "2", CycleLabel: "January 2026", Amount: 4000},
		{AgentCNIC: "2", CycleLabel: "December 2025", Amount: 7777}, // wrong label
	}

	stats := ComputeAgentStats(agents, nil, fines, bonuses, "January 2026")

	require.Len(t, stats, 2)
	for _, st := range stats {
		assert.Equal(t, st.BaseSalary+st.TotalBonuses-st.TotalFines, st.NetSalary, "agent %s", st.CNIC)
	}

	byCNIC := map[string]payroll.AgentStat{}
	for _, st := range stats {
		byCNIC[st.CNIC] = st
	}
	assert.Equal(t, int64(3500), byCNIC["1"].TotalFines)
	assert.Equal(t, int64(26500), byCNIC["1"].NetSalary)
	assert.Equal(t, int64(4000), byCNIC["2"].TotalBonuses)
	assert.Equal(t, int64(29000), byCNIC["2"].NetSalary)
}

func TestComputeAgentStats_NegativeNetSalaryAccepted(t *testing.T) {
	agents := []agent.Agent{{CNIC: "1", Name: "Ali", BaseSalary: 1000, Status: agent.StatusActive}}
	fines := []fine.Fine{{AgentCNIC: "1", Amount: 5000, Date: day("2026-01-10")}}

	stats := ComputeAgentStats(agents, nil, fines, nil, "January 2026")

	require.Len(t, stats, 1)
	assert.Equal(t, int64(-4000), stats[0].NetSalary)
}

func TestComputeAgentStats_SortedByTotalSalesDescending(t *testing.T) {
	agents := []agent.Agent{
		{CNIC: "1", Name: "Ali", Status: agent.StatusActive},
		{CNIC: "2", Name: "Sara", Status: agent.StatusActive},
		{CNIC: "3", Name: "Bilal", Status: agent.StatusActive},
	}
	sales := []sale.Sale{
		mkSale("2", "2026-01-03", "HW- Xfer", 100),
		mkSale("2", "2026-01-04", "HW-IBXfer", 100),
		mkSale("3", "2026-01-05", "HW- Xfer", 100),
	}

	stats := ComputeAgentStats(agents, sales, nil, nil, "January 2026")

	require.Len(t, stats, 3)
	assert.Equal(t, "2", stats[0].CNIC)
	assert.Equal(t, "3", stats[1].CNIC)
	assert.Equal(t, "1", stats[2].CNIC)
	for i := 1; i < len(stats); i++ {
		assert.GreaterOrEqual(t, stats[i-1].TotalSales, stats[i].TotalSales)
	}
}

func TestComputeAgentStats_StaleStatusStillCounts(t *testing.T) {
	// A row whose stored status lags behind a success disposition must still
	// qualify, and vice versa a stored Sale status qualifies even with an
	// unknown disposition.
	agents := []agent.Agent{{CNIC: "1", Name: "Ali", Status: agent.StatusActive}}
	stale := sale.Sale{AgentCNIC: "1", Date: day("2026-01-05"), Disposition: "HW- Xfer", Status: sale.StatusUnsuccessful, Amount: 100}
	trusted := sale.Sale{AgentCNIC: "1", Date: day("2026-01-06"), Disposition: "mystery", Status: sale.StatusSale, Amount: 50}

	stats := ComputeAgentStats(agents, []sale.Sale{stale, trusted}, nil, nil, "January 2026")

	require.Len(t, stats, 1)
	assert.Equal(t, 2, stats[0].TotalSales)
	assert.Equal(t, int64(150), stats[0].TotalRevenue)
}

func TestComputeDashboardTotals(t *testing.T) {
	left := time.Now()
	agents := []agent.Agent{
		{CNIC: "1", Name: "Ali", BaseSalary: 30000, Status: agent.StatusActive},
		{CNIC: "2", Name: "Sara", BaseSalary: 25000, Status: agent.StatusLeft, LeftAt: &left},
	}
	sales := []sale.Sale{
		mkSale("1", "2026-01-05", "HW- Xfer", 5000),
		mkSale("2", "2026-01-06", "HW- Xfer", 3000),
	}

	totals := ComputeDashboardTotals(agents, sales, nil, nil, "January 2026", payroll.Scope{})

	assert.Equal(t, 1, totals.ActiveAgents)
	assert.Equal(t, 2, totals.TotalSales)
	assert.Equal(t, int64(8000), totals.TotalRevenue)
	// Left agents are excluded from the payroll total even with cycle sales.
	assert.Equal(t, int64(30000), totals.TotalPayroll)
}

func TestComputeDashboardTotals_AgentScope(t *testing.T) {
	agents := []agent.Agent{
		{CNIC: "1", Name: "Ali", BaseSalary: 30000, Status: agent.StatusActive},
		{CNIC: "2", Name: "Sara", BaseSalary: 25000, Status: agent.StatusActive},
	}
	sales := []sale.Sale{
		mkSale("1", "2026-01-05", "HW- Xfer", 5000),
		mkSale("2", "2026-01-06", "HW- Xfer", 3000),
	}

	cnic := "2"
	totals := ComputeDashboardTotals(agents, sales, nil, nil, "January 2026", payroll.Scope{AgentCNIC: &cnic})

	assert.Equal(t, 1, totals.TotalSales)
	assert.Equal(t, int64(3000), totals.TotalRevenue)
}

func TestComputeAgentStats_BadLabelMatchesNothing(t *testing.T) {
	agents := []agent.Agent{{CNIC: "1", Name: "Ali", BaseSalary: 30000, Status: agent.StatusActive}}
	sales := []sale.Sale{mkSale("1", "2026-01-05", "HW- Xfer", 5000)}

	stats := ComputeAgentStats(agents, sales, nil, nil, "Not A Month")

	require.Len(t, stats, 1)
	assert.Equal(t, 0, stats[0].TotalSales)
	assert.Equal(t, int64(30000), stats[0].NetSalary)
}
