package payroll

import "context"

// PayrollService defines cycle-scoped aggregation over the full dataset.
// Every call recomputes from current inputs; there is no cached state.
type PayrollService interface {
	AgentStats(ctx context.Context, cycleLabel string) ([]AgentStat, error)
	Dashboard(ctx context.Context, cycleLabel string, scope Scope) (DashboardTotals, error)

	// ReportCSV renders the payroll report, one row per agent:
	// AgentName,Team,BaseSalary,Sales,Bonus,Fines,NetSalary
	ReportCSV(ctx context.Context, cycleLabel string) ([]byte, string, error)
}
