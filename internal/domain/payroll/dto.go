package payroll

// AgentStat is one agent's aggregated payroll line for a single cycle.
// NetSalary = BaseSalary + TotalBonuses - TotalFines; a negative result is
// accepted, not an error.
type AgentStat struct {
	CNIC         string `json:"cnic"`
	Name         string `json:"name"`
	Team         string `json:"team"`
	Status       string `json:"status"`
	BaseSalary   int64  `json:"base_salary"`
	TotalSales   int    `json:"total_sales"`
	TotalRevenue int64  `json:"total_revenue"`
	TotalFines   int64  `json:"total_fines"`
	TotalBonuses int64  `json:"total_bonuses"`
	NetSalary    int64  `json:"net_salary"`
}

// DashboardTotals is the cycle-scoped summary. TotalPayroll sums NetSalary
// over Active agents only; agents marked Left are excluded even when they
// sold inside the cycle.
type DashboardTotals struct {
	CycleLabel   string `json:"cycle_label"`
	ActiveAgents int    `json:"active_agents"`
	TotalSales   int    `json:"total_sales"`
	TotalRevenue int64  `json:"total_revenue"`
	TotalPayroll int64  `json:"total_payroll"`
}

// Scope narrows aggregation to one agent. The caller decides the scope from
// the requester's role; nothing here re-checks authorization.
type Scope struct {
	AgentCNIC *string
}

func (s Scope) Matches(cnic string) bool {
	return s.AgentCNIC == nil || *s.AgentCNIC == cnic
}
