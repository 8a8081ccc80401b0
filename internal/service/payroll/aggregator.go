package payroll

import (
	"sort"

	"github.com/hexaline-bpo/agentpay-backend-go/internal/domain/agent"
	"github.com/hexaline-bpo/agentpay-backend-go/internal/domain/bonus"
	"github.com/hexaline-bpo/agentpay-backend-go/internal/domain/fine"
	"github.com/hexaline-bpo/agentpay-backend-go/internal/domain/payroll"
	"github.com/hexaline-bpo/agentpay-backend-go/internal/domain/sale"
	"github.com/hexaline-bpo/agentpay-backend-go/internal/pkg/cycle"
)

// countsAsSale applies the qualifying filter: derived status says Sale, or
// the disposition itself is a success code. The second check is redundant
// on purpose, guarding against rows whose stored status went stale.
func countsAsSale(s sale.Sale) bool {
	return s.Status == sale.StatusSale || sale.IsSuccessful(s.Disposition)
}

// ComputeAgentStats aggregates sales, fines, and bonuses into one payroll
// line per agent for the named cycle. Sales and fines are matched by
// date-range membership; bonuses by exact label equality, because bonus
// records carry no standalone date. Output is sorted descending by
// TotalSales, stable for ties.
func ComputeAgentStats(
	agents []agent.Agent,
	sales []sale.Sale,
	fines []fine.Fine,
	bonuses []bonus.Bonus,
	cycleLabel string,
) []payroll.AgentStat {
	c := cycle.For(cycleLabel)

	stats := make([]payroll.AgentStat, 0, len(agents))
	for _, a := range agents {
		stat := payroll.AgentStat{
			CNIC:       a.CNIC,
			Name:       a.Name,
			Team:       a.Team,
			Status:     string(a.Status),
			BaseSalary: a.BaseSalary,
		}

		for _, s := range sales {
			if s.AgentCNIC != a.CNIC || !c.Contains(s.Date) || !countsAsSale(s) {
				continue
			}
			stat.TotalSales++
			stat.TotalRevenue += s.Amount
		}

		for _, f := range fines {
			if f.AgentCNIC == a.CNIC && c.Contains(f.Date) {
				stat.TotalFines += f.Amount
			}
		}

		for _, b := range bonuses {
			if b.AgentCNIC == a.CNIC && b.CycleLabel == cycleLabel {
				stat.TotalBonuses += b.Amount
			}
		}

		// May go negative; accepted, not an error.
		stat.NetSalary = stat.BaseSalary + stat.TotalBonuses - stat.TotalFines

		stats = append(stats, stat)
	}

	sort.SliceStable(stats, func(i, j int) bool {
		return stats[i].TotalSales > stats[j].TotalSales
	})

	return stats
}

// ComputeDashboardTotals produces the cycle summary. Scope narrows the sale
// count and revenue to one agent; the payroll total always covers the full
// roster but only agents still marked Active.
func ComputeDashboardTotals(
	agents []agent.Agent,
	sales []sale.Sale,
	fines []fine.Fine,
	bonuses []bonus.Bonus,
	cycleLabel string,
	scope payroll.Scope,
) payroll.DashboardTotals {
	c := cycle.For(cycleLabel)

	totals := payroll.DashboardTotals{CycleLabel: cycleLabel}

	for _, a := range agents {
		if a.IsActive() {
			totals.ActiveAgents++
		}
	}

	for _, s := range sales {
		if !scope.Matches(s.AgentCNIC) || !c.Contains(s.Date) || !countsAsSale(s) {
			continue
		}
		totals.TotalSales++
		totals.TotalRevenue += s.Amount
	}

	for _, stat := range ComputeAgentStats(agents, sales, fines, bonuses, cycleLabel) {
		if stat.Status == string(agent.StatusActive) {
			totals.TotalPayroll += stat.NetSalary
		}
	}

	return totals
}
