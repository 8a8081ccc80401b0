package payroll

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"strconv"
	"strings"

	"github.com/hexaline-bpo/agentpay-backend-go/internal/domain/agent"
	"github.com/hexaline-bpo/agentpay-backend-go/internal/domain/bonus"
	"github.com/hexaline-bpo/agentpay-backend-go/internal/domain/fine"
	"github.com/hexaline-bpo/agentpay-backend-go/internal/domain/payroll"
	"github.com/hexaline-bpo/agentpay-backend-go/internal/domain/sale"
	"github.com/hexaline-bpo/agentpay-backend-go/internal/pkg/database"
)

type PayrollServiceImpl struct {
	db        *database.DB
	agentRepo agent.AgentRepository
	saleRepo  sale.SaleRepository
	fineRepo  fine.FineRepository
	bonusRepo bonus.BonusRepository
}

func NewPayrollService(
	db *database.DB,
	agentRepo agent.AgentRepository,
	saleRepo sale.SaleRepository,
	fineRepo fine.FineRepository,
	bonusRepo bonus.BonusRepository,
) payroll.PayrollService {
	return &PayrollServiceImpl{
		db:        db,
		agentRepo: agentRepo,
		saleRepo:  saleRepo,
		fineRepo:  fineRepo,
		bonusRepo: bonusRepo,
	}
}

// load pulls the full collections; aggregation is always a fresh total
// function of current inputs, never an incremental update.
func (s *PayrollServiceImpl) load(ctx context.Context) ([]agent.Agent, []sale.Sale, []fine.Fine, []bonus.Bonus, error) {
	agents, err := s.agentRepo.List(ctx, agent.AgentFilter{})
	if err != nil {
		return nil, nil, nil, nil, fmt.Errorf("failed to list agents: %w", err)
	}
	sales, err := s.saleRepo.ListAll(ctx)
	if err != nil {
		return nil, nil, nil, nil, fmt.Errorf("failed to list sales: %w", err)
	}
	fines, err := s.fineRepo.ListAll(ctx)
	if err != nil {
		return nil, nil, nil, nil, fmt.Errorf("failed to list fines: %w", err)
	}
	bonuses, err := s.bonusRepo.ListAll(ctx)
	if err != nil {
		return nil, nil, nil, nil, fmt.Errorf("failed to list bonuses: %w", err)
	}
	return agents, sales, fines, bonuses, nil
}

func (s *PayrollServiceImpl) AgentStats(ctx context.Context, cycleLabel string) ([]payroll.AgentStat, error) {
	agents, sales, fines, bonuses, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	return ComputeAgentStats(agents, sales, fines, bonuses, cycleLabel), nil
}

func (s *PayrollServiceImpl) Dashboard(ctx context.Context, cycleLabel string, scope payroll.Scope) (payroll.DashboardTotals, error) {
	agents, sales, fines, bonuses, err := s.load(ctx)
	if err != nil {
		return payroll.DashboardTotals{}, err
	}
	return ComputeDashboardTotals(agents, sales, fines, bonuses, cycleLabel, scope), nil
}

func (s *PayrollServiceImpl) ReportCSV(ctx context.Context, cycleLabel string) ([]byte, string, error) {
	stats, err := s.AgentStats(ctx, cycleLabel)
	if err != nil {
		return nil, "", err
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write([]string{"AgentName", "Team", "BaseSalary", "Sales", "Bonus", "Fines", "NetSalary"}); err != nil {
		return nil, "", fmt.Errorf("failed to write report header: %w", err)
	}
	for _, st := range stats {
		row := []string{
			st.Name,
			st.Team,
			strconv.FormatInt(st.BaseSalary, 10),
			strconv.Itoa(st.TotalSales),
			strconv.FormatInt(st.TotalBonuses, 10),
			strconv.FormatInt(st.TotalFines, 10),
			strconv.FormatInt(st.NetSalary, 10),
		}
		if err := w.Write(row); err != nil {
			return nil, "", fmt.Errorf("failed to write report row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, "", fmt.Errorf("failed to flush report: %w", err)
	}

	filename := fmt.Sprintf("payroll-%s.csv", strings.ReplaceAll(strings.ToLower(cycleLabel), " ", "-"))
	return buf.Bytes(), filename, nil
}
