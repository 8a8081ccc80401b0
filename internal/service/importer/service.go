package importer

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/hexaline-bpo/agentpay-backend-go/internal/domain/agent"
	"github.com/hexaline-bpo/agentpay-backend-go/internal/domain/hr"
	"github.com/hexaline-bpo/agentpay-backend-go/internal/domain/sale"
	"github.com/hexaline-bpo/agentpay-backend-go/internal/pkg/database"
	"github.com/google/uuid"
)

// ImportService runs the bulk-upload pipelines. Batches are all-or-nothing:
// a persistence failure surfaces as one aggregate error for the whole file,
// never per-row diagnostics.
type ImportService interface {
	ImportAgents(ctx context.Context, filename string, data []byte) (BatchResult, error)
	ImportSales(ctx context.Context, filename string, data []byte, cycleLabel string) (BatchResult, error)
}

func normalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

type BatchResult struct {
	BatchID      string `json:"batch_id"`
	RowsRead     int    `json:"rows_read"`
	RowsImported int    `json:"rows_imported"`
}

type ImportServiceImpl struct {
	db                   *database.DB
	agentRepo            agent.AgentRepository
	saleRepo             sale.SaleRepository
	hrRepo               hr.HRRepository
	defaultAgentPassword string
}

func NewImportService(
	db *database.DB,
	agentRepo agent.AgentRepository,
	saleRepo sale.SaleRepository,
	hrRepo hr.HRRepository,
	defaultAgentPassword string,
) ImportService {
	return &ImportServiceImpl{
		db:                   db,
		agentRepo:            agentRepo,
		saleRepo:             saleRepo,
		hrRepo:               hrRepo,
		defaultAgentPassword: defaultAgentPassword,
	}
}

func (s *ImportServiceImpl) ImportAgents(ctx context.Context, filename string, data []byte) (BatchResult, error) {
	rows, err := DecodeRows(filename, data)
	if err != nil {
		return BatchResult{}, err
	}

	payloads := MapAgentRows(rows)
	now := time.Now()

	agents := make([]agent.Agent, 0, len(payloads))
	var hrRecords []hr.Record
	for _, p := range payloads {
		agents = append(agents, agent.Agent{
			CNIC:        p.CNIC,
			Name:        p.Name,
			Team:        p.Team,
			Center:      p.Center,
			BaseSalary:  p.BaseSalary,
			Status:      agent.StatusActive,
			ActivatedAt: now,
			Password:    s.defaultAgentPassword,
		})

		if p.FatherName == "" && p.BankName == "" && p.AccountNumber == "" && p.JoiningDate == "" {
			continue
		}
		rec := hr.Record{
			AgentCNIC:     p.CNIC,
			Name:          p.Name,
			FatherName:    p.FatherName,
			BankName:      p.BankName,
			AccountNumber: p.AccountNumber,
			Status:        string(agent.StatusActive),
		}
		if joined, err := time.ParseInLocation("2006-01-02", p.JoiningDate, time.Local); err == nil {
			rec.JoiningDate = &joined
		}
		hrRecords = append(hrRecords, rec)
	}

	imported := 0
	err = database.RunInTransaction(ctx, s.db, func(txCtx context.Context) error {
		n, err := s.agentRepo.CreateBatch(txCtx, agents)
		if err != nil {
			return err
		}
		imported = n
		for _, rec := range hrRecords {
			if _, err := s.hrRepo.Upsert(txCtx, rec); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return BatchResult{}, fmt.Errorf("agent import failed: %w", err)
	}

	return BatchResult{
		BatchID:      uuid.NewString(),
		RowsRead:     len(rows),
		RowsImported: imported,
	}, nil
}

func (s *ImportServiceImpl) ImportSales(ctx context.Context, filename string, data []byte, cycleLabel string) (BatchResult, error) {
	rows, err := DecodeRows(filename, data)
	if err != nil {
		return BatchResult{}, err
	}

	payloads := MapSaleRows(rows, cycleLabel)

	sales, err := s.resolveSales(ctx, payloads, time.Now())
	if err != nil {
		return BatchResult{}, err
	}

	imported := 0
	err = database.RunInTransaction(ctx, s.db, func(txCtx context.Context) error {
		n, err := s.saleRepo.CreateBatch(txCtx, sales)
		if err != nil {
			return err
		}
		imported = n
		return nil
	})
	if err != nil {
		return BatchResult{}, fmt.Errorf("sale import failed: %w", err)
	}

	return BatchResult{
		BatchID:      uuid.NewString(),
		RowsRead:     len(rows),
		RowsImported: imported,
	}, nil
}

// resolveSales turns mapped file rows into persistable sales. The file
// format only carries display names; internally everything is keyed by
// CNIC so a later rename cannot orphan these rows. Resolution goes through
// GetByName, so when several roster entries share a name the oldest one
// wins. Rows naming an unknown or departed agent are dropped silently like
// any malformed row; each distinct name is looked up once.
func (s *ImportServiceImpl) resolveSales(ctx context.Context, payloads []SaleRow, now time.Time) ([]sale.Sale, error) {
	resolved := make(map[string]*agent.Agent)
	sales := make([]sale.Sale, 0, len(payloads))

	for _, p := range payloads {
		key := normalizeName(p.AgentName)
		a, seen := resolved[key]
		if !seen {
			got, err := s.agentRepo.GetByName(ctx, p.AgentName)
			switch {
			case err == nil:
				a = &got
			case errors.Is(err, agent.ErrAgentNotFound):
				a = nil
			default:
				return nil, fmt.Errorf("failed to resolve agent %q: %w", p.AgentName, err)
			}
			resolved[key] = a
		}
		if a == nil || a.Status != agent.StatusActive {
			continue
		}

		sales = append(sales, sale.Sale{
			AgentCNIC:          a.CNIC,
			AgentName:          p.AgentName,
			EnteredAt:          now,
			Date:               now,
			CycleLabel:         p.CycleLabel,
			CustomerName:       p.CustomerName,
			PhoneNumber:        p.PhoneNumber,
			State:              p.State,
			Zip:                p.Zip,
			Address:            p.Address,
			CampaignType:       p.CampaignType,
			Center:             p.Center,
			TeamLead:           p.TeamLead,
			Comments:           p.Comments,
			ListID:             p.ListID,
			Disposition:        p.Disposition,
			Status:             p.Status,
			Duration:           p.Duration,
			XferTime:           p.XferTime,
			XferAttempts:       p.XferAttempts,
			FeedbackBeforeXfer: p.FeedbackBeforeXfer,
			FeedbackAfterXfer:  p.FeedbackAfterXfer,
			Grading:            p.Grading,
			DockDetails:        p.DockDetails,
			Evaluator:          p.Evaluator,
		})
	}
	return sales, nil
}
