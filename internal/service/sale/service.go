package sale

import (
	"context"
	"fmt"
	"time"

	"github.com/hexaline-bpo/agentpay-backend-go/internal/domain/agent"
	"github.com/hexaline-bpo/agentpay-backend-go/internal/domain/fine"
	"github.com/hexaline-bpo/agentpay-backend-go/internal/domain/sale"
	"github.com/hexaline-bpo/agentpay-backend-go/internal/pkg/cycle"
	"github.com/hexaline-bpo/agentpay-backend-go/internal/pkg/database"
)

type SaleServiceImpl struct {
	db *database.DB
	sale.SaleRepository
	agent.AgentRepository
	fine.FineRepository
	dockPenalty int64
}

func NewSaleService(db *database.DB, saleRepository sale.SaleRepository, agentRepository agent.AgentRepository, fineRepository fine.FineRepository, dockPenalty int64) sale.SaleService {
	return &SaleServiceImpl{
		db:              db,
		SaleRepository:  saleRepository,
		AgentRepository: agentRepository,
		FineRepository:  fineRepository,
		dockPenalty:     dockPenalty,
	}
}

// CreateSale implements sale.SaleService. Status is derived from the
// disposition; the cycle label is stamped from the sale's date.
func (s *SaleServiceImpl) CreateSale(ctx context.Context, req sale.CreateSaleRequest) (sale.SaleResponse, error) {
	if err := req.Validate(); err != nil {
		return sale.SaleResponse{}, err
	}

	agentData, err := s.AgentRepository.GetByCNIC(ctx, req.AgentCNIC)
	if err != nil {
		return sale.SaleResponse{}, err
	}

	now := time.Now()
	date := now
	if req.Date != "" {
		date, err = time.Parse("2006-01-02", req.Date)
		if err != nil {
			return sale.SaleResponse{}, fmt.Errorf("invalid date: %w", err)
		}
	}

	created, err := s.SaleRepository.Create(ctx, sale.Sale{
		AgentCNIC:    agentData.CNIC,
		EnteredAt:    now,
		Date:         date,
		CycleLabel:   cycle.LabelAt(date),
		CustomerName: req.CustomerName,
		PhoneNumber:  req.PhoneNumber,
		State:        req.State,
		Zip:          req.Zip,
		Address:      req.Address,
		CampaignType: req.CampaignType,
		Center:       req.Center,
		TeamLead:     req.TeamLead,
		Comments:     req.Comments,
		ListID:       req.ListID,
		Disposition:  req.Disposition,
		Status:       sale.DeriveStatus(req.Disposition),
		Duration:     req.Duration,
		XferTime:     req.XferTime,
		XferAttempts: req.XferAttempts,
		Amount:       req.Amount,
	})
	if err != nil {
		return sale.SaleResponse{}, err
	}

	created.AgentName = agentData.Name
	return toResponse(created), nil
}

// GetSale implements sale.SaleService.
func (s *SaleServiceImpl) GetSale(ctx context.Context, id string) (sale.SaleResponse, error) {
	found, err := s.SaleRepository.GetByID(ctx, id)
	if err != nil {
		return sale.SaleResponse{}, err
	}
	return toResponse(found), nil
}

// ListSales implements sale.SaleService.
func (s *SaleServiceImpl) ListSales(ctx context.Context, filter sale.SaleFilter) ([]sale.SaleResponse, error) {
	sales, err := s.SaleRepository.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	responses := make([]sale.SaleResponse, 0, len(sales))
	for _, found := range sales {
		responses = append(responses, toResponse(found))
	}
	return responses, nil
}

// UpdateSale implements sale.SaleService. A disposition change re-derives
// status. A dock-details change to a new non-empty value creates exactly one
// fine, dated today and attributed to the currently running cycle, in the
// same transaction as the sale update.
func (s *SaleServiceImpl) UpdateSale(ctx context.Context, req sale.UpdateSaleRequest) (sale.SaleResponse, error) {
	if err := req.Validate(); err != nil {
		return sale.SaleResponse{}, err
	}

	current, err := s.SaleRepository.GetByID(ctx, req.ID)
	if err != nil {
		return sale.SaleResponse{}, err
	}

	updated := applyUpdate(current, req)
	dockChanged := updated.DockDetails != current.DockDetails && updated.DockDetails != ""

	err = database.RunInTransaction(ctx, s.db, func(txCtx context.Context) error {
		updated, err = s.SaleRepository.Update(txCtx, updated)
		if err != nil {
			return err
		}

		if dockChanged {
			now := time.Now()
			_, err = s.FineRepository.Create(txCtx, fine.Fine{
				AgentCNIC:  updated.AgentCNIC,
				Reason:     fmt.Sprintf("Dock: %s", updated.DockDetails),
				Amount:     s.dockPenalty,
				Date:       now,
				CycleLabel: cycle.LabelAt(now),
			})
			if err != nil {
				return fmt.Errorf("failed to create dock fine: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return sale.SaleResponse{}, err
	}

	return toResponse(updated), nil
}

// DeleteSale implements sale.SaleService.
func (s *SaleServiceImpl) DeleteSale(ctx context.Context, id string) error {
	return s.SaleRepository.Delete(ctx, id)
}

func applyUpdate(current sale.Sale, req sale.UpdateSaleRequest) sale.Sale {
	if req.CustomerName != nil {
		current.CustomerName = *req.CustomerName
	}
	if req.PhoneNumber != nil {
		current.PhoneNumber = *req.PhoneNumber
	}
	if req.Comments != nil {
		current.Comments = *req.Comments
	}
	if req.Disposition != nil {
		current.Disposition = *req.Disposition
		current.Status = sale.DeriveStatus(*req.Disposition)
	}
	if req.Amount != nil {
		current.Amount = *req.Amount
	}
	if req.Grading != nil {
		current.Grading = *req.Grading
	}
	if req.Evaluator != nil {
		current.Evaluator = *req.Evaluator
	}
	if req.FeedbackBeforeXfer != nil {
		current.FeedbackBeforeXfer = *req.FeedbackBeforeXfer
	}
	if req.FeedbackAfterXfer != nil {
		current.FeedbackAfterXfer = *req.FeedbackAfterXfer
	}
	if req.DockDetails != nil {
		current.DockDetails = *req.DockDetails
	}
	return current
}

func toResponse(s sale.Sale) sale.SaleResponse {
	return sale.SaleResponse{
		ID:                 s.ID,
		AgentCNIC:          s.AgentCNIC,
		AgentName:          s.AgentName,
		EnteredAt:          s.EnteredAt.Format(time.RFC3339),
		Date:               s.Date.Format("2006-01-02"),
		CycleLabel:         s.CycleLabel,
		CustomerName:       s.CustomerName,
		PhoneNumber:        s.PhoneNumber,
		State:              s.State,
		Zip:                s.Zip,
		Address:            s.Address,
		CampaignType:       s.CampaignType,
		Center:             s.Center,
		TeamLead:           s.TeamLead,
		Comments:           s.Comments,
		ListID:             s.ListID,
		Disposition:        s.Disposition,
		Status:             string(s.Status),
		Duration:           s.Duration,
		XferTime:           s.XferTime,
		XferAttempts:       s.XferAttempts,
		FeedbackBeforeXfer: s.FeedbackBeforeXfer,
		FeedbackAfterXfer:  s.FeedbackAfterXfer,
		Grading:            s.Grading,
		DockDetails:        s.DockDetails,
		Evaluator:          s.Evaluator,
		Amount:             s.Amount,
	}
}
