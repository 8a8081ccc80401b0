package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/hexaline-bpo/agentpay-backend-go/internal/domain/agent"
	"github.com/hexaline-bpo/agentpay-backend-go/internal/domain/bonus"
	"github.com/hexaline-bpo/agentpay-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type BonusHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type BonusHandlerImpl struct {
	bonusRepo bonus.BonusRepository
	agentRepo agent.AgentRepository
}

func NewBonusHandler(bonusRepo bonus.BonusRepository, agentRepo agent.AgentRepository) BonusHandler {
	return &BonusHandlerImpl{bonusRepo: bonusRepo, agentRepo: agentRepo}
}

// Create implements BonusHandler. The bonus belongs to whichever cycle
// label the caller names; there is no date to derive it from.
func (h *BonusHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req bonus.CreateBonusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	agentData, err := h.agentRepo.GetByCNIC(r.Context(), req.AgentCNIC)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	created, err := h.bonusRepo.Create(r.Context(), bonus.Bonus{
		AgentCNIC:   agentData.CNIC,
		CycleLabel:  req.CycleLabel,
		Type:        bonus.BonusType(req.Type),
		TargetSales: req.TargetSales,
		ActualSales: req.ActualSales,
		Amount:      req.Amount,
	})
	if err != nil {
		slog.Error("CreateBonus error", "error", err)
		response.HandleError(w, err)
		return
	}

	created.AgentName = agentData.Name
	response.Created(w, "Bonus recorded", toBonusResponse(created))
}

// List implements BonusHandler.
func (h *BonusHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	var filter bonus.BonusFilter
	if cnic := r.URL.Query().Get("agent"); cnic != "" {
		filter.AgentCNIC = &cnic
	}
	if label := r.URL.Query().Get("cycle"); label != "" {
		filter.CycleLabel = &label
	}

	bonuses, err := h.bonusRepo.List(r.Context(), filter)
	if err != nil {
		slog.Error("ListBonuses error", "error", err)
		response.HandleError(w, err)
		return
	}

	responses := make([]bonus.BonusResponse, 0, len(bonuses))
	for _, b := range bonuses {
		responses = append(responses, toBonusResponse(b))
	}
	response.Success(w, responses)
}

// Delete implements BonusHandler.
func (h *BonusHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.bonusRepo.Delete(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Bonus deleted", nil)
}

func toBonusResponse(b bonus.Bonus) bonus.BonusResponse {
	return bonus.BonusResponse{
		ID:          b.ID,
		AgentCNIC:   b.AgentCNIC,
		AgentName:   b.AgentName,
		CycleLabel:  b.CycleLabel,
		Type:        string(b.Type),
		TargetSales: b.TargetSales,
		ActualSales: b.ActualSales,
		Amount:      b.Amount,
	}
}
