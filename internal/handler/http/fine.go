package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/hexaline-bpo/agentpay-backend-go/internal/domain/agent"
	"github.com/hexaline-bpo/agentpay-backend-go/internal/domain/fine"
	"github.com/hexaline-bpo/agentpay-backend-go/internal/handler/http/response"
	"github.com/hexaline-bpo/agentpay-backend-go/internal/pkg/cycle"
	"github.com/go-chi/chi/v5"
)

type FineHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

// Fines are immutable once written, so this handler talks to the
// repository directly; the only business rule is cycle stamping.
type FineHandlerImpl struct {
	fineRepo  fine.FineRepository
	agentRepo agent.AgentRepository
}

func NewFineHandler(fineRepo fine.FineRepository, agentRepo agent.AgentRepository) FineHandler {
	return &FineHandlerImpl{fineRepo: fineRepo, agentRepo: agentRepo}
}

// Create implements FineHandler.
func (h *FineHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req fine.CreateFineRequest
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

	date := time.Now()
	if req.Date != "" {
		date, err = time.Parse("2006-01-02", req.Date)
		if err != nil {
			response.BadRequest(w, "Invalid date", nil)
			return
		}
	}

	created, err := h.fineRepo.Create(r.Context(), fine.Fine{
		AgentCNIC:  agentData.CNIC,
		Reason:     req.Reason,
		Amount:     req.Amount,
		Date:       date,
		CycleLabel: cycle.LabelAt(date),
	})
	if err != nil {
		slog.Error("CreateFine error", "error", err)
		response.HandleError(w, err)
		return
	}

	created.AgentName = agentData.Name
	response.Created(w, "Fine recorded", toFineResponse(created))
}

// List implements FineHandler.
func (h *FineHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	var filter fine.FineFilter
	if cnic := r.URL.Query().Get("agent"); cnic != "" {
		filter.AgentCNIC = &cnic
	}
	if label := r.URL.Query().Get("cycle"); label != "" {
		filter.CycleLabel = &label
	}

	fines, err := h.fineRepo.List(r.Context(), filter)
	if err != nil {
		slog.Error("ListFines error", "error", err)
		response.HandleError(w, err)
		return
	}

	responses := make([]fine.FineResponse, 0, len(fines))
	for _, f := range fines {
		responses = append(responses, toFineResponse(f))
	}
	response.Success(w, responses)
}

// Delete implements FineHandler.
func (h *FineHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.fineRepo.Delete(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Fine deleted", nil)
}

func toFineResponse(f fine.Fine) fine.FineResponse {
	return fine.FineResponse{
		ID:         f.ID,
		AgentCNIC:  f.AgentCNIC,
		AgentName:  f.AgentName,
		Reason:     f.Reason,
		Amount:     f.Amount,
		Date:       f.Date.Format("2006-01-02"),
		CycleLabel: f.CycleLabel,
	}
}
