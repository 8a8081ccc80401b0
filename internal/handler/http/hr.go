package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/hexaline-bpo/agentpay-backend-go/internal/domain/agent"
	"github.com/hexaline-bpo/agentpay-backend-go/internal/domain/hr"
	"github.com/hexaline-bpo/agentpay-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type HRHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	GetByAgent(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type HRHandlerImpl struct {
	hrRepo    hr.HRRepository
	agentRepo agent.AgentRepository
}

func NewHRHandler(hrRepo hr.HRRepository, agentRepo agent.AgentRepository) HRHandler {
	return &HRHandlerImpl{hrRepo: hrRepo, agentRepo: agentRepo}
}

// Create implements HRHandler.
func (h *HRHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req hr.CreateRecordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	if _, err := h.agentRepo.GetByCNIC(r.Context(), req.AgentCNIC); err != nil {
		response.HandleError(w, err)
		return
	}

	rec := hr.Record{
		AgentCNIC:     req.AgentCNIC,
		Designation:   req.Designation,
		Contact:       req.Contact,
		FatherName:    req.FatherName,
		BankName:      req.BankName,
		AccountNumber: req.AccountNumber,
		Status:        req.Status,
	}
	if req.JoiningDate != "" {
		joined, err := time.Parse("2006-01-02", req.JoiningDate)
		if err != nil {
			response.BadRequest(w, "Invalid joining date", nil)
			return
		}
		rec.JoiningDate = &joined
	}

	created, err := h.hrRepo.Create(r.Context(), rec)
	if err != nil {
		slog.Error("CreateHRRecord error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "HR record created", toHRResponse(created))
}

// GetByAgent implements HRHandler.
func (h *HRHandlerImpl) GetByAgent(w http.ResponseWriter, r *http.Request) {
	cnic := chi.URLParam(r, "cnic")

	rec, err := h.hrRepo.GetByAgent(r.Context(), cnic)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, toHRResponse(rec))
}

// List implements HRHandler.
func (h *HRHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	records, err := h.hrRepo.List(r.Context())
	if err != nil {
		slog.Error("ListHRRecords error", "error", err)
		response.HandleError(w, err)
		return
	}

	responses := make([]hr.RecordResponse, 0, len(records))
	for _, rec := range records {
		responses = append(responses, toHRResponse(rec))
	}
	response.Success(w, responses)
}

// Update implements HRHandler.
func (h *HRHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var req hr.UpdateRecordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	updated, err := h.hrRepo.Update(r.Context(), req)
	if err != nil {
		slog.Error("UpdateHRRecord error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, toHRResponse(updated))
}

// Delete implements HRHandler.
func (h *HRHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.hrRepo.Delete(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "HR record deleted", nil)
}

func toHRResponse(rec hr.Record) hr.RecordResponse {
	resp := hr.RecordResponse{
		ID:            rec.ID,
		AgentCNIC:     rec.AgentCNIC,
		Name:          rec.Name,
		Designation:   rec.Designation,
		Contact:       rec.Contact,
		FatherName:    rec.FatherName,
		BankName:      rec.BankName,
		AccountNumber: rec.AccountNumber,
		Status:        rec.Status,
	}
	if rec.JoiningDate != nil {
		joined := rec.JoiningDate.Format("2006-01-02")
		resp.JoiningDate = &joined
	}
	return resp
}
