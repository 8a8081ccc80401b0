package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/hexaline-bpo/agentpay-backend-go/internal/domain/agent"
	"github.com/hexaline-bpo/agentpay-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type AgentHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	MarkLeft(w http.ResponseWriter, r *http.Request)
	Reactivate(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type AgentHandlerImpl struct {
	agentService agent.AgentService
}

func NewAgentHandler(agentService agent.AgentService) AgentHandler {
	return &AgentHandlerImpl{agentService: agentService}
}

// Create implements AgentHandler.
func (h *AgentHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req agent.CreateAgentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.agentService.CreateAgent(r.Context(), req)
	if err != nil {
		slog.Error("CreateAgent error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Agent created", created)
}

// Get implements AgentHandler.
func (h *AgentHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	cnic := chi.URLParam(r, "cnic")

	found, err := h.agentService.GetAgent(r.Context(), cnic)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, found)
}

// List implements AgentHandler.
func (h *AgentHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	filter := agent.AgentFilter{
		Search: r.URL.Query().Get("search"),
	}
	if statusStr := r.URL.Query().Get("status"); statusStr != "" {
		status := agent.Status(statusStr)
		filter.Status = &status
	}
	if team := r.URL.Query().Get("team"); team != "" {
		filter.Team = &team
	}

	agents, err := h.agentService.ListAgents(r.Context(), filter)
	if err != nil {
		slog.Error("ListAgents error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, agents)
}

// Update implements AgentHandler.
func (h *AgentHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var req agent.UpdateAgentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.CNIC = chi.URLParam(r, "cnic")

	updated, err := h.agentService.UpdateAgent(r.Context(), req)
	if err != nil {
		slog.Error("UpdateAgent error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, updated)
}

// MarkLeft implements AgentHandler.
func (h *AgentHandlerImpl) MarkLeft(w http.ResponseWriter, r *http.Request) {
	cnic := chi.URLParam(r, "cnic")

	updated, err := h.agentService.MarkLeft(r.Context(), cnic)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	slog.Info("Agent marked left", "cnic", cnic)
	response.SuccessWithMessage(w, "Agent marked as left", updated)
}

// Reactivate implements AgentHandler.
func (h *AgentHandlerImpl) Reactivate(w http.ResponseWriter, r *http.Request) {
	cnic := chi.URLParam(r, "cnic")

	updated, err := h.agentService.Reactivate(r.Context(), cnic)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	slog.Info("Agent reactivated", "cnic", cnic)
	response.SuccessWithMessage(w, "Agent reactivated", updated)
}

// Delete implements AgentHandler.
func (h *AgentHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	cnic := chi.URLParam(r, "cnic")

	if err := h.agentService.DeleteAgent(r.Context(), cnic); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Agent deleted", nil)
}
