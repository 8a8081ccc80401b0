package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/hexaline-bpo/agentpay-backend-go/internal/domain/sale"
	"github.com/hexaline-bpo/agentpay-backend-go/internal/handler/http/middleware"
	"github.com/hexaline-bpo/agentpay-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type SaleHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type SaleHandlerImpl struct {
	saleService sale.SaleService
}

func NewSaleHandler(saleService sale.SaleService) SaleHandler {
	return &SaleHandlerImpl{saleService: saleService}
}

// Create implements SaleHandler. An agent token may only submit under its
// own CNIC; the claim overrides whatever the body carries.
func (h *SaleHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req sale.CreateSaleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if cnic := agentCNICFromToken(r); cnic != "" {
		req.AgentCNIC = cnic
	}

	created, err := h.saleService.CreateSale(r.Context(), req)
	if err != nil {
		slog.Error("CreateSale error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Sale logged", created)
}

// Get implements SaleHandler.
func (h *SaleHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	found, err := h.saleService.GetSale(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, found)
}

// List implements SaleHandler. Agent tokens see their own sales only.
func (h *SaleHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	filter := sale.SaleFilter{
		Search: r.URL.Query().Get("search"),
	}
	if label := r.URL.Query().Get("cycle"); label != "" {
		filter.CycleLabel = &label
	}
	if statusStr := r.URL.Query().Get("status"); statusStr != "" {
		status := sale.Status(statusStr)
		filter.Status = &status
	}
	if cnic := r.URL.Query().Get("agent"); cnic != "" {
		filter.AgentCNIC = &cnic
	}
	if cnic := agentCNICFromToken(r); cnic != "" {
		filter.AgentCNIC = &cnic
	}

	sales, err := h.saleService.ListSales(r.Context(), filter)
	if err != nil {
		slog.Error("ListSales error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, sales)
}

// Update implements SaleHandler.
func (h *SaleHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var req sale.UpdateSaleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	updated, err := h.saleService.UpdateSale(r.Context(), req)
	if err != nil {
		slog.Error("UpdateSale error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, updated)
}

// Delete implements SaleHandler.
func (h *SaleHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.saleService.DeleteSale(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Sale deleted", nil)
}

// agentCNICFromToken returns the caller's CNIC when the bearer is a floor
// agent, empty otherwise. Only agent tokens carry an AgentCNIC.
func agentCNICFromToken(r *http.Request) string {
	id, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		return ""
	}
	return id.AgentCNIC
}
