package http

import (
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/hexaline-bpo/agentpay-backend-go/internal/handler/http/response"
	"github.com/hexaline-bpo/agentpay-backend-go/internal/pkg/cycle"
	"github.com/hexaline-bpo/agentpay-backend-go/internal/service/importer"
)

type ImportHandler interface {
	ImportAgents(w http.ResponseWriter, r *http.Request)
	ImportSales(w http.ResponseWriter, r *http.Request)
}

type ImportHandlerImpl struct {
	importService importer.ImportService
}

func NewImportHandler(importService importer.ImportService) ImportHandler {
	return &ImportHandlerImpl{importService: importService}
}

// ImportAgents implements ImportHandler.
func (h *ImportHandlerImpl) ImportAgents(w http.ResponseWriter, r *http.Request) {
	filename, data, ok := readUpload(w, r)
	if !ok {
		return
	}

	result, err := h.importService.ImportAgents(r.Context(), filename, data)
	if err != nil {
		slog.Error("ImportAgents error", "error", err, "filename", filename)
		response.HandleError(w, err)
		return
	}

	slog.Info("Agents imported", "batch_id", result.BatchID, "imported", result.RowsImported)
	response.SuccessWithMessage(w, "Agents imported", result)
}

// ImportSales implements ImportHandler. The whole file lands in one cycle:
// the one named in the form, or the currently running one.
func (h *ImportHandlerImpl) ImportSales(w http.ResponseWriter, r *http.Request) {
	filename, data, ok := readUpload(w, r)
	if !ok {
		return
	}

	label := r.FormValue("cycle")
	if label == "" {
		label = cycle.LabelAt(time.Now())
	}

	result, err := h.importService.ImportSales(r.Context(), filename, data, label)
	if err != nil {
		slog.Error("ImportSales error", "error", err, "filename", filename)
		response.HandleError(w, err)
		return
	}

	slog.Info("Sales imported", "batch_id", result.BatchID, "imported", result.RowsImported, "cycle", label)
	response.SuccessWithMessage(w, "Sales imported", result)
}

func readUpload(w http.ResponseWriter, r *http.Request) (string, []byte, bool) {
	file, header, err := r.FormFile("file")
	if err != nil {
		response.BadRequest(w, "Missing file upload", nil)
		return "", nil, false
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		response.BadRequest(w, "Failed to read upload", nil)
		return "", nil, false
	}

	return header.Filename, data, true
}
