package http

import (
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/hexaline-bpo/agentpay-backend-go/internal/domain/attendance"
	"github.com/hexaline-bpo/agentpay-backend-go/internal/handler/http/response"
	"github.com/hexaline-bpo/agentpay-backend-go/internal/pkg/cycle"
	"github.com/hexaline-bpo/agentpay-backend-go/internal/service/importer"
)

type AttendanceHandler interface {
	Import(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Matrix(w http.ResponseWriter, r *http.Request)
}

type AttendanceHandlerImpl struct {
	attendanceService attendance.AttendanceService
}

func NewAttendanceHandler(attendanceService attendance.AttendanceService) AttendanceHandler {
	return &AttendanceHandlerImpl{attendanceService: attendanceService}
}

// Import implements AttendanceHandler. Accepts a multipart upload of the
// raw biometric machine export, text or spreadsheet.
func (h *AttendanceHandlerImpl) Import(w http.ResponseWriter, r *http.Request) {
	file, header, err := r.FormFile("file")
	if err != nil {
		response.BadRequest(w, "Missing file upload", nil)
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		response.BadRequest(w, "Failed to read upload", nil)
		return
	}

	rows, err := importer.DecodeRows(header.Filename, data)
	if err != nil {
		slog.Error("Attendance import decode error", "error", err, "filename", header.Filename)
		response.BadRequest(w, "Could not decode file", nil)
		return
	}

	result, err := h.attendanceService.ImportRaw(r.Context(), attendance.ImportRequest{
		Rows:          rows,
		LateThreshold: r.FormValue("late_threshold"),
	})
	if err != nil {
		slog.Error("Attendance import error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Attendance imported",
		"records", result.RecordsSaved,
		"skipped", result.RowsSkipped,
		"filename", header.Filename)
	response.SuccessWithMessage(w, "Attendance imported", result)
}

// List implements AttendanceHandler.
func (h *AttendanceHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	var filter attendance.RecordFilter
	if cnic := r.URL.Query().Get("agent"); cnic != "" {
		filter.AgentCNIC = &cnic
	}
	if from := r.URL.Query().Get("from"); from != "" {
		filter.DateFrom = &from
	}
	if to := r.URL.Query().Get("to"); to != "" {
		filter.DateTo = &to
	}

	records, err := h.attendanceService.ListRecords(r.Context(), filter)
	if err != nil {
		slog.Error("ListAttendance error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, records)
}

// Matrix implements AttendanceHandler. Defaults to the currently running
// pay cycle when no cycle is named.
func (h *AttendanceHandlerImpl) Matrix(w http.ResponseWriter, r *http.Request) {
	label := r.URL.Query().Get("cycle")
	if label == "" {
		label = cycle.LabelAt(time.Now())
	}

	matrix, err := h.attendanceService.Matrix(r.Context(), label)
	if err != nil {
		slog.Error("AttendanceMatrix error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, matrix)
}
