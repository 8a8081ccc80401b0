package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/hexaline-bpo/agentpay-backend-go/internal/domain/payroll"
	"github.com/hexaline-bpo/agentpay-backend-go/internal/handler/http/response"
	"github.com/hexaline-bpo/agentpay-backend-go/internal/pkg/cycle"
)

type PayrollHandler interface {
	AgentStats(w http.ResponseWriter, r *http.Request)
	Dashboard(w http.ResponseWriter, r *http.Request)
	Report(w http.ResponseWriter, r *http.Request)
}

type PayrollHandlerImpl struct {
	payrollService payroll.PayrollService
}

func NewPayrollHandler(payrollService payroll.PayrollService) PayrollHandler {
	return &PayrollHandlerImpl{payrollService: payrollService}
}

// AgentStats implements PayrollHandler. One aggregated payroll line per
// agent for the requested cycle, defaulting to the running one.
func (h *PayrollHandlerImpl) AgentStats(w http.ResponseWriter, r *http.Request) {
	label := cycleParam(r)

	stats, err := h.payrollService.AgentStats(r.Context(), label)
	if err != nil {
		slog.Error("AgentStats error", "error", err, "cycle", label)
		response.HandleError(w, err)
		return
	}

	response.Success(w, stats)
}

// Dashboard implements PayrollHandler. Agent tokens get totals scoped to
// their own records; back-office tokens see the whole floor.
func (h *PayrollHandlerImpl) Dashboard(w http.ResponseWriter, r *http.Request) {
	label := cycleParam(r)

	var scope payroll.Scope
	if cnic := agentCNICFromToken(r); cnic != "" {
		scope.AgentCNIC = &cnic
	}

	totals, err := h.payrollService.Dashboard(r.Context(), label, scope)
	if err != nil {
		slog.Error("Dashboard error", "error", err, "cycle", label)
		response.HandleError(w, err)
		return
	}

	response.Success(w, totals)
}

// Report implements PayrollHandler. Streams the payroll CSV for the cycle.
func (h *PayrollHandlerImpl) Report(w http.ResponseWriter, r *http.Request) {
	label := cycleParam(r)

	data, filename, err := h.payrollService.ReportCSV(r.Context(), label)
	if err != nil {
		slog.Error("PayrollReport error", "error", err, "cycle", label)
		response.HandleError(w, err)
		return
	}

	slog.Info("Payroll report generated", "cycle", label, "bytes", len(data))
	response.CSVFile(w, filename, data)
}

func cycleParam(r *http.Request) string {
	if label := r.URL.Query().Get("cycle"); label != "" {
		return label
	}
	return cycle.LabelAt(time.Now())
}
