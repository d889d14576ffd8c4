package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/pacificpay/pacificpay-backend-go/internal/domain/payroll"
	"github.com/pacificpay/pacificpay-backend-go/internal/handler/http/response"
)

type PayrollHandler interface {
	ListPayPeriods(w http.ResponseWriter, r *http.Request)
	StatHolidayEntitlement(w http.ResponseWriter, r *http.Request)
}

type payrollHandlerImpl struct {
	payrollService payroll.PayrollService
}

func NewPayrollHandler(payrollService payroll.PayrollService) PayrollHandler {
	return &payrollHandlerImpl{
		payrollService: payrollService,
	}
}

// ListPayPeriods implements PayrollHandler.
func (h *payrollHandlerImpl) ListPayPeriods(w http.ResponseWriter, r *http.Request) {
	year := time.Now().Year()
	if v := r.URL.Query().Get("year"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil {
			response.BadRequest(w, "year must be a number", nil)
			return
		}
		year = parsed
	}

	result, err := h.payrollService.PeriodsForYear(r.Context(), year)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// StatHolidayEntitlement implements PayrollHandler.
func (h *payrollHandlerImpl) StatHolidayEntitlement(w http.ResponseWriter, r *http.Request) {
	var req payroll.EntitlementRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Failed to decode request body", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.payrollService.StatHolidayEntitlement(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
