package response

import (
	"errors"
	"net/http"

	"github.com/pacificpay/pacificpay-backend-go/internal/domain/attendance"
	"github.com/pacificpay/pacificpay-backend-go/internal/domain/auth"
	"github.com/pacificpay/pacificpay-backend-go/internal/domain/company"
	"github.com/pacificpay/pacificpay-backend-go/internal/domain/employee"
	"github.com/pacificpay/pacificpay-backend-go/internal/domain/holiday"
	"github.com/pacificpay/pacificpay-backend-go/internal/domain/schedule"
	"github.com/pacificpay/pacificpay-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid token")
	case errors.Is(err, auth.ErrAdminPrivilegeRequired):
		Forbidden(w, "Admin privilege required")

	// Attendance domain errors
	case errors.Is(err, attendance.ErrAttendanceNotFound):
		NotFound(w, "Attendance record not found")
	case errors.Is(err, attendance.ErrAttendanceExists):
		Conflict(w, "Attendance record already exists for this date")
	case errors.Is(err, attendance.ErrNoScheduleFound):
		BadRequest(w, "No work schedule covers this date", nil)
	case errors.Is(err, attendance.ErrUnauthorized):
		Forbidden(w, "Not allowed to access this record")

	// Schedule domain errors
	case errors.Is(err, schedule.ErrWorkScheduleNotFound):
		NotFound(w, "Work schedule not found")
	case errors.Is(err, schedule.ErrAssignmentNotFound):
		NotFound(w, "Schedule assignment not found")
	case errors.Is(err, schedule.ErrAssignmentOverlap):
		Conflict(w, "Schedule assignment overlaps an existing assignment")

	// Holiday domain errors
	case errors.Is(err, holiday.ErrHolidayNotFound):
		NotFound(w, "Holiday not found")
	case errors.Is(err, holiday.ErrHolidayExists):
		Conflict(w, "Holiday already exists for this date")

	// Employee / company domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrEmploymentNotFound):
		NotFound(w, "No employment covers this date")
	case errors.Is(err, company.ErrCompanyNotFound):
		NotFound(w, "Company not found")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
