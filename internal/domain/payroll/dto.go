package payroll

import (
	"github.com/pacificpay/pacificpay-backend-go/internal/pkg/validator"
)

type PayPeriodResponse struct {
	StartDate    string `json:"start_date"`
	EndDate      string `json:"end_date"`
	PeriodNumber int    `json:"period_number"`
	Year         int    `json:"year"`
	DurationDays int    `json:"duration_days"`
	PaymentDate  string `json:"payment_date"`
}

func ToPeriodResponse(p PayPeriod) PayPeriodResponse {
	return PayPeriodResponse{
		StartDate:    p.StartDate.Format("2006-01-02"),
		EndDate:      p.EndDate.Format("2006-01-02"),
		PeriodNumber: p.PeriodNumber,
		Year:         p.Year,
		DurationDays: p.DurationDays(),
		PaymentDate:  p.PaymentDate.Format("2006-01-02"),
	}
}

// EntitlementRequest asks for the statutory holiday entitlement of an
// employee on a holiday date.
type EntitlementRequest struct {
	EmployeeID  string `json:"employee_id"`
	HolidayDate string `json:"holiday_date"`
}

func (r EntitlementRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "employee_id is required"})
	}
	if _, ok := validator.IsValidDate(r.HolidayDate); !ok {
		errs = append(errs, validator.ValidationError{Field: "holiday_date", Message: "holiday_date must be in YYYY-MM-DD format"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// EntitlementResponse reports the paid hours owed for a statutory holiday.
// Zero hours with a reason is a valid terminal result, not an error.
type EntitlementResponse struct {
	EmployeeID   string  `json:"employee_id"`
	HolidayDate  string  `json:"holiday_date"`
	Hours        float64 `json:"hours"`
	Eligible     bool    `json:"eligible"`
	Reason       string  `json:"reason,omitempty"`
	DaysEligible int     `json:"days_eligible"`
	DaysWorked   int     `json:"days_worked"`
}
