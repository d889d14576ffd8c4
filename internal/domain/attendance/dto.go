package attendance

import (
	"time"

	"github.com/pacificpay/pacificpay-backend-go/internal/pkg/validator"
)

const maxRemarksLength = 500

// CreateAttendanceRequest is used for manual entry and import rows.
type CreateAttendanceRequest struct {
	EmployeeID string  `json:"employee_id"`
	Date       string  `json:"date"`
	CheckIn    *string `json:"check_in"`
	CheckOut   *string `json:"check_out"`
	Remarks    *string `json:"remarks"`
}

func (r CreateAttendanceRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "employee_id is required"})
	}
	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{Field: "date", Message: "date must be in YYYY-MM-DD format"})
	}
	if r.CheckIn != nil && *r.CheckIn != "" {
		if _, ok := validator.IsValidTimeOfDay(*r.CheckIn); !ok {
			errs = append(errs, validator.ValidationError{Field: "check_in", Message: "check_in must be in HH:MM:SS format"})
		}
	}
	if r.CheckOut != nil && *r.CheckOut != "" {
		if _, ok := validator.IsValidTimeOfDay(*r.CheckOut); !ok {
			errs = append(errs, validator.ValidationError{Field: "check_out", Message: "check_out must be in HH:MM:SS format"})
		}
	}
	if r.Remarks != nil && len(*r.Remarks) > maxRemarksLength {
		errs = append(errs, validator.ValidationError{Field: "remarks", Message: "remarks exceeds maximum length"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// UpdateAttendanceRequest updates the raw punches of an existing record.
// Hours are re-derived; they cannot be set directly here, only through the
// override layer.
type UpdateAttendanceRequest struct {
	ID         string  `json:"-"`
	CheckIn    *string `json:"check_in"`
	CheckOut   *string `json:"check_out"`
	Remarks    *string `json:"remarks"`
	EditReason *string `json:"edit_reason"`
}

func (r UpdateAttendanceRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{Field: "id", Message: "id is required"})
	}
	if r.CheckIn != nil && *r.CheckIn != "" {
		if _, ok := validator.IsValidTimeOfDay(*r.CheckIn); !ok {
			errs = append(errs, validator.ValidationError{Field: "check_in", Message: "check_in must be in HH:MM:SS format"})
		}
	}
	if r.CheckOut != nil && *r.CheckOut != "" {
		if _, ok := validator.IsValidTimeOfDay(*r.CheckOut); !ok {
			errs = append(errs, validator.ValidationError{Field: "check_out", Message: "check_out must be in HH:MM:SS format"})
		}
	}
	if r.Remarks != nil && len(*r.Remarks) > maxRemarksLength {
		errs = append(errs, validator.ValidationError{Field: "remarks", Message: "remarks exceeds maximum length"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// OverrideAttendanceRequest sets the manual override layer. Every field is
// independently optional; omitted fields keep their stored override value.
type OverrideAttendanceRequest struct {
	ID                       string   `json:"-"`
	OverrideCheckIn          *string  `json:"override_check_in"`
	OverrideCheckOut         *string  `json:"override_check_out"`
	OverrideRegularHours     *float64 `json:"override_regular_hours"`
	OverrideOvertimeHours    *float64 `json:"override_ot_hours"`
	OverrideWeekendOTHours   *float64 `json:"override_weekend_ot_hours"`
	OverrideStatHolidayHours *float64 `json:"override_stat_holiday_hours"`
	EditReason               *string  `json:"edit_reason"`
}

func (r OverrideAttendanceRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{Field: "id", Message: "id is required"})
	}
	if r.OverrideCheckIn != nil && *r.OverrideCheckIn != "" {
		if _, ok := validator.IsValidTimeOfDay(*r.OverrideCheckIn); !ok {
			errs = append(errs, validator.ValidationError{Field: "override_check_in", Message: "override_check_in must be in HH:MM:SS format"})
		}
	}
	if r.OverrideCheckOut != nil && *r.OverrideCheckOut != "" {
		if _, ok := validator.IsValidTimeOfDay(*r.OverrideCheckOut); !ok {
			errs = append(errs, validator.ValidationError{Field: "override_check_out", Message: "override_check_out must be in HH:MM:SS format"})
		}
	}
	for _, f := range []struct {
		name  string
		value *float64
	}{
		{"override_regular_hours", r.OverrideRegularHours},
		{"override_ot_hours", r.OverrideOvertimeHours},
		{"override_weekend_ot_hours", r.OverrideWeekendOTHours},
		{"override_stat_holiday_hours", r.OverrideStatHolidayHours},
	} {
		if f.value != nil && *f.value < 0 {
			errs = append(errs, validator.ValidationError{Field: f.name, Message: "hours cannot be negative"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// RecalculateRequest re-derives rounded times and classified hours for every
// record in the date range.
type RecalculateRequest struct {
	EmployeeID *string `json:"employee_id"`
	StartDate  string  `json:"start_date"`
	EndDate    string  `json:"end_date"`
}

func (r RecalculateRequest) Validate() error {
	var errs validator.ValidationErrors

	start, okStart := validator.IsValidDate(r.StartDate)
	if !okStart {
		errs = append(errs, validator.ValidationError{Field: "start_date", Message: "start_date must be in YYYY-MM-DD format"})
	}
	end, okEnd := validator.IsValidDate(r.EndDate)
	if !okEnd {
		errs = append(errs, validator.ValidationError{Field: "end_date", Message: "end_date must be in YYYY-MM-DD format"})
	}
	if okStart && okEnd && end.Before(start) {
		errs = append(errs, validator.ValidationError{Field: "end_date", Message: "end_date must not be before start_date"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// DeleteRangeRequest hard-deletes every record in the date range.
type DeleteRangeRequest struct {
	EmployeeID *string `json:"employee_id"`
	StartDate  string  `json:"start_date"`
	EndDate    string  `json:"end_date"`
}

func (r DeleteRangeRequest) Validate() error {
	return RecalculateRequest{EmployeeID: r.EmployeeID, StartDate: r.StartDate, EndDate: r.EndDate}.Validate()
}

// AttendanceFilter filters the attendance list (admin view).
type AttendanceFilter struct {
	EmployeeID *string
	StartDate  *string
	EndDate    *string
	SortBy     string
	SortOrder  string
	Page       int
	Limit      int
}

// AttendanceResponse carries raw, computed and effective values. Effective
// values are what payroll consumers use; raw and computed stay visible for
// traceability even when overridden.
type AttendanceResponse struct {
	ID           string  `json:"id"`
	EmployeeID   string  `json:"employee_id"`
	EmployeeName *string `json:"employee_name,omitempty"`
	Date         string  `json:"date"`

	CheckIn         *string `json:"check_in"`
	CheckOut        *string `json:"check_out"`
	RoundedCheckIn  *string `json:"rounded_check_in"`
	RoundedCheckOut *string `json:"rounded_check_out"`

	RegularHours     float64 `json:"regular_hours"`
	OvertimeHours    float64 `json:"ot_hours"`
	WeekendOTHours   float64 `json:"weekend_ot_hours"`
	StatHolidayHours float64 `json:"stat_holiday_hours"`

	IsManualOverride bool `json:"is_manual_override"`

	EffectiveCheckIn          *string `json:"effective_check_in"`
	EffectiveCheckOut         *string `json:"effective_check_out"`
	EffectiveRegularHours     float64 `json:"effective_regular_hours"`
	EffectiveOvertimeHours    float64 `json:"effective_ot_hours"`
	EffectiveWeekendOTHours   float64 `json:"effective_weekend_ot_hours"`
	EffectiveStatHolidayHours float64 `json:"effective_stat_holiday_hours"`

	Remarks    *string `json:"remarks,omitempty"`
	EditReason *string `json:"edit_reason,omitempty"`
	CreatedAt  string  `json:"created_at"`
	UpdatedAt  string  `json:"updated_at"`
}

type ListAttendanceResponse struct {
	TotalCount  int64                `json:"total_count"`
	Page        int                  `json:"page"`
	Limit       int                  `json:"limit"`
	TotalPages  int                  `json:"total_pages"`
	Attendances []AttendanceResponse `json:"attendances"`
}

// BulkResult reports the outcome of a batch operation. One record's failure
// never aborts the rest; failures are collected here instead.
type BulkResult struct {
	Processed int      `json:"processed"`
	Succeeded int      `json:"succeeded"`
	Skipped   int      `json:"skipped"`
	Failed    int      `json:"failed"`
	Errors    []string `json:"errors,omitempty"`
}

const maxBulkErrors = 20

// AddError records a failure, keeping the message list bounded.
func (b *BulkResult) AddError(msg string) {
	b.Failed++
	if len(b.Errors) < maxBulkErrors {
		b.Errors = append(b.Errors, msg)
	}
}

func formatTimePtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format("15:04:05")
	return &s
}

// ToResponse maps the entity to its API shape, resolving effective values
// through the override layer.
func ToResponse(a Attendance) AttendanceResponse {
	return AttendanceResponse{
		ID:           a.ID,
		EmployeeID:   a.EmployeeID,
		EmployeeName: a.EmployeeName,
		Date:         a.Date.Format("2006-01-02"),

		CheckIn:         formatTimePtr(a.CheckIn),
		CheckOut:        formatTimePtr(a.CheckOut),
		RoundedCheckIn:  formatTimePtr(a.RoundedCheckIn),
		RoundedCheckOut: formatTimePtr(a.RoundedCheckOut),

		RegularHours:     a.RegularHours,
		OvertimeHours:    a.OvertimeHours,
		WeekendOTHours:   a.WeekendOTHours,
		StatHolidayHours: a.StatHolidayHours,

		IsManualOverride: a.IsManualOverride,

		EffectiveCheckIn:          formatTimePtr(a.EffectiveCheckIn()),
		EffectiveCheckOut:         formatTimePtr(a.EffectiveCheckOut()),
		EffectiveRegularHours:     a.EffectiveRegularHours(),
		EffectiveOvertimeHours:    a.EffectiveOvertimeHours(),
		EffectiveWeekendOTHours:   a.EffectiveWeekendOTHours(),
		EffectiveStatHolidayHours: a.EffectiveStatHolidayHours(),

		Remarks:    a.Remarks,
		EditReason: a.EditReason,
		CreatedAt:  a.CreatedAt.Format("2006-01-02 15:04:05"),
		UpdatedAt:  a.UpdatedAt.Format("2006-01-02 15:04:05"),
	}
}
