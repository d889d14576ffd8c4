package attendance

import (
	"time"
)

// Attendance is one record per (employee, calendar date). Raw punches are
// preserved exactly as captured; rounded punches and classified hours are
// derived from them and re-derived on every recalculation.
type Attendance struct {
	ID         string
	EmployeeID string
	CompanyID  string
	Date       time.Time

	// Raw punches
	CheckIn  *time.Time
	CheckOut *time.Time

	// Rounded punches, used only for hour math
	RoundedCheckIn  *time.Time
	RoundedCheckOut *time.Time

	// Computed hours
	RegularHours     float64
	OvertimeHours    float64
	WeekendOTHours   float64
	StatHolidayHours float64

	// Manual override layer, each field independently nullable
	IsManualOverride         bool
	OverrideCheckIn          *time.Time
	OverrideCheckOut         *time.Time
	OverrideRegularHours     *float64
	OverrideOvertimeHours    *float64
	OverrideWeekendOTHours   *float64
	OverrideStatHolidayHours *float64

	Remarks    *string
	EditReason *string
	CreatedAt  time.Time
	UpdatedAt  time.Time

	// DTO
	EmployeeName *string
}

// EffectiveCheckIn returns the check-in a consumer should use: the override
// when the record is flagged as manually overridden and the override field
// is set, otherwise the raw punch.
func (a Attendance) EffectiveCheckIn() *time.Time {
	if a.IsManualOverride && a.OverrideCheckIn != nil {
		return a.OverrideCheckIn
	}
	return a.CheckIn
}

// EffectiveCheckOut returns the check-out a consumer should use.
func (a Attendance) EffectiveCheckOut() *time.Time {
	if a.IsManualOverride && a.OverrideCheckOut != nil {
		return a.OverrideCheckOut
	}
	return a.CheckOut
}

// EffectiveRegularHours returns the regular hours a consumer should use.
func (a Attendance) EffectiveRegularHours() float64 {
	if a.IsManualOverride && a.OverrideRegularHours != nil {
		return *a.OverrideRegularHours
	}
	return a.RegularHours
}

// EffectiveOvertimeHours returns the overtime hours a consumer should use.
func (a Attendance) EffectiveOvertimeHours() float64 {
	if a.IsManualOverride && a.OverrideOvertimeHours != nil {
		return *a.OverrideOvertimeHours
	}
	return a.OvertimeHours
}

// EffectiveWeekendOTHours returns the weekend overtime hours a consumer
// should use.
func (a Attendance) EffectiveWeekendOTHours() float64 {
	if a.IsManualOverride && a.OverrideWeekendOTHours != nil {
		return *a.OverrideWeekendOTHours
	}
	return a.WeekendOTHours
}

// EffectiveStatHolidayHours returns the statutory holiday hours a consumer
// should use.
func (a Attendance) EffectiveStatHolidayHours() float64 {
	if a.IsManualOverride && a.OverrideStatHolidayHours != nil {
		return *a.OverrideStatHolidayHours
	}
	return a.StatHolidayHours
}

// HasPunches reports whether both punches are present on the effective view
// of the record.
func (a Attendance) HasPunches() bool {
	return a.EffectiveCheckIn() != nil && a.EffectiveCheckOut() != nil
}
