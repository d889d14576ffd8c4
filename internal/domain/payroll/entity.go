package payroll

import "time"

// PayPeriod is a value, not an entity: periods are a deterministic function
// of the company payroll configuration and are regenerated on every query.
type PayPeriod struct {
	StartDate    time.Time
	EndDate      time.Time
	PeriodNumber int
	Year         int
	PaymentDate  time.Time
}

// DurationDays returns the inclusive day count of the period.
func (p PayPeriod) DurationDays() int {
	return int(p.EndDate.Sub(p.StartDate).Hours()/24) + 1
}
