package company

import "time"

// PayFrequency values recognized by the pay period scheduler. Stored
// frequency strings are matched by substring, so descriptive suffixes like
// "bi-weekly (every second Friday)" still resolve.
const (
	FrequencyBiWeekly  = "bi-weekly"
	FrequencyBiMonthly = "bi-monthly"
	FrequencyMonthly   = "monthly"
)

// PayrollConfig is the durable payroll configuration of a company. Pay
// periods are a pure function of this config; they are never stored.
type PayrollConfig struct {
	CompanyID           string
	PayFrequency        *string
	PayPeriodStartDate  *time.Time // anchors work-period boundaries
	PayrollDueStartDate *time.Time // anchors payment dates
}

// Configured reports whether the config is complete enough to generate
// periods.
func (c PayrollConfig) Configured() bool {
	return c.PayFrequency != nil && c.PayPeriodStartDate != nil && c.PayrollDueStartDate != nil
}
