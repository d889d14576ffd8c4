package paycalc

import (
	"time"

	"github.com/pacificpay/pacificpay-backend-go/internal/config"
)

// Policy carries the regulated calculation constants. Values come from
// configuration; the defaults model the BC ESA statutory holiday test
// (worked 15 of the preceding 30 calendar days) and a quarter-hour payroll
// grid.
type Policy struct {
	RoundingGrid       time.Duration
	MinOvertime        time.Duration
	DriverDailyRegular time.Duration
	StatWindowDays     int
	StatMinEligible    int
	EntitlementRound   time.Duration
}

// NewPolicy builds a Policy from loaded configuration.
func NewPolicy(cfg config.PolicyConfig) Policy {
	return Policy{
		RoundingGrid:       time.Duration(cfg.RoundingGridMinutes) * time.Minute,
		MinOvertime:        time.Duration(cfg.MinOvertimeMinutes) * time.Minute,
		DriverDailyRegular: time.Duration(cfg.DriverDailyRegularHours) * time.Hour,
		StatWindowDays:     cfg.StatWindowDays,
		StatMinEligible:    cfg.StatMinEligibleDays,
		EntitlementRound:   time.Duration(cfg.EntitlementRoundMinutes) * time.Minute,
	}
}

// DefaultPolicy returns the policy with the documented defaults. Used by
// tests and as a fallback.
func DefaultPolicy() Policy {
	return Policy{
		RoundingGrid:       15 * time.Minute,
		MinOvertime:        30 * time.Minute,
		DriverDailyRegular: 10 * time.Hour,
		StatWindowDays:     30,
		StatMinEligible:    15,
		EntitlementRound:   15 * time.Minute,
	}
}
