package paycalc

import (
	"time"

	"github.com/shopspring/decimal"
)

// DayCategory classifies one day of the trailing eligibility window.
type DayCategory int

const (
	DayNone DayCategory = iota
	DayWorked
	DaySickFromAttendance
	DayVacation
	DaySickLeave
	DayPastHoliday
)

// Counts reports whether the category counts toward eligibility.
func (c DayCategory) Counts() bool {
	return c != DayNone
}

func (c DayCategory) String() string {
	switch c {
	case DayWorked:
		return "worked"
	case DaySickFromAttendance:
		return "sick_from_attendance"
	case DayVacation:
		return "vacation"
	case DaySickLeave:
		return "sick_leave"
	case DayPastHoliday:
		return "past_holiday"
	default:
		return "none"
	}
}

// WindowDay is one classified day of the eligibility window with the hours
// it contributes to the average.
type WindowDay struct {
	Date     time.Time
	Category DayCategory
	Hours    decimal.Decimal
}

// EntitlementOutcome is the result of the eligibility test and averaging.
// Ineligibility is a valid terminal result with zero hours, never an error.
type EntitlementOutcome struct {
	Eligible     bool
	Reason       string
	DaysEligible int
	DaysWorked   int
	TotalHours   decimal.Decimal
	Hours        decimal.Decimal
}

// Ineligible builds a zero-hours outcome with the failed gate named.
func Ineligible(reason string) EntitlementOutcome {
	return EntitlementOutcome{
		Eligible: false,
		Reason:   reason,
		Hours:    decimal.Zero,
	}
}

// EntitlementFromWindow applies the eligibility test to a classified window
// and computes the paid entitlement: at least StatMinEligible contributing
// days and at least one day with non-zero hours, then the average daily
// hours rounded up to the entitlement grid.
//
// Vacation and sick-leave days count toward eligibility even when the
// schedule lookup yielded zero hours for them; only days with hours enter
// the average's divisor.
func (p Policy) EntitlementFromWindow(window []WindowDay) EntitlementOutcome {
	daysEligible := 0
	daysWorked := 0
	total := decimal.Zero

	for _, day := range window {
		if !day.Category.Counts() {
			continue
		}
		daysEligible++
		if day.Hours.GreaterThan(decimal.Zero) {
			daysWorked++
			total = total.Add(day.Hours)
		}
	}

	outcome := EntitlementOutcome{
		DaysEligible: daysEligible,
		DaysWorked:   daysWorked,
		TotalHours:   total,
		Hours:        decimal.Zero,
	}

	if daysEligible < p.StatMinEligible {
		outcome.Reason = "insufficient eligible days in window"
		return outcome
	}
	if daysWorked < 1 {
		outcome.Reason = "no days with hours in window"
		return outcome
	}

	average := total.Div(decimal.NewFromInt(int64(daysWorked)))
	outcome.Eligible = true
	outcome.Hours = p.RoundUpHours(average)
	return outcome
}

// RoundUpHours rounds hours up to the entitlement grid (quarter hours by
// default). An exact multiple is unchanged.
func (p Policy) RoundUpHours(hours decimal.Decimal) decimal.Decimal {
	step := durationHours(p.EntitlementRound)
	return hours.Div(step).Ceil().Mul(step)
}
