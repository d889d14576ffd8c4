package payroll

import (
	"sort"
	"strings"
	"time"

	"github.com/pacificpay/pacificpay-backend-go/internal/domain/company"
	"github.com/pacificpay/pacificpay-backend-go/internal/domain/payroll"
)

// Generation reaches back before the year boundary so a period paid in
// January of the requested year is captured even when its work dates sit
// entirely in the prior year.
const (
	biWeeklySearchBackDays = 21
	maxGeneratedPeriods    = 40
)

// PeriodsForYear generates the pay periods whose payment date falls within
// the requested year, numbered in ascending payment-date order. Periods are
// recomputed on every call; an incomplete or unrecognized configuration
// yields an empty list, which callers must read as "not configured".
func PeriodsForYear(cfg company.PayrollConfig, year int) []payroll.PayPeriod {
	if !cfg.Configured() {
		return []payroll.PayPeriod{}
	}

	var periods []payroll.PayPeriod
	switch NormalizeFrequency(*cfg.PayFrequency) {
	case company.FrequencyBiWeekly:
		periods = biWeeklyPeriods(*cfg.PayPeriodStartDate, *cfg.PayrollDueStartDate, year)
	case company.FrequencyBiMonthly:
		periods = biMonthlyPeriods(year)
	case company.FrequencyMonthly:
		periods = monthlyPeriods(*cfg.PayPeriodStartDate, *cfg.PayrollDueStartDate, year)
	default:
		return []payroll.PayPeriod{}
	}

	sort.Slice(periods, func(i, j int) bool {
		return periods[i].PaymentDate.Before(periods[j].PaymentDate)
	})
	for i := range periods {
		periods[i].PeriodNumber = i + 1
		periods[i].Year = year
	}
	return periods
}

// NormalizeFrequency resolves a stored frequency string by substring match,
// tolerating descriptive suffixes. Bi-monthly is tested before monthly
// because "bi-monthly" contains "monthly".
func NormalizeFrequency(freq string) string {
	f := strings.ToLower(strings.TrimSpace(freq))
	f = strings.ReplaceAll(f, "_", "-")
	switch {
	case strings.Contains(f, "bi-weekly") || strings.Contains(f, "biweekly"):
		return company.FrequencyBiWeekly
	case strings.Contains(f, "bi-monthly") || strings.Contains(f, "bimonthly"):
		return company.FrequencyBiMonthly
	case strings.Contains(f, "monthly"):
		return company.FrequencyMonthly
	default:
		return ""
	}
}

// biWeeklyPeriods tiles fixed 14-day windows anchored at the period start
// date. Each window's payment is the first date of the 14-day payment
// cadence, anchored at the due start date, strictly after the window ends.
func biWeeklyPeriods(periodAnchor, dueAnchor time.Time, year int) []payroll.PayPeriod {
	periodAnchor = atMidnight(periodAnchor)
	dueAnchor = atMidnight(dueAnchor)

	searchFrom := time.Date(year-1, time.December, 31, 0, 0, 0, 0, time.UTC).
		AddDate(0, 0, -biWeeklySearchBackDays)
	start := tileFloor(periodAnchor, searchFrom, 14)

	var periods []payroll.PayPeriod
	for len(periods) < maxGeneratedPeriods {
		end := start.AddDate(0, 0, 13)
		payment := cadenceAfter(dueAnchor, end, 14)

		if payment.Year() > year {
			break
		}
		if payment.Year() == year {
			periods = append(periods, payroll.PayPeriod{
				StartDate:   start,
				EndDate:     end,
				PaymentDate: payment,
			})
		}
		start = start.AddDate(0, 0, 14)
	}
	return periods
}

// monthlyPeriods anchors each window to the anchor's day-of-month, clipping
// to the last day of shorter months. Payment is the first monthly cadence
// date, on the due anchor's day-of-month, strictly after the window ends.
func monthlyPeriods(periodAnchor, dueAnchor time.Time, year int) []payroll.PayPeriod {
	anchorDay := periodAnchor.Day()
	dueDay := dueAnchor.Day()

	// Two months of search window before the year boundary: a window ending
	// late in December can pay in mid-January when the due day is early in
	// the month.
	cursor := time.Date(year-1, time.November, 1, 0, 0, 0, 0, time.UTC)

	var periods []payroll.PayPeriod
	for len(periods) < maxGeneratedPeriods {
		start := clampToMonth(cursor.Year(), cursor.Month(), anchorDay)
		next := cursor.AddDate(0, 1, 0)
		end := clampToMonth(next.Year(), next.Month(), anchorDay).AddDate(0, 0, -1)
		payment := monthlyCadenceAfter(end, dueDay)

		if payment.Year() > year {
			break
		}
		if payment.Year() == year {
			periods = append(periods, payroll.PayPeriod{
				StartDate:   start,
				EndDate:     end,
				PaymentDate: payment,
			})
		}
		cursor = next
	}
	return periods
}

// biMonthlyPeriods alternates fixed windows of the 11th-25th and the
// 26th-10th of the next month, independent of the anchors. The window
// ending the 25th pays month-end; the window ending the 10th pays the 15th.
func biMonthlyPeriods(year int) []payroll.PayPeriod {
	// Dec 11 of the prior year: the first window whose payment can land in
	// the requested year.
	cursorYear, cursorMonth := year-1, time.December

	var periods []payroll.PayPeriod
	for len(periods) < maxGeneratedPeriods {
		first := payroll.PayPeriod{
			StartDate:   time.Date(cursorYear, cursorMonth, 11, 0, 0, 0, 0, time.UTC),
			EndDate:     time.Date(cursorYear, cursorMonth, 25, 0, 0, 0, 0, time.UTC),
			PaymentDate: lastDayOfMonth(cursorYear, cursorMonth),
		}

		nextMonth := first.StartDate.AddDate(0, 1, 0)
		second := payroll.PayPeriod{
			StartDate:   time.Date(cursorYear, cursorMonth, 26, 0, 0, 0, 0, time.UTC),
			EndDate:     time.Date(nextMonth.Year(), nextMonth.Month(), 10, 0, 0, 0, 0, time.UTC),
			PaymentDate: time.Date(nextMonth.Year(), nextMonth.Month(), 15, 0, 0, 0, 0, time.UTC),
		}

		done := false
		for _, p := range []payroll.PayPeriod{first, second} {
			if p.PaymentDate.Year() > year {
				done = true
				break
			}
			if p.PaymentDate.Year() == year {
				periods = append(periods, p)
			}
		}
		if done {
			break
		}

		cursorYear, cursorMonth = nextMonth.Year(), nextMonth.Month()
	}
	return periods
}

// tileFloor returns the latest tile boundary at or before the target, where
// boundaries sit every stepDays from the anchor in both directions.
func tileFloor(anchor, target time.Time, stepDays int) time.Time {
	days := daysBetween(anchor, target)
	steps := floorDiv(days, stepDays)
	return anchor.AddDate(0, 0, steps*stepDays)
}

// cadenceAfter returns the first cadence date strictly after the given
// date, where the cadence runs every stepDays from the anchor.
func cadenceAfter(anchor, after time.Time, stepDays int) time.Time {
	days := daysBetween(anchor, after)
	steps := floorDiv(days, stepDays) + 1
	return anchor.AddDate(0, 0, steps*stepDays)
}

// monthlyCadenceAfter returns the first date on the given day-of-month
// (clipped per month) strictly after the given date.
func monthlyCadenceAfter(after time.Time, day int) time.Time {
	candidate := clampToMonth(after.Year(), after.Month(), day)
	for !candidate.After(after) {
		next := time.Date(candidate.Year(), candidate.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, 1, 0)
		candidate = clampToMonth(next.Year(), next.Month(), day)
	}
	return candidate
}

// clampToMonth builds a date on the given day, clipped to the month's last
// day when the day does not exist in that month.
func clampToMonth(year int, month time.Month, day int) time.Time {
	last := lastDayOfMonth(year, month)
	if day > last.Day() {
		return last
	}
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func lastDayOfMonth(year int, month time.Month) time.Time {
	return time.Date(year, month, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 1, -1)
}

func atMidnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func daysBetween(from, to time.Time) int {
	return int(atMidnight(to).Sub(atMidnight(from)).Hours() / 24)
}

// floorDiv divides rounding toward negative infinity, so tiling works on
// both sides of the anchor.
func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}
