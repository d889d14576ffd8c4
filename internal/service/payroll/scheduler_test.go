package payroll

import (
	"testing"
	"time"

	"github.com/pacificpay/pacificpay-backend-go/internal/domain/company"
	"github.com/pacificpay/pacificpay-backend-go/internal/domain/payroll"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func strPtr(s string) *string       { return &s }
func datePtr(t time.Time) *time.Time { return &t }

func testConfig(freq string, periodStart, dueStart time.Time) company.PayrollConfig {
	return company.PayrollConfig{
		CompanyID:           "company-1",
		PayFrequency:        strPtr(freq),
		PayPeriodStartDate:  datePtr(periodStart),
		PayrollDueStartDate: datePtr(dueStart),
	}
}

func assertWellFormed(t *testing.T, periods []payroll.PayPeriod, year int) {
	t.Helper()
	for i, p := range periods {
		assert.Equal(t, i+1, p.PeriodNumber, "period numbers must be ascending from 1")
		assert.Equal(t, year, p.Year)
		assert.Equal(t, year, p.PaymentDate.Year(), "payment date outside requested year")
		assert.True(t, p.PaymentDate.After(p.EndDate), "payment must fall strictly after the period end")
		assert.False(t, p.EndDate.Before(p.StartDate))
		if i > 0 {
			assert.True(t, periods[i-1].PaymentDate.Before(p.PaymentDate), "payment dates must be strictly increasing")
		}
	}
}

func TestNormalizeFrequency(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"bi-weekly", company.FrequencyBiWeekly},
		{"Biweekly", company.FrequencyBiWeekly},
		{"bi-weekly (every second Friday)", company.FrequencyBiWeekly},
		{"bi_weekly", company.FrequencyBiWeekly},
		{"bi-monthly", company.FrequencyBiMonthly},
		{"Bimonthly payout", company.FrequencyBiMonthly},
		{"monthly", company.FrequencyMonthly},
		{"Monthly (last business day)", company.FrequencyMonthly},
		{"weekly", ""},
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.expected, NormalizeFrequency(tt.input), "input %q", tt.input)
	}
}

func TestPeriodsForYearUnconfigured(t *testing.T) {
	assert.Empty(t, PeriodsForYear(company.PayrollConfig{}, 2025))

	cfg := testConfig("bi-weekly", date(2024, time.December, 30), date(2025, time.January, 10))
	cfg.PayrollDueStartDate = nil
	assert.Empty(t, PeriodsForYear(cfg, 2025))

	cfg = testConfig("every friday", date(2024, time.December, 30), date(2025, time.January, 10))
	assert.Empty(t, PeriodsForYear(cfg, 2025))
}

func TestBiWeeklyPeriods(t *testing.T) {
	cfg := testConfig("bi-weekly", date(2024, time.December, 30), date(2025, time.January, 10))
	periods := PeriodsForYear(cfg, 2025)

	require.NotEmpty(t, periods)
	assertWellFormed(t, periods, 2025)

	// Every 14-day payment cadence date of the year carries one period.
	assert.Len(t, periods, 26)

	first := periods[0]
	assert.Equal(t, date(2024, time.December, 16), first.StartDate)
	assert.Equal(t, date(2024, time.December, 29), first.EndDate)
	assert.Equal(t, date(2025, time.January, 10), first.PaymentDate)

	for i, p := range periods {
		assert.Equal(t, 14, p.DurationDays(), "period %d is not 14 days", i+1)
		if i > 0 {
			assert.Equal(t, periods[i-1].EndDate.AddDate(0, 0, 1), p.StartDate, "periods must tile without gaps")
		}
	}
}

func TestBiWeeklyAnchorDrift(t *testing.T) {
	// An anchor far in the past still tiles onto the same grid.
	cfg := testConfig("bi-weekly", date(2022, time.March, 7), date(2022, time.March, 18))
	periods := PeriodsForYear(cfg, 2025)

	require.NotEmpty(t, periods)
	assertWellFormed(t, periods, 2025)
	for _, p := range periods {
		assert.Equal(t, 14, p.DurationDays())
		// Start dates stay on the anchor's 14-day grid.
		diff := int(p.StartDate.Sub(date(2022, time.March, 7)).Hours() / 24)
		assert.Zero(t, diff%14, "start %v is off the anchor grid", p.StartDate)
	}
}

func TestMonthlyPeriods(t *testing.T) {
	cfg := testConfig("monthly", date(2025, time.January, 1), date(2025, time.January, 28))
	periods := PeriodsForYear(cfg, 2025)

	require.Len(t, periods, 12)
	assertWellFormed(t, periods, 2025)

	first := periods[0]
	assert.Equal(t, date(2024, time.December, 1), first.StartDate)
	assert.Equal(t, date(2024, time.December, 31), first.EndDate)
	assert.Equal(t, date(2025, time.January, 28), first.PaymentDate)

	// Calendar months tile without gaps.
	for i := 1; i < len(periods); i++ {
		assert.Equal(t, periods[i-1].EndDate.AddDate(0, 0, 1), periods[i].StartDate)
	}
}

func TestMonthlyPeriodsClipShortMonths(t *testing.T) {
	cfg := testConfig("monthly", date(2025, time.January, 31), date(2025, time.January, 15))
	periods := PeriodsForYear(cfg, 2025)

	require.NotEmpty(t, periods)
	assertWellFormed(t, periods, 2025)

	// The window anchored on the 31st clips to Feb 28 in a non-leap year.
	var febStart *payroll.PayPeriod
	for i := range periods {
		if periods[i].StartDate.Month() == time.February {
			febStart = &periods[i]
			break
		}
	}
	require.NotNil(t, febStart, "no period starting in February")
	assert.Equal(t, date(2025, time.February, 28), febStart.StartDate)
	assert.Equal(t, date(2025, time.March, 30), febStart.EndDate)
	assert.Equal(t, date(2025, time.April, 15), febStart.PaymentDate)

	// The due day in mid-January is still captured at the year boundary.
	assert.Equal(t, date(2025, time.January, 15), periods[0].PaymentDate)
}

func TestBiMonthlyPeriods(t *testing.T) {
	// Anchors are ignored for bi-monthly; the windows are fixed.
	cfg := testConfig("bi-monthly", date(2025, time.January, 1), date(2025, time.January, 1))
	periods := PeriodsForYear(cfg, 2025)

	require.Len(t, periods, 24)
	assertWellFormed(t, periods, 2025)

	// First payment of the year: the Dec 26 - Jan 10 window pays Jan 15.
	first := periods[0]
	assert.Equal(t, date(2024, time.December, 26), first.StartDate)
	assert.Equal(t, date(2025, time.January, 10), first.EndDate)
	assert.Equal(t, date(2025, time.January, 15), first.PaymentDate)

	second := periods[1]
	assert.Equal(t, date(2025, time.January, 11), second.StartDate)
	assert.Equal(t, date(2025, time.January, 25), second.EndDate)
	assert.Equal(t, date(2025, time.January, 31), second.PaymentDate)

	// Windows alternate between mid-month and month-end payments all year.
	for i, p := range periods {
		if i%2 == 0 {
			assert.Equal(t, 15, p.PaymentDate.Day(), "period %d should pay on the 15th", i+1)
		} else {
			assert.Equal(t, p.PaymentDate, time.Date(p.PaymentDate.Year(), p.PaymentDate.Month()+1, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, -1),
				"period %d should pay at month end", i+1)
		}
	}

	// February's month-end payment lands on the 28th.
	var febPay *payroll.PayPeriod
	for i := range periods {
		p := periods[i]
		if p.PaymentDate.Month() == time.February && p.PaymentDate.Day() != 15 {
			febPay = &periods[i]
			break
		}
	}
	require.NotNil(t, febPay)
	assert.Equal(t, date(2025, time.February, 28), febPay.PaymentDate)
}
