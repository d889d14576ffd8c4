package paycalc

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func buildWindow(days ...WindowDay) []WindowDay {
	base := time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC)
	window := make([]WindowDay, 0, 30)
	for i := 0; i < 30; i++ {
		if i < len(days) {
			days[i].Date = base.AddDate(0, 0, i)
			window = append(window, days[i])
			continue
		}
		window = append(window, WindowDay{
			Date:     base.AddDate(0, 0, i),
			Category: DayNone,
			Hours:    decimal.Zero,
		})
	}
	return window
}

func workedDays(n int, hours float64) []WindowDay {
	days := make([]WindowDay, n)
	for i := range days {
		days[i] = WindowDay{Category: DayWorked, Hours: decimal.NewFromFloat(hours)}
	}
	return days
}

func TestEntitlementFromWindow(t *testing.T) {
	policy := DefaultPolicy()

	t.Run("fifteen worked days qualify", func(t *testing.T) {
		got := policy.EntitlementFromWindow(buildWindow(workedDays(15, 8)...))

		assert.True(t, got.Eligible)
		assert.Equal(t, 15, got.DaysEligible)
		assert.Equal(t, 15, got.DaysWorked)
		assert.True(t, got.Hours.Equal(dec(8)), "got %s", got.Hours)
	})

	t.Run("fourteen eligible days do not qualify", func(t *testing.T) {
		got := policy.EntitlementFromWindow(buildWindow(workedDays(14, 8)...))

		assert.False(t, got.Eligible)
		assert.Equal(t, 14, got.DaysEligible)
		assert.True(t, got.Hours.IsZero())
	})

	t.Run("zero-hour leave days count toward eligibility only", func(t *testing.T) {
		days := append(workedDays(1, 7.5), make([]WindowDay, 14)...)
		for i := 1; i < 15; i++ {
			days[i] = WindowDay{Category: DayVacation, Hours: decimal.Zero}
		}
		got := policy.EntitlementFromWindow(buildWindow(days...))

		assert.True(t, got.Eligible)
		assert.Equal(t, 15, got.DaysEligible)
		assert.Equal(t, 1, got.DaysWorked)
		assert.True(t, got.Hours.Equal(dec(7.5)), "got %s", got.Hours)
	})

	t.Run("eligible days without hours yield zero", func(t *testing.T) {
		days := make([]WindowDay, 15)
		for i := range days {
			days[i] = WindowDay{Category: DayVacation, Hours: decimal.Zero}
		}
		got := policy.EntitlementFromWindow(buildWindow(days...))

		assert.False(t, got.Eligible)
		assert.Equal(t, 15, got.DaysEligible)
		assert.Equal(t, 0, got.DaysWorked)
		assert.True(t, got.Hours.IsZero())
	})

	t.Run("average rounds up to the quarter hour", func(t *testing.T) {
		days := append(workedDays(1, 7.01), make([]WindowDay, 14)...)
		for i := 1; i < 15; i++ {
			days[i] = WindowDay{Category: DaySickLeave, Hours: decimal.Zero}
		}
		got := policy.EntitlementFromWindow(buildWindow(days...))

		assert.True(t, got.Eligible)
		assert.True(t, got.Hours.Equal(dec(7.25)), "got %s", got.Hours)
	})

	t.Run("mixed categories average over contributing days", func(t *testing.T) {
		days := workedDays(10, 8)
		for i := 0; i < 4; i++ {
			days = append(days, WindowDay{Category: DayVacation, Hours: dec(8)})
		}
		days = append(days, WindowDay{Category: DayPastHoliday, Hours: dec(4)})
		got := policy.EntitlementFromWindow(buildWindow(days...))

		assert.True(t, got.Eligible)
		assert.Equal(t, 15, got.DaysEligible)
		assert.Equal(t, 15, got.DaysWorked)
		// (14*8 + 4) / 15 = 7.7333... rounds up to 7.75
		assert.True(t, got.Hours.Equal(dec(7.75)), "got %s", got.Hours)
	})
}

func TestRoundUpHours(t *testing.T) {
	policy := DefaultPolicy()

	tests := []struct {
		input    float64
		expected float64
	}{
		{7.01, 7.25},
		{7.25, 7.25},
		{7.26, 7.5},
		{0, 0},
		{7.999, 8},
	}
	for _, tt := range tests {
		got := policy.RoundUpHours(decimal.NewFromFloat(tt.input))
		assert.True(t, got.Equal(decimal.NewFromFloat(tt.expected)),
			"%v: got %s, want %v", tt.input, got, tt.expected)
	}
}

func TestDayCategoryCounts(t *testing.T) {
	assert.False(t, DayNone.Counts())
	for _, c := range []DayCategory{DayWorked, DaySickFromAttendance, DayVacation, DaySickLeave, DayPastHoliday} {
		assert.True(t, c.Counts(), c.String())
	}
}
