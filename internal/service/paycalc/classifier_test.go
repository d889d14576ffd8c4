package paycalc

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	monday   = time.Date(2025, time.June, 2, 0, 0, 0, 0, time.UTC)
	saturday = time.Date(2025, time.June, 7, 0, 0, 0, 0, time.UTC)
)

func dec(f float64) decimal.Decimal {
	return decimal.NewFromFloat(f)
}

func weekdayInput(in, out *time.Time) ClassifyInput {
	return ClassifyInput{
		RoundedCheckIn:  in,
		RoundedCheckOut: out,
		ScheduleStart:   clock(7, 0, 0),
		ScheduleEnd:     clock(15, 0, 0),
		Date:            monday,
	}
}

func TestClassifyHoursWeekday(t *testing.T) {
	policy := DefaultPolicy()

	tests := []struct {
		name            string
		input           ClassifyInput
		regular         decimal.Decimal
		overtime        decimal.Decimal
		weekendOvertime decimal.Decimal
	}{
		{
			name:    "exact scheduled shift is all regular",
			input:   weekdayInput(clock(7, 0, 0), clock(15, 0, 0)),
			regular: dec(8),
		},
		{
			name:    "short day stays regular",
			input:   weekdayInput(clock(9, 0, 0), clock(13, 30, 0)),
			regular: dec(4.5),
		},
		{
			name:     "overage past the floor splits",
			input:    weekdayInput(clock(7, 0, 0), clock(16, 0, 0)),
			regular:  dec(8),
			overtime: dec(1),
		},
		{
			name:    "overage under the floor is paid as regular",
			input:   weekdayInput(clock(7, 0, 0), clock(15, 15, 0)),
			regular: dec(8.25),
		},
		{
			name: "count-all-ot disables the floor",
			input: func() ClassifyInput {
				in := weekdayInput(clock(7, 0, 0), clock(15, 15, 0))
				in.CountAllOT = true
				return in
			}(),
			regular:  dec(8),
			overtime: dec(0.25),
		},
		{
			name: "driver ceiling raises the split point",
			input: func() ClassifyInput {
				in := weekdayInput(clock(7, 0, 0), clock(16, 30, 0))
				in.IsDriver = true
				return in
			}(),
			regular: dec(9.5),
		},
		{
			name: "driver past the ceiling earns overtime",
			input: func() ClassifyInput {
				in := weekdayInput(clock(6, 0, 0), clock(17, 0, 0))
				in.IsDriver = true
				return in
			}(),
			regular:  dec(10),
			overtime: dec(1),
		},
		{
			name: "missing schedule degrades to all regular",
			input: ClassifyInput{
				RoundedCheckIn:  clock(7, 0, 0),
				RoundedCheckOut: clock(16, 0, 0),
				Date:            monday,
			},
			regular: dec(9),
		},
		{
			name:  "missing punch yields zeros",
			input: weekdayInput(nil, clock(15, 0, 0)),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := policy.ClassifyHours(tt.input)

			want := Breakdown{
				Regular:         tt.regular,
				Overtime:        tt.overtime,
				WeekendOvertime: tt.weekendOvertime,
			}
			assert.True(t, got.Regular.Equal(want.Regular), "regular: got %s, want %s", got.Regular, want.Regular)
			assert.True(t, got.Overtime.Equal(want.Overtime), "overtime: got %s, want %s", got.Overtime, want.Overtime)
			assert.True(t, got.WeekendOvertime.Equal(want.WeekendOvertime), "weekend: got %s, want %s", got.WeekendOvertime, want.WeekendOvertime)
		})
	}
}

func TestClassifyHoursWeekend(t *testing.T) {
	policy := DefaultPolicy()

	t.Run("weekend hours are all weekend overtime", func(t *testing.T) {
		got := policy.ClassifyHours(ClassifyInput{
			RoundedCheckIn:       clock(9, 0, 0),
			RoundedCheckOut:      clock(15, 0, 0),
			Date:                 saturday,
			WeekdayScheduleStart: clock(7, 0, 0),
		})
		assert.True(t, got.Regular.IsZero())
		assert.True(t, got.Overtime.IsZero())
		assert.True(t, got.WeekendOvertime.Equal(dec(6)), "got %s", got.WeekendOvertime)
	})

	t.Run("overnight weekend shift stays positive", func(t *testing.T) {
		// Checked in 21:00, out 05:00 the next morning. Measured on the 24h
		// clock anchored at the weekday start, the span is 8 hours.
		got := policy.ClassifyHours(ClassifyInput{
			RoundedCheckIn:       clock(21, 0, 0),
			RoundedCheckOut:      clock(5, 0, 0),
			Date:                 saturday,
			WeekdayScheduleStart: clock(7, 0, 0),
		})
		assert.True(t, got.WeekendOvertime.Equal(dec(8)), "got %s", got.WeekendOvertime)
	})

	t.Run("missing anchor falls back to midnight", func(t *testing.T) {
		got := policy.ClassifyHours(ClassifyInput{
			RoundedCheckIn:  clock(9, 0, 0),
			RoundedCheckOut: clock(15, 0, 0),
			Date:            saturday,
		})
		assert.True(t, got.WeekendOvertime.Equal(dec(6)), "got %s", got.WeekendOvertime)
	})
}

// The three buckets must always sum to the elapsed rounded hours, whatever
// combination of flags produced the split.
func TestClassifyHoursConservation(t *testing.T) {
	policy := DefaultPolicy()

	inputs := []ClassifyInput{
		weekdayInput(clock(7, 0, 0), clock(15, 0, 0)),
		weekdayInput(clock(7, 0, 0), clock(15, 15, 0)),
		weekdayInput(clock(7, 0, 0), clock(16, 0, 0)),
		weekdayInput(clock(6, 0, 0), clock(18, 45, 0)),
	}
	for i := range inputs {
		in := inputs[i]
		elapsed := hoursBetween(*in.RoundedCheckIn, *in.RoundedCheckOut, nil)

		for _, driver := range []bool{false, true} {
			for _, countAll := range []bool{false, true} {
				in.IsDriver = driver
				in.CountAllOT = countAll
				got := policy.ClassifyHours(in)

				sum := got.Regular.Add(got.Overtime).Add(got.WeekendOvertime)
				assert.True(t, sum.Equal(elapsed),
					"driver=%v countAll=%v: %s+%s+%s != %s",
					driver, countAll, got.Regular, got.Overtime, got.WeekendOvertime, elapsed)
			}
		}
	}
}

// A raw 06:58:40-15:07:12 punch pair on a 07:00-15:00 schedule rounds to the
// scheduled window exactly and pays 8.0 regular hours.
func TestRoundThenClassify(t *testing.T) {
	policy := DefaultPolicy()

	in := policy.RoundCheckIn(clock(6, 58, 40))
	out := policy.RoundCheckOut(clock(15, 7, 12))
	require.NotNil(t, in)
	require.NotNil(t, out)

	got := policy.ClassifyHours(weekdayInput(in, out))
	assert.True(t, got.Regular.Equal(dec(8)), "got %s", got.Regular)
	assert.True(t, got.Overtime.IsZero())
	assert.True(t, got.WeekendOvertime.IsZero())
}

func TestScheduledHours(t *testing.T) {
	assert.True(t, ScheduledHours(clock(7, 0, 0), clock(15, 0, 0)).Equal(dec(8)))
	assert.True(t, ScheduledHours(nil, clock(15, 0, 0)).IsZero())
	assert.True(t, ScheduledHours(clock(7, 0, 0), nil).IsZero())
}
