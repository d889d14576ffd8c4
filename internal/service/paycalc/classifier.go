package paycalc

import (
	"time"

	"github.com/shopspring/decimal"
)

// ClassifyInput is one day's worth of classification context. Times are
// rounded punches; raw punches never enter hour math.
type ClassifyInput struct {
	RoundedCheckIn  *time.Time
	RoundedCheckOut *time.Time
	ScheduleStart   *time.Time
	ScheduleEnd     *time.Time
	Date            time.Time
	IsDriver        bool
	CountAllOT      bool

	// First non-nil weekday start, looked up Monday through Friday. Weekend
	// shifts are measured on a 24h clock anchored here so a span that
	// crosses midnight stays positive.
	WeekdayScheduleStart *time.Time
}

// Breakdown splits one day's elapsed time into pay classifications. The
// three buckets always sum to the elapsed rounded hours.
type Breakdown struct {
	Regular         decimal.Decimal
	Overtime        decimal.Decimal
	WeekendOvertime decimal.Decimal
}

// ZeroBreakdown is the classification of a day without a complete punch pair.
func ZeroBreakdown() Breakdown {
	return Breakdown{
		Regular:         decimal.Zero,
		Overtime:        decimal.Zero,
		WeekendOvertime: decimal.Zero,
	}
}

// ClassifyHours splits the elapsed time between a rounded punch pair into
// regular, overtime and weekend-overtime hours.
//
// Weekdays split at the scheduled shift length; a driver's daily regular
// ceiling can raise the split point. Overtime under the policy floor is paid
// as regular unless CountAllOT is set. Saturday and Sunday hours are all
// weekend overtime. A missing schedule degrades to all-regular rather than
// failing.
func (p Policy) ClassifyHours(in ClassifyInput) Breakdown {
	out := ZeroBreakdown()

	if in.RoundedCheckIn == nil || in.RoundedCheckOut == nil {
		return out
	}

	weekday := in.Date.Weekday()
	if weekday == time.Saturday || weekday == time.Sunday {
		out.WeekendOvertime = hoursBetween(*in.RoundedCheckIn, *in.RoundedCheckOut, in.WeekdayScheduleStart)
		return out
	}

	elapsed := hoursBetween(*in.RoundedCheckIn, *in.RoundedCheckOut, nil)

	if in.ScheduleStart == nil || in.ScheduleEnd == nil {
		// No window to compare against; everything is regular.
		out.Regular = elapsed
		return out
	}

	limit := hoursBetween(*in.ScheduleStart, *in.ScheduleEnd, nil)
	if in.IsDriver {
		driverLimit := durationHours(p.DriverDailyRegular)
		if driverLimit.GreaterThan(limit) {
			limit = driverLimit
		}
	}

	if elapsed.LessThanOrEqual(limit) {
		out.Regular = elapsed
		return out
	}

	overtime := elapsed.Sub(limit)
	if !in.CountAllOT && overtime.LessThan(durationHours(p.MinOvertime)) {
		// Trivial overage is paid, but at the regular classification.
		out.Regular = elapsed
		return out
	}

	out.Regular = limit
	out.Overtime = overtime
	return out
}

// ScheduledHours returns the scheduled window length in hours, zero for an
// unscheduled day.
func ScheduledHours(start, end *time.Time) decimal.Decimal {
	if start == nil || end == nil {
		return decimal.Zero
	}
	return hoursBetween(*start, *end, nil)
}

// hoursBetween measures the wall-clock span from start to end in hours. The
// span is read on a 24h cycle beginning at the anchor (midnight when nil),
// so an end before its start means the shift crossed midnight.
func hoursBetween(start, end time.Time, anchor *time.Time) decimal.Decimal {
	startMin := minutesFromAnchor(start, anchor)
	endMin := minutesFromAnchor(end, anchor)

	span := endMin - startMin
	if span < 0 {
		span += 24 * 60
	}
	return decimal.NewFromInt(int64(span)).Div(decimal.NewFromInt(60))
}

func minutesFromAnchor(t time.Time, anchor *time.Time) int {
	base := 0
	if anchor != nil {
		base = anchor.Hour()*60 + anchor.Minute()
	}
	m := t.Hour()*60 + t.Minute() - base
	if m < 0 {
		m += 24 * 60
	}
	return m
}

func durationHours(d time.Duration) decimal.Decimal {
	return decimal.NewFromInt(int64(d / time.Minute)).Div(decimal.NewFromInt(60))
}
