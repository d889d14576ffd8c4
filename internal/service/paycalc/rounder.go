package paycalc

import "time"

// RoundCheckIn rounds a raw check-in up to the next grid boundary. A time
// already on a boundary is unchanged; nil stays nil. The rounded value is a
// derived field used only for hour math, never a replacement for the raw
// punch.
func (p Policy) RoundCheckIn(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	rounded := snapDown(*t, p.RoundingGrid)
	if rounded.Equal(*t) {
		return &rounded
	}
	rounded = rounded.Add(p.RoundingGrid)
	return &rounded
}

// RoundCheckOut rounds a raw check-out down to the previous grid boundary.
// Together with RoundCheckIn this systematically shortens the paid interval
// at the margins.
func (p Policy) RoundCheckOut(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	rounded := snapDown(*t, p.RoundingGrid)
	return &rounded
}

// snapDown truncates a wall-clock time to the grid boundary at or before it.
// The grid divides an hour evenly, so snapping within the hour is exact
// regardless of the date or zone the time carries.
func snapDown(t time.Time, grid time.Duration) time.Time {
	gridMinutes := int(grid / time.Minute)
	minute := t.Minute() - t.Minute()%gridMinutes
	return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), minute, 0, 0, t.Location())
}
