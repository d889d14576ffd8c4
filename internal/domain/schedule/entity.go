package schedule

import "time"

// WorkSchedule holds a start/end time-of-day pair for each of the seven
// weekdays. Schedules are never edited in place; a change is a new row so
// history stays attributable to the schedule that produced it.
type WorkSchedule struct {
	ID        string
	CompanyID string
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time

	Days []WorkScheduleDay
}

// WorkScheduleDay is one weekday's working window. Both times nil means a
// non-working day.
type WorkScheduleDay struct {
	ID             string
	WorkScheduleID string
	Weekday        time.Weekday
	StartTime      *time.Time
	EndTime        *time.Time
}

// DayTimes returns the schedule window for a weekday, or (nil, nil) for a
// non-working day.
func (s WorkSchedule) DayTimes(weekday time.Weekday) (*time.Time, *time.Time) {
	for _, d := range s.Days {
		if d.Weekday == weekday {
			return d.StartTime, d.EndTime
		}
	}
	return nil, nil
}

// WeekdayStart returns the first non-nil start time looked up Monday through
// Friday. It anchors weekend shifts that have no native window.
func (s WorkSchedule) WeekdayStart() *time.Time {
	for wd := time.Monday; wd <= time.Friday; wd++ {
		if start, _ := s.DayTimes(wd); start != nil {
			return start
		}
	}
	return nil
}

// EmployeeScheduleAssignment binds an employee to a schedule for an
// effective-date range. EndDate nil means open-ended. At most one assignment
// is effective for an employee on any given date.
type EmployeeScheduleAssignment struct {
	ID             string
	EmployeeID     string
	WorkScheduleID string
	EffectiveDate  time.Time
	EndDate        *time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// CoversDate reports whether the assignment is effective on the given date.
func (a EmployeeScheduleAssignment) CoversDate(date time.Time) bool {
	if date.Before(a.EffectiveDate) {
		return false
	}
	return a.EndDate == nil || !date.After(*a.EndDate)
}
