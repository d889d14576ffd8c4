package leave

import "time"

// Leave type codes that feed statutory holiday eligibility.
const (
	TypeCodeVacation = "VAC"
	TypeCodeSick     = "SICK"
)

// LeaveRecord is a read-only input to the calculation core; requests and
// quotas are owned elsewhere.
type LeaveRecord struct {
	ID          string
	EmployeeID  string
	LeaveTypeID string
	StartDate   time.Time
	EndDate     time.Time
	DayCount    float64
	Status      string
}

// CoversDate reports whether the leave spans the given date.
func (l LeaveRecord) CoversDate(date time.Time) bool {
	return !date.Before(l.StartDate) && !date.After(l.EndDate)
}
