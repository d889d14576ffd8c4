package employee

import "time"

// Employment is the employment state of an employee as of a date. Master
// data (names, positions, contracts) is owned elsewhere; the calculation
// core reads only the flags that change pay classification.
type Employment struct {
	EmployeeID    string
	CompanyID     string
	StartDate     time.Time
	EndDate       *time.Time
	IsDriver      bool
	CountAllOT    bool
	IsUnionMember bool
}

// DaysEmployedBy returns whole calendar days between the employment start
// and the given date.
func (e Employment) DaysEmployedBy(date time.Time) int {
	return int(date.Sub(e.StartDate).Hours() / 24)
}
