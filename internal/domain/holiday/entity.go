package holiday

import "time"

// HolidayEntry marks a date as a statutory holiday for a company. UnionOnly
// entries apply only to union-member employees.
type HolidayEntry struct {
	ID        string
	CompanyID string
	Date      time.Time
	Name      string
	Active    bool
	UnionOnly bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
