package attendance

import (
	"context"
	"time"
)

// AttendanceRepository defines data access methods for attendance records.
// All methods include companyID parameter to prevent cross-company data access.
type AttendanceRepository interface {
	// Create inserts a new record. A unique-key violation on
	// (employee_id, date) surfaces as ErrAttendanceExists.
	Create(ctx context.Context, attendance Attendance) (Attendance, error)

	// GetByID retrieves attendance by ID with company isolation
	GetByID(ctx context.Context, id string, companyID string) (Attendance, error)

	// GetByEmployeeAndDate retrieves attendance for specific employee on specific date
	GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time, companyID string) (*Attendance, error)

	// ListForPeriod retrieves every record for an employee in [start, end],
	// ordered by date. Used by the entitlement window and recalculation.
	ListForPeriod(ctx context.Context, employeeID string, start, end time.Time, companyID string) ([]Attendance, error)

	// ListRange retrieves every record in [start, end] for the company,
	// optionally restricted to one employee. Used by bulk operations.
	ListRange(ctx context.Context, employeeID *string, start, end time.Time, companyID string) ([]Attendance, error)

	// List retrieves attendance records with filters and pagination
	List(ctx context.Context, filter AttendanceFilter, companyID string) ([]Attendance, int64, error)

	// Update rewrites the full mutable state of an existing record
	Update(ctx context.Context, attendance Attendance) error

	// Delete hard-deletes a single record
	Delete(ctx context.Context, id string, companyID string) error

	// DeleteRange hard-deletes every record in [start, end], optionally
	// restricted to one employee. Returns the number of rows removed.
	DeleteRange(ctx context.Context, employeeID *string, start, end time.Time, companyID string) (int64, error)
}
