package schedule

import (
	"context"
	"time"
)

// WorkScheduleRepository defines data access for schedule versions.
type WorkScheduleRepository interface {
	// Create inserts a schedule with its day rows
	Create(ctx context.Context, schedule WorkSchedule) (WorkSchedule, error)

	// GetByID retrieves a schedule including its day rows
	GetByID(ctx context.Context, id string, companyID string) (WorkSchedule, error)

	// List retrieves every schedule version for a company
	List(ctx context.Context, companyID string) ([]WorkSchedule, error)

	// GetForEmployeeDate resolves the schedule effective for an employee on
	// a date through the assignment table. Returns ErrWorkScheduleNotFound
	// when no assignment covers the date.
	GetForEmployeeDate(ctx context.Context, employeeID string, date time.Time, companyID string) (WorkSchedule, error)
}

// ScheduleAssignmentRepository defines data access for employee-schedule
// assignments.
type ScheduleAssignmentRepository interface {
	// Create inserts an assignment
	Create(ctx context.Context, assignment EmployeeScheduleAssignment) (EmployeeScheduleAssignment, error)

	// ListByEmployee retrieves assignments for an employee, newest first
	ListByEmployee(ctx context.Context, employeeID string) ([]EmployeeScheduleAssignment, error)

	// GetOpenEnded retrieves the employee's open-ended assignment, if any
	GetOpenEnded(ctx context.Context, employeeID string) (*EmployeeScheduleAssignment, error)

	// CloseAssignment sets an assignment's end date
	CloseAssignment(ctx context.Context, id string, endDate time.Time) error
}

// ScheduleService defines business logic for schedules and assignments.
type ScheduleService interface {
	CreateSchedule(ctx context.Context, req CreateWorkScheduleRequest) (WorkScheduleResponse, error)
	GetSchedule(ctx context.Context, id string) (WorkScheduleResponse, error)
	ListSchedules(ctx context.Context) ([]WorkScheduleResponse, error)
	AssignSchedule(ctx context.Context, req AssignScheduleRequest) (AssignmentResponse, error)
	ListAssignments(ctx context.Context, employeeID string) ([]AssignmentResponse, error)
}
