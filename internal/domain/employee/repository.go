package employee

import (
	"context"
	"time"
)

// EmployeeRepository exposes the employment lookup the calculation core
// consumes.
type EmployeeRepository interface {
	// CurrentEmployment resolves the employment effective for an employee
	// as of a date. Returns ErrEmploymentNotFound when none covers it.
	CurrentEmployment(ctx context.Context, employeeID string, asOf time.Time) (Employment, error)

	// ListActiveByCompany retrieves employee IDs employed on a date.
	// Used by the nightly auto-fill job.
	ListActiveByCompany(ctx context.Context, companyID string, asOf time.Time) ([]string, error)
}
