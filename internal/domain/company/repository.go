package company

import "context"

// CompanyRepository exposes the payroll configuration read surface.
type CompanyRepository interface {
	// GetPayrollConfig retrieves a company's payroll configuration.
	// Missing frequency or anchor dates come back as nil fields, not errors.
	GetPayrollConfig(ctx context.Context, companyID string) (PayrollConfig, error)

	// ListIDs retrieves every company ID. Used by the nightly jobs.
	ListIDs(ctx context.Context) ([]string, error)
}
