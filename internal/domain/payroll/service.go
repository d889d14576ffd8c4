package payroll

import (
	"context"
)

// PayrollService exposes the pay-period calendar and statutory holiday
// entitlement to the rest of the system.
type PayrollService interface {
	// PeriodsForYear generates the pay periods whose payment date falls in
	// the given year. An unconfigured company yields an empty list.
	PeriodsForYear(ctx context.Context, year int) ([]PayPeriodResponse, error)

	// StatHolidayEntitlement computes the paid hours owed to an employee
	// for a statutory holiday. Ineligibility yields zero hours, never an
	// error.
	StatHolidayEntitlement(ctx context.Context, req EntitlementRequest) (EntitlementResponse, error)
}
