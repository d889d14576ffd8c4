package holiday

import (
	"context"
	"time"
)

// HolidayRepository defines data access for the company holiday calendar.
type HolidayRepository interface {
	// Create inserts a holiday entry
	Create(ctx context.Context, entry HolidayEntry) (HolidayEntry, error)

	// GetByID retrieves a holiday entry
	GetByID(ctx context.Context, id string, companyID string) (HolidayEntry, error)

	// GetByDate retrieves the holiday entry on a date, if any. Inactive
	// entries are returned too so callers can tell inactive from absent;
	// eligibility checks must re-check Active.
	GetByDate(ctx context.Context, companyID string, date time.Time) (*HolidayEntry, error)

	// ListInRange retrieves active holidays in [start, end]. When
	// includeUnionOnly is false, union-only entries are filtered out.
	ListInRange(ctx context.Context, companyID string, start, end time.Time, includeUnionOnly bool) ([]HolidayEntry, error)

	// ListYear retrieves every entry of a calendar year, inactive ones
	// included. Admin calendar view.
	ListYear(ctx context.Context, companyID string, year int) ([]HolidayEntry, error)

	// Update rewrites an entry's mutable fields
	Update(ctx context.Context, entry HolidayEntry) error

	// Delete removes an entry
	Delete(ctx context.Context, id string, companyID string) error
}

// HolidayService defines business logic for the holiday calendar.
type HolidayService interface {
	Create(ctx context.Context, req CreateHolidayRequest) (HolidayResponse, error)
	Update(ctx context.Context, req UpdateHolidayRequest) (HolidayResponse, error)
	ListYear(ctx context.Context, year int) ([]HolidayResponse, error)
	Delete(ctx context.Context, id string) error
}
