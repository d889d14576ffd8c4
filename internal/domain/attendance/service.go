package attendance

import (
	"context"
)

// AttendanceService defines business logic for attendance operations
type AttendanceService interface {
	// Create records a punch pair for an employee and date, rounding the
	// punches and classifying hours before persisting
	Create(ctx context.Context, req CreateAttendanceRequest) (AttendanceResponse, error)

	// Update replaces the raw punches and re-derives every computed field
	Update(ctx context.Context, req UpdateAttendanceRequest) (AttendanceResponse, error)

	// SetOverride writes the manual override layer and flags the record
	SetOverride(ctx context.Context, req OverrideAttendanceRequest) (AttendanceResponse, error)

	// ClearOverride drops the manual-override flag; stored override values
	// are retained but stop taking effect
	ClearOverride(ctx context.Context, id string) (AttendanceResponse, error)

	// Recalculate re-derives computed fields for every record in a date
	// range. Failures are isolated per record and collected in the result.
	Recalculate(ctx context.Context, req RecalculateRequest) (BulkResult, error)

	// Get retrieves a single attendance record by ID
	Get(ctx context.Context, id string) (AttendanceResponse, error)

	// List retrieves attendance records with filters (admin/manager)
	List(ctx context.Context, filter AttendanceFilter) (ListAttendanceResponse, error)

	// Delete hard-deletes an attendance record
	Delete(ctx context.Context, id string) error

	// DeleteRange hard-deletes attendance records by date range
	DeleteRange(ctx context.Context, req DeleteRangeRequest) (int64, error)
}
