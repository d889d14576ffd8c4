package leave

import (
	"context"
	"time"
)

// LeaveRepository exposes the narrow read surface the calculation core
// consumes. Approved leaves only.
type LeaveRepository interface {
	// ListInRange retrieves approved leaves overlapping [start, end]
	ListInRange(ctx context.Context, employeeID string, start, end time.Time) ([]LeaveRecord, error)

	// TypeCode resolves a leave type ID to its code ("VAC", "SICK", ...)
	TypeCode(ctx context.Context, leaveTypeID string) (string, error)
}
