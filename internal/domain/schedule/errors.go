package schedule

import "errors"

// Schedule domain errors
var (
	ErrWorkScheduleNotFound = errors.New("work schedule not found")
	ErrAssignmentNotFound   = errors.New("schedule assignment not found")
	ErrAssignmentOverlap    = errors.New("schedule assignment overlaps an existing closed assignment")
)
