package attendance

import "errors"

// Attendance domain errors
var (
	ErrAttendanceNotFound = errors.New("attendance record not found")
	ErrAttendanceExists   = errors.New("attendance record already exists for this employee and date")
	ErrNoScheduleFound    = errors.New("no work schedule assigned for this date")
	ErrUnauthorized       = errors.New("unauthorized to access this attendance record")
)
