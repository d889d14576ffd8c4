package employee

import "errors"

// Employee domain errors
var (
	ErrEmployeeNotFound   = errors.New("employee not found")
	ErrEmploymentNotFound = errors.New("no employment record as of this date")
)
