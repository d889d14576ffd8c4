package auth

import "errors"

// Auth domain errors. Token issuance lives outside this service; these
// cover claim verification on incoming requests.
var (
	ErrInvalidToken           = errors.New("invalid or missing token")
	ErrAdminPrivilegeRequired = errors.New("admin privilege required")
)
