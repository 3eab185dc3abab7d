// Package apperrors defines the error taxonomy shared by services and
// handlers. Services wrap these sentinels with context; handlers map them to
// HTTP status codes with errors.Is.
package apperrors

import "errors"

var (
	// ErrValidation marks malformed or out-of-policy input.
	ErrValidation = errors.New("validation failed")
	// ErrNotFound marks a referenced entity that does not exist.
	ErrNotFound = errors.New("not found")
	// ErrConflict marks a business-rule violation the caller may resolve and retry.
	ErrConflict = errors.New("conflict")
	// ErrPermissionDenied marks a caller whose role lacks the operation.
	ErrPermissionDenied = errors.New("permission denied")
)
