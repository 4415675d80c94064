package application

import (
	"errors"
	"fmt"
)

// Sentinel errors for common conditions
var (
	ErrLocked      = errors.New("admin session locked")
	ErrAuthPending = errors.New("authentication already in progress")
)

// ValidationError represents a validation failure with details
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ExportError represents a failed export; the working copy is untouched
// whenever one of these is returned.
type ExportError struct {
	Domain string
	Reason string
}

func (e *ExportError) Error() string {
	return fmt.Sprintf("cannot export %s: %s", e.Domain, e.Reason)
}
