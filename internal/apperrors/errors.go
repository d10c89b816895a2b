package apperrors

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrUnauthorized indicates missing or invalid credentials.
var ErrUnauthorized = errors.New("unauthorized")

// ErrForbidden indicates the authenticated user does not own the resource.
var ErrForbidden = errors.New("forbidden")

// ErrInvalidPeriod indicates a report was requested for a (year, month) pair
// outside the accepted bounds.
var ErrInvalidPeriod = errors.New("invalid report period")

// ErrStoreUnavailable indicates the transaction store could not be reached.
// Retry policy, if any, belongs to the caller of the store client.
var ErrStoreUnavailable = errors.New("store unavailable")

// RenderError wraps a document-generation failure, keeping track of which
// renderer produced it. A failed render never returns partial bytes.
type RenderError struct {
	Format string // "pdf" or "xlsx"
	Err    error
}

func (e *RenderError) Error() string {
	return fmt.Sprintf("failed to render %s document: %v", e.Format, e.Err)
}

func (e *RenderError) Unwrap() error {
	return e.Err
}
