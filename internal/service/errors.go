package service

import (
	"errors"
	"fmt"
)

// Common service errors
var (
	// ErrInvalidInput is returned when input validation fails
	ErrInvalidInput = errors.New("invalid input")

	// ErrConflict is returned when an update carried a stale version
	ErrConflict = errors.New("resource conflict")

	// ErrUnauthorized is returned when the admin password is wrong
	ErrUnauthorized = errors.New("unauthorized")

	// ErrRequestNotFound is returned when a request is not found
	ErrRequestNotFound = errors.New("request not found")

	// ErrClientNotFound is returned when a client is not found
	ErrClientNotFound = errors.New("client not found")

	// ErrEventNotFound is returned when a calendar event is not found
	ErrEventNotFound = errors.New("calendar event not found")

	// ErrInsumoNotFound is returned when an insumo is not found
	ErrInsumoNotFound = errors.New("insumo not found")

	// ErrNotCoverage is returned when a coverage-only operation targets another service line
	ErrNotCoverage = errors.New("request is not a coverage application")

	// ErrPaymentsDisabled is returned when no payment gateway is configured
	ErrPaymentsDisabled = errors.New("payments are not enabled")
)

// ValidationError carries per-field messages for a rejected input
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed on %d field(s)", len(e.Fields))
}

func (e *ValidationError) Unwrap() error {
	return ErrInvalidInput
}

// DatabaseError wraps a persistence failure. Current holds the authoritative record
// read back after the failure, when it could be read.
type DatabaseError struct {
	Op      string
	Err     error
	Current interface{}
}

func (e *DatabaseError) Error() string {
	return fmt.Sprintf("failed to %s: %v", e.Op, e.Err)
}

func (e *DatabaseError) Unwrap() error {
	return e.Err
}

// ConflictError is returned when an optimistic update lost the race. Current holds
// the record as stored.
type ConflictError struct {
	Current interface{}
}

func (e *ConflictError) Error() string {
	return "record was modified by someone else"
}

func (e *ConflictError) Unwrap() error {
	return ErrConflict
}

// UploadError reports one file that could not be stored
type UploadError struct {
	Name string
	Err  error
}

func (e *UploadError) Error() string {
	return fmt.Sprintf("failed to upload %s: %v", e.Name, e.Err)
}

func (e *UploadError) Unwrap() error {
	return e.Err
}
