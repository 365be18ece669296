package apperror

import (
	"errors"
	"fmt"
	"math"
	"net/http"
	"sort"

	"github.com/gin-gonic/gin"
)

var (
	ErrNotFound     = errors.New("not found")
	ErrPermission   = errors.New("permission denied")
	ErrInvalidInput = errors.New("invalid input")
	ErrConflict     = errors.New("conflict")
	ErrInternal     = errors.New("internal server error")
	ErrUnauthorized = errors.New("unauthorized")
)

type AppError struct {
	BaseError error
	Message   string
	Details   string
	Err       error
	// Fields maps a request field to its validation messages.
	Fields map[string][]string
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (Details: %s, Cause: %v)", e.BaseError.Error(), e.Message, e.Details, e.Err)
	}
	return fmt.Sprintf("%s: %s (Details: %s)", e.BaseError.Error(), e.Message, e.Details)
}

func (e *AppError) Unwrap() error {
	return e.BaseError
}

func NewAppError(base error, msg, details string, err error) *AppError {
	return &AppError{BaseError: base, Message: msg, Details: details, Err: err}
}

func NewNotFound(resource, identifier string) *AppError {
	msg := fmt.Sprintf("%s not found", resource)
	details := fmt.Sprintf("%s with identifier '%s' was not found", resource, identifier)
	return NewAppError(ErrNotFound, msg, details, nil)
}

func NewInvalidInput(details string, err error) *AppError {
	return NewAppError(ErrInvalidInput, "Invalid input provided", details, err)
}

// NewValidation reports field-level failures. No store mutation happens when
// a use case returns one.
func NewValidation(fields map[string][]string) *AppError {
	names := make([]string, 0, len(fields))
	for name := range fields {
		names = append(names, name)
	}
	sort.Strings(names)
	e := NewAppError(ErrInvalidInput, "Validation failed", fmt.Sprintf("invalid fields: %v", names), nil)
	e.Fields = fields
	return e
}

// NewFieldError is a shorthand for a single-field validation failure.
func NewFieldError(field, message string) *AppError {
	return NewValidation(map[string][]string{field: {message}})
}

func NewConflict(resource, field, value string) *AppError {
	msg := fmt.Sprintf("%s conflict", resource)
	details := fmt.Sprintf("%s with %s '%s' already exists", resource, field, value)
	return NewAppError(ErrConflict, msg, details, nil)
}

func NewInternal(details string, err error) *AppError {
	return NewAppError(ErrInternal, "An internal server error occurred", details, err)
}

func NewUnauthorized(details string, err error) *AppError {
	return NewAppError(ErrUnauthorized, "Invalid credentials", details, err)
}

// NewNotAuthenticated is returned when a protected route is called without
// usable credentials.
func NewNotAuthenticated(details string) *AppError {
	return NewAppError(ErrUnauthorized, "Authentication credentials were not provided", details, nil)
}

func NewPermissionDenied(details string) *AppError {
	return NewAppError(ErrPermission, "Permission denied", details, nil)
}

func ToHTTPStatus(err error) int {
	if errors.Is(err, ErrNotFound) {
		return http.StatusNotFound
	}
	if errors.Is(err, ErrInvalidInput) {
		return http.StatusBadRequest
	}
	if errors.Is(err, ErrUnauthorized) {
		return http.StatusUnauthorized
	}
	if errors.Is(err, ErrPermission) {
		return http.StatusForbidden
	}
	if errors.Is(err, ErrConflict) {
		return http.StatusConflict
	}
	return http.StatusInternalServerError
}

func (e *AppError) ToJSON() gin.H {
	body := gin.H{
		"error":   e.BaseError.Error(),
		"message": e.Message,
	}
	if len(e.Fields) > 0 {
		body["fields"] = e.Fields
	}
	return body
}

// FieldErrors collects validation messages before turning them into an AppError.
type FieldErrors map[string][]string

func (f FieldErrors) Add(field, message string) {
	f[field] = append(f[field], message)
}

// CheckInt32 records a failure when v does not fit an INTEGER column.
func (f FieldErrors) CheckInt32(field string, v int) {
	switch {
	case v > math.MaxInt32:
		f.Add(field, fmt.Sprintf("Ensure this value is less than or equal to %d.", math.MaxInt32))
	case v < math.MinInt32:
		f.Add(field, fmt.Sprintf("Ensure this value is greater than or equal to %d.", math.MinInt32))
	}
}

// Err returns nil when nothing was collected.
func (f FieldErrors) Err() error {
	if len(f) == 0 {
		return nil
	}
	return NewValidation(f)
}
