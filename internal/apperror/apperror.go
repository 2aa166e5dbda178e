package apperror

import (
	"errors"
	"fmt"
	"log"
	"net/http"
)

// Client-caused outcomes. These are always structured and always returned
// to the caller as-is; infrastructure failures go through Store instead.
var (
	ErrNotFound           = errors.New("resource not found")
	ErrInvalidToken       = errors.New("invalid token")
	ErrExpiredToken       = errors.New("token has expired")
	ErrUnauthenticated    = errors.New("authentication required")
	ErrAccountInactive    = errors.New("user account is inactive")
	ErrForbidden          = errors.New("not enough permissions")
	ErrInvalidCredentials = errors.New("incorrect email or password")
	ErrDuplicateEmail     = errors.New("email already registered")
)

// ValidationError reports a single field violation. The first violation
// encountered is returned; it always names the offending field.
type ValidationError struct {
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

func Validation(field, reason string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason}
}

// StoreError wraps a persistence failure. The underlying cause is logged
// with full context here; the client only ever sees the generic message.
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("error %s", e.Op)
}

func (e *StoreError) Unwrap() error { return e.Err }

// Store logs the underlying cause and returns a client-safe wrapper.
// Known client-caused errors pass through untouched.
func Store(op string, err error) error {
	if err == nil {
		return nil
	}
	if IsClientError(err) {
		return err
	}
	log.Printf("❌ store failure (%s): %v", op, err)
	return &StoreError{Op: op, Err: err}
}

func IsClientError(err error) bool {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return true
	}
	switch {
	case errors.Is(err, ErrNotFound),
		errors.Is(err, ErrInvalidToken),
		errors.Is(err, ErrExpiredToken),
		errors.Is(err, ErrUnauthenticated),
		errors.Is(err, ErrAccountInactive),
		errors.Is(err, ErrForbidden),
		errors.Is(err, ErrInvalidCredentials),
		errors.Is(err, ErrDuplicateEmail):
		return true
	}
	return false
}

// Status maps an error to the HTTP status code the API surfaces.
func Status(err error) int {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return http.StatusUnprocessableEntity
	}
	switch {
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrUnauthenticated),
		errors.Is(err, ErrInvalidToken),
		errors.Is(err, ErrExpiredToken),
		errors.Is(err, ErrAccountInactive),
		errors.Is(err, ErrInvalidCredentials):
		return http.StatusUnauthorized
	case errors.Is(err, ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, ErrDuplicateEmail):
		return http.StatusConflict
	default:
		return http.StatusBadRequest
	}
}
