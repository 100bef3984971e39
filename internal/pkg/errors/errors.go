package errors

import (
	"context"
	stderrors "errors"
	"fmt"
	"net/http"
)

type AppError struct {
	Code       string                 `json:"code"`
	Message    string                 `json:"message"`
	Details    map[string]interface{} `json:"details,omitempty"`
	StatusCode int                    `json:"-"`
}

func (e *AppError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func New(code, message string, statusCode int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		StatusCode: statusCode,
	}
}

// WithDetails returns a copy so the shared sentinel values stay untouched.
func (e *AppError) WithDetails(details map[string]interface{}) *AppError {
	cp := *e
	cp.Details = details
	return &cp
}

// WithMessage returns a copy carrying a request specific message.
func (e *AppError) WithMessage(message string) *AppError {
	cp := *e
	cp.Message = message
	return &cp
}

// StatusClientClosedRequest - nginx convention for a request the client abandoned
const StatusClientClosedRequest = 499

var (
	ErrInvalidRequest = New(
		"INVALID_REQUEST",
		"Invalid request parameters",
		http.StatusBadRequest,
	)

	ErrUnauthorized = New(
		"UNAUTHORIZED",
		"Missing or invalid credentials",
		http.StatusUnauthorized,
	)

	ErrNotFound = New(
		"NOT_FOUND",
		"Resource not found",
		http.StatusNotFound,
	)

	ErrSearchFailed = New(
		"SEARCH_FAILED",
		"Search index operation failed",
		http.StatusInternalServerError,
	)

	ErrContentSourceFailed = New(
		"CONTENT_SOURCE_FAILED",
		"Content source request failed",
		http.StatusBadGateway,
	)

	ErrIndexSyncFailed = New(
		"INDEX_SYNC_FAILED",
		"Index synchronisation failed",
		http.StatusInternalServerError,
	)

	ErrRequestCancelled = New(
		"REQUEST_CANCELLED",
		"Request cancelled",
		StatusClientClosedRequest,
	)

	ErrInternalServer = New(
		"INTERNAL_SERVER_ERROR",
		"Internal server error",
		http.StatusInternalServerError,
	)
)

// FromContext maps context cancellation to ErrRequestCancelled and keeps any
// other error unchanged.
func FromContext(err error) error {
	if err == nil {
		return nil
	}
	if stderrors.Is(err, context.Canceled) || stderrors.Is(err, context.DeadlineExceeded) {
		return ErrRequestCancelled
	}
	return err
}

// As unwraps err into an *AppError when the chain holds one.
func As(err error) (*AppError, bool) {
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}
