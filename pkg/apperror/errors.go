package apperror

import (
	"fmt"
	"net/http"
)

// AppError is a structured error that maps to HTTP responses.
// Kind is the machine-readable tag exposed to clients; Detail is free text.
type AppError struct {
	Kind       string `json:"error"`
	Detail     string `json:"detail,omitempty"`
	HTTPStatus int    `json:"-"`
	Err        error  `json:"-"` // Wrapped internal error (not exposed to client)
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Kind, e.Detail, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Kind, e.Detail)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// New creates a new AppError.
func New(kind string, detail string, httpStatus int) *AppError {
	return &AppError{
		Kind:       kind,
		Detail:     detail,
		HTTPStatus: httpStatus,
	}
}

// Wrap wraps an upstream error with an AppError. The wrapped error's message
// becomes the client-visible detail, so callers must not wrap errors carrying
// secrets or internal identifiers.
func Wrap(kind string, httpStatus int, err error) *AppError {
	detail := ""
	if err != nil {
		detail = err.Error()
	}
	return &AppError{
		Kind:       kind,
		Detail:     detail,
		HTTPStatus: httpStatus,
		Err:        err,
	}
}

// ---- Static dataset ----

func ErrNotFound(entity string) *AppError {
	return New("not_found", fmt.Sprintf("%s not found", entity), http.StatusNotFound)
}

// ---- Live chain data ----

// ErrLiveScanFailed covers any upstream failure during a balance scan.
func ErrLiveScanFailed(err error) *AppError {
	return Wrap("live_scan_failed", http.StatusBadGateway, err)
}

// ErrLiveActivityFailed covers any upstream failure during an activity fetch.
func ErrLiveActivityFailed(err error) *AppError {
	return Wrap("live_activity_failed", http.StatusBadGateway, err)
}

// ---- Agent proxy ----

func ErrAgentUnreachable(err error) *AppError {
	return Wrap("agent_unreachable", http.StatusBadGateway, err)
}

func ErrVoiceUnavailable(err error) *AppError {
	return Wrap("voice_unavailable", http.StatusBadGateway, err)
}

// ---- Requests ----

// Validation returns a 400 for malformed request shapes.
func Validation(detail string) *AppError {
	return New("invalid_request", detail, http.StatusBadRequest)
}

// InternalError wraps an unexpected error as a 500 with a generic detail.
func InternalError(err error) *AppError {
	return &AppError{
		Kind:       "internal_error",
		Detail:     "internal server error",
		HTTPStatus: http.StatusInternalServerError,
		Err:        err,
	}
}
