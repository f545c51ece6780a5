// internal/model/error.go
package model

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound       = errors.New("resource not found")
	ErrInvalidInput   = errors.New("invalid input")
	ErrInternalServer = errors.New("internal server error")

	// ErrCatalogUnavailable is recovered inside the catalog and never reaches callers.
	ErrCatalogUnavailable      = errors.New("verb catalog unavailable")
	ErrEmptyReviewQueue        = errors.New("review list is empty")
	ErrOutOfRange              = errors.New("session has no more verbs")
	ErrNoActiveUser            = errors.New("no active user")
	ErrNoActiveSession         = errors.New("no active session")
	ErrReviewNotActive         = errors.New("no review in progress")
	ErrMalformedProgressRecord = errors.New("malformed progress record")
	ErrPersistence             = errors.New("progress could not be saved")
	ErrSpeechUnavailable       = errors.New("speech synthesis unavailable")
)

// AppError carries a client-facing code and message and unwraps to a sentinel above.
type AppError struct {
	Code    string
	Message string
	Field   string
	Err     error
}

func NewAppError(code, message, field string, err error) *AppError {
	return &AppError{Code: code, Message: message, Field: field, Err: err}
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// Detail converts the error into its response body shape.
func (e *AppError) Detail() ErrorDetail {
	return ErrorDetail{Code: e.Code, Message: e.Message, Field: e.Field}
}

type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
}

// APIErrorResponse is the JSON body of every error response.
type APIErrorResponse struct {
	Error ErrorDetail `json:"error"`
}
