// internal/webutil/response.go
package webutil

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"go_verb_master/internal/model"
)

// HandleError writes the JSON error response for err. AppErrors expose their
// code and message; anything else is logged and reported generically.
func HandleError(w http.ResponseWriter, logger *slog.Logger, err error) {
	if logger == nil {
		logger = slog.Default()
	}
	statusCode := MapErrorToStatusCode(err)

	var errResp model.APIErrorResponse
	var appErr *model.AppError
	switch {
	case errors.As(err, &appErr):
		errResp = model.APIErrorResponse{Error: appErr.Detail()}
		if statusCode >= http.StatusInternalServerError {
			logger.Error("Request failed", slog.Any("error", err))
		}
	case statusCode < http.StatusInternalServerError || statusCode == http.StatusServiceUnavailable:
		errResp = model.APIErrorResponse{Error: model.ErrorDetail{
			Code:    CodeFor(err),
			Message: err.Error(),
		}}
	default:
		logger.Error("Unhandled error", slog.Any("error", err))
		errResp = model.APIErrorResponse{Error: model.ErrorDetail{
			Code:    "INTERNAL_SERVER_ERROR",
			Message: "An internal error occurred.",
		}}
	}

	RespondWithJSON(w, statusCode, errResp, logger)
}

// MapErrorToStatusCode maps the sentinel behind err to an HTTP status.
func MapErrorToStatusCode(err error) int {
	switch {
	case errors.Is(err, model.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, model.ErrInvalidInput):
		return http.StatusBadRequest
	case errors.Is(err, model.ErrEmptyReviewQueue),
		errors.Is(err, model.ErrNoActiveUser),
		errors.Is(err, model.ErrNoActiveSession),
		errors.Is(err, model.ErrReviewNotActive),
		errors.Is(err, model.ErrOutOfRange):
		return http.StatusConflict
	case errors.Is(err, model.ErrSpeechUnavailable):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// CodeFor returns the client-facing error code of a sentinel error.
func CodeFor(err error) string {
	switch {
	case errors.Is(err, model.ErrNotFound):
		return "NOT_FOUND"
	case errors.Is(err, model.ErrInvalidInput):
		return "INVALID_INPUT"
	case errors.Is(err, model.ErrEmptyReviewQueue):
		return "EMPTY_REVIEW_QUEUE"
	case errors.Is(err, model.ErrNoActiveUser):
		return "NO_ACTIVE_USER"
	case errors.Is(err, model.ErrNoActiveSession):
		return "NO_ACTIVE_SESSION"
	case errors.Is(err, model.ErrReviewNotActive):
		return "REVIEW_NOT_ACTIVE"
	case errors.Is(err, model.ErrOutOfRange):
		return "SESSION_COMPLETE"
	case errors.Is(err, model.ErrPersistence):
		return "PERSISTENCE_ERROR"
	case errors.Is(err, model.ErrSpeechUnavailable):
		return "SPEECH_UNAVAILABLE"
	default:
		return "INTERNAL_SERVER_ERROR"
	}
}

// RespondWithJSON writes payload as JSON with the given status.
func RespondWithJSON(w http.ResponseWriter, code int, payload interface{}, logger *slog.Logger) {
	response, err := json.Marshal(payload)
	if err != nil {
		if logger == nil {
			logger = slog.Default()
		}
		logger.Error("Error marshaling JSON response", slog.Any("error", err))
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"error":{"code":"INTERNAL_SERVER_ERROR","message":"Failed to build the response."}}`))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	w.Write(response)
}

// RespondWithAudio writes an MP3 payload.
func RespondWithAudio(w http.ResponseWriter, audio []byte) {
	w.Header().Set("Content-Type", "audio/mpeg")
	w.Header().Set("Content-Length", strconv.Itoa(len(audio)))
	w.WriteHeader(http.StatusOK)
	w.Write(audio)
}
