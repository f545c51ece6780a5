// internal/handlers/handler.go
package handlers

import (
	"log/slog"
	"net/http"

	"go_verb_master/internal/middleware"
	"go_verb_master/internal/model"
	"go_verb_master/internal/webutil"
)

// learner returns the user LearnerContext put on the request, writing the
// error response itself when there is none.
func learner(w http.ResponseWriter, r *http.Request, logger *slog.Logger) (string, *slog.Logger, bool) {
	user, err := middleware.UserFromContext(r.Context())
	if err != nil {
		logger.Warn("Learner missing from request context")
		webutil.HandleError(w, logger, model.NewAppError("NO_ACTIVE_USER", "A learner name is required.", middleware.UserParam, err))
		return "", logger, false
	}
	return user, logger.With(slog.String("user", user)), true
}

// decodeAndValidate reads a JSON body into dst and validates it. When
// optional is set an empty body is accepted.
func decodeAndValidate(w http.ResponseWriter, r *http.Request, logger *slog.Logger, dst interface{}, optional bool) bool {
	decode := webutil.DecodeJSONBody
	if optional {
		decode = webutil.DecodeOptionalJSONBody
	}
	if err := decode(r, dst); err != nil {
		logger.Warn("Failed to decode request body", slog.String("error", err.Error()))
		webutil.HandleError(w, logger, model.NewAppError("INVALID_REQUEST_BODY", "The request body is not valid JSON for this endpoint.", "", err))
		return false
	}
	if err := webutil.ValidateStruct(dst); err != nil {
		logger.Warn("Validation failed", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return false
	}
	return true
}
