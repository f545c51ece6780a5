// internal/handlers/progress_handler.go
package handlers

import (
	"log/slog"
	"net/http"

	"go_verb_master/internal/service"
	"go_verb_master/internal/webutil"
)

type ProgressHandler struct {
	service service.ProgressService
	logger  *slog.Logger
}

func NewProgressHandler(s service.ProgressService, logger *slog.Logger) *ProgressHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &ProgressHandler{service: s, logger: logger}
}

func (h *ProgressHandler) Stats(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "Stats"))
	user, logger, ok := learner(w, r, logger)
	if !ok {
		return
	}

	stats, err := h.service.Stats(r.Context(), user)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, stats, logger)
}

// ResetProgress deletes everything stored for the learner.
func (h *ProgressHandler) ResetProgress(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "ResetProgress"))
	user, logger, ok := learner(w, r, logger)
	if !ok {
		return
	}

	if err := h.service.ResetProgress(r.Context(), user); err != nil {
		logger.Error("Error resetting progress in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}
	logger.Info("Progress reset")
	w.WriteHeader(http.StatusNoContent)
}
