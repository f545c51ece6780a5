// internal/handlers/game_handler.go
package handlers

import (
	"log/slog"
	"net/http"

	"go_verb_master/internal/model"
	"go_verb_master/internal/service"
	"go_verb_master/internal/webutil"
)

type GameHandler struct {
	service service.GameService
	logger  *slog.Logger
}

func NewGameHandler(s service.GameService, logger *slog.Logger) *GameHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &GameHandler{service: s, logger: logger}
}

func (h *GameHandler) StartGame(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "StartGame"))
	user, logger, ok := learner(w, r, logger)
	if !ok {
		return
	}

	resp, err := h.service.StartGame(r.Context(), user)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, resp, logger)
}

func (h *GameHandler) Answer(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "AnswerGame"))
	user, logger, ok := learner(w, r, logger)
	if !ok {
		return
	}

	var req model.GameAnswerRequest
	if !decodeAndValidate(w, r, logger, &req, false) {
		return
	}

	resp, err := h.service.ChooseGameAnswer(r.Context(), user, req.Choice)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, resp, logger)
}
