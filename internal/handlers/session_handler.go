// internal/handlers/session_handler.go
package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"go_verb_master/internal/model"
	"go_verb_master/internal/service"
	"go_verb_master/internal/webutil"
)

type SessionHandler struct {
	service service.SessionService
	logger  *slog.Logger
}

func NewSessionHandler(s service.SessionService, logger *slog.Logger) *SessionHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &SessionHandler{
		service: s,
		logger:  logger,
	}
}

// StartSession selects the learner and samples a new session.
func (h *SessionHandler) StartSession(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "StartSession"))

	var req model.StartSessionRequest
	if !decodeAndValidate(w, r, logger, &req, false) {
		return
	}

	resp, err := h.service.StartSession(r.Context(), &req)
	if err != nil {
		logger.Error("Error starting session in service", slog.Any("error", err), slog.String("name", req.Name))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Session started", slog.String("name", req.Name))
	webutil.RespondWithJSON(w, http.StatusCreated, resp, logger)
}

func (h *SessionHandler) ContinueLastUser(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "ContinueLastUser"))

	resp, err := h.service.ContinueLastUser(r.Context())
	if err != nil {
		logger.Warn("Could not continue last user", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, resp, logger)
}

func (h *SessionHandler) CurrentVerb(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "CurrentVerb"))
	user, logger, ok := learner(w, r, logger)
	if !ok {
		return
	}

	resp, err := h.service.CurrentVerb(r.Context(), user)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, resp, logger)
}

func (h *SessionHandler) MarkLearned(w http.ResponseWriter, r *http.Request) {
	h.step(w, r, "MarkLearned", h.service.MarkLearned)
}

func (h *SessionHandler) Skip(w http.ResponseWriter, r *http.Request) {
	h.step(w, r, "Skip", h.service.Skip)
}

func (h *SessionHandler) EndSession(w http.ResponseWriter, r *http.Request) {
	h.step(w, r, "EndSession", h.service.EndSession)
}

// Pronounce streams the current verb as MP3. ?example=true appends the example sentence.
func (h *SessionHandler) Pronounce(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "Pronounce"))
	user, logger, ok := learner(w, r, logger)
	if !ok {
		return
	}

	withExample := false
	if raw := r.URL.Query().Get("example"); raw != "" {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			logger.Warn("Invalid example query parameter", slog.String("example", raw))
			webutil.HandleError(w, logger, model.NewAppError("INVALID_QUERY_PARAM", "example must be true or false.", "example", model.ErrInvalidInput))
			return
		}
		withExample = v
	}

	audio, err := h.service.Pronounce(r.Context(), user, withExample)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithAudio(w, audio)
}

func (h *SessionHandler) CheckUtterance(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "CheckUtterance"))
	user, logger, ok := learner(w, r, logger)
	if !ok {
		return
	}

	var req model.UtteranceRequest
	if !decodeAndValidate(w, r, logger, &req, false) {
		return
	}

	resp, err := h.service.CheckUtterance(r.Context(), user, req.Transcript)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, resp, logger)
}

type stepFunc func(ctx context.Context, user string) (*model.SessionStepResponse, error)

func (h *SessionHandler) step(w http.ResponseWriter, r *http.Request, name string, fn stepFunc) {
	logger := h.logger.With(slog.String("handler", name))
	user, logger, ok := learner(w, r, logger)
	if !ok {
		return
	}

	resp, err := fn(r.Context(), user)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	if resp.Summary != nil {
		logger.Info("Session completed",
			slog.Int("learned", resp.Summary.LearnedCount),
			slog.Int("size", resp.Summary.SessionSize),
		)
	}
	webutil.RespondWithJSON(w, http.StatusOK, resp, logger)
}
