// internal/handlers/review_handler.go
package handlers

import (
	"log/slog"
	"net/http"

	"go_verb_master/internal/model"
	"go_verb_master/internal/service"
	"go_verb_master/internal/webutil"
)

type ReviewHandler struct {
	service service.ReviewService
	logger  *slog.Logger
}

func NewReviewHandler(s service.ReviewService, logger *slog.Logger) *ReviewHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &ReviewHandler{service: s, logger: logger}
}

// StartReview begins a pass over the review list. An empty body means forward.
func (h *ReviewHandler) StartReview(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "StartReview"))
	user, logger, ok := learner(w, r, logger)
	if !ok {
		return
	}

	var req model.StartReviewRequest
	if !decodeAndValidate(w, r, logger, &req, true) {
		return
	}
	if req.Direction == "" {
		req.Direction = model.DirectionForward
	}

	prompt, err := h.service.StartReview(r.Context(), user, req.Direction)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, prompt, logger)
}

func (h *ReviewHandler) SubmitAnswer(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "SubmitAnswer"))
	user, logger, ok := learner(w, r, logger)
	if !ok {
		return
	}

	var req model.ReviewAnswerRequest
	if !decodeAndValidate(w, r, logger, &req, false) {
		return
	}

	resp, err := h.service.SubmitReviewAnswer(r.Context(), user, req.Input)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, resp, logger)
}

func (h *ReviewHandler) Next(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "NextReview"))
	user, logger, ok := learner(w, r, logger)
	if !ok {
		return
	}

	resp, err := h.service.AdvanceReview(r.Context(), user)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, resp, logger)
}

func (h *ReviewHandler) Back(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "BackReview"))
	user, logger, ok := learner(w, r, logger)
	if !ok {
		return
	}

	resp, err := h.service.RetreatReview(r.Context(), user)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, resp, logger)
}
