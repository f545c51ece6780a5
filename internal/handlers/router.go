// internal/handlers/router.go
package handlers

import (
	"github.com/go-chi/chi/v5"

	"go_verb_master/internal/middleware"
)

// Handlers groups everything mounted under /api/v1.
type Handlers struct {
	Session  *SessionHandler
	Review   *ReviewHandler
	Game     *GameHandler
	Progress *ProgressHandler
}

// Routes registers the API routes. Routes under /users/{user} go through
// middleware.LearnerContext.
func (h Handlers) Routes(r chi.Router) {
	r.Post("/sessions", h.Session.StartSession)
	r.Post("/continue", h.Session.ContinueLastUser)

	r.Route("/users/{"+middleware.UserParam+"}", func(r chi.Router) {
		r.Use(middleware.LearnerContext)

		r.Route("/session", func(r chi.Router) {
			r.Get("/", h.Session.CurrentVerb)
			r.Post("/learned", h.Session.MarkLearned)
			r.Post("/skip", h.Session.Skip)
			r.Post("/end", h.Session.EndSession)
			r.Get("/pronunciation", h.Session.Pronounce)
			r.Post("/utterance", h.Session.CheckUtterance)
		})

		r.Route("/review", func(r chi.Router) {
			r.Post("/", h.Review.StartReview)
			r.Post("/answer", h.Review.SubmitAnswer)
			r.Post("/next", h.Review.Next)
			r.Post("/back", h.Review.Back)
		})

		r.Route("/game", func(r chi.Router) {
			r.Post("/", h.Game.StartGame)
			r.Post("/answer", h.Game.Answer)
		})

		r.Get("/stats", h.Progress.Stats)
		r.Delete("/progress", h.Progress.ResetProgress)
	})
}
