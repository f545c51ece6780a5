package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/go-chi/chi/v5"

	"go_verb_master/internal/model"
	"go_verb_master/internal/webutil"
)

type userCtxKey struct{}

// UserParam is the chi URL parameter naming the learner.
const UserParam = "user"

// LearnerContext puts the learner named by the {user} URL parameter into the
// request context and onto the request logger. Requests without a name get 409.
func LearnerContext(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := GetLogger(r.Context())

		raw := chi.URLParam(r, UserParam)
		user, err := url.PathUnescape(raw)
		if err != nil {
			user = raw
		}
		user = strings.TrimSpace(user)
		if user == "" {
			logger.Warn("Request without learner name")
			webutil.HandleError(w, logger, model.NewAppError("NO_ACTIVE_USER", "A learner name is required.", UserParam, model.ErrNoActiveUser))
			return
		}

		ctx := context.WithValue(r.Context(), userCtxKey{}, user)
		ctx = WithLogger(ctx, logger.With(slog.String("user", user)))
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// UserFromContext returns the learner set by LearnerContext.
func UserFromContext(ctx context.Context) (string, error) {
	user, ok := ctx.Value(userCtxKey{}).(string)
	if !ok || user == "" {
		return "", model.ErrNoActiveUser
	}
	return user, nil
}
