package handlers_test

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"go_verb_master/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestProgressHandler_Stats(t *testing.T) {
	t.Run("正常系", func(t *testing.T) {
		router, svcs := setupTestRouter(t)
		last := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
		svcs.progress.On("Stats", mock.Anything, "alice").Return(&model.Stats{
			User:             "alice",
			Level:            model.LevelA1,
			Tense:            model.TensePresent,
			SessionsFinished: 1,
			LearnedTotal:     4,
			ReviewItems:      3,
			LastSessionAt:    &last,
			History:          []model.SessionSummary{{Timestamp: last, LearnedCount: 4, SessionSize: 5}},
		}, nil).Once()

		rr := doRequest(t, router, http.MethodGet, "/api/v1/users/alice/stats", nil)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, `4`, mustField(t, rr.Body.Bytes(), "learned_total"))
		assert.JSONEq(t, `"2024-05-01T10:00:00Z"`, mustField(t, rr.Body.Bytes(), "last_session_at"))
	})

	t.Run("異常系: ユーザー未選択", func(t *testing.T) {
		router, svcs := setupTestRouter(t)
		svcs.progress.On("Stats", mock.Anything, "bob").
			Return(nil, model.NewAppError("NO_ACTIVE_USER", "Start a session or continue the last user first.", "user", model.ErrNoActiveUser)).Once()

		rr := doRequest(t, router, http.MethodGet, "/api/v1/users/bob/stats", nil)

		assert.Equal(t, http.StatusConflict, rr.Code)
	})
}

func TestProgressHandler_ResetProgress(t *testing.T) {
	t.Run("正常系", func(t *testing.T) {
		router, svcs := setupTestRouter(t)
		svcs.progress.On("ResetProgress", mock.Anything, "alice").Return(nil).Once()

		rr := doRequest(t, router, http.MethodDelete, "/api/v1/users/alice/progress", nil)

		assert.Equal(t, http.StatusNoContent, rr.Code)
		assert.Empty(t, rr.Body.String())
	})

	t.Run("異常系: 予期しないエラー", func(t *testing.T) {
		router, svcs := setupTestRouter(t)
		svcs.progress.On("ResetProgress", mock.Anything, "alice").Return(errors.New("boom")).Once()

		rr := doRequest(t, router, http.MethodDelete, "/api/v1/users/alice/progress", nil)

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
		detail := decodeError(t, rr)
		assert.Equal(t, "INTERNAL_SERVER_ERROR", detail.Code)
		assert.NotContains(t, detail.Message, "boom")
	})
}
