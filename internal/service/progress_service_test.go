package service

import (
	"context"
	"errors"
	"testing"

	"go_verb_master/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func Test_progressService_Stats(t *testing.T) {
	ctx := context.Background()
	tr, repo := newTestTrainer(t, nil)
	expectStart(repo, "alice", nil)
	startSession(t, tr, &model.StartSessionRequest{Name: "alice", Level: "B1", Tense: "past", Count: 1})
	_, err := NewSessionService(tr, nil).MarkLearned(ctx, "alice")
	require.NoError(t, err)

	stats, err := NewProgressService(tr).Stats(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, "alice", stats.User)
	assert.Equal(t, model.LevelB1, stats.Level)
	assert.Equal(t, model.TensePast, stats.Tense)
	assert.Equal(t, 1, stats.LearnedTotal)
	assert.Equal(t, 1, stats.ReviewItems)
	assert.Equal(t, 1, stats.SessionsFinished)
	require.Len(t, stats.History, 1)
	require.NotNil(t, stats.LastSessionAt)
	assert.Equal(t, fixedNow, *stats.LastSessionAt)

	_, err = NewProgressService(tr).Stats(ctx, "nobody")
	assert.ErrorIs(t, err, model.ErrNoActiveUser)
}

func Test_progressService_ResetProgress(t *testing.T) {
	ctx := context.Background()

	t.Run("正常系: 記録を削除してユーザーの選択を解除", func(t *testing.T) {
		tr, repo := newTestTrainer(t, nil)
		expectStart(repo, "alice", nil)
		startSession(t, tr, &model.StartSessionRequest{Name: "alice", Count: 2})
		repo.On("Delete", mock.Anything, mock.Anything, "alice").Return(nil).Once()
		repo.On("ClearLastActiveUser", mock.Anything, mock.Anything, "alice").Return(nil).Once()
		svc := NewProgressService(tr)

		require.NoError(t, svc.ResetProgress(ctx, "alice"))

		_, err := svc.Stats(ctx, "alice")
		assert.ErrorIs(t, err, model.ErrNoActiveUser)
	})

	t.Run("異常系: 削除に失敗", func(t *testing.T) {
		tr, repo := newTestTrainer(t, nil)
		expectStart(repo, "alice", nil)
		startSession(t, tr, &model.StartSessionRequest{Name: "alice", Count: 2})
		repo.On("Delete", mock.Anything, mock.Anything, "alice").Return(errors.New("locked")).Once()
		svc := NewProgressService(tr)

		err := svc.ResetProgress(ctx, "alice")
		var appErr *model.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, "INTERNAL_SERVER_ERROR", appErr.Code)

		_, err = svc.Stats(ctx, "alice")
		assert.NoError(t, err)
	})

	t.Run("異常系: ユーザー未選択", func(t *testing.T) {
		tr, _ := newTestTrainer(t, nil)

		assert.ErrorIs(t, NewProgressService(tr).ResetProgress(ctx, "nobody"), model.ErrNoActiveUser)
	})
}
