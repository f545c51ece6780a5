package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"go_verb_master/internal/model"
	"go_verb_master/internal/render"
	"go_verb_master/internal/speech"
	speechmocks "go_verb_master/internal/speech/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func Test_sessionService_StartSession(t *testing.T) {
	ctx := context.Background()

	t.Run("正常系: 指定したレベルと時制でセッションを開始", func(t *testing.T) {
		tr, repo := newTestTrainer(t, nil)
		repo.On("Load", mock.Anything, mock.Anything, "alice").Return(model.NewProgressRecord(), nil).Once()
		repo.On("Save", mock.Anything, mock.Anything, "alice", mock.MatchedBy(func(p *model.ProgressRecord) bool {
			return p.Level == model.LevelB1 && p.Tense == model.TensePast && p.LastSession != nil && p.LastSession.SessionSize == 3
		})).Return(nil).Once()
		repo.On("SetLastActiveUser", mock.Anything, mock.Anything, "alice").Return(nil).Once()

		resp, err := NewSessionService(tr, nil).StartSession(ctx, &model.StartSessionRequest{Name: " alice ", Level: "b1", Tense: "past", Count: 3})

		require.NoError(t, err)
		require.NotNil(t, resp.View)
		assert.False(t, resp.Completed)
		assert.Equal(t, 0, resp.View.Index)
		assert.Equal(t, 3, resp.View.Size)
		assert.Equal(t, model.LevelB1, resp.View.Level)
		assert.Equal(t, model.TensePast, resp.View.Tense)
		assert.Equal(t, resp.View.Past, resp.View.Display)
		assert.Zero(t, resp.View.Progress)
	})

	t.Run("正常系: 件数0は既定値、上限を超える件数は切り詰め", func(t *testing.T) {
		tests := []struct {
			name  string
			count int
			want  int
		}{
			{name: "default", count: 0, want: 5},
			{name: "capped", count: 50, want: 20},
			{name: "explicit", count: 7, want: 7},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				tr, repo := newTestTrainer(t, nil)
				expectStart(repo, "bob", nil)

				resp := startSession(t, tr, &model.StartSessionRequest{Name: "bob", Count: tt.count})
				assert.Equal(t, tt.want, resp.View.Size)
			})
		}
	})

	t.Run("正常系: 新規ユーザーには設定の既定レベルと時制を使う", func(t *testing.T) {
		cfg := testConfig()
		cfg.App.DefaultLevel = "B2"
		cfg.App.DefaultTense = "future"
		tr, repo := newTestTrainer(t, cfg)
		expectStart(repo, "carol", nil)

		resp := startSession(t, tr, &model.StartSessionRequest{Name: "carol", Count: 2})
		assert.Equal(t, model.LevelB2, resp.View.Level)
		assert.Equal(t, model.TenseFuture, resp.View.Tense)
		assert.True(t, strings.HasPrefix(resp.View.Display, "will "))
	})

	t.Run("正常系: 保存済みの設定を引き継ぐ", func(t *testing.T) {
		tr, repo := newTestTrainer(t, nil)
		record := model.NewProgressRecord()
		record.Level = model.LevelB1
		record.Tense = model.TensePast
		record.LearnedTotal = 4
		expectStart(repo, "dave", record)

		resp := startSession(t, tr, &model.StartSessionRequest{Name: "dave", Count: 2})
		assert.Equal(t, model.LevelB1, resp.View.Level)
		assert.Equal(t, model.TensePast, resp.View.Tense)
	})

	t.Run("異常系: 名前が空", func(t *testing.T) {
		tr, _ := newTestTrainer(t, nil)

		resp, err := NewSessionService(tr, nil).StartSession(ctx, &model.StartSessionRequest{Name: "   "})
		assert.Nil(t, resp)
		assert.ErrorIs(t, err, model.ErrInvalidInput)
	})

	t.Run("異常系: 不明なレベル", func(t *testing.T) {
		tr, repo := newTestTrainer(t, nil)
		repo.On("Load", mock.Anything, mock.Anything, "alice").Return(model.NewProgressRecord(), nil).Once()

		_, err := NewSessionService(tr, nil).StartSession(ctx, &model.StartSessionRequest{Name: "alice", Level: "C2"})
		assert.ErrorIs(t, err, model.ErrInvalidInput)
		var appErr *model.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, "level", appErr.Field)
	})

	t.Run("異常系: 保存に失敗", func(t *testing.T) {
		tr, repo := newTestTrainer(t, nil)
		repo.On("Load", mock.Anything, mock.Anything, "alice").Return(model.NewProgressRecord(), nil).Once()
		repo.On("Save", mock.Anything, mock.Anything, "alice", mock.Anything).Return(errors.New("disk full")).Once()

		_, err := NewSessionService(tr, nil).StartSession(ctx, &model.StartSessionRequest{Name: "alice"})
		assert.ErrorIs(t, err, model.ErrPersistence)
	})
}

func Test_sessionService_MarkLearned(t *testing.T) {
	ctx := context.Background()
	tr, repo := newTestTrainer(t, nil)
	expectStart(repo, "alice", nil)
	startSession(t, tr, &model.StartSessionRequest{Name: "alice", Count: 2})
	svc := NewSessionService(tr, nil)

	first, err := svc.MarkLearned(ctx, "alice")
	require.NoError(t, err)
	assert.False(t, first.Completed)
	require.NotNil(t, first.View)
	assert.Equal(t, 1, first.View.Index)
	assert.Equal(t, 0.5, first.View.Progress)
	assert.Nil(t, first.Summary)

	second, err := svc.MarkLearned(ctx, "alice")
	require.NoError(t, err)
	assert.True(t, second.Completed)
	assert.Nil(t, second.View)
	require.NotNil(t, second.Summary)
	assert.Equal(t, 2, second.Summary.LearnedCount)
	assert.Equal(t, 2, second.Summary.SessionSize)
	assert.Equal(t, fixedNow, second.Summary.Timestamp)

	_, err = svc.MarkLearned(ctx, "alice")
	assert.ErrorIs(t, err, model.ErrOutOfRange)

	ws := tr.entries["alice"].ws
	assert.Equal(t, 2, ws.Progress.LearnedTotal)
	assert.Len(t, ws.Progress.ReviewList, 2)
	assert.Len(t, ws.Progress.SessionHistory, 1)
	repo.AssertNumberOfCalls(t, "Save", 3)
}

func Test_sessionService_Skip(t *testing.T) {
	ctx := context.Background()
	tr, repo := newTestTrainer(t, nil)
	expectStart(repo, "alice", nil)
	startSession(t, tr, &model.StartSessionRequest{Name: "alice", Count: 2})
	svc := NewSessionService(tr, nil)

	resp, err := svc.Skip(ctx, "alice")
	require.NoError(t, err)
	assert.False(t, resp.Completed)
	repo.AssertNumberOfCalls(t, "Save", 1)

	resp, err = svc.Skip(ctx, "alice")
	require.NoError(t, err)
	assert.True(t, resp.Completed)
	require.NotNil(t, resp.Summary)
	assert.Equal(t, 0, resp.Summary.LearnedCount)
	repo.AssertNumberOfCalls(t, "Save", 2)

	_, err = svc.Skip(ctx, "alice")
	assert.ErrorIs(t, err, model.ErrOutOfRange)
}

func Test_sessionService_EndSession(t *testing.T) {
	ctx := context.Background()
	tr, repo := newTestTrainer(t, nil)
	expectStart(repo, "alice", nil)
	startSession(t, tr, &model.StartSessionRequest{Name: "alice", Count: 4})
	svc := NewSessionService(tr, nil)

	_, err := svc.MarkLearned(ctx, "alice")
	require.NoError(t, err)

	resp, err := svc.EndSession(ctx, "alice")
	require.NoError(t, err)
	assert.True(t, resp.Completed)
	require.NotNil(t, resp.Summary)
	assert.Equal(t, 1, resp.Summary.LearnedCount)
	assert.Equal(t, 4, resp.Summary.SessionSize)

	again, err := svc.EndSession(ctx, "alice")
	require.NoError(t, err)
	assert.Nil(t, again.Summary)
	assert.Len(t, tr.entries["alice"].ws.Progress.SessionHistory, 1)

	current, err := svc.CurrentVerb(ctx, "alice")
	require.NoError(t, err)
	assert.True(t, current.Completed)
	assert.Nil(t, current.View)
}

func Test_sessionService_NoActiveUser(t *testing.T) {
	ctx := context.Background()
	tr, _ := newTestTrainer(t, nil)
	svc := NewSessionService(tr, nil)

	calls := map[string]func() error{
		"CurrentVerb": func() error { _, err := svc.CurrentVerb(ctx, "nobody"); return err },
		"MarkLearned": func() error { _, err := svc.MarkLearned(ctx, "nobody"); return err },
		"Skip":        func() error { _, err := svc.Skip(ctx, "nobody"); return err },
		"EndSession":  func() error { _, err := svc.EndSession(ctx, "nobody"); return err },
		"Pronounce":   func() error { _, err := svc.Pronounce(ctx, "nobody", false); return err },
		"CheckUtterance": func() error {
			_, err := svc.CheckUtterance(ctx, "nobody", "go")
			return err
		},
	}
	for name, call := range calls {
		t.Run(name, func(t *testing.T) {
			assert.ErrorIs(t, call(), model.ErrNoActiveUser)
		})
	}
}

func Test_sessionService_ContinueLastUser(t *testing.T) {
	ctx := context.Background()

	t.Run("正常系: 前回のユーザーの設定と統計を復元", func(t *testing.T) {
		tr, repo := newTestTrainer(t, nil)
		record := model.NewProgressRecord()
		record.Level = model.LevelB2
		record.Tense = model.TenseFuture
		record.LearnedTotal = 3
		record.ReviewList = []model.ReviewItem{{Base: "go", Translation: "ir"}}
		record.SessionHistory = []model.SessionSummary{{Timestamp: fixedNow, LearnedCount: 3, SessionSize: 5}}
		repo.On("LastActiveUser", mock.Anything, mock.Anything).Return("alice", nil).Once()
		repo.On("Load", mock.Anything, mock.Anything, "alice").Return(record, nil).Once()
		svc := NewSessionService(tr, nil)

		resp, err := svc.ContinueLastUser(ctx)
		require.NoError(t, err)
		assert.Equal(t, "alice", resp.User)
		assert.Equal(t, model.LevelB2, resp.Level)
		assert.Equal(t, model.TenseFuture, resp.Tense)
		require.NotNil(t, resp.Stats)
		assert.Equal(t, 3, resp.Stats.LearnedTotal)
		assert.Equal(t, 1, resp.Stats.ReviewItems)
		assert.Equal(t, 1, resp.Stats.SessionsFinished)

		_, err = svc.CurrentVerb(ctx, "alice")
		assert.ErrorIs(t, err, model.ErrNoActiveSession)
	})

	t.Run("異常系: 前回のユーザーがいない", func(t *testing.T) {
		tr, repo := newTestTrainer(t, nil)
		repo.On("LastActiveUser", mock.Anything, mock.Anything).Return("", model.ErrNotFound).Once()

		resp, err := NewSessionService(tr, nil).ContinueLastUser(ctx)
		assert.Nil(t, resp)
		assert.ErrorIs(t, err, model.ErrNoActiveUser)
	})

	t.Run("異常系: ストアの読み込みに失敗", func(t *testing.T) {
		tr, repo := newTestTrainer(t, nil)
		repo.On("LastActiveUser", mock.Anything, mock.Anything).Return("", errors.New("connection refused")).Once()

		_, err := NewSessionService(tr, nil).ContinueLastUser(ctx)
		var appErr *model.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, "INTERNAL_SERVER_ERROR", appErr.Code)
	})
}

func Test_sessionService_Pronounce(t *testing.T) {
	ctx := context.Background()

	t.Run("正常系: 表示形のみ", func(t *testing.T) {
		tr, repo := newTestTrainer(t, nil)
		expectStart(repo, "alice", nil)
		start := startSession(t, tr, &model.StartSessionRequest{Name: "alice", Count: 2})
		synth := speechmocks.NewSynthesizer(t)
		synth.On("Synthesize", mock.Anything, start.View.Display).Return([]byte("mp3"), nil).Once()

		audio, err := NewSessionService(tr, synth).Pronounce(ctx, "alice", false)
		require.NoError(t, err)
		assert.Equal(t, []byte("mp3"), audio)
	})

	t.Run("正常系: 例文付き", func(t *testing.T) {
		tr, repo := newTestTrainer(t, nil)
		expectStart(repo, "alice", nil)
		start := startSession(t, tr, &model.StartSessionRequest{Name: "alice", Count: 2})
		want := speech.Utterance(start.View.Display, start.View.Example)
		synth := speechmocks.NewSynthesizer(t)
		synth.On("Synthesize", mock.Anything, want).Return([]byte("mp3"), nil).Once()

		_, err := NewSessionService(tr, synth).Pronounce(ctx, "alice", true)
		require.NoError(t, err)
	})

	t.Run("異常系: 音声合成が無効", func(t *testing.T) {
		tr, repo := newTestTrainer(t, nil)
		expectStart(repo, "alice", nil)
		startSession(t, tr, &model.StartSessionRequest{Name: "alice", Count: 2})

		_, err := NewSessionService(tr, speech.NoopSynthesizer{}).Pronounce(ctx, "alice", false)
		assert.ErrorIs(t, err, model.ErrSpeechUnavailable)
	})

	t.Run("異常系: 音声合成が失敗", func(t *testing.T) {
		tr, repo := newTestTrainer(t, nil)
		expectStart(repo, "alice", nil)
		startSession(t, tr, &model.StartSessionRequest{Name: "alice", Count: 2})
		synth := speechmocks.NewSynthesizer(t)
		synth.On("Synthesize", mock.Anything, mock.Anything).Return(nil, errors.New("quota exceeded")).Once()

		_, err := NewSessionService(tr, synth).Pronounce(ctx, "alice", false)
		assert.ErrorIs(t, err, model.ErrSpeechUnavailable)
	})
}

func Test_sessionService_CheckUtterance(t *testing.T) {
	ctx := context.Background()
	tr, repo := newTestTrainer(t, nil)
	expectStart(repo, "alice", nil)
	start := startSession(t, tr, &model.StartSessionRequest{Name: "alice", Tense: "future", Count: 2})
	svc := NewSessionService(tr, nil)

	tests := []struct {
		name       string
		transcript string
		want       bool
	}{
		{name: "rendered form", transcript: "I " + start.View.Display + " tomorrow", want: true},
		{name: "case insensitive", transcript: strings.ToUpper(start.View.Base), want: true},
		{name: "unrelated", transcript: "xyz", want: false},
		{name: "empty", transcript: "", want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := svc.CheckUtterance(ctx, "alice", tt.transcript)
			require.NoError(t, err)
			assert.Equal(t, tt.want, resp.Matched)
			assert.Equal(t, start.View.Display, resp.Expected)
		})
	}

	v := tr.entries["alice"].ws.Session.Verbs[0]
	assert.Equal(t, render.RenderForm(v, model.TenseFuture), start.View.Display)
}
