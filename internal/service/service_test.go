package service

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"go_verb_master/internal/catalog"
	"go_verb_master/internal/config"
	"go_verb_master/internal/model"
	"go_verb_master/internal/random"
	"go_verb_master/internal/repository/mocks"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var (
	testLogger = slog.New(slog.NewTextHandler(io.Discard, nil))
	fixedNow   = time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
)

func testConfig() *config.Config {
	return &config.Config{
		App: config.AppConfig{
			DefaultSessionSize: 5,
			MaxSessionSize:     20,
			DefaultLevel:       "A1",
			DefaultTense:       "present",
			GameSettleDelay:    1500 * time.Millisecond,
		},
	}
}

func newTestTrainer(t *testing.T, cfg *config.Config) (*Trainer, *mocks.ProgressRepository) {
	t.Helper()
	if cfg == nil {
		cfg = testConfig()
	}
	repo := mocks.NewProgressRepository(t)
	cat := catalog.New(catalog.BuiltinSource{}, testLogger)
	tr := NewTrainer(nil, repo, cat, cfg, testLogger,
		WithSelectorFactory(func() *random.Selector { return random.NewSelector(7) }),
		WithClock(func() time.Time { return fixedNow }),
	)
	return tr, repo
}

// expectStart registers the repository calls of a successful StartSession.
func expectStart(repo *mocks.ProgressRepository, user string, record *model.ProgressRecord) {
	if record == nil {
		record = model.NewProgressRecord()
	}
	repo.On("Load", mock.Anything, mock.Anything, user).Return(record, nil).Once()
	repo.On("Save", mock.Anything, mock.Anything, user, mock.Anything).Return(nil)
	repo.On("SetLastActiveUser", mock.Anything, mock.Anything, user).Return(nil).Once()
}

func startSession(t *testing.T, tr *Trainer, req *model.StartSessionRequest) *model.SessionStepResponse {
	t.Helper()
	resp, err := NewSessionService(tr, nil).StartSession(context.Background(), req)
	require.NoError(t, err)
	require.NotNil(t, resp.View)
	return resp
}
