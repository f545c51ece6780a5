// internal/service/trainer.go
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"go_verb_master/internal/config"
	"go_verb_master/internal/engine"
	"go_verb_master/internal/middleware"
	"go_verb_master/internal/model"
	"go_verb_master/internal/random"
	"go_verb_master/internal/render"
	"go_verb_master/internal/repository"

	"gorm.io/gorm"
)

// VerbCatalog is the part of catalog.Catalog the services use.
type VerbCatalog interface {
	Load(ctx context.Context) []model.Verb
	Verbs() []model.Verb
	Len() int
	FindByBase(name string) (model.Verb, bool)
}

// Trainer owns the in-memory workspaces of all selected learners and the
// checkpoints that persist them. Each workspace is used by one request at a time.
type Trainer struct {
	db       *gorm.DB
	progRepo repository.ProgressRepository
	catalog  VerbCatalog
	cfg      *config.Config
	logger   *slog.Logger

	newSelector func() *random.Selector
	now         func() time.Time

	mu      sync.Mutex
	entries map[string]*workspaceEntry
}

type workspaceEntry struct {
	mu sync.Mutex
	ws *engine.Workspace
}

// TrainerOption customizes a Trainer.
type TrainerOption func(*Trainer)

// WithSelectorFactory replaces the crypto-seeded selectors given to new workspaces.
func WithSelectorFactory(fn func() *random.Selector) TrainerOption {
	return func(t *Trainer) { t.newSelector = fn }
}

// WithClock replaces time.Now for workspace timestamps.
func WithClock(now func() time.Time) TrainerOption {
	return func(t *Trainer) { t.now = now }
}

func NewTrainer(db *gorm.DB, progRepo repository.ProgressRepository, catalog VerbCatalog, cfg *config.Config, logger *slog.Logger, opts ...TrainerOption) *Trainer {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg == nil {
		cfg = &config.Config{}
	}
	t := &Trainer{
		db:       db,
		progRepo: progRepo,
		catalog:  catalog,
		cfg:      cfg,
		logger:   logger,
		now:      time.Now,
		entries:  make(map[string]*workspaceEntry),
	}
	t.newSelector = func() *random.Selector {
		sel, err := random.NewRandomSelector()
		if err != nil {
			t.logger.Warn("Falling back to time-seeded selector", slog.Any("error", err))
			return random.NewSelector(time.Now().UnixNano())
		}
		return sel
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// open returns the workspace of user, loading the stored progress when the
// user is not cached yet.
func (t *Trainer) open(ctx context.Context, user string) (*workspaceEntry, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if e, ok := t.entries[user]; ok {
		return e, nil
	}
	progress, err := t.progRepo.Load(ctx, t.db, user)
	if err != nil {
		return nil, fmt.Errorf("Trainer.open: %w", err)
	}
	if isFresh(progress) {
		t.applyDefaults(progress)
	}
	ws := engine.NewWorkspace(user, progress, t.newSelector())
	ws.Now = t.now
	e := &workspaceEntry{ws: ws}
	t.entries[user] = e
	return e, nil
}

// withWorkspace runs fn on the cached workspace of user. Users that were never
// selected by starting or continuing a session get model.ErrNoActiveUser.
func (t *Trainer) withWorkspace(user string, fn func(ws *engine.Workspace) error) error {
	t.mu.Lock()
	e, ok := t.entries[user]
	t.mu.Unlock()
	if !ok {
		return noActiveUser()
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	return fn(e.ws)
}

// withOpenWorkspace is withWorkspace for operations that select the user.
func (t *Trainer) withOpenWorkspace(ctx context.Context, user string, fn func(ws *engine.Workspace) error) error {
	e, err := t.open(ctx, user)
	if err != nil {
		return model.NewAppError("INTERNAL_SERVER_ERROR", "Progress could not be loaded.", "", err)
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	return fn(e.ws)
}

// applyDefaults gives a new learner the configured level and tense.
func (t *Trainer) applyDefaults(progress *model.ProgressRecord) {
	if l, ok := model.ParseLevel(t.cfg.App.DefaultLevel); ok {
		progress.Level = l
	}
	if tn, ok := model.ParseTense(t.cfg.App.DefaultTense); ok {
		progress.Tense = tn
	}
}

func isFresh(p *model.ProgressRecord) bool {
	return p.LearnedTotal == 0 && len(p.ReviewList) == 0 && len(p.SessionHistory) == 0 && p.LastSession == nil
}

func (t *Trainer) forget(user string) {
	t.mu.Lock()
	delete(t.entries, user)
	t.mu.Unlock()
}

// save is the persistence checkpoint. Failures are reported to the caller.
func (t *Trainer) save(ctx context.Context, ws *engine.Workspace) error {
	if err := t.progRepo.Save(ctx, t.db, ws.User, ws.Progress); err != nil {
		middleware.GetLogger(ctx).Error("Failed to save progress", "error", err, "user", ws.User)
		return model.NewAppError("PERSISTENCE_ERROR", "Progress could not be saved.", "", fmt.Errorf("%w: %v", model.ErrPersistence, err))
	}
	return nil
}

// verbs returns the catalog snapshot, loading it on first use.
func (t *Trainer) verbs(ctx context.Context) []model.Verb {
	if t.catalog.Len() == 0 {
		return t.catalog.Load(ctx)
	}
	return t.catalog.Verbs()
}

func (t *Trainer) lookups(ws *engine.Workspace) []engine.VerbLookup {
	return []engine.VerbLookup{t.catalog.FindByBase, ws.SessionLookup}
}

// view describes the current verb of the session, or nil when it is complete.
func view(ws *engine.Workspace) *model.VerbView {
	v, err := ws.Current()
	if err != nil {
		return nil
	}
	s := ws.Session
	return &model.VerbView{
		Index:       s.CurrentIndex,
		Size:        s.Size(),
		Progress:    ws.ProgressFraction(),
		Base:        v.Base,
		Past:        v.PastForm(),
		Participle:  v.ParticipleForm(),
		Translation: v.Translation,
		Display:     render.RenderForm(v, s.Tense),
		Example:     render.AdaptExample(render.ExampleFor(v, s.Level), v, s.Tense),
		Level:       s.Level,
		Tense:       s.Tense,
	}
}

func stats(ws *engine.Workspace) *model.Stats {
	p := ws.Progress
	st := &model.Stats{
		User:             ws.User,
		Level:            p.Level,
		Tense:            p.Tense,
		SessionsFinished: len(p.SessionHistory),
		LearnedTotal:     p.LearnedTotal,
		ReviewItems:      len(p.ReviewList),
		History:          append([]model.SessionSummary{}, p.SessionHistory...),
	}
	if p.LastSession != nil {
		ts := p.LastSession.Timestamp
		st.LastSessionAt = &ts
	}
	return st
}

func noActiveUser() error {
	return model.NewAppError("NO_ACTIVE_USER", "Start a session or continue the last user first.", "user", model.ErrNoActiveUser)
}

// appError gives engine sentinels a client-facing code and message.
func appError(err error) error {
	var appErr *model.AppError
	if err == nil || errors.As(err, &appErr) {
		return err
	}
	switch {
	case errors.Is(err, model.ErrNoActiveSession):
		return model.NewAppError("NO_ACTIVE_SESSION", "No session in progress. Start a session first.", "", err)
	case errors.Is(err, model.ErrOutOfRange):
		return model.NewAppError("SESSION_COMPLETE", "The session has no more verbs.", "", err)
	case errors.Is(err, model.ErrEmptyReviewQueue):
		return model.NewAppError("EMPTY_REVIEW_QUEUE", "Your review list is empty. Mark some verbs as learned first.", "", err)
	case errors.Is(err, model.ErrReviewNotActive):
		return model.NewAppError("REVIEW_NOT_ACTIVE", "No review in progress. Start a review first.", "", err)
	case errors.Is(err, model.ErrInvalidInput):
		return model.NewAppError("INVALID_INPUT", err.Error(), "", err)
	case errors.Is(err, model.ErrCatalogUnavailable):
		return model.NewAppError("CATALOG_UNAVAILABLE", "No verbs are available.", "", err)
	}
	return err
}

func normalizeName(name string) string {
	return strings.TrimSpace(name)
}
