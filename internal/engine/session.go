// internal/engine/session.go
package engine

import (
	"fmt"

	"github.com/google/uuid"

	"go_verb_master/internal/model"
	"go_verb_master/internal/random"
)

const (
	DefaultSessionSize = 10
	MaxSessionSize     = 100
)

// ClampSessionSize maps a requested count into [1, MaxSessionSize]; 0 means the default.
func ClampSessionSize(count, def int) int {
	if count == 0 {
		count = def
	}
	if count <= 0 {
		count = DefaultSessionSize
	}
	if count > MaxSessionSize {
		count = MaxSessionSize
	}
	return count
}

// StartSession samples count verbs without replacement and makes them the
// current session. Level and tense become the learner's saved preferences.
func (ws *Workspace) StartSession(verbs []model.Verb, count int, level model.Level, tense model.Tense) (*model.Session, error) {
	if len(verbs) == 0 {
		return nil, fmt.Errorf("StartSession: no verbs to sample: %w", model.ErrCatalogUnavailable)
	}
	count = ClampSessionSize(count, DefaultSessionSize)

	ws.Session = &model.Session{
		ID:        uuid.New(),
		Verbs:     random.Sample(ws.Selector, verbs, count),
		Learned:   []string{},
		Level:     level,
		Tense:     tense,
		StartedAt: ws.now(),
	}
	ws.Game.Reset()
	ws.Progress.Level = level
	ws.Progress.Tense = tense
	ws.snapshot()
	return ws.Session, nil
}

// HasCurrent reports whether the session pointer is on a verb.
func (ws *Workspace) HasCurrent() bool {
	s := ws.Session
	return s != nil && !s.Completed && s.CurrentIndex < len(s.Verbs)
}

// Current returns the verb under the session pointer.
func (ws *Workspace) Current() (model.Verb, error) {
	if ws.Session == nil {
		return model.Verb{}, model.ErrNoActiveSession
	}
	if !ws.HasCurrent() {
		return model.Verb{}, model.ErrOutOfRange
	}
	return ws.Session.Verbs[ws.Session.CurrentIndex], nil
}

// MarkLearned records the current verb as learned. Every call counts toward
// LearnedTotal; the review list gains the verb only once.
func (ws *Workspace) MarkLearned() (model.Verb, error) {
	v, err := ws.Current()
	if err != nil {
		return model.Verb{}, err
	}
	ws.Session.Learned = append(ws.Session.Learned, v.Base)
	ws.Progress.UpsertReviewItem(v)
	ws.Progress.LearnedTotal++
	return v, nil
}

// Advance moves to the next verb. On the last verb the session completes and
// its summary is appended to the history and returned. Calls after completion
// do nothing and return nil.
func (ws *Workspace) Advance() (*model.SessionSummary, error) {
	s := ws.Session
	if s == nil {
		return nil, model.ErrNoActiveSession
	}
	if s.Completed {
		return nil, nil
	}
	if s.CurrentIndex < len(s.Verbs)-1 {
		s.CurrentIndex++
		ws.snapshot()
		return nil, nil
	}
	s.CurrentIndex = len(s.Verbs)
	return ws.complete(), nil
}

// Skip advances without marking the current verb.
func (ws *Workspace) Skip() (*model.SessionSummary, error) {
	return ws.Advance()
}

// Finish ends the session early. The summary is appended only if the session
// had not already completed.
func (ws *Workspace) Finish() (*model.SessionSummary, error) {
	s := ws.Session
	if s == nil {
		return nil, model.ErrNoActiveSession
	}
	if s.Completed {
		return nil, nil
	}
	return ws.complete(), nil
}

// ProgressFraction is CurrentIndex/Size clamped to [0, 1].
func (ws *Workspace) ProgressFraction() float64 {
	s := ws.Session
	if s == nil || len(s.Verbs) == 0 {
		return 0
	}
	f := float64(s.CurrentIndex) / float64(len(s.Verbs))
	if f > 1 {
		return 1
	}
	if f < 0 {
		return 0
	}
	return f
}

func (ws *Workspace) complete() *model.SessionSummary {
	s := ws.Session
	s.Completed = true
	summary := model.SessionSummary{
		Timestamp:    ws.now(),
		LearnedCount: len(s.Learned),
		SessionSize:  len(s.Verbs),
	}
	ws.Progress.SessionHistory = append(ws.Progress.SessionHistory, summary)
	ws.snapshot()
	return &summary
}

func (ws *Workspace) snapshot() {
	s := ws.Session
	ws.Progress.LastSession = &model.SessionSnapshot{
		Bases:        s.Bases(),
		CurrentIndex: s.CurrentIndex,
		SessionSize:  len(s.Verbs),
		Timestamp:    ws.now(),
	}
}
