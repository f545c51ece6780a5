// Package engine holds the session, review and game state machines.
//
// All state for one learner lives in a Workspace. Engines are synchronous and
// never touch persistence; callers decide when to save Workspace.Progress.
// A Workspace must not be used by more than one goroutine at a time.
package engine

import (
	"strings"
	"time"

	"go_verb_master/internal/model"
	"go_verb_master/internal/random"
)

// Workspace is the explicit per-learner context the engines operate on.
type Workspace struct {
	User     string
	Progress *model.ProgressRecord
	Session  *model.Session
	Review   *ReviewEngine
	Game     *GameEngine
	Selector *random.Selector

	// Now is the clock used for timestamps; tests replace it.
	Now func() time.Time
}

// NewWorkspace wraps a loaded progress record. A nil record starts a new user.
func NewWorkspace(user string, progress *model.ProgressRecord, sel *random.Selector) *Workspace {
	if progress == nil {
		progress = model.NewProgressRecord()
	}
	if sel == nil {
		sel = random.NewSelector(time.Now().UnixNano())
	}
	return &Workspace{
		User:     user,
		Progress: progress,
		Review:   &ReviewEngine{},
		Game:     &GameEngine{},
		Selector: sel,
		Now:      time.Now,
	}
}

func (ws *Workspace) now() time.Time {
	if ws.Now == nil {
		return time.Now()
	}
	return ws.Now()
}

// VerbLookup finds a full verb by base form.
type VerbLookup func(base string) (model.Verb, bool)

// SessionLookup searches the verbs of the current session.
func (ws *Workspace) SessionLookup(base string) (model.Verb, bool) {
	if ws.Session == nil {
		return model.Verb{}, false
	}
	for _, v := range ws.Session.Verbs {
		if strings.EqualFold(v.Base, base) {
			return v, true
		}
	}
	return model.Verb{}, false
}

// ResolveVerb returns the first verb any lookup finds for the item, or a
// minimal verb built from the item itself.
func ResolveVerb(item model.ReviewItem, lookups ...VerbLookup) model.Verb {
	for _, lookup := range lookups {
		if lookup == nil {
			continue
		}
		if v, ok := lookup(item.Base); ok {
			return v
		}
	}
	return model.Verb{Base: item.Base, Translation: item.Translation}
}
