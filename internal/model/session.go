// internal/model/session.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// Session is one bounded run through a sample of the catalog.
type Session struct {
	ID           uuid.UUID
	Verbs        []Verb
	CurrentIndex int
	Learned      []string // bases marked learned, in order
	Level        Level
	Tense        Tense
	StartedAt    time.Time
	Completed    bool
	GameScore    int
}

// Size is the number of verbs sampled for the session.
func (s *Session) Size() int {
	return len(s.Verbs)
}

// Bases returns the base forms of the session verbs in session order.
func (s *Session) Bases() []string {
	bases := make([]string, 0, len(s.Verbs))
	for _, v := range s.Verbs {
		bases = append(bases, v.Base)
	}
	return bases
}

// SessionSummary is appended to the history when a session completes or ends early.
type SessionSummary struct {
	Timestamp    time.Time `json:"timestamp"`
	LearnedCount int       `json:"learned_count"`
	SessionSize  int       `json:"session_size"`
}

// SessionSnapshot is informational only; it is never used to resume a session.
type SessionSnapshot struct {
	Bases        []string  `json:"bases"`
	CurrentIndex int       `json:"current_index"`
	SessionSize  int       `json:"session_size"`
	Timestamp    time.Time `json:"timestamp"`
}
