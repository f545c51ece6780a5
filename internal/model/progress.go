// internal/model/progress.go
package model

import (
	"strings"
	"time"
)

// ReviewItem tracks review correctness for one ever-learned verb.
type ReviewItem struct {
	Base           string     `json:"base"`
	Translation    string     `json:"translation"`
	CorrectCount   int        `json:"correct_count"`
	LastReviewedAt *time.Time `json:"last_reviewed_at"`
}

// ProgressRecord is the whole persisted per-user aggregate.
// It is always saved by full overwrite.
type ProgressRecord struct {
	Level          Level            `json:"level"`
	Tense          Tense            `json:"tense"`
	ReviewList     []ReviewItem     `json:"review_list"`
	LearnedTotal   int              `json:"learned_total"`
	SessionHistory []SessionSummary `json:"session_history"`
	LastSession    *SessionSnapshot `json:"last_session,omitempty"`
}

// NewProgressRecord returns the record used for a user with nothing saved yet.
func NewProgressRecord() *ProgressRecord {
	return &ProgressRecord{
		Level:          LevelA1,
		Tense:          TensePresent,
		ReviewList:     []ReviewItem{},
		SessionHistory: []SessionSummary{},
	}
}

// FindReviewItem returns the index of the item with the given base, or -1.
func (p *ProgressRecord) FindReviewItem(base string) int {
	for i := range p.ReviewList {
		if strings.EqualFold(p.ReviewList[i].Base, base) {
			return i
		}
	}
	return -1
}

// UpsertReviewItem adds an item for the verb unless one already exists.
// It reports whether a new item was created.
func (p *ProgressRecord) UpsertReviewItem(v Verb) bool {
	if p.FindReviewItem(v.Base) >= 0 {
		return false
	}
	p.ReviewList = append(p.ReviewList, ReviewItem{
		Base:        v.Base,
		Translation: v.Translation,
	})
	return true
}

// ProgressKey is the store key holding the record of the given user.
func ProgressKey(username string) string {
	return "progress:" + username
}

// LastActiveUserKey points at the most recently active user name.
const LastActiveUserKey = "last-active-user"

// KVEntry is one row of the key/value store backing progress persistence.
type KVEntry struct {
	Key       string `gorm:"primaryKey;type:varchar(255)"`
	Value     string `gorm:"type:text;not null"`
	UpdatedAt time.Time
}

func (KVEntry) TableName() string {
	return "kv_entries"
}

// Stats is the read model behind the stats view.
type Stats struct {
	User             string           `json:"user"`
	Level            Level            `json:"level"`
	Tense            Tense            `json:"tense"`
	SessionsFinished int              `json:"sessions_finished"`
	LearnedTotal     int              `json:"learned_total"`
	ReviewItems      int              `json:"review_items"`
	LastSessionAt    *time.Time       `json:"last_session_at"`
	History          []SessionSummary `json:"history"`
}
