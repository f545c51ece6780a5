package repository

import (
	"encoding/json"
	"fmt"
	"strings"

	"go_verb_master/internal/model"
)

// EncodeProgress serializes a record into the text value stored under its key.
func EncodeProgress(p *model.ProgressRecord) (string, error) {
	data, err := json.Marshal(p)
	if err != nil {
		return "", fmt.Errorf("EncodeProgress: %w", err)
	}
	return string(data), nil
}

// DecodeProgress parses a stored value. Unknown levels and tenses fall back to
// the new-user defaults and duplicate review items keep the first entry.
func DecodeProgress(value string) (*model.ProgressRecord, error) {
	if strings.TrimSpace(value) == "" {
		return nil, model.ErrMalformedProgressRecord
	}
	var p model.ProgressRecord
	if err := json.Unmarshal([]byte(value), &p); err != nil {
		return nil, fmt.Errorf("%w: %v", model.ErrMalformedProgressRecord, err)
	}

	if level, ok := model.ParseLevel(string(p.Level)); ok {
		p.Level = level
	} else {
		p.Level = model.LevelA1
	}
	if tense, ok := model.ParseTense(string(p.Tense)); ok {
		p.Tense = tense
	} else {
		p.Tense = model.TensePresent
	}
	if p.SessionHistory == nil {
		p.SessionHistory = []model.SessionSummary{}
	}

	items := make([]model.ReviewItem, 0, len(p.ReviewList))
	seen := make(map[string]bool, len(p.ReviewList))
	for _, item := range p.ReviewList {
		key := strings.ToLower(strings.TrimSpace(item.Base))
		if key == "" || seen[key] {
			continue
		}
		seen[key] = true
		items = append(items, item)
	}
	p.ReviewList = items
	if p.LearnedTotal < 0 {
		p.LearnedTotal = 0
	}
	return &p, nil
}
