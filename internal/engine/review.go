// internal/engine/review.go
package engine

import (
	"strings"
	"time"

	"go_verb_master/internal/model"
	"go_verb_master/internal/random"
	"go_verb_master/internal/render"
)

// Matcher decides whether normalized input answers one of the targets.
type Matcher func(input string, targets ...string) bool

// LenientTranslationMatch accepts input equal to a target or contained in it,
// so "ser" answers "ser/estar".
func LenientTranslationMatch(input string, targets ...string) bool {
	input = normalize(input)
	if input == "" {
		return false
	}
	for _, t := range targets {
		t = normalize(t)
		if t == "" {
			continue
		}
		if input == t || strings.Contains(t, input) {
			return true
		}
	}
	return false
}

// ExactFormMatch accepts input equal to one of the targets.
func ExactFormMatch(input string, targets ...string) bool {
	input = normalize(input)
	if input == "" {
		return false
	}
	for _, t := range targets {
		if t = normalize(t); t != "" && input == t {
			return true
		}
	}
	return false
}

// StrategyFor returns the matcher used for a review direction.
func StrategyFor(d model.Direction) Matcher {
	if d == model.DirectionBackward {
		return ExactFormMatch
	}
	return LenientTranslationMatch
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// ReviewEngine walks a shuffled copy of the review list.
// It is Idle until Start succeeds and returns to Idle after the last item.
type ReviewEngine struct {
	queue     []model.ReviewItem
	position  int
	active    bool
	direction model.Direction
	verdict   *model.Verdict
}

// Start begins a run over a shuffled copy of list.
func (r *ReviewEngine) Start(list []model.ReviewItem, direction model.Direction, sel *random.Selector) error {
	if len(list) == 0 {
		r.stop()
		return model.ErrEmptyReviewQueue
	}
	if direction != model.DirectionBackward {
		direction = model.DirectionForward
	}
	r.queue = random.Sample(sel, list, len(list))
	r.position = 0
	r.active = true
	r.direction = direction
	r.verdict = nil
	return nil
}

func (r *ReviewEngine) Active() bool { return r.active }

func (r *ReviewEngine) Position() int { return r.position }

func (r *ReviewEngine) Total() int { return len(r.queue) }

func (r *ReviewEngine) Direction() model.Direction { return r.direction }

// Current returns the item at the current position.
func (r *ReviewEngine) Current() (model.ReviewItem, error) {
	if !r.active || r.position >= len(r.queue) {
		return model.ReviewItem{}, model.ErrReviewNotActive
	}
	return r.queue[r.position], nil
}

// CurrentPrompt builds the prompt for the current item. Forward shows the
// English form in the tense; backward shows the translation.
func (r *ReviewEngine) CurrentPrompt(tense model.Tense, lookups ...VerbLookup) (model.ReviewPrompt, error) {
	item, err := r.Current()
	if err != nil {
		return model.ReviewPrompt{}, err
	}
	v := ResolveVerb(item, lookups...)

	prompt := item.Translation
	if r.direction == model.DirectionForward {
		prompt = render.RenderForm(v, tense)
	}
	return model.ReviewPrompt{
		Prompt:    prompt,
		Direction: r.direction,
		Position:  r.position,
		Total:     len(r.queue),
	}, nil
}

// Evaluate scores input against the current item and remembers the verdict
// until the next Advance or Retreat.
func (r *ReviewEngine) Evaluate(input string, lookups ...VerbLookup) (model.Verdict, error) {
	item, err := r.Current()
	if err != nil {
		return "", err
	}
	v := ResolveVerb(item, lookups...)

	var targets []string
	if r.direction == model.DirectionBackward {
		targets = []string{v.Base, v.Past, v.Participle}
	} else {
		targets = []string{item.Translation}
		if item.Translation == "" {
			targets = []string{v.Translation}
		}
	}

	verdict := model.VerdictIncorrect
	if StrategyFor(r.direction)(input, targets...) {
		verdict = model.VerdictCorrect
	}
	r.verdict = &verdict
	return verdict, nil
}

// Advance applies the pending verdict to progress and moves on. A correct
// verdict bumps the item's CorrectCount; every item in the list is stamped
// with now. It reports whether the run is finished.
func (r *ReviewEngine) Advance(progress *model.ProgressRecord, now time.Time) (bool, error) {
	item, err := r.Current()
	if err != nil {
		return false, err
	}
	if r.verdict != nil && *r.verdict == model.VerdictCorrect {
		if i := progress.FindReviewItem(item.Base); i >= 0 {
			progress.ReviewList[i].CorrectCount++
		}
	}
	for i := range progress.ReviewList {
		t := now
		progress.ReviewList[i].LastReviewedAt = &t
	}
	r.verdict = nil

	r.position++
	if r.position >= len(r.queue) {
		r.stop()
		return true, nil
	}
	return false, nil
}

// Retreat steps back one item without scoring. It does nothing at the first item.
func (r *ReviewEngine) Retreat() error {
	if !r.active {
		return model.ErrReviewNotActive
	}
	if r.position > 0 {
		r.position--
	}
	r.verdict = nil
	return nil
}

func (r *ReviewEngine) stop() {
	r.queue = nil
	r.position = 0
	r.active = false
	r.verdict = nil
}

// StartReview begins a review run over the learner's review list.
func (ws *Workspace) StartReview(direction model.Direction) error {
	return ws.Review.Start(ws.Progress.ReviewList, direction, ws.Selector)
}

// AdvanceReview applies the pending verdict to the learner's progress.
func (ws *Workspace) AdvanceReview() (bool, error) {
	return ws.Review.Advance(ws.Progress, ws.now())
}
