// internal/engine/game.go
package engine

import (
	"fmt"
	"strings"

	"go_verb_master/internal/model"
	"go_verb_master/internal/random"
	"go_verb_master/internal/render"
)

const (
	GameChoices     = 4
	GameDistractors = GameChoices - 1
)

// GameEngine produces fill-in-the-blank rounds and keeps the score of the
// current session.
type GameEngine struct {
	round *model.Round
	score int
}

// NextRound picks a verb and builds a round with exactly GameChoices choices,
// one of them correct.
func (g *GameEngine) NextRound(sel *random.Selector, verbs []model.Verb, level model.Level, tense model.Tense) (*model.Round, error) {
	v, ok := random.Pick(sel, verbs)
	if !ok {
		return nil, model.ErrNoActiveSession
	}
	correct := render.RenderForm(v, tense)

	example := render.ExampleFor(v, level)
	sentence, masked := render.MaskFirst(example, correct, model.BlankMarker)
	if !masked {
		sentence = strings.TrimSpace(example + " (use: " + model.BlankMarker + ")")
	}

	pool := make([]string, 0, len(verbs))
	for _, other := range verbs {
		pool = append(pool, render.RenderForm(other, tense))
	}
	choices := append([]string{correct}, random.ChooseDistractors(sel, pool, correct, GameDistractors)...)
	for n := 1; len(choices) < GameChoices; n++ {
		choices = append(choices, fmt.Sprintf("(no option %d)", n))
	}
	random.Shuffle(sel, choices)

	g.round = &model.Round{
		Sentence:      sentence,
		Choices:       choices,
		CorrectChoice: correct,
	}
	return g.round, nil
}

// Round returns the unanswered round, or nil.
func (g *GameEngine) Round() *model.Round {
	return g.round
}

// ScoreAttempt answers the current round. A round can be answered once.
func (g *GameEngine) ScoreAttempt(choice string) (model.Verdict, string, error) {
	if g.round == nil {
		return "", "", fmt.Errorf("ScoreAttempt: no round in play: %w", model.ErrInvalidInput)
	}
	correct := g.round.CorrectChoice
	g.round = nil
	if choice == correct {
		g.score++
		return model.VerdictCorrect, correct, nil
	}
	return model.VerdictIncorrect, correct, nil
}

func (g *GameEngine) Score() int { return g.score }

// Reset clears the score and any pending round.
func (g *GameEngine) Reset() {
	g.round = nil
	g.score = 0
}

// NextGameRound deals a round from the session verbs in the session's level and tense.
func (ws *Workspace) NextGameRound() (*model.Round, error) {
	if ws.Session == nil {
		return nil, model.ErrNoActiveSession
	}
	return ws.Game.NextRound(ws.Selector, ws.Session.Verbs, ws.Session.Level, ws.Session.Tense)
}

// AnswerGame scores choice against the pending round and records the score on the session.
func (ws *Workspace) AnswerGame(choice string) (model.Verdict, string, error) {
	if ws.Session == nil {
		return "", "", model.ErrNoActiveSession
	}
	verdict, correct, err := ws.Game.ScoreAttempt(choice)
	if err != nil {
		return "", "", err
	}
	ws.Session.GameScore = ws.Game.Score()
	return verdict, correct, nil
}
