// internal/model/game.go
package model

// BlankMarker replaces the answer in a game sentence.
const BlankMarker = "_____"

// Round is one multiple-choice fill-in-the-blank question.
type Round struct {
	Sentence      string   `json:"sentence"`
	Choices       []string `json:"choices"`
	CorrectChoice string   `json:"-"`
}

type GameAnswerRequest struct {
	Choice string `json:"choice" validate:"required"`
}

// GameAnswerResponse reports the verdict and the round the client shows
// after waiting NextRoundInMs.
type GameAnswerResponse struct {
	Verdict       Verdict `json:"verdict"`
	CorrectChoice string  `json:"correct_choice"`
	Score         int     `json:"score"`
	NextRound     *Round  `json:"next_round"`
	NextRoundInMs int64   `json:"next_round_in_ms"`
}

type GameStartResponse struct {
	Score int    `json:"score"`
	Round *Round `json:"round"`
}
