// internal/model/review.go
package model

// Verdict is the outcome of evaluating one answer.
type Verdict string

const (
	VerdictCorrect   Verdict = "correct"
	VerdictIncorrect Verdict = "incorrect"
)

// Direction selects what a review prompt shows and what it expects back.
type Direction string

const (
	// DirectionForward shows the English form and expects the translation.
	DirectionForward Direction = "forward"
	// DirectionBackward shows the translation and expects an English form.
	DirectionBackward Direction = "backward"
)

// ReviewPrompt is the view of the current review position.
type ReviewPrompt struct {
	Prompt    string    `json:"prompt"`
	Direction Direction `json:"direction"`
	Position  int       `json:"position"`
	Total     int       `json:"total"`
}

// StartReviewRequest starts a review run.
type StartReviewRequest struct {
	Direction Direction `json:"direction" validate:"omitempty,oneof=forward backward"`
}

// ReviewAnswerRequest carries the learner's typed answer.
type ReviewAnswerRequest struct {
	Input string `json:"input" validate:"max=200"`
}

type ReviewAnswerResponse struct {
	Verdict Verdict `json:"verdict"`
}

// ReviewStepResponse is returned after moving through the queue.
// Prompt is nil once the queue is exhausted.
type ReviewStepResponse struct {
	Finished bool          `json:"finished"`
	Prompt   *ReviewPrompt `json:"prompt,omitempty"`
}
