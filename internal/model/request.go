// internal/model/request.go
package model

// StartSessionRequest is the body of the start-session control.
// Count 0 means the configured default.
type StartSessionRequest struct {
	Name  string `json:"name" validate:"required,min=1,max=64"`
	Level string `json:"level" validate:"omitempty,oneof=A1 B1 B2 a1 b1 b2"`
	Tense string `json:"tense" validate:"omitempty,oneof=present past future"`
	Count int    `json:"count" validate:"min=0,max=100"`
}

type UtteranceRequest struct {
	Transcript string `json:"transcript" validate:"required,max=500"`
}

type UtteranceResponse struct {
	Matched    bool   `json:"matched"`
	Transcript string `json:"transcript"`
	Expected   string `json:"expected"`
}

// VerbView is what the learning screen shows for the current verb.
type VerbView struct {
	Index       int     `json:"index"`
	Size        int     `json:"size"`
	Progress    float64 `json:"progress"`
	Base        string  `json:"base"`
	Past        string  `json:"past"`
	Participle  string  `json:"participle"`
	Translation string  `json:"translation"`
	Display     string  `json:"display"`
	Example     string  `json:"example"`
	Level       Level   `json:"level"`
	Tense       Tense   `json:"tense"`
}

// SessionStepResponse is returned by learned/skip/end. View is nil once the
// session is complete, and Summary is set exactly when it completed on this step.
type SessionStepResponse struct {
	Completed bool            `json:"completed"`
	View      *VerbView       `json:"view,omitempty"`
	Summary   *SessionSummary `json:"summary,omitempty"`
}

// ContinueResponse describes the restored user; the next session is a fresh sample.
type ContinueResponse struct {
	User  string `json:"user"`
	Level Level  `json:"level"`
	Tense Tense  `json:"tense"`
	Stats *Stats `json:"stats"`
}
