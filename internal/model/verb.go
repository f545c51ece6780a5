// internal/model/verb.go
package model

import "strings"

// Level is a learner proficiency level used to pick example sentences.
type Level string

const (
	LevelA1 Level = "A1"
	LevelB1 Level = "B1"
	LevelB2 Level = "B2"
)

// ParseLevel normalizes user input such as "b1" into a Level.
func ParseLevel(s string) (Level, bool) {
	switch Level(strings.ToUpper(strings.TrimSpace(s))) {
	case LevelA1:
		return LevelA1, true
	case LevelB1:
		return LevelB1, true
	case LevelB2:
		return LevelB2, true
	}
	return "", false
}

// Tense is the grammatical tense a verb is rendered in.
type Tense string

const (
	TensePresent Tense = "present"
	TensePast    Tense = "past"
	TenseFuture  Tense = "future"
)

func ParseTense(s string) (Tense, bool) {
	switch Tense(strings.ToLower(strings.TrimSpace(s))) {
	case TensePresent:
		return TensePresent, true
	case TensePast:
		return TensePast, true
	case TenseFuture:
		return TenseFuture, true
	}
	return "", false
}

// Verb is an immutable catalog entry. Past and Participle may be empty,
// in which case renderers fall back to Base.
type Verb struct {
	Base        string           `json:"base"`
	Past        string           `json:"past,omitempty"`
	Participle  string           `json:"participle,omitempty"`
	Translation string           `json:"translation,omitempty"`
	Examples    map[Level]string `json:"examples,omitempty"`
}

// PastForm returns Past, or Base when the catalog had no past form.
func (v Verb) PastForm() string {
	if v.Past != "" {
		return v.Past
	}
	return v.Base
}

// ParticipleForm returns Participle, or Base when absent.
func (v Verb) ParticipleForm() string {
	if v.Participle != "" {
		return v.Participle
	}
	return v.Base
}

// VerbRecord is the flat wire shape produced by catalog sources.
type VerbRecord struct {
	Verb        string `json:"verb"`
	Past        string `json:"past,omitempty"`
	Participle  string `json:"participle,omitempty"`
	Translation string `json:"translation,omitempty"`
	ExampleA1   string `json:"example_A1,omitempty"`
	ExampleB1   string `json:"example_B1,omitempty"`
	ExampleB2   string `json:"example_B2,omitempty"`
}

// ToVerb converts a wire record into a Verb, trimming surrounding whitespace.
func (r VerbRecord) ToVerb() Verb {
	v := Verb{
		Base:        strings.TrimSpace(r.Verb),
		Past:        strings.TrimSpace(r.Past),
		Participle:  strings.TrimSpace(r.Participle),
		Translation: strings.TrimSpace(r.Translation),
	}
	examples := map[Level]string{}
	if s := strings.TrimSpace(r.ExampleA1); s != "" {
		examples[LevelA1] = s
	}
	if s := strings.TrimSpace(r.ExampleB1); s != "" {
		examples[LevelB1] = s
	}
	if s := strings.TrimSpace(r.ExampleB2); s != "" {
		examples[LevelB2] = s
	}
	if len(examples) > 0 {
		v.Examples = examples
	}
	return v
}
