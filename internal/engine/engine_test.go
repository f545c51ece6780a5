package engine

import (
	"fmt"
	"time"

	"go_verb_master/internal/model"
	"go_verb_master/internal/random"
)

var fixedNow = time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

func newTestWorkspace() *Workspace {
	ws := NewWorkspace("alice", nil, random.NewSelector(42))
	ws.Now = func() time.Time { return fixedNow }
	return ws
}

// testVerbs returns n distinct regular verbs.
func testVerbs(n int) []model.Verb {
	verbs := make([]model.Verb, 0, n)
	for i := 0; i < n; i++ {
		base := fmt.Sprintf("verb%02d", i)
		verbs = append(verbs, model.Verb{
			Base:        base,
			Past:        base + "ed",
			Participle:  base + "ed",
			Translation: fmt.Sprintf("verbo%02d", i),
			Examples: map[model.Level]string{
				model.LevelA1: "I " + base + " every day.",
			},
		})
	}
	return verbs
}

var goVerb = model.Verb{
	Base:        "go",
	Past:        "went",
	Participle:  "gone",
	Translation: "ir",
	Examples: map[model.Level]string{
		model.LevelA1: "I go to school every day.",
		model.LevelB1: "She went to the mountains last weekend.",
	},
}

var beVerb = model.Verb{
	Base:        "be",
	Past:        "was/were",
	Participle:  "been",
	Translation: "ser/estar",
	Examples: map[model.Level]string{
		model.LevelA1: "I am happy.",
	},
}
