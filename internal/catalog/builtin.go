package catalog

import (
	"context"
	_ "embed"
	"encoding/json"
	"sync"

	"go_verb_master/internal/model"
)

//go:embed builtin_verbs.json
var builtinJSON []byte

var builtinRecords = sync.OnceValue(func() []model.VerbRecord {
	var records []model.VerbRecord
	if err := json.Unmarshal(builtinJSON, &records); err != nil {
		panic("catalog: embedded verb list is invalid: " + err.Error())
	}
	return records
})

// Builtin returns the embedded sample set of common irregular and regular verbs.
func Builtin() []model.Verb {
	return normalize(builtinRecords())
}

// BuiltinSource serves the embedded sample set.
type BuiltinSource struct{}

func (BuiltinSource) Name() string { return "builtin" }

func (BuiltinSource) Fetch(ctx context.Context) ([]model.VerbRecord, error) {
	records := builtinRecords()
	out := make([]model.VerbRecord, len(records))
	copy(out, records)
	return out, nil
}
