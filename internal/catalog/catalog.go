// internal/catalog/catalog.go
package catalog

import (
	"context"
	"log/slog"
	"strings"
	"sync"

	"go_verb_master/internal/model"
)

// Source delivers raw verb records. Implementations may block on I/O and
// must honor ctx.
type Source interface {
	Fetch(ctx context.Context) ([]model.VerbRecord, error)
	Name() string
}

// Catalog holds the current snapshot of loaded verbs.
// Load may be called again at any time to swap the snapshot.
type Catalog struct {
	source Source
	logger *slog.Logger

	mu     sync.RWMutex
	verbs  []model.Verb
	byBase map[string]int
}

func New(source Source, logger *slog.Logger) *Catalog {
	if logger == nil {
		logger = slog.Default()
	}
	if source == nil {
		source = BuiltinSource{}
	}
	return &Catalog{
		source: source,
		logger: logger.With(slog.String("component", "catalog")),
		byBase: map[string]int{},
	}
}

// Load fetches verbs from the source and replaces the snapshot. A failing or
// empty source falls back to the built-in sample set; the failure is only logged.
func (c *Catalog) Load(ctx context.Context) []model.Verb {
	logger := c.logger.With(slog.String("source", c.source.Name()))

	records, err := c.source.Fetch(ctx)
	verbs := normalize(records)
	switch {
	case err != nil:
		logger.WarnContext(ctx, "Catalog source failed, using built-in verbs", slog.Any("error", err))
		verbs = Builtin()
	case len(verbs) == 0:
		logger.WarnContext(ctx, "Catalog source returned no verbs, using built-in verbs")
		verbs = Builtin()
	default:
		logger.InfoContext(ctx, "Catalog loaded", slog.Int("verbs", len(verbs)))
	}

	index := make(map[string]int, len(verbs))
	for i, v := range verbs {
		index[strings.ToLower(v.Base)] = i
	}

	c.mu.Lock()
	c.verbs = verbs
	c.byBase = index
	c.mu.Unlock()

	return c.Verbs()
}

// Verbs returns a copy of the current snapshot.
func (c *Catalog) Verbs() []model.Verb {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]model.Verb, len(c.verbs))
	copy(out, c.verbs)
	return out
}

// Len is the number of verbs in the current snapshot.
func (c *Catalog) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.verbs)
}

// FindByBase looks a verb up by its base form, ignoring case.
func (c *Catalog) FindByBase(name string) (model.Verb, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	i, ok := c.byBase[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return model.Verb{}, false
	}
	return c.verbs[i], true
}

// normalize converts records to verbs, dropping records without a base and
// keeping only the first record for each base.
func normalize(records []model.VerbRecord) []model.Verb {
	verbs := make([]model.Verb, 0, len(records))
	seen := make(map[string]bool, len(records))
	for _, r := range records {
		v := r.ToVerb()
		if v.Base == "" {
			continue
		}
		key := strings.ToLower(v.Base)
		if seen[key] {
			continue
		}
		seen[key] = true
		verbs = append(verbs, v)
	}
	return verbs
}
