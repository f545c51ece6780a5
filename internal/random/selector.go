// Package random provides the shuffling and sampling used to build sessions,
// review queues and game choices.
//
// A Selector wraps a seeded pseudo-random source so tests can reproduce a run.
// It is not safe for concurrent use; each learner workspace owns its own.
package random

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	"math/rand"
)

type Selector struct {
	rng *rand.Rand
}

// NewSelector returns a Selector with a fixed seed.
func NewSelector(seed int64) *Selector {
	return &Selector{rng: rand.New(rand.NewSource(seed))}
}

// NewRandomSelector seeds a Selector from crypto/rand.
func NewRandomSelector() (*Selector, error) {
	seed, err := NewSeed()
	if err != nil {
		return nil, err
	}
	return NewSelector(seed), nil
}

// NewSeed generates a random seed using crypto/rand.
func NewSeed() (int64, error) {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0, fmt.Errorf("read random seed: %w", err)
	}
	return int64(binary.LittleEndian.Uint64(b[:])), nil
}

// Intn returns a uniform int in [0, n). n must be positive.
func (s *Selector) Intn(n int) int {
	return s.rng.Intn(n)
}

// Shuffle permutes items in place (Fisher–Yates) and returns the same slice.
func Shuffle[T any](s *Selector, items []T) []T {
	for i := len(items) - 1; i > 0; i-- {
		j := s.rng.Intn(i + 1)
		items[i], items[j] = items[j], items[i]
	}
	return items
}

// Sample returns n elements drawn without replacement. The input is not modified.
// When n exceeds len(items) the whole shuffled copy is returned.
func Sample[T any](s *Selector, items []T, n int) []T {
	if n <= 0 {
		return []T{}
	}
	shuffled := Shuffle(s, append([]T(nil), items...))
	if n > len(shuffled) {
		n = len(shuffled)
	}
	return shuffled[:n]
}

// Pick returns one uniformly chosen element. ok is false for an empty slice.
func Pick[T any](s *Selector, items []T) (item T, ok bool) {
	if len(items) == 0 {
		return item, false
	}
	return items[s.rng.Intn(len(items))], true
}

// ChooseDistractors returns up to count distinct values from pool, none equal to correct.
// The pool is deduplicated before drawing, so the result is shorter than count only when
// the pool does not hold enough distinct candidates.
func ChooseDistractors(s *Selector, pool []string, correct string, count int) []string {
	seen := make(map[string]struct{}, len(pool))
	candidates := make([]string, 0, len(pool))
	for _, p := range pool {
		if p == correct {
			continue
		}
		if _, dup := seen[p]; dup {
			continue
		}
		seen[p] = struct{}{}
		candidates = append(candidates, p)
	}
	return Sample(s, candidates, count)
}
