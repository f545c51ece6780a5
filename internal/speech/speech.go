// Package speech turns display text into spoken audio.
package speech

import (
	"context"
	"errors"
	"strings"
)

// ErrUnavailable is returned by synthesizers that cannot produce audio.
var ErrUnavailable = errors.New("speech synthesis unavailable")

// Synthesizer renders text as MP3 audio.
//
//go:generate mockery --name Synthesizer --output ./mocks --outpkg mocks --case=underscore
type Synthesizer interface {
	Synthesize(ctx context.Context, text string) ([]byte, error)
	Close() error
}

// NoopSynthesizer is used when no speech backend is configured.
type NoopSynthesizer struct{}

func (NoopSynthesizer) Synthesize(ctx context.Context, text string) ([]byte, error) {
	return nil, ErrUnavailable
}

func (NoopSynthesizer) Close() error { return nil }

// Utterance joins the parts that should be spoken, in order, skipping blanks.
func Utterance(parts ...string) string {
	kept := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		if !strings.HasSuffix(p, ".") && !strings.HasSuffix(p, "!") && !strings.HasSuffix(p, "?") {
			p += "."
		}
		kept = append(kept, p)
	}
	return strings.Join(kept, " ")
}
