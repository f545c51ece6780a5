package speech

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	texttospeech "cloud.google.com/go/texttospeech/apiv1"
	texttospeechpb "google.golang.org/genproto/googleapis/cloud/texttospeech/v1"
)

// maxCachedClips bounds the in-memory clip cache.
const maxCachedClips = 512

type synthesizeFunc func(ctx context.Context, req *texttospeechpb.SynthesizeSpeechRequest) (*texttospeechpb.SynthesizeSpeechResponse, error)

// GoogleConfig selects the voice used by GoogleSynthesizer.
type GoogleConfig struct {
	LanguageCode string
	VoiceName    string
	SpeakingRate float64
}

// GoogleSynthesizer calls Google Cloud Text-to-Speech and caches clips by text.
// Credentials come from GOOGLE_APPLICATION_CREDENTIALS.
type GoogleSynthesizer struct {
	client     *texttospeech.Client
	synthesize synthesizeFunc
	cfg        GoogleConfig
	logger     *slog.Logger

	mu    sync.Mutex
	clips map[string][]byte
}

func NewGoogleSynthesizer(ctx context.Context, cfg GoogleConfig, logger *slog.Logger) (*GoogleSynthesizer, error) {
	client, err := texttospeech.NewClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("speech.NewGoogleSynthesizer: %w", err)
	}
	s := newGoogleSynthesizer(func(ctx context.Context, req *texttospeechpb.SynthesizeSpeechRequest) (*texttospeechpb.SynthesizeSpeechResponse, error) {
		return client.SynthesizeSpeech(ctx, req)
	}, cfg, logger)
	s.client = client
	return s, nil
}

func newGoogleSynthesizer(fn synthesizeFunc, cfg GoogleConfig, logger *slog.Logger) *GoogleSynthesizer {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.LanguageCode == "" {
		cfg.LanguageCode = "en-US"
	}
	if cfg.SpeakingRate <= 0 {
		cfg.SpeakingRate = 0.95
	}
	return &GoogleSynthesizer{
		synthesize: fn,
		cfg:        cfg,
		logger:     logger.With(slog.String("component", "speech")),
		clips:      make(map[string][]byte),
	}
}

func (s *GoogleSynthesizer) Synthesize(ctx context.Context, text string) ([]byte, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, fmt.Errorf("speech.Synthesize: empty text")
	}

	s.mu.Lock()
	clip, ok := s.clips[text]
	s.mu.Unlock()
	if ok {
		return clip, nil
	}

	resp, err := s.synthesize(ctx, s.request(text))
	if err != nil {
		s.logger.WarnContext(ctx, "Speech synthesis failed", slog.Any("error", err), slog.String("text", text))
		return nil, fmt.Errorf("speech.Synthesize: %w", err)
	}

	s.mu.Lock()
	if len(s.clips) >= maxCachedClips {
		s.clips = make(map[string][]byte)
	}
	s.clips[text] = resp.AudioContent
	s.mu.Unlock()
	return resp.AudioContent, nil
}

func (s *GoogleSynthesizer) request(text string) *texttospeechpb.SynthesizeSpeechRequest {
	return &texttospeechpb.SynthesizeSpeechRequest{
		Input: &texttospeechpb.SynthesisInput{
			InputSource: &texttospeechpb.SynthesisInput_Text{Text: text},
		},
		Voice: &texttospeechpb.VoiceSelectionParams{
			LanguageCode: s.cfg.LanguageCode,
			Name:         s.cfg.VoiceName,
		},
		AudioConfig: &texttospeechpb.AudioConfig{
			AudioEncoding: texttospeechpb.AudioEncoding_MP3,
			SpeakingRate:  s.cfg.SpeakingRate,
		},
	}
}

func (s *GoogleSynthesizer) Close() error {
	if s.client == nil {
		return nil
	}
	return s.client.Close()
}
