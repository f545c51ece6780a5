//go:generate mockery --name SessionService --output ./mocks --outpkg mocks --case=underscore
package service

import (
	"context"
	"errors"
	"fmt"

	"go_verb_master/internal/engine"
	"go_verb_master/internal/middleware"
	"go_verb_master/internal/model"
	"go_verb_master/internal/render"
	"go_verb_master/internal/speech"
)

// SessionService drives the learning screen: starting, stepping through and
// ending sessions, plus pronunciation and spoken-answer checks.
type SessionService interface {
	StartSession(ctx context.Context, req *model.StartSessionRequest) (*model.SessionStepResponse, error)
	ContinueLastUser(ctx context.Context) (*model.ContinueResponse, error)
	CurrentVerb(ctx context.Context, user string) (*model.SessionStepResponse, error)
	MarkLearned(ctx context.Context, user string) (*model.SessionStepResponse, error)
	Skip(ctx context.Context, user string) (*model.SessionStepResponse, error)
	EndSession(ctx context.Context, user string) (*model.SessionStepResponse, error)
	Pronounce(ctx context.Context, user string, withExample bool) ([]byte, error)
	CheckUtterance(ctx context.Context, user, transcript string) (*model.UtteranceResponse, error)
}

type sessionService struct {
	trainer     *Trainer
	synthesizer speech.Synthesizer
}

func NewSessionService(trainer *Trainer, synthesizer speech.Synthesizer) SessionService {
	if synthesizer == nil {
		synthesizer = speech.NoopSynthesizer{}
	}
	return &sessionService{trainer: trainer, synthesizer: synthesizer}
}

func (s *sessionService) StartSession(ctx context.Context, req *model.StartSessionRequest) (*model.SessionStepResponse, error) {
	user := normalizeName(req.Name)
	if user == "" {
		return nil, model.NewAppError("VALIDATION_ERROR", "name is a required field", "name", model.ErrInvalidInput)
	}
	logger := middleware.GetLogger(ctx).With("user", user)
	cfg := s.trainer.cfg.App

	var resp *model.SessionStepResponse
	err := s.trainer.withOpenWorkspace(ctx, user, func(ws *engine.Workspace) error {
		level := ws.Progress.Level
		if req.Level != "" {
			l, ok := model.ParseLevel(req.Level)
			if !ok {
				return model.NewAppError("VALIDATION_ERROR", fmt.Sprintf("unknown level %q", req.Level), "level", model.ErrInvalidInput)
			}
			level = l
		}
		tense := ws.Progress.Tense
		if req.Tense != "" {
			t, ok := model.ParseTense(req.Tense)
			if !ok {
				return model.NewAppError("VALIDATION_ERROR", fmt.Sprintf("unknown tense %q", req.Tense), "tense", model.ErrInvalidInput)
			}
			tense = t
		}

		count := engine.ClampSessionSize(req.Count, cfg.DefaultSessionSize)
		if cfg.MaxSessionSize > 0 && count > cfg.MaxSessionSize {
			count = cfg.MaxSessionSize
		}

		session, err := ws.StartSession(s.trainer.verbs(ctx), count, level, tense)
		if err != nil {
			return appError(err)
		}
		if err := s.trainer.save(ctx, ws); err != nil {
			return err
		}
		if err := s.trainer.progRepo.SetLastActiveUser(ctx, s.trainer.db, user); err != nil {
			logger.Error("Failed to record last active user", "error", err)
			return model.NewAppError("PERSISTENCE_ERROR", "Progress could not be saved.", "", fmt.Errorf("%w: %v", model.ErrPersistence, err))
		}

		logger.Info("Session started",
			"session_id", session.ID.String(),
			"size", session.Size(),
			"level", string(level),
			"tense", string(tense),
		)
		resp = &model.SessionStepResponse{View: view(ws)}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}

func (s *sessionService) ContinueLastUser(ctx context.Context) (*model.ContinueResponse, error) {
	logger := middleware.GetLogger(ctx)

	user, err := s.trainer.progRepo.LastActiveUser(ctx, s.trainer.db)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, model.NewAppError("NO_ACTIVE_USER", "No previous user was found.", "", model.ErrNoActiveUser)
		}
		logger.Error("Failed to read last active user", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "Progress could not be loaded.", "", err)
	}

	var resp *model.ContinueResponse
	err = s.trainer.withOpenWorkspace(ctx, user, func(ws *engine.Workspace) error {
		resp = &model.ContinueResponse{
			User:  user,
			Level: ws.Progress.Level,
			Tense: ws.Progress.Tense,
			Stats: stats(ws),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	logger.Info("Continued last user", "user", user)
	return resp, nil
}

func (s *sessionService) CurrentVerb(ctx context.Context, user string) (*model.SessionStepResponse, error) {
	var resp *model.SessionStepResponse
	err := s.trainer.withWorkspace(user, func(ws *engine.Workspace) error {
		if ws.Session == nil {
			return appError(model.ErrNoActiveSession)
		}
		v := view(ws)
		resp = &model.SessionStepResponse{Completed: v == nil, View: v}
		return nil
	})
	return resp, err
}

// MarkLearned records the current verb and moves on to the next one.
func (s *sessionService) MarkLearned(ctx context.Context, user string) (*model.SessionStepResponse, error) {
	logger := middleware.GetLogger(ctx)
	var resp *model.SessionStepResponse
	err := s.trainer.withWorkspace(user, func(ws *engine.Workspace) error {
		v, err := ws.MarkLearned()
		if err != nil {
			return appError(err)
		}
		summary, err := ws.Advance()
		if err != nil {
			return appError(err)
		}
		if err := s.trainer.save(ctx, ws); err != nil {
			return err
		}
		logger.Info("Verb marked learned", "verb", v.Base, "learned_total", ws.Progress.LearnedTotal)
		resp = step(ws, summary)
		return nil
	})
	return resp, err
}

func (s *sessionService) Skip(ctx context.Context, user string) (*model.SessionStepResponse, error) {
	var resp *model.SessionStepResponse
	err := s.trainer.withWorkspace(user, func(ws *engine.Workspace) error {
		if !ws.HasCurrent() {
			if ws.Session == nil {
				return appError(model.ErrNoActiveSession)
			}
			return appError(model.ErrOutOfRange)
		}
		summary, err := ws.Skip()
		if err != nil {
			return appError(err)
		}
		if summary != nil {
			if err := s.trainer.save(ctx, ws); err != nil {
				return err
			}
		}
		resp = step(ws, summary)
		return nil
	})
	return resp, err
}

// EndSession finishes the session early and records its summary.
func (s *sessionService) EndSession(ctx context.Context, user string) (*model.SessionStepResponse, error) {
	logger := middleware.GetLogger(ctx)
	var resp *model.SessionStepResponse
	err := s.trainer.withWorkspace(user, func(ws *engine.Workspace) error {
		summary, err := ws.Finish()
		if err != nil {
			return appError(err)
		}
		if summary != nil {
			if err := s.trainer.save(ctx, ws); err != nil {
				return err
			}
			logger.Info("Session ended", "learned", summary.LearnedCount, "size", summary.SessionSize)
		}
		resp = &model.SessionStepResponse{Completed: true, Summary: summary}
		return nil
	})
	return resp, err
}

// Pronounce speaks the current verb in the session tense, optionally followed
// by its adapted example sentence.
func (s *sessionService) Pronounce(ctx context.Context, user string, withExample bool) ([]byte, error) {
	var text string
	err := s.trainer.withWorkspace(user, func(ws *engine.Workspace) error {
		v := view(ws)
		if v == nil {
			if ws.Session == nil {
				return appError(model.ErrNoActiveSession)
			}
			return appError(model.ErrOutOfRange)
		}
		text = v.Display
		if withExample {
			text = speech.Utterance(v.Display, v.Example)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	audio, err := s.synthesizer.Synthesize(ctx, text)
	if err != nil {
		if errors.Is(err, speech.ErrUnavailable) {
			return nil, model.NewAppError("SPEECH_UNAVAILABLE", "Speech output is not configured.", "", model.ErrSpeechUnavailable)
		}
		middleware.GetLogger(ctx).Warn("Speech synthesis failed", "error", err)
		return nil, model.NewAppError("SPEECH_UNAVAILABLE", "Speech output failed.", "", fmt.Errorf("%w: %v", model.ErrSpeechUnavailable, err))
	}
	return audio, nil
}

func (s *sessionService) CheckUtterance(ctx context.Context, user, transcript string) (*model.UtteranceResponse, error) {
	var resp *model.UtteranceResponse
	err := s.trainer.withWorkspace(user, func(ws *engine.Workspace) error {
		v, err := ws.Current()
		if err != nil {
			return appError(err)
		}
		tense := ws.Session.Tense
		resp = &model.UtteranceResponse{
			Matched:    render.MatchesUtterance(transcript, v, tense),
			Transcript: transcript,
			Expected:   render.RenderForm(v, tense),
		}
		return nil
	})
	return resp, err
}

func step(ws *engine.Workspace, summary *model.SessionSummary) *model.SessionStepResponse {
	v := view(ws)
	return &model.SessionStepResponse{
		Completed: ws.Session.Completed,
		View:      v,
		Summary:   summary,
	}
}
