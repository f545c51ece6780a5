//go:generate mockery --name ReviewService --output ./mocks --outpkg mocks --case=underscore
package service

import (
	"context"

	"go_verb_master/internal/engine"
	"go_verb_master/internal/middleware"
	"go_verb_master/internal/model"
)

// ReviewService runs review passes over the learner's review list.
type ReviewService interface {
	StartReview(ctx context.Context, user string, direction model.Direction) (*model.ReviewPrompt, error)
	SubmitReviewAnswer(ctx context.Context, user, input string) (*model.ReviewAnswerResponse, error)
	AdvanceReview(ctx context.Context, user string) (*model.ReviewStepResponse, error)
	RetreatReview(ctx context.Context, user string) (*model.ReviewStepResponse, error)
}

type reviewService struct {
	trainer *Trainer
}

func NewReviewService(trainer *Trainer) ReviewService {
	return &reviewService{trainer: trainer}
}

func (s *reviewService) StartReview(ctx context.Context, user string, direction model.Direction) (*model.ReviewPrompt, error) {
	logger := middleware.GetLogger(ctx).With("user", user)
	var resp *model.ReviewPrompt
	err := s.trainer.withWorkspace(user, func(ws *engine.Workspace) error {
		if err := ws.StartReview(direction); err != nil {
			return appError(err)
		}
		prompt, err := ws.Review.CurrentPrompt(ws.Progress.Tense, s.trainer.lookups(ws)...)
		if err != nil {
			return appError(err)
		}
		logger.Info("Review started", "direction", string(ws.Review.Direction()), "items", ws.Review.Total())
		resp = &prompt
		return nil
	})
	return resp, err
}

func (s *reviewService) SubmitReviewAnswer(ctx context.Context, user, input string) (*model.ReviewAnswerResponse, error) {
	var resp *model.ReviewAnswerResponse
	err := s.trainer.withWorkspace(user, func(ws *engine.Workspace) error {
		verdict, err := ws.Review.Evaluate(input, s.trainer.lookups(ws)...)
		if err != nil {
			return appError(err)
		}
		resp = &model.ReviewAnswerResponse{Verdict: verdict}
		return nil
	})
	return resp, err
}

// AdvanceReview applies the pending verdict and saves the record.
func (s *reviewService) AdvanceReview(ctx context.Context, user string) (*model.ReviewStepResponse, error) {
	logger := middleware.GetLogger(ctx).With("user", user)
	var resp *model.ReviewStepResponse
	err := s.trainer.withWorkspace(user, func(ws *engine.Workspace) error {
		finished, err := ws.AdvanceReview()
		if err != nil {
			return appError(err)
		}
		if err := s.trainer.save(ctx, ws); err != nil {
			return err
		}
		if finished {
			logger.Info("Review finished")
			resp = &model.ReviewStepResponse{Finished: true}
			return nil
		}
		resp, err = s.prompt(ws)
		return err
	})
	return resp, err
}

func (s *reviewService) RetreatReview(ctx context.Context, user string) (*model.ReviewStepResponse, error) {
	var resp *model.ReviewStepResponse
	err := s.trainer.withWorkspace(user, func(ws *engine.Workspace) error {
		if err := ws.Review.Retreat(); err != nil {
			return appError(err)
		}
		var err error
		resp, err = s.prompt(ws)
		return err
	})
	return resp, err
}

func (s *reviewService) prompt(ws *engine.Workspace) (*model.ReviewStepResponse, error) {
	prompt, err := ws.Review.CurrentPrompt(ws.Progress.Tense, s.trainer.lookups(ws)...)
	if err != nil {
		return nil, appError(err)
	}
	return &model.ReviewStepResponse{Prompt: &prompt}, nil
}
