//go:generate mockery --name ProgressService --output ./mocks --outpkg mocks --case=underscore
package service

import (
	"context"

	"go_verb_master/internal/engine"
	"go_verb_master/internal/middleware"
	"go_verb_master/internal/model"
)

type ProgressService interface {
	Stats(ctx context.Context, user string) (*model.Stats, error)
	ResetProgress(ctx context.Context, user string) error
}

type progressService struct {
	trainer *Trainer
}

func NewProgressService(trainer *Trainer) ProgressService {
	return &progressService{trainer: trainer}
}

func (s *progressService) Stats(ctx context.Context, user string) (*model.Stats, error) {
	var resp *model.Stats
	err := s.trainer.withWorkspace(user, func(ws *engine.Workspace) error {
		resp = stats(ws)
		return nil
	})
	return resp, err
}

// ResetProgress deletes the stored record and the last-active pointer when it
// names the user, then drops the cached workspace.
func (s *progressService) ResetProgress(ctx context.Context, user string) error {
	logger := middleware.GetLogger(ctx).With("user", user)
	err := s.trainer.withWorkspace(user, func(ws *engine.Workspace) error {
		if err := s.trainer.progRepo.Delete(ctx, s.trainer.db, user); err != nil {
			logger.Error("Failed to delete progress", "error", err)
			return model.NewAppError("INTERNAL_SERVER_ERROR", "Progress could not be reset.", "", err)
		}
		if err := s.trainer.progRepo.ClearLastActiveUser(ctx, s.trainer.db, user); err != nil {
			logger.Error("Failed to clear last active user", "error", err)
			return model.NewAppError("INTERNAL_SERVER_ERROR", "Progress could not be reset.", "", err)
		}
		return nil
	})
	if err != nil {
		return err
	}
	s.trainer.forget(user)
	logger.Info("Progress reset")
	return nil
}
