//go:generate mockery --name GameService --output ./mocks --outpkg mocks --case=underscore
package service

import (
	"context"

	"go_verb_master/internal/engine"
	"go_verb_master/internal/middleware"
	"go_verb_master/internal/model"
)

// GameService plays fill-in-the-blank rounds over the session verbs.
type GameService interface {
	StartGame(ctx context.Context, user string) (*model.GameStartResponse, error)
	ChooseGameAnswer(ctx context.Context, user, choice string) (*model.GameAnswerResponse, error)
}

type gameService struct {
	trainer *Trainer
}

func NewGameService(trainer *Trainer) GameService {
	return &gameService{trainer: trainer}
}

func (s *gameService) StartGame(ctx context.Context, user string) (*model.GameStartResponse, error) {
	var resp *model.GameStartResponse
	err := s.trainer.withWorkspace(user, func(ws *engine.Workspace) error {
		round, err := ws.NextGameRound()
		if err != nil {
			return appError(err)
		}
		resp = &model.GameStartResponse{Score: ws.Game.Score(), Round: round}
		return nil
	})
	return resp, err
}

// ChooseGameAnswer scores the choice and deals the following round, which the
// client reveals after NextRoundInMs.
func (s *gameService) ChooseGameAnswer(ctx context.Context, user, choice string) (*model.GameAnswerResponse, error) {
	logger := middleware.GetLogger(ctx).With("user", user)
	var resp *model.GameAnswerResponse
	err := s.trainer.withWorkspace(user, func(ws *engine.Workspace) error {
		if ws.Session == nil {
			return appError(model.ErrNoActiveSession)
		}
		if ws.Game.Round() == nil {
			return model.NewAppError("NO_GAME_ROUND", "Start a game first.", "", model.ErrInvalidInput)
		}
		verdict, correct, err := ws.AnswerGame(choice)
		if err != nil {
			return appError(err)
		}
		next, err := ws.NextGameRound()
		if err != nil {
			return appError(err)
		}
		logger.Debug("Game answer scored", "verdict", string(verdict), "score", ws.Game.Score())
		resp = &model.GameAnswerResponse{
			Verdict:       verdict,
			CorrectChoice: correct,
			Score:         ws.Game.Score(),
			NextRound:     next,
			NextRoundInMs: s.trainer.cfg.App.GameSettleDelay.Milliseconds(),
		}
		return nil
	})
	return resp, err
}
