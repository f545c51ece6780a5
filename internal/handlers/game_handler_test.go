package handlers_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"go_verb_master/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestGameHandler_StartGame(t *testing.T) {
	router, svcs := setupTestRouter(t)
	svcs.game.On("StartGame", mock.Anything, "alice").Return(&model.GameStartResponse{
		Score: 0,
		Round: &model.Round{
			Sentence:      "She _____ to the mountains last weekend.",
			Choices:       []string{"went", "said", "took", "made"},
			CorrectChoice: "went",
		},
	}, nil).Once()

	rr := doRequest(t, router, http.MethodPost, "/api/v1/users/alice/game", nil)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.NotContains(t, rr.Body.String(), "correct_choice")
	var resp model.GameStartResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	require.NotNil(t, resp.Round)
	assert.Len(t, resp.Round.Choices, 4)
	assert.Empty(t, resp.Round.CorrectChoice)
}

func TestGameHandler_Answer(t *testing.T) {
	tests := []struct {
		name           string
		body           interface{}
		setupMock      func(s *testServices)
		expectedStatus int
		expectedCode   string
	}{
		{
			name: "正常系: 正解",
			body: model.GameAnswerRequest{Choice: "went"},
			setupMock: func(s *testServices) {
				s.game.On("ChooseGameAnswer", mock.Anything, "alice", "went").Return(&model.GameAnswerResponse{
					Verdict:       model.VerdictCorrect,
					CorrectChoice: "went",
					Score:         1,
					NextRound:     &model.Round{Sentence: "I _____ a bird.", Choices: []string{"see", "go", "do", "be"}},
					NextRoundInMs: 1500,
				}, nil).Once()
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "異常系: 選択肢がない",
			body:           map[string]string{},
			expectedStatus: http.StatusBadRequest,
			expectedCode:   "VALIDATION_ERROR",
		},
		{
			name: "異常系: ラウンド未開始",
			body: model.GameAnswerRequest{Choice: "went"},
			setupMock: func(s *testServices) {
				s.game.On("ChooseGameAnswer", mock.Anything, "alice", "went").
					Return(nil, model.NewAppError("NO_GAME_ROUND", "Start a game first.", "", model.ErrInvalidInput)).Once()
			},
			expectedStatus: http.StatusBadRequest,
			expectedCode:   "NO_GAME_ROUND",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, svcs := setupTestRouter(t)
			if tt.setupMock != nil {
				tt.setupMock(svcs)
			}

			rr := doRequest(t, router, http.MethodPost, "/api/v1/users/alice/game/answer", tt.body)

			assert.Equal(t, tt.expectedStatus, rr.Code, rr.Body.String())
			if tt.expectedCode != "" {
				assert.Equal(t, tt.expectedCode, decodeError(t, rr).Code)
				return
			}
			assert.JSONEq(t, `1500`, mustField(t, rr.Body.Bytes(), "next_round_in_ms"))
			assert.JSONEq(t, `"correct"`, mustField(t, rr.Body.Bytes(), "verdict"))
		})
	}
}
