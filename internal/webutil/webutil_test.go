package webutil

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go_verb_master/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

func TestMapErrorToStatusCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "not found", err: model.ErrNotFound, want: http.StatusNotFound},
		{name: "invalid input wrapped", err: fmt.Errorf("x: %w", model.ErrInvalidInput), want: http.StatusBadRequest},
		{name: "empty review", err: model.ErrEmptyReviewQueue, want: http.StatusConflict},
		{name: "no user", err: model.NewAppError("NO_ACTIVE_USER", "m", "", model.ErrNoActiveUser), want: http.StatusConflict},
		{name: "no session", err: model.ErrNoActiveSession, want: http.StatusConflict},
		{name: "session complete", err: model.ErrOutOfRange, want: http.StatusConflict},
		{name: "speech", err: model.ErrSpeechUnavailable, want: http.StatusServiceUnavailable},
		{name: "persistence", err: model.ErrPersistence, want: http.StatusInternalServerError},
		{name: "unknown", err: errors.New("boom"), want: http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MapErrorToStatusCode(tt.err))
		})
	}
}

func TestHandleError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
		wantMsg    string
	}{
		{
			name:       "app error keeps its detail",
			err:        model.NewAppError("VALIDATION_ERROR", "name is a required field", "name", model.ErrInvalidInput),
			wantStatus: http.StatusBadRequest,
			wantCode:   "VALIDATION_ERROR",
			wantMsg:    "name is a required field",
		},
		{
			name:       "sentinel gets a code",
			err:        model.ErrEmptyReviewQueue,
			wantStatus: http.StatusConflict,
			wantCode:   "EMPTY_REVIEW_QUEUE",
			wantMsg:    model.ErrEmptyReviewQueue.Error(),
		},
		{
			name:       "unexpected error is hidden",
			err:        errors.New("pq: connection refused"),
			wantStatus: http.StatusInternalServerError,
			wantCode:   "INTERNAL_SERVER_ERROR",
			wantMsg:    "An internal error occurred.",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := httptest.NewRecorder()

			HandleError(rr, testLogger, tt.err)

			assert.Equal(t, tt.wantStatus, rr.Code)
			assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
			var resp model.APIErrorResponse
			require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
			assert.Equal(t, tt.wantCode, resp.Error.Code)
			assert.Equal(t, tt.wantMsg, resp.Error.Message)
		})
	}
}

func TestDecodeJSONBody(t *testing.T) {
	var req model.StartSessionRequest

	err := DecodeJSONBody(httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":"alice","count":5}`)), &req)
	require.NoError(t, err)
	assert.Equal(t, "alice", req.Name)
	assert.Equal(t, 5, req.Count)

	err = DecodeJSONBody(httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":"alice","extra":1}`)), &req)
	assert.ErrorIs(t, err, model.ErrInvalidInput)

	err = DecodeJSONBody(httptest.NewRequest(http.MethodPost, "/", strings.NewReader(``)), &req)
	assert.ErrorIs(t, err, model.ErrInvalidInput)
}

func TestDecodeOptionalJSONBody(t *testing.T) {
	req := model.StartReviewRequest{Direction: model.DirectionForward}

	require.NoError(t, DecodeOptionalJSONBody(httptest.NewRequest(http.MethodPost, "/", nil), &req))
	assert.Equal(t, model.DirectionForward, req.Direction)

	require.NoError(t, DecodeOptionalJSONBody(httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"direction":"backward"}`)), &req))
	assert.Equal(t, model.DirectionBackward, req.Direction)

	err := DecodeOptionalJSONBody(httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"direction":`)), &req)
	assert.ErrorIs(t, err, model.ErrInvalidInput)
}

func TestValidateStruct(t *testing.T) {
	tests := []struct {
		name      string
		input     interface{}
		wantField string
		wantMsg   string
	}{
		{name: "valid", input: model.StartSessionRequest{Name: "alice", Level: "B1", Tense: "past", Count: 10}},
		{name: "missing name", input: model.StartSessionRequest{}, wantField: "name", wantMsg: "name is a required field"},
		{name: "bad tense", input: model.StartSessionRequest{Name: "a", Tense: "perfect"}, wantField: "tense", wantMsg: "tense must be one of: present, past, future"},
		{name: "count too large", input: model.StartSessionRequest{Name: "a", Count: 101}, wantField: "count"},
		{name: "bad direction", input: model.StartReviewRequest{Direction: "sideways"}, wantField: "direction"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateStruct(tt.input)
			if tt.wantField == "" {
				assert.NoError(t, err)
				return
			}
			var appErr *model.AppError
			require.ErrorAs(t, err, &appErr)
			assert.ErrorIs(t, err, model.ErrInvalidInput)
			assert.Equal(t, "VALIDATION_ERROR", appErr.Code)
			assert.Equal(t, tt.wantField, appErr.Field)
			if tt.wantMsg != "" {
				assert.Equal(t, tt.wantMsg, appErr.Message)
			}
		})
	}
}

func TestRespondWithAudio(t *testing.T) {
	rr := httptest.NewRecorder()

	RespondWithAudio(rr, []byte{0xFF, 0xFB, 0x90})

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "audio/mpeg", rr.Header().Get("Content-Type"))
	assert.Equal(t, "3", rr.Header().Get("Content-Length"))
}
