// helpers_test.go
package handlers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"

	"go_verb_master/internal/handlers"
	"go_verb_master/internal/model"
	svc_mocks "go_verb_master/internal/service/mocks"
)

type testServices struct {
	session  *svc_mocks.SessionService
	review   *svc_mocks.ReviewService
	game     *svc_mocks.GameService
	progress *svc_mocks.ProgressService
}

// setupTestRouter mounts every handler on a router backed by service mocks.
func setupTestRouter(t *testing.T) (http.Handler, *testServices) {
	t.Helper()
	testLogger := slog.New(slog.NewTextHandler(io.Discard, nil))
	svcs := &testServices{
		session:  svc_mocks.NewSessionService(t),
		review:   svc_mocks.NewReviewService(t),
		game:     svc_mocks.NewGameService(t),
		progress: svc_mocks.NewProgressService(t),
	}
	h := handlers.Handlers{
		Session:  handlers.NewSessionHandler(svcs.session, testLogger),
		Review:   handlers.NewReviewHandler(svcs.review, testLogger),
		Game:     handlers.NewGameHandler(svcs.game, testLogger),
		Progress: handlers.NewProgressHandler(svcs.progress, testLogger),
	}
	r := chi.NewRouter()
	r.Route("/api/v1", h.Routes)
	return r, svcs
}

// doRequest sends body (a string is sent verbatim, anything else as JSON) through the router.
func doRequest(t *testing.T, router http.Handler, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var reqBody io.Reader
	if body != nil {
		if s, ok := body.(string); ok {
			reqBody = strings.NewReader(s)
		} else {
			data, err := json.Marshal(body)
			require.NoError(t, err)
			reqBody = bytes.NewBuffer(data)
		}
	}
	req := httptest.NewRequest(method, path, reqBody)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

func decodeError(t *testing.T, rr *httptest.ResponseRecorder) model.ErrorDetail {
	t.Helper()
	var resp model.APIErrorResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp), rr.Body.String())
	return resp.Error
}
