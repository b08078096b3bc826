package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dreamscene/internal/logger"
)

type stubClient struct {
	reply string
	err   error
}

func (s *stubClient) Complete(ctx context.Context, model, system, user string) (string, error) {
	return s.reply, s.err
}

func newTestServer(t *testing.T, reply string) *Server {
	t.Helper()
	return New(":0", "", &stubClient{reply: reply}, "test-model", logger.NewAt(""))
}

func TestGenerateReturnsSceneJSON(t *testing.T) {
	reply := "```json\n{\"objects\":[{\"type\":\"cube\",\"name\":\"crate\"}],\"background\":\"#112233\"}\n```"
	s := newTestServer(t, reply)

	req := httptest.NewRequest(http.MethodPost, "/api/generate-scene",
		strings.NewReader(`{"prompt":"a crate"}`))
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Len(t, body["objects"], 1)
	assert.Equal(t, "#112233", body["background"])
}

func TestGenerateRejectsEmptyPrompt(t *testing.T) {
	s := newTestServer(t, "{}")

	req := httptest.NewRequest(http.MethodPost, "/api/generate-scene",
		strings.NewReader(`{"prompt":""}`))
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGenerateRejectsBadReply(t *testing.T) {
	s := newTestServer(t, `{"objects":"not an array"}`)

	req := httptest.NewRequest(http.MethodPost, "/api/generate-scene",
		strings.NewReader(`{"prompt":"anything"}`))
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadGateway, w.Code)
}

func TestWebSocketReceivesBroadcast(t *testing.T) {
	s := newTestServer(t, "")
	ts := httptest.NewServer(s.router)
	defer ts.Close()

	url := "ws" + strings.TrimPrefix(ts.URL, "http") + "/ws/scenes"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	defer conn.Close()

	s.hub.Broadcast([]byte(`{"objects":[]}`))

	_, msg, err := conn.ReadMessage()
	require.NoError(t, err)
	assert.JSONEq(t, `{"objects":[]}`, string(msg))
}
