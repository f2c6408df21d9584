package server

import (
	"encoding/json"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dialWS(t *testing.T, ts *httptest.Server, token string) (*websocket.Conn, error) {
	t.Helper()
	wsURL := "ws" + strings.TrimPrefix(ts.URL, "http") + "/ws?token=" + url.QueryEscape(token)
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	return conn, err
}

func TestWebSocketChatRoundTrip(t *testing.T) {
	s := newTestServer()
	ts := httptest.NewServer(s.Router())
	defer ts.Close()

	_, token := createSession(t, s)

	conn, err := dialWS(t, ts, token)
	require.NoError(t, err)
	defer conn.Close()

	require.NoError(t, conn.WriteJSON(map[string]string{"message": "show me the menu"}))

	_, raw, err := conn.ReadMessage()
	require.NoError(t, err)

	var resp wsResponse
	require.NoError(t, json.Unmarshal(raw, &resp))
	assert.Contains(t, resp.Reply, "Shake Shack Menu")
	assert.Zero(t, resp.Total)
}

func TestWebSocketRejectsBadToken(t *testing.T) {
	s := newTestServer()
	ts := httptest.NewServer(s.Router())
	defer ts.Close()

	conn, err := dialWS(t, ts, "not-a-token")
	if conn != nil {
		conn.Close()
	}
	assert.Error(t, err)
}

func TestEnqueueAbortsWhenWriterGone(t *testing.T) {
	wc := &WSConnection{send: make(chan []byte, 1), done: make(chan struct{})}

	require.True(t, wc.enqueue([]byte(`{"reply":"one"}`)))

	// Queue is full and the writer has exited; the send must not block.
	close(wc.done)
	assert.False(t, wc.enqueue([]byte(`{"reply":"two"}`)))
}
