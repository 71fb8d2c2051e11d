package realtime_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/octavioverge/DSP-MDS-new-sub000/internal/auth"
	"github.com/octavioverge/DSP-MDS-new-sub000/internal/realtime"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestHub_BroadcastsToAuthenticatedClient(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	tokens := auth.NewTokenManager("secret", "dsp", time.Hour)
	hub := realtime.NewHub(zap.NewNop(), nil)
	go hub.Run(ctx)

	server := httptest.NewServer(hub.ServeWs(tokens))
	defer server.Close()

	token, _, err := tokens.Issue()
	require.NoError(t, err)

	wsURL := "ws" + strings.TrimPrefix(server.URL, "http") + "?token=" + token
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	require.NoError(t, err)
	defer conn.Close()

	require.Eventually(t, func() bool { return hub.ClientCount() == 1 }, time.Second, 10*time.Millisecond)

	hub.Publish(realtime.EventRequestCreated, map[string]string{"id": "abc"})

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	_, raw, err := conn.ReadMessage()
	require.NoError(t, err)

	var event realtime.Event
	require.NoError(t, json.Unmarshal(raw, &event))
	assert.Equal(t, realtime.EventRequestCreated, event.Type)
}

func TestHub_RejectsMissingOrInvalidToken(t *testing.T) {
	tokens := auth.NewTokenManager("secret", "dsp", time.Hour)
	hub := realtime.NewHub(zap.NewNop(), nil)
	handler := hub.ServeWs(tokens)

	for _, target := range []string{"/ws", "/ws?token=bogus"} {
		req := httptest.NewRequest(http.MethodGet, target, nil)
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code, target)
	}
}

func TestHub_PublishWithoutClientsDoesNotBlock(t *testing.T) {
	hub := realtime.NewHub(zap.NewNop(), nil)
	done := make(chan struct{})
	go func() {
		for i := 0; i < 200; i++ {
			hub.Publish(realtime.EventRequestUpdated, i)
		}
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("publish blocked")
	}
}
