package transport

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"concord/internal/wire"
)

// echoServer accepts WebSocket connections, sends one server_notice event
// on each new connection, and then reads and discards every frame. It
// records every nickname query parameter it was dialed with.
type echoServer struct {
	upgrader websocket.Upgrader
	mu       sync.Mutex
	dials    []string
}

func (e *echoServer) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	e.mu.Lock()
	e.dials = append(e.dials, r.URL.Query().Get("nickname"))
	e.mu.Unlock()

	conn, err := e.upgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}
	defer conn.Close()

	conn.WriteMessage(websocket.TextMessage, []byte(`{"type":"server_notice","message":"welcome"}`))

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}

func TestConnectReceivesEvents(t *testing.T) {
	srv := &echoServer{}
	ts := httptest.NewServer(srv)
	defer ts.Close()

	host := strings.TrimPrefix(ts.URL, "http://")

	received := make(chan wire.Event, 4)
	tr := New(Options{
		Host:      host,
		OnEvent:   func(ev wire.Event) { received <- ev },
		OnConnect: func() {},
	})

	tr.Connect("alice")
	defer tr.Disconnect()

	select {
	case ev := <-received:
		notice, ok := ev.(*wire.ServerNoticeEvent)
		require.True(t, ok, "expected *wire.ServerNoticeEvent, got %T", ev)
		assert.Equal(t, "welcome", notice.Message)
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for event")
	}

	require.Eventually(t, tr.Connected, time.Second, 10*time.Millisecond)
}

func TestDisconnectThenConnectAgain(t *testing.T) {
	srv := &echoServer{}
	ts := httptest.NewServer(srv)
	defer ts.Close()

	host := strings.TrimPrefix(ts.URL, "http://")

	var connects int32
	tr := New(Options{
		Host: host,
		OnConnected: func(connected bool) {
			if connected {
				connects++
			}
		},
	})

	tr.Connect("alice")
	require.Eventually(t, tr.Connected, time.Second, 10*time.Millisecond)

	tr.Disconnect()
	require.Eventually(t, func() bool { return !tr.Connected() }, time.Second, 10*time.Millisecond)

	tr.Connect("alice")
	require.Eventually(t, tr.Connected, time.Second, 10*time.Millisecond)
	tr.Disconnect()
}

func TestSendQueuesWhileDisconnected(t *testing.T) {
	tr := New(Options{Host: "127.0.0.1:1"})

	err := tr.Send(wire.NewListServers())
	require.NoError(t, err)
	assert.Len(t, tr.queue, 1)
}

func TestSendRejectsInvalidCommand(t *testing.T) {
	tr := New(Options{Host: "127.0.0.1:1"})

	err := tr.Send(wire.NewCreateServer("", ""))
	assert.Error(t, err)
}

func TestNextBackoffCapsAtMax(t *testing.T) {
	assert.Equal(t, 2*time.Second, nextBackoff(time.Second, 30*time.Second))
	assert.Equal(t, 30*time.Second, nextBackoff(20*time.Second, 30*time.Second))
}
