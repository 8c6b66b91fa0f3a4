// Package transport owns the single reconnecting WebSocket duplex channel
// to the Concord server, grounded on the teacher's read/write pump split
// (internal/hub/hub.go, utils/websocket/websocket.go) and on
// npezzotti-gochat's internal/server/client.go ping/pong heartbeat, turned
// around to dial outward instead of upgrading an inbound connection.
package transport

import (
	"encoding/json"
	"fmt"
	"net/url"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"concord/internal/wire"
)

// validate runs every outbound command's struct tags before it reaches
// the wire, catching malformed local input (an empty required field, a
// name over its max length) without a network round trip. A single
// validator.Validate is safe for concurrent use and caches struct
// metadata across calls, so it is shared package-wide rather than
// constructed per Transport.
var validate = validator.New()

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	maxQueueDepth  = 256
)

// EventHandler is invoked once per decoded inbound frame, on the
// transport's single read-pump goroutine.
type EventHandler func(wire.Event)

// ConnectHook runs every time the socket (re)opens, including the first
// connect and every reconnect, right after OnConnected(true). The Session
// Controller re-sends list_servers from OnConnected, not from this hook.
type ConnectHook func()

// Options configures a Transport.
type Options struct {
	// Host is "host[:port]" without a scheme; the scheme is chosen from
	// UseTLS ("wss" vs "ws").
	Host   string
	UseTLS bool

	MinBackoff time.Duration
	MaxBackoff time.Duration
	Heartbeat  time.Duration

	Logger  *zap.SugaredLogger
	OnEvent EventHandler
	OnConnect ConnectHook
	// OnConnected fires with the new `connected` value on every open and on
	// every transient drop that the reconnect loop will retry; an explicit
	// Disconnect fires OnDisconnected instead. It never implies the caller
	// should discard any state.
	OnConnected func(bool)
	// OnDisconnected fires once, only from an explicit Disconnect call. It
	// is the caller's signal to clear anything scoped to this connection.
	OnDisconnected func()
}

// Transport is the client's one logical duplex channel to the server. It
// owns reconnection, heartbeat, and the outbound queue used while
// disconnected. The zero value is not usable; construct with New.
type Transport struct {
	opts Options

	mu        sync.Mutex
	conn      *websocket.Conn
	connected bool
	nickname  string
	closing   bool
	queue     [][]byte

	running bool
	stop    chan struct{}
}

// New builds a Transport. Call Connect to start it.
func New(opts Options) *Transport {
	if opts.MinBackoff <= 0 {
		opts.MinBackoff = time.Second
	}
	if opts.MaxBackoff <= 0 {
		opts.MaxBackoff = 30 * time.Second
	}
	if opts.Heartbeat <= 0 {
		opts.Heartbeat = 30 * time.Second
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop().Sugar()
	}
	return &Transport{opts: opts}
}

// Connected reports the current connection state.
func (t *Transport) Connected() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.connected
}

// Connect is idempotent: calling it while already connecting/connected
// starts no second loop; it only records nickname for the next dial. It starts the dial-and-reconnect loop in the
// background and returns immediately; connection success is observed via
// OnConnected/OnConnect, not the return value.
func (t *Transport) Connect(nickname string) {
	t.mu.Lock()
	if t.running {
		t.nickname = nickname
		t.mu.Unlock()
		return
	}
	t.nickname = nickname
	t.closing = false
	t.running = true
	t.stop = make(chan struct{})
	stop := t.stop
	t.mu.Unlock()

	go t.loop(stop)
}

// Disconnect closes the socket, suppresses further reconnect attempts, and
// resets transport-owned state. It fires OnDisconnected exactly once, which
// is the only signal callers should use to clear connection-scoped state; a
// transient drop that the reconnect loop retries never fires it.
func (t *Transport) Disconnect() {
	t.mu.Lock()
	if !t.running {
		t.mu.Unlock()
		return
	}
	t.closing = true
	t.running = false
	conn := t.conn
	t.conn = nil
	t.connected = false
	t.queue = nil
	stop := t.stop
	t.mu.Unlock()

	close(stop)
	if conn != nil {
		conn.Close()
	}
	if t.opts.OnDisconnected != nil {
		t.opts.OnDisconnected()
	}
}

// Send serializes cmd and transmits it. If the socket is not currently
// open, the frame is buffered in a bounded FIFO and flushed once the
// connection (re)opens. The oldest queued frame is dropped to make room
// once the queue is full, since a frame that old is more likely stale than
// one just issued.
func (t *Transport) Send(cmd wire.Command) error {
	if err := validate.Struct(cmd); err != nil {
		return fmt.Errorf("transport: validate %s: %w", cmd.CommandType(), err)
	}

	raw, err := json.Marshal(cmd)
	if err != nil {
		return fmt.Errorf("transport: marshal %s: %w", cmd.CommandType(), err)
	}

	t.mu.Lock()
	conn := t.conn
	connected := t.connected
	if connected {
		t.mu.Unlock()
		return t.writeLocked(conn, raw)
	}

	if len(t.queue) >= maxQueueDepth {
		t.queue = t.queue[1:]
	}
	t.queue = append(t.queue, raw)
	t.mu.Unlock()
	return nil
}

func (t *Transport) writeLocked(conn *websocket.Conn, raw []byte) error {
	if conn == nil {
		return fmt.Errorf("transport: not connected")
	}
	conn.SetWriteDeadline(time.Now().Add(writeWait))
	if err := conn.WriteMessage(websocket.TextMessage, raw); err != nil {
		return fmt.Errorf("transport: write: %w", err)
	}
	return nil
}

func (t *Transport) buildURL() string {
	scheme := "ws"
	if t.opts.UseTLS {
		scheme = "wss"
	}
	t.mu.Lock()
	nickname := t.nickname
	t.mu.Unlock()
	u := url.URL{
		Scheme:   scheme,
		Host:     t.opts.Host,
		Path:     "/ws",
		RawQuery: "nickname=" + url.QueryEscape(nickname),
	}
	return u.String()
}

// loop dials, runs the connection until it drops, and reconnects with
// growing backoff until Disconnect is called.
func (t *Transport) loop(stop chan struct{}) {
	backoff := t.opts.MinBackoff

	for {
		select {
		case <-stop:
			return
		default:
		}

		conn, _, err := websocket.DefaultDialer.Dial(t.buildURL(), nil)
		if err != nil {
			t.opts.Logger.Debugf("transport: dial failed: %v", err)
			if !t.sleepBackoff(backoff, stop) {
				return
			}
			backoff = nextBackoff(backoff, t.opts.MaxBackoff)
			continue
		}

		backoff = t.opts.MinBackoff
		t.onOpen(conn)
		t.runConnection(conn, stop)

		t.mu.Lock()
		closing := t.closing
		t.mu.Unlock()
		if closing {
			return
		}
	}
}

func nextBackoff(cur, max time.Duration) time.Duration {
	next := cur * 2
	if next > max {
		next = max
	}
	return next
}

func (t *Transport) sleepBackoff(d time.Duration, stop chan struct{}) bool {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-timer.C:
		return true
	case <-stop:
		return false
	}
}

func (t *Transport) onOpen(conn *websocket.Conn) {
	t.mu.Lock()
	t.conn = conn
	t.connected = true
	queued := t.queue
	t.queue = nil
	t.mu.Unlock()

	for _, raw := range queued {
		if err := t.writeLocked(conn, raw); err != nil {
			t.opts.Logger.Warnf("transport: flush queued frame: %v", err)
			break
		}
	}

	if t.opts.OnConnected != nil {
		t.opts.OnConnected(true)
	}
	if t.opts.OnConnect != nil {
		t.opts.OnConnect()
	}
}

// runConnection blocks until the connection's read pump exits, running
// the write/heartbeat pump concurrently. It mirrors the teacher's
// Write()/Read() goroutine split (npezzotti-gochat internal/server/client.go).
func (t *Transport) runConnection(conn *websocket.Conn, stop chan struct{}) {
	done := make(chan struct{})
	var once sync.Once
	closeDone := func() { once.Do(func() { close(done) }) }

	go t.heartbeat(conn, done, stop)

	conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	defer closeDone()
	for {
		_, raw, err := conn.ReadMessage()
		if err != nil {
			t.opts.Logger.Debugf("transport: read: %v", err)
			break
		}

		ev, err := wire.Decode(raw)
		if err != nil {
			t.opts.Logger.Warnf("transport: dropping malformed frame: %v", err)
			continue
		}
		if t.opts.OnEvent != nil {
			t.opts.OnEvent(ev)
		}
	}

	t.mu.Lock()
	if t.conn == conn {
		t.conn = nil
		t.connected = false
	}
	wasClosing := t.closing
	t.mu.Unlock()

	conn.Close()
	if !wasClosing && t.opts.OnConnected != nil {
		t.opts.OnConnected(false)
	}
}

func (t *Transport) heartbeat(conn *websocket.Conn, done <-chan struct{}, stop chan struct{}) {
	ticker := time.NewTicker(t.opts.Heartbeat)
	defer ticker.Stop()

	for {
		select {
		case <-done:
			return
		case <-stop:
			return
		case <-ticker.C:
			conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
