// Package engine wires the Client State Engine's components into one
// public entry point: a single reconnecting transport, a command router,
// an event dispatcher, a normalized store, an optimistic layer, a UI
// intent store, and the session controller that ties connection lifecycle
// to all of the above.
package engine

import (
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"concord/internal/config"
	"concord/internal/optimistic"
	"concord/internal/rest"
	"concord/internal/session"
	"concord/internal/store"
	"concord/internal/transport"
	"concord/internal/uistate"
	"concord/internal/wire"
)

// Engine is Concord's embeddable Client State Engine. Construct with New,
// start it with Connect, and read state through Store()/UIState() from any
// goroutine; Apply-side mutation always happens on the transport's single
// read-pump goroutine, so the public surface needs no additional locking
// beyond what Store and uistate.Store already provide internally.
type Engine struct {
	store     *store.Store
	ui        *uistate.Store
	transport *transport.Transport
	session   *session.Controller
	optimistic *optimistic.Layer
	rest      *rest.Client
	logger    *zap.SugaredLogger
}

// New builds an Engine from a loaded configuration. It does not connect;
// call Connect once the caller is ready to start dialing.
func New(cfg config.File, logger *zap.SugaredLogger) *Engine {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}

	st := store.New()
	ui := newUIState(cfg, logger)

	scheme := "http://"
	if cfg.UseTLS {
		scheme = "https://"
	}

	e := &Engine{
		store:  st,
		ui:     ui,
		rest:   rest.New(scheme+cfg.Address, nil),
		logger: logger,
	}

	e.transport = transport.New(transport.Options{
		Host:       cfg.Address,
		UseTLS:     cfg.UseTLS,
		MinBackoff: cfg.ReconnectMinBackoff.Value(),
		MaxBackoff: cfg.ReconnectMaxBackoff.Value(),
		Heartbeat:  cfg.HeartbeatInterval.Value(),
		Logger:     logger,
		// session is assigned below, before Connect can ever be called;
		// these closures exist only to break the construction cycle
		// between transport and the session controller that wraps it.
		OnConnected:    func(connected bool) { e.session.OnConnected(connected) },
		OnDisconnected: func() { e.session.OnDisconnected() },
		OnEvent:        func(ev wire.Event) { e.session.OnEvent(ev) },
	})

	e.session = session.New(st, e.transport, logger)
	e.optimistic = optimistic.New(st, e.transport)
	st.OnError(func(code, message string) {
		logger.Warnw("engine: server reported error", "code", code, "message", message)
	})

	return e
}

// Connect starts the transport under nickname. Connection success is
// observed through Store().Connected() and the store's reducers, not
// through this call's return value: it is fire-and-forget.
func (e *Engine) Connect(nickname string) {
	e.session.Connect(nickname)
}

func (e *Engine) Disconnect() {
	e.session.Disconnect()
}

// Store exposes the read-only selector layer over normalized state.
func (e *Engine) Store() *store.Store { return e.store }

// UIState exposes client-only view state.
func (e *Engine) UIState() *uistate.Store { return e.ui }

// REST exposes the minimal HTTP collaborator for upload/profile/emoji.
func (e *Engine) REST() *rest.Client { return e.rest }

// Send issues a command directly, for the majority of commands that have
// no optimistic local mirror and rely entirely on the server's echo.
func (e *Engine) Send(cmd wire.Command) error {
	return e.transport.Send(cmd)
}

// SendMessage and MarkRead are the two commands with an optimistic local
// mirror; every other command goes through Send directly.

func (e *Engine) SendMessage(serverID, channel, content string, attachmentIDs []string) error {
	return e.optimistic.SendMessage(serverID, channel, content, attachmentIDs)
}

func (e *Engine) MarkRead(serverID, channel, lastMessageID string) error {
	return e.optimistic.MarkRead(serverID, channel, lastMessageID)
}

// newUIState picks the storage backend for server-folder state per
// cfg.SelfContained, mirroring the teacher's keyValue.Setup toggle between
// an embedded store and Redis. A backend that fails to construct falls
// back to in-memory-only folders rather than blocking engine startup,
// since folder groupings are a convenience, not core state.
func newUIState(cfg config.File, logger *zap.SugaredLogger) *uistate.Store {
	if !cfg.SelfContained {
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		return uistate.New(uistate.NewRedisPersistence(client, logger))
	}

	persist, err := uistate.NewSQLitePersistence(cfg.SqlitePath, logger)
	if err != nil {
		logger.Warnf("engine: falling back to in-memory folders: %v", err)
		return uistate.New(nil)
	}
	return uistate.New(persist)
}
