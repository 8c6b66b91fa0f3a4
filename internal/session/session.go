// Package session owns the connection lifecycle: what happens to the
// store on connect, reconnect, and disconnect.
package session

import (
	"go.uber.org/zap"

	"concord/internal/store"
	"concord/internal/wire"
)

// CommandSender is the subset of transport.Transport the controller needs.
type CommandSender interface {
	Send(cmd wire.Command) error
	Connect(nickname string)
	Disconnect()
}

// Controller reacts to transport connect/disconnect transitions and
// inbound events, keeping the store's lifecycle invariants: every (re)open
// re-primes server-derived state, and an explicit disconnect resets it.
type Controller struct {
	store     *store.Store
	transport CommandSender
	logger    *zap.SugaredLogger
}

func New(s *store.Store, t CommandSender, logger *zap.SugaredLogger) *Controller {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	return &Controller{store: s, transport: t, logger: logger}
}

// Connect starts the transport under the given nickname and records it on
// the store so self-originated events (own messages, own typing) can be
// recognized once priming events arrive.
func (c *Controller) Connect(nickname string) {
	c.store.SetNickname(nickname)
	c.transport.Connect(nickname)
}

func (c *Controller) Disconnect() {
	c.transport.Disconnect()
}

// OnConnected is wired as the transport's OnConnected hook. On every
// transition to connected it re-primes session state by issuing
// list_servers. A transition to disconnected only flips the connected
// flag: the socket may still be mid-reconnect, and the store's
// server-derived state stays put until OnDisconnected says otherwise.
func (c *Controller) OnConnected(connected bool) {
	c.store.SetConnected(connected)
	if connected {
		if err := c.transport.Send(wire.NewListServers()); err != nil {
			c.logger.Warnf("session: priming list_servers: %v", err)
		}
	}
}

// OnDisconnected is wired as the transport's OnDisconnected hook, which
// fires only on an explicit Disconnect call, never on a transient drop
// the reconnect loop will retry. It resets all server-derived store
// state; the UI intent store and persisted folders, which live outside
// this package, are left untouched.
func (c *Controller) OnDisconnected() {
	c.store.SetConnected(false)
	c.store.Reset()
}

// OnEvent is wired as the transport's OnEvent hook, routing every inbound
// frame to the store's reducer dispatch and forwarding the store's own
// follow-up commands (e.g. channel_list's list_roles/list_categories/
// get_presences fan-out) back out over the transport.
func (c *Controller) OnEvent(ev wire.Event) {
	c.store.Apply(ev, func(cmd wire.Command) {
		if err := c.transport.Send(cmd); err != nil {
			c.logger.Warnf("session: side-effect command %s: %v", cmd.CommandType(), err)
		}
	})
}
