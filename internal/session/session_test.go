package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"concord/internal/store"
	"concord/internal/wire"
)

type fakeTransport struct {
	sent      []wire.Command
	connected bool
	nickname  string
}

func (f *fakeTransport) Send(cmd wire.Command) error {
	f.sent = append(f.sent, cmd)
	return nil
}
func (f *fakeTransport) Connect(nickname string) { f.nickname = nickname; f.connected = true }
func (f *fakeTransport) Disconnect()              { f.connected = false }

func TestOnConnectedPrimesListServers(t *testing.T) {
	s := store.New()
	tr := &fakeTransport{}
	c := New(s, tr, nil)

	c.OnConnected(true)

	assert.True(t, s.Connected())
	require.Len(t, tr.sent, 1)
	assert.Equal(t, "list_servers", tr.sent[0].CommandType())
}

func TestOnConnectedFalsePreservesStore(t *testing.T) {
	s := store.New()
	tr := &fakeTransport{}
	c := New(s, tr, nil)

	s.Apply(&wire.ServerListEvent{Type: "server_list", Servers: []wire.Server{{ID: "srv1"}}}, nil)
	s.SetConnected(true)

	c.OnConnected(false)

	assert.False(t, s.Connected())
	assert.Len(t, s.Servers(), 1, "a transient drop must not clear server-derived state")
}

func TestOnDisconnectedResetsStore(t *testing.T) {
	s := store.New()
	tr := &fakeTransport{}
	c := New(s, tr, nil)

	s.Apply(&wire.ServerListEvent{Type: "server_list", Servers: []wire.Server{{ID: "srv1"}}}, nil)
	s.SetConnected(true)

	c.OnDisconnected()

	assert.False(t, s.Connected())
	assert.Empty(t, s.Servers())
}

func TestOnEventForwardsSideEffectCommands(t *testing.T) {
	s := store.New()
	tr := &fakeTransport{}
	c := New(s, tr, nil)

	c.OnEvent(&wire.ChannelListEvent{Type: "channel_list", ServerID: "srv1", Channels: []wire.Channel{{ID: "c1", Name: "general"}}})

	require.Len(t, tr.sent, 3)
	assert.Equal(t, "list_roles", tr.sent[0].CommandType())
	assert.Equal(t, "list_categories", tr.sent[1].CommandType())
	assert.Equal(t, "get_presences", tr.sent[2].CommandType())
}

func TestConnectRecordsNicknameOnStore(t *testing.T) {
	s := store.New()
	tr := &fakeTransport{}
	c := New(s, tr, nil)

	c.Connect("alice")
	assert.Equal(t, "alice", s.Nickname())
	assert.True(t, tr.connected)
}
