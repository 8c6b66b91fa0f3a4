package engine

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"concord/internal/config"
)

func newTestEngine(t *testing.T) *Engine {
	cfg := config.Default()
	cfg.SqlitePath = filepath.Join(t.TempDir(), "folders.db")
	return New(cfg, nil)
}

func TestNewWiresAllComponents(t *testing.T) {
	e := newTestEngine(t)
	require.NotNil(t, e.Store())
	require.NotNil(t, e.UIState())
	require.NotNil(t, e.REST())
	assert.False(t, e.Store().Connected())
}

func TestSendMessageRejectsWhileDisconnected(t *testing.T) {
	e := newTestEngine(t)
	e.Store().SetNickname("me")

	err := e.SendMessage("srv1", "general", "hello", nil)
	require.Error(t, err)

	msgs := e.Store().Messages("srv1", "general")
	require.Len(t, msgs, 0)
	assert.Contains(t, err.Error(), "not connected")
}

func TestMarkReadClearsUnreadOptimistically(t *testing.T) {
	e := newTestEngine(t)
	require.NoError(t, e.MarkRead("srv1", "general", "m1"))
	assert.Equal(t, 0, e.Store().UnreadCount("srv1", "general"))
}
