package optimistic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"concord/internal/store"
	"concord/internal/wire"
)

type fakeSender struct {
	sent []wire.Command
}

func (f *fakeSender) Send(cmd wire.Command) error {
	f.sent = append(f.sent, cmd)
	return nil
}

func TestSendMessageAppendsLocallyAndSends(t *testing.T) {
	s := store.New()
	s.SetNickname("me")
	s.SetConnected(true)
	sender := &fakeSender{}
	layer := New(s, sender)

	err := layer.SendMessage("srv1", "general", "hello", nil)
	require.NoError(t, err)

	msgs := s.Messages("srv1", "general")
	require.Len(t, msgs, 1)
	assert.Equal(t, "hello", msgs[0].Content)
	assert.Equal(t, "me", msgs[0].Author)
	assert.NotEmpty(t, msgs[0].ID)

	require.Len(t, sender.sent, 1)
	assert.Equal(t, "send_message", sender.sent[0].CommandType())
}

func TestSendMessageClearsReplyingTo(t *testing.T) {
	s := store.New()
	s.SetNickname("me")
	s.SetConnected(true)
	sender := &fakeSender{}
	layer := New(s, sender)

	s.SetReplyingTo(&wire.ReplyInfo{ID: "m1", Author: "alice", ContentPreview: "hi"})
	require.NoError(t, layer.SendMessage("srv1", "general", "reply", nil))

	msgs := s.Messages("srv1", "general")
	require.Len(t, msgs, 1)
	require.NotNil(t, msgs[0].ReplyTo)
	assert.Equal(t, "m1", msgs[0].ReplyTo.ID)
	assert.Nil(t, s.ReplyingTo())
}

func TestSendMessageRejectsWhenDisconnected(t *testing.T) {
	s := store.New()
	s.SetNickname("me")
	sender := &fakeSender{}
	layer := New(s, sender)

	err := layer.SendMessage("srv1", "general", "hello", nil)
	require.Error(t, err)
	assert.Empty(t, s.Messages("srv1", "general"))
	assert.Empty(t, sender.sent)
}

func TestSendMessageRejectsWhenNicknameUnknown(t *testing.T) {
	s := store.New()
	s.SetConnected(true)
	sender := &fakeSender{}
	layer := New(s, sender)

	err := layer.SendMessage("srv1", "general", "hello", nil)
	require.Error(t, err)
	assert.Empty(t, s.Messages("srv1", "general"))
	assert.Empty(t, sender.sent)
}

func TestMarkReadClearsUnreadAndSends(t *testing.T) {
	s := store.New()
	s.Apply(&wire.MessageEvent{Type: "message", ID: "m1", ServerID: "srv1", From: "alice", Target: "general"}, nil)
	require.Equal(t, 1, s.UnreadCount("srv1", "general"))

	sender := &fakeSender{}
	layer := New(s, sender)
	require.NoError(t, layer.MarkRead("srv1", "general", "m1"))

	assert.Equal(t, 0, s.UnreadCount("srv1", "general"))
	require.Len(t, sender.sent, 1)
	assert.Equal(t, "mark_read", sender.sent[0].CommandType())
}
