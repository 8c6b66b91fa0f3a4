// Package optimistic implements the two mutations the client applies to
// its own store ahead of any server confirmation: sendMessage and
// markRead. Every other mutating command relies on the server's own
// echo, reconciled later by the store's reducers.
package optimistic

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"concord/internal/store"
	"concord/internal/wire"
)

// Sender transmits a command over the transport. It is satisfied by
// *transport.Transport.Send, kept as an interface here so this package
// does not import transport and tests can substitute a fake sender.
type Sender interface {
	Send(cmd wire.Command) error
}

// Layer applies optimistic local mutations and forwards the corresponding
// command to the transport.
type Layer struct {
	store *store.Store
	send  Sender
}

func New(s *store.Store, send Sender) *Layer {
	return &Layer{store: s, send: send}
}

// SendMessage builds a local Message with a client-generated id, appends
// it to the channel immediately, clears any pending reply-to, and then
// transmits send_message. The server's own message event for the same id
// is dropped by the store's dedupe-by-id check rather than appended again.
// Rejects with no state change if the transport isn't connected or no
// nickname has been set yet.
func (l *Layer) SendMessage(serverID, channel, content string, attachmentIDs []string) error {
	if !l.store.Connected() || l.store.Nickname() == "" {
		return fmt.Errorf("optimistic: cannot send message: not connected or nickname unknown")
	}

	id := uuid.NewString()
	reply := l.store.ReplyingTo()

	var replyToID string
	if reply != nil {
		replyToID = reply.ID
	}

	msg := wire.Message{
		ID:        id,
		Author:    l.store.Nickname(),
		Content:   content,
		Timestamp: time.Now(),
		ReplyTo:   reply,
	}
	l.store.AppendLocalMessage(serverID, channel, msg)
	l.store.SetReplyingTo(nil)

	return l.send.Send(wire.NewSendMessage(serverID, channel, content, replyToID, attachmentIDs))
}

// MarkRead optimistically zeroes a channel's unread counter and transmits
// mark_read. A subsequent unread_counts event from the server overwrites
// the optimistic zero with the authoritative value.
func (l *Layer) MarkRead(serverID, channel, lastMessageID string) error {
	l.store.ClearUnreadCount(serverID, channel)
	return l.send.Send(wire.NewMarkRead(serverID, channel, lastMessageID))
}
