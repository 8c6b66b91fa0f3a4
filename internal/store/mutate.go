package store

import "concord/internal/wire"

// AppendLocalMessage appends an optimistically-constructed message to a
// channel's message list immediately, ahead of any server echo. The
// optimistic layer calls this from sendMessage; the dedupe-by-id check
// in applyMessage keeps the later echo from duplicating it once the
// server's own message event arrives.
func (s *Store) AppendLocalMessage(serverID, channel string, msg wire.Message) {
	key := wire.ChannelKey(serverID, channel)

	s.mu.Lock()
	defer s.mu.Unlock()
	existing := s.messages[key]
	next := make([]wire.Message, len(existing)+1)
	copy(next, existing)
	next[len(existing)] = msg
	s.messages[key] = next
}

// ClearUnreadCount optimistically zeroes a channel's unread counter ahead
// of the server's own unread_counts confirmation, for markRead.
func (s *Store) ClearUnreadCount(serverID, channel string) {
	key := wire.ChannelKey(serverID, channel)

	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.unreadCounts, key)
}
