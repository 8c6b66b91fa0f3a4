package store

import (
	"time"

	"concord/internal/wire"
)

// typingExpiry is how long a typing_start indicator survives without a
// refresh before the store clears it.
const typingExpiry = 8 * time.Second

func (s *Store) applyPresenceUpdate(e *wire.PresenceUpdateEvent) {
	s.mu.Lock()
	defer s.mu.Unlock()
	byUser := s.presences[e.ServerID]
	if byUser == nil {
		byUser = map[string]wire.Presence{}
	} else {
		next := make(map[string]wire.Presence, len(byUser)+1)
		for k, v := range byUser {
			next[k] = v
		}
		byUser = next
	}
	byUser[e.Presence.UserID] = e.Presence
	s.presences[e.ServerID] = byUser
}

func (s *Store) applyPresenceList(e *wire.PresenceListEvent) {
	byUser := make(map[string]wire.Presence, len(e.Presences))
	for _, p := range e.Presences {
		byUser[p.UserID] = p
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.presences[e.ServerID] = byUser
}

// applyTypingStart records that nickname is typing in a channel and
// schedules its own removal after typingExpiry. A fresh typing_start for
// the same (key, nickname) pair replaces the pending timer rather than
// stacking a second one, so the indicator's lifetime always measures from
// the most recent keystroke event. Events naming this client's own
// nickname are dropped: a client never displays its own typing
// indicator.
func (s *Store) applyTypingStart(e *wire.TypingStartEvent) {
	key := wire.ChannelKey(e.ServerID, e.Channel)

	s.mu.Lock()
	defer s.mu.Unlock()

	if e.Nickname == s.nickname {
		return
	}

	users := s.typingUsers[key]
	found := false
	for _, u := range users {
		if u == e.Nickname {
			found = true
			break
		}
	}
	if !found {
		next := make([]string, len(users)+1)
		copy(next, users)
		next[len(users)] = e.Nickname
		s.typingUsers[key] = next
	}

	timerKey := key + "\x00" + e.Nickname
	if existing, ok := s.typingTimers[timerKey]; ok {
		existing.Stop()
	}
	s.typingTimers[timerKey] = time.AfterFunc(typingExpiry, func() {
		s.clearTypingUser(key, e.Nickname, timerKey)
	})
}

func (s *Store) clearTypingUser(key, nickname, timerKey string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.typingTimers, timerKey)
	users := s.typingUsers[key]
	next := make([]string, 0, len(users))
	for _, u := range users {
		if u != nickname {
			next = append(next, u)
		}
	}
	s.typingUsers[key] = next
}
