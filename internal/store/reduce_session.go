package store

import "concord/internal/wire"

func (s *Store) applyServerList(e *wire.ServerListEvent) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.servers = append([]wire.Server(nil), e.Servers...)
}

// applyHistory prepends a page of history to a channel's message list. The
// server sends pages in descending-by-time order (newest first); the store
// holds messages ascending, so the page is reversed before it is
// prepended.
func (s *Store) applyHistory(e *wire.HistoryEvent) {
	key := wire.ChannelKey(e.ServerID, e.Channel)

	page := make([]wire.Message, len(e.Messages))
	for i, m := range e.Messages {
		page[len(e.Messages)-1-i] = m
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	existing := s.messages[key]
	existingIDs := make(map[string]bool, len(existing))
	for _, m := range existing {
		existingIDs[m.ID] = true
	}

	next := make([]wire.Message, 0, len(page)+len(existing))
	for _, m := range page {
		if !existingIDs[m.ID] {
			next = append(next, m)
		}
	}
	next = append(next, existing...)

	s.messages[key] = next
	s.hasMore[key] = e.HasMore
}

func (s *Store) applyUnreadCounts(e *wire.UnreadCountsEvent) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, c := range e.Counts {
		key := wire.ChannelKey(e.ServerID, c.ChannelName)
		s.unreadCounts[key] = int(c.Count)
	}
}

func (s *Store) applyUserProfile(e *wire.UserProfileEvent) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.userProfiles[e.Profile.UserID] = e.Profile
}

func (s *Store) applyNotificationSettings(e *wire.NotificationSettingsEvent) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.notificationPrefs[e.Settings.ServerID] = e.Settings
}

func (s *Store) applyError(e *wire.ErrorEvent) {
	// Non-mutating: errors surface through the logger, never the state
	// tree, so a failed command never corrupts unrelated store state.
	if s.onError != nil {
		s.onError(e.Code, e.Message)
	}
}

// OnError registers a callback invoked for every inbound error event. It
// is how the engine forwards server-reported failures to its own logger
// without the store importing a logging package itself.
func (s *Store) OnError(fn func(code, message string)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onError = fn
}
