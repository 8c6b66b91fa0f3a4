package store

import "concord/internal/wire"

func (s *Store) applyMessage(e *wire.MessageEvent) {
	key := wire.ChannelKey(e.ServerID, e.Target)

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.hasID(key, e.ID) {
		return
	}

	msg := wire.Message{
		ID:          e.ID,
		Author:      e.From,
		Content:     e.Content,
		Timestamp:   e.Timestamp,
		ReplyTo:     e.ReplyTo,
		Attachments: e.Attachments,
	}
	existing := s.messages[key]
	next := make([]wire.Message, len(existing)+1)
	copy(next, existing)
	next[len(existing)] = msg
	s.messages[key] = next

	if e.AvatarURL != "" {
		s.avatars[e.From] = e.AvatarURL
	}

	if e.From != s.nickname {
		s.unreadCounts[key] = s.unreadCounts[key] + 1
	}
}

// hasID reports whether a message with id is already present for key,
// the defensive echo-dedupe the optimistic send path needs: the server's
// own broadcast of a message the client already appended locally must
// not be appended twice.
func (s *Store) hasID(key, id string) bool {
	for _, m := range s.messages[key] {
		if m.ID == id {
			return true
		}
	}
	return false
}

func (s *Store) applyMessageEdit(e *wire.MessageEditEvent) {
	key := wire.ChannelKey(e.ServerID, e.Channel)

	s.mu.Lock()
	defer s.mu.Unlock()

	msgs := s.messages[key]
	for i := range msgs {
		if msgs[i].ID == e.ID {
			editedAt := e.EditedAt
			next := make([]wire.Message, len(msgs))
			copy(next, msgs)
			next[i].Content = e.Content
			next[i].EditedAt = &editedAt
			s.messages[key] = next
			return
		}
	}
}

func (s *Store) applyMessageDelete(e *wire.MessageDeleteEvent) {
	key := wire.ChannelKey(e.ServerID, e.Channel)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.messages[key] = removeMessage(s.messages[key], e.ID)
}

func (s *Store) applyBulkMessageDelete(e *wire.BulkMessageDeleteEvent) {
	key := wire.ChannelKey(e.ServerID, e.Channel)
	toDelete := make(map[string]bool, len(e.MessageIDs))
	for _, id := range e.MessageIDs {
		toDelete[id] = true
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	existing := s.messages[key]
	next := make([]wire.Message, 0, len(existing))
	for _, m := range existing {
		if !toDelete[m.ID] {
			next = append(next, m)
		}
	}
	s.messages[key] = next
}

func removeMessage(msgs []wire.Message, id string) []wire.Message {
	next := make([]wire.Message, 0, len(msgs))
	for _, m := range msgs {
		if m.ID != id {
			next = append(next, m)
		}
	}
	return next
}

func (s *Store) applyMessageEmbed(e *wire.MessageEmbedEvent) {
	key := wire.ChannelKey(e.ServerID, e.Channel)

	s.mu.Lock()
	defer s.mu.Unlock()

	msgs := s.messages[key]
	for i := range msgs {
		if msgs[i].ID == e.MessageID {
			next := make([]wire.Message, len(msgs))
			copy(next, msgs)
			next[i].Embeds = e.Embeds
			s.messages[key] = next
			return
		}
	}
}

func (s *Store) applyReactionAdd(e *wire.ReactionAddEvent) {
	key := wire.ChannelKey(e.ServerID, e.Channel)

	s.mu.Lock()
	defer s.mu.Unlock()

	msgs := s.messages[key]
	for i := range msgs {
		if msgs[i].ID != e.MessageID {
			continue
		}
		next := make([]wire.Message, len(msgs))
		copy(next, msgs)
		next[i].Reactions = addReaction(next[i].Reactions, e.Emoji, e.UserID)
		s.messages[key] = next
		return
	}
}

func (s *Store) applyReactionRemove(e *wire.ReactionRemoveEvent) {
	key := wire.ChannelKey(e.ServerID, e.Channel)

	s.mu.Lock()
	defer s.mu.Unlock()

	msgs := s.messages[key]
	for i := range msgs {
		if msgs[i].ID != e.MessageID {
			continue
		}
		next := make([]wire.Message, len(msgs))
		copy(next, msgs)
		next[i].Reactions = removeReaction(next[i].Reactions, e.Emoji, e.UserID)
		s.messages[key] = next
		return
	}
}

// addReaction maintains the unique-user-set invariant for one emoji on one
// message: a user id appears at most once per emoji, and Count always
// equals len(UserIDs).
func addReaction(groups []wire.ReactionGroup, emoji, userID string) []wire.ReactionGroup {
	for i := range groups {
		if groups[i].Emoji != emoji {
			continue
		}
		for _, u := range groups[i].UserIDs {
			if u == userID {
				return groups
			}
		}
		next := make([]wire.ReactionGroup, len(groups))
		copy(next, groups)
		ids := make([]string, len(groups[i].UserIDs)+1)
		copy(ids, groups[i].UserIDs)
		ids[len(groups[i].UserIDs)] = userID
		next[i] = wire.ReactionGroup{Emoji: emoji, UserIDs: ids, Count: len(ids)}
		return next
	}
	next := make([]wire.ReactionGroup, len(groups)+1)
	copy(next, groups)
	next[len(groups)] = wire.ReactionGroup{Emoji: emoji, UserIDs: []string{userID}, Count: 1}
	return next
}

// removeReaction drops a user from an emoji's set, and drops the emoji's
// group entirely once its count reaches zero.
func removeReaction(groups []wire.ReactionGroup, emoji, userID string) []wire.ReactionGroup {
	for i := range groups {
		if groups[i].Emoji != emoji {
			continue
		}
		ids := make([]string, 0, len(groups[i].UserIDs))
		for _, u := range groups[i].UserIDs {
			if u != userID {
				ids = append(ids, u)
			}
		}
		if len(ids) == 0 {
			next := make([]wire.ReactionGroup, 0, len(groups)-1)
			next = append(next, groups[:i]...)
			next = append(next, groups[i+1:]...)
			return next
		}
		next := make([]wire.ReactionGroup, len(groups))
		copy(next, groups)
		next[i] = wire.ReactionGroup{Emoji: emoji, UserIDs: ids, Count: len(ids)}
		return next
	}
	return groups
}

func (s *Store) applySearchResults(e *wire.SearchResultsEvent) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.search = SearchState{
		Query:      e.Query,
		Results:    e.Results,
		TotalCount: e.TotalCount,
		HasRun:     true,
	}
}
