package store

import "concord/internal/wire"

// The selector layer is the store's only public read surface. Every
// collection selector except RSVPs and ChannelFollows (which return nil)
// returns the exact sentinel slice/map for a missing
// key rather than allocating a fresh empty one, so a caller that memoizes
// on identity (e.g. React's Object.is-style comparison, or a Go cache
// keyed by pointer) never sees a spurious change for state that was empty
// before and is still empty after.

func (s *Store) Connected() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.connected
}

func (s *Store) Servers() []wire.Server {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.servers
}

func (s *Store) Channels(serverID string) []wire.Channel {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if v, ok := s.channels[serverID]; ok {
		return v
	}
	return emptyChannels
}

func (s *Store) Categories(serverID string) []wire.Category {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if v, ok := s.categories[serverID]; ok {
		return v
	}
	return emptyCategories
}

func (s *Store) Roles(serverID string) []wire.Role {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if v, ok := s.roles[serverID]; ok {
		return v
	}
	return emptyRoles
}

func (s *Store) Messages(serverID, channel string) []wire.Message {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if v, ok := s.messages[wire.ChannelKey(serverID, channel)]; ok {
		return v
	}
	return emptyMessages
}

func (s *Store) HasMoreHistory(serverID, channel string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.hasMore[wire.ChannelKey(serverID, channel)]
}

func (s *Store) Members(serverID, channel string) []wire.Member {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if v, ok := s.members[wire.ChannelKey(serverID, channel)]; ok {
		return v
	}
	return emptyMembers
}

// Avatar returns the cached avatar URL for a nickname, populated from
// message, join, and names events. Returns "" if no avatar has been
// observed for that nickname yet.
func (s *Store) Avatar(nickname string) string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.avatars[nickname]
}

func (s *Store) UnreadCount(serverID, channel string) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.unreadCounts[wire.ChannelKey(serverID, channel)]
}

// TotalUnread sums unread counts across every channel of serverID.
func (s *Store) TotalUnread(serverID string) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	total := 0
	prefix := serverID + ":"
	for key, n := range s.unreadCounts {
		if len(key) > len(prefix) && key[:len(prefix)] == prefix {
			total += n
		}
	}
	return total
}

func (s *Store) TypingUsers(serverID, channel string) []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if v, ok := s.typingUsers[wire.ChannelKey(serverID, channel)]; ok {
		return v
	}
	return emptyStrings
}

func (s *Store) Presences(serverID string) map[string]wire.Presence {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if v, ok := s.presences[serverID]; ok {
		return v
	}
	return emptyPresences
}

func (s *Store) PinnedMessages(serverID, channel string) []wire.PinnedMessage {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if v, ok := s.pinnedMessages[wire.ChannelKey(serverID, channel)]; ok {
		return v
	}
	return emptyPins
}

func (s *Store) Threads(serverID, parentChannel string) []wire.Thread {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if v, ok := s.threads[wire.ChannelKey(serverID, parentChannel)]; ok {
		return v
	}
	return emptyThreads
}

func (s *Store) ForumTags(serverID, channel string) []wire.ForumTag {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if v, ok := s.forumTags[wire.ChannelKey(serverID, channel)]; ok {
		return v
	}
	return emptyForumTags
}

func (s *Store) Bookmarks() []wire.Bookmark {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.bookmarks == nil {
		return emptyBookmarks
	}
	return s.bookmarks
}

func (s *Store) Bans(serverID string) []wire.Ban {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if v, ok := s.bans[serverID]; ok {
		return v
	}
	return emptyBans
}

func (s *Store) AuditLog(serverID string) []wire.AuditEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if v, ok := s.auditLog[serverID]; ok {
		return v
	}
	return emptyAudit
}

func (s *Store) AutomodRules(serverID string) []wire.AutomodRule {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if v, ok := s.automodRules[serverID]; ok {
		return v
	}
	return emptyAutomod
}

func (s *Store) Invites(serverID string) []wire.Invite {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if v, ok := s.invites[serverID]; ok {
		return v
	}
	return emptyInvites
}

func (s *Store) ServerEvents(serverID string) []wire.ScheduledEvent {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if v, ok := s.serverEvents[serverID]; ok {
		return v
	}
	return emptyEvents
}

func (s *Store) RSVPs(eventID string) []wire.RSVP {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if v, ok := s.rsvps[eventID]; ok {
		return v
	}
	return nil
}

func (s *Store) CommunitySettings(serverID string) wire.CommunitySettings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.communitySettings[serverID]
}

func (s *Store) DiscoverableServers() []wire.CommunitySettings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.discoverableServers == nil {
		return emptyCommunities
	}
	return s.discoverableServers
}

func (s *Store) Templates(serverID string) []wire.Template {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if v, ok := s.templates[serverID]; ok {
		return v
	}
	return emptyTemplates
}

func (s *Store) ChannelFollows(serverID string) []wire.ChannelFollow {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.channelFollows[serverID]
}

func (s *Store) NotificationSettings(serverID string) wire.NotificationSettings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.notificationPrefs[serverID]
}

func (s *Store) UserProfile(userID string) (wire.UserProfile, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.userProfiles[userID]
	return p, ok
}

func (s *Store) Search() SearchState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.search
}

func (s *Store) ReplyingTo() *wire.ReplyInfo {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.replyingTo
}

// SetReplyingTo records the message the user selected to reply to; the
// optimistic layer calls it with nil once the reply is sent.
func (s *Store) SetReplyingTo(r *wire.ReplyInfo) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.replyingTo = r
}

// CustomEmoji, SetCustomEmoji: server custom-emoji cache (name → image URL,
// the shape of the REST collaborator's GET /servers/{id}/emoji results). It
// is written only through SetCustomEmoji, never by an event.

func (s *Store) CustomEmoji(serverID string) map[string]string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if v, ok := s.customEmoji[serverID]; ok {
		return v
	}
	return emptyEmoji
}

func (s *Store) SetCustomEmoji(serverID string, emoji map[string]string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.customEmoji[serverID] = emoji
}
