package store

import "concord/internal/wire"

// Pins

func (s *Store) applyMessagePin(e *wire.MessagePinEvent) {
	key := wire.ChannelKey(e.ServerID, e.Channel)

	s.mu.Lock()
	defer s.mu.Unlock()
	pins := s.pinnedMessages[key]
	for _, p := range pins {
		if p.MessageID == e.MessageID {
			return
		}
	}
	next := make([]wire.PinnedMessage, len(pins)+1)
	copy(next, pins)
	next[len(pins)] = wire.PinnedMessage{MessageID: e.MessageID, PinnedBy: e.PinnedBy}
	s.pinnedMessages[key] = next
}

func (s *Store) applyMessageUnpin(e *wire.MessageUnpinEvent) {
	key := wire.ChannelKey(e.ServerID, e.Channel)

	s.mu.Lock()
	defer s.mu.Unlock()
	pins := s.pinnedMessages[key]
	next := make([]wire.PinnedMessage, 0, len(pins))
	for _, p := range pins {
		if p.MessageID != e.MessageID {
			next = append(next, p)
		}
	}
	s.pinnedMessages[key] = next
}

func (s *Store) applyPinnedMessages(e *wire.PinnedMessagesEvent) {
	key := wire.ChannelKey(e.ServerID, e.Channel)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.pinnedMessages[key] = append([]wire.PinnedMessage(nil), e.Pins...)
}

// Threads

func (s *Store) applyThreadCreate(e *wire.ThreadCreateEvent) {
	s.upsertThread(e.ServerID, e.Thread)
}

func (s *Store) applyThreadUpdate(e *wire.ThreadUpdateEvent) {
	s.upsertThread(e.ServerID, e.Thread)
}

func (s *Store) upsertThread(serverID string, t wire.Thread) {
	key := wire.ChannelKey(serverID, t.ParentChannel)

	s.mu.Lock()
	defer s.mu.Unlock()
	threads := s.threads[key]
	for i := range threads {
		if threads[i].ID == t.ID {
			next := make([]wire.Thread, len(threads))
			copy(next, threads)
			next[i] = t
			s.threads[key] = next
			return
		}
	}
	next := make([]wire.Thread, len(threads)+1)
	copy(next, threads)
	next[len(threads)] = t
	s.threads[key] = next
}

func (s *Store) applyThreadList(e *wire.ThreadListEvent) {
	key := wire.ChannelKey(e.ServerID, e.ParentChannel)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.threads[key] = append([]wire.Thread(nil), e.Threads...)
}

// Forum tags

func (s *Store) applyForumTagList(e *wire.ForumTagListEvent) {
	key := wire.ChannelKey(e.ServerID, e.Channel)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.forumTags[key] = append([]wire.ForumTag(nil), e.Tags...)
}

func (s *Store) applyForumTagUpdate(e *wire.ForumTagUpdateEvent) {
	key := wire.ChannelKey(e.ServerID, e.Channel)

	s.mu.Lock()
	defer s.mu.Unlock()
	tags := s.forumTags[key]
	for i := range tags {
		if tags[i].ID == e.Tag.ID {
			next := make([]wire.ForumTag, len(tags))
			copy(next, tags)
			next[i] = e.Tag
			s.forumTags[key] = next
			return
		}
	}
	next := make([]wire.ForumTag, len(tags)+1)
	copy(next, tags)
	next[len(tags)] = e.Tag
	s.forumTags[key] = next
}

func (s *Store) applyForumTagDelete(e *wire.ForumTagDeleteEvent) {
	key := wire.ChannelKey(e.ServerID, e.Channel)

	s.mu.Lock()
	defer s.mu.Unlock()
	tags := s.forumTags[key]
	next := make([]wire.ForumTag, 0, len(tags))
	for _, t := range tags {
		if t.ID != e.TagID {
			next = append(next, t)
		}
	}
	s.forumTags[key] = next
}

// Bookmarks (global, not channel-scoped)

func (s *Store) applyBookmarkList(e *wire.BookmarkListEvent) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.bookmarks = append([]wire.Bookmark(nil), e.Bookmarks...)
}

func (s *Store) applyBookmarkAdd(e *wire.BookmarkAddEvent) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, b := range s.bookmarks {
		if b.MessageID == e.Bookmark.MessageID {
			return
		}
	}
	s.bookmarks = append(append([]wire.Bookmark(nil), s.bookmarks...), e.Bookmark)
}

func (s *Store) applyBookmarkRemove(e *wire.BookmarkRemoveEvent) {
	s.mu.Lock()
	defer s.mu.Unlock()
	next := make([]wire.Bookmark, 0, len(s.bookmarks))
	for _, b := range s.bookmarks {
		if b.MessageID != e.MessageID {
			next = append(next, b)
		}
	}
	s.bookmarks = next
}

// Moderation

func (s *Store) applyAuditLogEntries(e *wire.AuditLogEntriesEvent) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.auditLog[e.ServerID] = append([]wire.AuditEntry(nil), e.Entries...)
}

func (s *Store) applyBanList(e *wire.BanListEvent) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.bans[e.ServerID] = append([]wire.Ban(nil), e.Bans...)
}

func (s *Store) applyAutomodRuleList(e *wire.AutomodRuleListEvent) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.automodRules[e.ServerID] = append([]wire.AutomodRule(nil), e.Rules...)
}

func (s *Store) applyAutomodRuleUpdate(e *wire.AutomodRuleUpdateEvent) {
	s.mu.Lock()
	defer s.mu.Unlock()
	rules := s.automodRules[e.ServerID]
	for i := range rules {
		if rules[i].ID == e.Rule.ID {
			next := make([]wire.AutomodRule, len(rules))
			copy(next, rules)
			next[i] = e.Rule
			s.automodRules[e.ServerID] = next
			return
		}
	}
	next := make([]wire.AutomodRule, len(rules)+1)
	copy(next, rules)
	next[len(rules)] = e.Rule
	s.automodRules[e.ServerID] = next
}

func (s *Store) applyAutomodRuleDelete(e *wire.AutomodRuleDeleteEvent) {
	s.mu.Lock()
	defer s.mu.Unlock()
	rules := s.automodRules[e.ServerID]
	next := make([]wire.AutomodRule, 0, len(rules))
	for _, r := range rules {
		if r.ID != e.RuleID {
			next = append(next, r)
		}
	}
	s.automodRules[e.ServerID] = next
}

// Invites

func (s *Store) applyInviteList(e *wire.InviteListEvent) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.invites[e.ServerID] = append([]wire.Invite(nil), e.Invites...)
}

func (s *Store) applyInviteCreate(e *wire.InviteCreateEvent) {
	s.mu.Lock()
	defer s.mu.Unlock()
	invites := s.invites[e.ServerID]
	next := make([]wire.Invite, len(invites)+1)
	copy(next, invites)
	next[len(invites)] = e.Invite
	s.invites[e.ServerID] = next
}

func (s *Store) applyInviteDelete(e *wire.InviteDeleteEvent) {
	s.mu.Lock()
	defer s.mu.Unlock()
	invites := s.invites[e.ServerID]
	next := make([]wire.Invite, 0, len(invites))
	for _, i := range invites {
		if i.Code != e.Code {
			next = append(next, i)
		}
	}
	s.invites[e.ServerID] = next
}

// Scheduled events & RSVPs

func (s *Store) applyEventList(e *wire.EventListEvent) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.serverEvents[e.ServerID] = append([]wire.ScheduledEvent(nil), e.Events...)
}

func (s *Store) applyEventUpdate(e *wire.EventUpdateEvent) {
	s.mu.Lock()
	defer s.mu.Unlock()
	events := s.serverEvents[e.ServerID]
	for i := range events {
		if events[i].ID == e.Event.ID {
			next := make([]wire.ScheduledEvent, len(events))
			copy(next, events)
			next[i] = e.Event
			s.serverEvents[e.ServerID] = next
			return
		}
	}
	next := make([]wire.ScheduledEvent, len(events)+1)
	copy(next, events)
	next[len(events)] = e.Event
	s.serverEvents[e.ServerID] = next
}

func (s *Store) applyEventDelete(e *wire.EventDeleteEvent) {
	s.mu.Lock()
	defer s.mu.Unlock()
	events := s.serverEvents[e.ServerID]
	next := make([]wire.ScheduledEvent, 0, len(events))
	for _, ev := range events {
		if ev.ID != e.EventID {
			next = append(next, ev)
		}
	}
	s.serverEvents[e.ServerID] = next
}

func (s *Store) applyEventRSVPList(e *wire.EventRSVPListEvent) {
	// RSVPs are surfaced per-event on demand; the store keeps only the
	// most recently requested list, keyed by event id.
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.rsvps == nil {
		s.rsvps = map[string][]wire.RSVP{}
	}
	s.rsvps[e.EventID] = append([]wire.RSVP(nil), e.RSVPs...)
}

// Community hub

func (s *Store) applyServerCommunity(e *wire.ServerCommunityEvent) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.communitySettings[e.ServerID] = e.Settings
}

func (s *Store) applyDiscoverServers(e *wire.DiscoverServersEvent) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.discoverableServers = append([]wire.CommunitySettings(nil), e.Servers...)
}

// Channel follows

func (s *Store) applyChannelFollowList(e *wire.ChannelFollowListEvent) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.channelFollows == nil {
		s.channelFollows = map[string][]wire.ChannelFollow{}
	}
	s.channelFollows[e.ServerID] = append([]wire.ChannelFollow(nil), e.Follows...)
}

func (s *Store) applyChannelFollowCreate(e *wire.ChannelFollowCreateEvent) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.channelFollows == nil {
		s.channelFollows = map[string][]wire.ChannelFollow{}
	}
	follows := s.channelFollows[e.Follow.TargetServer]
	next := make([]wire.ChannelFollow, len(follows)+1)
	copy(next, follows)
	next[len(follows)] = e.Follow
	s.channelFollows[e.Follow.TargetServer] = next
}

func (s *Store) applyChannelFollowDelete(e *wire.ChannelFollowDeleteEvent) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for server, follows := range s.channelFollows {
		next := make([]wire.ChannelFollow, 0, len(follows))
		for _, f := range follows {
			if !(f.SourceChannel == e.SourceChannel && f.TargetChannel == e.TargetChannel) {
				next = append(next, f)
			}
		}
		s.channelFollows[server] = next
	}
}

// Templates

func (s *Store) applyTemplateList(e *wire.TemplateListEvent) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.templates[e.ServerID] = append([]wire.Template(nil), e.Templates...)
}

func (s *Store) applyTemplateUpdate(e *wire.TemplateUpdateEvent) {
	s.mu.Lock()
	defer s.mu.Unlock()
	templates := s.templates[e.Template.ServerID]
	for i := range templates {
		if templates[i].ID == e.Template.ID {
			next := make([]wire.Template, len(templates))
			copy(next, templates)
			next[i] = e.Template
			s.templates[e.Template.ServerID] = next
			return
		}
	}
	next := make([]wire.Template, len(templates)+1)
	copy(next, templates)
	next[len(templates)] = e.Template
	s.templates[e.Template.ServerID] = next
}

func (s *Store) applyTemplateDelete(e *wire.TemplateDeleteEvent) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for server, templates := range s.templates {
		next := make([]wire.Template, 0, len(templates))
		for _, t := range templates {
			if t.ID != e.TemplateID {
				next = append(next, t)
			}
		}
		s.templates[server] = next
	}
}
