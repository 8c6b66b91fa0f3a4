package store

import "concord/internal/wire"

// Sender issues a follow-up command as a side effect of an inbound event,
// e.g. channel_list's load-bearing fan-out into list_roles/list_categories/
// get_presences. A nil Sender is valid; side effects are simply skipped,
// which matters for unit tests that feed events directly.
type Sender func(wire.Command)

// Apply is the Event Dispatcher's single entry point: it routes ev to the
// reducer for its concrete type and returns. UnknownEvent and any event
// type not yet wired into this build are silently ignored, so a server
// ahead of this client on protocol version never breaks it.
func (s *Store) Apply(ev wire.Event, send Sender) {
	if send == nil {
		send = func(wire.Command) {}
	}

	switch e := ev.(type) {
	case *wire.MessageEvent:
		s.applyMessage(e)
	case *wire.MessageEditEvent:
		s.applyMessageEdit(e)
	case *wire.MessageDeleteEvent:
		s.applyMessageDelete(e)
	case *wire.MessageEmbedEvent:
		s.applyMessageEmbed(e)
	case *wire.BulkMessageDeleteEvent:
		s.applyBulkMessageDelete(e)
	case *wire.ReactionAddEvent:
		s.applyReactionAdd(e)
	case *wire.ReactionRemoveEvent:
		s.applyReactionRemove(e)
	case *wire.SearchResultsEvent:
		s.applySearchResults(e)

	case *wire.JoinEvent:
		s.applyJoin(e)
	case *wire.PartEvent:
		s.applyPart(e)
	case *wire.QuitEvent:
		s.applyQuit(e)
	case *wire.NickChangeEvent:
		s.applyNickChange(e)
	case *wire.NamesEvent:
		s.applyNames(e)
	case *wire.MemberRoleUpdateEvent:
		s.applyMemberRoleUpdate(e)
	case *wire.ServerNicknameUpdateEvent:
		s.applyServerNicknameUpdate(e)
	case *wire.MemberKickEvent:
		s.applyMemberKick(e)
	case *wire.MemberBanEvent:
		s.applyMemberBan(e)
	case *wire.MemberUnbanEvent:
		s.applyMemberUnban(e)
	case *wire.MemberTimeoutEvent:
		s.applyMemberTimeout(e)

	case *wire.ChannelListEvent:
		s.applyChannelList(e, send)
	case *wire.TopicEvent:
		s.applyTopic(e)
	case *wire.TopicChangeEvent:
		s.applyTopicChange(e)
	case *wire.ChannelReorderEvent:
		s.applyChannelReorder(e)
	case *wire.SlowModeUpdateEvent:
		s.applySlowModeUpdate(e)
	case *wire.NSFWUpdateEvent:
		s.applyNSFWUpdate(e)
	case *wire.CategoryListEvent:
		s.applyCategoryList(e)
	case *wire.CategoryUpdateEvent:
		s.applyCategoryUpdate(e)
	case *wire.CategoryDeleteEvent:
		s.applyCategoryDelete(e)
	case *wire.RoleListEvent:
		s.applyRoleList(e)
	case *wire.RoleUpdateEvent:
		s.applyRoleUpdate(e)
	case *wire.RoleDeleteEvent:
		s.applyRoleDelete(e)

	case *wire.PresenceUpdateEvent:
		s.applyPresenceUpdate(e)
	case *wire.PresenceListEvent:
		s.applyPresenceList(e)
	case *wire.TypingStartEvent:
		s.applyTypingStart(e)

	case *wire.ServerListEvent:
		s.applyServerList(e)
	case *wire.HistoryEvent:
		s.applyHistory(e)
	case *wire.UnreadCountsEvent:
		s.applyUnreadCounts(e)
	case *wire.UserProfileEvent:
		s.applyUserProfile(e)
	case *wire.NotificationSettingsEvent:
		s.applyNotificationSettings(e)
	case *wire.ServerNoticeEvent:
		// Display-only; no normalized state to update.

	case *wire.MessagePinEvent:
		s.applyMessagePin(e)
	case *wire.MessageUnpinEvent:
		s.applyMessageUnpin(e)
	case *wire.PinnedMessagesEvent:
		s.applyPinnedMessages(e)
	case *wire.ThreadCreateEvent:
		s.applyThreadCreate(e)
	case *wire.ThreadUpdateEvent:
		s.applyThreadUpdate(e)
	case *wire.ThreadListEvent:
		s.applyThreadList(e)
	case *wire.ForumTagListEvent:
		s.applyForumTagList(e)
	case *wire.ForumTagUpdateEvent:
		s.applyForumTagUpdate(e)
	case *wire.ForumTagDeleteEvent:
		s.applyForumTagDelete(e)

	case *wire.BookmarkListEvent:
		s.applyBookmarkList(e)
	case *wire.BookmarkAddEvent:
		s.applyBookmarkAdd(e)
	case *wire.BookmarkRemoveEvent:
		s.applyBookmarkRemove(e)

	case *wire.AuditLogEntriesEvent:
		s.applyAuditLogEntries(e)
	case *wire.BanListEvent:
		s.applyBanList(e)
	case *wire.AutomodRuleListEvent:
		s.applyAutomodRuleList(e)
	case *wire.AutomodRuleUpdateEvent:
		s.applyAutomodRuleUpdate(e)
	case *wire.AutomodRuleDeleteEvent:
		s.applyAutomodRuleDelete(e)

	case *wire.InviteListEvent:
		s.applyInviteList(e)
	case *wire.InviteCreateEvent:
		s.applyInviteCreate(e)
	case *wire.InviteDeleteEvent:
		s.applyInviteDelete(e)
	case *wire.EventListEvent:
		s.applyEventList(e)
	case *wire.EventUpdateEvent:
		s.applyEventUpdate(e)
	case *wire.EventDeleteEvent:
		s.applyEventDelete(e)
	case *wire.EventRSVPListEvent:
		s.applyEventRSVPList(e)
	case *wire.ServerCommunityEvent:
		s.applyServerCommunity(e)
	case *wire.DiscoverServersEvent:
		s.applyDiscoverServers(e)
	case *wire.ChannelFollowListEvent:
		s.applyChannelFollowList(e)
	case *wire.ChannelFollowCreateEvent:
		s.applyChannelFollowCreate(e)
	case *wire.ChannelFollowDeleteEvent:
		s.applyChannelFollowDelete(e)
	case *wire.TemplateListEvent:
		s.applyTemplateList(e)
	case *wire.TemplateUpdateEvent:
		s.applyTemplateUpdate(e)
	case *wire.TemplateDeleteEvent:
		s.applyTemplateDelete(e)

	case *wire.ErrorEvent:
		s.applyError(e)

	case wire.UnknownEvent:
		// Forward-compatible no-op.
	}
}
