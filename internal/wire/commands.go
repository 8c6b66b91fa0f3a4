package wire

// Command is anything the Command Router can hand to Transport.Send. Every
// concrete command sets its own Type field to its wire discriminator; no
// request/reply correlation id is assigned (spec: fire-and-forget).
type Command interface {
	CommandType() string
}

// ChannelPosition is one entry of a reorder_channels command.
type ChannelPosition struct {
	ID         string `json:"id"`
	CategoryID string `json:"category_id,omitempty"`
	Position   int    `json:"position"`
}

// Session

type ListServersCmd struct {
	Type string `json:"type"`
}

func NewListServers() *ListServersCmd { return &ListServersCmd{Type: "list_servers"} }
func (c *ListServersCmd) CommandType() string { return c.Type }

// Servers

type CreateServerCmd struct {
	Type    string `json:"type"`
	Name    string `json:"name" validate:"required,max=100"`
	IconURL string `json:"icon_url,omitempty"`
}

func NewCreateServer(name, iconURL string) *CreateServerCmd {
	return &CreateServerCmd{Type: "create_server", Name: name, IconURL: iconURL}
}
func (c *CreateServerCmd) CommandType() string { return c.Type }

type JoinServerCmd struct {
	Type     string `json:"type"`
	ServerID string `json:"server_id" validate:"required"`
}

func NewJoinServer(serverID string) *JoinServerCmd {
	return &JoinServerCmd{Type: "join_server", ServerID: serverID}
}
func (c *JoinServerCmd) CommandType() string { return c.Type }

type LeaveServerCmd struct {
	Type     string `json:"type"`
	ServerID string `json:"server_id" validate:"required"`
}

func NewLeaveServer(serverID string) *LeaveServerCmd {
	return &LeaveServerCmd{Type: "leave_server", ServerID: serverID}
}
func (c *LeaveServerCmd) CommandType() string { return c.Type }

type DeleteServerCmd struct {
	Type     string `json:"type"`
	ServerID string `json:"server_id" validate:"required"`
}

func NewDeleteServer(serverID string) *DeleteServerCmd {
	return &DeleteServerCmd{Type: "delete_server", ServerID: serverID}
}
func (c *DeleteServerCmd) CommandType() string { return c.Type }

// Channels

type ListChannelsCmd struct {
	Type     string `json:"type"`
	ServerID string `json:"server_id" validate:"required"`
}

func NewListChannels(serverID string) *ListChannelsCmd {
	return &ListChannelsCmd{Type: "list_channels", ServerID: serverID}
}
func (c *ListChannelsCmd) CommandType() string { return c.Type }

type CreateChannelCmd struct {
	Type       string `json:"type"`
	ServerID   string `json:"server_id" validate:"required"`
	Name       string `json:"name" validate:"required,max=100"`
	CategoryID string `json:"category_id,omitempty"`
	IsPrivate  bool   `json:"is_private,omitempty"`
}

func NewCreateChannel(serverID, name, categoryID string, isPrivate bool) *CreateChannelCmd {
	return &CreateChannelCmd{Type: "create_channel", ServerID: serverID, Name: name, CategoryID: categoryID, IsPrivate: isPrivate}
}
func (c *CreateChannelCmd) CommandType() string { return c.Type }

type DeleteChannelCmd struct {
	Type     string `json:"type"`
	ServerID string `json:"server_id" validate:"required"`
	Channel  string `json:"channel" validate:"required"`
}

func NewDeleteChannel(serverID, channel string) *DeleteChannelCmd {
	return &DeleteChannelCmd{Type: "delete_channel", ServerID: serverID, Channel: channel}
}
func (c *DeleteChannelCmd) CommandType() string { return c.Type }

type SetTopicCmd struct {
	Type     string `json:"type"`
	ServerID string `json:"server_id" validate:"required"`
	Channel  string `json:"channel" validate:"required"`
	Topic    string `json:"topic" validate:"max=1024"`
}

func NewSetTopic(serverID, channel, topic string) *SetTopicCmd {
	return &SetTopicCmd{Type: "set_topic", ServerID: serverID, Channel: channel, Topic: topic}
}
func (c *SetTopicCmd) CommandType() string { return c.Type }

type JoinChannelCmd struct {
	Type     string `json:"type"`
	ServerID string `json:"server_id" validate:"required"`
	Channel  string `json:"channel" validate:"required"`
}

func NewJoinChannel(serverID, channel string) *JoinChannelCmd {
	return &JoinChannelCmd{Type: "join_channel", ServerID: serverID, Channel: channel}
}
func (c *JoinChannelCmd) CommandType() string { return c.Type }

type PartChannelCmd struct {
	Type     string `json:"type"`
	ServerID string `json:"server_id" validate:"required"`
	Channel  string `json:"channel" validate:"required"`
	Reason   string `json:"reason,omitempty"`
}

func NewPartChannel(serverID, channel, reason string) *PartChannelCmd {
	return &PartChannelCmd{Type: "part_channel", ServerID: serverID, Channel: channel, Reason: reason}
}
func (c *PartChannelCmd) CommandType() string { return c.Type }

type ReorderChannelsCmd struct {
	Type     string            `json:"type"`
	ServerID string            `json:"server_id" validate:"required"`
	Channels []ChannelPosition `json:"channels" validate:"required"`
}

func NewReorderChannels(serverID string, channels []ChannelPosition) *ReorderChannelsCmd {
	return &ReorderChannelsCmd{Type: "reorder_channels", ServerID: serverID, Channels: channels}
}
func (c *ReorderChannelsCmd) CommandType() string { return c.Type }

type SetSlowModeCmd struct {
	Type     string `json:"type"`
	ServerID string `json:"server_id" validate:"required"`
	Channel  string `json:"channel" validate:"required"`
	Seconds  int    `json:"seconds" validate:"min=0,max=21600"`
}

func NewSetSlowMode(serverID, channel string, seconds int) *SetSlowModeCmd {
	return &SetSlowModeCmd{Type: "set_slow_mode", ServerID: serverID, Channel: channel, Seconds: seconds}
}
func (c *SetSlowModeCmd) CommandType() string { return c.Type }

type SetNSFWCmd struct {
	Type     string `json:"type"`
	ServerID string `json:"server_id" validate:"required"`
	Channel  string `json:"channel" validate:"required"`
	IsNSFW   bool   `json:"is_nsfw"`
}

func NewSetNSFW(serverID, channel string, isNSFW bool) *SetNSFWCmd {
	return &SetNSFWCmd{Type: "set_nsfw", ServerID: serverID, Channel: channel, IsNSFW: isNSFW}
}
func (c *SetNSFWCmd) CommandType() string { return c.Type }

type SetAnnouncementChannelCmd struct {
	Type           string `json:"type"`
	ServerID       string `json:"server_id" validate:"required"`
	Channel        string `json:"channel" validate:"required"`
	IsAnnouncement bool   `json:"is_announcement"`
}

func NewSetAnnouncementChannel(serverID, channel string, isAnnouncement bool) *SetAnnouncementChannelCmd {
	return &SetAnnouncementChannelCmd{Type: "set_announcement_channel", ServerID: serverID, Channel: channel, IsAnnouncement: isAnnouncement}
}
func (c *SetAnnouncementChannelCmd) CommandType() string { return c.Type }

// Messages

type SendMessageCmd struct {
	Type          string   `json:"type"`
	ServerID      string   `json:"server_id" validate:"required"`
	Channel       string   `json:"channel" validate:"required"`
	Content       string   `json:"content" validate:"required,max=4000"`
	ReplyTo       string   `json:"reply_to,omitempty"`
	AttachmentIDs []string `json:"attachment_ids,omitempty"`
}

func NewSendMessage(serverID, channel, content, replyTo string, attachmentIDs []string) *SendMessageCmd {
	return &SendMessageCmd{Type: "send_message", ServerID: serverID, Channel: channel, Content: content, ReplyTo: replyTo, AttachmentIDs: attachmentIDs}
}
func (c *SendMessageCmd) CommandType() string { return c.Type }

type EditMessageCmd struct {
	Type      string `json:"type"`
	MessageID string `json:"message_id" validate:"required"`
	Content   string `json:"content" validate:"required,max=4000"`
}

func NewEditMessage(messageID, content string) *EditMessageCmd {
	return &EditMessageCmd{Type: "edit_message", MessageID: messageID, Content: content}
}
func (c *EditMessageCmd) CommandType() string { return c.Type }

type DeleteMessageCmd struct {
	Type      string `json:"type"`
	MessageID string `json:"message_id" validate:"required"`
}

func NewDeleteMessage(messageID string) *DeleteMessageCmd {
	return &DeleteMessageCmd{Type: "delete_message", MessageID: messageID}
}
func (c *DeleteMessageCmd) CommandType() string { return c.Type }

type BulkDeleteMessagesCmd struct {
	Type       string   `json:"type"`
	ServerID   string   `json:"server_id" validate:"required"`
	Channel    string   `json:"channel" validate:"required"`
	MessageIDs []string `json:"message_ids" validate:"required"`
}

func NewBulkDeleteMessages(serverID, channel string, messageIDs []string) *BulkDeleteMessagesCmd {
	return &BulkDeleteMessagesCmd{Type: "bulk_delete_messages", ServerID: serverID, Channel: channel, MessageIDs: messageIDs}
}
func (c *BulkDeleteMessagesCmd) CommandType() string { return c.Type }

type FetchHistoryCmd struct {
	Type     string `json:"type"`
	ServerID string `json:"server_id" validate:"required"`
	Channel  string `json:"channel" validate:"required"`
	Before   string `json:"before,omitempty"`
	Limit    int    `json:"limit,omitempty"`
}

func NewFetchHistory(serverID, channel, before string, limit int) *FetchHistoryCmd {
	return &FetchHistoryCmd{Type: "fetch_history", ServerID: serverID, Channel: channel, Before: before, Limit: limit}
}
func (c *FetchHistoryCmd) CommandType() string { return c.Type }

// Reactions & typing

type AddReactionCmd struct {
	Type      string `json:"type"`
	MessageID string `json:"message_id" validate:"required"`
	Emoji     string `json:"emoji" validate:"required"`
}

func NewAddReaction(messageID, emoji string) *AddReactionCmd {
	return &AddReactionCmd{Type: "add_reaction", MessageID: messageID, Emoji: emoji}
}
func (c *AddReactionCmd) CommandType() string { return c.Type }

type RemoveReactionCmd struct {
	Type      string `json:"type"`
	MessageID string `json:"message_id" validate:"required"`
	Emoji     string `json:"emoji" validate:"required"`
}

func NewRemoveReaction(messageID, emoji string) *RemoveReactionCmd {
	return &RemoveReactionCmd{Type: "remove_reaction", MessageID: messageID, Emoji: emoji}
}
func (c *RemoveReactionCmd) CommandType() string { return c.Type }

type TypingCmd struct {
	Type     string `json:"type"`
	ServerID string `json:"server_id" validate:"required"`
	Channel  string `json:"channel" validate:"required"`
}

func NewTyping(serverID, channel string) *TypingCmd {
	return &TypingCmd{Type: "typing", ServerID: serverID, Channel: channel}
}
func (c *TypingCmd) CommandType() string { return c.Type }

// Members

type GetMembersCmd struct {
	Type     string `json:"type"`
	ServerID string `json:"server_id" validate:"required"`
	Channel  string `json:"channel" validate:"required"`
}

func NewGetMembers(serverID, channel string) *GetMembersCmd {
	return &GetMembersCmd{Type: "get_members", ServerID: serverID, Channel: channel}
}
func (c *GetMembersCmd) CommandType() string { return c.Type }

type UpdateMemberRoleCmd struct {
	Type     string `json:"type"`
	ServerID string `json:"server_id" validate:"required"`
	UserID   string `json:"user_id" validate:"required"`
	Role     string `json:"role" validate:"required"`
}

func NewUpdateMemberRole(serverID, userID, role string) *UpdateMemberRoleCmd {
	return &UpdateMemberRoleCmd{Type: "update_member_role", ServerID: serverID, UserID: userID, Role: role}
}
func (c *UpdateMemberRoleCmd) CommandType() string { return c.Type }

type SetServerNicknameCmd struct {
	Type     string `json:"type"`
	ServerID string `json:"server_id" validate:"required"`
	Nickname string `json:"nickname,omitempty"`
}

func NewSetServerNickname(serverID, nickname string) *SetServerNicknameCmd {
	return &SetServerNicknameCmd{Type: "set_server_nickname", ServerID: serverID, Nickname: nickname}
}
func (c *SetServerNicknameCmd) CommandType() string { return c.Type }

// Roles

type ListRolesCmd struct {
	Type     string `json:"type"`
	ServerID string `json:"server_id" validate:"required"`
}

func NewListRoles(serverID string) *ListRolesCmd { return &ListRolesCmd{Type: "list_roles", ServerID: serverID} }
func (c *ListRolesCmd) CommandType() string { return c.Type }

type CreateRoleCmd struct {
	Type        string     `json:"type"`
	ServerID    string     `json:"server_id" validate:"required"`
	Name        string     `json:"name" validate:"required"`
	Color       string     `json:"color,omitempty"`
	Permissions Permission `json:"permissions"`
}

func NewCreateRole(serverID, name, color string, perms Permission) *CreateRoleCmd {
	return &CreateRoleCmd{Type: "create_role", ServerID: serverID, Name: name, Color: color, Permissions: perms}
}
func (c *CreateRoleCmd) CommandType() string { return c.Type }

type UpdateRoleCmd struct {
	Type        string     `json:"type"`
	ServerID    string     `json:"server_id" validate:"required"`
	RoleID      string     `json:"role_id" validate:"required"`
	Name        string     `json:"name,omitempty"`
	Color       string     `json:"color,omitempty"`
	Permissions Permission `json:"permissions,omitempty"`
	Position    *int       `json:"position,omitempty"`
}

func NewUpdateRole(serverID, roleID string) *UpdateRoleCmd {
	return &UpdateRoleCmd{Type: "update_role", ServerID: serverID, RoleID: roleID}
}
func (c *UpdateRoleCmd) CommandType() string { return c.Type }

type DeleteRoleCmd struct {
	Type     string `json:"type"`
	ServerID string `json:"server_id" validate:"required"`
	RoleID   string `json:"role_id" validate:"required"`
}

func NewDeleteRole(serverID, roleID string) *DeleteRoleCmd {
	return &DeleteRoleCmd{Type: "delete_role", ServerID: serverID, RoleID: roleID}
}
func (c *DeleteRoleCmd) CommandType() string { return c.Type }

type AssignRoleCmd struct {
	Type     string `json:"type"`
	ServerID string `json:"server_id" validate:"required"`
	UserID   string `json:"user_id" validate:"required"`
	RoleID   string `json:"role_id" validate:"required"`
}

func NewAssignRole(serverID, userID, roleID string) *AssignRoleCmd {
	return &AssignRoleCmd{Type: "assign_role", ServerID: serverID, UserID: userID, RoleID: roleID}
}
func (c *AssignRoleCmd) CommandType() string { return c.Type }

type RemoveRoleCmd struct {
	Type     string `json:"type"`
	ServerID string `json:"server_id" validate:"required"`
	UserID   string `json:"user_id" validate:"required"`
	RoleID   string `json:"role_id" validate:"required"`
}

func NewRemoveRole(serverID, userID, roleID string) *RemoveRoleCmd {
	return &RemoveRoleCmd{Type: "remove_role", ServerID: serverID, UserID: userID, RoleID: roleID}
}
func (c *RemoveRoleCmd) CommandType() string { return c.Type }

// Categories

type ListCategoriesCmd struct {
	Type     string `json:"type"`
	ServerID string `json:"server_id" validate:"required"`
}

func NewListCategories(serverID string) *ListCategoriesCmd {
	return &ListCategoriesCmd{Type: "list_categories", ServerID: serverID}
}
func (c *ListCategoriesCmd) CommandType() string { return c.Type }

type CreateCategoryCmd struct {
	Type     string `json:"type"`
	ServerID string `json:"server_id" validate:"required"`
	Name     string `json:"name" validate:"required"`
}

func NewCreateCategory(serverID, name string) *CreateCategoryCmd {
	return &CreateCategoryCmd{Type: "create_category", ServerID: serverID, Name: name}
}
func (c *CreateCategoryCmd) CommandType() string { return c.Type }

type UpdateCategoryCmd struct {
	Type       string `json:"type"`
	ServerID   string `json:"server_id" validate:"required"`
	CategoryID string `json:"category_id" validate:"required"`
	Name       string `json:"name,omitempty"`
	Position   *int   `json:"position,omitempty"`
}

func NewUpdateCategory(serverID, categoryID string) *UpdateCategoryCmd {
	return &UpdateCategoryCmd{Type: "update_category", ServerID: serverID, CategoryID: categoryID}
}
func (c *UpdateCategoryCmd) CommandType() string { return c.Type }

type DeleteCategoryCmd struct {
	Type       string `json:"type"`
	ServerID   string `json:"server_id" validate:"required"`
	CategoryID string `json:"category_id" validate:"required"`
}

func NewDeleteCategory(serverID, categoryID string) *DeleteCategoryCmd {
	return &DeleteCategoryCmd{Type: "delete_category", ServerID: serverID, CategoryID: categoryID}
}
func (c *DeleteCategoryCmd) CommandType() string { return c.Type }

// Presence & profile

type SetPresenceCmd struct {
	Type         string         `json:"type"`
	Status       PresenceStatus `json:"status" validate:"required"`
	CustomStatus string         `json:"custom_status,omitempty"`
	StatusEmoji  string         `json:"status_emoji,omitempty"`
}

func NewSetPresence(status PresenceStatus, customStatus, statusEmoji string) *SetPresenceCmd {
	return &SetPresenceCmd{Type: "set_presence", Status: status, CustomStatus: customStatus, StatusEmoji: statusEmoji}
}
func (c *SetPresenceCmd) CommandType() string { return c.Type }

type GetPresencesCmd struct {
	Type     string `json:"type"`
	ServerID string `json:"server_id" validate:"required"`
}

func NewGetPresences(serverID string) *GetPresencesCmd {
	return &GetPresencesCmd{Type: "get_presences", ServerID: serverID}
}
func (c *GetPresencesCmd) CommandType() string { return c.Type }

type GetUserProfileCmd struct {
	Type   string `json:"type"`
	UserID string `json:"user_id" validate:"required"`
}

func NewGetUserProfile(userID string) *GetUserProfileCmd {
	return &GetUserProfileCmd{Type: "get_user_profile", UserID: userID}
}
func (c *GetUserProfileCmd) CommandType() string { return c.Type }

// Read state

type MarkReadCmd struct {
	Type      string `json:"type"`
	ServerID  string `json:"server_id" validate:"required"`
	Channel   string `json:"channel" validate:"required"`
	MessageID string `json:"message_id" validate:"required"`
}

func NewMarkRead(serverID, channel, messageID string) *MarkReadCmd {
	return &MarkReadCmd{Type: "mark_read", ServerID: serverID, Channel: channel, MessageID: messageID}
}
func (c *MarkReadCmd) CommandType() string { return c.Type }

type GetUnreadCountsCmd struct {
	Type     string `json:"type"`
	ServerID string `json:"server_id" validate:"required"`
}

func NewGetUnreadCounts(serverID string) *GetUnreadCountsCmd {
	return &GetUnreadCountsCmd{Type: "get_unread_counts", ServerID: serverID}
}
func (c *GetUnreadCountsCmd) CommandType() string { return c.Type }

// Search & notifications

type SearchMessagesCmd struct {
	Type     string `json:"type"`
	ServerID string `json:"server_id" validate:"required"`
	Query    string `json:"query" validate:"required"`
	Channel  string `json:"channel,omitempty"`
	Limit    int    `json:"limit,omitempty"`
	Offset   int    `json:"offset,omitempty"`
}

func NewSearchMessages(serverID, query, channel string, limit, offset int) *SearchMessagesCmd {
	return &SearchMessagesCmd{Type: "search_messages", ServerID: serverID, Query: query, Channel: channel, Limit: limit, Offset: offset}
}
func (c *SearchMessagesCmd) CommandType() string { return c.Type }

type UpdateNotificationSettingsCmd struct {
	Type             string     `json:"type"`
	ServerID         string     `json:"server_id" validate:"required"`
	Level            string     `json:"level" validate:"required"`
	SuppressEveryone bool       `json:"suppress_everyone,omitempty"`
	SuppressRoles    bool       `json:"suppress_roles,omitempty"`
	Muted            bool       `json:"muted,omitempty"`
	MuteUntil        *string    `json:"mute_until,omitempty"`
}

func NewUpdateNotificationSettings(serverID, level string) *UpdateNotificationSettingsCmd {
	return &UpdateNotificationSettingsCmd{Type: "update_notification_settings", ServerID: serverID, Level: level}
}
func (c *UpdateNotificationSettingsCmd) CommandType() string { return c.Type }

type GetNotificationSettingsCmd struct {
	Type     string `json:"type"`
	ServerID string `json:"server_id" validate:"required"`
}

func NewGetNotificationSettings(serverID string) *GetNotificationSettingsCmd {
	return &GetNotificationSettingsCmd{Type: "get_notification_settings", ServerID: serverID}
}
func (c *GetNotificationSettingsCmd) CommandType() string { return c.Type }

// Pins & threads

type PinMessageCmd struct {
	Type      string `json:"type"`
	ServerID  string `json:"server_id" validate:"required"`
	Channel   string `json:"channel" validate:"required"`
	MessageID string `json:"message_id" validate:"required"`
}

func NewPinMessage(serverID, channel, messageID string) *PinMessageCmd {
	return &PinMessageCmd{Type: "pin_message", ServerID: serverID, Channel: channel, MessageID: messageID}
}
func (c *PinMessageCmd) CommandType() string { return c.Type }

type UnpinMessageCmd struct {
	Type      string `json:"type"`
	ServerID  string `json:"server_id" validate:"required"`
	Channel   string `json:"channel" validate:"required"`
	MessageID string `json:"message_id" validate:"required"`
}

func NewUnpinMessage(serverID, channel, messageID string) *UnpinMessageCmd {
	return &UnpinMessageCmd{Type: "unpin_message", ServerID: serverID, Channel: channel, MessageID: messageID}
}
func (c *UnpinMessageCmd) CommandType() string { return c.Type }

type GetPinnedMessagesCmd struct {
	Type     string `json:"type"`
	ServerID string `json:"server_id" validate:"required"`
	Channel  string `json:"channel" validate:"required"`
}

func NewGetPinnedMessages(serverID, channel string) *GetPinnedMessagesCmd {
	return &GetPinnedMessagesCmd{Type: "get_pinned_messages", ServerID: serverID, Channel: channel}
}
func (c *GetPinnedMessagesCmd) CommandType() string { return c.Type }

type CreateThreadCmd struct {
	Type          string `json:"type"`
	ServerID      string `json:"server_id" validate:"required"`
	ParentChannel string `json:"parent_channel" validate:"required"`
	Name          string `json:"name" validate:"required"`
	MessageID     string `json:"message_id" validate:"required"`
	IsPrivate     bool   `json:"is_private,omitempty"`
}

func NewCreateThread(serverID, parentChannel, name, messageID string, isPrivate bool) *CreateThreadCmd {
	return &CreateThreadCmd{Type: "create_thread", ServerID: serverID, ParentChannel: parentChannel, Name: name, MessageID: messageID, IsPrivate: isPrivate}
}
func (c *CreateThreadCmd) CommandType() string { return c.Type }

type ArchiveThreadCmd struct {
	Type     string `json:"type"`
	ServerID string `json:"server_id" validate:"required"`
	ThreadID string `json:"thread_id" validate:"required"`
}

func NewArchiveThread(serverID, threadID string) *ArchiveThreadCmd {
	return &ArchiveThreadCmd{Type: "archive_thread", ServerID: serverID, ThreadID: threadID}
}
func (c *ArchiveThreadCmd) CommandType() string { return c.Type }

type ListThreadsCmd struct {
	Type          string `json:"type"`
	ServerID      string `json:"server_id" validate:"required"`
	ParentChannel string `json:"parent_channel" validate:"required"`
}

func NewListThreads(serverID, parentChannel string) *ListThreadsCmd {
	return &ListThreadsCmd{Type: "list_threads", ServerID: serverID, ParentChannel: parentChannel}
}
func (c *ListThreadsCmd) CommandType() string { return c.Type }

// Bookmarks

type AddBookmarkCmd struct {
	Type      string `json:"type"`
	MessageID string `json:"message_id" validate:"required"`
	Note      string `json:"note,omitempty"`
}

func NewAddBookmark(messageID, note string) *AddBookmarkCmd {
	return &AddBookmarkCmd{Type: "add_bookmark", MessageID: messageID, Note: note}
}
func (c *AddBookmarkCmd) CommandType() string { return c.Type }

type RemoveBookmarkCmd struct {
	Type      string `json:"type"`
	MessageID string `json:"message_id" validate:"required"`
}

func NewRemoveBookmark(messageID string) *RemoveBookmarkCmd {
	return &RemoveBookmarkCmd{Type: "remove_bookmark", MessageID: messageID}
}
func (c *RemoveBookmarkCmd) CommandType() string { return c.Type }

type ListBookmarksCmd struct {
	Type string `json:"type"`
}

func NewListBookmarks() *ListBookmarksCmd { return &ListBookmarksCmd{Type: "list_bookmarks"} }
func (c *ListBookmarksCmd) CommandType() string { return c.Type }

// Moderation

type KickMemberCmd struct {
	Type     string `json:"type"`
	ServerID string `json:"server_id" validate:"required"`
	UserID   string `json:"user_id" validate:"required"`
}

func NewKickMember(serverID, userID string) *KickMemberCmd {
	return &KickMemberCmd{Type: "kick_member", ServerID: serverID, UserID: userID}
}
func (c *KickMemberCmd) CommandType() string { return c.Type }

type BanMemberCmd struct {
	Type              string `json:"type"`
	ServerID          string `json:"server_id" validate:"required"`
	UserID            string `json:"user_id" validate:"required"`
	Reason            string `json:"reason,omitempty"`
	DeleteMessageDays int    `json:"delete_message_days,omitempty"`
}

func NewBanMember(serverID, userID, reason string, deleteMessageDays int) *BanMemberCmd {
	return &BanMemberCmd{Type: "ban_member", ServerID: serverID, UserID: userID, Reason: reason, DeleteMessageDays: deleteMessageDays}
}
func (c *BanMemberCmd) CommandType() string { return c.Type }

type UnbanMemberCmd struct {
	Type     string `json:"type"`
	ServerID string `json:"server_id" validate:"required"`
	UserID   string `json:"user_id" validate:"required"`
}

func NewUnbanMember(serverID, userID string) *UnbanMemberCmd {
	return &UnbanMemberCmd{Type: "unban_member", ServerID: serverID, UserID: userID}
}
func (c *UnbanMemberCmd) CommandType() string { return c.Type }

type ListBansCmd struct {
	Type     string `json:"type"`
	ServerID string `json:"server_id" validate:"required"`
}

func NewListBans(serverID string) *ListBansCmd { return &ListBansCmd{Type: "list_bans", ServerID: serverID} }
func (c *ListBansCmd) CommandType() string { return c.Type }

type TimeoutMemberCmd struct {
	Type         string  `json:"type"`
	ServerID     string  `json:"server_id" validate:"required"`
	UserID       string  `json:"user_id" validate:"required"`
	TimeoutUntil *string `json:"timeout_until,omitempty"`
	Reason       string  `json:"reason,omitempty"`
}

func NewTimeoutMember(serverID, userID string) *TimeoutMemberCmd {
	return &TimeoutMemberCmd{Type: "timeout_member", ServerID: serverID, UserID: userID}
}
func (c *TimeoutMemberCmd) CommandType() string { return c.Type }

type GetAuditLogCmd struct {
	Type       string `json:"type"`
	ServerID   string `json:"server_id" validate:"required"`
	ActionType string `json:"action_type,omitempty"`
	Limit      int    `json:"limit,omitempty"`
	Before     string `json:"before,omitempty"`
}

func NewGetAuditLog(serverID string) *GetAuditLogCmd {
	return &GetAuditLogCmd{Type: "get_audit_log", ServerID: serverID}
}
func (c *GetAuditLogCmd) CommandType() string { return c.Type }

type CreateAutomodRuleCmd struct {
	Type     string   `json:"type"`
	ServerID string   `json:"server_id" validate:"required"`
	Name     string   `json:"name" validate:"required"`
	Triggers []string `json:"triggers" validate:"required"`
}

func NewCreateAutomodRule(serverID, name string, triggers []string) *CreateAutomodRuleCmd {
	return &CreateAutomodRuleCmd{Type: "create_automod_rule", ServerID: serverID, Name: name, Triggers: triggers}
}
func (c *CreateAutomodRuleCmd) CommandType() string { return c.Type }

type UpdateAutomodRuleCmd struct {
	Type     string   `json:"type"`
	ServerID string   `json:"server_id" validate:"required"`
	RuleID   string   `json:"rule_id" validate:"required"`
	Name     string   `json:"name,omitempty"`
	Triggers []string `json:"triggers,omitempty"`
	Enabled  *bool    `json:"enabled,omitempty"`
}

func NewUpdateAutomodRule(serverID, ruleID string) *UpdateAutomodRuleCmd {
	return &UpdateAutomodRuleCmd{Type: "update_automod_rule", ServerID: serverID, RuleID: ruleID}
}
func (c *UpdateAutomodRuleCmd) CommandType() string { return c.Type }

type DeleteAutomodRuleCmd struct {
	Type     string `json:"type"`
	ServerID string `json:"server_id" validate:"required"`
	RuleID   string `json:"rule_id" validate:"required"`
}

func NewDeleteAutomodRule(serverID, ruleID string) *DeleteAutomodRuleCmd {
	return &DeleteAutomodRuleCmd{Type: "delete_automod_rule", ServerID: serverID, RuleID: ruleID}
}
func (c *DeleteAutomodRuleCmd) CommandType() string { return c.Type }

type ListAutomodRulesCmd struct {
	Type     string `json:"type"`
	ServerID string `json:"server_id" validate:"required"`
}

func NewListAutomodRules(serverID string) *ListAutomodRulesCmd {
	return &ListAutomodRulesCmd{Type: "list_automod_rules", ServerID: serverID}
}
func (c *ListAutomodRulesCmd) CommandType() string { return c.Type }

// Community

type CreateInviteCmd struct {
	Type     string `json:"type"`
	ServerID string `json:"server_id" validate:"required"`
	MaxUses  int    `json:"max_uses,omitempty"`
}

func NewCreateInvite(serverID string, maxUses int) *CreateInviteCmd {
	return &CreateInviteCmd{Type: "create_invite", ServerID: serverID, MaxUses: maxUses}
}
func (c *CreateInviteCmd) CommandType() string { return c.Type }

type ListInvitesCmd struct {
	Type     string `json:"type"`
	ServerID string `json:"server_id" validate:"required"`
}

func NewListInvites(serverID string) *ListInvitesCmd {
	return &ListInvitesCmd{Type: "list_invites", ServerID: serverID}
}
func (c *ListInvitesCmd) CommandType() string { return c.Type }

type DeleteInviteCmd struct {
	Type     string `json:"type"`
	ServerID string `json:"server_id" validate:"required"`
	Code     string `json:"code" validate:"required"`
}

func NewDeleteInvite(serverID, code string) *DeleteInviteCmd {
	return &DeleteInviteCmd{Type: "delete_invite", ServerID: serverID, Code: code}
}
func (c *DeleteInviteCmd) CommandType() string { return c.Type }

type UseInviteCmd struct {
	Type string `json:"type"`
	Code string `json:"code" validate:"required"`
}

func NewUseInvite(code string) *UseInviteCmd { return &UseInviteCmd{Type: "use_invite", Code: code} }
func (c *UseInviteCmd) CommandType() string { return c.Type }

type CreateEventCmd struct {
	Type     string `json:"type"`
	ServerID string `json:"server_id" validate:"required"`
	Name     string `json:"name" validate:"required"`
	StartsAt string `json:"starts_at" validate:"required"`
}

func NewCreateEvent(serverID, name, startsAt string) *CreateEventCmd {
	return &CreateEventCmd{Type: "create_event", ServerID: serverID, Name: name, StartsAt: startsAt}
}
func (c *CreateEventCmd) CommandType() string { return c.Type }

type ListEventsCmd struct {
	Type     string `json:"type"`
	ServerID string `json:"server_id" validate:"required"`
}

func NewListEvents(serverID string) *ListEventsCmd { return &ListEventsCmd{Type: "list_events", ServerID: serverID} }
func (c *ListEventsCmd) CommandType() string { return c.Type }

type UpdateEventStatusCmd struct {
	Type     string `json:"type"`
	ServerID string `json:"server_id" validate:"required"`
	EventID  string `json:"event_id" validate:"required"`
	Status   string `json:"status" validate:"required"`
}

func NewUpdateEventStatus(serverID, eventID, status string) *UpdateEventStatusCmd {
	return &UpdateEventStatusCmd{Type: "update_event_status", ServerID: serverID, EventID: eventID, Status: status}
}
func (c *UpdateEventStatusCmd) CommandType() string { return c.Type }

type DeleteEventCmd struct {
	Type     string `json:"type"`
	ServerID string `json:"server_id" validate:"required"`
	EventID  string `json:"event_id" validate:"required"`
}

func NewDeleteEvent(serverID, eventID string) *DeleteEventCmd {
	return &DeleteEventCmd{Type: "delete_event", ServerID: serverID, EventID: eventID}
}
func (c *DeleteEventCmd) CommandType() string { return c.Type }

type SetRSVPCmd struct {
	Type     string `json:"type"`
	ServerID string `json:"server_id" validate:"required"`
	EventID  string `json:"event_id" validate:"required"`
}

func NewSetRSVP(serverID, eventID string) *SetRSVPCmd {
	return &SetRSVPCmd{Type: "set_rsvp", ServerID: serverID, EventID: eventID}
}
func (c *SetRSVPCmd) CommandType() string { return c.Type }

type RemoveRSVPCmd struct {
	Type     string `json:"type"`
	ServerID string `json:"server_id" validate:"required"`
	EventID  string `json:"event_id" validate:"required"`
}

func NewRemoveRSVP(serverID, eventID string) *RemoveRSVPCmd {
	return &RemoveRSVPCmd{Type: "remove_rsvp", ServerID: serverID, EventID: eventID}
}
func (c *RemoveRSVPCmd) CommandType() string { return c.Type }

type ListRSVPsCmd struct {
	Type     string `json:"type"`
	ServerID string `json:"server_id" validate:"required"`
	EventID  string `json:"event_id" validate:"required"`
}

func NewListRSVPs(serverID, eventID string) *ListRSVPsCmd {
	return &ListRSVPsCmd{Type: "list_rsvps", ServerID: serverID, EventID: eventID}
}
func (c *ListRSVPsCmd) CommandType() string { return c.Type }

type UpdateCommunitySettingsCmd struct {
	Type         string `json:"type"`
	ServerID     string `json:"server_id" validate:"required"`
	Description  string `json:"description,omitempty"`
	Category     string `json:"category,omitempty"`
	Discoverable *bool  `json:"discoverable,omitempty"`
	RulesText    string `json:"rules_text,omitempty"`
}

func NewUpdateCommunitySettings(serverID string) *UpdateCommunitySettingsCmd {
	return &UpdateCommunitySettingsCmd{Type: "update_community_settings", ServerID: serverID}
}
func (c *UpdateCommunitySettingsCmd) CommandType() string { return c.Type }

type GetCommunitySettingsCmd struct {
	Type     string `json:"type"`
	ServerID string `json:"server_id" validate:"required"`
}

func NewGetCommunitySettings(serverID string) *GetCommunitySettingsCmd {
	return &GetCommunitySettingsCmd{Type: "get_community_settings", ServerID: serverID}
}
func (c *GetCommunitySettingsCmd) CommandType() string { return c.Type }

type DiscoverServersCmd struct {
	Type     string `json:"type"`
	Category string `json:"category,omitempty"`
}

func NewDiscoverServers(category string) *DiscoverServersCmd {
	return &DiscoverServersCmd{Type: "discover_servers", Category: category}
}
func (c *DiscoverServersCmd) CommandType() string { return c.Type }

type AcceptRulesCmd struct {
	Type     string `json:"type"`
	ServerID string `json:"server_id" validate:"required"`
}

func NewAcceptRules(serverID string) *AcceptRulesCmd { return &AcceptRulesCmd{Type: "accept_rules", ServerID: serverID} }
func (c *AcceptRulesCmd) CommandType() string { return c.Type }

type FollowChannelCmd struct {
	Type          string `json:"type"`
	SourceChannel string `json:"source_channel" validate:"required"`
	TargetChannel string `json:"target_channel" validate:"required"`
	TargetServer  string `json:"target_server" validate:"required"`
}

func NewFollowChannel(sourceChannel, targetChannel, targetServer string) *FollowChannelCmd {
	return &FollowChannelCmd{Type: "follow_channel", SourceChannel: sourceChannel, TargetChannel: targetChannel, TargetServer: targetServer}
}
func (c *FollowChannelCmd) CommandType() string { return c.Type }

type UnfollowChannelCmd struct {
	Type          string `json:"type"`
	SourceChannel string `json:"source_channel" validate:"required"`
	TargetChannel string `json:"target_channel" validate:"required"`
}

func NewUnfollowChannel(sourceChannel, targetChannel string) *UnfollowChannelCmd {
	return &UnfollowChannelCmd{Type: "unfollow_channel", SourceChannel: sourceChannel, TargetChannel: targetChannel}
}
func (c *UnfollowChannelCmd) CommandType() string { return c.Type }

type ListChannelFollowsCmd struct {
	Type     string `json:"type"`
	ServerID string `json:"server_id" validate:"required"`
}

func NewListChannelFollows(serverID string) *ListChannelFollowsCmd {
	return &ListChannelFollowsCmd{Type: "list_channel_follows", ServerID: serverID}
}
func (c *ListChannelFollowsCmd) CommandType() string { return c.Type }

type CreateTemplateCmd struct {
	Type     string `json:"type"`
	ServerID string `json:"server_id" validate:"required"`
	Name     string `json:"name" validate:"required"`
}

func NewCreateTemplate(serverID, name string) *CreateTemplateCmd {
	return &CreateTemplateCmd{Type: "create_template", ServerID: serverID, Name: name}
}
func (c *CreateTemplateCmd) CommandType() string { return c.Type }

type ListTemplatesCmd struct {
	Type string `json:"type"`
}

func NewListTemplates() *ListTemplatesCmd { return &ListTemplatesCmd{Type: "list_templates"} }
func (c *ListTemplatesCmd) CommandType() string { return c.Type }

type DeleteTemplateCmd struct {
	Type       string `json:"type"`
	TemplateID string `json:"template_id" validate:"required"`
}

func NewDeleteTemplate(templateID string) *DeleteTemplateCmd {
	return &DeleteTemplateCmd{Type: "delete_template", TemplateID: templateID}
}
func (c *DeleteTemplateCmd) CommandType() string { return c.Type }
