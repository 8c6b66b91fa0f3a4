// Package wire defines the JSON envelope Concord speaks over its single
// WebSocket: the client-to-server command catalog, the server-to-client
// event catalog, and the entity DTOs they carry.
package wire

import "time"

// ChannelType mirrors the server's channel_type enum.
type ChannelType string

const (
	ChannelText           ChannelType = "text"
	ChannelVoice          ChannelType = "voice"
	ChannelPublicThread   ChannelType = "public_thread"
	ChannelPrivateThread  ChannelType = "private_thread"
	ChannelForum          ChannelType = "forum"
	ChannelAnnouncement   ChannelType = "announcement"
)

// PresenceStatus mirrors the server's presence status enum.
type PresenceStatus string

const (
	StatusOnline    PresenceStatus = "online"
	StatusIdle      PresenceStatus = "idle"
	StatusDnd       PresenceStatus = "dnd"
	StatusInvisible PresenceStatus = "invisible"
	StatusOffline   PresenceStatus = "offline"
)

// Permission is a 64-bit permission bitfield. ADMINISTRATOR short-circuits
// to grant every other bit.
type Permission uint64

const (
	PermAdministrator Permission = 1 << 0
	PermManageServer  Permission = 1 << 1
	PermManageRoles   Permission = 1 << 2
	PermManageChannels Permission = 1 << 3
	PermKickMembers   Permission = 1 << 4
	PermBanMembers    Permission = 1 << 5
	PermManageMessages Permission = 1 << 6
	PermMentionEveryone Permission = 1 << 7
	PermManageEmoji   Permission = 1 << 8
	PermManageWebhooks Permission = 1 << 9
	PermViewAuditLog  Permission = 1 << 10
	PermManageEvents  Permission = 1 << 11
	PermModerateMembers Permission = 1 << 12
)

// Has reports whether p grants the given permission, honoring the
// ADMINISTRATOR short-circuit.
func (p Permission) Has(flag Permission) bool {
	if p&PermAdministrator != 0 {
		return true
	}
	return p&flag != 0
}

// Server is the wire shape of a guild-equivalent.
type Server struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	IconURL     string `json:"icon_url,omitempty"`
	MemberCount int    `json:"member_count"`
	ViewerRole  string `json:"role,omitempty"`
}

// Channel is the wire shape of a channel within a server.
type Channel struct {
	ID                    string      `json:"id"`
	ServerID              string      `json:"server_id"`
	Name                  string      `json:"name"`
	Topic                 string      `json:"topic"`
	CategoryID            string      `json:"category_id,omitempty"`
	Position              int         `json:"position"`
	IsPrivate             bool        `json:"is_private"`
	ChannelType           ChannelType `json:"channel_type"`
	ThreadParentMessageID string      `json:"thread_parent_message_id,omitempty"`
	Archived              bool        `json:"archived"`
	SlowmodeSeconds       int         `json:"slowmode_seconds"`
	IsNSFW                bool        `json:"is_nsfw"`
	IsAnnouncement        bool        `json:"is_announcement"`
}

// Category groups channels within a server.
type Category struct {
	ID       string `json:"id"`
	ServerID string `json:"server_id"`
	Name     string `json:"name"`
	Position int    `json:"position"`
}

// Role is a server-scoped permission grant.
type Role struct {
	ID          string     `json:"id"`
	ServerID    string     `json:"server_id"`
	Name        string     `json:"name"`
	Color       string     `json:"color,omitempty"`
	Icon        string     `json:"icon,omitempty"`
	Position    int        `json:"position"`
	Permissions Permission `json:"permissions"`
	IsDefault   bool       `json:"is_default"`
}

// Member is a channel-scoped view of a user's presentation.
type Member struct {
	Nickname     string `json:"nickname"`
	AvatarURL    string `json:"avatar_url,omitempty"`
	UserID       string `json:"user_id,omitempty"`
	Status       string `json:"status,omitempty"`
	CustomStatus string `json:"custom_status,omitempty"`
	StatusEmoji  string `json:"status_emoji,omitempty"`
}

// ReactionGroup is the unique-user-set reaction tally for one emoji on one message.
type ReactionGroup struct {
	Emoji   string   `json:"emoji"`
	Count   int      `json:"count"`
	UserIDs []string `json:"user_ids"`
}

// Attachment is uploaded-file metadata, as returned by POST /uploads.
type Attachment struct {
	ID          string `json:"id"`
	Filename    string `json:"filename"`
	ContentType string `json:"content_type"`
	FileSize    int64  `json:"file_size"`
	URL         string `json:"url"`
}

// Embed is a resolved link-preview.
type Embed struct {
	URL         string `json:"url"`
	Title       string `json:"title,omitempty"`
	Description string `json:"description,omitempty"`
	ImageURL    string `json:"image_url,omitempty"`
	SiteName    string `json:"site_name,omitempty"`
}

// ReplyInfo is the denormalized preview of a message being replied to.
type ReplyInfo struct {
	ID             string `json:"id"`
	Author         string `json:"from"`
	ContentPreview string `json:"content_preview"`
}

// Message is the canonical chat message shape held in the store.
type Message struct {
	ID         string          `json:"id"`
	Author     string          `json:"from"`
	Content    string          `json:"content"`
	Timestamp  time.Time       `json:"timestamp"`
	EditedAt   *time.Time      `json:"edited_at,omitempty"`
	ReplyTo    *ReplyInfo      `json:"reply_to,omitempty"`
	Reactions  []ReactionGroup `json:"reactions,omitempty"`
	Attachments []Attachment   `json:"attachments,omitempty"`
	Embeds     []Embed         `json:"embeds,omitempty"`
}

// Presence is a per-(server,user) online status.
type Presence struct {
	UserID       string         `json:"user_id"`
	Status       PresenceStatus `json:"status"`
	CustomStatus string         `json:"custom_status,omitempty"`
	StatusEmoji  string         `json:"status_emoji,omitempty"`
}

// UserProfile is a full user profile as returned by get_user_profile / user_profile.
type UserProfile struct {
	UserID    string    `json:"user_id"`
	Username  string    `json:"username"`
	Avatar    string    `json:"avatar,omitempty"`
	Bio       string    `json:"bio,omitempty"`
	Pronouns  string    `json:"pronouns,omitempty"`
	Banner    string    `json:"banner,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// PinnedMessage is a message pinned to a channel.
type PinnedMessage struct {
	MessageID string    `json:"message_id"`
	PinnedBy  string    `json:"pinned_by"`
	PinnedAt  time.Time `json:"pinned_at"`
}

// Bookmark is a user's private saved-message note.
type Bookmark struct {
	MessageID string `json:"message_id"`
	Note      string `json:"note,omitempty"`
}

// Thread is a thread rooted at a parent message.
type Thread struct {
	ID              string `json:"id"`
	ServerID        string `json:"server_id"`
	ParentChannel   string `json:"parent_channel"`
	Name            string `json:"name"`
	ParentMessageID string `json:"message_id"`
	IsPrivate       bool   `json:"is_private"`
	Archived        bool   `json:"archived"`
}

// ForumTag is a selectable tag on a forum channel.
type ForumTag struct {
	ID       string `json:"id"`
	ServerID string `json:"server_id"`
	Name     string `json:"name"`
	Emoji    string `json:"emoji,omitempty"`
}

// Ban records a server ban.
type Ban struct {
	UserID   string `json:"user_id"`
	Nickname string `json:"nickname"`
	Reason   string `json:"reason,omitempty"`
}

// AuditEntry is a single moderation audit-log row.
type AuditEntry struct {
	ID         string    `json:"id"`
	ActionType string    `json:"action_type"`
	ActorID    string    `json:"actor_id"`
	TargetID   string    `json:"target_id,omitempty"`
	Reason     string    `json:"reason,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

// AutomodRule is a configured automated-moderation rule.
type AutomodRule struct {
	ID       string   `json:"id"`
	ServerID string   `json:"server_id"`
	Name     string   `json:"name"`
	Triggers []string `json:"triggers"`
	Enabled  bool     `json:"enabled"`
}

// Invite is a server invite code.
type Invite struct {
	Code      string    `json:"code"`
	ServerID  string    `json:"server_id"`
	CreatedBy string    `json:"created_by"`
	MaxUses   int       `json:"max_uses,omitempty"`
	Uses      int       `json:"uses"`
	ExpiresAt *time.Time `json:"expires_at,omitempty"`
}

// ScheduledEvent is a server-scheduled event.
type ScheduledEvent struct {
	ID        string    `json:"id"`
	ServerID  string    `json:"server_id"`
	Name      string    `json:"name"`
	StartsAt  time.Time `json:"starts_at"`
	EndsAt    *time.Time `json:"ends_at,omitempty"`
	Status    string    `json:"status"`
}

// CommunitySettings is a server's community-hub configuration.
type CommunitySettings struct {
	ServerID     string `json:"server_id"`
	Description  string `json:"description,omitempty"`
	Category     string `json:"category,omitempty"`
	Discoverable bool   `json:"discoverable"`
	RulesText    string `json:"rules_text,omitempty"`
}

// Template is a server template available for cloning new servers.
type Template struct {
	ID        string `json:"id"`
	ServerID  string `json:"server_id"`
	Name      string `json:"name"`
	CreatedBy string `json:"created_by"`
}

// ChannelFollow records an announcement-channel follow into a local channel.
type ChannelFollow struct {
	SourceChannel string `json:"source_channel"`
	TargetChannel string `json:"target_channel"`
	TargetServer  string `json:"target_server"`
}

// NotificationSettings is a per-server notification preference set.
type NotificationSettings struct {
	ServerID        string     `json:"server_id"`
	Level           string     `json:"level"`
	SuppressEveryone bool      `json:"suppress_everyone,omitempty"`
	SuppressRoles   bool       `json:"suppress_roles,omitempty"`
	Muted           bool       `json:"muted,omitempty"`
	MuteUntil       *time.Time `json:"mute_until,omitempty"`
}

// RSVP is a user's response to a scheduled event.
type RSVP struct {
	EventID  string `json:"event_id"`
	UserID   string `json:"user_id"`
	Nickname string `json:"nickname"`
}

// ChannelKey builds the compound map key used for every channel-scoped
// store map: "server_id:channel_name", exact concatenation with a single
// ASCII colon. It is a total, round-trip-deterministic function.
func ChannelKey(serverID, channel string) string {
	return serverID + ":" + channel
}
