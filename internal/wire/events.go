package wire

import (
	"encoding/json"
	"fmt"
	"time"
)

// Event is anything the Event Dispatcher can route to a reducer. Unknown
// discriminators decode to UnknownEvent rather than failing, per the
// forward-compatibility requirement.
type Event interface {
	EventType() string
}

type envelope struct {
	Type string `json:"type"`
}

// UnknownEvent is returned by Decode for any discriminator this build does
// not recognize. Reducers must ignore it silently.
type UnknownEvent struct {
	Type string          `json:"type"`
	Raw  json.RawMessage `json:"-"`
}

func (e UnknownEvent) EventType() string { return e.Type }

// Decode reads the discriminator out of raw and unmarshals into the
// matching concrete Event type. A decode error on a well-formed envelope
// whose body does not match its own discriminator is returned as an error
// (malformed frame); an unrecognized discriminator never errors.
func Decode(raw []byte) (Event, error) {
	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, fmt.Errorf("wire: decode envelope: %w", err)
	}

	ctor, ok := eventRegistry[env.Type]
	if !ok {
		return UnknownEvent{Type: env.Type, Raw: raw}, nil
	}

	ev := ctor()
	if err := json.Unmarshal(raw, ev); err != nil {
		return nil, fmt.Errorf("wire: decode %s: %w", env.Type, err)
	}
	return ev.(Event), nil
}

var eventRegistry = map[string]func() any{
	"message":                 func() any { return &MessageEvent{} },
	"message_edit":            func() any { return &MessageEditEvent{} },
	"message_delete":          func() any { return &MessageDeleteEvent{} },
	"message_embed":           func() any { return &MessageEmbedEvent{} },
	"bulk_message_delete":     func() any { return &BulkMessageDeleteEvent{} },
	"reaction_add":            func() any { return &ReactionAddEvent{} },
	"reaction_remove":         func() any { return &ReactionRemoveEvent{} },
	"typing_start":            func() any { return &TypingStartEvent{} },
	"join":                    func() any { return &JoinEvent{} },
	"part":                    func() any { return &PartEvent{} },
	"quit":                    func() any { return &QuitEvent{} },
	"topic_change":            func() any { return &TopicChangeEvent{} },
	"nick_change":             func() any { return &NickChangeEvent{} },
	"names":                   func() any { return &NamesEvent{} },
	"topic":                   func() any { return &TopicEvent{} },
	"channel_list":            func() any { return &ChannelListEvent{} },
	"history":                 func() any { return &HistoryEvent{} },
	"server_list":             func() any { return &ServerListEvent{} },
	"unread_counts":           func() any { return &UnreadCountsEvent{} },
	"server_notice":           func() any { return &ServerNoticeEvent{} },
	"role_list":               func() any { return &RoleListEvent{} },
	"role_update":             func() any { return &RoleUpdateEvent{} },
	"role_delete":             func() any { return &RoleDeleteEvent{} },
	"member_role_update":      func() any { return &MemberRoleUpdateEvent{} },
	"category_list":           func() any { return &CategoryListEvent{} },
	"category_update":         func() any { return &CategoryUpdateEvent{} },
	"category_delete":         func() any { return &CategoryDeleteEvent{} },
	"channel_reorder":         func() any { return &ChannelReorderEvent{} },
	"presence_update":         func() any { return &PresenceUpdateEvent{} },
	"presence_list":           func() any { return &PresenceListEvent{} },
	"user_profile":            func() any { return &UserProfileEvent{} },
	"server_nickname_update":  func() any { return &ServerNicknameUpdateEvent{} },
	"notification_settings":   func() any { return &NotificationSettingsEvent{} },
	"search_results":          func() any { return &SearchResultsEvent{} },
	"message_pin":             func() any { return &MessagePinEvent{} },
	"message_unpin":           func() any { return &MessageUnpinEvent{} },
	"pinned_messages":         func() any { return &PinnedMessagesEvent{} },
	"thread_create":           func() any { return &ThreadCreateEvent{} },
	"thread_update":           func() any { return &ThreadUpdateEvent{} },
	"thread_list":             func() any { return &ThreadListEvent{} },
	"forum_tag_list":          func() any { return &ForumTagListEvent{} },
	"forum_tag_update":        func() any { return &ForumTagUpdateEvent{} },
	"forum_tag_delete":        func() any { return &ForumTagDeleteEvent{} },
	"bookmark_list":           func() any { return &BookmarkListEvent{} },
	"bookmark_add":            func() any { return &BookmarkAddEvent{} },
	"bookmark_remove":         func() any { return &BookmarkRemoveEvent{} },
	"member_kick":             func() any { return &MemberKickEvent{} },
	"member_ban":              func() any { return &MemberBanEvent{} },
	"member_unban":            func() any { return &MemberUnbanEvent{} },
	"member_timeout":          func() any { return &MemberTimeoutEvent{} },
	"slow_mode_update":        func() any { return &SlowModeUpdateEvent{} },
	"nsfw_update":             func() any { return &NSFWUpdateEvent{} },
	"audit_log_entries":       func() any { return &AuditLogEntriesEvent{} },
	"ban_list":                func() any { return &BanListEvent{} },
	"automod_rule_list":       func() any { return &AutomodRuleListEvent{} },
	"automod_rule_update":     func() any { return &AutomodRuleUpdateEvent{} },
	"automod_rule_delete":     func() any { return &AutomodRuleDeleteEvent{} },
	"invite_list":             func() any { return &InviteListEvent{} },
	"invite_create":           func() any { return &InviteCreateEvent{} },
	"invite_delete":           func() any { return &InviteDeleteEvent{} },
	"event_list":              func() any { return &EventListEvent{} },
	"event_update":            func() any { return &EventUpdateEvent{} },
	"event_delete":            func() any { return &EventDeleteEvent{} },
	"event_rsvp_list":         func() any { return &EventRSVPListEvent{} },
	"server_community":        func() any { return &ServerCommunityEvent{} },
	"discover_servers":        func() any { return &DiscoverServersEvent{} },
	"channel_follow_list":     func() any { return &ChannelFollowListEvent{} },
	"channel_follow_create":   func() any { return &ChannelFollowCreateEvent{} },
	"channel_follow_delete":   func() any { return &ChannelFollowDeleteEvent{} },
	"template_list":           func() any { return &TemplateListEvent{} },
	"template_update":         func() any { return &TemplateUpdateEvent{} },
	"template_delete":         func() any { return &TemplateDeleteEvent{} },
	"error":                   func() any { return &ErrorEvent{} },
}

// Messages

type MessageEvent struct {
	Type        string       `json:"type"`
	ID          string       `json:"id"`
	ServerID    string       `json:"server_id,omitempty"`
	From        string       `json:"from"`
	Target      string       `json:"target"`
	Content     string       `json:"content"`
	Timestamp   time.Time    `json:"timestamp"`
	AvatarURL   string       `json:"avatar_url,omitempty"`
	ReplyTo     *ReplyInfo   `json:"reply_to,omitempty"`
	Attachments []Attachment `json:"attachments,omitempty"`
}

func (e *MessageEvent) EventType() string { return e.Type }

type MessageEditEvent struct {
	Type      string    `json:"type"`
	ID        string    `json:"id"`
	ServerID  string    `json:"server_id"`
	Channel   string    `json:"channel"`
	Content   string    `json:"content"`
	EditedAt  time.Time `json:"edited_at"`
}

func (e *MessageEditEvent) EventType() string { return e.Type }

type MessageDeleteEvent struct {
	Type     string `json:"type"`
	ID       string `json:"id"`
	ServerID string `json:"server_id"`
	Channel  string `json:"channel"`
}

func (e *MessageDeleteEvent) EventType() string { return e.Type }

type MessageEmbedEvent struct {
	Type      string  `json:"type"`
	MessageID string  `json:"message_id"`
	ServerID  string  `json:"server_id"`
	Channel   string  `json:"channel"`
	Embeds    []Embed `json:"embeds"`
}

func (e *MessageEmbedEvent) EventType() string { return e.Type }

type BulkMessageDeleteEvent struct {
	Type       string   `json:"type"`
	ServerID   string   `json:"server_id"`
	Channel    string   `json:"channel"`
	MessageIDs []string `json:"message_ids"`
}

func (e *BulkMessageDeleteEvent) EventType() string { return e.Type }

// Reactions

type ReactionAddEvent struct {
	Type      string `json:"type"`
	MessageID string `json:"message_id"`
	ServerID  string `json:"server_id"`
	Channel   string `json:"channel"`
	UserID    string `json:"user_id"`
	Nickname  string `json:"nickname"`
	Emoji     string `json:"emoji"`
}

func (e *ReactionAddEvent) EventType() string { return e.Type }

type ReactionRemoveEvent struct {
	Type      string `json:"type"`
	MessageID string `json:"message_id"`
	ServerID  string `json:"server_id"`
	Channel   string `json:"channel"`
	UserID    string `json:"user_id"`
	Nickname  string `json:"nickname"`
	Emoji     string `json:"emoji"`
}

func (e *ReactionRemoveEvent) EventType() string { return e.Type }

// Typing & presence

type TypingStartEvent struct {
	Type     string `json:"type"`
	ServerID string `json:"server_id"`
	Channel  string `json:"channel"`
	Nickname string `json:"nickname"`
}

func (e *TypingStartEvent) EventType() string { return e.Type }

type PresenceUpdateEvent struct {
	Type     string   `json:"type"`
	ServerID string   `json:"server_id"`
	Presence Presence `json:"presence"`
}

func (e *PresenceUpdateEvent) EventType() string { return e.Type }

type PresenceListEvent struct {
	Type      string     `json:"type"`
	ServerID  string     `json:"server_id"`
	Presences []Presence `json:"presences"`
}

func (e *PresenceListEvent) EventType() string { return e.Type }

// Membership

type JoinEvent struct {
	Type      string `json:"type"`
	Nickname  string `json:"nickname"`
	ServerID  string `json:"server_id"`
	Channel   string `json:"channel"`
	AvatarURL string `json:"avatar_url,omitempty"`
}

func (e *JoinEvent) EventType() string { return e.Type }

type PartEvent struct {
	Type     string `json:"type"`
	Nickname string `json:"nickname"`
	ServerID string `json:"server_id"`
	Channel  string `json:"channel"`
	Reason   string `json:"reason,omitempty"`
}

func (e *PartEvent) EventType() string { return e.Type }

type QuitEvent struct {
	Type     string `json:"type"`
	Nickname string `json:"nickname"`
	Reason   string `json:"reason,omitempty"`
}

func (e *QuitEvent) EventType() string { return e.Type }

type NickChangeEvent struct {
	Type    string `json:"type"`
	OldNick string `json:"old_nick"`
	NewNick string `json:"new_nick"`
}

func (e *NickChangeEvent) EventType() string { return e.Type }

type NamesEvent struct {
	Type     string   `json:"type"`
	ServerID string   `json:"server_id"`
	Channel  string   `json:"channel"`
	Members  []Member `json:"members"`
}

func (e *NamesEvent) EventType() string { return e.Type }

type ServerNoticeEvent struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

func (e *ServerNoticeEvent) EventType() string { return e.Type }

// Channel structure

type TopicEvent struct {
	Type     string `json:"type"`
	ServerID string `json:"server_id"`
	Channel  string `json:"channel"`
	Topic    string `json:"topic"`
}

func (e *TopicEvent) EventType() string { return e.Type }

type TopicChangeEvent struct {
	Type     string `json:"type"`
	ServerID string `json:"server_id"`
	Channel  string `json:"channel"`
	SetBy    string `json:"set_by"`
	Topic    string `json:"topic"`
}

func (e *TopicChangeEvent) EventType() string { return e.Type }

type ChannelListEvent struct {
	Type     string    `json:"type"`
	ServerID string    `json:"server_id"`
	Channels []Channel `json:"channels"`
}

func (e *ChannelListEvent) EventType() string { return e.Type }

type ChannelReorderEvent struct {
	Type     string            `json:"type"`
	ServerID string            `json:"server_id"`
	Channels []ChannelPosition `json:"channels"`
}

func (e *ChannelReorderEvent) EventType() string { return e.Type }

type SlowModeUpdateEvent struct {
	Type     string `json:"type"`
	ServerID string `json:"server_id"`
	Channel  string `json:"channel"`
	Seconds  int    `json:"seconds"`
}

func (e *SlowModeUpdateEvent) EventType() string { return e.Type }

type NSFWUpdateEvent struct {
	Type     string `json:"type"`
	ServerID string `json:"server_id"`
	Channel  string `json:"channel"`
	IsNSFW   bool   `json:"is_nsfw"`
}

func (e *NSFWUpdateEvent) EventType() string { return e.Type }

type CategoryListEvent struct {
	Type       string     `json:"type"`
	ServerID   string     `json:"server_id"`
	Categories []Category `json:"categories"`
}

func (e *CategoryListEvent) EventType() string { return e.Type }

type CategoryUpdateEvent struct {
	Type     string   `json:"type"`
	ServerID string   `json:"server_id"`
	Category Category `json:"category"`
}

func (e *CategoryUpdateEvent) EventType() string { return e.Type }

type CategoryDeleteEvent struct {
	Type       string `json:"type"`
	ServerID   string `json:"server_id"`
	CategoryID string `json:"category_id"`
}

func (e *CategoryDeleteEvent) EventType() string { return e.Type }

type RoleListEvent struct {
	Type     string `json:"type"`
	ServerID string `json:"server_id"`
	Roles    []Role `json:"roles"`
}

func (e *RoleListEvent) EventType() string { return e.Type }

type RoleUpdateEvent struct {
	Type     string `json:"type"`
	ServerID string `json:"server_id"`
	Role     Role   `json:"role"`
}

func (e *RoleUpdateEvent) EventType() string { return e.Type }

type RoleDeleteEvent struct {
	Type     string `json:"type"`
	ServerID string `json:"server_id"`
	RoleID   string `json:"role_id"`
}

func (e *RoleDeleteEvent) EventType() string { return e.Type }

type MemberRoleUpdateEvent struct {
	Type     string `json:"type"`
	ServerID string `json:"server_id"`
	UserID   string `json:"user_id"`
	RoleID   string `json:"role_id"`
}

func (e *MemberRoleUpdateEvent) EventType() string { return e.Type }

// History & session

type HistoryEvent struct {
	Type     string    `json:"type"`
	ServerID string    `json:"server_id"`
	Channel  string    `json:"channel"`
	Messages []Message `json:"messages"`
	HasMore  bool      `json:"has_more"`
}

func (e *HistoryEvent) EventType() string { return e.Type }

type ServerListEvent struct {
	Type    string   `json:"type"`
	Servers []Server `json:"servers"`
}

func (e *ServerListEvent) EventType() string { return e.Type }

type UnreadCount struct {
	ChannelName string `json:"channel_name"`
	Count       int64  `json:"count"`
}

type UnreadCountsEvent struct {
	Type     string        `json:"type"`
	ServerID string        `json:"server_id"`
	Counts   []UnreadCount `json:"counts"`
}

func (e *UnreadCountsEvent) EventType() string { return e.Type }

// Profile & settings

type UserProfileEvent struct {
	Type    string      `json:"type"`
	Profile UserProfile `json:"profile"`
}

func (e *UserProfileEvent) EventType() string { return e.Type }

type ServerNicknameUpdateEvent struct {
	Type     string `json:"type"`
	ServerID string `json:"server_id"`
	UserID   string `json:"user_id"`
	Nickname string `json:"nickname"`
}

func (e *ServerNicknameUpdateEvent) EventType() string { return e.Type }

type NotificationSettingsEvent struct {
	Type     string                `json:"type"`
	Settings NotificationSettings  `json:"settings"`
}

func (e *NotificationSettingsEvent) EventType() string { return e.Type }

type SearchResultsEvent struct {
	Type       string    `json:"type"`
	Query      string    `json:"query"`
	Results    []Message `json:"results"`
	TotalCount int       `json:"total_count"`
}

func (e *SearchResultsEvent) EventType() string { return e.Type }

// Pins & threads

type MessagePinEvent struct {
	Type      string `json:"type"`
	ServerID  string `json:"server_id"`
	Channel   string `json:"channel"`
	MessageID string `json:"message_id"`
	PinnedBy  string `json:"pinned_by"`
}

func (e *MessagePinEvent) EventType() string { return e.Type }

type MessageUnpinEvent struct {
	Type      string `json:"type"`
	ServerID  string `json:"server_id"`
	Channel   string `json:"channel"`
	MessageID string `json:"message_id"`
}

func (e *MessageUnpinEvent) EventType() string { return e.Type }

type PinnedMessagesEvent struct {
	Type     string          `json:"type"`
	ServerID string          `json:"server_id"`
	Channel  string          `json:"channel"`
	Pins     []PinnedMessage `json:"pins"`
}

func (e *PinnedMessagesEvent) EventType() string { return e.Type }

type ThreadCreateEvent struct {
	Type     string `json:"type"`
	ServerID string `json:"server_id"`
	Thread   Thread `json:"thread"`
}

func (e *ThreadCreateEvent) EventType() string { return e.Type }

type ThreadUpdateEvent struct {
	Type     string `json:"type"`
	ServerID string `json:"server_id"`
	Thread   Thread `json:"thread"`
}

func (e *ThreadUpdateEvent) EventType() string { return e.Type }

type ThreadListEvent struct {
	Type          string   `json:"type"`
	ServerID      string   `json:"server_id"`
	ParentChannel string   `json:"parent_channel"`
	Threads       []Thread `json:"threads"`
}

func (e *ThreadListEvent) EventType() string { return e.Type }

type ForumTagListEvent struct {
	Type     string     `json:"type"`
	ServerID string     `json:"server_id"`
	Channel  string      `json:"channel"`
	Tags     []ForumTag `json:"tags"`
}

func (e *ForumTagListEvent) EventType() string { return e.Type }

type ForumTagUpdateEvent struct {
	Type     string   `json:"type"`
	ServerID string   `json:"server_id"`
	Channel  string   `json:"channel"`
	Tag      ForumTag `json:"tag"`
}

func (e *ForumTagUpdateEvent) EventType() string { return e.Type }

type ForumTagDeleteEvent struct {
	Type     string `json:"type"`
	ServerID string `json:"server_id"`
	Channel  string `json:"channel"`
	TagID    string `json:"tag_id"`
}

func (e *ForumTagDeleteEvent) EventType() string { return e.Type }

// Bookmarks

type BookmarkListEvent struct {
	Type      string     `json:"type"`
	Bookmarks []Bookmark `json:"bookmarks"`
}

func (e *BookmarkListEvent) EventType() string { return e.Type }

type BookmarkAddEvent struct {
	Type     string   `json:"type"`
	Bookmark Bookmark `json:"bookmark"`
}

func (e *BookmarkAddEvent) EventType() string { return e.Type }

type BookmarkRemoveEvent struct {
	Type      string `json:"type"`
	MessageID string `json:"message_id"`
}

func (e *BookmarkRemoveEvent) EventType() string { return e.Type }

// Moderation

type MemberKickEvent struct {
	Type     string `json:"type"`
	ServerID string `json:"server_id"`
	UserID   string `json:"user_id"`
}

func (e *MemberKickEvent) EventType() string { return e.Type }

type MemberBanEvent struct {
	Type     string `json:"type"`
	ServerID string `json:"server_id"`
	UserID   string `json:"user_id"`
}

func (e *MemberBanEvent) EventType() string { return e.Type }

type MemberUnbanEvent struct {
	Type     string `json:"type"`
	ServerID string `json:"server_id"`
	UserID   string `json:"user_id"`
}

func (e *MemberUnbanEvent) EventType() string { return e.Type }

type MemberTimeoutEvent struct {
	Type         string `json:"type"`
	ServerID     string `json:"server_id"`
	UserID       string `json:"user_id"`
	TimeoutUntil string `json:"timeout_until,omitempty"`
}

func (e *MemberTimeoutEvent) EventType() string { return e.Type }

type AuditLogEntriesEvent struct {
	Type     string       `json:"type"`
	ServerID string       `json:"server_id"`
	Entries  []AuditEntry `json:"entries"`
}

func (e *AuditLogEntriesEvent) EventType() string { return e.Type }

type BanListEvent struct {
	Type     string `json:"type"`
	ServerID string `json:"server_id"`
	Bans     []Ban  `json:"bans"`
}

func (e *BanListEvent) EventType() string { return e.Type }

type AutomodRuleListEvent struct {
	Type     string        `json:"type"`
	ServerID string        `json:"server_id"`
	Rules    []AutomodRule `json:"rules"`
}

func (e *AutomodRuleListEvent) EventType() string { return e.Type }

type AutomodRuleUpdateEvent struct {
	Type     string      `json:"type"`
	ServerID string      `json:"server_id"`
	Rule     AutomodRule `json:"rule"`
}

func (e *AutomodRuleUpdateEvent) EventType() string { return e.Type }

type AutomodRuleDeleteEvent struct {
	Type     string `json:"type"`
	ServerID string `json:"server_id"`
	RuleID   string `json:"rule_id"`
}

func (e *AutomodRuleDeleteEvent) EventType() string { return e.Type }

// Community

type InviteListEvent struct {
	Type     string   `json:"type"`
	ServerID string   `json:"server_id"`
	Invites  []Invite `json:"invites"`
}

func (e *InviteListEvent) EventType() string { return e.Type }

type InviteCreateEvent struct {
	Type     string `json:"type"`
	ServerID string `json:"server_id"`
	Invite   Invite `json:"invite"`
}

func (e *InviteCreateEvent) EventType() string { return e.Type }

type InviteDeleteEvent struct {
	Type     string `json:"type"`
	ServerID string `json:"server_id"`
	Code     string `json:"code"`
}

func (e *InviteDeleteEvent) EventType() string { return e.Type }

type EventListEvent struct {
	Type     string           `json:"type"`
	ServerID string           `json:"server_id"`
	Events   []ScheduledEvent `json:"events"`
}

func (e *EventListEvent) EventType() string { return e.Type }

type EventUpdateEvent struct {
	Type     string         `json:"type"`
	ServerID string         `json:"server_id"`
	Event    ScheduledEvent `json:"event"`
}

func (e *EventUpdateEvent) EventType() string { return e.Type }

type EventDeleteEvent struct {
	Type     string `json:"type"`
	ServerID string `json:"server_id"`
	EventID  string `json:"event_id"`
}

func (e *EventDeleteEvent) EventType() string { return e.Type }

type EventRSVPListEvent struct {
	Type    string `json:"type"`
	EventID string `json:"event_id"`
	RSVPs   []RSVP `json:"rsvps"`
}

func (e *EventRSVPListEvent) EventType() string { return e.Type }

type ServerCommunityEvent struct {
	Type     string            `json:"type"`
	ServerID string            `json:"server_id"`
	Settings CommunitySettings `json:"settings"`
}

func (e *ServerCommunityEvent) EventType() string { return e.Type }

type DiscoverServersEvent struct {
	Type    string              `json:"type"`
	Servers []CommunitySettings `json:"servers"`
}

func (e *DiscoverServersEvent) EventType() string { return e.Type }

type ChannelFollowListEvent struct {
	Type     string          `json:"type"`
	ServerID string          `json:"server_id"`
	Follows  []ChannelFollow `json:"follows"`
}

func (e *ChannelFollowListEvent) EventType() string { return e.Type }

type ChannelFollowCreateEvent struct {
	Type   string        `json:"type"`
	Follow ChannelFollow `json:"follow"`
}

func (e *ChannelFollowCreateEvent) EventType() string { return e.Type }

type ChannelFollowDeleteEvent struct {
	Type          string `json:"type"`
	SourceChannel string `json:"source_channel"`
	TargetChannel string `json:"target_channel"`
}

func (e *ChannelFollowDeleteEvent) EventType() string { return e.Type }

type TemplateListEvent struct {
	Type      string     `json:"type"`
	ServerID  string     `json:"server_id"`
	Templates []Template `json:"templates"`
}

func (e *TemplateListEvent) EventType() string { return e.Type }

type TemplateUpdateEvent struct {
	Type     string   `json:"type"`
	ServerID string   `json:"server_id"`
	Template Template `json:"template"`
}

func (e *TemplateUpdateEvent) EventType() string { return e.Type }

type TemplateDeleteEvent struct {
	Type       string `json:"type"`
	TemplateID string `json:"template_id"`
}

func (e *TemplateDeleteEvent) EventType() string { return e.Type }

// Error

type ErrorEvent struct {
	Type    string `json:"type"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (e *ErrorEvent) EventType() string { return e.Type }
