// Package store holds Concord's normalized client-side mirror of server
// state and the reducers that keep it in sync with inbound events. It
// is grounded on the teacher's hub package
// (internal/hub/hub.go, internal/hub/channels.go): a set of maps guarded
// by one mutex, mutated only through named operations, never touched
// directly by callers outside the package.
package store

import (
	"sort"
	"sync"
	"time"

	"concord/internal/wire"
)

// Empty sentinels: one constant per collection type, returned for any
// missing map key so that identity comparisons in a selector layer never
// spuriously invalidate.
var (
	emptyChannels     = []wire.Channel{}
	emptyCategories   = []wire.Category{}
	emptyRoles        = []wire.Role{}
	emptyMessages     = []wire.Message{}
	emptyMembers      = []wire.Member{}
	emptyStrings      = []string{}
	emptyPresences    = map[string]wire.Presence{}
	emptyEmoji        = map[string]string{}
	emptyPins         = []wire.PinnedMessage{}
	emptyThreads      = []wire.Thread{}
	emptyForumTags    = []wire.ForumTag{}
	emptyBans         = []wire.Ban{}
	emptyAudit        = []wire.AuditEntry{}
	emptyAutomod      = []wire.AutomodRule{}
	emptyInvites      = []wire.Invite{}
	emptyEvents       = []wire.ScheduledEvent{}
	emptyTemplates    = []wire.Template{}
	emptyBookmarks    = []wire.Bookmark{}
	emptyCommunities  = []wire.CommunitySettings{}
)

// SearchState is the store's single-slot search result.
type SearchState struct {
	Query      string
	Results    []wire.Message
	TotalCount int
	HasRun     bool
}

// Store is Concord's normalized state mirror. All fields are private; the
// selector layer (selectors.go) is the only reader; the writers are this
// package's reducers (reduce_*.go), the optimistic-layer hooks in
// mutate.go, and the Set*/Reset methods. Zero value is not ready for
// use; call New.
type Store struct {
	mu sync.RWMutex

	connected bool
	nickname  string
	servers   []wire.Server

	channels   map[string][]wire.Channel
	categories map[string][]wire.Category
	roles      map[string][]wire.Role

	messages     map[string][]wire.Message
	members      map[string][]wire.Member
	hasMore      map[string]bool
	unreadCounts map[string]int
	typingUsers  map[string][]string

	presences   map[string]map[string]wire.Presence
	customEmoji map[string]map[string]string

	pinnedMessages map[string][]wire.PinnedMessage
	threads        map[string][]wire.Thread
	forumTags      map[string][]wire.ForumTag

	bans        map[string][]wire.Ban
	auditLog    map[string][]wire.AuditEntry
	automodRules map[string][]wire.AutomodRule

	invites            map[string][]wire.Invite
	serverEvents       map[string][]wire.ScheduledEvent
	rsvps              map[string][]wire.RSVP
	communitySettings  map[string]wire.CommunitySettings
	templates          map[string][]wire.Template
	notificationPrefs  map[string]wire.NotificationSettings
	channelFollows     map[string][]wire.ChannelFollow

	userProfiles map[string]wire.UserProfile
	avatars      map[string]string

	bookmarks           []wire.Bookmark
	discoverableServers []wire.CommunitySettings
	search              SearchState
	replyingTo          *wire.ReplyInfo

	typingTimers map[string]*time.Timer
	onError      func(code, message string)
}

// New returns an empty, ready-to-use Store.
func New() *Store {
	return &Store{
		channels:          map[string][]wire.Channel{},
		categories:        map[string][]wire.Category{},
		roles:             map[string][]wire.Role{},
		messages:          map[string][]wire.Message{},
		members:           map[string][]wire.Member{},
		hasMore:           map[string]bool{},
		unreadCounts:      map[string]int{},
		typingUsers:       map[string][]string{},
		presences:         map[string]map[string]wire.Presence{},
		customEmoji:       map[string]map[string]string{},
		pinnedMessages:    map[string][]wire.PinnedMessage{},
		threads:           map[string][]wire.Thread{},
		forumTags:         map[string][]wire.ForumTag{},
		bans:              map[string][]wire.Ban{},
		auditLog:          map[string][]wire.AuditEntry{},
		automodRules:      map[string][]wire.AutomodRule{},
		invites:           map[string][]wire.Invite{},
		serverEvents:      map[string][]wire.ScheduledEvent{},
		rsvps:             map[string][]wire.RSVP{},
		communitySettings: map[string]wire.CommunitySettings{},
		templates:         map[string][]wire.Template{},
		notificationPrefs: map[string]wire.NotificationSettings{},
		channelFollows:    map[string][]wire.ChannelFollow{},
		userProfiles:      map[string]wire.UserProfile{},
		avatars:           map[string]string{},
		typingTimers:      map[string]*time.Timer{},
	}
}

// SetNickname records the client's own nickname, used by reducers to
// distinguish self-originated events (unread suppression, typing
// self-suppression).
func (s *Store) SetNickname(nick string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nickname = nick
}

func (s *Store) Nickname() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.nickname
}

func (s *Store) SetConnected(v bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.connected = v
}

// Reset clears every server-derived map back to its empty sentinel. UI
// intent state lives in a different package entirely and is untouched.
func (s *Store) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, timer := range s.typingTimers {
		timer.Stop()
	}

	s.connected = false
	s.servers = nil
	s.channels = map[string][]wire.Channel{}
	s.categories = map[string][]wire.Category{}
	s.roles = map[string][]wire.Role{}
	s.messages = map[string][]wire.Message{}
	s.members = map[string][]wire.Member{}
	s.hasMore = map[string]bool{}
	s.unreadCounts = map[string]int{}
	s.typingUsers = map[string][]string{}
	s.presences = map[string]map[string]wire.Presence{}
	s.customEmoji = map[string]map[string]string{}
	s.pinnedMessages = map[string][]wire.PinnedMessage{}
	s.threads = map[string][]wire.Thread{}
	s.forumTags = map[string][]wire.ForumTag{}
	s.bans = map[string][]wire.Ban{}
	s.auditLog = map[string][]wire.AuditEntry{}
	s.automodRules = map[string][]wire.AutomodRule{}
	s.invites = map[string][]wire.Invite{}
	s.serverEvents = map[string][]wire.ScheduledEvent{}
	s.rsvps = map[string][]wire.RSVP{}
	s.communitySettings = map[string]wire.CommunitySettings{}
	s.templates = map[string][]wire.Template{}
	s.notificationPrefs = map[string]wire.NotificationSettings{}
	s.channelFollows = map[string][]wire.ChannelFollow{}
	s.userProfiles = map[string]wire.UserProfile{}
	s.avatars = map[string]string{}
	s.bookmarks = nil
	s.discoverableServers = nil
	s.search = SearchState{}
	s.replyingTo = nil
	s.typingTimers = map[string]*time.Timer{}
}

func sortRolesByPositionDesc(roles []wire.Role) {
	sort.SliceStable(roles, func(i, j int) bool { return roles[i].Position > roles[j].Position })
}

func sortCategoriesByPositionAsc(categories []wire.Category) {
	sort.SliceStable(categories, func(i, j int) bool { return categories[i].Position < categories[j].Position })
}

func sortChannelsByPosition(channels []wire.Channel) {
	sort.SliceStable(channels, func(i, j int) bool { return channels[i].Position < channels[j].Position })
}

func sortMessagesByTimestamp(messages []wire.Message) {
	sort.SliceStable(messages, func(i, j int) bool { return messages[i].Timestamp.Before(messages[j].Timestamp) })
}
