package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"concord/internal/wire"
)

func TestEmptySentinelIdentity(t *testing.T) {
	s := New()

	got1 := s.Messages("srv1", "general")
	got2 := s.Messages("srv1", "general")
	require.Empty(t, got1)
	assert.Equal(t, got1, got2)

	s.Apply(&wire.ChannelListEvent{Type: "channel_list", ServerID: "srv1", Channels: []wire.Channel{
		{ID: "c1", ServerID: "srv1", Name: "general"},
	}}, nil)
	assert.Len(t, s.Channels("srv1"), 1)
	assert.Empty(t, s.Channels("srv2"))
}

func TestApplyMessageAppendsAndIncrementsUnread(t *testing.T) {
	s := New()
	s.SetNickname("me")

	s.Apply(&wire.MessageEvent{
		Type: "message", ID: "m1", ServerID: "srv1", From: "alice", Target: "general",
		Content: "hi", Timestamp: time.Now(),
	}, nil)

	msgs := s.Messages("srv1", "general")
	require.Len(t, msgs, 1)
	assert.Equal(t, "hi", msgs[0].Content)
	assert.Equal(t, 1, s.UnreadCount("srv1", "general"))
}

func TestApplyMessageDedupesEcho(t *testing.T) {
	s := New()
	s.AppendLocalMessage("srv1", "general", wire.Message{ID: "m1", Author: "me", Content: "hi"})

	s.Apply(&wire.MessageEvent{
		Type: "message", ID: "m1", ServerID: "srv1", From: "me", Target: "general",
		Content: "hi", Timestamp: time.Now(),
	}, nil)

	assert.Len(t, s.Messages("srv1", "general"), 1)
}

func TestApplyMessageEditAndDelete(t *testing.T) {
	s := New()
	s.Apply(&wire.MessageEvent{Type: "message", ID: "m1", ServerID: "srv1", From: "a", Target: "g", Content: "hi"}, nil)

	s.Apply(&wire.MessageEditEvent{Type: "message_edit", ID: "m1", ServerID: "srv1", Channel: "g", Content: "edited"}, nil)
	msgs := s.Messages("srv1", "g")
	require.Len(t, msgs, 1)
	assert.Equal(t, "edited", msgs[0].Content)
	require.NotNil(t, msgs[0].EditedAt)

	s.Apply(&wire.MessageDeleteEvent{Type: "message_delete", ID: "m1", ServerID: "srv1", Channel: "g"}, nil)
	assert.Empty(t, s.Messages("srv1", "g"))
}

func TestReactionAddRemoveSetSemantics(t *testing.T) {
	s := New()
	s.Apply(&wire.MessageEvent{Type: "message", ID: "m1", ServerID: "srv1", From: "a", Target: "g"}, nil)

	s.Apply(&wire.ReactionAddEvent{Type: "reaction_add", MessageID: "m1", ServerID: "srv1", Channel: "g", UserID: "u1", Emoji: "👍"}, nil)
	s.Apply(&wire.ReactionAddEvent{Type: "reaction_add", MessageID: "m1", ServerID: "srv1", Channel: "g", UserID: "u1", Emoji: "👍"}, nil)

	msgs := s.Messages("srv1", "g")
	require.Len(t, msgs[0].Reactions, 1)
	assert.Equal(t, 1, msgs[0].Reactions[0].Count)

	s.Apply(&wire.ReactionAddEvent{Type: "reaction_add", MessageID: "m1", ServerID: "srv1", Channel: "g", UserID: "u2", Emoji: "👍"}, nil)
	msgs = s.Messages("srv1", "g")
	assert.Equal(t, 2, msgs[0].Reactions[0].Count)

	s.Apply(&wire.ReactionRemoveEvent{Type: "reaction_remove", MessageID: "m1", ServerID: "srv1", Channel: "g", UserID: "u1", Emoji: "👍"}, nil)
	s.Apply(&wire.ReactionRemoveEvent{Type: "reaction_remove", MessageID: "m1", ServerID: "srv1", Channel: "g", UserID: "u2", Emoji: "👍"}, nil)
	msgs = s.Messages("srv1", "g")
	assert.Empty(t, msgs[0].Reactions)
}

func TestChannelListFiresSideEffects(t *testing.T) {
	s := New()
	var sent []wire.Command
	s.Apply(&wire.ChannelListEvent{
		Type: "channel_list", ServerID: "srv1",
		Channels: []wire.Channel{{ID: "c1", ServerID: "srv1", Name: "general"}},
	}, func(c wire.Command) { sent = append(sent, c) })

	require.Len(t, sent, 3)
	assert.Equal(t, "list_roles", sent[0].CommandType())
	assert.Equal(t, "list_categories", sent[1].CommandType())
	assert.Equal(t, "get_presences", sent[2].CommandType())
}

func TestNamesDedupesByNickname(t *testing.T) {
	s := New()
	s.Apply(&wire.NamesEvent{Type: "names", ServerID: "srv1", Channel: "g", Members: []wire.Member{
		{Nickname: "alice", UserID: "u1"},
		{Nickname: "bob", UserID: "u2"},
		{Nickname: "alice", UserID: "u1", CustomStatus: "afk"},
	}}, nil)

	members := s.Members("srv1", "g")
	require.Len(t, members, 2)
	assert.Equal(t, "afk", members[0].CustomStatus)
}

func TestMemberBanRemovesFromEveryChannelOfServer(t *testing.T) {
	s := New()
	s.Apply(&wire.NamesEvent{Type: "names", ServerID: "srv1", Channel: "general", Members: []wire.Member{{Nickname: "alice", UserID: "u1"}}}, nil)
	s.Apply(&wire.NamesEvent{Type: "names", ServerID: "srv1", Channel: "random", Members: []wire.Member{{Nickname: "alice", UserID: "u1"}}}, nil)
	s.Apply(&wire.NamesEvent{Type: "names", ServerID: "srv2", Channel: "general", Members: []wire.Member{{Nickname: "alice", UserID: "u1"}}}, nil)

	s.Apply(&wire.MemberBanEvent{Type: "member_ban", ServerID: "srv1", UserID: "u1"}, nil)

	assert.Empty(t, s.Members("srv1", "general"))
	assert.Empty(t, s.Members("srv1", "random"))
	assert.Len(t, s.Members("srv2", "general"), 1)
}

func TestRolesSortedByPositionDescending(t *testing.T) {
	s := New()
	s.Apply(&wire.RoleListEvent{Type: "role_list", ServerID: "srv1", Roles: []wire.Role{
		{ID: "r1", Position: 1},
		{ID: "r2", Position: 5},
		{ID: "r3", Position: 3},
	}}, nil)

	roles := s.Roles("srv1")
	require.Len(t, roles, 3)
	assert.Equal(t, "r2", roles[0].ID)
	assert.Equal(t, "r3", roles[1].ID)
	assert.Equal(t, "r1", roles[2].ID)
}

func TestHistoryReversesAndPrepends(t *testing.T) {
	s := New()
	t0 := time.Now()

	// Existing page (most recent page, ascending already).
	s.Apply(&wire.MessageEvent{Type: "message", ID: "m3", ServerID: "srv1", From: "a", Target: "g", Timestamp: t0.Add(3 * time.Second)}, nil)

	// History page arrives newest-first: m2 then m1.
	s.Apply(&wire.HistoryEvent{
		Type: "history", ServerID: "srv1", Channel: "g",
		Messages: []wire.Message{
			{ID: "m2", Timestamp: t0.Add(2 * time.Second)},
			{ID: "m1", Timestamp: t0.Add(1 * time.Second)},
		},
		HasMore: true,
	}, nil)

	msgs := s.Messages("srv1", "g")
	require.Len(t, msgs, 3)
	assert.Equal(t, []string{"m1", "m2", "m3"}, []string{msgs[0].ID, msgs[1].ID, msgs[2].ID})
	assert.True(t, s.HasMoreHistory("srv1", "g"))
}

func TestTypingStartSelfSuppressed(t *testing.T) {
	s := New()
	s.SetNickname("me")
	s.Apply(&wire.TypingStartEvent{Type: "typing_start", ServerID: "srv1", Channel: "g", Nickname: "me"}, nil)
	assert.Empty(t, s.TypingUsers("srv1", "g"))
}

func TestTypingStartRefreshKeepsSingleEntry(t *testing.T) {
	s := New()
	s.SetNickname("me")
	s.Apply(&wire.TypingStartEvent{Type: "typing_start", ServerID: "srv1", Channel: "g", Nickname: "alice"}, nil)
	assert.Equal(t, []string{"alice"}, s.TypingUsers("srv1", "g"))

	// A second typing_start before expiry must not create a duplicate entry.
	s.Apply(&wire.TypingStartEvent{Type: "typing_start", ServerID: "srv1", Channel: "g", Nickname: "alice"}, nil)
	assert.Equal(t, []string{"alice"}, s.TypingUsers("srv1", "g"))
}

func TestAvatarCachedFromMessageJoinAndNames(t *testing.T) {
	s := New()

	s.Apply(&wire.MessageEvent{Type: "message", ID: "m1", ServerID: "srv1", From: "alice", Target: "g", AvatarURL: "https://cdn/alice.png"}, nil)
	assert.Equal(t, "https://cdn/alice.png", s.Avatar("alice"))

	s.Apply(&wire.JoinEvent{Type: "join", ServerID: "srv1", Channel: "g", Nickname: "bob", AvatarURL: "https://cdn/bob.png"}, nil)
	assert.Equal(t, "https://cdn/bob.png", s.Avatar("bob"))

	// A names snapshot with an empty avatar must not clobber the cache.
	s.Apply(&wire.NamesEvent{Type: "names", ServerID: "srv1", Channel: "g", Members: []wire.Member{
		{Nickname: "alice", AvatarURL: ""},
		{Nickname: "carol", AvatarURL: "https://cdn/carol.png"},
	}}, nil)
	assert.Equal(t, "https://cdn/alice.png", s.Avatar("alice"))
	assert.Equal(t, "https://cdn/carol.png", s.Avatar("carol"))

	assert.Empty(t, s.Avatar("nobody"))
}

func TestResetClearsServerDerivedStateOnly(t *testing.T) {
	s := New()
	s.SetNickname("me")
	s.Apply(&wire.ServerListEvent{Type: "server_list", Servers: []wire.Server{{ID: "srv1"}}}, nil)
	s.SetConnected(true)

	s.Reset()

	assert.False(t, s.Connected())
	assert.Empty(t, s.Servers())
	assert.Equal(t, "me", s.Nickname(), "nickname is session identity, not server-derived state")
}
