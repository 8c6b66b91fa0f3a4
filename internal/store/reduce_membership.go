package store

import (
	"strings"

	"concord/internal/wire"
)

func (s *Store) applyJoin(e *wire.JoinEvent) {
	key := wire.ChannelKey(e.ServerID, e.Channel)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.members[key] = upsertMemberByNickname(s.members[key], wire.Member{
		Nickname:  e.Nickname,
		AvatarURL: e.AvatarURL,
	})
	if e.AvatarURL != "" {
		s.avatars[e.Nickname] = e.AvatarURL
	}
}

func (s *Store) applyPart(e *wire.PartEvent) {
	key := wire.ChannelKey(e.ServerID, e.Channel)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.members[key] = removeMemberByNickname(s.members[key], e.Nickname)
}

// applyQuit removes a nickname from every channel of every server, since a
// quit is server-scope-less.
func (s *Store) applyQuit(e *wire.QuitEvent) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for key, members := range s.members {
		s.members[key] = removeMemberByNickname(members, e.Nickname)
	}
}

func (s *Store) applyNickChange(e *wire.NickChangeEvent) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for key, members := range s.members {
		next := make([]wire.Member, len(members))
		changed := false
		for i, m := range members {
			if m.Nickname == e.OldNick {
				m.Nickname = e.NewNick
				changed = true
			}
			next[i] = m
		}
		if changed {
			s.members[key] = next
		}
	}
	if s.nickname == e.OldNick {
		s.nickname = e.NewNick
	}
}

// applyNames replaces a channel's member list wholesale, deduplicating by
// nickname (last occurrence wins).
func (s *Store) applyNames(e *wire.NamesEvent) {
	key := wire.ChannelKey(e.ServerID, e.Channel)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.members[key] = dedupeMembersByNickname(e.Members)
	for _, m := range e.Members {
		if m.AvatarURL != "" {
			s.avatars[m.Nickname] = m.AvatarURL
		}
	}
}

func dedupeMembersByNickname(members []wire.Member) []wire.Member {
	seen := map[string]int{}
	out := make([]wire.Member, 0, len(members))
	for _, m := range members {
		if idx, ok := seen[m.Nickname]; ok {
			out[idx] = m
			continue
		}
		seen[m.Nickname] = len(out)
		out = append(out, m)
	}
	return out
}

func upsertMemberByNickname(members []wire.Member, m wire.Member) []wire.Member {
	for i := range members {
		if members[i].Nickname == m.Nickname {
			next := make([]wire.Member, len(members))
			copy(next, members)
			next[i] = m
			return next
		}
	}
	next := make([]wire.Member, len(members)+1)
	copy(next, members)
	next[len(members)] = m
	return next
}

func removeMemberByNickname(members []wire.Member, nickname string) []wire.Member {
	next := make([]wire.Member, 0, len(members))
	for _, m := range members {
		if m.Nickname != nickname {
			next = append(next, m)
		}
	}
	return next
}

func (s *Store) applyMemberRoleUpdate(e *wire.MemberRoleUpdateEvent) {
	// Role assignment is keyed by role list membership, not the per-channel
	// member roster. Member roster entries carry no role field, so there is
	// no normalized collection to mutate here.
	_ = e
}

func (s *Store) applyServerNicknameUpdate(e *wire.ServerNicknameUpdateEvent) {
	s.mu.Lock()
	defer s.mu.Unlock()
	prefix := e.ServerID + ":"
	for key, members := range s.members {
		if !strings.HasPrefix(key, prefix) {
			continue
		}
		next := make([]wire.Member, len(members))
		changed := false
		for i, m := range members {
			if m.UserID == e.UserID {
				m.Nickname = e.Nickname
				changed = true
			}
			next[i] = m
		}
		if changed {
			s.members[key] = next
		}
	}
}

// applyMemberKick and applyMemberBan both remove a user from every
// channel-scoped member roster under the server, matching by UserID:
// removing from every members[key] with prefix server_id:.

func (s *Store) applyMemberKick(e *wire.MemberKickEvent) {
	s.removeUserFromServer(e.ServerID, e.UserID)
}

func (s *Store) applyMemberBan(e *wire.MemberBanEvent) {
	s.removeUserFromServer(e.ServerID, e.UserID)
}

func (s *Store) applyMemberUnban(e *wire.MemberUnbanEvent) {
	s.mu.Lock()
	defer s.mu.Unlock()
	bans := s.bans[e.ServerID]
	next := make([]wire.Ban, 0, len(bans))
	for _, b := range bans {
		if b.UserID != e.UserID {
			next = append(next, b)
		}
	}
	s.bans[e.ServerID] = next
}

func (s *Store) applyMemberTimeout(e *wire.MemberTimeoutEvent) {
	// Timeout state surfaces through the audit log and moderation panel,
	// not the member roster; nothing normalized to mutate beyond that.
	_ = e
}

func (s *Store) removeUserFromServer(serverID, userID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	prefix := serverID + ":"
	for key, members := range s.members {
		if !strings.HasPrefix(key, prefix) {
			continue
		}
		next := make([]wire.Member, 0, len(members))
		for _, m := range members {
			if m.UserID != userID {
				next = append(next, m)
			}
		}
		s.members[key] = next
	}
}
