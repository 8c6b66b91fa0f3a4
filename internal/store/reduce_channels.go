package store

import "concord/internal/wire"

// applyChannelList stores the channel roster for a server and fires the
// load-bearing side effect of priming per-server derived state: roles,
// categories, and presence are not included in channel_list itself, so
// the Session Controller must request them once channels are known.
func (s *Store) applyChannelList(e *wire.ChannelListEvent, send Sender) {
	channels := make([]wire.Channel, len(e.Channels))
	copy(channels, e.Channels)
	sortChannelsByPosition(channels)

	s.mu.Lock()
	s.channels[e.ServerID] = channels
	s.mu.Unlock()

	send(wire.NewListRoles(e.ServerID))
	send(wire.NewListCategories(e.ServerID))
	send(wire.NewGetPresences(e.ServerID))
}

func (s *Store) applyTopic(e *wire.TopicEvent) {
	s.setChannelTopic(e.ServerID, e.Channel, e.Topic)
}

func (s *Store) applyTopicChange(e *wire.TopicChangeEvent) {
	s.setChannelTopic(e.ServerID, e.Channel, e.Topic)
}

func (s *Store) setChannelTopic(serverID, channel, topic string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	channels := s.channels[serverID]
	for i := range channels {
		if channels[i].Name == channel {
			next := make([]wire.Channel, len(channels))
			copy(next, channels)
			next[i].Topic = topic
			s.channels[serverID] = next
			return
		}
	}
}

func (s *Store) applyChannelReorder(e *wire.ChannelReorderEvent) {
	positions := make(map[string]wire.ChannelPosition, len(e.Channels))
	for _, p := range e.Channels {
		positions[p.ID] = p
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	channels := s.channels[e.ServerID]
	next := make([]wire.Channel, len(channels))
	for i, c := range channels {
		if p, ok := positions[c.ID]; ok {
			c.Position = p.Position
			c.CategoryID = p.CategoryID
		}
		next[i] = c
	}
	sortChannelsByPosition(next)
	s.channels[e.ServerID] = next
}

func (s *Store) applySlowModeUpdate(e *wire.SlowModeUpdateEvent) {
	s.mu.Lock()
	defer s.mu.Unlock()
	channels := s.channels[e.ServerID]
	for i := range channels {
		if channels[i].Name == e.Channel {
			next := make([]wire.Channel, len(channels))
			copy(next, channels)
			next[i].SlowmodeSeconds = e.Seconds
			s.channels[e.ServerID] = next
			return
		}
	}
}

func (s *Store) applyNSFWUpdate(e *wire.NSFWUpdateEvent) {
	s.mu.Lock()
	defer s.mu.Unlock()
	channels := s.channels[e.ServerID]
	for i := range channels {
		if channels[i].Name == e.Channel {
			next := make([]wire.Channel, len(channels))
			copy(next, channels)
			next[i].IsNSFW = e.IsNSFW
			s.channels[e.ServerID] = next
			return
		}
	}
}

func (s *Store) applyCategoryList(e *wire.CategoryListEvent) {
	categories := make([]wire.Category, len(e.Categories))
	copy(categories, e.Categories)
	sortCategoriesByPositionAsc(categories)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.categories[e.ServerID] = categories
}

func (s *Store) applyCategoryUpdate(e *wire.CategoryUpdateEvent) {
	s.mu.Lock()
	defer s.mu.Unlock()
	categories := s.categories[e.ServerID]
	for i := range categories {
		if categories[i].ID == e.Category.ID {
			next := make([]wire.Category, len(categories))
			copy(next, categories)
			next[i] = e.Category
			sortCategoriesByPositionAsc(next)
			s.categories[e.ServerID] = next
			return
		}
	}
	next := make([]wire.Category, len(categories)+1)
	copy(next, categories)
	next[len(categories)] = e.Category
	sortCategoriesByPositionAsc(next)
	s.categories[e.ServerID] = next
}

func (s *Store) applyCategoryDelete(e *wire.CategoryDeleteEvent) {
	s.mu.Lock()
	defer s.mu.Unlock()
	categories := s.categories[e.ServerID]
	next := make([]wire.Category, 0, len(categories))
	for _, c := range categories {
		if c.ID != e.CategoryID {
			next = append(next, c)
		}
	}
	s.categories[e.ServerID] = next
}

// applyRoleList stores a server's role catalog sorted by position
// descending, the order used to resolve a member's effective color and
// highest-privilege role.
func (s *Store) applyRoleList(e *wire.RoleListEvent) {
	roles := make([]wire.Role, len(e.Roles))
	copy(roles, e.Roles)
	sortRolesByPositionDesc(roles)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.roles[e.ServerID] = roles
}

func (s *Store) applyRoleUpdate(e *wire.RoleUpdateEvent) {
	s.mu.Lock()
	defer s.mu.Unlock()
	roles := s.roles[e.ServerID]
	for i := range roles {
		if roles[i].ID == e.Role.ID {
			next := make([]wire.Role, len(roles))
			copy(next, roles)
			next[i] = e.Role
			sortRolesByPositionDesc(next)
			s.roles[e.ServerID] = next
			return
		}
	}
	next := make([]wire.Role, len(roles)+1)
	copy(next, roles)
	next[len(roles)] = e.Role
	sortRolesByPositionDesc(next)
	s.roles[e.ServerID] = next
}

func (s *Store) applyRoleDelete(e *wire.RoleDeleteEvent) {
	s.mu.Lock()
	defer s.mu.Unlock()
	roles := s.roles[e.ServerID]
	next := make([]wire.Role, 0, len(roles))
	for _, r := range roles {
		if r.ID != e.RoleID {
			next = append(next, r)
		}
	}
	s.roles[e.ServerID] = next
}
