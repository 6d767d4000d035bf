// Package cache holds the volatile in-memory mirror of remote entities.
//
// Three stores are keyed independently: servers by id, members by
// (server id, user id), users by id. Each store has its own lock so a
// member fetch never serializes against a server patch. Entries live for
// the lifetime of the process; there is no eviction.
package cache

import (
	"sync"

	"github.com/dmitrijs2005/tidechat/internal/client/models"
)

// EntityCache is safe for concurrent readers and writers. Write policies
// differ per store and are part of the contract:
//
//   - servers: unconditional overwrite (SetServer is the sole authoritative
//     write path, fed by successful patch responses)
//   - members: overwrite on SetMember, but fetch paths gate writes on
//     HasMember, so fetched records never clobber existing ones
//   - users: insert-if-absent only
type EntityCache struct {
	serversMu sync.RWMutex
	servers   map[string]models.Server

	membersMu sync.RWMutex
	members   map[string]map[string]models.Member

	usersMu sync.RWMutex
	users   map[string]models.User
}

func New() *EntityCache {
	return &EntityCache{
		servers: make(map[string]models.Server),
		members: make(map[string]map[string]models.Member),
		users:   make(map[string]models.User),
	}
}

// GetServer returns the cached server for id, if present.
func (c *EntityCache) GetServer(id string) (models.Server, bool) {
	c.serversMu.RLock()
	defer c.serversMu.RUnlock()
	s, ok := c.servers[id]
	return s, ok
}

// SetServer unconditionally replaces the cache entry for id. Full replace,
// never a merge.
func (c *EntityCache) SetServer(id string, s models.Server) {
	c.serversMu.Lock()
	defer c.serversMu.Unlock()
	c.servers[id] = s
}

// HasMember reports whether a member record exists for (serverID, userID).
func (c *EntityCache) HasMember(serverID, userID string) bool {
	c.membersMu.RLock()
	defer c.membersMu.RUnlock()
	_, ok := c.members[serverID][userID]
	return ok
}

// SetMember stores m under its composite identity, overwriting any
// existing record. Members without an identity are ignored.
func (c *EntityCache) SetMember(serverID string, m models.Member) {
	if m.ID == nil {
		return
	}
	c.membersMu.Lock()
	defer c.membersMu.Unlock()
	byUser, ok := c.members[serverID]
	if !ok {
		byUser = make(map[string]models.Member)
		c.members[serverID] = byUser
	}
	byUser[m.ID.User] = m
}

// GetMember returns the cached member for (serverID, userID), if present.
func (c *EntityCache) GetMember(serverID, userID string) (models.Member, bool) {
	c.membersMu.RLock()
	defer c.membersMu.RUnlock()
	m, ok := c.members[serverID][userID]
	return m, ok
}

// GetUser returns the cached user for id, if present.
func (c *EntityCache) GetUser(id string) (models.User, bool) {
	c.usersMu.RLock()
	defer c.usersMu.RUnlock()
	u, ok := c.users[id]
	return u, ok
}

// PutUserIfAbsent stores u under id only when no record exists yet.
// A later fetch never overwrites an existing user.
func (c *EntityCache) PutUserIfAbsent(id string, u models.User) {
	c.usersMu.Lock()
	defer c.usersMu.Unlock()
	if _, ok := c.users[id]; ok {
		return
	}
	c.users[id] = u
}

// ServerMembers returns a copy of the member records cached for serverID.
func (c *EntityCache) ServerMembers(serverID string) []models.Member {
	c.membersMu.RLock()
	defer c.membersMu.RUnlock()
	out := make([]models.Member, 0, len(c.members[serverID]))
	for _, m := range c.members[serverID] {
		out = append(out, m)
	}
	return out
}
