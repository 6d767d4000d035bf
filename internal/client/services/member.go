package services

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/dmitrijs2005/tidechat/internal/client/api"
	"github.com/dmitrijs2005/tidechat/internal/client/cache"
	"github.com/dmitrijs2005/tidechat/internal/client/models"
)

// MembersPage is the wire shape of a member-list read: the member records
// plus the user records they reference.
type MembersPage struct {
	Members []models.Member `json:"members"`
	Users   []models.User   `json:"users"`
}

// FetchOptions tune a member read. The zero value means: online members
// only, cache population enabled.
type FetchOptions struct {
	// IncludeOffline asks the backend for offline members as well. The wire
	// flag is the negation (exclude_offline).
	IncludeOffline bool
	// Pure skips cache population entirely; the decoded payload is returned
	// without side effects. Used for read-only probes.
	Pure bool
}

// MemberService reads member records and conditionally populates the cache.
//
// Cache policy: fetched members and users are written only if absent. A
// record that is already cached is never overwritten by a fetch, so cached
// copies can go stale until a mutation path replaces them. This favors
// cheap re-entrancy (e.g. during pagination) over freshness.
type MemberService interface {
	FetchMembers(ctx context.Context, serverID string, opts FetchOptions) (*MembersPage, error)
	FetchMember(ctx context.Context, serverID, userID string, pure bool) (*models.Member, error)
}

type memberService struct {
	transport Transport
	cache     *cache.EntityCache
}

// NewMemberService constructs a MemberService bound to the given transport
// and entity cache.
func NewMemberService(transport Transport, c *cache.EntityCache) MemberService {
	return &memberService{transport: transport, cache: c}
}

// FetchMembers reads the member list of a server. Unless opts.Pure is set,
// each member is cached if absent and each user is inserted if absent.
// A member record without an identity is skipped without failing the batch.
func (s *memberService) FetchMembers(ctx context.Context, serverID string, opts FetchOptions) (*MembersPage, error) {
	q := url.Values{}
	q.Set("exclude_offline", strconv.FormatBool(!opts.IncludeOffline))

	body, err := s.transport.Get(ctx, "/servers/"+serverID+"/members", q)
	if err != nil {
		return nil, fmt.Errorf("fetching members: %w", err)
	}

	page, err := api.Decode[MembersPage](body)
	if err != nil {
		return nil, err
	}

	if opts.Pure {
		return page, nil
	}

	for _, m := range page.Members {
		if m.ID == nil {
			continue
		}
		if !s.cache.HasMember(serverID, m.ID.User) {
			s.cache.SetMember(serverID, m)
		}
	}
	for _, u := range page.Users {
		if u.ID == "" {
			continue
		}
		s.cache.PutUserIfAbsent(u.ID, u)
	}

	return page, nil
}

// FetchMember reads a single member record. Same insert-if-absent gate as
// FetchMembers, same pure bypass.
func (s *memberService) FetchMember(ctx context.Context, serverID, userID string, pure bool) (*models.Member, error) {
	body, err := s.transport.Get(ctx, "/servers/"+serverID+"/members/"+userID, nil)
	if err != nil {
		return nil, fmt.Errorf("fetching member: %w", err)
	}

	member, err := api.Decode[models.Member](body)
	if err != nil {
		return nil, err
	}

	if !pure && member.ID != nil {
		if !s.cache.HasMember(serverID, member.ID.User) {
			s.cache.SetMember(serverID, *member)
		}
	}

	return member, nil
}
