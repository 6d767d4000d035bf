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

// ServerService issues server mutations.
//
// Contract:
//   - PatchServer: partial update; on success (and not pure) the decoded
//     server fully replaces the cache entry. This is the only authoritative
//     overwrite path for servers.
//   - AckServer: fire-and-forget acknowledgement; no cache effect.
//   - LeaveOrDeleteServer: removal request; stale cache entries are left
//     behind on purpose, eviction is the caller's concern.
type ServerService interface {
	PatchServer(ctx context.Context, serverID string, patch *ServerPatch, pure bool) (*models.Server, error)
	AckServer(ctx context.Context, serverID string) error
	LeaveOrDeleteServer(ctx context.Context, serverID string, leaveSilently bool) error
}

type serverService struct {
	transport Transport
	cache     *cache.EntityCache
}

// NewServerService constructs a ServerService bound to the given transport
// and entity cache.
func NewServerService(transport Transport, c *cache.EntityCache) ServerService {
	return &serverService{transport: transport, cache: c}
}

// PatchServer sends the sparse field map built from patch. An empty patch is
// still sent; avoiding no-op calls is the caller's job. The response is
// disambiguated per the envelope protocol and, unless pure, the decoded
// server overwrites the cached entry wholesale.
func (s *serverService) PatchServer(ctx context.Context, serverID string, patch *ServerPatch, pure bool) (*models.Server, error) {
	if patch == nil {
		patch = NewServerPatch()
	}

	body, err := s.transport.Patch(ctx, "/servers/"+serverID, patch.BuildBody())
	if err != nil {
		return nil, fmt.Errorf("patching server: %w", err)
	}

	server, err := api.Decode[models.Server](body)
	if err != nil {
		return nil, err
	}

	if !pure {
		s.cache.SetServer(serverID, *server)
	}
	return server, nil
}

// AckServer acknowledges the server. The response body carries nothing of
// interest and is not interpreted.
func (s *serverService) AckServer(ctx context.Context, serverID string) error {
	if err := s.transport.Put(ctx, "/servers/"+serverID+"/ack"); err != nil {
		return fmt.Errorf("acking server: %w", err)
	}
	return nil
}

// LeaveOrDeleteServer leaves (or deletes, when owner) the server. No cache
// cleanup happens here.
func (s *serverService) LeaveOrDeleteServer(ctx context.Context, serverID string, leaveSilently bool) error {
	q := url.Values{}
	q.Set("leave_silently", strconv.FormatBool(leaveSilently))

	if err := s.transport.Delete(ctx, "/servers/"+serverID, q); err != nil {
		return fmt.Errorf("leaving server: %w", err)
	}
	return nil
}
