package services

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/tidechat/internal/client/cache"
	"github.com/dmitrijs2005/tidechat/internal/client/models"
)

// ServerOverview is an edit buffer for a server's name and description.
// It tracks edits against a baseline taken from the cache and submits a
// sparse patch containing only the fields that actually changed. On a
// successful save the baseline moves forward to the submitted values.
type ServerOverview struct {
	serverID string
	servers  ServerService
	cache    *cache.EntityCache

	baseline models.Server

	Name        string
	Description string
}

// NewServerOverview seeds an editor from the cached server. The second
// return is false when the server is not cached yet.
func NewServerOverview(serverID string, servers ServerService, c *cache.EntityCache) (*ServerOverview, bool) {
	server, ok := c.GetServer(serverID)
	if !ok {
		return nil, false
	}

	o := &ServerOverview{
		serverID: serverID,
		servers:  servers,
		cache:    c,
		baseline: server,
		Name:     server.Name,
	}
	if server.Description != nil {
		o.Description = *server.Description
	}
	return o, true
}

// Dirty reports whether the buffer differs from the baseline.
func (o *ServerOverview) Dirty() bool {
	baseDesc := ""
	if o.baseline.Description != nil {
		baseDesc = *o.baseline.Description
	}
	return o.Name != o.baseline.Name || o.Description != baseDesc
}

// Save submits changed fields only. Unchanged fields stay out of the patch
// entirely. A clean buffer saves nothing and returns nil.
func (o *ServerOverview) Save(ctx context.Context) error {
	patch := NewServerPatch()
	changed := false

	if o.Name != o.baseline.Name {
		patch.SetName(o.Name)
		changed = true
	}
	baseDesc := ""
	if o.baseline.Description != nil {
		baseDesc = *o.baseline.Description
	}
	if o.Description != baseDesc {
		patch.SetDescription(o.Description)
		changed = true
	}
	if !changed {
		return nil
	}

	server, err := o.servers.PatchServer(ctx, o.serverID, patch, false)
	if err != nil {
		return fmt.Errorf("saving server overview: %w", err)
	}

	o.baseline = *server
	return nil
}

// IconURL resolves the baseline icon against the files host, if set.
func (o *ServerOverview) IconURL(filesBase string) string {
	if o.baseline.Icon == nil {
		return ""
	}
	return o.baseline.Icon.URL(filesBase)
}

// BannerURL resolves the baseline banner against the files host, if set.
func (o *ServerOverview) BannerURL(filesBase string) string {
	if o.baseline.Banner == nil {
		return ""
	}
	return o.baseline.Banner.URL(filesBase)
}
