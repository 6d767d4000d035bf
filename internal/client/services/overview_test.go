package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/tidechat/internal/client/cache"
	"github.com/dmitrijs2005/tidechat/internal/client/models"
)

func seedOverview(t *testing.T, ft *fakeTransport) (*ServerOverview, *cache.EntityCache) {
	t.Helper()
	c := cache.New()
	desc := "a place"
	c.SetServer("S1", models.Server{
		ID:          "S1",
		Name:        "Home",
		Description: &desc,
		Icon:        &models.AssetReference{ID: "ic", Tag: models.AssetTagIcons},
	})

	o, ok := NewServerOverview("S1", NewServerService(ft, c), c)
	require.True(t, ok)
	return o, c
}

func TestServerOverview_SeedsFromCache(t *testing.T) {
	o, _ := seedOverview(t, &fakeTransport{})
	require.Equal(t, "Home", o.Name)
	require.Equal(t, "a place", o.Description)
	require.False(t, o.Dirty())
	require.Equal(t, "https://files.example.com/icons/ic", o.IconURL("https://files.example.com"))
	require.Empty(t, o.BannerURL("https://files.example.com"))
}

func TestServerOverview_NotCached(t *testing.T) {
	c := cache.New()
	_, ok := NewServerOverview("missing", NewServerService(&fakeTransport{}, c), c)
	require.False(t, ok)
}

func TestServerOverview_SaveSendsOnlyChangedFields(t *testing.T) {
	ft := &fakeTransport{patchBody: []byte(`{"_id":"S1","name":"Renamed","description":"a place"}`)}
	o, c := seedOverview(t, ft)

	o.Name = "Renamed"
	require.True(t, o.Dirty())

	require.NoError(t, o.Save(context.Background()))
	require.Equal(t, map[string]any{"name": "Renamed"}, ft.gotPatchSent)

	// Baseline advanced: the buffer is clean again.
	require.False(t, o.Dirty())

	cached, _ := c.GetServer("S1")
	require.Equal(t, "Renamed", cached.Name)
}

func TestServerOverview_CleanSaveIsANoop(t *testing.T) {
	ft := &fakeTransport{}
	o, _ := seedOverview(t, ft)

	require.NoError(t, o.Save(context.Background()))
	require.Equal(t, 0, ft.patchRequests)
}

func TestServerOverview_SaveFailureKeepsBaseline(t *testing.T) {
	ft := &fakeTransport{patchBody: []byte(`{"type":"InternalError"}`)}
	o, c := seedOverview(t, ft)

	o.Description = "new words"
	require.Error(t, o.Save(context.Background()))
	require.True(t, o.Dirty())

	cached, _ := c.GetServer("S1")
	require.Equal(t, "a place", *cached.Description)
}
