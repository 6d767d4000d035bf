package services

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestServerPatch_AllAbsentIsEmpty(t *testing.T) {
	body := NewServerPatch().BuildBody()
	require.Empty(t, body)
}

func TestServerPatch_NameOnly(t *testing.T) {
	body := NewServerPatch().SetName("X").BuildBody()
	require.Equal(t, map[string]any{"name": "X"}, body)
}

func TestServerPatch_EmptyStringIsAValue(t *testing.T) {
	// No validation here: an explicitly set empty string is included.
	body := NewServerPatch().SetName("").BuildBody()
	require.Equal(t, map[string]any{"name": ""}, body)
}

func TestServerPatch_RemoveVerbatim(t *testing.T) {
	body := NewServerPatch().Remove(RemoveIcon, RemoveBanner).BuildBody()
	require.Equal(t, map[string]any{"remove": []string{"Icon", "Banner"}}, body)
}

func TestServerPatch_AllFields(t *testing.T) {
	body := NewServerPatch().
		SetName("n").
		SetDescription("d").
		SetIcon("asset-i").
		SetBanner("asset-b").
		Remove(RemoveDescription).
		BuildBody()

	require.Equal(t, map[string]any{
		"name":        "n",
		"description": "d",
		"icon":        "asset-i",
		"banner":      "asset-b",
		"remove":      []string{"Description"},
	}, body)
}

func TestServerPatch_UnsetIsNotEmpty(t *testing.T) {
	// "clear this field" (Remove) and "leave it unset" (no Set call) stay
	// distinguishable.
	withRemove := NewServerPatch().Remove(RemoveIcon).BuildBody()
	withoutIcon := NewServerPatch().BuildBody()

	require.Contains(t, withRemove, "remove")
	require.NotContains(t, withRemove, "icon")
	require.NotContains(t, withoutIcon, "remove")
}
