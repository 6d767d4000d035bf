package models

// Asset tags recognised by the files service. The tag doubles as the
// storage bucket the asset lives in.
const (
	AssetTagIcons   = "icons"
	AssetTagBanners = "banners"
)

// AssetReference points at an uploaded binary asset (icon, banner).
// The id is opaque; combined with the tag it resolves to a URL on the
// files host.
type AssetReference struct {
	ID  string `json:"_id"`
	Tag string `json:"tag"`
}

// URL resolves the reference against the files host base URL,
// e.g. base="https://files.example.com" -> ".../icons/abc123".
func (a AssetReference) URL(base string) string {
	return base + "/" + a.Tag + "/" + a.ID
}
