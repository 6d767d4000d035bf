package models

// User is a globally cached account record. Users are not server-scoped:
// the same user can appear as a member of many servers.
type User struct {
	ID       string          `json:"_id"`
	Username string          `json:"username"`
	Avatar   *AssetReference `json:"avatar,omitempty"`
	Online   bool            `json:"online,omitempty"`
}
