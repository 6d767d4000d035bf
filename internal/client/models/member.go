package models

// MemberID is the composite identity of a member: the pair
// (server id, user id).
type MemberID struct {
	Server string `json:"server"`
	User   string `json:"user"`
}

// Member is a user's membership record inside one server. Permission and
// role semantics are opaque to this layer.
type Member struct {
	ID       *MemberID       `json:"_id,omitempty"`
	Nickname *string         `json:"nickname,omitempty"`
	Avatar   *AssetReference `json:"avatar,omitempty"`
	Roles    []string        `json:"roles,omitempty"`
	JoinedAt string          `json:"joined_at,omitempty"`
}
