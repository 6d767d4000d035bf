// Package models defines the remotely-sourced entity types mirrored by the
// client cache: servers, members and users, plus asset references.
package models

// Server is a chat server as returned by the backend. A successful decode
// always yields a fully constructed value; the cache never stores partial
// servers.
type Server struct {
	ID          string          `json:"_id"`
	Owner       string          `json:"owner,omitempty"`
	Name        string          `json:"name"`
	Description *string         `json:"description,omitempty"`
	Icon        *AssetReference `json:"icon,omitempty"`
	Banner      *AssetReference `json:"banner,omitempty"`
}
