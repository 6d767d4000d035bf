// Package services contains the client-side coordinators: member fetching,
// server mutation, and the asset upload workflow. Services hold no entity
// state of their own; the EntityCache is the single local source of truth.
package services

import (
	"context"
	"net/url"
)

// Transport is the REST surface services need from the api client.
// *api.Client satisfies it; tests substitute fakes.
type Transport interface {
	Get(ctx context.Context, path string, query url.Values) ([]byte, error)
	Patch(ctx context.Context, path string, body any) ([]byte, error)
	Put(ctx context.Context, path string) error
	Delete(ctx context.Context, path string, query url.Values) error
}
