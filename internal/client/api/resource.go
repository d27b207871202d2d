package api

import (
	"context"
	"fmt"
	"net/http"
)

// Resource is the generic per-collection contract every feature uses: list,
// get, create, patch and delete against /<path> and /<path>/<id>.
type Resource[T any] struct {
	client *Client
	path   string
}

func newResource[T any](c *Client, path string) *Resource[T] {
	return &Resource[T]{client: c, path: path}
}

func (r *Resource[T]) List(ctx context.Context) ([]T, error) {
	var items []T
	if err := r.client.do(ctx, http.MethodGet, r.path, nil, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *Resource[T]) Get(ctx context.Context, id int64) (*T, error) {
	var item T
	if err := r.client.do(ctx, http.MethodGet, fmt.Sprintf("%s/%d", r.path, id), nil, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

// Create posts payload and returns the created record.
func (r *Resource[T]) Create(ctx context.Context, payload any) (*T, error) {
	var item T
	if err := r.client.do(ctx, http.MethodPost, r.path, payload, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

// Update patches the fields present in payload and returns the updated
// record.
func (r *Resource[T]) Update(ctx context.Context, id int64, payload any) (*T, error) {
	var item T
	if err := r.client.do(ctx, http.MethodPatch, fmt.Sprintf("%s/%d", r.path, id), payload, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *Resource[T]) Delete(ctx context.Context, id int64) error {
	return r.client.do(ctx, http.MethodDelete, fmt.Sprintf("%s/%d", r.path, id), nil, nil)
}

// Letters returns the /letters resource.
func (c *Client) Letters() *Resource[Letter] {
	return newResource[Letter](c, "/letters")
}

// TimeCapsules returns the /time_capsules resource.
func (c *Client) TimeCapsules() *Resource[TimeCapsule] {
	return newResource[TimeCapsule](c, "/time_capsules")
}

// UserNotes returns the /user_notes resource.
func (c *Client) UserNotes() *Resource[UserNote] {
	return newResource[UserNote](c, "/user_notes")
}
