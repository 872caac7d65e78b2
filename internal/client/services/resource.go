package services

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"github.com/dmitrijs2005/renewadmin/internal/client/client"
	"github.com/dmitrijs2005/renewadmin/internal/client/listing"
)

// Resource is CRUD over one backend collection.
type Resource[T any] interface {
	List(ctx context.Context, q listing.Query) ([]T, error)
	Get(ctx context.Context, id int64) (*T, error)
	Create(ctx context.Context, item T) error
	Update(ctx context.Context, id int64, item T) error
	Delete(ctx context.Context, id int64) error
}

type resource[T any] struct {
	fetcher client.Fetcher
	path    string
}

func NewResource[T any](fetcher client.Fetcher, path string) Resource[T] {
	return &resource[T]{fetcher: fetcher, path: path}
}

func (r *resource[T]) item(id int64) string {
	return r.path + "/" + strconv.FormatInt(id, 10)
}

// List returns the rows of one page. Pagination metadata echoed by the
// backend is dropped; the caller already holds the query.
func (r *resource[T]) List(ctx context.Context, q listing.Query) ([]T, error) {
	var out client.ListData[T]
	err := r.fetcher.Do(ctx, client.Request{Method: http.MethodGet, Path: r.path, Query: q.Values()}, &out)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", r.path, err)
	}
	if out.Data == nil {
		out.Data = []T{}
	}
	return out.Data, nil
}

func (r *resource[T]) Get(ctx context.Context, id int64) (*T, error) {
	var out T
	if err := r.fetcher.Do(ctx, client.Request{Method: http.MethodGet, Path: r.item(id)}, &out); err != nil {
		return nil, fmt.Errorf("get %s: %w", r.item(id), err)
	}
	return &out, nil
}

func (r *resource[T]) Create(ctx context.Context, item T) error {
	if err := r.fetcher.Do(ctx, client.Request{Method: http.MethodPost, Path: r.path, Body: item}, nil); err != nil {
		return fmt.Errorf("create %s: %w", r.path, err)
	}
	return nil
}

func (r *resource[T]) Update(ctx context.Context, id int64, item T) error {
	if err := r.fetcher.Do(ctx, client.Request{Method: http.MethodPut, Path: r.item(id), Body: item}, nil); err != nil {
		return fmt.Errorf("update %s: %w", r.item(id), err)
	}
	return nil
}

func (r *resource[T]) Delete(ctx context.Context, id int64) error {
	if err := r.fetcher.Do(ctx, client.Request{Method: http.MethodDelete, Path: r.item(id)}, nil); err != nil {
		return fmt.Errorf("delete %s: %w", r.item(id), err)
	}
	return nil
}
