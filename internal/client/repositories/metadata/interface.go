// Package metadata is the local key/value table holding session state.
package metadata

import (
	"context"
	"time"
)

// Key names a stored value.
type Key string

const (
	KeyToken    Key = "token"
	KeyUsername Key = "username"
)

// Entry is a stored value and the time it was last written.
type Entry struct {
	Value     []byte
	UpdatedAt time.Time
}

// Repository stores opaque values by key. Get returns (nil, nil) for a
// missing key.
type Repository interface {
	Get(ctx context.Context, key Key) (*Entry, error)
	Set(ctx context.Context, key Key, value []byte) error
	Delete(ctx context.Context, key Key) error
	Clear(ctx context.Context) error
}
