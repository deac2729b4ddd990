// Package storage is the object store for guest media.
package storage

import (
	"context"
	"io"
)

// FileStorage stores objects under a key and returns their public URL.
type FileStorage interface {
	Put(ctx context.Context, key string, reader io.Reader, size int64, contentType string) (url string, written int64, err error)
	Delete(ctx context.Context, key string) error
}
