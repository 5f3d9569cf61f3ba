// Package storage abstracts resume file storage behind a small streaming
// interface with two backends: the local filesystem (the default deployment)
// and any S3-compatible object store.
package storage

import (
	"context"
	"io"
	"time"
)

// PutOptions define optional parameters for storing an object. Size should be
// the exact number of bytes if known; -1 lets the backend buffer as needed.
type PutOptions struct {
	Size        int64
	ContentType string
	Metadata    map[string]string
}

// ObjectInfo describes a stored object. Key is always a slash-separated path
// relative to the storage root; callers never see absolute filesystem paths.
type ObjectInfo struct {
	Key          string
	Size         int64
	ContentType  string
	LastModified time.Time
}

// Storage is the resume store used by the submission pipeline and the orphan
// sweeper. Implementations must be safe for concurrent use.
type Storage interface {
	// Put stores an object under the given key. A failed Put must not leave
	// a partial object behind.
	Put(ctx context.Context, key string, r io.Reader, opt PutOptions) (ObjectInfo, error)
	// Get opens an object's content as a streaming reader alongside its info.
	Get(ctx context.Context, key string) (io.ReadCloser, ObjectInfo, error)
	// Delete removes an object by key. Deleting a missing object is not an error.
	Delete(ctx context.Context, key string) error
	// List returns every object whose key starts with prefix.
	List(ctx context.Context, prefix string) ([]ObjectInfo, error)
}
