package storage

import (
	"context"
	"errors"
	"io"
	"time"
)

// Package storage contains the object storage abstraction for S3-compatible
// backends. Implementations stream content and never touch local disk.

// Closed set of failure kinds every implementation must map backend errors
// into. Callers test with errors.Is; the concrete backend error is folded
// into the message, never into the kind.
var (
	// ErrAuth covers credential resolution failures and credential
	// rejection by the backend.
	ErrAuth = errors.New("authentication failed")
	// ErrNotFound covers a missing bucket or object.
	ErrNotFound = errors.New("not found")
	// ErrPermission means the caller authenticated but is not allowed to
	// perform the requested action.
	ErrPermission = errors.New("permission denied")
	// ErrTransport is the catch-all for network and service failures.
	ErrTransport = errors.New("transport failure")
)

// PutObjectOptions define optional parameters for uploading objects.
// Size should be the exact number of bytes if known; if unknown, set to -1
// and the implementation will buffer/chunk as supported by the backend.
type PutObjectOptions struct {
	Size        int64
	ContentType string
	Metadata    map[string]string
}

// ObjectInfo contains basic information about an object in storage.
type ObjectInfo struct {
	Key          string
	Size         int64
	ETag         string
	ContentType  string
	LastModified time.Time
}

// Storage is the object store client used by the document service.
// A Put to an existing key overwrites it unconditionally; concurrent
// writers to one key race with last-write-wins at the backend.
type Storage interface {
	// Put uploads an object under the given key, replacing any existing
	// object at that key.
	Put(ctx context.Context, key string, r io.Reader, opt PutObjectOptions) (ObjectInfo, error)
	// Exists reports whether an object is present at the key. A missing
	// object is (false, nil), not an error.
	Exists(ctx context.Context, key string) (bool, error)
	// PresignGet returns a time-limited URL granting read-only GET access
	// to the object without credentials.
	PresignGet(ctx context.Context, key string, expiry time.Duration) (string, error)
	// Delete removes an object by key.
	Delete(ctx context.Context, key string) error
}
