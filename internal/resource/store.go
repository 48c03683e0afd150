package resource

import (
	"context"
	"fmt"
	"io"
	"time"
)

// StoredObject identifies an uploaded object in the backing store.
type StoredObject struct {
	URL    string
	Key    string
	Bucket string
}

// Object carries a downloadable byte stream and the headers the store
// reported for it. Body is consumed exactly once by the caller.
type Object struct {
	Body          io.ReadCloser
	ContentType   string
	ContentLength int64
	LastModified  time.Time
}

// ObjectStore is the storage port for resource file content. The real
// backend and the no-storage sentinel backend are selected once at startup.
type ObjectStore interface {
	// Store uploads the payload under a freshly generated key.
	Store(ctx context.Context, r io.Reader, size int64, contentType, originalName string) (StoredObject, error)
	// Retrieve opens the object stored under key.
	Retrieve(ctx context.Context, key string) (*Object, error)
	// Enabled reports whether objects are actually persisted.
	Enabled() bool
}

// NoopStore is the object store used in local and test environments.
// Nothing is persisted; uploads record the no-storage sentinel path.
type NoopStore struct{}

// NewNoopStore constructs the sentinel backend.
func NewNoopStore() *NoopStore {
	return &NoopStore{}
}

func (*NoopStore) Store(ctx context.Context, r io.Reader, size int64, contentType, originalName string) (StoredObject, error) {
	return StoredObject{URL: NoStoragePath}, nil
}

func (*NoopStore) Retrieve(ctx context.Context, key string) (*Object, error) {
	return nil, fmt.Errorf("%w: object storage disabled", ErrStorageRead)
}

func (*NoopStore) Enabled() bool {
	return false
}
