package resource

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
)

// MinIOStore persists resource files in a MinIO bucket fixed at startup.
type MinIOStore struct {
	client *minio.Client
	bucket string
}

// NewMinIOStore constructs the MinIO-backed object store.
func NewMinIOStore(client *minio.Client, bucket string) *MinIOStore {
	return &MinIOStore{client: client, bucket: bucket}
}

// Store uploads the payload under a collision-resistant generated key and
// returns its location. The key embeds a millisecond timestamp and a random
// token so identically named uploads never collide.
func (s *MinIOStore) Store(ctx context.Context, r io.Reader, size int64, contentType, originalName string) (StoredObject, error) {
	key := generateObjectKey(originalName)

	opts := minio.PutObjectOptions{
		ContentType:        contentType,
		ContentDisposition: fmt.Sprintf("attachment; filename=%q", originalName),
	}

	if _, err := s.client.PutObject(ctx, s.bucket, key, r, size, opts); err != nil {
		return StoredObject{}, fmt.Errorf("%w: %s", ErrStorageWrite, err)
	}

	return StoredObject{
		URL:    fmt.Sprintf("%s/%s/%s", s.client.EndpointURL(), s.bucket, key),
		Key:    key,
		Bucket: s.bucket,
	}, nil
}

// Retrieve opens the stored object and reports the headers MinIO knows for it.
func (s *MinIOStore) Retrieve(ctx context.Context, key string) (*Object, error) {
	obj, err := s.client.GetObject(ctx, s.bucket, key, minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrStorageRead, err)
	}

	// GetObject is lazy; Stat performs the actual request and surfaces
	// missing objects.
	info, err := obj.Stat()
	if err != nil {
		_ = obj.Close()
		return nil, fmt.Errorf("%w: %s", ErrStorageRead, err)
	}

	return &Object{
		Body:          obj,
		ContentType:   info.ContentType,
		ContentLength: info.Size,
		LastModified:  info.LastModified,
	}, nil
}

func (*MinIOStore) Enabled() bool {
	return true
}

func generateObjectKey(originalName string) string {
	ext := filepath.Ext(originalName)
	base := strings.TrimSuffix(filepath.Base(originalName), ext)
	token := strings.ReplaceAll(uuid.NewString(), "-", "")[:13]
	return fmt.Sprintf("uploads/%d-%s-%s%s", time.Now().UnixMilli(), token, base, ext)
}
