package resource

import (
	"context"
	"fmt"
	"log"
	"mime/multipart"
)

const maxUploadSize = 50 * 1024 * 1024 // 50MB

var allowedMimeTypes = []string{
	"application/pdf",
	"text/plain",
	"video/mp4",
	"video/avi",
	"video/quicktime",
	"application/vnd.ms-powerpoint",
	"application/vnd.openxmlformats-officedocument.presentationml.presentation",
	"application/msword",
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document",
	"image/jpeg",
	"image/png",
	"image/gif",
}

func isAllowedMimeType(contentType string) bool {
	for _, allowed := range allowedMimeTypes {
		if contentType == allowed {
			return true
		}
	}
	return false
}

type metadataStore interface {
	Create(ctx context.Context, res Resource) (Resource, error)
	List(ctx context.Context) ([]Resource, error)
	Get(ctx context.Context, id int64) (Resource, error)
	Summary(ctx context.Context) (Summary, error)
}

// Service orchestrates the upload and retrieval pipelines.
type Service struct {
	repo        metadataStore
	store       ObjectStore
	maxFileSize int64
}

// NewService constructs a resource service over the metadata store and the
// object storage port selected at startup.
func NewService(repo metadataStore, store ObjectStore) *Service {
	return &Service{
		repo:        repo,
		store:       store,
		maxFileSize: maxUploadSize,
	}
}

// Upload validates the submitted metadata, conditionally stores the file
// bytes and persists the resource row. Field errors are reported together
// and nothing is stored or written when any step fails. The object write
// and the row insert are two independent best-effort steps: a stored object
// is not removed when the insert fails afterwards.
func (s *Service) Upload(ctx context.Context, fileHeader *multipart.FileHeader, form map[string]string) (Resource, []FieldError, error) {
	if fileHeader == nil {
		return Resource{}, nil, ErrNoFile
	}

	contentType := detectContentType(fileHeader)
	if !isAllowedMimeType(contentType) {
		return Resource{}, nil, ErrFileTypeNotSupported
	}
	if fileHeader.Size > s.maxFileSize {
		return Resource{}, nil, ErrFileTooLarge
	}

	input, fieldErrs := ValidateUpload(form)
	if len(fieldErrs) > 0 {
		return Resource{}, fieldErrs, nil
	}

	filePath := NoStoragePath
	var s3Key, s3Bucket *string

	if s.store.Enabled() {
		file, err := fileHeader.Open()
		if err != nil {
			return Resource{}, nil, fmt.Errorf("open upload file: %w", err)
		}
		defer file.Close()

		stored, err := s.store.Store(ctx, file, fileHeader.Size, contentType, fileHeader.Filename)
		if err != nil {
			return Resource{}, nil, err
		}
		filePath = stored.URL
		s3Key = &stored.Key
		s3Bucket = &stored.Bucket
	}

	size := fileHeader.Size
	row := Resource{
		Title:       input.Title,
		Description: input.Description,
		Category:    &input.Category,
		Language:    &input.Language,
		Provider:    &input.Provider,
		Role:        &input.Role,
		FileName:    fileHeader.Filename,
		FilePath:    filePath,
		S3Key:       s3Key,
		S3Bucket:    s3Bucket,
		FileSize:    &size,
		MimeType:    &contentType,
	}

	stored, err := s.repo.Create(ctx, row)
	if err != nil {
		if s3Key != nil {
			// accepted limitation: the object stays orphaned in the bucket
			log.Printf("resource insert failed after object store write, orphaned key %s: %v", *s3Key, err)
		}
		return Resource{}, nil, err
	}

	return stored, nil, nil
}

// List returns every stored resource.
func (s *Service) List(ctx context.Context) ([]Resource, error) {
	return s.repo.List(ctx)
}

// Get fetches a resource row and, when object storage is active and the row
// references an object, opens its byte stream. The returned Object is nil in
// no-storage mode, where only metadata is available.
func (s *Service) Get(ctx context.Context, id int64) (Resource, *Object, error) {
	res, err := s.repo.Get(ctx, id)
	if err != nil {
		return Resource{}, nil, err
	}

	if !s.store.Enabled() {
		return res, nil, nil
	}

	if res.S3Key == nil {
		return Resource{}, nil, ErrFileNotFound
	}

	obj, err := s.store.Retrieve(ctx, *res.S3Key)
	if err != nil {
		return Resource{}, nil, err
	}

	return res, obj, nil
}

// Summary computes the aggregate view over all stored resources.
func (s *Service) Summary(ctx context.Context) (Summary, error) {
	return s.repo.Summary(ctx)
}

func detectContentType(fileHeader *multipart.FileHeader) string {
	contentType := fileHeader.Header.Get("Content-Type")
	if contentType != "" {
		return contentType
	}
	return "application/octet-stream"
}
