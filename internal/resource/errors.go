package resource

import "errors"

var (
	// ErrNoFile signals an upload request without a file part.
	ErrNoFile = errors.New("no file uploaded")
	// ErrFileTooLarge signals that the upload exceeds the configured limit.
	ErrFileTooLarge = errors.New("file too large")
	// ErrFileTypeNotSupported signals a MIME type outside the allow-list.
	ErrFileTypeNotSupported = errors.New("file type not supported")
	// ErrResourceNotFound signals an unknown resource identifier.
	ErrResourceNotFound = errors.New("resource not found")
	// ErrFileNotFound signals a resource row without a retrievable object.
	ErrFileNotFound = errors.New("file not found")
	// ErrStorageWrite wraps object store upload failures.
	ErrStorageWrite = errors.New("storage write failed")
	// ErrStorageRead wraps object store download failures.
	ErrStorageRead = errors.New("storage read failed")
)
