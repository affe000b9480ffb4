package port

import (
	"context"
	"io"
)

// FileInfo represents metadata about a stored file.
type FileInfo struct {
	SizeBytes   int64
	ContentType string
}

// Storage defines file storage operations.
type Storage interface {
	InitBucket(bucket string) error
	SaveFile(ctx context.Context, bucket, fileKey string, reader io.Reader, fileSize int64, opts map[string]string) error
	RemoveFile(ctx context.Context, bucket, fileKey string) error
	StatFile(ctx context.Context, bucket, fileKey string) (FileInfo, error)
	// PublicURL returns the retrievable URL of a stored object.
	PublicURL(bucket, fileKey string) string
}
