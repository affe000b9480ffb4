package storage

import (
	"context"
	"fmt"
	"io"
	"log"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/persnickety/venues-ms-go/internal/port"
)

type MinioStorage struct {
	client   minioClient
	endpoint string
	useSSL   bool
}

// compile-time check: *MinioStorage must satisfy port.Storage
var _ port.Storage = (*MinioStorage)(nil)

func NewStorage(endpoint, accessKey, secretKey string, useSSL bool) (*MinioStorage, error) {
	log.Println("initialising minio client...")
	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(accessKey, secretKey, ""),
		Secure: useSSL,
	})
	if err != nil {
		return nil, mapMinioErr(err)
	}
	return &MinioStorage{client: client, endpoint: endpoint, useSSL: useSSL}, nil
}

func (s *MinioStorage) InitBucket(bucket string) error {
	ok, err := s.client.BucketExists(context.Background(), bucket)
	if err != nil {
		return mapMinioErr(err)
	}
	if !ok {
		log.Printf("bucket %q does not exist, creating it...", bucket)
		if err := s.client.MakeBucket(context.Background(), bucket, minio.MakeBucketOptions{}); err != nil {
			return mapMinioErr(err)
		}
	}
	return nil
}

func (s *MinioStorage) SaveFile(ctx context.Context, bucket, fileKey string, reader io.Reader, fileSize int64, opts map[string]string) error {
	log.Printf("saving file %q into bucket %q...", fileKey, bucket)

	putOpts := minio.PutObjectOptions{}
	if ct := opts["Content-Type"]; ct != "" {
		putOpts.ContentType = ct
	}

	_, err := s.client.PutObject(ctx, bucket, fileKey, reader, fileSize, putOpts)
	if err != nil {
		return mapMinioErr(err)
	}
	return nil
}

func (s *MinioStorage) RemoveFile(ctx context.Context, bucket, fileKey string) error {
	log.Printf("removing file %q from bucket %q...", fileKey, bucket)

	err := s.client.RemoveObject(ctx, bucket, fileKey, minio.RemoveObjectOptions{})
	return mapMinioErr(err)
}

func (s *MinioStorage) StatFile(ctx context.Context, bucket, fileKey string) (port.FileInfo, error) {
	log.Printf("getting stats on file %q in bucket %q...", fileKey, bucket)

	info, err := s.client.StatObject(ctx, bucket, fileKey, minio.StatObjectOptions{})
	if err != nil {
		return port.FileInfo{}, mapMinioErr(err)
	}
	return port.FileInfo{
		SizeBytes:   info.Size,
		ContentType: info.ContentType,
	}, nil
}

// PublicURL builds the retrievable URL of a stored object from the endpoint
// the client was configured with.
func (s *MinioStorage) PublicURL(bucket, fileKey string) string {
	scheme := "http"
	if s.useSSL {
		scheme = "https"
	}
	return fmt.Sprintf("%s://%s/%s/%s", scheme, s.endpoint, bucket, fileKey)
}
