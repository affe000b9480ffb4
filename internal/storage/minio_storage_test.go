package storage

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"

	"github.com/minio/minio-go/v7"

	"github.com/persnickety/venues-ms-go/internal/usecase/media"
)

type fakeMinio struct {
	bucketExists bool
	existsErr    error
	makeErr      error
	putErr       error
	removeErr    error
	statInfo     minio.ObjectInfo
	statErr      error

	madeBucket string
	putBucket  string
	putKey     string
	putSize    int64
	putOpts    minio.PutObjectOptions
}

func (f *fakeMinio) BucketExists(ctx context.Context, bucket string) (bool, error) {
	return f.bucketExists, f.existsErr
}

func (f *fakeMinio) MakeBucket(ctx context.Context, bucket string, opts minio.MakeBucketOptions) error {
	f.madeBucket = bucket
	return f.makeErr
}

func (f *fakeMinio) StatObject(ctx context.Context, bucket, key string, opts minio.StatObjectOptions) (minio.ObjectInfo, error) {
	return f.statInfo, f.statErr
}

func (f *fakeMinio) RemoveObject(ctx context.Context, bucket, key string, opts minio.RemoveObjectOptions) error {
	return f.removeErr
}

func (f *fakeMinio) PutObject(ctx context.Context, bucket, key string, r io.Reader, size int64, opts minio.PutObjectOptions) (minio.UploadInfo, error) {
	f.putBucket = bucket
	f.putKey = key
	f.putSize = size
	f.putOpts = opts
	return minio.UploadInfo{}, f.putErr
}

func TestInitBucket_CreatesMissing(t *testing.T) {
	f := &fakeMinio{bucketExists: false}
	s := &MinioStorage{client: f, endpoint: "localhost:9000"}

	if err := s.InitBucket("media"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if f.madeBucket != "media" {
		t.Errorf("madeBucket = %q; want %q", f.madeBucket, "media")
	}
}

func TestInitBucket_ExistingSkipsCreate(t *testing.T) {
	f := &fakeMinio{bucketExists: true}
	s := &MinioStorage{client: f, endpoint: "localhost:9000"}

	if err := s.InitBucket("media"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if f.madeBucket != "" {
		t.Errorf("MakeBucket called for existing bucket %q", f.madeBucket)
	}
}

func TestSaveFile_PassesContentType(t *testing.T) {
	f := &fakeMinio{}
	s := &MinioStorage{client: f, endpoint: "localhost:9000"}

	data := []byte("img-bytes")
	err := s.SaveFile(context.Background(), "media", "abcthumb.jpg", bytes.NewReader(data), int64(len(data)), map[string]string{"Content-Type": "image/jpeg"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if f.putBucket != "media" || f.putKey != "abcthumb.jpg" {
		t.Errorf("put = (%q, %q); want (media, abcthumb.jpg)", f.putBucket, f.putKey)
	}
	if f.putSize != int64(len(data)) {
		t.Errorf("putSize = %d; want %d", f.putSize, len(data))
	}
	if f.putOpts.ContentType != "image/jpeg" {
		t.Errorf("ContentType = %q; want image/jpeg", f.putOpts.ContentType)
	}
}

func TestSaveFile_MapsUploadError(t *testing.T) {
	f := &fakeMinio{putErr: errors.New("network down")}
	s := &MinioStorage{client: f, endpoint: "localhost:9000"}

	err := s.SaveFile(context.Background(), "media", "k", bytes.NewReader(nil), 0, nil)
	if !errors.Is(err, media.ErrInternal) {
		t.Fatalf("expected ErrInternal, got %v", err)
	}
}

func TestStatFile_MapsNoSuchKey(t *testing.T) {
	f := &fakeMinio{statErr: minio.ErrorResponse{Code: "NoSuchKey"}}
	s := &MinioStorage{client: f, endpoint: "localhost:9000"}

	_, err := s.StatFile(context.Background(), "media", "missing")
	if !errors.Is(err, media.ErrObjectNotFound) {
		t.Fatalf("expected ErrObjectNotFound, got %v", err)
	}
}

func TestPublicURL(t *testing.T) {
	s := &MinioStorage{endpoint: "cdn.example.com:9000"}
	if got, want := s.PublicURL("media", "abc.jpg"), "http://cdn.example.com:9000/media/abc.jpg"; got != want {
		t.Errorf("PublicURL = %q; want %q", got, want)
	}

	s.useSSL = true
	if got, want := s.PublicURL("media", "abc.jpg"), "https://cdn.example.com:9000/media/abc.jpg"; got != want {
		t.Errorf("PublicURL ssl = %q; want %q", got, want)
	}
}
