package mock

import (
	"context"
	"io"

	"github.com/persnickety/venues-ms-go/internal/port"
)

// MockStorage implements port.Storage for tests.
type MockStorage struct {
	SaveErr    error
	RemoveErrs map[string]error
	StatErr    error
	StatInfo   port.FileInfo

	InitCalled  bool
	SavedKeys   []string
	RemovedKeys []string
}

func (m *MockStorage) InitBucket(bucket string) error {
	m.InitCalled = true
	return nil
}
func (m *MockStorage) SaveFile(ctx context.Context, bucket, fileKey string, reader io.Reader, fileSize int64, opts map[string]string) error {
	if m.SaveErr != nil {
		return m.SaveErr
	}
	m.SavedKeys = append(m.SavedKeys, fileKey)
	return nil
}
func (m *MockStorage) RemoveFile(ctx context.Context, bucket, fileKey string) error {
	if err := m.RemoveErrs[fileKey]; err != nil {
		return err
	}
	m.RemovedKeys = append(m.RemovedKeys, fileKey)
	return nil
}
func (m *MockStorage) StatFile(ctx context.Context, bucket, fileKey string) (port.FileInfo, error) {
	if m.StatErr != nil {
		return port.FileInfo{}, m.StatErr
	}
	return m.StatInfo, nil
}
func (m *MockStorage) PublicURL(bucket, fileKey string) string {
	return "http://storage.test/" + bucket + "/" + fileKey
}
