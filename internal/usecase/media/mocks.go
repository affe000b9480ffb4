package media

import (
	"context"
	"io"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/persnickety/venues-ms-go/internal/model"
	"github.com/persnickety/venues-ms-go/internal/port"
)

type mockMediumRepo struct {
	mediumRecord *model.Medium
	listing      []model.Medium

	getErr    error
	createErr error
	updateErr error
	deleteErr error
	listErr   error

	getCalled    bool
	listCalled   bool
	created      *model.Medium
	updated      *model.Medium
	deletedID    primitive.ObjectID
	deleteCalled bool
}

func (m *mockMediumRepo) Create(ctx context.Context, medium *model.Medium) error {
	m.created = medium
	if m.createErr != nil {
		return m.createErr
	}
	medium.ID = primitive.NewObjectID()
	return nil
}
func (m *mockMediumRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*model.Medium, error) {
	m.getCalled = true
	if m.getErr != nil {
		return nil, m.getErr
	}
	if m.mediumRecord == nil {
		return nil, mongo.ErrNoDocuments
	}
	return m.mediumRecord, nil
}
func (m *mockMediumRepo) ListByVenue(ctx context.Context, venueID primitive.ObjectID) ([]model.Medium, error) {
	m.listCalled = true
	if m.listErr != nil {
		return nil, m.listErr
	}
	return m.listing, nil
}
func (m *mockMediumRepo) Update(ctx context.Context, medium *model.Medium) error {
	m.updated = medium
	return m.updateErr
}
func (m *mockMediumRepo) Delete(ctx context.Context, id primitive.ObjectID) error {
	m.deleteCalled = true
	m.deletedID = id
	return m.deleteErr
}

type mockVenueRepo struct {
	venueRecord *model.Venue

	getErr    error
	appendErr error

	getCalled      bool
	appendedVenue  primitive.ObjectID
	appendedMedium primitive.ObjectID
	appendCalled   bool
}

func (m *mockVenueRepo) Create(ctx context.Context, venue *model.Venue) error { return nil }
func (m *mockVenueRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*model.Venue, error) {
	m.getCalled = true
	if m.getErr != nil {
		return nil, m.getErr
	}
	if m.venueRecord == nil {
		return nil, mongo.ErrNoDocuments
	}
	return m.venueRecord, nil
}
func (m *mockVenueRepo) List(ctx context.Context) ([]model.Venue, error) { return nil, nil }
func (m *mockVenueRepo) Delete(ctx context.Context, id primitive.ObjectID) error {
	return nil
}
func (m *mockVenueRepo) AppendMedium(ctx context.Context, venueID, mediumID primitive.ObjectID) error {
	m.appendCalled = true
	m.appendedVenue = venueID
	m.appendedMedium = mediumID
	return m.appendErr
}
func (m *mockVenueRepo) AppendComment(ctx context.Context, venueID, commentID primitive.ObjectID) error {
	return nil
}

type mockUserRepo struct {
	userRecord *model.User
	getErr     error
	getCalled  bool
}

func (m *mockUserRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*model.User, error) {
	m.getCalled = true
	if m.getErr != nil {
		return nil, m.getErr
	}
	if m.userRecord == nil {
		return nil, mongo.ErrNoDocuments
	}
	return m.userRecord, nil
}
func (m *mockUserRepo) FindOrCreateByToken(ctx context.Context, token string) (*model.User, error) {
	return m.userRecord, m.getErr
}

type savedObject struct {
	key         string
	contentType string
	size        int64
}

type mockStorage struct {
	saveErrs   map[string]error
	removeErrs map[string]error

	saved       []savedObject
	removedKeys []string
}

func (m *mockStorage) InitBucket(bucket string) error { return nil }
func (m *mockStorage) SaveFile(ctx context.Context, bucket, key string, reader io.Reader, size int64, opts map[string]string) error {
	if err := m.saveErrs[key]; err != nil {
		return err
	}
	m.saved = append(m.saved, savedObject{key: key, contentType: opts["Content-Type"], size: size})
	return nil
}
func (m *mockStorage) RemoveFile(ctx context.Context, bucket, key string) error {
	if err := m.removeErrs[key]; err != nil {
		return err
	}
	m.removedKeys = append(m.removedKeys, key)
	return nil
}
func (m *mockStorage) StatFile(ctx context.Context, bucket, key string) (port.FileInfo, error) {
	return port.FileInfo{}, nil
}
func (m *mockStorage) PublicURL(bucket, key string) string {
	return "http://storage.test/" + bucket + "/" + key
}

type mockThumbnailer struct {
	out []byte
	err error

	called bool
	width  int
	height int
}

func (m *mockThumbnailer) Thumbnail(r io.Reader, width, height int) ([]byte, error) {
	m.called = true
	m.width = width
	m.height = height
	if m.err != nil {
		return nil, m.err
	}
	return m.out, nil
}

type mockNotifier struct {
	topic   string
	payload any
	called  bool
}

func (m *mockNotifier) Publish(topic string, payload any) {
	m.called = true
	m.topic = topic
	m.payload = payload
}

type mockCache struct {
	cached []byte

	getErr error
	delErr error

	getCalled bool
	setCalled bool
	setData   []byte
	setTTL    time.Duration
	delCalled bool
	delVenue  primitive.ObjectID
}

func (m *mockCache) GetVenueMedia(ctx context.Context, venueID primitive.ObjectID) ([]byte, error) {
	m.getCalled = true
	if m.getErr != nil {
		return nil, m.getErr
	}
	return m.cached, nil
}
func (m *mockCache) SetVenueMedia(ctx context.Context, venueID primitive.ObjectID, data []byte, ttl time.Duration) {
	m.setCalled = true
	m.setData = data
	m.setTTL = ttl
}
func (m *mockCache) DeleteVenueMedia(ctx context.Context, venueID primitive.ObjectID) error {
	m.delCalled = true
	m.delVenue = venueID
	return m.delErr
}

type mockDispatcher struct {
	err error

	called bool
	bucket string
	keys   []string
}

func (m *mockDispatcher) EnqueueCleanupObjects(ctx context.Context, bucket string, keys []string) error {
	m.called = true
	m.bucket = bucket
	m.keys = keys
	return m.err
}
