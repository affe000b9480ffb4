package mock

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/persnickety/venues-ms-go/internal/model"
	"github.com/persnickety/venues-ms-go/internal/port"
)

// MockMediumIngester implements port.MediumIngester for tests.
type MockMediumIngester struct {
	Out    *model.Medium
	Err    error
	Called bool
	In     port.IngestMediumInput
}

func (m *MockMediumIngester) IngestMedium(ctx context.Context, in port.IngestMediumInput) (*model.Medium, error) {
	m.Called = true
	m.In = in
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Out, nil
}

// MockMediumGetter implements port.MediumGetter for tests.
type MockMediumGetter struct {
	Out    *port.GetMediumOutput
	Err    error
	Called bool
	ID     primitive.ObjectID
}

func (m *MockMediumGetter) GetMedium(ctx context.Context, id primitive.ObjectID) (*port.GetMediumOutput, error) {
	m.Called = true
	m.ID = id
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Out, nil
}

// MockMediumLister implements port.MediumLister for tests.
type MockMediumLister struct {
	Out    []model.Medium
	Err    error
	Called bool
	Venue  primitive.ObjectID
}

func (m *MockMediumLister) ListVenueMedia(ctx context.Context, venueID primitive.ObjectID) ([]model.Medium, error) {
	m.Called = true
	m.Venue = venueID
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Out, nil
}

// MockMediumModerator implements port.MediumModerator for tests.
type MockMediumModerator struct {
	Out    *model.Medium
	Err    error
	Called bool
	In     port.FlagMediumInput
}

func (m *MockMediumModerator) FlagOrDeleteMedium(ctx context.Context, in port.FlagMediumInput) (*model.Medium, error) {
	m.Called = true
	m.In = in
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Out, nil
}

// MockVenueService implements port.VenueService for tests.
type MockVenueService struct {
	Venue   *model.Venue
	Listing []model.Venue
	Err     error

	CreateCalled bool
	CreateIn     port.CreateVenueInput
	GetCalled    bool
	ListCalled   bool
	DeleteCalled bool
	ID           primitive.ObjectID
}

func (m *MockVenueService) CreateVenue(ctx context.Context, in port.CreateVenueInput) (*model.Venue, error) {
	m.CreateCalled = true
	m.CreateIn = in
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Venue, nil
}
func (m *MockVenueService) GetVenue(ctx context.Context, id primitive.ObjectID) (*model.Venue, error) {
	m.GetCalled = true
	m.ID = id
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Venue, nil
}
func (m *MockVenueService) ListVenues(ctx context.Context) ([]model.Venue, error) {
	m.ListCalled = true
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Listing, nil
}
func (m *MockVenueService) DeleteVenue(ctx context.Context, id primitive.ObjectID) error {
	m.DeleteCalled = true
	m.ID = id
	return m.Err
}

// MockCommentService implements port.CommentService for tests.
type MockCommentService struct {
	Comment *model.Comment
	Listing []model.Comment
	Err     error

	CreateCalled bool
	CreateIn     port.CreateCommentInput
	GetCalled    bool
	ListCalled   bool
	ListVenue    *primitive.ObjectID
	FlagCalled   bool
	FlagIn       port.FlagCommentInput
	ID           primitive.ObjectID
}

func (m *MockCommentService) CreateComment(ctx context.Context, in port.CreateCommentInput) (*model.Comment, error) {
	m.CreateCalled = true
	m.CreateIn = in
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Comment, nil
}
func (m *MockCommentService) GetComment(ctx context.Context, id primitive.ObjectID) (*model.Comment, error) {
	m.GetCalled = true
	m.ID = id
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Comment, nil
}
func (m *MockCommentService) ListComments(ctx context.Context, venueID *primitive.ObjectID) ([]model.Comment, error) {
	m.ListCalled = true
	m.ListVenue = venueID
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Listing, nil
}
func (m *MockCommentService) FlagOrDeleteComment(ctx context.Context, in port.FlagCommentInput) (*model.Comment, error) {
	m.FlagCalled = true
	m.FlagIn = in
	if m.Err != nil {
		return nil, m.Err
	}
	if in.ShouldDelete {
		return nil, nil
	}
	return m.Comment, nil
}

// MockUserService implements port.UserService for tests.
type MockUserService struct {
	User *model.User
	Err  error

	FindOrCreateCalled bool
	Token              string
	GetCalled          bool
	ID                 primitive.ObjectID
}

func (m *MockUserService) FindOrCreateUser(ctx context.Context, token string) (*model.User, error) {
	m.FindOrCreateCalled = true
	m.Token = token
	if m.Err != nil {
		return nil, m.Err
	}
	return m.User, nil
}
func (m *MockUserService) GetUser(ctx context.Context, id primitive.ObjectID) (*model.User, error) {
	m.GetCalled = true
	m.ID = id
	if m.Err != nil {
		return nil, m.Err
	}
	return m.User, nil
}
