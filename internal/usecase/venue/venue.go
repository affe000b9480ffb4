package venue

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/persnickety/venues-ms-go/internal/model"
	"github.com/persnickety/venues-ms-go/internal/port"
)

var (
	// ErrNotFound means no venue exists under the given ID.
	ErrNotFound = errors.New("venue not found")
	// ErrPersistence wraps database failures.
	ErrPersistence = errors.New("persistence failure")
)

type venueSrv struct {
	venues port.VenueRepository
	notif  port.Notifier
}

// compile-time check: *venueSrv must satisfy port.VenueService
var _ port.VenueService = (*venueSrv)(nil)

// NewVenueService constructs a VenueService implementation.
func NewVenueService(venues port.VenueRepository, notif port.Notifier) port.VenueService {
	return &venueSrv{venues: venues, notif: notif}
}

func (s *venueSrv) CreateVenue(ctx context.Context, in port.CreateVenueInput) (*model.Venue, error) {
	venue := &model.Venue{
		Title:       in.Title,
		Description: in.Description,
		Address:     in.Address,
		Latitude:    in.Latitude,
		Longitude:   in.Longitude,
		Creator:     in.Creator,
		Datetime:    time.Now().UTC(),
		Media:       []primitive.ObjectID{},
		Comments:    []primitive.ObjectID{},
	}
	if err := s.venues.Create(ctx, venue); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}

	s.notif.Publish("venues", venue)

	return venue, nil
}

func (s *venueSrv) GetVenue(ctx context.Context, id primitive.ObjectID) (*model.Venue, error) {
	venue, err := s.venues.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	return venue, nil
}

func (s *venueSrv) ListVenues(ctx context.Context) ([]model.Venue, error) {
	venues, err := s.venues.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	return venues, nil
}

// DeleteVenue removes the venue record. Media and comments keep their
// documents; their venue reference goes dangling and reads populate it null.
func (s *venueSrv) DeleteVenue(ctx context.Context, id primitive.ObjectID) error {
	if err := s.venues.Delete(ctx, id); err != nil {
		return fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	return nil
}
