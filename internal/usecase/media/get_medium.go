package media

import (
	"context"
	"fmt"
	"log"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/persnickety/venues-ms-go/internal/port"
)

type mediumGetterSrv struct {
	media  port.MediumRepository
	users  port.UserRepository
	venues port.VenueRepository
}

// compile-time check: *mediumGetterSrv must satisfy port.MediumGetter
var _ port.MediumGetter = (*mediumGetterSrv)(nil)

// NewMediumGetter constructs a MediumGetter implementation.
func NewMediumGetter(media port.MediumRepository, users port.UserRepository, venues port.VenueRepository) port.MediumGetter {
	return &mediumGetterSrv{media: media, users: users, venues: venues}
}

// GetMedium fetches one medium and populates its creator and venue. A missing
// relation leaves the field null rather than failing the whole lookup.
func (s *mediumGetterSrv) GetMedium(ctx context.Context, id primitive.ObjectID) (*port.GetMediumOutput, error) {
	medium, err := s.media.GetByID(ctx, id)
	if err != nil {
		if isNoDocuments(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}

	out := &port.GetMediumOutput{Medium: *medium}

	creator, err := s.users.GetByID(ctx, medium.Creator)
	switch {
	case err == nil:
		out.Creator = creator
	case isNoDocuments(err):
		// dangling reference, populate as null
	default:
		return nil, fmt.Errorf("%w: populating creator: %v", ErrPersistence, err)
	}

	venue, err := s.venues.GetByID(ctx, medium.Venue)
	switch {
	case err == nil:
		out.Venue = venue
	case isNoDocuments(err):
		log.Printf("medium #%s references missing venue #%s", id.Hex(), medium.Venue.Hex())
	default:
		return nil, fmt.Errorf("%w: populating venue: %v", ErrPersistence, err)
	}

	return out, nil
}
