package media

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/persnickety/venues-ms-go/internal/model"
	"github.com/persnickety/venues-ms-go/internal/port"
)

type mediumListerSrv struct {
	media  port.MediumRepository
	venues port.VenueRepository
	cache  port.Cache
}

// compile-time check: *mediumListerSrv must satisfy port.MediumLister
var _ port.MediumLister = (*mediumListerSrv)(nil)

// NewMediumLister constructs a MediumLister implementation.
func NewMediumLister(media port.MediumRepository, venues port.VenueRepository, cache port.Cache) port.MediumLister {
	return &mediumListerSrv{media: media, venues: venues, cache: cache}
}

// ListVenueMedia returns the venue's media whose path is set. The venue must
// exist; listings are cached per venue and invalidated on ingest/moderation.
func (s *mediumListerSrv) ListVenueMedia(ctx context.Context, venueID primitive.ObjectID) ([]model.Medium, error) {
	if _, err := s.venues.GetByID(ctx, venueID); err != nil {
		if isNoDocuments(err) {
			return nil, ErrVenueNotFound
		}
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}

	if raw, err := s.cache.GetVenueMedia(ctx, venueID); err != nil {
		log.Printf("media listing cache read failed for venue #%s: %v", venueID.Hex(), err)
	} else if raw != nil {
		var cached []model.Medium
		if err := json.Unmarshal(raw, &cached); err == nil {
			return cached, nil
		}
		log.Printf("dropping corrupt media listing cache entry for venue #%s", venueID.Hex())
	}

	media, err := s.media.ListByVenue(ctx, venueID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}

	if raw, err := json.Marshal(media); err == nil {
		s.cache.SetVenueMedia(ctx, venueID, raw, listCacheTTL)
	}

	return media, nil
}
