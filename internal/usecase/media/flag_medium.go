package media

import (
	"context"
	"fmt"
	"log"

	"github.com/persnickety/venues-ms-go/internal/model"
	"github.com/persnickety/venues-ms-go/internal/port"
)

type mediumModeratorSrv struct {
	media port.MediumRepository
	cache port.Cache
}

// compile-time check: *mediumModeratorSrv must satisfy port.MediumModerator
var _ port.MediumModerator = (*mediumModeratorSrv)(nil)

// NewMediumModerator constructs a MediumModerator implementation.
func NewMediumModerator(media port.MediumRepository, cache port.Cache) port.MediumModerator {
	return &mediumModeratorSrv{media: media, cache: cache}
}

// FlagOrDeleteMedium replaces the medium's flags wholesale, or deletes the
// record unconditionally when ShouldDelete is set. Deleting an absent medium
// succeeds with a nil result.
func (s *mediumModeratorSrv) FlagOrDeleteMedium(ctx context.Context, in port.FlagMediumInput) (*model.Medium, error) {
	if in.ShouldDelete {
		return nil, s.deleteMedium(ctx, in)
	}

	medium, err := s.media.GetByID(ctx, in.ID)
	if err != nil {
		if isNoDocuments(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}

	// full replace, not a merge
	medium.Flags = in.Flags
	if err := s.media.Update(ctx, medium); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}

	s.invalidateListing(ctx, medium)
	return medium, nil
}

func (s *mediumModeratorSrv) deleteMedium(ctx context.Context, in port.FlagMediumInput) error {
	// best-effort lookup so the venue's listing cache can be invalidated
	medium, err := s.media.GetByID(ctx, in.ID)
	if err != nil && !isNoDocuments(err) {
		return fmt.Errorf("%w: %v", ErrPersistence, err)
	}

	if err := s.media.Delete(ctx, in.ID); err != nil {
		return fmt.Errorf("%w: %v", ErrPersistence, err)
	}

	if medium != nil {
		s.invalidateListing(ctx, medium)
	}
	return nil
}

func (s *mediumModeratorSrv) invalidateListing(ctx context.Context, medium *model.Medium) {
	if err := s.cache.DeleteVenueMedia(ctx, medium.Venue); err != nil {
		log.Printf("failed invalidating media listing cache for venue #%s: %v", medium.Venue.Hex(), err)
	}
}
