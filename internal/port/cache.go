package port

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Cache provides caching for per-venue media listings.
type Cache interface {
	// GetVenueMedia returns the cached JSON listing, or nil on a miss.
	GetVenueMedia(ctx context.Context, venueID primitive.ObjectID) ([]byte, error)
	SetVenueMedia(ctx context.Context, venueID primitive.ObjectID, data []byte, ttl time.Duration)
	DeleteVenueMedia(ctx context.Context, venueID primitive.ObjectID) error
}
