package cache

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/persnickety/venues-ms-go/internal/port"
)

type Noop struct{}

var _ port.Cache = (*Noop)(nil)

func NewNoop() *Noop { return &Noop{} }

func (n *Noop) GetVenueMedia(ctx context.Context, venueID primitive.ObjectID) ([]byte, error) {
	return nil, nil
}

func (n *Noop) SetVenueMedia(ctx context.Context, venueID primitive.ObjectID, data []byte, ttl time.Duration) {
}

func (n *Noop) DeleteVenueMedia(ctx context.Context, venueID primitive.ObjectID) error {
	return nil
}
