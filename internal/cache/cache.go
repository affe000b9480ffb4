package cache

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/persnickety/venues-ms-go/internal/port"
)

type Cache struct {
	client *redis.Client
}

// compile-time check: *Cache must satisfy port.Cache
var _ port.Cache = (*Cache)(nil)

func NewCache(addr, password string) *Cache {
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       0,
	})

	return &Cache{client: rdb}
}

func (c *Cache) GetVenueMedia(ctx context.Context, venueID primitive.ObjectID) ([]byte, error) {
	log.Printf("getting cached media listing for venue #%s...", venueID.Hex())

	val, err := c.client.Get(ctx, getCacheKey(venueID.Hex())).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil // cache miss
	}
	if err != nil {
		return nil, fmt.Errorf("redis get failed: %w", err)
	}
	return val, nil
}

func (c *Cache) SetVenueMedia(ctx context.Context, venueID primitive.ObjectID, data []byte, ttl time.Duration) {
	log.Printf("caching media listing for venue #%s for %s...", venueID.Hex(), ttl)

	if err := c.client.Set(ctx, getCacheKey(venueID.Hex()), data, ttl).Err(); err != nil {
		log.Printf("redis set failed for venue #%s: %v", venueID.Hex(), err)
	}
}

func (c *Cache) DeleteVenueMedia(ctx context.Context, venueID primitive.ObjectID) error {
	log.Printf("invalidating cached media listing for venue #%s...", venueID.Hex())

	if err := c.client.Del(ctx, getCacheKey(venueID.Hex())).Err(); err != nil {
		return fmt.Errorf("redis del failed: %w", err)
	}
	return nil
}

func getCacheKey(venueID string) string {
	return "venue_media:" + venueID
}
