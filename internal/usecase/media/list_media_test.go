package media

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/persnickety/venues-ms-go/internal/model"
)

func TestListVenueMedia_VenueMissing(t *testing.T) {
	media := &mockMediumRepo{}
	svc := NewMediumLister(media, &mockVenueRepo{}, &mockCache{})

	_, err := svc.ListVenueMedia(context.Background(), primitive.NewObjectID())
	if !errors.Is(err, ErrVenueNotFound) {
		t.Fatalf("expected ErrVenueNotFound, got %v", err)
	}
	if media.listCalled {
		t.Error("listing must not run for a missing venue")
	}
}

func TestListVenueMedia_VenueLookupError(t *testing.T) {
	venues := &mockVenueRepo{getErr: errors.New("db fail")}
	svc := NewMediumLister(&mockMediumRepo{}, venues, &mockCache{})

	_, err := svc.ListVenueMedia(context.Background(), primitive.NewObjectID())
	if !errors.Is(err, ErrPersistence) {
		t.Fatalf("expected ErrPersistence, got %v", err)
	}
}

func TestListVenueMedia_CacheMissThenFill(t *testing.T) {
	venueID := primitive.NewObjectID()
	listing := []model.Medium{
		{ID: primitive.NewObjectID(), Path: "http://storage.test/medias/a.jpg", Venue: venueID},
		{ID: primitive.NewObjectID(), Path: "http://storage.test/medias/b.jpg", Venue: venueID},
	}
	media := &mockMediumRepo{listing: listing}
	cache := &mockCache{}
	svc := NewMediumLister(media, &mockVenueRepo{venueRecord: &model.Venue{ID: venueID}}, cache)

	out, err := svc.ListVenueMedia(context.Background(), venueID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out) != 2 {
		t.Fatalf("expected 2 media, got %d", len(out))
	}
	if !media.listCalled {
		t.Error("repository should be queried on cache miss")
	}
	if !cache.setCalled {
		t.Fatal("listing should be cached after a miss")
	}
	if cache.setTTL != listCacheTTL {
		t.Errorf("cache TTL = %v, want %v", cache.setTTL, listCacheTTL)
	}
	var cached []model.Medium
	if err := json.Unmarshal(cache.setData, &cached); err != nil || len(cached) != 2 {
		t.Errorf("cached payload should round-trip, got %q (%v)", cache.setData, err)
	}
}

func TestListVenueMedia_CacheHitSkipsRepo(t *testing.T) {
	venueID := primitive.NewObjectID()
	cachedListing := []model.Medium{{ID: primitive.NewObjectID(), Path: "http://storage.test/medias/a.jpg"}}
	raw, _ := json.Marshal(cachedListing)
	media := &mockMediumRepo{}
	svc := NewMediumLister(media, &mockVenueRepo{venueRecord: &model.Venue{ID: venueID}}, &mockCache{cached: raw})

	out, err := svc.ListVenueMedia(context.Background(), venueID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if media.listCalled {
		t.Error("repository must not be queried on cache hit")
	}
	if len(out) != 1 || out[0].ID != cachedListing[0].ID {
		t.Errorf("cached listing should be returned, got %+v", out)
	}
}

func TestListVenueMedia_CorruptCacheEntryFallsThrough(t *testing.T) {
	venueID := primitive.NewObjectID()
	media := &mockMediumRepo{listing: []model.Medium{}}
	svc := NewMediumLister(media, &mockVenueRepo{venueRecord: &model.Venue{ID: venueID}}, &mockCache{cached: []byte("{not json")})

	out, err := svc.ListVenueMedia(context.Background(), venueID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !media.listCalled {
		t.Error("repository should be queried when the cache entry is corrupt")
	}
	if out == nil || len(out) != 0 {
		t.Errorf("expected empty listing, got %v", out)
	}
}

func TestListVenueMedia_RepoError(t *testing.T) {
	venueID := primitive.NewObjectID()
	media := &mockMediumRepo{listErr: errors.New("db fail")}
	svc := NewMediumLister(media, &mockVenueRepo{venueRecord: &model.Venue{ID: venueID}}, &mockCache{})

	_, err := svc.ListVenueMedia(context.Background(), venueID)
	if !errors.Is(err, ErrPersistence) {
		t.Fatalf("expected ErrPersistence, got %v", err)
	}
}
