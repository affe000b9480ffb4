package media

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/persnickety/venues-ms-go/internal/model"
	"github.com/persnickety/venues-ms-go/internal/port"
)

type ingesterSrv struct {
	media      port.MediumRepository
	venues     port.VenueRepository
	strg       port.Storage
	thumb      port.Thumbnailer
	notif      port.Notifier
	cache      port.Cache
	dispatcher port.TaskDispatcher
	genKey     port.KeyGen
	bucket     string
}

// compile-time check: *ingesterSrv must satisfy port.MediumIngester
var _ port.MediumIngester = (*ingesterSrv)(nil)

// NewMediumIngester constructs the media ingestion pipeline.
func NewMediumIngester(
	media port.MediumRepository,
	venues port.VenueRepository,
	strg port.Storage,
	thumb port.Thumbnailer,
	notif port.Notifier,
	cache port.Cache,
	dispatcher port.TaskDispatcher,
	genKey port.KeyGen,
	bucket string,
) port.MediumIngester {
	return &ingesterSrv{media, venues, strg, thumb, notif, cache, dispatcher, genKey, bucket}
}

// IngestMedium runs the pipeline strictly in order: key generation, thumbnail
// resize, thumbnail upload, original upload, record creation, venue
// attachment, notification. Each step requires the previous one to succeed.
// On failure past the first upload, already-stored objects (and the record,
// once created) are compensated so the request fails as a unit.
func (s *ingesterSrv) IngestMedium(ctx context.Context, in port.IngestMediumInput) (*model.Medium, error) {
	prefix, err := s.genKey()
	if err != nil {
		return nil, err
	}

	ext, err := ExtensionFor(in.MimeType)
	if err != nil {
		return nil, err
	}
	thumbKey := ThumbKey(prefix, ext)
	originalKey := OriginalKey(prefix, ext)

	thumbBytes, err := s.thumb.Thumbnail(bytes.NewReader(in.File), ThumbWidth, ThumbHeight)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrResizeFailed, err)
	}

	if err := s.strg.SaveFile(ctx, s.bucket, thumbKey, bytes.NewReader(thumbBytes), int64(len(thumbBytes)), map[string]string{"Content-Type": "image/jpeg"}); err != nil {
		return nil, fmt.Errorf("%w: thumbnail %q: %v", ErrStorageUpload, thumbKey, err)
	}

	if err := s.strg.SaveFile(ctx, s.bucket, originalKey, bytes.NewReader(in.File), int64(len(in.File)), map[string]string{"Content-Type": in.MimeType}); err != nil {
		s.compensate(ctx, thumbKey)
		return nil, fmt.Errorf("%w: original %q: %v", ErrStorageUpload, originalKey, err)
	}

	medium := &model.Medium{
		Path:      s.strg.PublicURL(s.bucket, originalKey),
		ThumbPath: s.strg.PublicURL(s.bucket, thumbKey),
		Creator:   in.Creator,
		Venue:     in.Venue,
		Datetime:  time.Now().UTC(),
		AtVenue:   in.AtVenue,
		MimeType:  in.MimeType,
	}
	if err := s.media.Create(ctx, medium); err != nil {
		s.compensate(ctx, thumbKey, originalKey)
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}

	if err := s.venues.AppendMedium(ctx, in.Venue, medium.ID); err != nil {
		s.rollbackRecord(ctx, medium.ID)
		s.compensate(ctx, thumbKey, originalKey)
		if isNoDocuments(err) {
			return nil, ErrVenueNotFound
		}
		return nil, fmt.Errorf("%w: attaching to venue: %v", ErrPersistence, err)
	}

	if err := s.cache.DeleteVenueMedia(ctx, in.Venue); err != nil {
		log.Printf("failed invalidating media listing cache for venue #%s: %v", in.Venue.Hex(), err)
	}

	// fire-and-forget; a failed notification never fails the request
	s.notif.Publish("media-"+in.Venue.Hex(), medium)

	return medium, nil
}

// compensate removes uploaded objects left behind by a failed step. Keys that
// cannot be removed inline are handed to the cleanup task queue.
func (s *ingesterSrv) compensate(ctx context.Context, keys ...string) {
	var stale []string
	for _, key := range keys {
		if err := s.strg.RemoveFile(ctx, s.bucket, key); err != nil {
			log.Printf("failed removing orphaned object %q: %v", key, err)
			stale = append(stale, key)
		}
	}
	if len(stale) == 0 {
		return
	}
	if err := s.dispatcher.EnqueueCleanupObjects(ctx, s.bucket, stale); err != nil {
		log.Printf("failed enqueueing cleanup for %d orphaned object(s): %v", len(stale), err)
	}
}

// rollbackRecord deletes a medium created by a request whose venue attachment
// failed, so no unattached record survives the request.
func (s *ingesterSrv) rollbackRecord(ctx context.Context, id primitive.ObjectID) {
	if err := s.media.Delete(ctx, id); err != nil {
		log.Printf("failed rolling back unattached medium #%s: %v", id.Hex(), err)
	}
}

func isNoDocuments(err error) bool {
	return errors.Is(err, mongo.ErrNoDocuments)
}
