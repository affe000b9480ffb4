package comment

import (
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

var (
	// ErrNotFound means no comment exists under the given ID.
	ErrNotFound = errors.New("comment not found")
	// ErrVenueNotFound means the target venue does not exist.
	ErrVenueNotFound = errors.New("venue not found")
	// ErrPersistence wraps database failures.
	ErrPersistence = errors.New("persistence failure")
)

type commentSrv struct {
	comments port.CommentRepository
	venues   port.VenueRepository
	notif    port.Notifier
}

// compile-time check: *commentSrv must satisfy port.CommentService
var _ port.CommentService = (*commentSrv)(nil)

// NewCommentService constructs a CommentService implementation.
func NewCommentService(comments port.CommentRepository, venues port.VenueRepository, notif port.Notifier) port.CommentService {
	return &commentSrv{comments: comments, venues: venues, notif: notif}
}

// CreateComment inserts the comment, attaches it atomically to its venue and
// broadcasts it. A failed attachment rolls the insert back.
func (s *commentSrv) CreateComment(ctx context.Context, in port.CreateCommentInput) (*model.Comment, error) {
	comment := &model.Comment{
		Content:  in.Content,
		Creator:  in.Creator,
		Venue:    in.Venue,
		Datetime: time.Now().UTC(),
		AtVenue:  in.AtVenue,
		Color:    in.Color,
		Icon:     in.Icon,
	}
	if err := s.comments.Create(ctx, comment); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}

	if err := s.venues.AppendComment(ctx, in.Venue, comment.ID); err != nil {
		if delErr := s.comments.Delete(ctx, comment.ID); delErr != nil {
			log.Printf("failed rolling back unattached comment #%s: %v", comment.ID.Hex(), delErr)
		}
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrVenueNotFound
		}
		return nil, fmt.Errorf("%w: attaching to venue: %v", ErrPersistence, err)
	}

	s.notif.Publish("comment-"+in.Venue.Hex(), comment)

	return comment, nil
}

func (s *commentSrv) GetComment(ctx context.Context, id primitive.ObjectID) (*model.Comment, error) {
	comment, err := s.comments.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	return comment, nil
}

func (s *commentSrv) ListComments(ctx context.Context, venueID *primitive.ObjectID) ([]model.Comment, error) {
	comments, err := s.comments.List(ctx, venueID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	return comments, nil
}

// FlagOrDeleteComment replaces the comment's flags wholesale, or deletes the
// record unconditionally when ShouldDelete is set.
func (s *commentSrv) FlagOrDeleteComment(ctx context.Context, in port.FlagCommentInput) (*model.Comment, error) {
	if in.ShouldDelete {
		if err := s.comments.Delete(ctx, in.ID); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
		}
		return nil, nil
	}

	comment, err := s.comments.GetByID(ctx, in.ID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}

	comment.Flags = in.Flags
	if err := s.comments.Update(ctx, comment); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	return comment, nil
}
