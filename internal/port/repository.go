package port

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/persnickety/venues-ms-go/internal/model"
)

// MediumRepository defines persistence operations for media records.
// Missing documents surface as mongo.ErrNoDocuments; use cases map them to
// their own not-found errors.
type MediumRepository interface {
	Create(ctx context.Context, medium *model.Medium) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*model.Medium, error)
	// ListByVenue returns the venue's media whose path is set, oldest first.
	ListByVenue(ctx context.Context, venueID primitive.ObjectID) ([]model.Medium, error)
	Update(ctx context.Context, medium *model.Medium) error
	Delete(ctx context.Context, id primitive.ObjectID) error
}

// VenueRepository defines persistence operations for venues.
type VenueRepository interface {
	Create(ctx context.Context, venue *model.Venue) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*model.Venue, error)
	List(ctx context.Context) ([]model.Venue, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
	// AppendMedium atomically appends a medium ID to the venue's media sequence.
	AppendMedium(ctx context.Context, venueID, mediumID primitive.ObjectID) error
	// AppendComment atomically appends a comment ID to the venue's comments sequence.
	AppendComment(ctx context.Context, venueID, commentID primitive.ObjectID) error
}

// CommentRepository defines persistence operations for comments.
type CommentRepository interface {
	Create(ctx context.Context, comment *model.Comment) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*model.Comment, error)
	// List returns all comments, or only a venue's comments when venueID is non-nil.
	List(ctx context.Context, venueID *primitive.ObjectID) ([]model.Comment, error)
	Update(ctx context.Context, comment *model.Comment) error
	Delete(ctx context.Context, id primitive.ObjectID) error
}

// UserRepository defines persistence operations for users.
type UserRepository interface {
	GetByID(ctx context.Context, id primitive.ObjectID) (*model.User, error)
	// FindOrCreateByToken returns the user owning the token, creating it first if needed.
	FindOrCreateByToken(ctx context.Context, token string) (*model.User, error)
}
