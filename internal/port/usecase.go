package port

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/persnickety/venues-ms-go/internal/model"
)

// KeyGen draws a fresh random storage key prefix. It fails only when the
// underlying entropy source errors.
type KeyGen func() (string, error)

// MediumIngester runs the full media ingestion pipeline: thumbnail, uploads,
// record creation, venue attachment and notification.
type MediumIngester interface {
	IngestMedium(ctx context.Context, in IngestMediumInput) (*model.Medium, error)
}
type IngestMediumInput struct {
	File     []byte
	MimeType string
	Creator  primitive.ObjectID
	Venue    primitive.ObjectID
	AtVenue  bool
}

// MediumGetter retrieves one medium with its creator and venue expanded.
type MediumGetter interface {
	GetMedium(ctx context.Context, id primitive.ObjectID) (*GetMediumOutput, error)
}

// GetMediumOutput is a medium with its relations populated. The named Creator
// and Venue fields shadow the embedded reference IDs in the JSON output.
type GetMediumOutput struct {
	model.Medium
	Creator *model.User  `json:"creator"`
	Venue   *model.Venue `json:"venue"`
}

// MediumLister returns a venue's media whose path is set.
type MediumLister interface {
	ListVenueMedia(ctx context.Context, venueID primitive.ObjectID) ([]model.Medium, error)
}

// MediumModerator either replaces a medium's flags or deletes the record.
type MediumModerator interface {
	FlagOrDeleteMedium(ctx context.Context, in FlagMediumInput) (*model.Medium, error)
}
type FlagMediumInput struct {
	ID           primitive.ObjectID
	Flags        map[string]any
	ShouldDelete bool
}

// VenueService covers venue CRUD.
type VenueService interface {
	CreateVenue(ctx context.Context, in CreateVenueInput) (*model.Venue, error)
	GetVenue(ctx context.Context, id primitive.ObjectID) (*model.Venue, error)
	ListVenues(ctx context.Context) ([]model.Venue, error)
	DeleteVenue(ctx context.Context, id primitive.ObjectID) error
}
type CreateVenueInput struct {
	Title       string
	Description string
	Address     string
	Latitude    float64
	Longitude   float64
	Creator     primitive.ObjectID
}

// CommentService covers comment CRUD and moderation.
type CommentService interface {
	CreateComment(ctx context.Context, in CreateCommentInput) (*model.Comment, error)
	GetComment(ctx context.Context, id primitive.ObjectID) (*model.Comment, error)
	ListComments(ctx context.Context, venueID *primitive.ObjectID) ([]model.Comment, error)
	FlagOrDeleteComment(ctx context.Context, in FlagCommentInput) (*model.Comment, error)
}
type CreateCommentInput struct {
	Content string
	Creator primitive.ObjectID
	Venue   primitive.ObjectID
	AtVenue bool
	Color   string
	Icon    string
}
type FlagCommentInput struct {
	ID           primitive.ObjectID
	Flags        map[string]any
	ShouldDelete bool
}

// UserService covers the token-identified user surface.
type UserService interface {
	FindOrCreateUser(ctx context.Context, token string) (*model.User, error)
	GetUser(ctx context.Context, id primitive.ObjectID) (*model.User, error)
}
