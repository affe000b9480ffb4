package mongodb

import (
	"context"
	"log"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/persnickety/venues-ms-go/internal/model"
	"github.com/persnickety/venues-ms-go/internal/port"
)

type VenueRepository struct {
	col *mongo.Collection
}

// compile-time check: *VenueRepository must satisfy port.VenueRepository
var _ port.VenueRepository = (*VenueRepository)(nil)

func NewVenueRepository(db *mongo.Database) *VenueRepository {
	return &VenueRepository{col: db.Collection("venues")}
}

func (r *VenueRepository) Create(ctx context.Context, venue *model.Venue) error {
	log.Printf("creating database record for venue %q...", venue.Title)

	res, err := r.col.InsertOne(ctx, venue)
	if err != nil {
		return err
	}
	if id, ok := res.InsertedID.(primitive.ObjectID); ok {
		venue.ID = id
	}
	return nil
}

func (r *VenueRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*model.Venue, error) {
	log.Printf("fetching venue #%s from the database...", id.Hex())

	var venue model.Venue
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&venue); err != nil {
		return nil, err
	}
	return &venue, nil
}

func (r *VenueRepository) List(ctx context.Context) ([]model.Venue, error) {
	log.Println("listing venues...")

	opts := options.Find().SetSort(bson.D{{Key: "datetime", Value: -1}})
	cur, err := r.col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer func() { _ = cur.Close(ctx) }()

	venues := []model.Venue{}
	if err := cur.All(ctx, &venues); err != nil {
		return nil, err
	}
	return venues, nil
}

func (r *VenueRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	log.Printf("deleting venue #%s from the database...", id.Hex())

	_, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	return err
}

// AppendMedium pushes the medium ID onto the venue's media sequence in a
// single update, so concurrent uploads to the same venue cannot lose appends.
func (r *VenueRepository) AppendMedium(ctx context.Context, venueID, mediumID primitive.ObjectID) error {
	log.Printf("attaching medium #%s to venue #%s...", mediumID.Hex(), venueID.Hex())

	res, err := r.col.UpdateByID(ctx, venueID, bson.M{"$push": bson.M{"media": mediumID}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *VenueRepository) AppendComment(ctx context.Context, venueID, commentID primitive.ObjectID) error {
	log.Printf("attaching comment #%s to venue #%s...", commentID.Hex(), venueID.Hex())

	res, err := r.col.UpdateByID(ctx, venueID, bson.M{"$push": bson.M{"comments": commentID}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}
