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

type MediumRepository struct {
	col *mongo.Collection
}

// compile-time check: *MediumRepository must satisfy port.MediumRepository
var _ port.MediumRepository = (*MediumRepository)(nil)

func NewMediumRepository(db *mongo.Database) *MediumRepository {
	return &MediumRepository{col: db.Collection("media")}
}

func (r *MediumRepository) Create(ctx context.Context, medium *model.Medium) error {
	log.Printf("creating database record for medium at %q...", medium.Path)

	res, err := r.col.InsertOne(ctx, medium)
	if err != nil {
		return err
	}
	if id, ok := res.InsertedID.(primitive.ObjectID); ok {
		medium.ID = id
	}
	return nil
}

func (r *MediumRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*model.Medium, error) {
	log.Printf("fetching medium #%s from the database...", id.Hex())

	var medium model.Medium
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&medium); err != nil {
		return nil, err
	}
	return &medium, nil
}

// ListByVenue only returns media whose path is set; records whose upload never
// completed stay invisible to listings.
func (r *MediumRepository) ListByVenue(ctx context.Context, venueID primitive.ObjectID) ([]model.Medium, error) {
	log.Printf("listing media for venue #%s...", venueID.Hex())

	filter := bson.M{
		"venue": venueID,
		"path":  bson.M{"$exists": true, "$ne": ""},
	}
	opts := options.Find().SetSort(bson.D{{Key: "datetime", Value: 1}})

	cur, err := r.col.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer func() { _ = cur.Close(ctx) }()

	media := []model.Medium{}
	if err := cur.All(ctx, &media); err != nil {
		return nil, err
	}
	return media, nil
}

func (r *MediumRepository) Update(ctx context.Context, medium *model.Medium) error {
	log.Printf("updating database record for medium #%s...", medium.ID.Hex())

	res, err := r.col.ReplaceOne(ctx, bson.M{"_id": medium.ID}, medium)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

// Delete is unconditional: removing an absent medium is not an error.
func (r *MediumRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	log.Printf("deleting medium #%s from the database...", id.Hex())

	_, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	return err
}
