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

type CommentRepository struct {
	col *mongo.Collection
}

// compile-time check: *CommentRepository must satisfy port.CommentRepository
var _ port.CommentRepository = (*CommentRepository)(nil)

func NewCommentRepository(db *mongo.Database) *CommentRepository {
	return &CommentRepository{col: db.Collection("comments")}
}

func (r *CommentRepository) Create(ctx context.Context, comment *model.Comment) error {
	log.Printf("creating database record for comment on venue #%s...", comment.Venue.Hex())

	res, err := r.col.InsertOne(ctx, comment)
	if err != nil {
		return err
	}
	if id, ok := res.InsertedID.(primitive.ObjectID); ok {
		comment.ID = id
	}
	return nil
}

func (r *CommentRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*model.Comment, error) {
	log.Printf("fetching comment #%s from the database...", id.Hex())

	var comment model.Comment
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&comment); err != nil {
		return nil, err
	}
	return &comment, nil
}

func (r *CommentRepository) List(ctx context.Context, venueID *primitive.ObjectID) ([]model.Comment, error) {
	filter := bson.M{}
	if venueID != nil {
		log.Printf("listing comments for venue #%s...", venueID.Hex())
		filter["venue"] = *venueID
	} else {
		log.Println("listing all comments...")
	}

	opts := options.Find().SetSort(bson.D{{Key: "datetime", Value: 1}})
	cur, err := r.col.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer func() { _ = cur.Close(ctx) }()

	comments := []model.Comment{}
	if err := cur.All(ctx, &comments); err != nil {
		return nil, err
	}
	return comments, nil
}

func (r *CommentRepository) Update(ctx context.Context, comment *model.Comment) error {
	log.Printf("updating database record for comment #%s...", comment.ID.Hex())

	res, err := r.col.ReplaceOne(ctx, bson.M{"_id": comment.ID}, comment)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *CommentRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	log.Printf("deleting comment #%s from the database...", id.Hex())

	_, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	return err
}
