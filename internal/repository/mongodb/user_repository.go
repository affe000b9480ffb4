package mongodb

import (
	"context"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/persnickety/venues-ms-go/internal/model"
	"github.com/persnickety/venues-ms-go/internal/port"
)

type UserRepository struct {
	col *mongo.Collection
}

// compile-time check: *UserRepository must satisfy port.UserRepository
var _ port.UserRepository = (*UserRepository)(nil)

func NewUserRepository(db *mongo.Database) *UserRepository {
	return &UserRepository{col: db.Collection("users")}
}

func (r *UserRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*model.User, error) {
	log.Printf("fetching user #%s from the database...", id.Hex())

	var user model.User
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&user); err != nil {
		return nil, err
	}
	return &user, nil
}

// FindOrCreateByToken upserts on the token's unique index, so concurrent
// calls with the same token converge on one document.
func (r *UserRepository) FindOrCreateByToken(ctx context.Context, token string) (*model.User, error) {
	log.Println("finding or creating user by token...")

	filter := bson.M{"token": token}
	update := bson.M{"$setOnInsert": bson.M{
		"token":    token,
		"datetime": time.Now().UTC(),
	}}
	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var user model.User
	if err := r.col.FindOneAndUpdate(ctx, filter, update, opts).Decode(&user); err != nil {
		return nil, err
	}
	return &user, nil
}
