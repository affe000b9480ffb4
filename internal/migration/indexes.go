package migration

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EnsureIndexes creates the indexes the service relies on. Creation is
// idempotent; existing indexes are left untouched.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	indexes := map[string][]mongo.IndexModel{
		"media": {
			{Keys: bson.D{{Key: "venue", Value: 1}}},
		},
		"comments": {
			{Keys: bson.D{{Key: "venue", Value: 1}}},
		},
		"users": {
			{
				Keys:    bson.D{{Key: "token", Value: 1}},
				Options: options.Index().SetUnique(true),
			},
		},
	}

	for coll, models := range indexes {
		if _, err := db.Collection(coll).Indexes().CreateMany(ctx, models); err != nil {
			return fmt.Errorf("creating indexes on %q: %w", coll, err)
		}
	}
	return nil
}
