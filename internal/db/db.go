package db

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Database holds the Mongo client and the database handle the service works against.
type Database struct {
	Client *mongo.Client
	DB     *mongo.Database
}

// New connects to MongoDB, verifies connectivity and returns a handle on the
// named database. It returns an error if connecting or pinging fails.
func New(uri, name string) (*Database, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		// disconnect before returning the ping error
		if dErr := client.Disconnect(ctx); dErr != nil {
			return nil, dErr
		}
		return nil, fmt.Errorf("failed to ping MongoDB: %w", err)
	}

	return &Database{Client: client, DB: client.Database(name)}, nil
}

func (d *Database) Close(ctx context.Context) error {
	return d.Client.Disconnect(ctx)
}
