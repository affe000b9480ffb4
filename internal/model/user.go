package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User is identified by an opaque client token; session handling lives elsewhere.
type User struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Token    string             `bson:"token" json:"token"`
	Name     string             `bson:"name,omitempty" json:"name,omitempty"`
	Datetime time.Time          `bson:"datetime" json:"datetime"`
}
