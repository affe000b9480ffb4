package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Venue is a place entity owning ordered collections of media and comments.
type Venue struct {
	ID          primitive.ObjectID   `bson:"_id,omitempty" json:"id"`
	Title       string               `bson:"title" json:"title"`
	Description string               `bson:"description,omitempty" json:"description,omitempty"`
	Address     string               `bson:"address,omitempty" json:"address,omitempty"`
	Latitude    float64              `bson:"latitude" json:"latitude"`
	Longitude   float64              `bson:"longitude" json:"longitude"`
	Creator     primitive.ObjectID   `bson:"creator,omitempty" json:"creator,omitempty"`
	Datetime    time.Time            `bson:"datetime" json:"datetime"`
	Media       []primitive.ObjectID `bson:"media" json:"media"`
	Comments    []primitive.ObjectID `bson:"comments" json:"comments"`
	Flags       map[string]any       `bson:"flags,omitempty" json:"flags,omitempty"`
}
