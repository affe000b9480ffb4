package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Comment struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Content  string             `bson:"content" json:"content"`
	Creator  primitive.ObjectID `bson:"creator" json:"creator"`
	Venue    primitive.ObjectID `bson:"venue" json:"venue"`
	Datetime time.Time          `bson:"datetime" json:"datetime"`
	AtVenue  bool               `bson:"atVenue" json:"atVenue"`
	Color    string             `bson:"color,omitempty" json:"color,omitempty"`
	Icon     string             `bson:"icon,omitempty" json:"icon,omitempty"`
	Flags    map[string]any     `bson:"flags,omitempty" json:"flags,omitempty"`
}
