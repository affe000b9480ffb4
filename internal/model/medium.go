package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Medium is one uploaded photo asset with its derived thumbnail.
// Path and ThumbPath are set once by the ingest pipeline and never updated;
// Flags is the only field mutated afterwards, through moderation.
type Medium struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Path      string             `bson:"path,omitempty" json:"path,omitempty"`
	ThumbPath string             `bson:"thumbPath,omitempty" json:"thumbPath,omitempty"`
	Creator   primitive.ObjectID `bson:"creator" json:"creator"`
	Venue     primitive.ObjectID `bson:"venue" json:"venue"`
	Datetime  time.Time          `bson:"datetime" json:"datetime"`
	AtVenue   bool               `bson:"atVenue" json:"atVenue"`
	MimeType  string             `bson:"mimetype" json:"mimetype"`
	Flags     map[string]any     `bson:"flags,omitempty" json:"flags,omitempty"`
}
