package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User represents a profile record in the Bondify directory. Profiles are
// keyed by email and replaced wholesale on every save.
type User struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Email     string             `bson:"email" json:"email"`
	Name      string             `bson:"name,omitempty" json:"name,omitempty"`
	Photo     string             `bson:"photo,omitempty" json:"photo,omitempty"`
	Timestamp time.Time          `bson:"timestamp" json:"timestamp"`
}
