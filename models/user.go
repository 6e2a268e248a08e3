package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User is created once per unique email on the first successful session
// exchange. Name and picture are never refreshed from later provider
// payloads.
type User struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Email     string             `bson:"email" json:"email"`
	Name      string             `bson:"name" json:"name"`
	Picture   string             `bson:"picture,omitempty" json:"picture,omitempty"`
	CreatedAt time.Time          `bson:"createdAt" json:"created_at"`
}
