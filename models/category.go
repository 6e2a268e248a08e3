package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Category is descriptive only; products reference it by label and nothing
// cascades when a category is removed.
type Category struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name        string             `bson:"name" json:"name" binding:"required"`
	Description string             `bson:"description" json:"description" binding:"required"`
	CreatedAt   time.Time          `bson:"createdAt" json:"created_at"`
}
