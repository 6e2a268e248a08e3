package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// SessionTTL is the absolute lifetime of a minted session token. Expiry is
// the only invalidation path; there is no revocation list.
const SessionTTL = 7 * 24 * time.Hour

type Session struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID    primitive.ObjectID `bson:"userId" json:"user_id"`
	Token     string             `bson:"sessionToken" json:"session_token"`
	ExpiresAt time.Time          `bson:"expiresAt" json:"expires_at"`
	CreatedAt time.Time          `bson:"createdAt" json:"created_at"`
}
