package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PromoCode carries no redemption tracking; a valid code can be reused
// without limit.
type PromoCode struct {
	ID                 primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Code               string             `bson:"code" json:"code" binding:"required"`
	DiscountPercentage float64            `bson:"discountPercentage" json:"discount_percentage" binding:"required"`
	DiscountAmount     *float64           `bson:"discountAmount,omitempty" json:"discount_amount,omitempty"`
	MinOrderAmount     *float64           `bson:"minOrderAmount,omitempty" json:"min_order_amount,omitempty"`
	Active             bool               `bson:"active" json:"active"`
	ExpiresAt          *time.Time         `bson:"expiresAt,omitempty" json:"expires_at,omitempty"`
	CreatedAt          time.Time          `bson:"createdAt" json:"created_at"`
}
