package repository

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"storefront/models"
)

type PromoCodeRepo struct {
	col *mongo.Collection
}

func NewPromoCodeRepo(db *mongo.Database) *PromoCodeRepo {
	return &PromoCodeRepo{col: db.Collection(colPromoCodes)}
}

func (r *PromoCodeRepo) Insert(ctx context.Context, promo *models.PromoCode) error {
	_, err := r.col.InsertOne(ctx, promo)
	return err
}

// FindValid matches on the exact code, active flag, and expiry in one
// composite condition. A wrong, inactive or expired code all come back as
// ErrNotFound; callers cannot tell them apart.
func (r *PromoCodeRepo) FindValid(ctx context.Context, code string, now time.Time) (*models.PromoCode, error) {
	filter := bson.M{
		"code":   code,
		"active": true,
		"$or": []bson.M{
			{"expiresAt": bson.M{"$gte": now}},
			{"expiresAt": nil},
		},
	}

	var promo models.PromoCode
	err := r.col.FindOne(ctx, filter).Decode(&promo)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &promo, nil
}
