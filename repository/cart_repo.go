package repository

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"storefront/models"
)

type CartRepo struct {
	col *mongo.Collection
}

func NewCartRepo(db *mongo.Database) *CartRepo {
	return &CartRepo{col: db.Collection(colCartItems)}
}

func (r *CartRepo) ListByUser(ctx context.Context, userID primitive.ObjectID) ([]models.CartItem, error) {
	cursor, err := r.col.Find(ctx, bson.M{"userId": userID})
	if err != nil {
		return nil, err
	}

	items := []models.CartItem{}
	if err := cursor.All(ctx, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *CartRepo) FindByUserAndProduct(ctx context.Context, userID, productID primitive.ObjectID) (*models.CartItem, error) {
	var item models.CartItem
	err := r.col.FindOne(ctx, bson.M{"userId": userID, "productId": productID}).Decode(&item)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *CartRepo) Insert(ctx context.Context, item *models.CartItem) error {
	_, err := r.col.InsertOne(ctx, item)
	return err
}

// SetQuantity targets a row by id scoped to its owner, so one user cannot
// touch another user's rows.
func (r *CartRepo) SetQuantity(ctx context.Context, id, userID primitive.ObjectID, quantity int) error {
	result, err := r.col.UpdateOne(ctx,
		bson.M{"_id": id, "userId": userID},
		bson.M{"$set": bson.M{"quantity": quantity}},
	)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *CartRepo) Delete(ctx context.Context, id, userID primitive.ObjectID) error {
	result, err := r.col.DeleteOne(ctx, bson.M{"_id": id, "userId": userID})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// ClearUser removes every row for the user. Deleting nothing is success, so
// the call is safe to retry.
func (r *CartRepo) ClearUser(ctx context.Context, userID primitive.ObjectID) error {
	_, err := r.col.DeleteMany(ctx, bson.M{"userId": userID})
	return err
}
