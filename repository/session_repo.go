package repository

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"storefront/models"
)

type SessionRepo struct {
	col *mongo.Collection
}

func NewSessionRepo(db *mongo.Database) *SessionRepo {
	return &SessionRepo{col: db.Collection(colSessions)}
}

func (r *SessionRepo) Insert(ctx context.Context, session *models.Session) error {
	_, err := r.col.InsertOne(ctx, session)
	return err
}

// FindByToken returns the session regardless of expiry; the middleware
// rejects expired sessions on use, it does not delete them.
func (r *SessionRepo) FindByToken(ctx context.Context, token string) (*models.Session, error) {
	var session models.Session
	err := r.col.FindOne(ctx, bson.M{"sessionToken": token}).Decode(&session)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &session, nil
}
