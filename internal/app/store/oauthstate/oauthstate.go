// Package oauthstate persists short-lived OAuth state tokens so the
// callback can verify the flow started here.
package oauthstate

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("oauth_states")}
}

type record struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	State     string             `bson:"state"`
	ReturnURL string             `bson:"return_url"`
	ExpiresAt time.Time          `bson:"expires_at"`
	CreatedAt time.Time          `bson:"created_at"`
}

// Save stores a state token with its return URL and expiry.
func (s *Store) Save(ctx context.Context, state, returnURL string, expiresAt time.Time) error {
	_, err := s.c.InsertOne(ctx, record{
		ID:        primitive.NewObjectID(),
		State:     state,
		ReturnURL: returnURL,
		ExpiresAt: expiresAt,
		CreatedAt: time.Now().UTC(),
	})
	return err
}

// Validate consumes a state token. Returns the stored return URL and
// whether the token was present and unexpired. Each token is single
// use: it is deleted on lookup regardless of expiry.
func (s *Store) Validate(ctx context.Context, state string) (returnURL string, valid bool, err error) {
	var rec record
	err = s.c.FindOneAndDelete(ctx, bson.M{"state": state}).Decode(&rec)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	if time.Now().UTC().After(rec.ExpiresAt) {
		return "", false, nil
	}
	return rec.ReturnURL, true, nil
}
