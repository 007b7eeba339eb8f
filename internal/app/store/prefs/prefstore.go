// internal/app/store/prefs/prefstore.go
package prefstore

import (
	"context"
	"errors"
	"time"

	"github.com/dalemusser/learnhub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Store provides access to the user_preferences collection. Each
// (user_id, name) pair has at most one document; Set overwrites
// (last-write-wins, no locking — acceptable for a per-user, low
// frequency setting).
type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("user_preferences")}
}

// Get returns the preference value, or "" when unset.
func (s *Store) Get(ctx context.Context, userID primitive.ObjectID, name string) (string, error) {
	var pref models.UserPreference
	err := s.c.FindOne(ctx, bson.M{"user_id": userID, "name": name}).Decode(&pref)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return pref.Value, nil
}

// Set upserts the preference value.
func (s *Store) Set(ctx context.Context, userID primitive.ObjectID, name, value string) error {
	filter := bson.M{"user_id": userID, "name": name}
	update := bson.M{
		"$set": bson.M{
			"user_id":    userID,
			"name":       name,
			"value":      value,
			"updated_at": time.Now().UTC(),
		},
		"$setOnInsert": bson.M{"_id": primitive.NewObjectID()},
	}
	_, err := s.c.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true))
	return err
}
