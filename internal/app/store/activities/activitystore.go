// internal/app/store/activities/activitystore.go
package activitystore

import (
	"context"
	"time"

	"github.com/dalemusser/learnhub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Store provides access to the activities and activity_completions
// collections: the completion subsystem's data, read-only for the
// dashboard.
type Store struct {
	activities  *mongo.Collection
	completions *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{
		activities:  db.Collection("activities"),
		completions: db.Collection("activity_completions"),
	}
}

// VisibleForCourse returns the user-visible activities of a course in
// creation order. Hidden activities are excluded here once so every
// metric and list downstream stays consistent.
func (s *Store) VisibleForCourse(ctx context.Context, courseID primitive.ObjectID) ([]models.Activity, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}, {Key: "_id", Value: 1}})
	cur, err := s.activities.Find(ctx, bson.M{"course_id": courseID, "visible": true}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []models.Activity
	for cur.Next(ctx) {
		var a models.Activity
		if err := cur.Decode(&a); err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, cur.Err()
}

// Exists reports whether an activity record is still present. The
// session lister uses this to drop events whose backing module instance
// was deleted.
func (s *Store) Exists(ctx context.Context, id primitive.ObjectID) (bool, error) {
	count, err := s.activities.CountDocuments(ctx, bson.M{"_id": id})
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// CompletionStates returns the user's completion state per activity for
// one course. Activities without a record default to "none".
func (s *Store) CompletionStates(ctx context.Context, courseID, userID primitive.ObjectID) (map[primitive.ObjectID]string, error) {
	// The completion records carry activity_id only, so restrict by the
	// course's activity set.
	acts, err := s.VisibleForCourse(ctx, courseID)
	if err != nil {
		return nil, err
	}
	ids := make([]primitive.ObjectID, 0, len(acts))
	for _, a := range acts {
		ids = append(ids, a.ID)
	}

	out := make(map[primitive.ObjectID]string, len(ids))
	if len(ids) == 0 {
		return out, nil
	}

	cur, err := s.completions.Find(ctx, bson.M{"activity_id": bson.M{"$in": ids}, "user_id": userID})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	for cur.Next(ctx) {
		var c models.ActivityCompletion
		if err := cur.Decode(&c); err != nil {
			return nil, err
		}
		out[c.ActivityID] = c.State
	}
	return out, cur.Err()
}

// Create inserts an activity. Used by fixtures and seeding.
func (s *Store) Create(ctx context.Context, a models.Activity) (models.Activity, error) {
	a.ID = primitive.NewObjectID()
	a.CreatedAt = time.Now().UTC()
	if _, err := s.activities.InsertOne(ctx, a); err != nil {
		return models.Activity{}, err
	}
	return a, nil
}

// SetCompletion upserts the user's completion state for an activity.
// Owned by the completion subsystem in the original platform; exposed
// here for fixtures and seeding.
func (s *Store) SetCompletion(ctx context.Context, activityID, userID primitive.ObjectID, state string) error {
	filter := bson.M{"activity_id": activityID, "user_id": userID}
	update := bson.M{
		"$set": bson.M{
			"activity_id": activityID,
			"user_id":     userID,
			"state":       state,
			"updated_at":  time.Now().UTC(),
		},
		"$setOnInsert": bson.M{"_id": primitive.NewObjectID()},
	}
	_, err := s.completions.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true))
	return err
}
