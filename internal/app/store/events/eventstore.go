// internal/app/store/events/eventstore.go
package eventstore

import (
	"context"
	"time"

	"github.com/dalemusser/learnhub/internal/domain/models"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Store provides access to the events collection (the calendar/event
// store for zoom sessions).
type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("events")}
}

// UpcomingForCourses returns events across the given courses starting at
// or after the lower bound, ascending by start time.
func (s *Store) UpcomingForCourses(ctx context.Context, courseIDs []primitive.ObjectID, notBefore time.Time) ([]models.Event, error) {
	if len(courseIDs) == 0 {
		return nil, nil
	}
	filter := bson.M{
		"course_id":  bson.M{"$in": courseIDs},
		"start_time": bson.M{"$gte": notBefore},
	}
	opts := options.Find().SetSort(bson.D{{Key: "start_time", Value: 1}})
	cur, err := s.c.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []models.Event
	for cur.Next(ctx) {
		var e models.Event
		if err := cur.Decode(&e); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, cur.Err()
}

// Create inserts an event, issuing a join code. Used by fixtures and
// seeding.
func (s *Store) Create(ctx context.Context, e models.Event) (models.Event, error) {
	e.ID = primitive.NewObjectID()
	if e.JoinCode == "" {
		e.JoinCode = uuid.NewString()
	}
	e.CreatedAt = time.Now().UTC()
	if _, err := s.c.InsertOne(ctx, e); err != nil {
		return models.Event{}, err
	}
	return e, nil
}
