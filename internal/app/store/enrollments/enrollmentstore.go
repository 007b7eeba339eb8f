// internal/app/store/enrollments/enrollmentstore.go
package enrollmentstore

import (
	"context"
	"time"

	"github.com/dalemusser/learnhub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("enrollments")}
}

// ForUser returns all enrollments for a user.
func (s *Store) ForUser(ctx context.Context, userID primitive.ObjectID) ([]models.Enrollment, error) {
	return s.find(ctx, bson.M{"user_id": userID})
}

// ForUserWithRoles returns a user's enrollments restricted to the given
// course-context roles.
func (s *Store) ForUserWithRoles(ctx context.Context, userID primitive.ObjectID, roles ...string) ([]models.Enrollment, error) {
	return s.find(ctx, bson.M{"user_id": userID, "role": bson.M{"$in": roles}})
}

// ForCourseWithRoles returns enrollments in a course restricted to the
// given roles. Used by the people lister to find instructors.
func (s *Store) ForCourseWithRoles(ctx context.Context, courseID primitive.ObjectID, roles ...string) ([]models.Enrollment, error) {
	return s.find(ctx, bson.M{"course_id": courseID, "role": bson.M{"$in": roles}})
}

// ForCoursesWithRoles returns enrollments across a set of courses
// restricted to the given roles.
func (s *Store) ForCoursesWithRoles(ctx context.Context, courseIDs []primitive.ObjectID, roles ...string) ([]models.Enrollment, error) {
	if len(courseIDs) == 0 {
		return nil, nil
	}
	return s.find(ctx, bson.M{"course_id": bson.M{"$in": courseIDs}, "role": bson.M{"$in": roles}})
}

// HasRole reports whether the user holds any of the given roles in any
// course. Backs the role resolver's teacher/student checks.
func (s *Store) HasRole(ctx context.Context, userID primitive.ObjectID, roles ...string) (bool, error) {
	count, err := s.c.CountDocuments(ctx, bson.M{"user_id": userID, "role": bson.M{"$in": roles}})
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// Create inserts an enrollment. Used by fixtures and seeding.
func (s *Store) Create(ctx context.Context, e models.Enrollment) (models.Enrollment, error) {
	e.ID = primitive.NewObjectID()
	e.CreatedAt = time.Now().UTC()
	if _, err := s.c.InsertOne(ctx, e); err != nil {
		return models.Enrollment{}, err
	}
	return e, nil
}

func (s *Store) find(ctx context.Context, filter bson.M) ([]models.Enrollment, error) {
	cur, err := s.c.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []models.Enrollment
	for cur.Next(ctx) {
		var e models.Enrollment
		if err := cur.Decode(&e); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, cur.Err()
}
