// internal/app/store/grades/gradestore.go
package gradestore

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

// Store provides access to the grade_items, grade_grades, and scales
// collections: the grade subsystem's data, read-only for the dashboard.
type Store struct {
	items  *mongo.Collection
	grades *mongo.Collection
	scales *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{
		items:  db.Collection("grade_items"),
		grades: db.Collection("grade_grades"),
		scales: db.Collection("scales"),
	}
}

// CourseItem returns the course-aggregate grade item, or nil when the
// course has none (a valid state, rendered as "-").
func (s *Store) CourseItem(ctx context.Context, courseID primitive.ObjectID) (*models.GradeItem, error) {
	var item models.GradeItem
	err := s.items.FindOne(ctx, bson.M{"course_id": courseID, "item_type": models.GradeItemCourse}).Decode(&item)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// ActivityItems returns the per-activity grade items of a course keyed
// by activity ID.
func (s *Store) ActivityItems(ctx context.Context, courseID primitive.ObjectID) (map[primitive.ObjectID]models.GradeItem, error) {
	cur, err := s.items.Find(ctx, bson.M{"course_id": courseID, "item_type": models.GradeItemActivity})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	out := make(map[primitive.ObjectID]models.GradeItem)
	for cur.Next(ctx) {
		var item models.GradeItem
		if err := cur.Decode(&item); err != nil {
			return nil, err
		}
		if item.ActivityID != nil {
			out[*item.ActivityID] = item
		}
	}
	return out, cur.Err()
}

// FinalGrade returns the user's final grade for one item; nil when not
// graded.
func (s *Store) FinalGrade(ctx context.Context, itemID, userID primitive.ObjectID) (*float64, error) {
	var g models.GradeGrade
	err := s.grades.FindOne(ctx, bson.M{"item_id": itemID, "user_id": userID}).Decode(&g)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return g.FinalGrade, nil
}

// FinalGrades returns the user's final grades across a set of items,
// keyed by item ID. Items without a record are absent from the map.
func (s *Store) FinalGrades(ctx context.Context, itemIDs []primitive.ObjectID, userID primitive.ObjectID) (map[primitive.ObjectID]*float64, error) {
	out := make(map[primitive.ObjectID]*float64, len(itemIDs))
	if len(itemIDs) == 0 {
		return out, nil
	}
	cur, err := s.grades.Find(ctx, bson.M{"item_id": bson.M{"$in": itemIDs}, "user_id": userID})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	for cur.Next(ctx) {
		var g models.GradeGrade
		if err := cur.Decode(&g); err != nil {
			return nil, err
		}
		out[g.ItemID] = g.FinalGrade
	}
	return out, cur.Err()
}

// GetScale loads a scale's ordered label list.
func (s *Store) GetScale(ctx context.Context, id primitive.ObjectID) (*models.Scale, error) {
	var sc models.Scale
	if err := s.scales.FindOne(ctx, bson.M{"_id": id}).Decode(&sc); err != nil {
		return nil, err
	}
	return &sc, nil
}

// CreateItem, SetFinalGrade, and CreateScale exist for fixtures and
// seeding; the grade subsystem owns this data in the original platform.

func (s *Store) CreateItem(ctx context.Context, item models.GradeItem) (models.GradeItem, error) {
	item.ID = primitive.NewObjectID()
	item.CreatedAt = time.Now().UTC()
	if _, err := s.items.InsertOne(ctx, item); err != nil {
		return models.GradeItem{}, err
	}
	return item, nil
}

func (s *Store) SetFinalGrade(ctx context.Context, itemID, userID primitive.ObjectID, final *float64) error {
	filter := bson.M{"item_id": itemID, "user_id": userID}
	update := bson.M{
		"$set": bson.M{
			"item_id":     itemID,
			"user_id":     userID,
			"final_grade": final,
			"updated_at":  time.Now().UTC(),
		},
		"$setOnInsert": bson.M{"_id": primitive.NewObjectID()},
	}
	_, err := s.grades.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true))
	return err
}

func (s *Store) CreateScale(ctx context.Context, sc models.Scale) (models.Scale, error) {
	sc.ID = primitive.NewObjectID()
	if _, err := s.scales.InsertOne(ctx, sc); err != nil {
		return models.Scale{}, err
	}
	return sc, nil
}
