// internal/app/store/guardians/guardianstore.go
package guardianstore

import (
	"context"
	"time"

	"github.com/dalemusser/learnhub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Store provides access to the guardian_links collection, the contract
// the external "parent manager" service owns in the original platform.
type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("guardian_links")}
}

// IsParent reports whether any guardian link exists for the user.
func (s *Store) IsParent(ctx context.Context, userID primitive.ObjectID) (bool, error) {
	count, err := s.c.CountDocuments(ctx, bson.M{"parent_id": userID})
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// ChildIDs returns the user's children in link-creation order. The
// first entry is the default child selection.
func (s *Store) ChildIDs(ctx context.Context, parentID primitive.ObjectID) ([]primitive.ObjectID, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}, {Key: "_id", Value: 1}})
	cur, err := s.c.Find(ctx, bson.M{"parent_id": parentID}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []primitive.ObjectID
	for cur.Next(ctx) {
		var link models.GuardianLink
		if err := cur.Decode(&link); err != nil {
			return nil, err
		}
		out = append(out, link.ChildID)
	}
	return out, cur.Err()
}

// Link records a parent-child relation. Used by fixtures and seeding.
func (s *Store) Link(ctx context.Context, parentID, childID primitive.ObjectID) (models.GuardianLink, error) {
	link := models.GuardianLink{
		ID:        primitive.NewObjectID(),
		ParentID:  parentID,
		ChildID:   childID,
		CreatedAt: time.Now().UTC(),
	}
	if _, err := s.c.InsertOne(ctx, link); err != nil {
		return models.GuardianLink{}, err
	}
	return link, nil
}
