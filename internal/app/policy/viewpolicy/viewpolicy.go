// Package viewpolicy provides authorization policies for viewing another
// user's dashboard data.
//
// Authorization rules:
//   - Any signed-in user can view their own courses, grades, and sessions
//   - A parent can view data for users linked to them as children
//   - No other cross-user access exists; teachers see rosters, not metrics
package viewpolicy

import (
	"context"

	guardianstore "github.com/dalemusser/learnhub/internal/app/store/guardians"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// CanViewUserData reports whether viewerID may see targetID's course and
// grade data. Returns an error only if a database operation fails.
func CanViewUserData(ctx context.Context, db *mongo.Database, viewerID, targetID primitive.ObjectID) (bool, error) {
	if viewerID == targetID {
		return true, nil
	}
	children, err := guardianstore.New(db).ChildIDs(ctx, viewerID)
	if err != nil {
		return false, err
	}
	for _, c := range children {
		if c == targetID {
			return true, nil
		}
	}
	return false, nil
}
