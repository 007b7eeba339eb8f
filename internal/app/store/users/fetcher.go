// internal/app/store/users/fetcher.go
package userstore

import (
	"context"

	"github.com/dalemusser/learnhub/internal/app/system/auth"
	"github.com/dalemusser/learnhub/internal/app/system/timeouts"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// NewFetcher returns an auth.UserFetcher that reloads the user on every
// request, so role changes and disabled accounts take effect immediately.
func NewFetcher(db *mongo.Database) auth.UserFetcher {
	store := New(db)
	return func(ctx context.Context, userID string) (*auth.SessionUser, bool) {
		oid, err := primitive.ObjectIDFromHex(userID)
		if err != nil {
			return nil, false
		}

		ctx, cancel := context.WithTimeout(ctx, timeouts.Short())
		defer cancel()

		u, err := store.GetByID(ctx, oid)
		if err != nil || u.Status == "disabled" {
			return nil, false
		}

		return &auth.SessionUser{
			ID:       u.ID.Hex(),
			Name:     u.FullName(),
			Email:    u.Email,
			SiteRole: u.SiteRole,
		}, true
	}
}
