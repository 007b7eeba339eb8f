// internal/domain/models/preference.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PrefSelectedChild is the only preference this app writes: the child a
// parent last selected on the dashboard. Last-write-wins, no locking.
const PrefSelectedChild = "dashboard_selectedchild"

// UserPreference is a single named per-user preference, keyed by
// (user_id, name) and overwritten on each change.
type UserPreference struct {
	ID     primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID primitive.ObjectID `bson:"user_id" json:"user_id"`
	Name   string             `bson:"name" json:"name"`
	Value  string             `bson:"value" json:"value"`

	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}
