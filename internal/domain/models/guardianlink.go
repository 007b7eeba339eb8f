// internal/domain/models/guardianlink.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// GuardianLink relates a parent account to one child (student) account.
// A parent with at least one link is classified as "parent" by the role
// resolver regardless of any course enrollments they may hold.
type GuardianLink struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	ParentID primitive.ObjectID `bson:"parent_id" json:"parent_id"`
	ChildID  primitive.ObjectID `bson:"child_id" json:"child_id"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}
