// internal/domain/models/course.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Course is a read-only platform entity as far as the dashboard is
// concerned. EnableCompletion mirrors the platform's per-course
// completion-tracking flag; when false every progress metric for the
// course is zero / "not started".
type Course struct {
	ID               primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	FullName         string             `bson:"full_name" json:"full_name"`
	ShortName        string             `bson:"short_name" json:"short_name"`
	Visible          bool               `bson:"visible" json:"visible"`
	EnableCompletion bool               `bson:"enable_completion" json:"enable_completion"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}
