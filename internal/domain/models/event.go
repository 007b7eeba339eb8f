// internal/domain/models/event.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Event is a calendar-bound meeting tied to a course, backed by a zoom
// module instance (ActivityID). Events whose backing instance no longer
// exists are never listed.
type Event struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	CourseID   primitive.ObjectID `bson:"course_id" json:"course_id"`
	ActivityID primitive.ObjectID `bson:"activity_id" json:"activity_id"`
	Title      string             `bson:"title" json:"title"`
	StartTime  time.Time          `bson:"start_time" json:"start_time"`
	DurationMin int               `bson:"duration_min" json:"duration_min"`
	JoinURL    string             `bson:"join_url" json:"join_url"`
	JoinCode   string             `bson:"join_code" json:"join_code"` // uuid issued when the meeting is scheduled

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}
