// internal/domain/models/activity.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Module types for activities. ModuleZoom backs scheduled video sessions.
const (
	ModuleAssignment = "assign"
	ModuleQuiz       = "quiz"
	ModuleForum      = "forum"
	ModulePage       = "page"
	ModuleZoom       = "zoom"
)

// Completion states for an (activity, user) pair.
const (
	CompletionNone         = "none"
	CompletionInProgress   = "inprogress"
	CompletionComplete     = "complete"
	CompletionCompletePass = "completepass"
)

// Activity is a trackable unit inside a course (a course module).
// Tracked activities count toward progress and activity completion;
// activities with Visible=false are excluded from every metric and list.
type Activity struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	CourseID primitive.ObjectID `bson:"course_id" json:"course_id"`
	Name     string             `bson:"name" json:"name"`
	Module   string             `bson:"module" json:"module"`
	Tracked  bool               `bson:"tracked" json:"tracked"` // completion tracking enabled for this module
	Visible  bool               `bson:"visible" json:"visible"` // user-visible

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}

// ActivityCompletion is the per-user completion state of one activity.
// Lifecycle is owned by the completion subsystem; the dashboard only
// reads the current state.
type ActivityCompletion struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	ActivityID primitive.ObjectID `bson:"activity_id" json:"activity_id"`
	UserID     primitive.ObjectID `bson:"user_id" json:"user_id"`
	State      string             `bson:"state" json:"state"`

	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}

// IsComplete reports whether the state counts as done (complete or
// complete-with-pass).
func (c *ActivityCompletion) IsComplete() bool {
	return c.State == CompletionComplete || c.State == CompletionCompletePass
}
