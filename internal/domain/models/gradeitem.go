// internal/domain/models/gradeitem.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Grade item kinds and grade types.
const (
	GradeItemCourse   = "course"   // whole-course aggregate item
	GradeItemActivity = "activity" // per-activity item

	GradeTypeValue = "value" // numeric grade out of GradeMax
	GradeTypeScale = "scale" // 1-based index into a Scale's labels
)

// GradeItem is a gradable unit: either the course aggregate or one
// activity. Scale items reference a Scale; numeric items carry GradeMax.
type GradeItem struct {
	ID         primitive.ObjectID  `bson:"_id,omitempty" json:"id"`
	CourseID   primitive.ObjectID  `bson:"course_id" json:"course_id"`
	ItemType   string              `bson:"item_type" json:"item_type"` // course | activity
	ActivityID *primitive.ObjectID `bson:"activity_id,omitempty" json:"activity_id,omitempty"`
	GradeType  string              `bson:"grade_type" json:"grade_type"` // value | scale
	GradeMax   float64             `bson:"grade_max" json:"grade_max"`
	ScaleID    *primitive.ObjectID `bson:"scale_id,omitempty" json:"scale_id,omitempty"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}

// GradeGrade is a user's final grade on one grade item. FinalGrade nil
// means "not graded", which renders as a neutral placeholder, never a
// fault.
type GradeGrade struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	ItemID     primitive.ObjectID `bson:"item_id" json:"item_id"`
	UserID     primitive.ObjectID `bson:"user_id" json:"user_id"`
	FinalGrade *float64           `bson:"final_grade,omitempty" json:"final_grade,omitempty"`

	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}

// Scale is an ordered set of achievement labels. An achieved scale grade
// is a 1-based index into Items.
type Scale struct {
	ID    primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name  string             `bson:"name" json:"name"`
	Items []string           `bson:"items" json:"items"`
}

// Resolve returns the label for a 1-based grade value, or "" when the
// index is out of range. The empty string is a defensive guard, not an
// error.
func (s *Scale) Resolve(grade int) string {
	idx := grade - 1
	if idx < 0 || idx >= len(s.Items) {
		return ""
	}
	return s.Items[idx]
}
