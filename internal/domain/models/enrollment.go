// internal/domain/models/enrollment.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Course-context roles, mirroring the platform's role archetypes.
const (
	RoleStudent        = "student"
	RoleTeacher        = "teacher"
	RoleEditingTeacher = "editingteacher"
	RoleManager        = "manager"
)

// Enrollment links a user to a course with a course-context role. It
// doubles as the role-assignment table: the same record answers both
// "which courses is this user in" and "what role do they hold there".
type Enrollment struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID   primitive.ObjectID `bson:"user_id" json:"user_id"`
	CourseID primitive.ObjectID `bson:"course_id" json:"course_id"`
	Role     string             `bson:"role" json:"role"` // student | teacher | editingteacher | manager

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}

// IsInstructorRole reports whether role identifies a course instructor
// (teacher or editing teacher).
func IsInstructorRole(role string) bool {
	return role == RoleTeacher || role == RoleEditingTeacher
}

// IsManagingRole reports whether role carries instance-management
// capability for course modules (used to pick a teacher's own sessions).
func IsManagingRole(role string) bool {
	return role == RoleEditingTeacher || role == RoleManager
}
