// Package userrole classifies a user for the dashboard: parent,
// student, teacher, or other. The classification is derived per request
// from guardian links and course enrollments, never stored.
package userrole

import (
	"context"

	enrollmentstore "github.com/dalemusser/learnhub/internal/app/store/enrollments"
	guardianstore "github.com/dalemusser/learnhub/internal/app/store/guardians"
	"github.com/dalemusser/learnhub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// Role is the derived dashboard role.
type Role string

const (
	Parent  Role = "parent"
	Student Role = "student"
	Teacher Role = "teacher"
	Other   Role = "other"
)

// Classify applies the priority order: parent first, then teacher (any
// teacher/editingteacher/manager enrollment), then student, else other.
// Pure; Resolve feeds it from the stores.
func Classify(isParent bool, courseRoles []string) Role {
	if isParent {
		return Parent
	}

	hasStudent := false
	for _, role := range courseRoles {
		switch role {
		case models.RoleTeacher, models.RoleEditingTeacher, models.RoleManager:
			return Teacher
		case models.RoleStudent:
			hasStudent = true
		}
	}
	if hasStudent {
		return Student
	}
	return Other
}

// Resolve classifies the user from current guardianship and enrollment
// data. Same inputs and same underlying data always yield the same
// classification within one request.
func Resolve(ctx context.Context, db *mongo.Database, userID primitive.ObjectID) (Role, error) {
	isParent, err := guardianstore.New(db).IsParent(ctx, userID)
	if err != nil {
		return Other, err
	}
	if isParent {
		return Parent, nil
	}

	enrollments, err := enrollmentstore.New(db).ForUser(ctx, userID)
	if err != nil {
		return Other, err
	}
	roles := make([]string, 0, len(enrollments))
	for _, e := range enrollments {
		roles = append(roles, e.Role)
	}
	return Classify(false, roles), nil
}
