package userrole_test

import (
	"testing"

	"github.com/dalemusser/learnhub/internal/app/store/queries/userrole"
	"github.com/dalemusser/learnhub/internal/domain/models"
	"github.com/dalemusser/learnhub/internal/testutil"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestClassify_Priority(t *testing.T) {
	tests := []struct {
		name     string
		isParent bool
		roles    []string
		want     userrole.Role
	}{
		{"parent beats everything", true, []string{models.RoleTeacher, models.RoleStudent}, userrole.Parent},
		{"parent with no enrollments", true, nil, userrole.Parent},
		{"teacher beats student", false, []string{models.RoleStudent, models.RoleTeacher}, userrole.Teacher},
		{"editingteacher counts as teacher", false, []string{models.RoleEditingTeacher}, userrole.Teacher},
		{"manager counts as teacher", false, []string{models.RoleManager}, userrole.Teacher},
		{"student only", false, []string{models.RoleStudent}, userrole.Student},
		{"no enrollments", false, nil, userrole.Other},
		{"unknown role only", false, []string{"guest"}, userrole.Other},
	}
	for _, tt := range tests {
		if got := userrole.Classify(tt.isParent, tt.roles); got != tt.want {
			t.Errorf("%s: Classify = %q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestResolve(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	fx := testutil.NewFixtures(t, db)
	course := fx.CreateCourse(ctx, "History")

	parent := fx.CreateUser(ctx, "Pat", "Parent", "pat@test.com")
	child := fx.CreateUser(ctx, "Chris", "Child", "chris@test.com")
	fx.LinkChild(ctx, parent.ID, child.ID)
	// A parent who also teaches still classifies as parent.
	fx.Enroll(ctx, parent.ID, course.ID, models.RoleTeacher)

	teacher := fx.CreateUser(ctx, "Terry", "Teacher", "terry@test.com")
	fx.Enroll(ctx, teacher.ID, course.ID, models.RoleTeacher)

	student := fx.CreateUser(ctx, "Sky", "Student", "sky@test.com")
	fx.Enroll(ctx, student.ID, course.ID, models.RoleStudent)

	other := fx.CreateUser(ctx, "Olly", "Other", "olly@test.com")

	tests := []struct {
		name string
		id   primitive.ObjectID
		want userrole.Role
	}{
		{"parent", parent.ID, userrole.Parent},
		{"teacher", teacher.ID, userrole.Teacher},
		{"student", student.ID, userrole.Student},
		{"other", other.ID, userrole.Other},
	}
	for _, tt := range tests {
		got, err := userrole.Resolve(ctx, db, tt.id)
		if err != nil {
			t.Fatalf("%s: Resolve failed: %v", tt.name, err)
		}
		if got != tt.want {
			t.Errorf("%s: Resolve = %q, want %q", tt.name, got, tt.want)
		}
	}
}
