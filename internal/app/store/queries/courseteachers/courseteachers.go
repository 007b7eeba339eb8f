// Package courseteachers answers "who teaches this course" and "who
// teaches this student". Instructors come from the enrollments table;
// see models.IsInstructorRole for which roles count.
package courseteachers

import (
	"context"
	"sort"
	"strings"

	coursestore "github.com/dalemusser/learnhub/internal/app/store/courses"
	enrollmentstore "github.com/dalemusser/learnhub/internal/app/store/enrollments"
	userstore "github.com/dalemusser/learnhub/internal/app/store/users"
	"github.com/dalemusser/learnhub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// Teacher is one instructor row on the student dashboard. Courses
// accumulates every shared course, not just the first one found.
type Teacher struct {
	UserID  primitive.ObjectID
	Name    string
	Email   string
	Courses []string
}

// CourseList joins the shared course names for display.
func (t Teacher) CourseList() string {
	return strings.Join(t.Courses, ", ")
}

// PrimaryInstructor returns the course's first teacher ordered by last
// name then first name, or nil when nobody holds an instructor role.
func PrimaryInstructor(ctx context.Context, db *mongo.Database, courseID primitive.ObjectID) (*models.User, error) {
	enrollments, err := enrollmentstore.New(db).ForCourseWithRoles(ctx, courseID,
		models.RoleTeacher, models.RoleEditingTeacher)
	if err != nil {
		return nil, err
	}
	if len(enrollments) == 0 {
		return nil, nil
	}

	ids := make([]primitive.ObjectID, 0, len(enrollments))
	for _, e := range enrollments {
		ids = append(ids, e.UserID)
	}
	users, err := userstore.New(db).GetMany(ctx, ids)
	if err != nil {
		return nil, err
	}

	var pick *models.User
	for _, id := range ids {
		u, ok := users[id]
		if !ok {
			continue
		}
		if pick == nil || lessByName(&u, pick) {
			copied := u
			pick = &copied
		}
	}
	return pick, nil
}

// ForStudent lists every instructor across the student's visible
// courses, deduplicated by user. Managers count here: the student
// dashboard shows everyone who runs their courses.
func ForStudent(ctx context.Context, db *mongo.Database, studentID primitive.ObjectID) ([]Teacher, error) {
	enrollments, err := enrollmentstore.New(db).ForUser(ctx, studentID)
	if err != nil {
		return nil, err
	}
	courseIDs := make([]primitive.ObjectID, 0, len(enrollments))
	for _, e := range enrollments {
		courseIDs = append(courseIDs, e.CourseID)
	}

	courses, err := coursestore.New(db).GetMany(ctx, courseIDs)
	if err != nil {
		return nil, err
	}

	staff, err := enrollmentstore.New(db).ForCoursesWithRoles(ctx, courseIDs,
		models.RoleTeacher, models.RoleEditingTeacher, models.RoleManager)
	if err != nil {
		return nil, err
	}

	userIDs := make([]primitive.ObjectID, 0, len(staff))
	for _, e := range staff {
		userIDs = append(userIDs, e.UserID)
	}
	users, err := userstore.New(db).GetMany(ctx, userIDs)
	if err != nil {
		return nil, err
	}

	byUser := make(map[primitive.ObjectID]*Teacher)
	var order []primitive.ObjectID
	for _, e := range staff {
		course, ok := courses[e.CourseID]
		if !ok || !course.Visible {
			continue
		}
		u, ok := users[e.UserID]
		if !ok {
			continue
		}

		t, ok := byUser[e.UserID]
		if !ok {
			t = &Teacher{UserID: u.ID, Name: u.FullName(), Email: u.Email}
			byUser[e.UserID] = t
			order = append(order, e.UserID)
		}
		if !contains(t.Courses, course.FullName) {
			t.Courses = append(t.Courses, course.FullName)
		}
	}

	out := make([]Teacher, 0, len(order))
	for _, id := range order {
		out = append(out, *byUser[id])
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func lessByName(a, b *models.User) bool {
	if a.LastName != b.LastName {
		return a.LastName < b.LastName
	}
	return a.FirstName < b.FirstName
}

func contains(items []string, want string) bool {
	for _, it := range items {
		if it == want {
			return true
		}
	}
	return false
}
