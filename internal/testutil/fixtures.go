package testutil

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/dalemusser/learnhub/internal/domain/models"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// WithChiURLParam adds a chi URL parameter to the request context.
// Use this in handler tests that need to access chi.URLParam values.
func WithChiURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

// Fixtures provides helper methods for creating test data.
type Fixtures struct {
	db *mongo.Database
	t  *testing.T
}

// NewFixtures creates a new Fixtures instance for the given test database.
func NewFixtures(t *testing.T, db *mongo.Database) *Fixtures {
	t.Helper()
	return &Fixtures{db: db, t: t}
}

// DB returns the underlying database for direct access in tests.
func (f *Fixtures) DB() *mongo.Database {
	return f.db
}

// CreateUser inserts an active user with the given name and email.
func (f *Fixtures) CreateUser(ctx context.Context, firstName, lastName, email string) models.User {
	f.t.Helper()

	now := time.Now().UTC()
	u := models.User{
		ID:        primitive.NewObjectID(),
		FirstName: firstName,
		LastName:  lastName,
		Email:     email,
		Status:    "active",
		CreatedAt: now,
		UpdatedAt: now,
	}
	if _, err := f.db.Collection("users").InsertOne(ctx, u); err != nil {
		f.t.Fatalf("failed to create test user: %v", err)
	}
	return u
}

// CreateCourse inserts a visible course with completion tracking enabled.
func (f *Fixtures) CreateCourse(ctx context.Context, fullName string) models.Course {
	f.t.Helper()
	return f.createCourse(ctx, fullName, true, true)
}

// CreateHiddenCourse inserts a course with Visible=false.
func (f *Fixtures) CreateHiddenCourse(ctx context.Context, fullName string) models.Course {
	f.t.Helper()
	return f.createCourse(ctx, fullName, false, true)
}

// CreateCourseWithoutCompletion inserts a visible course whose completion
// tracking is disabled.
func (f *Fixtures) CreateCourseWithoutCompletion(ctx context.Context, fullName string) models.Course {
	f.t.Helper()
	return f.createCourse(ctx, fullName, true, false)
}

func (f *Fixtures) createCourse(ctx context.Context, fullName string, visible, completion bool) models.Course {
	now := time.Now().UTC()
	c := models.Course{
		ID:               primitive.NewObjectID(),
		FullName:         fullName,
		ShortName:        fullName,
		Visible:          visible,
		EnableCompletion: completion,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	if _, err := f.db.Collection("courses").InsertOne(ctx, c); err != nil {
		f.t.Fatalf("failed to create test course: %v", err)
	}
	return c
}

// Enroll links a user to a course with the given role.
func (f *Fixtures) Enroll(ctx context.Context, userID, courseID primitive.ObjectID, role string) models.Enrollment {
	f.t.Helper()

	e := models.Enrollment{
		ID:        primitive.NewObjectID(),
		UserID:    userID,
		CourseID:  courseID,
		Role:      role,
		CreatedAt: time.Now().UTC(),
	}
	if _, err := f.db.Collection("enrollments").InsertOne(ctx, e); err != nil {
		f.t.Fatalf("failed to create test enrollment: %v", err)
	}
	return e
}

// LinkChild creates a guardian link from parent to child.
func (f *Fixtures) LinkChild(ctx context.Context, parentID, childID primitive.ObjectID) models.GuardianLink {
	f.t.Helper()

	l := models.GuardianLink{
		ID:        primitive.NewObjectID(),
		ParentID:  parentID,
		ChildID:   childID,
		CreatedAt: time.Now().UTC(),
	}
	if _, err := f.db.Collection("guardian_links").InsertOne(ctx, l); err != nil {
		f.t.Fatalf("failed to create test guardian link: %v", err)
	}
	return l
}

// CreateActivity inserts a visible, tracked activity in the course.
func (f *Fixtures) CreateActivity(ctx context.Context, courseID primitive.ObjectID, name, module string) models.Activity {
	f.t.Helper()

	a := models.Activity{
		ID:        primitive.NewObjectID(),
		CourseID:  courseID,
		Name:      name,
		Module:    module,
		Tracked:   true,
		Visible:   true,
		CreatedAt: time.Now().UTC(),
	}
	if _, err := f.db.Collection("activities").InsertOne(ctx, a); err != nil {
		f.t.Fatalf("failed to create test activity: %v", err)
	}
	return a
}

// SetCompletion records a completion state for the (activity, user) pair.
func (f *Fixtures) SetCompletion(ctx context.Context, activityID, userID primitive.ObjectID, state string) {
	f.t.Helper()

	c := models.ActivityCompletion{
		ID:         primitive.NewObjectID(),
		ActivityID: activityID,
		UserID:     userID,
		State:      state,
		UpdatedAt:  time.Now().UTC(),
	}
	if _, err := f.db.Collection("activity_completions").InsertOne(ctx, c); err != nil {
		f.t.Fatalf("failed to create test completion: %v", err)
	}
}

// CreateCourseGradeItem inserts the numeric course-total grade item.
func (f *Fixtures) CreateCourseGradeItem(ctx context.Context, courseID primitive.ObjectID, gradeMax float64) models.GradeItem {
	f.t.Helper()

	gi := models.GradeItem{
		ID:        primitive.NewObjectID(),
		CourseID:  courseID,
		ItemType:  models.GradeItemCourse,
		GradeType: models.GradeTypeValue,
		GradeMax:  gradeMax,
		CreatedAt: time.Now().UTC(),
	}
	if _, err := f.db.Collection("grade_items").InsertOne(ctx, gi); err != nil {
		f.t.Fatalf("failed to create test grade item: %v", err)
	}
	return gi
}

// CreateActivityGradeItem inserts a numeric grade item for one activity.
func (f *Fixtures) CreateActivityGradeItem(ctx context.Context, courseID, activityID primitive.ObjectID, gradeMax float64) models.GradeItem {
	f.t.Helper()

	gi := models.GradeItem{
		ID:         primitive.NewObjectID(),
		CourseID:   courseID,
		ItemType:   models.GradeItemActivity,
		ActivityID: &activityID,
		GradeType:  models.GradeTypeValue,
		GradeMax:   gradeMax,
		CreatedAt:  time.Now().UTC(),
	}
	if _, err := f.db.Collection("grade_items").InsertOne(ctx, gi); err != nil {
		f.t.Fatalf("failed to create test grade item: %v", err)
	}
	return gi
}

// CreateScaleGradeItem inserts a scale-typed grade item for one activity.
func (f *Fixtures) CreateScaleGradeItem(ctx context.Context, courseID, activityID, scaleID primitive.ObjectID) models.GradeItem {
	f.t.Helper()

	gi := models.GradeItem{
		ID:         primitive.NewObjectID(),
		CourseID:   courseID,
		ItemType:   models.GradeItemActivity,
		ActivityID: &activityID,
		GradeType:  models.GradeTypeScale,
		ScaleID:    &scaleID,
		CreatedAt:  time.Now().UTC(),
	}
	if _, err := f.db.Collection("grade_items").InsertOne(ctx, gi); err != nil {
		f.t.Fatalf("failed to create test grade item: %v", err)
	}
	return gi
}

// CreateScale inserts an ordered achievement scale.
func (f *Fixtures) CreateScale(ctx context.Context, name string, items []string) models.Scale {
	f.t.Helper()

	s := models.Scale{
		ID:    primitive.NewObjectID(),
		Name:  name,
		Items: items,
	}
	if _, err := f.db.Collection("scales").InsertOne(ctx, s); err != nil {
		f.t.Fatalf("failed to create test scale: %v", err)
	}
	return s
}

// SetGrade records a final grade for the (item, user) pair. Pass nil for
// an ungraded record.
func (f *Fixtures) SetGrade(ctx context.Context, itemID, userID primitive.ObjectID, final *float64) {
	f.t.Helper()

	g := models.GradeGrade{
		ID:         primitive.NewObjectID(),
		ItemID:     itemID,
		UserID:     userID,
		FinalGrade: final,
		UpdatedAt:  time.Now().UTC(),
	}
	if _, err := f.db.Collection("grade_grades").InsertOne(ctx, g); err != nil {
		f.t.Fatalf("failed to create test grade: %v", err)
	}
}

// CreateEvent inserts a scheduled session event backed by the given
// zoom activity.
func (f *Fixtures) CreateEvent(ctx context.Context, courseID, activityID primitive.ObjectID, title string, start time.Time, durationMin int) models.Event {
	f.t.Helper()

	e := models.Event{
		ID:          primitive.NewObjectID(),
		CourseID:    courseID,
		ActivityID:  activityID,
		Title:       title,
		StartTime:   start,
		DurationMin: durationMin,
		JoinURL:     "https://zoom.example.com/j/" + primitive.NewObjectID().Hex(),
		CreatedAt:   time.Now().UTC(),
	}
	if _, err := f.db.Collection("events").InsertOne(ctx, e); err != nil {
		f.t.Fatalf("failed to create test event: %v", err)
	}
	return e
}

// Float returns a pointer to v, for optional grade values.
func Float(v float64) *float64 { return &v }
