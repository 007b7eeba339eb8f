package dashboard

import (
	"testing"

	"github.com/dalemusser/learnhub/internal/app/store/queries/coursemetrics"
	"github.com/dalemusser/learnhub/internal/domain/models"
	"github.com/dalemusser/learnhub/internal/testutil"
)

func TestCourseCards_NamesPrimaryInstructor(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()
	f := testutil.NewFixtures(t, db)

	course := f.CreateCourse(ctx, "Algebra")
	teacher := f.CreateUser(ctx, "Terry", "Teacher", "terry@test.com")
	f.Enroll(ctx, teacher.ID, course.ID, models.RoleTeacher)

	cards, err := courseCards(ctx, db, []coursemetrics.CourseReport{
		{CourseID: course.ID, FullName: course.FullName},
	})
	if err != nil {
		t.Fatalf("courseCards failed: %v", err)
	}
	if len(cards) != 1 {
		t.Fatalf("got %d cards, want 1", len(cards))
	}
	if cards[0].Instructor != "Terry Teacher" {
		t.Errorf("Instructor = %q, want Terry Teacher", cards[0].Instructor)
	}
	if cards[0].FullName != "Algebra" {
		t.Errorf("FullName = %q, want Algebra", cards[0].FullName)
	}
}

func TestCourseCards_NoInstructorLeavesBlank(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()
	f := testutil.NewFixtures(t, db)

	course := f.CreateCourse(ctx, "Biology")
	student := f.CreateUser(ctx, "Sky", "Student", "sky@test.com")
	f.Enroll(ctx, student.ID, course.ID, models.RoleStudent)

	cards, err := courseCards(ctx, db, []coursemetrics.CourseReport{
		{CourseID: course.ID, FullName: course.FullName},
	})
	if err != nil {
		t.Fatalf("courseCards failed: %v", err)
	}
	if len(cards) != 1 {
		t.Fatalf("got %d cards, want 1", len(cards))
	}
	if cards[0].Instructor != "" {
		t.Errorf("Instructor = %q, want empty for a course with no teacher", cards[0].Instructor)
	}
}
