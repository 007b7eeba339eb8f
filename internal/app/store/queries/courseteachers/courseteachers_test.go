package courseteachers_test

import (
	"testing"

	"github.com/dalemusser/learnhub/internal/app/store/queries/courseteachers"
	"github.com/dalemusser/learnhub/internal/domain/models"
	"github.com/dalemusser/learnhub/internal/testutil"
)

func TestPrimaryInstructor_OrdersByName(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	fx := testutil.NewFixtures(t, db)
	course := fx.CreateCourse(ctx, "Algebra I")

	zed := fx.CreateUser(ctx, "Zed", "Young", "zed@test.com")
	amy := fx.CreateUser(ctx, "Amy", "Able", "amy@test.com")
	fx.Enroll(ctx, zed.ID, course.ID, models.RoleTeacher)
	fx.Enroll(ctx, amy.ID, course.ID, models.RoleEditingTeacher)

	got, err := courseteachers.PrimaryInstructor(ctx, db, course.ID)
	if err != nil {
		t.Fatalf("PrimaryInstructor failed: %v", err)
	}
	if got == nil {
		t.Fatal("expected an instructor")
	}
	if got.ID != amy.ID {
		t.Errorf("expected Amy Able (last name sorts first), got %s", got.FullName())
	}
}

func TestPrimaryInstructor_IgnoresManagersAndStudents(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	fx := testutil.NewFixtures(t, db)
	course := fx.CreateCourse(ctx, "Biology")

	mgr := fx.CreateUser(ctx, "Max", "Manager", "max@test.com")
	stu := fx.CreateUser(ctx, "Sky", "Student", "sky@test.com")
	fx.Enroll(ctx, mgr.ID, course.ID, models.RoleManager)
	fx.Enroll(ctx, stu.ID, course.ID, models.RoleStudent)

	got, err := courseteachers.PrimaryInstructor(ctx, db, course.ID)
	if err != nil {
		t.Fatalf("PrimaryInstructor failed: %v", err)
	}
	if got != nil {
		t.Errorf("expected no instructor, got %s", got.FullName())
	}
}

func TestForStudent_DedupsAndAccumulatesCourses(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	fx := testutil.NewFixtures(t, db)
	student := fx.CreateUser(ctx, "Sky", "Student", "sky2@test.com")
	alg := fx.CreateCourse(ctx, "Algebra")
	bio := fx.CreateCourse(ctx, "Biology")
	fx.Enroll(ctx, student.ID, alg.ID, models.RoleStudent)
	fx.Enroll(ctx, student.ID, bio.ID, models.RoleStudent)

	// One teacher across both courses, one manager on a single course.
	terry := fx.CreateUser(ctx, "Terry", "Teacher", "terry@test.com")
	fx.Enroll(ctx, terry.ID, alg.ID, models.RoleTeacher)
	fx.Enroll(ctx, terry.ID, bio.ID, models.RoleEditingTeacher)
	max := fx.CreateUser(ctx, "Max", "Manager", "max2@test.com")
	fx.Enroll(ctx, max.ID, bio.ID, models.RoleManager)

	got, err := courseteachers.ForStudent(ctx, db, student.ID)
	if err != nil {
		t.Fatalf("ForStudent failed: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 teachers, got %d", len(got))
	}

	// Sorted by display name: "Max Manager" < "Terry Teacher".
	if got[0].Name != "Max Manager" || got[1].Name != "Terry Teacher" {
		t.Errorf("unexpected order: %q, %q", got[0].Name, got[1].Name)
	}
	if got[1].CourseList() != "Algebra, Biology" {
		t.Errorf("course list = %q, want both courses", got[1].CourseList())
	}
	if got[0].CourseList() != "Biology" {
		t.Errorf("manager course list = %q, want Biology", got[0].CourseList())
	}
}

func TestForStudent_SkipsHiddenCourses(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	fx := testutil.NewFixtures(t, db)
	student := fx.CreateUser(ctx, "Sky", "Student", "sky3@test.com")
	hidden := fx.CreateHiddenCourse(ctx, "Hidden")
	fx.Enroll(ctx, student.ID, hidden.ID, models.RoleStudent)

	terry := fx.CreateUser(ctx, "Terry", "Teacher", "terry2@test.com")
	fx.Enroll(ctx, terry.ID, hidden.ID, models.RoleTeacher)

	got, err := courseteachers.ForStudent(ctx, db, student.ID)
	if err != nil {
		t.Fatalf("ForStudent failed: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("expected no teachers for hidden course, got %d", len(got))
	}
}
