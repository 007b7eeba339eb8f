package coursemetrics_test

import (
	"testing"

	"github.com/dalemusser/learnhub/internal/app/store/queries/coursemetrics"
	"github.com/dalemusser/learnhub/internal/domain/models"
	"github.com/dalemusser/learnhub/internal/testutil"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestForUser_ProgressAndCompletion(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	fx := testutil.NewFixtures(t, db)
	u := fx.CreateUser(ctx, "Sky", "Student", "sky@test.com")
	course := fx.CreateCourse(ctx, "Algebra I")
	fx.Enroll(ctx, u.ID, course.ID, models.RoleStudent)

	a1 := fx.CreateActivity(ctx, course.ID, "Quiz 1", models.ModuleQuiz)
	a2 := fx.CreateActivity(ctx, course.ID, "Essay", models.ModuleAssignment)
	a3 := fx.CreateActivity(ctx, course.ID, "Reading", models.ModulePage)
	fx.SetCompletion(ctx, a1.ID, u.ID, models.CompletionComplete)
	fx.SetCompletion(ctx, a2.ID, u.ID, models.CompletionCompletePass)
	fx.SetCompletion(ctx, a3.ID, u.ID, models.CompletionInProgress)

	reports, err := coursemetrics.ForUser(ctx, db, u.ID)
	if err != nil {
		t.Fatalf("ForUser failed: %v", err)
	}
	if len(reports) != 1 {
		t.Fatalf("expected 1 report, got %d", len(reports))
	}

	rep := reports[0]
	// 2 of 3 complete: integer division gives 66.
	if rep.Progress.Percent != 66 {
		t.Errorf("progress percent = %d, want 66", rep.Progress.Percent)
	}
	if rep.Progress.Text != coursemetrics.TextInProgress {
		t.Errorf("progress text = %q, want in progress", rep.Progress.Text)
	}
	if rep.Completion.Completed != 2 || rep.Completion.Total != 3 {
		t.Errorf("completion = %d/%d, want 2/3", rep.Completion.Completed, rep.Completion.Total)
	}
	if len(rep.Activities) != 3 {
		t.Fatalf("expected 3 activity rows, got %d", len(rep.Activities))
	}
}

func TestForUser_CompletionDisabledCourse(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	fx := testutil.NewFixtures(t, db)
	u := fx.CreateUser(ctx, "Sky", "Student", "sky2@test.com")
	course := fx.CreateCourseWithoutCompletion(ctx, "Untracked Course")
	fx.Enroll(ctx, u.ID, course.ID, models.RoleStudent)

	a := fx.CreateActivity(ctx, course.ID, "Quiz", models.ModuleQuiz)
	fx.SetCompletion(ctx, a.ID, u.ID, models.CompletionComplete)

	reports, err := coursemetrics.ForUser(ctx, db, u.ID)
	if err != nil {
		t.Fatalf("ForUser failed: %v", err)
	}
	if len(reports) != 1 {
		t.Fatalf("expected 1 report, got %d", len(reports))
	}

	rep := reports[0]
	if rep.Progress.Percent != 0 || rep.Progress.Text != coursemetrics.TextNotStarted {
		t.Errorf("disabled completion must report zero progress, got %+v", rep.Progress)
	}
	if rep.HasActivities() {
		t.Error("disabled completion must produce no activity rows")
	}
}

func TestForUser_SkipsHiddenCourses(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	fx := testutil.NewFixtures(t, db)
	u := fx.CreateUser(ctx, "Sky", "Student", "sky3@test.com")
	hidden := fx.CreateHiddenCourse(ctx, "Hidden")
	fx.Enroll(ctx, u.ID, hidden.ID, models.RoleStudent)

	reports, err := coursemetrics.ForUser(ctx, db, u.ID)
	if err != nil {
		t.Fatalf("ForUser failed: %v", err)
	}
	if len(reports) != 0 {
		t.Errorf("expected no reports for hidden course, got %d", len(reports))
	}
}

func TestForUser_NumericGrades(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	fx := testutil.NewFixtures(t, db)
	u := fx.CreateUser(ctx, "Sky", "Student", "sky4@test.com")
	course := fx.CreateCourse(ctx, "Chemistry")
	fx.Enroll(ctx, u.ID, course.ID, models.RoleStudent)

	a := fx.CreateActivity(ctx, course.ID, "Lab Report", models.ModuleAssignment)
	item := fx.CreateActivityGradeItem(ctx, course.ID, a.ID, 10)
	fx.SetGrade(ctx, item.ID, u.ID, testutil.Float(7))

	courseItem := fx.CreateCourseGradeItem(ctx, course.ID, 100)
	fx.SetGrade(ctx, courseItem.ID, u.ID, testutil.Float(42))

	reports, err := coursemetrics.ForUser(ctx, db, u.ID)
	if err != nil {
		t.Fatalf("ForUser failed: %v", err)
	}
	if len(reports) != 1 {
		t.Fatalf("expected 1 report, got %d", len(reports))
	}

	rep := reports[0]
	if rep.Grade.Display != "42.00" {
		t.Errorf("course grade display = %q, want 42.00", rep.Grade.Display)
	}
	// Percentage is recomputed from the numeric activity grades: 7/10.
	if rep.Grade.PercentText != "70.0%" {
		t.Errorf("course grade percent = %q, want 70.0%%", rep.Grade.PercentText)
	}
	if rep.Grade.Class != coursemetrics.ClassSuccess {
		t.Errorf("course grade class = %q, want success", rep.Grade.Class)
	}

	if len(rep.Grades) != 1 {
		t.Fatalf("expected 1 grade row, got %d", len(rep.Grades))
	}
	row := rep.Grades[0]
	if row.Display != "7.00" {
		t.Errorf("activity grade display = %q, want 7.00", row.Display)
	}
	if !row.HasGrade || row.IsScale {
		t.Errorf("expected numeric graded row, got %+v", row)
	}
}

func TestForUser_CourseItemOnlyFallsBackToItsOwnMax(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	fx := testutil.NewFixtures(t, db)
	u := fx.CreateUser(ctx, "Sky", "Student", "sky10@test.com")
	course := fx.CreateCourse(ctx, "Physics")
	fx.Enroll(ctx, u.ID, course.ID, models.RoleStudent)

	courseItem := fx.CreateCourseGradeItem(ctx, course.ID, 100)
	fx.SetGrade(ctx, courseItem.ID, u.ID, testutil.Float(42))

	reports, err := coursemetrics.ForUser(ctx, db, u.ID)
	if err != nil {
		t.Fatalf("ForUser failed: %v", err)
	}
	rep := reports[0]
	if rep.Grade.Display != "42.00" {
		t.Errorf("course grade display = %q, want 42.00", rep.Grade.Display)
	}
	if rep.Grade.PercentText != "42.0%" {
		t.Errorf("course grade percent = %q, want 42.0%%", rep.Grade.PercentText)
	}
	if rep.Grade.Class != coursemetrics.ClassDanger {
		t.Errorf("course grade class = %q, want danger", rep.Grade.Class)
	}
}

func TestForUser_ScaleGrades(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	fx := testutil.NewFixtures(t, db)
	u := fx.CreateUser(ctx, "Sky", "Student", "sky5@test.com")
	course := fx.CreateCourse(ctx, "Drama")
	fx.Enroll(ctx, u.ID, course.ID, models.RoleStudent)

	scale := fx.CreateScale(ctx, "Achievement", []string{"Fail", "Pass", "Merit", "Distinction"})
	a := fx.CreateActivity(ctx, course.ID, "Performance", models.ModuleAssignment)
	item := fx.CreateScaleGradeItem(ctx, course.ID, a.ID, scale.ID)
	fx.SetGrade(ctx, item.ID, u.ID, testutil.Float(3))

	reports, err := coursemetrics.ForUser(ctx, db, u.ID)
	if err != nil {
		t.Fatalf("ForUser failed: %v", err)
	}
	if len(reports) != 1 {
		t.Fatalf("expected 1 report, got %d", len(reports))
	}

	rows := reports[0].Grades
	if len(rows) != 1 {
		t.Fatalf("expected 1 grade row, got %d", len(rows))
	}
	if rows[0].Display != "Merit" {
		t.Errorf("scale grade display = %q, want Merit", rows[0].Display)
	}
	if !rows[0].IsScale {
		t.Error("expected scale row")
	}
	if len(rows[0].ScaleItems) != 4 {
		t.Errorf("expected full scale label list, got %v", rows[0].ScaleItems)
	}
}

func TestForUser_UngradedScaleShowsNotApplicable(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	fx := testutil.NewFixtures(t, db)
	u := fx.CreateUser(ctx, "Sky", "Student", "sky6@test.com")
	course := fx.CreateCourse(ctx, "Music")
	fx.Enroll(ctx, u.ID, course.ID, models.RoleStudent)

	scale := fx.CreateScale(ctx, "Achievement", []string{"Fail", "Pass"})
	a := fx.CreateActivity(ctx, course.ID, "Recital", models.ModuleAssignment)
	fx.CreateScaleGradeItem(ctx, course.ID, a.ID, scale.ID)

	reports, err := coursemetrics.ForUser(ctx, db, u.ID)
	if err != nil {
		t.Fatalf("ForUser failed: %v", err)
	}
	rows := reports[0].Grades
	if len(rows) != 1 {
		t.Fatalf("expected 1 grade row, got %d", len(rows))
	}
	if rows[0].Display != coursemetrics.TextNotApplicable {
		t.Errorf("ungraded scale display = %q, want %q", rows[0].Display, coursemetrics.TextNotApplicable)
	}
	if rows[0].HasGrade {
		t.Error("ungraded row must not report HasGrade")
	}
}

func TestForUser_NoCourseItemShowsDash(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	fx := testutil.NewFixtures(t, db)
	u := fx.CreateUser(ctx, "Sky", "Student", "sky7@test.com")
	course := fx.CreateCourse(ctx, "Art")
	fx.Enroll(ctx, u.ID, course.ID, models.RoleStudent)

	reports, err := coursemetrics.ForUser(ctx, db, u.ID)
	if err != nil {
		t.Fatalf("ForUser failed: %v", err)
	}
	rep := reports[0]
	if rep.Grade.Display != coursemetrics.TextNoGrade {
		t.Errorf("grade display = %q, want %q", rep.Grade.Display, coursemetrics.TextNoGrade)
	}
	if rep.Grade.HasGrade {
		t.Error("missing course item must not report HasGrade")
	}
}

func TestForUser_SortsByCourseName(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	fx := testutil.NewFixtures(t, db)
	u := fx.CreateUser(ctx, "Sky", "Student", "sky8@test.com")
	zoo := fx.CreateCourse(ctx, "Zoology")
	alg := fx.CreateCourse(ctx, "Algebra")
	fx.Enroll(ctx, u.ID, zoo.ID, models.RoleStudent)
	fx.Enroll(ctx, u.ID, alg.ID, models.RoleStudent)

	reports, err := coursemetrics.ForUser(ctx, db, u.ID)
	if err != nil {
		t.Fatalf("ForUser failed: %v", err)
	}
	if len(reports) != 2 {
		t.Fatalf("expected 2 reports, got %d", len(reports))
	}
	if reports[0].FullName != "Algebra" || reports[1].FullName != "Zoology" {
		t.Errorf("reports out of order: %q, %q", reports[0].FullName, reports[1].FullName)
	}
}

func TestForUserCourse_MissingOrHiddenReturnsNil(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	fx := testutil.NewFixtures(t, db)
	u := fx.CreateUser(ctx, "Sky", "Student", "sky9@test.com")

	rep, err := coursemetrics.ForUserCourse(ctx, db, u.ID, primitive.NewObjectID())
	if err != nil {
		t.Fatalf("ForUserCourse failed: %v", err)
	}
	if rep != nil {
		t.Error("expected nil report for missing course")
	}

	hidden := fx.CreateHiddenCourse(ctx, "Hidden")
	rep, err = coursemetrics.ForUserCourse(ctx, db, u.ID, hidden.ID)
	if err != nil {
		t.Fatalf("ForUserCourse failed: %v", err)
	}
	if rep != nil {
		t.Error("expected nil report for hidden course")
	}
}
