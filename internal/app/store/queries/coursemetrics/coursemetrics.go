// Package coursemetrics builds the per-course dashboard aggregation:
// progress, course grade, activity completion, and the activity/grade
// lists behind the modals. The arithmetic lives in metrics.go as pure
// functions; this file fetches and assembles.
package coursemetrics

import (
	"context"
	"errors"
	"sort"

	activitystore "github.com/dalemusser/learnhub/internal/app/store/activities"
	coursestore "github.com/dalemusser/learnhub/internal/app/store/courses"
	enrollmentstore "github.com/dalemusser/learnhub/internal/app/store/enrollments"
	gradestore "github.com/dalemusser/learnhub/internal/app/store/grades"
	"github.com/dalemusser/learnhub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// CourseReport is the complete aggregation for one course.
type CourseReport struct {
	CourseID   primitive.ObjectID
	FullName   string
	Progress   Progress
	Grade      Grade
	Completion Completion
	Activities []ActivityRow
	Grades     []GradeRow
}

// HasActivities reports whether the activities modal has rows.
func (r *CourseReport) HasActivities() bool { return len(r.Activities) > 0 }

// HasGrades reports whether the grades modal has rows.
func (r *CourseReport) HasGrades() bool { return len(r.Grades) > 0 }

// ForUser aggregates every visible enrolled course for the user.
// Courses marked not-visible are skipped entirely.
func ForUser(ctx context.Context, db *mongo.Database, userID primitive.ObjectID) ([]CourseReport, error) {
	enrollments, err := enrollmentstore.New(db).ForUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	courseIDs := make([]primitive.ObjectID, 0, len(enrollments))
	seen := make(map[primitive.ObjectID]bool, len(enrollments))
	for _, e := range enrollments {
		if !seen[e.CourseID] {
			seen[e.CourseID] = true
			courseIDs = append(courseIDs, e.CourseID)
		}
	}

	courses, err := coursestore.New(db).GetMany(ctx, courseIDs)
	if err != nil {
		return nil, err
	}

	acts := activitystore.New(db)
	grades := gradestore.New(db)

	var reports []CourseReport
	for _, id := range courseIDs {
		course, ok := courses[id]
		if !ok || !course.Visible {
			continue
		}
		report, err := buildReport(ctx, acts, grades, course, userID)
		if err != nil {
			return nil, err
		}
		reports = append(reports, report)
	}

	sort.Slice(reports, func(i, j int) bool {
		return reports[i].FullName < reports[j].FullName
	})
	return reports, nil
}

// ForUserCourse aggregates a single course for the user. Returns nil
// when the course does not exist or is not visible; the modal endpoints
// treat that as not-found.
func ForUserCourse(ctx context.Context, db *mongo.Database, userID, courseID primitive.ObjectID) (*CourseReport, error) {
	course, err := coursestore.New(db).GetByID(ctx, courseID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	if !course.Visible {
		return nil, nil
	}
	report, err := buildReport(ctx, activitystore.New(db), gradestore.New(db), *course, userID)
	if err != nil {
		return nil, err
	}
	return &report, nil
}

func buildReport(ctx context.Context, acts *activitystore.Store, grades *gradestore.Store, course models.Course, userID primitive.ObjectID) (CourseReport, error) {
	report := CourseReport{CourseID: course.ID, FullName: course.FullName}

	activities, err := acts.VisibleForCourse(ctx, course.ID)
	if err != nil {
		return CourseReport{}, err
	}
	states, err := acts.CompletionStates(ctx, course.ID, userID)
	if err != nil {
		return CourseReport{}, err
	}

	report.Progress, report.Completion, report.Activities = completionMetrics(course, activities, states)

	if err := gradeMetrics(ctx, grades, course, activities, userID, &report); err != nil {
		return CourseReport{}, err
	}
	return report, nil
}

// completionMetrics computes progress, activity completion, and the
// activity rows from one pass over the tracked activities.
func completionMetrics(course models.Course, activities []models.Activity, states map[primitive.ObjectID]string) (Progress, Completion, []ActivityRow) {
	if !course.EnableCompletion {
		// Tracking disabled: zero progress, no rows.
		return DisabledProgress(), Completion{Class: ClassSecondary}, nil
	}

	var rows []ActivityRow
	completed, total := 0, 0
	for _, a := range activities {
		if !a.Tracked {
			continue
		}
		total++

		done := false
		switch states[a.ID] {
		case models.CompletionComplete, models.CompletionCompletePass:
			done = true
			completed++
		}

		row := ActivityRow{
			Name:           a.Name,
			Module:         a.Module,
			Completed:      done,
			CompletedText:  TextNotCompleted,
			CompletedClass: BadgeIncomplete,
		}
		if done {
			row.CompletedText = TextCompleted
			row.CompletedClass = BadgeComplete
		}
		rows = append(rows, row)
	}

	percent := 0
	if total > 0 {
		percent = completed * 100 / total
	}
	return ProgressFor(percent), CompletionFor(completed, total), rows
}

// gradeMetrics fills the course grade and the grade rows.
func gradeMetrics(ctx context.Context, grades *gradestore.Store, course models.Course, activities []models.Activity, userID primitive.ObjectID, report *CourseReport) error {
	courseItem, err := grades.CourseItem(ctx, course.ID)
	if err != nil {
		return err
	}
	activityItems, err := grades.ActivityItems(ctx, course.ID)
	if err != nil {
		return err
	}

	itemIDs := make([]primitive.ObjectID, 0, len(activityItems)+1)
	for _, item := range activityItems {
		itemIDs = append(itemIDs, item.ID)
	}
	if courseItem != nil {
		itemIDs = append(itemIDs, courseItem.ID)
	}
	finals, err := grades.FinalGrades(ctx, itemIDs, userID)
	if err != nil {
		return err
	}

	// Grade rows follow activity order; only activities with a grade
	// item appear.
	scales := make(map[primitive.ObjectID]*models.Scale)
	var numeric []NumericActivityGrade
	for _, a := range activities {
		item, ok := activityItems[a.ID]
		if !ok {
			continue
		}
		final := finals[item.ID]

		row := GradeRow{
			Name:     a.Name,
			Display:  TextNotApplicable,
			HasGrade: final != nil,
		}

		if item.GradeType == models.GradeTypeScale {
			row.IsScale = true
			if item.ScaleID != nil {
				scale, ok := scales[*item.ScaleID]
				if !ok {
					scale, err = grades.GetScale(ctx, *item.ScaleID)
					if err != nil {
						return err
					}
					scales[*item.ScaleID] = scale
				}
				row.ScaleItems = scale.Items
				if final != nil {
					// Out-of-range values leave the achieved label
					// empty; that is a guard, not an error.
					row.AchievedScale = ResolveScaleLabel(scale, *final)
					if row.AchievedScale != "" {
						row.Display = row.AchievedScale
					}
				}
			}
		} else {
			row.GradeMax = item.GradeMax
			if final != nil {
				row.Display = FormatValue(*final)
			}
			numeric = append(numeric, NumericActivityGrade{Final: final, GradeMax: item.GradeMax})
		}

		report.Grades = append(report.Grades, row)
	}

	report.Grade = Grade{Display: TextNoGrade, PercentText: TextNoGrade, Class: ClassSecondary}
	if courseItem == nil {
		return nil
	}
	final := finals[courseItem.ID]
	if final == nil {
		return nil
	}

	// Prefer the percentage recomputed from numeric activity grades;
	// when none qualify, fall back to the aggregate item's own value.
	percent := RecomputePercent(numeric)
	if !anyGraded(numeric) && courseItem.GradeMax > 0 {
		percent = *final / courseItem.GradeMax * 100
	}
	report.Grade = Grade{
		Display:     FormatValue(*final),
		Percent:     percent,
		PercentText: FormatPercent(percent),
		GradeMax:    courseItem.GradeMax,
		HasGrade:    true,
		Class:       GradeClass(percent),
	}
	return nil
}

func anyGraded(items []NumericActivityGrade) bool {
	for _, it := range items {
		if it.Final != nil && it.GradeMax > 0 {
			return true
		}
	}
	return false
}
