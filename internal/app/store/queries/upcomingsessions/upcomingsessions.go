// Package upcomingsessions lists scheduled video sessions for the
// dashboard: today's and upcoming meetings across a user's courses,
// joined against the events calendar.
package upcomingsessions

import (
	"context"
	"fmt"
	"time"

	activitystore "github.com/dalemusser/learnhub/internal/app/store/activities"
	coursestore "github.com/dalemusser/learnhub/internal/app/store/courses"
	enrollmentstore "github.com/dalemusser/learnhub/internal/app/store/enrollments"
	eventstore "github.com/dalemusser/learnhub/internal/app/store/events"
	"github.com/dalemusser/learnhub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// Categories stamped on each session for the client-side filter.
const (
	CategoryToday    = "today"
	CategoryUpcoming = "upcoming"
)

// Session is one upcoming meeting row.
type Session struct {
	EventID    primitive.ObjectID
	CourseID   primitive.ObjectID
	CourseName string
	Title      string
	StartTime  time.Time
	Duration   string // hours, for display
	Category   string // today | upcoming
	JoinURL    string
}

// Options control whose sessions are listed.
type Options struct {
	// Enabled mirrors the zoom module's site availability. When false
	// the lister returns nothing at all.
	Enabled bool

	// TeachingOnly restricts to courses where the user's enrollment
	// role carries instance-management capability (the teacher view).
	TeachingOnly bool

	// Now anchors "start of local day" and the today/upcoming split.
	// Zero means time.Now in local time.
	Now time.Time
}

// ForUser lists the user's sessions starting today or later, ascending
// by start time. Events whose backing activity record is gone are
// dropped silently.
func ForUser(ctx context.Context, db *mongo.Database, userID primitive.ObjectID, opts Options) ([]Session, error) {
	if !opts.Enabled {
		return nil, nil
	}
	now := opts.Now
	if now.IsZero() {
		now = time.Now()
	}

	enrollments, err := enrollmentstore.New(db).ForUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	var courseIDs []primitive.ObjectID
	seen := make(map[primitive.ObjectID]bool)
	for _, e := range enrollments {
		if opts.TeachingOnly && !models.IsManagingRole(e.Role) {
			continue
		}
		if !seen[e.CourseID] {
			seen[e.CourseID] = true
			courseIDs = append(courseIDs, e.CourseID)
		}
	}

	courses, err := coursestore.New(db).GetMany(ctx, courseIDs)
	if err != nil {
		return nil, err
	}

	dayStart := StartOfDay(now)
	events, err := eventstore.New(db).UpcomingForCourses(ctx, courseIDs, dayStart)
	if err != nil {
		return nil, err
	}

	acts := activitystore.New(db)
	var out []Session
	for _, ev := range events {
		course, ok := courses[ev.CourseID]
		if !ok || !course.Visible {
			continue
		}
		ok, err := acts.Exists(ctx, ev.ActivityID)
		if err != nil {
			return nil, err
		}
		if !ok {
			continue
		}

		out = append(out, Session{
			EventID:    ev.ID,
			CourseID:   ev.CourseID,
			CourseName: course.FullName,
			Title:      ev.Title,
			StartTime:  ev.StartTime,
			Duration:   FormatDuration(ev.DurationMin),
			Category:   Categorize(ev.StartTime, now),
			JoinURL:    ev.JoinURL,
		})
	}
	return out, nil
}

// StartOfDay truncates to local midnight in t's location.
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// Categorize tags a start time relative to now's local calendar day.
func Categorize(start, now time.Time) string {
	dayStart := StartOfDay(now)
	if start.Before(dayStart.AddDate(0, 0, 1)) {
		return CategoryToday
	}
	return CategoryUpcoming
}

// FormatDuration renders a minute count as hours, trimming a trailing
// ".0" so a 60-minute session shows as "1 hour".
func FormatDuration(minutes int) string {
	hours := float64(minutes) / 60
	if hours == float64(int(hours)) {
		if int(hours) == 1 {
			return "1 hour"
		}
		return fmt.Sprintf("%d hours", int(hours))
	}
	return fmt.Sprintf("%.1f hours", hours)
}
