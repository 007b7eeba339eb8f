// internal/app/features/dashboard/common.go
package dashboard

import (
	"context"

	"github.com/dalemusser/learnhub/internal/app/store/queries/coursemetrics"
	"github.com/dalemusser/learnhub/internal/app/store/queries/courseteachers"
	"github.com/dalemusser/learnhub/internal/app/store/queries/upcomingsessions"
	"github.com/dalemusser/learnhub/internal/app/system/viewdata"
	"go.mongodb.org/mongo-driver/mongo"
)

// Action labels on session rows. Teachers can start their own
// meetings; everyone else only joins.
const (
	actionJoin      = "Join"
	actionStartJoin = "Start/Join"
)

// childOption is one entry in the parent's child selector.
type childOption struct {
	ID       string
	Name     string
	Selected bool
}

// courseCard pairs a course report with the name of the course's
// primary instructor for the card header.
type courseCard struct {
	coursemetrics.CourseReport
	Instructor string
}

// sessionRow wraps a session with its display formatting.
type sessionRow struct {
	upcomingsessions.Session
	StartDisplay string
	ActionLabel  string
}

// dashboardData is the shared view model for the role dashboards.
// Parent-only fields stay zero for the other roles.
type dashboardData struct {
	viewdata.BaseVM
	DashboardTitle string

	Children      []childOption
	SelectedChild string
	ChildName     string
	HasChildren   bool

	// TargetUser is whose data the course cards show: the viewer for
	// students, the selected child for parents. The modal buttons
	// carry it as a data attribute.
	TargetUser string

	Courses  []courseCard
	Sessions []sessionRow
	Teachers []courseteachers.Teacher
}

// courseCards looks up each course's primary instructor. A course with
// nobody in an instructor role gets a card with no instructor line.
func courseCards(ctx context.Context, db *mongo.Database, reports []coursemetrics.CourseReport) ([]courseCard, error) {
	cards := make([]courseCard, 0, len(reports))
	for _, report := range reports {
		card := courseCard{CourseReport: report}
		instructor, err := courseteachers.PrimaryInstructor(ctx, db, report.CourseID)
		if err != nil {
			return nil, err
		}
		if instructor != nil {
			card.Instructor = instructor.FullName()
		}
		cards = append(cards, card)
	}
	return cards, nil
}

func sessionRows(sessions []upcomingsessions.Session, action string) []sessionRow {
	rows := make([]sessionRow, 0, len(sessions))
	for _, s := range sessions {
		rows = append(rows, sessionRow{
			Session:      s,
			StartDisplay: s.StartTime.Format("Mon Jan 2, 3:04 PM"),
			ActionLabel:  action,
		})
	}
	return rows
}
