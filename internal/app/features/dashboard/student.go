// internal/app/features/dashboard/student.go
package dashboard

import (
	"context"
	"net/http"

	"github.com/dalemusser/learnhub/internal/app/store/queries/coursemetrics"
	"github.com/dalemusser/learnhub/internal/app/store/queries/courseteachers"
	"github.com/dalemusser/learnhub/internal/app/store/queries/upcomingsessions"
	"github.com/dalemusser/learnhub/internal/app/system/authz"
	"github.com/dalemusser/learnhub/internal/app/system/timeouts"
	"github.com/dalemusser/learnhub/internal/app/system/viewdata"
	"github.com/dalemusser/waffle/pantry/templates"
	"go.uber.org/zap"
)

// ServeStudent renders the student's own dashboard: course cards,
// upcoming sessions, and the teachers across their courses.
func (h *Handler) ServeStudent(w http.ResponseWriter, r *http.Request) {
	_, userID, ok := authz.UserCtx(r)
	if !ok {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	settings := viewdata.GetSettings(ctx, h.DB)
	data := dashboardData{
		BaseVM:         viewdata.NewBaseVM(r, h.DB, settings.EffectiveDashboardTitle(), "/"),
		DashboardTitle: settings.EffectiveDashboardTitle(),
	}
	data.TargetUser = userID.Hex()

	reports, err := coursemetrics.ForUser(ctx, h.DB, userID)
	if err != nil {
		h.Log.Error("student dashboard: course aggregation", zap.Error(err))
		http.Error(w, "database error", http.StatusInternalServerError)
		return
	}
	cards, err := courseCards(ctx, h.DB, reports)
	if err != nil {
		h.Log.Error("student dashboard: course instructors", zap.Error(err))
		http.Error(w, "database error", http.StatusInternalServerError)
		return
	}
	data.Courses = cards

	sessions, err := upcomingsessions.ForUser(ctx, h.DB, userID, upcomingsessions.Options{Enabled: h.ZoomEnabled})
	if err != nil {
		h.Log.Error("student dashboard: sessions", zap.Error(err))
		http.Error(w, "database error", http.StatusInternalServerError)
		return
	}
	data.Sessions = sessionRows(sessions, actionJoin)

	teachers, err := courseteachers.ForStudent(ctx, h.DB, userID)
	if err != nil {
		h.Log.Error("student dashboard: teachers", zap.Error(err))
		http.Error(w, "database error", http.StatusInternalServerError)
		return
	}
	data.Teachers = teachers

	templates.Render(w, r, "student_dashboard", data)
}
