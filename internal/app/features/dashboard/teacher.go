// internal/app/features/dashboard/teacher.go
package dashboard

import (
	"context"
	"net/http"

	"github.com/dalemusser/learnhub/internal/app/store/queries/upcomingsessions"
	"github.com/dalemusser/learnhub/internal/app/system/authz"
	"github.com/dalemusser/learnhub/internal/app/system/timeouts"
	"github.com/dalemusser/learnhub/internal/app/system/viewdata"
	"github.com/dalemusser/waffle/pantry/templates"
	"go.uber.org/zap"
)

// ServeTeacher renders the teacher dashboard: upcoming sessions in
// courses the teacher runs, with a Start/Join action. Teachers get no
// course aggregation.
func (h *Handler) ServeTeacher(w http.ResponseWriter, r *http.Request) {
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

	sessions, err := upcomingsessions.ForUser(ctx, h.DB, userID, upcomingsessions.Options{
		Enabled:      h.ZoomEnabled,
		TeachingOnly: true,
	})
	if err != nil {
		h.Log.Error("teacher dashboard: sessions", zap.Error(err))
		http.Error(w, "database error", http.StatusInternalServerError)
		return
	}
	data.Sessions = sessionRows(sessions, actionStartJoin)

	templates.Render(w, r, "teacher_dashboard", data)
}

// ServeEmpty renders the placeholder for signed-in users who are
// neither parent, student, nor teacher.
func (h *Handler) ServeEmpty(w http.ResponseWriter, r *http.Request) {
	settings := viewdata.GetSettings(r.Context(), h.DB)
	data := dashboardData{
		BaseVM:         viewdata.NewBaseVM(r, h.DB, settings.EffectiveDashboardTitle(), "/"),
		DashboardTitle: settings.EffectiveDashboardTitle(),
	}
	templates.Render(w, r, "empty_dashboard", data)
}
