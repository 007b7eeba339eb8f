// internal/app/features/dashboard/modal.go
package dashboard

import (
	"context"
	"net/http"

	"github.com/dalemusser/learnhub/internal/app/policy/viewpolicy"
	"github.com/dalemusser/learnhub/internal/app/store/queries/coursemetrics"
	"github.com/dalemusser/learnhub/internal/app/system/authz"
	"github.com/dalemusser/learnhub/internal/app/system/timeouts"
	"github.com/dalemusser/waffle/pantry/templates"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// modalData is the view model for the activity/grade table snippets.
type modalData struct {
	CourseName string
	Report     *coursemetrics.CourseReport
}

// ServeActivitiesModal renders the activities table snippet for one
// course. GET /dashboard/modal/activities?course=<id>&user=<id>
func (h *Handler) ServeActivitiesModal(w http.ResponseWriter, r *http.Request) {
	h.serveModal(w, r, "activities_modal")
}

// ServeGradesModal renders the grades table snippet for one course.
// GET /dashboard/modal/grades?course=<id>&user=<id>
func (h *Handler) ServeGradesModal(w http.ResponseWriter, r *http.Request) {
	h.serveModal(w, r, "grades_modal")
}

func (h *Handler) serveModal(w http.ResponseWriter, r *http.Request, tmpl string) {
	_, viewerID, ok := authz.UserCtx(r)
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	courseID, err := primitive.ObjectIDFromHex(r.URL.Query().Get("course"))
	if err != nil {
		http.Error(w, "bad course id", http.StatusBadRequest)
		return
	}
	targetID, err := primitive.ObjectIDFromHex(r.URL.Query().Get("user"))
	if err != nil {
		http.Error(w, "bad user id", http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	allowed, err := viewpolicy.CanViewUserData(ctx, h.DB, viewerID, targetID)
	if err != nil {
		h.Log.Error("modal access check", zap.Error(err))
		http.Error(w, "database error", http.StatusInternalServerError)
		return
	}
	if !allowed {
		http.Error(w, "forbidden", http.StatusForbidden)
		return
	}

	report, err := coursemetrics.ForUserCourse(ctx, h.DB, targetID, courseID)
	if err != nil {
		h.Log.Error("modal course aggregation", zap.Error(err))
		http.Error(w, "database error", http.StatusInternalServerError)
		return
	}
	if report == nil {
		http.NotFound(w, r)
		return
	}

	templates.RenderSnippet(w, tmpl, modalData{CourseName: report.FullName, Report: report})
}
