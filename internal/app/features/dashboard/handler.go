// internal/app/features/dashboard/handler.go
package dashboard

import (
	"context"
	"net/http"

	"github.com/dalemusser/learnhub/internal/app/store/queries/userrole"
	"github.com/dalemusser/learnhub/internal/app/system/authz"
	"github.com/dalemusser/learnhub/internal/app/system/timeouts"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

type Handler struct {
	DB  *mongo.Database
	Log *zap.Logger

	// ZoomEnabled mirrors the site-wide availability of the zoom
	// module; when false the session lists render empty.
	ZoomEnabled bool
}

func NewHandler(db *mongo.Database, logger *zap.Logger, zoomEnabled bool) *Handler {
	return &Handler{
		DB:          db,
		Log:         logger,
		ZoomEnabled: zoomEnabled,
	}
}

// ServeDashboard resolves the viewer's dashboard role and dispatches to
// the role-specific view. Site admins never see dashboard content.
func (h *Handler) ServeDashboard(w http.ResponseWriter, r *http.Request) {
	_, userID, ok := authz.UserCtx(r)
	if !ok {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}
	if authz.IsSiteAdmin(r) {
		http.Redirect(w, r, "/settings", http.StatusSeeOther)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	role, err := userrole.Resolve(ctx, h.DB, userID)
	if err != nil {
		h.Log.Error("dashboard role resolve", zap.Error(err))
		http.Error(w, "database error", http.StatusInternalServerError)
		return
	}

	switch role {
	case userrole.Parent:
		h.ServeParent(w, r)
	case userrole.Teacher:
		h.ServeTeacher(w, r)
	case userrole.Student:
		h.ServeStudent(w, r)
	default:
		h.ServeEmpty(w, r)
	}
}
