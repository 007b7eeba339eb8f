// internal/app/features/dashboard/routes.go
package dashboard

import (
	_ "github.com/dalemusser/learnhub/internal/app/features/dashboard/views" // register templates
	"github.com/dalemusser/learnhub/internal/app/system/auth"
	"github.com/go-chi/chi/v5"
)

// Routes wires the dashboard feature under whatever mount point the
// top-level router chooses (e.g., "/dashboard").
//
// The handler dispatches to the role-specific view derived from the
// current user's guardianship and enrollments.
func Routes(h *Handler, sm *auth.SessionManager) chi.Router {
	r := chi.NewRouter()

	r.Group(func(pr chi.Router) {
		pr.Use(sm.RequireSignedIn)
		// Final paths are /dashboard and /dashboard/modal/* when
		// mounted at "/dashboard".
		pr.Get("/", h.ServeDashboard)
		pr.Get("/modal/activities", h.ServeActivitiesModal)
		pr.Get("/modal/grades", h.ServeGradesModal)
	})

	return r
}
