// internal/app/features/settings/routes.go
package settings

import (
	_ "github.com/dalemusser/learnhub/internal/app/features/settings/views" // register templates
	"github.com/dalemusser/learnhub/internal/app/system/auth"
	"github.com/go-chi/chi/v5"
)

// Routes wires the settings feature. All routes require the site admin
// role.
func Routes(h *Handler, sm *auth.SessionManager) chi.Router {
	r := chi.NewRouter()

	r.Group(func(pr chi.Router) {
		pr.Use(sm.RequireSignedIn)
		pr.Use(sm.RequireSiteAdmin)
		pr.Get("/", h.ServeSettings)
		pr.Post("/", h.HandleSettings)
	})

	return r
}
