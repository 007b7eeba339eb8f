// internal/app/features/settings/admin.go
package settings

import (
	"context"
	"net/http"
	"strings"

	settingsstore "github.com/dalemusser/learnhub/internal/app/store/settings"
	"github.com/dalemusser/learnhub/internal/app/system/authz"
	"github.com/dalemusser/learnhub/internal/app/system/htmlsanitize"
	"github.com/dalemusser/learnhub/internal/app/system/timeouts"
	"github.com/dalemusser/learnhub/internal/app/system/viewdata"
	"github.com/dalemusser/learnhub/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/templates"
)

type settingsVM struct {
	viewdata.BaseVM
	SiteNameValue  string
	DashboardTitle string
	FooterValue    string
	Error          string
	Saved          bool
}

// ServeSettings displays the site settings form.
func (h *Handler) ServeSettings(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	settings, err := settingsstore.New(h.DB).Get(ctx)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "load settings failed", err, "Failed to load settings.", "/")
		return
	}

	h.render(w, r, settingsVM{
		BaseVM:         viewdata.NewBaseVM(r, h.DB, "Site Settings", "/"),
		SiteNameValue:  settings.SiteName,
		DashboardTitle: settings.DashboardTitle,
		FooterValue:    settings.FooterHTML,
		Saved:          r.URL.Query().Get("saved") == "1",
	})
}

// HandleSettings processes the settings form submission. The footer is
// sanitized before storage so whatever renders later is already safe.
func (h *Handler) HandleSettings(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.ErrLog.LogBadRequest(w, r, "parse form failed", err, "Invalid form data.", "/settings")
		return
	}

	siteName := strings.TrimSpace(r.FormValue("site_name"))
	dashboardTitle := strings.TrimSpace(r.FormValue("dashboard_title"))
	footerHTML := htmlsanitize.Sanitize(strings.TrimSpace(r.FormValue("footer_html")))

	if siteName == "" {
		h.renderWithError(w, r, "Site name is required.", siteName, dashboardTitle, footerHTML)
		return
	}

	name, userID, _ := authz.UserCtx(r)

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Long())
	defer cancel()

	err := settingsstore.New(h.DB).Save(ctx, models.SiteSettings{
		SiteName:       siteName,
		DashboardTitle: dashboardTitle,
		FooterHTML:     footerHTML,
		UpdatedByID:    &userID,
		UpdatedByName:  name,
	})
	if err != nil {
		h.ErrLog.LogServerError(w, r, "save settings failed", err, "Failed to save settings.", "/settings")
		return
	}

	http.Redirect(w, r, "/settings?saved=1", http.StatusSeeOther)
}

func (h *Handler) render(w http.ResponseWriter, r *http.Request, vm settingsVM) {
	templates.Render(w, r, "settings", vm)
}

func (h *Handler) renderWithError(w http.ResponseWriter, r *http.Request, msg, siteName, dashboardTitle, footerHTML string) {
	h.render(w, r, settingsVM{
		BaseVM:         viewdata.NewBaseVM(r, h.DB, "Site Settings", "/"),
		SiteNameValue:  siteName,
		DashboardTitle: dashboardTitle,
		FooterValue:    footerHTML,
		Error:          msg,
	})
}
