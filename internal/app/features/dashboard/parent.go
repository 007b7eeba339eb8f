// internal/app/features/dashboard/parent.go
package dashboard

import (
	"context"
	"net/http"

	guardianstore "github.com/dalemusser/learnhub/internal/app/store/guardians"
	prefstore "github.com/dalemusser/learnhub/internal/app/store/prefs"
	"github.com/dalemusser/learnhub/internal/app/store/queries/coursemetrics"
	"github.com/dalemusser/learnhub/internal/app/store/queries/courseteachers"
	"github.com/dalemusser/learnhub/internal/app/store/queries/upcomingsessions"
	userstore "github.com/dalemusser/learnhub/internal/app/store/users"
	"github.com/dalemusser/learnhub/internal/app/system/authz"
	"github.com/dalemusser/learnhub/internal/app/system/timeouts"
	"github.com/dalemusser/learnhub/internal/app/system/viewdata"
	"github.com/dalemusser/learnhub/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/templates"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// ServeParent renders the parent dashboard: a child selector plus the
// selected child's courses, sessions, and teachers.
func (h *Handler) ServeParent(w http.ResponseWriter, r *http.Request) {
	_, parentID, ok := authz.UserCtx(r)
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

	children, err := guardianstore.New(h.DB).ChildIDs(ctx, parentID)
	if err != nil {
		h.Log.Error("parent dashboard: load children", zap.Error(err))
		http.Error(w, "database error", http.StatusInternalServerError)
		return
	}
	if len(children) == 0 {
		// A parent with no linked children gets an informational
		// empty state, not an error.
		templates.Render(w, r, "parent_dashboard", data)
		return
	}
	data.HasChildren = true

	selected, err := h.resolveSelectedChild(ctx, parentID, children, r.URL.Query().Get("selectedchild"))
	if err != nil {
		h.Log.Error("parent dashboard: resolve selected child", zap.Error(err))
		http.Error(w, "database error", http.StatusInternalServerError)
		return
	}
	data.SelectedChild = selected.Hex()
	data.TargetUser = selected.Hex()

	users, err := userstore.New(h.DB).GetMany(ctx, children)
	if err != nil {
		h.Log.Error("parent dashboard: load child users", zap.Error(err))
		http.Error(w, "database error", http.StatusInternalServerError)
		return
	}
	for _, id := range children {
		u, ok := users[id]
		if !ok {
			continue
		}
		opt := childOption{ID: id.Hex(), Name: u.FullName(), Selected: id == selected}
		if opt.Selected {
			data.ChildName = opt.Name
		}
		data.Children = append(data.Children, opt)
	}

	if err := h.fillChildContent(ctx, &data, selected); err != nil {
		h.Log.Error("parent dashboard: build child content", zap.Error(err))
		http.Error(w, "database error", http.StatusInternalServerError)
		return
	}

	templates.Render(w, r, "parent_dashboard", data)
}

// resolveSelectedChild applies the selection rules: an explicit query
// parameter wins when it names one of the parent's children, then the
// stored preference, then the first child. A stale stored value is
// reset to the first child. The winning value is persisted so the next
// visit starts from it.
func (h *Handler) resolveSelectedChild(ctx context.Context, parentID primitive.ObjectID, children []primitive.ObjectID, param string) (primitive.ObjectID, error) {
	isChild := func(id primitive.ObjectID) bool {
		for _, c := range children {
			if c == id {
				return true
			}
		}
		return false
	}

	prefs := prefstore.New(h.DB)

	if param != "" {
		if id, err := primitive.ObjectIDFromHex(param); err == nil && isChild(id) {
			if err := prefs.Set(ctx, parentID, models.PrefSelectedChild, id.Hex()); err != nil {
				return primitive.NilObjectID, err
			}
			return id, nil
		}
		// Unknown or malformed id in the URL: fall through to the
		// stored preference rather than erroring.
	}

	stored, err := prefs.Get(ctx, parentID, models.PrefSelectedChild)
	if err != nil {
		return primitive.NilObjectID, err
	}
	if stored != "" {
		if id, err := primitive.ObjectIDFromHex(stored); err == nil && isChild(id) {
			return id, nil
		}
	}

	// No usable preference (never set, or the link was removed since):
	// reset to the first child.
	first := children[0]
	if err := prefs.Set(ctx, parentID, models.PrefSelectedChild, first.Hex()); err != nil {
		return primitive.NilObjectID, err
	}
	return first, nil
}

// fillChildContent loads the selected child's courses, sessions, and
// teachers into the view model.
func (h *Handler) fillChildContent(ctx context.Context, data *dashboardData, childID primitive.ObjectID) error {
	reports, err := coursemetrics.ForUser(ctx, h.DB, childID)
	if err != nil {
		return err
	}
	cards, err := courseCards(ctx, h.DB, reports)
	if err != nil {
		return err
	}
	data.Courses = cards

	sessions, err := upcomingsessions.ForUser(ctx, h.DB, childID, upcomingsessions.Options{Enabled: h.ZoomEnabled})
	if err != nil {
		return err
	}
	data.Sessions = sessionRows(sessions, actionJoin)

	teachers, err := courseteachers.ForStudent(ctx, h.DB, childID)
	if err != nil {
		return err
	}
	data.Teachers = teachers
	return nil
}
