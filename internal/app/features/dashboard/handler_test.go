package dashboard_test

import (
	"net/http/httptest"
	"testing"

	"github.com/dalemusser/learnhub/internal/app/features/dashboard"
	"github.com/dalemusser/learnhub/internal/testutil"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

func TestServeDashboard_AnonymousRedirectsHome(t *testing.T) {
	h := dashboard.NewHandler(nil, zap.NewNop(), true)

	w := httptest.NewRecorder()
	h.ServeDashboard(w, testutil.AnonymousRequest("/dashboard"))

	if w.Code != 303 {
		t.Fatalf("status = %d, want 303", w.Code)
	}
	if loc := w.Header().Get("Location"); loc != "/" {
		t.Errorf("redirect = %q, want /", loc)
	}
}

func TestServeDashboard_AdminRedirectsToSettings(t *testing.T) {
	h := dashboard.NewHandler(nil, zap.NewNop(), true)

	w := httptest.NewRecorder()
	h.ServeDashboard(w, testutil.SignedInRequest("/dashboard", testutil.AdminSessionUser()))

	if w.Code != 303 {
		t.Fatalf("status = %d, want 303", w.Code)
	}
	if loc := w.Header().Get("Location"); loc != "/settings" {
		t.Errorf("redirect = %q, want /settings", loc)
	}
}

func TestServeModal_BadIDsRejected(t *testing.T) {
	h := dashboard.NewHandler(nil, zap.NewNop(), true)
	user := testutil.SessionUserFor(primitive.NewObjectID(), "Sky Student", "sky@test.com")

	w := httptest.NewRecorder()
	h.ServeActivitiesModal(w, testutil.SignedInRequest("/dashboard/modal/activities?course=nope&user=nope", user))

	if w.Code != 400 {
		t.Errorf("status = %d, want 400", w.Code)
	}
}

func TestServeModal_AnonymousUnauthorized(t *testing.T) {
	h := dashboard.NewHandler(nil, zap.NewNop(), true)

	w := httptest.NewRecorder()
	h.ServeGradesModal(w, testutil.AnonymousRequest("/dashboard/modal/grades"))

	if w.Code != 401 {
		t.Errorf("status = %d, want 401", w.Code)
	}
}
