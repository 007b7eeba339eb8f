package dashboard

import (
	"testing"

	prefstore "github.com/dalemusser/learnhub/internal/app/store/prefs"
	"github.com/dalemusser/learnhub/internal/domain/models"
	"github.com/dalemusser/learnhub/internal/testutil"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

func TestResolveSelectedChild_ParamWinsAndPersists(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	h := NewHandler(db, zap.NewNop(), true)
	parentID := primitive.NewObjectID()
	children := []primitive.ObjectID{primitive.NewObjectID(), primitive.NewObjectID()}

	got, err := h.resolveSelectedChild(ctx, parentID, children, children[1].Hex())
	if err != nil {
		t.Fatalf("resolveSelectedChild failed: %v", err)
	}
	if got != children[1] {
		t.Errorf("expected param child, got %s", got.Hex())
	}

	stored, err := prefstore.New(db).Get(ctx, parentID, models.PrefSelectedChild)
	if err != nil {
		t.Fatalf("read preference: %v", err)
	}
	if stored != children[1].Hex() {
		t.Errorf("preference = %q, want %q", stored, children[1].Hex())
	}
}

func TestResolveSelectedChild_UnknownParamFallsToStored(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	h := NewHandler(db, zap.NewNop(), true)
	parentID := primitive.NewObjectID()
	children := []primitive.ObjectID{primitive.NewObjectID(), primitive.NewObjectID()}

	if err := prefstore.New(db).Set(ctx, parentID, models.PrefSelectedChild, children[1].Hex()); err != nil {
		t.Fatalf("seed preference: %v", err)
	}

	// Not one of the parent's children.
	got, err := h.resolveSelectedChild(ctx, parentID, children, primitive.NewObjectID().Hex())
	if err != nil {
		t.Fatalf("resolveSelectedChild failed: %v", err)
	}
	if got != children[1] {
		t.Errorf("expected stored child, got %s", got.Hex())
	}
}

func TestResolveSelectedChild_MalformedParamFallsThrough(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	h := NewHandler(db, zap.NewNop(), true)
	parentID := primitive.NewObjectID()
	children := []primitive.ObjectID{primitive.NewObjectID()}

	got, err := h.resolveSelectedChild(ctx, parentID, children, "not-a-hex-id")
	if err != nil {
		t.Fatalf("resolveSelectedChild failed: %v", err)
	}
	if got != children[0] {
		t.Errorf("expected first child, got %s", got.Hex())
	}
}

func TestResolveSelectedChild_StaleStoredResetsToFirst(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	h := NewHandler(db, zap.NewNop(), true)
	parentID := primitive.NewObjectID()
	children := []primitive.ObjectID{primitive.NewObjectID(), primitive.NewObjectID()}

	// Preference points at a child whose link has since been removed.
	if err := prefstore.New(db).Set(ctx, parentID, models.PrefSelectedChild, primitive.NewObjectID().Hex()); err != nil {
		t.Fatalf("seed preference: %v", err)
	}

	got, err := h.resolveSelectedChild(ctx, parentID, children, "")
	if err != nil {
		t.Fatalf("resolveSelectedChild failed: %v", err)
	}
	if got != children[0] {
		t.Errorf("expected reset to first child, got %s", got.Hex())
	}

	stored, err := prefstore.New(db).Get(ctx, parentID, models.PrefSelectedChild)
	if err != nil {
		t.Fatalf("read preference: %v", err)
	}
	if stored != children[0].Hex() {
		t.Errorf("preference = %q, want first child %q", stored, children[0].Hex())
	}
}
