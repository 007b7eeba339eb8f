package prefstore_test

import (
	"testing"

	prefstore "github.com/dalemusser/learnhub/internal/app/store/prefs"
	"github.com/dalemusser/learnhub/internal/testutil"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestGet_UnsetReturnsEmpty(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	got, err := prefstore.New(db).Get(ctx, primitive.NewObjectID(), "dashboard_selectedchild")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got != "" {
		t.Errorf("unset preference = %q, want empty", got)
	}
}

func TestSet_Overwrites(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	s := prefstore.New(db)
	userID := primitive.NewObjectID()

	if err := s.Set(ctx, userID, "dashboard_selectedchild", "first"); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if err := s.Set(ctx, userID, "dashboard_selectedchild", "second"); err != nil {
		t.Fatalf("second Set failed: %v", err)
	}

	got, err := s.Get(ctx, userID, "dashboard_selectedchild")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got != "second" {
		t.Errorf("preference = %q, want second (last write wins)", got)
	}
}
