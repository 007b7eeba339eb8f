package bootstrap

import (
	"testing"

	"github.com/dalemusser/learnhub/internal/testutil"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

func testLogger() *zap.Logger {
	return zap.NewNop()
}

func TestEnsureSuperAdmin_PromotesExisting(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	fx := testutil.NewFixtures(t, db)
	u := fx.CreateUser(ctx, "Sam", "Admin", "superadmin@test.com")

	deps := DBDeps{LearnHubMongoDatabase: db}
	if err := ensureSuperAdmin(ctx, deps, "superadmin@test.com", testLogger()); err != nil {
		t.Fatalf("ensureSuperAdmin failed: %v", err)
	}

	var got bson.M
	if err := db.Collection("users").FindOne(ctx, bson.M{"_id": u.ID}).Decode(&got); err != nil {
		t.Fatalf("failed to reload user: %v", err)
	}
	if got["site_role"] != "admin" {
		t.Errorf("expected site_role admin, got %v", got["site_role"])
	}
}

func TestEnsureSuperAdmin_MissingAccountIsNotFatal(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	deps := DBDeps{LearnHubMongoDatabase: db}
	if err := ensureSuperAdmin(ctx, deps, "nobody@test.com", testLogger()); err != nil {
		t.Fatalf("expected missing account to be skipped, got %v", err)
	}
}

func TestEnsureSuperAdmin_NormalizesEmail(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	fx := testutil.NewFixtures(t, db)
	u := fx.CreateUser(ctx, "Casey", "Ops", "ops@test.com")

	deps := DBDeps{LearnHubMongoDatabase: db}
	if err := ensureSuperAdmin(ctx, deps, "  OPS@Test.com ", testLogger()); err != nil {
		t.Fatalf("ensureSuperAdmin failed: %v", err)
	}

	var got bson.M
	if err := db.Collection("users").FindOne(ctx, bson.M{"_id": u.ID}).Decode(&got); err != nil {
		t.Fatalf("failed to reload user: %v", err)
	}
	if got["site_role"] != "admin" {
		t.Errorf("expected site_role admin, got %v", got["site_role"])
	}
}
