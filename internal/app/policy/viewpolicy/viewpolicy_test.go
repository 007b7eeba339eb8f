package viewpolicy_test

import (
	"testing"

	"github.com/dalemusser/learnhub/internal/app/policy/viewpolicy"
	"github.com/dalemusser/learnhub/internal/testutil"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestCanViewUserData_Self(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	id := primitive.NewObjectID()
	ok, err := viewpolicy.CanViewUserData(ctx, db, id, id)
	if err != nil {
		t.Fatalf("CanViewUserData failed: %v", err)
	}
	if !ok {
		t.Error("expected self access to be allowed")
	}
}

func TestCanViewUserData_LinkedChild(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	fx := testutil.NewFixtures(t, db)
	parent := fx.CreateUser(ctx, "Pat", "Parent", "pat@test.com")
	child := fx.CreateUser(ctx, "Chris", "Child", "chris@test.com")
	fx.LinkChild(ctx, parent.ID, child.ID)

	ok, err := viewpolicy.CanViewUserData(ctx, db, parent.ID, child.ID)
	if err != nil {
		t.Fatalf("CanViewUserData failed: %v", err)
	}
	if !ok {
		t.Error("expected parent to view linked child")
	}
}

func TestCanViewUserData_UnlinkedUser(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	fx := testutil.NewFixtures(t, db)
	a := fx.CreateUser(ctx, "Alex", "One", "a@test.com")
	b := fx.CreateUser(ctx, "Blake", "Two", "b@test.com")

	ok, err := viewpolicy.CanViewUserData(ctx, db, a.ID, b.ID)
	if err != nil {
		t.Fatalf("CanViewUserData failed: %v", err)
	}
	if ok {
		t.Error("expected unlinked user access to be denied")
	}
}

func TestCanViewUserData_ChildCannotViewParent(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	fx := testutil.NewFixtures(t, db)
	parent := fx.CreateUser(ctx, "Pat", "Parent", "pat2@test.com")
	child := fx.CreateUser(ctx, "Chris", "Child", "chris2@test.com")
	fx.LinkChild(ctx, parent.ID, child.ID)

	ok, err := viewpolicy.CanViewUserData(ctx, db, child.ID, parent.ID)
	if err != nil {
		t.Fatalf("CanViewUserData failed: %v", err)
	}
	if ok {
		t.Error("guardian links are one-way; child must not view parent")
	}
}
