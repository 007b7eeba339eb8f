package indexes_test

import (
	"testing"

	"github.com/dalemusser/learnhub/internal/app/system/indexes"
	"github.com/dalemusser/learnhub/internal/testutil"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

func TestEnsureAll(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	// EnsureAll should succeed on a clean database
	err := indexes.EnsureAll(ctx, db)
	if err != nil {
		t.Fatalf("EnsureAll failed: %v", err)
	}
}

func TestEnsureAll_Idempotent(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	// First call
	err := indexes.EnsureAll(ctx, db)
	if err != nil {
		t.Fatalf("First EnsureAll failed: %v", err)
	}

	// Second call should also succeed (idempotent)
	err = indexes.EnsureAll(ctx, db)
	if err != nil {
		t.Fatalf("Second EnsureAll failed: %v", err)
	}
}

func TestEnsureAll_CreatesUserIndexes(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	if err := indexes.EnsureAll(ctx, db); err != nil {
		t.Fatalf("EnsureAll failed: %v", err)
	}

	names := listIndexNames(t, db, "users")
	if !names["uniq_users_email"] {
		t.Errorf("expected uniq_users_email index, got %v", names)
	}
}

func TestEnsureAll_CreatesEnrollmentIndexes(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	if err := indexes.EnsureAll(ctx, db); err != nil {
		t.Fatalf("EnsureAll failed: %v", err)
	}

	names := listIndexNames(t, db, "enrollments")
	for _, want := range []string{
		"uniq_enrollments_user_course_role",
		"idx_enrollments_course_role",
	} {
		if !names[want] {
			t.Errorf("expected %s index, got %v", want, names)
		}
	}
}

func TestEnsureAll_CreatesGradeIndexes(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	if err := indexes.EnsureAll(ctx, db); err != nil {
		t.Fatalf("EnsureAll failed: %v", err)
	}

	items := listIndexNames(t, db, "grade_items")
	if !items["idx_grade_items_course_type"] {
		t.Errorf("expected idx_grade_items_course_type index, got %v", items)
	}

	grades := listIndexNames(t, db, "grade_grades")
	if !grades["uniq_grade_grades_item_user"] {
		t.Errorf("expected uniq_grade_grades_item_user index, got %v", grades)
	}
}

func TestEnsureAll_UniqueEmailEnforced(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	if err := indexes.EnsureAll(ctx, db); err != nil {
		t.Fatalf("EnsureAll failed: %v", err)
	}

	coll := db.Collection("users")
	if _, err := coll.InsertOne(ctx, bson.M{"email": "dup@test.com"}); err != nil {
		t.Fatalf("first insert failed: %v", err)
	}
	if _, err := coll.InsertOne(ctx, bson.M{"email": "dup@test.com"}); err == nil {
		t.Error("expected duplicate key error on second insert with same email")
	}
}

func listIndexNames(t *testing.T, db *mongo.Database, coll string) map[string]bool {
	t.Helper()

	ctx, cancel := testutil.TestContext()
	defer cancel()

	cur, err := db.Collection(coll).Indexes().List(ctx)
	if err != nil {
		t.Fatalf("List indexes on %s failed: %v", coll, err)
	}
	defer cur.Close(ctx)

	names := make(map[string]bool)
	for cur.Next(ctx) {
		var idx bson.M
		if err := cur.Decode(&idx); err != nil {
			t.Fatalf("decode index: %v", err)
		}
		if n, ok := idx["name"].(string); ok {
			names[n] = true
		}
	}
	return names
}
