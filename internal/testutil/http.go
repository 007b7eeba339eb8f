package testutil

import (
	"net/http"
	"net/http/httptest"

	"github.com/dalemusser/learnhub/internal/app/system/auth"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// SessionUserFor builds a session user matching a fixture user ID.
func SessionUserFor(id primitive.ObjectID, name, email string) *auth.SessionUser {
	return &auth.SessionUser{
		ID:    id.Hex(),
		Name:  name,
		Email: email,
	}
}

// AdminSessionUser returns a signed-in site admin for handler tests.
func AdminSessionUser() *auth.SessionUser {
	return &auth.SessionUser{
		ID:       primitive.NewObjectID().Hex(),
		Name:     "Test Admin",
		Email:    "admin@test.com",
		SiteRole: "admin",
	}
}

// SignedInRequest returns a GET request for target with the given user
// attached to the request context, as LoadSessionUser would do.
func SignedInRequest(target string, u *auth.SessionUser) *http.Request {
	r := httptest.NewRequest(http.MethodGet, target, nil)
	return auth.WithTestUser(r, u)
}

// AnonymousRequest returns a GET request with no session user.
func AnonymousRequest(target string) *http.Request {
	return httptest.NewRequest(http.MethodGet, target, nil)
}
