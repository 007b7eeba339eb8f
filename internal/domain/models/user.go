// internal/domain/models/user.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User represents any account: admins, parents, students, and teachers.
//
// NOTE:
//   - Only "admin" is stored as a site role. Dashboard roles (parent,
//     student, teacher) are derived per request from guardian links and
//     course enrollments; see store/queries/userrole.
type User struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	FirstName    string             `bson:"first_name" json:"first_name"`
	LastName     string             `bson:"last_name" json:"last_name"`
	Email        string             `bson:"email" json:"email"`
	PasswordHash string             `bson:"password_hash,omitempty" json:"-"`
	SiteRole     string             `bson:"site_role,omitempty" json:"site_role,omitempty"` // "" | admin
	Status       string             `bson:"status,omitempty" json:"status,omitempty"`       // active | disabled

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}

// FullName returns the display name in "First Last" form.
func (u *User) FullName() string {
	if u.FirstName == "" {
		return u.LastName
	}
	if u.LastName == "" {
		return u.FirstName
	}
	return u.FirstName + " " + u.LastName
}

// IsAdmin reports whether the user holds the site admin role.
// The dashboard never renders content for admins.
func (u *User) IsAdmin() bool {
	return u.SiteRole == "admin"
}
