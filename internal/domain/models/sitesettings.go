// internal/domain/models/sitesettings.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// SiteSettings holds the admin-editable site configuration. There is a
// single settings document for the site.
type SiteSettings struct {
	ID primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`

	// SiteName is shown in the page header.
	SiteName string `bson:"site_name" json:"site_name"`

	// DashboardTitle overrides the dashboard block heading. Blank means
	// the default title is used.
	DashboardTitle string `bson:"dashboard_title,omitempty" json:"dashboard_title,omitempty"`

	// FooterHTML is sanitized before storage (see system/htmlsanitize).
	FooterHTML string `bson:"footer_html,omitempty" json:"footer_html,omitempty"`

	UpdatedAt     *time.Time          `bson:"updated_at,omitempty" json:"updated_at,omitempty"`
	UpdatedByID   *primitive.ObjectID `bson:"updated_by_id,omitempty" json:"updated_by_id,omitempty"`
	UpdatedByName string              `bson:"updated_by_name,omitempty" json:"updated_by_name,omitempty"`
}

// EffectiveDashboardTitle returns the configured dashboard heading or the
// default when unset.
func (s *SiteSettings) EffectiveDashboardTitle() string {
	if s.DashboardTitle != "" {
		return s.DashboardTitle
	}
	return DefaultDashboardTitle
}

// Defaults used when no settings document exists yet.
const (
	DefaultSiteName       = "LearnHub"
	DefaultDashboardTitle = "My Dashboard"
)
