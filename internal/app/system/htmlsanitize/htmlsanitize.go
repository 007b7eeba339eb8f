// Package htmlsanitize strips unsafe markup from admin-entered HTML
// (site footer, dashboard title) before it is stored and re-rendered.
package htmlsanitize

import (
	"github.com/microcosm-cc/bluemonday"
)

var policy = buildPolicy()

func buildPolicy() *bluemonday.Policy {
	p := bluemonday.UGCPolicy()
	// Footers commonly carry tables; UGCPolicy already allows them, but
	// keep colspan/rowspan which it drops by default.
	p.AllowAttrs("colspan", "rowspan").OnElements("td", "th")
	return p
}

// Sanitize returns s with scripts, event handlers, and javascript: URLs
// removed. Safe formatting markup (paragraphs, emphasis, links, tables)
// is preserved.
func Sanitize(s string) string {
	if s == "" {
		return ""
	}
	return policy.Sanitize(s)
}
