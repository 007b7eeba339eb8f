// internal/app/bootstrap/appconfig.go
package bootstrap

// AppConfig holds service-specific configuration for this WAFFLE app.
//
// WAFFLE's CoreConfig handles framework-level settings (HTTP ports, TLS,
// logging level, CORS, timeouts). AppConfig is everything specific to
// LearnHub: database coordinates, session cookies, OAuth credentials,
// and feature toggles.
type AppConfig struct {
	// MongoDB connection configuration
	MongoURI         string // MongoDB connection string (e.g., mongodb://localhost:27017)
	MongoDatabase    string // Database name within MongoDB
	MongoMaxPoolSize uint64 // Max connection pool size
	MongoMinPoolSize uint64 // Min connection pool size

	// Session management configuration
	SessionKey    string // Secret key for signing session cookies (must be strong in production)
	SessionName   string // Cookie name for sessions (default: learnhub-session)
	SessionDomain string // Cookie domain (blank means current host)

	// Base URL for OAuth callbacks and absolute links
	BaseURL string // e.g., "https://learnhub.example.com" or "http://localhost:3000"

	// Google OAuth configuration (sign-in is optional; blank disables it)
	GoogleClientID     string
	GoogleClientSecret string

	// Zoom session visibility. When false the dashboard omits the
	// scheduled-sessions section entirely.
	ZoomEnabled bool

	// SuperAdmin bootstrap
	SuperAdminEmail string // Email of the user promoted to site admin on startup
}
