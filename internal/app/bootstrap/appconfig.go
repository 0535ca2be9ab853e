// internal/app/bootstrap/appconfig.go
package bootstrap

// AppConfig holds service-specific configuration for this WAFFLE app.
//
// These values come from environment variables, configuration files, or
// command-line flags (loaded in LoadConfig). WAFFLE's CoreConfig handles
// framework-level settings (HTTP ports, TLS, log level, environment);
// AppConfig is everything specific to this service.
type AppConfig struct {
	// MongoDB connection configuration
	MongoURI         string // MongoDB connection string (e.g., mongodb://localhost:27017)
	MongoDatabase    string // Database name within MongoDB
	MongoMaxPoolSize uint64 // Max connection pool size
	MongoMinPoolSize uint64 // Min connection pool size

	// Token verification. The service never issues tokens; it only verifies
	// bearer tokens minted by the external identity provider.
	OIDCIssuer   string // Issuer URL used for OIDC discovery (e.g., https://accounts.google.com)
	OIDCAudience string // Expected audience (client ID) in verified tokens

	// AuthDisabled skips token verification and treats the raw bearer value
	// as the principal. Dev/test only; refused outside the dev environment.
	AuthDisabled bool
}
