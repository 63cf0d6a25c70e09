package server

// Config holds configuration for the HTTP server.
type Config struct {
	// Port is the port where the server will listen.
	Port string `mapstructure:"port" default:"8080"`
	// ApiKey is the secret key required to access the API.
	ApiKey string `mapstructure:"api_key" default:""`
	// ActorHeader names the request header carrying the acting user id recorded in audit logs.
	ActorHeader string `mapstructure:"actor_header" default:"X-Actor-Id"`
	// BodyLimitBytes caps request bodies (snapshot imports are the largest).
	BodyLimitBytes int `mapstructure:"body_limit_bytes" default:"4194304"`
}

// IsProtected reports whether API key authentication is enforced.
func (c Config) IsProtected() bool {
	return c.ApiKey != ""
}

// EffectiveBodyLimit returns the configured body limit or Fiber's default of 4MB.
func (c Config) EffectiveBodyLimit() int {
	if c.BodyLimitBytes <= 0 {
		return 4 * 1024 * 1024
	}
	return c.BodyLimitBytes
}
