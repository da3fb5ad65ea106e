package config

// holds all environment-derived configuration
type Config struct {
	DatabaseURL       string
	JWTSecret         string
	Environment       string
	Port           string
	MigrationsPath string

	// explicit override for the stored guest quota; 0 leaves it alone
	GuestMessageLimit int

	// seed-time fallback for the Grok system key; runtime keys live in system_config
	GrokAPIKey string
}
