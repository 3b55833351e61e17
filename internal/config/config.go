package config

import "os"

// Config holds environment-driven configuration.
type Config struct {
	Addr        string
	DatabaseURL string
	JWTSecret   string
	// SuggestURL is the endpoint of the external suggestion service.
	// Empty disables remote suggestions; the popular-products fallback
	// still applies.
	SuggestURL string
}

// Load reads configuration from environment variables.
func Load() Config {
	addr := os.Getenv("GROCERY_ADDR")
	if addr == "" {
		addr = ":8080"
	}

	return Config{
		Addr:        addr,
		DatabaseURL: os.Getenv("DATABASE_URL"),
		JWTSecret:   os.Getenv("JWT_SECRET"),
		SuggestURL:  os.Getenv("SUGGEST_URL"),
	}
}
