package config

import (
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL          string
	DatabaseMaxConns     int32
	DatabaseConnLifetime time.Duration
	Port                 string
	IsProduction         bool
	JWTSecret            string

	// Expected iss claim on incoming tokens; empty disables the check.
	JWTIssuer string

	// Rate limiting, formatted per ulule/limiter (e.g. "100-M").
	RateLimitFormatted string

	// Comma-separated allowlist; ignored outside production where all
	// origins are allowed.
	CORSAllowedOrigins []string
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("DB_MAX_CONNS", 10)
	viper.SetDefault("DB_CONN_MAX_LIFETIME", "30m")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("JWT_SECRET", "a-very-secret-key-should-be-longer-and-random")
	viper.SetDefault("JWT_ISSUER", "erp-ledger")
	viper.SetDefault("RATE_LIMIT", "100-M")
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "")

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	cfg.DatabaseMaxConns = viper.GetInt32("DB_MAX_CONNS")
	if cfg.DatabaseMaxConns <= 0 {
		cfg.DatabaseMaxConns = 10
		log.Printf("Warning: Invalid value for DB_MAX_CONNS. Defaulting to %d.\n", cfg.DatabaseMaxConns)
	}

	connLifetimeStr := viper.GetString("DB_CONN_MAX_LIFETIME")
	connLifetime, err := time.ParseDuration(connLifetimeStr)
	if err != nil || connLifetime <= 0 {
		connLifetime = 30 * time.Minute
		log.Printf("Warning: Invalid value for DB_CONN_MAX_LIFETIME ('%s'). Defaulting to %s.\n", connLifetimeStr, connLifetime.String())
	}
	cfg.DatabaseConnLifetime = connLifetime

	cfg.Port = viper.GetString("PORT")
	if cfg.Port == "" {
		cfg.Port = "8080"
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}

	cfg.JWTSecret = viper.GetString("JWT_SECRET")
	if cfg.JWTSecret == "a-very-secret-key-should-be-longer-and-random" {
		log.Println("Warning: JWT_SECRET environment variable not set. Using default insecure key.")
	}

	cfg.JWTIssuer = viper.GetString("JWT_ISSUER")

	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")
	cfg.RateLimitFormatted = viper.GetString("RATE_LIMIT")

	if raw := strings.TrimSpace(viper.GetString("CORS_ALLOWED_ORIGINS")); raw != "" {
		for _, origin := range strings.Split(raw, ",") {
			if trimmed := strings.TrimSpace(origin); trimmed != "" {
				cfg.CORSAllowedOrigins = append(cfg.CORSAllowedOrigins, trimmed)
			}
		}
	}
	if cfg.IsProduction && len(cfg.CORSAllowedOrigins) == 0 {
		log.Println("Warning: CORS_ALLOWED_ORIGINS not set in production. Cross-origin requests will be denied.")
	}

	return cfg, nil
}
