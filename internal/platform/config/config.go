package config

import (
	"errors"
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL   string
	Port          string
	IsProduction  bool
	EnableDBCheck bool

	// Access token config
	JWTSecret         string
	JWTExpiryDuration time.Duration
	JWTIssuer         string

	// Refresh token config. The refresh secret MUST differ from the access
	// secret so that one token class can never be verified as the other.
	JWTRefreshSecret         string
	JWTRefreshExpiryDuration time.Duration

	CORSAllowedOrigins []string

	PosthogAPIKey  string
	PosthogAPIHost string
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("ENABLE_DB_CHECK", false)
	viper.SetDefault("JWT_SECRET", "")
	viper.SetDefault("JWT_EXPIRES_IN", "1h")
	viper.SetDefault("JWT_ISSUER", "inventory-management-app")
	viper.SetDefault("JWT_REFRESH_SECRET", "")
	viper.SetDefault("JWT_REFRESH_EXPIRES_IN", "168h")
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")
	viper.SetDefault("POSTHOG_API_KEY", "")
	viper.SetDefault("POSTHOG_API_HOST", "https://app.posthog.com")

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	cfg.Port = viper.GetString("PORT")
	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")
	cfg.EnableDBCheck = viper.GetBool("ENABLE_DB_CHECK")

	cfg.JWTSecret = viper.GetString("JWT_SECRET")
	if cfg.JWTSecret == "" {
		if cfg.IsProduction {
			return nil, errors.New("JWT_SECRET must be set when IS_PRODUCTION is true")
		}
		cfg.JWTSecret = "insecure-dev-access-secret-change-me"
		log.Println("Warning: JWT_SECRET environment variable not set. Using default insecure key. THIS IS NOT FOR PRODUCTION.")
	}

	jwtExpiryStr := viper.GetString("JWT_EXPIRES_IN")
	jwtExpiryDuration, err := time.ParseDuration(jwtExpiryStr)
	if err != nil {
		jwtExpiryDuration = time.Hour
		log.Printf("Warning: Invalid value for JWT_EXPIRES_IN ('%s'). Defaulting to %s.\n", jwtExpiryStr, jwtExpiryDuration.String())
	}
	cfg.JWTExpiryDuration = jwtExpiryDuration

	cfg.JWTIssuer = viper.GetString("JWT_ISSUER")

	cfg.JWTRefreshSecret = viper.GetString("JWT_REFRESH_SECRET")
	if cfg.JWTRefreshSecret == "" {
		if cfg.IsProduction {
			return nil, errors.New("JWT_REFRESH_SECRET must be set when IS_PRODUCTION is true")
		}
		cfg.JWTRefreshSecret = "insecure-dev-refresh-secret-change-me"
		log.Println("Warning: JWT_REFRESH_SECRET environment variable not set. Using default insecure key. THIS IS NOT FOR PRODUCTION.")
	}

	refreshExpiryStr := viper.GetString("JWT_REFRESH_EXPIRES_IN")
	refreshExpiryDuration, err := time.ParseDuration(refreshExpiryStr)
	if err != nil {
		refreshExpiryDuration = time.Hour * 24 * 7
		log.Printf("Warning: Invalid value for JWT_REFRESH_EXPIRES_IN ('%s'). Defaulting to %s.\n", refreshExpiryStr, refreshExpiryDuration.String())
	}
	cfg.JWTRefreshExpiryDuration = refreshExpiryDuration

	cfg.CORSAllowedOrigins = viper.GetStringSlice("CORS_ALLOWED_ORIGINS")

	cfg.PosthogAPIKey = viper.GetString("POSTHOG_API_KEY")
	cfg.PosthogAPIHost = viper.GetString("POSTHOG_API_HOST")

	return cfg, nil
}
