package config

import (
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
)

const (
	defaultPort            = "8080"
	defaultJWTSecret       = "a-very-secret-key-should-be-longer-and-random"
	defaultJWTIssuer       = "dual-currency-display"
	defaultAdminUsername   = "admin"
	defaultDisplayRate     = "120-M"
	defaultMigrationsPath  = "file://migrations"
	defaultExchangeRateStr = "1.95583"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL       string
	Port              string
	IsProduction      bool
	EnableDBCheck     bool
	JWTSecret         string
	JWTExpiryDuration time.Duration
	JWTIssuer         string

	// Admin credentials; the password is stored as a bcrypt hash
	AdminUsername     string
	AdminPasswordHash string

	// DefaultExchangeRate seeds the settings store on first start only
	DefaultExchangeRate decimal.Decimal
	// DisplayRateLimit is a limiter formatted rate, e.g. "120-M"
	DisplayRateLimit   string
	CORSAllowedOrigins []string

	PosthogAPIKey  string
	MigrationsPath string
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", defaultPort)
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("ENABLE_DB_CHECK", true)
	viper.SetDefault("JWT_SECRET", defaultJWTSecret)
	viper.SetDefault("JWT_EXPIRY_DURATION", "1h")
	viper.SetDefault("JWT_ISSUER", defaultJWTIssuer)
	viper.SetDefault("ADMIN_USERNAME", defaultAdminUsername)
	viper.SetDefault("ADMIN_PASSWORD_HASH", "")
	viper.SetDefault("DEFAULT_EXCHANGE_RATE", defaultExchangeRateStr)
	viper.SetDefault("DISPLAY_RATE_LIMIT", defaultDisplayRate)
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "")
	viper.SetDefault("POSTHOG_API_KEY", "")
	viper.SetDefault("MIGRATIONS_PATH", defaultMigrationsPath)

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	cfg.Port = viper.GetString("PORT")
	if cfg.Port == "" {
		cfg.Port = defaultPort
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}

	cfg.JWTSecret = viper.GetString("JWT_SECRET")
	if cfg.JWTSecret == "" || cfg.JWTSecret == defaultJWTSecret {
		cfg.JWTSecret = defaultJWTSecret // !! CHANGE IN PRODUCTION !!
		log.Println("Warning: JWT_SECRET environment variable not set. Using default insecure key.")
	}

	// Load JWT Expiry Duration (e.g., "60m", "1h")
	jwtExpiryStr := viper.GetString("JWT_EXPIRY_DURATION")
	jwtExpiryDuration, err := time.ParseDuration(jwtExpiryStr)
	if err != nil {
		jwtExpiryDuration = time.Hour
		if jwtExpiryStr != "" {
			log.Printf("Warning: Invalid value for JWT_EXPIRY_DURATION ('%s'). Defaulting to %s.\n", jwtExpiryStr, jwtExpiryDuration.String())
		}
	}
	cfg.JWTExpiryDuration = jwtExpiryDuration

	cfg.JWTIssuer = viper.GetString("JWT_ISSUER")
	if cfg.JWTIssuer == "" {
		cfg.JWTIssuer = defaultJWTIssuer
		log.Printf("Warning: JWT_ISSUER not set. Defaulting to %s.\n", cfg.JWTIssuer)
	}

	cfg.AdminUsername = viper.GetString("ADMIN_USERNAME")
	cfg.AdminPasswordHash = viper.GetString("ADMIN_PASSWORD_HASH")
	if cfg.AdminPasswordHash == "" {
		log.Println("Warning: ADMIN_PASSWORD_HASH not set. Admin login is disabled.")
	}

	rateStr := viper.GetString("DEFAULT_EXCHANGE_RATE")
	rate, err := decimal.NewFromString(rateStr)
	if err != nil || !rate.IsPositive() {
		rate = decimal.RequireFromString(defaultExchangeRateStr)
		log.Printf("Warning: Invalid value for DEFAULT_EXCHANGE_RATE ('%s'). Defaulting to %s.\n", rateStr, rate.String())
	}
	cfg.DefaultExchangeRate = rate

	cfg.DisplayRateLimit = viper.GetString("DISPLAY_RATE_LIMIT")
	if cfg.DisplayRateLimit == "" {
		cfg.DisplayRateLimit = defaultDisplayRate
	}

	cfg.CORSAllowedOrigins = splitAndTrim(viper.GetString("CORS_ALLOWED_ORIGINS"))
	cfg.PosthogAPIKey = viper.GetString("POSTHOG_API_KEY")
	cfg.MigrationsPath = viper.GetString("MIGRATIONS_PATH")
	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")
	cfg.EnableDBCheck = viper.GetBool("ENABLE_DB_CHECK")

	if cfg.IsProduction && len(cfg.CORSAllowedOrigins) == 0 {
		log.Println("Warning: CORS_ALLOWED_ORIGINS not set in production. Cross-origin storefront requests will be rejected.")
	}

	return cfg, nil
}

func splitAndTrim(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
