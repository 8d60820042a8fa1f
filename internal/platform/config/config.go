package config

import (
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

	JWTSecret         string
	JWTExpiryDuration time.Duration
	JWTIssuer         string

	// FamilyPasswordHash is the bcrypt hash of the single shared credential.
	FamilyPasswordHash string

	GeminiAPIKey string
	GeminiModel  string

	// LedgerUTCOffsetHours is the fixed local offset all entry timestamps are
	// taken in; they are never normalized to UTC afterwards.
	LedgerUTCOffsetHours int

	// StorageTimeout bounds every storage read and write.
	StorageTimeout time.Duration

	// LoginRateLimit is a ulule/limiter formatted rate (e.g. "5-M").
	LoginRateLimit string
}

// LedgerLocation returns the fixed-offset ledger time zone.
func (c *Config) LedgerLocation() *time.Location {
	return time.FixedZone("LEDGER", c.LedgerUTCOffsetHours*3600)
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("ENABLE_DB_CHECK", false)
	viper.SetDefault("JWT_SECRET", "a-very-secret-key-should-be-longer-and-random")
	// Long-lived sessions: the original kept the family unlocked for 90 days.
	viper.SetDefault("JWT_EXPIRY_DURATION", "2160h")
	viper.SetDefault("JWT_ISSUER", "family-wallet-app")
	viper.SetDefault("FAMILY_PASSWORD_HASH", "")
	viper.SetDefault("GEMINI_API_KEY", "")
	viper.SetDefault("GEMINI_MODEL", "gemini-2.0-flash")
	viper.SetDefault("LEDGER_UTC_OFFSET_HOURS", 2)
	viper.SetDefault("STORAGE_TIMEOUT", "10s")
	viper.SetDefault("LOGIN_RATE_LIMIT", "5-M")

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
	if cfg.JWTSecret == "a-very-secret-key-should-be-longer-and-random" {
		log.Println("Warning: JWT_SECRET not set. Using default insecure key.")
	}

	jwtExpiryStr := viper.GetString("JWT_EXPIRY_DURATION")
	jwtExpiryDuration, err := time.ParseDuration(jwtExpiryStr)
	if err != nil {
		jwtExpiryDuration = time.Hour * 24 * 90
		log.Printf("Warning: Invalid value for JWT_EXPIRY_DURATION (%q). Defaulting to %s.\n", jwtExpiryStr, jwtExpiryDuration)
	}
	cfg.JWTExpiryDuration = jwtExpiryDuration

	cfg.JWTIssuer = viper.GetString("JWT_ISSUER")

	cfg.FamilyPasswordHash = viper.GetString("FAMILY_PASSWORD_HASH")
	if cfg.FamilyPasswordHash == "" {
		log.Println("Warning: FAMILY_PASSWORD_HASH not set. Login will reject every password.")
	}

	cfg.GeminiAPIKey = viper.GetString("GEMINI_API_KEY")
	if cfg.GeminiAPIKey == "" {
		log.Println("Warning: GEMINI_API_KEY not set. The classifier will rely on ambient credentials.")
	}
	cfg.GeminiModel = viper.GetString("GEMINI_MODEL")

	cfg.LedgerUTCOffsetHours = viper.GetInt("LEDGER_UTC_OFFSET_HOURS")

	storageTimeoutStr := viper.GetString("STORAGE_TIMEOUT")
	storageTimeout, err := time.ParseDuration(storageTimeoutStr)
	if err != nil {
		storageTimeout = 10 * time.Second
		log.Printf("Warning: Invalid value for STORAGE_TIMEOUT (%q). Defaulting to %s.\n", storageTimeoutStr, storageTimeout)
	}
	cfg.StorageTimeout = storageTimeout

	cfg.LoginRateLimit = viper.GetString("LOGIN_RATE_LIMIT")

	return cfg, nil
}
