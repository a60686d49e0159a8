package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"golang.org/x/crypto/bcrypt"
)

type Config struct {
	Port           string
	CORSOrigins    []string
	RequestTimeout time.Duration
	AutoMigrate    bool

	Database Database
	JWT      JWT

	BcryptCost int
	LogLevel   string
	LogFormat  string
}

type Database struct {
	Driver       string
	URL          string
	MaxOpenConns int
	MaxIdleConns int
}

type JWT struct {
	Secret    string
	ExpiresIn time.Duration
}

var required = []string{"DATABASE_URL", "JWT_SECRET"}

// Load reads .env (if present) and the process environment. Flags, when non-nil,
// override the environment for the keys they are bound to.
func Load(flags *pflag.FlagSet) (Config, error) {
	// a missing .env is normal outside local development
	_ = godotenv.Load()

	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("PORT", "8080")
	v.SetDefault("DATABASE_DRIVER", "postgres")
	v.SetDefault("JWT_EXPIRES_IN", "24h")
	v.SetDefault("REQUEST_TIMEOUT", "10s")
	v.SetDefault("AUTO_MIGRATE", true)
	v.SetDefault("BCRYPT_COST", bcrypt.DefaultCost)
	v.SetDefault("DB_MAX_OPEN_CONNS", 25)
	v.SetDefault("DB_MAX_IDLE_CONNS", 5)
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "json")

	if flags != nil {
		bind := map[string]string{"PORT": "port", "DATABASE_URL": "database-url", "DATABASE_DRIVER": "database-driver"}
		for key, name := range bind {
			if f := flags.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return Config{}, fmt.Errorf("bind flag %s: %w", name, err)
				}
			}
		}
	}

	var missing []string
	for _, key := range required {
		if strings.TrimSpace(v.GetString(key)) == "" {
			missing = append(missing, key)
		}
	}
	if len(missing) > 0 {
		return Config{}, fmt.Errorf("missing required environment variables: %s", strings.Join(missing, ", "))
	}

	cfg := Config{
		Port:           v.GetString("PORT"),
		CORSOrigins:    splitList(v.GetString("CORS_ORIGINS")),
		RequestTimeout: v.GetDuration("REQUEST_TIMEOUT"),
		AutoMigrate:    v.GetBool("AUTO_MIGRATE"),
		Database: Database{
			Driver:       strings.ToLower(v.GetString("DATABASE_DRIVER")),
			URL:          v.GetString("DATABASE_URL"),
			MaxOpenConns: v.GetInt("DB_MAX_OPEN_CONNS"),
			MaxIdleConns: v.GetInt("DB_MAX_IDLE_CONNS"),
		},
		JWT: JWT{
			Secret:    v.GetString("JWT_SECRET"),
			ExpiresIn: v.GetDuration("JWT_EXPIRES_IN"),
		},
		BcryptCost: v.GetInt("BCRYPT_COST"),
		LogLevel:   v.GetString("LOG_LEVEL"),
		LogFormat:  v.GetString("LOG_FORMAT"),
	}
	return cfg, cfg.validate()
}

func (c Config) validate() error {
	var problems []error
	switch c.Database.Driver {
	case "postgres", "sqlite":
	default:
		problems = append(problems, fmt.Errorf("DATABASE_DRIVER must be postgres or sqlite, got %q", c.Database.Driver))
	}
	if c.JWT.ExpiresIn <= 0 {
		problems = append(problems, errors.New("JWT_EXPIRES_IN must be a positive duration"))
	}
	if c.RequestTimeout <= 0 {
		problems = append(problems, errors.New("REQUEST_TIMEOUT must be a positive duration"))
	}
	if c.BcryptCost < bcrypt.MinCost || c.BcryptCost > bcrypt.MaxCost {
		problems = append(problems, fmt.Errorf("BCRYPT_COST must be between %d and %d", bcrypt.MinCost, bcrypt.MaxCost))
	}
	return errors.Join(problems...)
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
