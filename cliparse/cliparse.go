package cliparse

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
	"time"
)

// Database types
const (
	DatabaseSQLite   = "sqlite"
	DatabasePostgres = "postgres"
	DatabaseMongo    = "mongo"
)

type Config struct {
	Port          int
	DatabaseURL   string
	DatabaseType  string
	MongoDatabase string
	SubmitRate    int
	SentryDSN     string
	AppEnv        string
	StoreTimeout  time.Duration
}

// ParseFlags validates flags and sets port number
func ParseFlags(args []string) (Config, error) {
	var cfg Config

	fs := flag.NewFlagSet("makeurownmenu", flag.ContinueOnError)

	// Network config (can be CLI args or env)
	fs.IntVar(&cfg.Port, "p", 0, "Server port")
	fs.StringVar(&cfg.DatabaseURL, "d", "", "Database URL (sqlite path, postgres URL or mongo URI)")
	fs.StringVar(&cfg.DatabaseType, "t", "", "Database type (sqlite, postgres or mongo)")
	fs.StringVar(&cfg.MongoDatabase, "mongo-db", "", "MongoDB database name")

	fs.IntVar(&cfg.SubmitRate, "submit-rate", 0, "Max submissions per second")
	fs.StringVar(&cfg.SentryDSN, "sentry-dsn", "", "Sentry DSN (prefer env)")
	fs.StringVar(&cfg.AppEnv, "env", "", "Deployment environment")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	// Fall back to environment variables
	if cfg.Port == 0 {
		if portStr := os.Getenv("PORT"); portStr != "" {
			port, err := strconv.Atoi(portStr)
			if err != nil {
				return Config{}, errors.New("invalid PORT env variable")
			}
			cfg.Port = port
		} else {
			cfg.Port = 3318 // default
		}
	}
	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}
	if cfg.DatabaseURL == "" {
		return Config{}, errors.New("database URL required (use -d or DATABASE_URL env)")
	}

	if cfg.DatabaseType == "" {
		cfg.DatabaseType = os.Getenv("DATABASE_TYPE")
		if cfg.DatabaseType == "" {
			cfg.DatabaseType = DatabaseSQLite
		}
	}
	switch cfg.DatabaseType {
	case DatabaseSQLite, DatabasePostgres, DatabaseMongo:
	default:
		return Config{}, fmt.Errorf("unsupported database type %q", cfg.DatabaseType)
	}

	if cfg.MongoDatabase == "" {
		cfg.MongoDatabase = os.Getenv("MONGODB_DATABASE")
		if cfg.MongoDatabase == "" {
			cfg.MongoDatabase = "MakeUrOwnMenu"
		}
	}

	if cfg.SubmitRate == 0 {
		if rateStr := os.Getenv("SUBMIT_RATE"); rateStr != "" {
			rate, err := strconv.Atoi(rateStr)
			if err != nil || rate <= 0 {
				return Config{}, errors.New("invalid SUBMIT_RATE env variable")
			}
			cfg.SubmitRate = rate
		} else {
			cfg.SubmitRate = 20
		}
	}
	if cfg.SubmitRate < 0 {
		return Config{}, errors.New("submit rate must be positive")
	}

	// Optional - error reporting is disabled without a DSN
	if cfg.SentryDSN == "" {
		cfg.SentryDSN = os.Getenv("SENTRY_DSN")
	}

	if cfg.AppEnv == "" {
		cfg.AppEnv = os.Getenv("APP_ENV")
		if cfg.AppEnv == "" {
			cfg.AppEnv = "development"
		}
	}

	cfg.StoreTimeout = 5 * time.Second

	return cfg, nil
}
