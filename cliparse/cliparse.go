package cliparse

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Database types
const (
	DatabasePostgres = "postgres"
	DatabaseSQLite   = "sqlite"
)

// Delete policies for stages and stables that still have results
const (
	DeleteRestrict = "restrict"
	DeleteCascade  = "cascade"
	DeleteDangle   = "dangle"
)

const (
	defaultPort       = 8000
	defaultSQLitePath = "racing.db"
)

type Config struct {
	Port         int
	DatabaseURL  string
	DatabaseType string
	DeletePolicy string
	MaxConns     int
	LogLevel     slog.Level
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// LoadEnvFile reads KEY=VALUE pairs from path into the environment without
// overriding variables that are already set. A missing file is not an error.
func LoadEnvFile(path string) error {
	err := godotenv.Load(path)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("load %s: %w", path, err)
	}
	return nil
}

// ParseFlags validates flags and fills the rest from the environment
func ParseFlags(args []string) (Config, error) {
	var cfg Config
	var logLevel string

	fs := flag.NewFlagSet("formula1", flag.ContinueOnError)

	fs.IntVar(&cfg.Port, "p", 0, "Server port")
	fs.StringVar(&cfg.DatabaseURL, "d", "", "Database URL (postgres URL or sqlite file)")
	fs.StringVar(&cfg.DatabaseType, "t", "", "Database type (postgres or sqlite)")
	fs.StringVar(&cfg.DeletePolicy, "delete-policy", "", "What deleting a referenced stage or stable does (restrict, cascade, dangle)")
	fs.IntVar(&cfg.MaxConns, "max-conns", 0, "Maximum open database connections")
	fs.StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	fs.DurationVar(&cfg.ReadTimeout, "read-timeout", 0, "HTTP read timeout")
	fs.DurationVar(&cfg.WriteTimeout, "write-timeout", 0, "HTTP write timeout")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if cfg.Port == 0 {
		port, err := intEnv("PORT", defaultPort)
		if err != nil {
			return Config{}, err
		}
		cfg.Port = port
	}

	if cfg.DatabaseType == "" {
		cfg.DatabaseType = os.Getenv("DATABASE_TYPE")
		if cfg.DatabaseType == "" {
			cfg.DatabaseType = DatabasePostgres
		}
	}
	cfg.DatabaseType = strings.ToLower(cfg.DatabaseType)
	if cfg.DatabaseType != DatabasePostgres && cfg.DatabaseType != DatabaseSQLite {
		return Config{}, fmt.Errorf("unsupported database type %q (use postgres or sqlite)", cfg.DatabaseType)
	}

	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}
	if cfg.DatabaseURL == "" {
		u, err := databaseURLFromParts(cfg.DatabaseType)
		if err != nil {
			return Config{}, err
		}
		cfg.DatabaseURL = u
	}

	if cfg.DeletePolicy == "" {
		cfg.DeletePolicy = os.Getenv("DELETE_POLICY")
		if cfg.DeletePolicy == "" {
			cfg.DeletePolicy = DeleteRestrict
		}
	}
	cfg.DeletePolicy = strings.ToLower(cfg.DeletePolicy)
	switch cfg.DeletePolicy {
	case DeleteRestrict, DeleteCascade, DeleteDangle:
	default:
		return Config{}, fmt.Errorf("unsupported delete policy %q (use restrict, cascade or dangle)", cfg.DeletePolicy)
	}

	if cfg.MaxConns == 0 {
		n, err := intEnv("DB_MAX_CONNS", 10)
		if err != nil {
			return Config{}, err
		}
		cfg.MaxConns = n
	}
	if cfg.MaxConns < 1 {
		return Config{}, errors.New("max-conns must be at least 1")
	}

	if logLevel == "" {
		logLevel = os.Getenv("LOG_LEVEL")
	}
	if logLevel != "" {
		if err := cfg.LogLevel.UnmarshalText([]byte(logLevel)); err != nil {
			return Config{}, fmt.Errorf("invalid log level %q", logLevel)
		}
	}

	if cfg.ReadTimeout == 0 {
		cfg.ReadTimeout = 15 * time.Second
	}
	if cfg.WriteTimeout == 0 {
		cfg.WriteTimeout = 15 * time.Second
	}

	return cfg, nil
}

func intEnv(key string, fallback int) (int, error) {
	s := os.Getenv(key)
	if s == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("invalid %s env variable", key)
	}
	return n, nil
}

// databaseURLFromParts assembles a connection string from the DB_* variables.
func databaseURLFromParts(dbType string) (string, error) {
	if dbType == DatabaseSQLite {
		if name := os.Getenv("DB_NAME"); name != "" {
			return name, nil
		}
		return defaultSQLitePath, nil
	}

	user := os.Getenv("DB_USER")
	host := os.Getenv("DB_HOST")
	name := os.Getenv("DB_NAME")
	if user == "" || host == "" || name == "" {
		return "", errors.New("database URL required (use -d, DATABASE_URL, or DB_USER/DB_HOST/DB_NAME env)")
	}
	port := os.Getenv("DB_PORT")
	if port == "" {
		port = "5432"
	}

	u := url.URL{
		Scheme: "postgres",
		Host:   net.JoinHostPort(host, port),
		Path:   "/" + name,
	}
	if pw, ok := os.LookupEnv("DB_PASSWORD"); ok {
		u.User = url.UserPassword(user, pw)
	} else {
		u.User = url.User(user)
	}
	q := url.Values{}
	q.Set("sslmode", envOr("DB_SSLMODE", "disable"))
	u.RawQuery = q.Encode()
	return u.String(), nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
