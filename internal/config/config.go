package config

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds application level configuration loaded from environment and flags.
type Config struct {
	RunAddress      string
	DatabaseURI     string
	RedisURL        string
	JWTSecret       string
	TokenTTL        time.Duration
	ShutdownTimeout time.Duration
	CatalogPath     string
	CatalogURL      string
	CatalogTimeout  time.Duration
	AdminEmails     []string
	NodeID          int64
	CartTTL         time.Duration
	LogLevel        slog.Level
	LogFile         string
}

const (
	defaultRunAddress      = ":8080"
	defaultTokenTTL        = 24 * time.Hour
	defaultShutdownTimeout = 10 * time.Second
	defaultCatalogTimeout  = 5 * time.Second
	defaultNodeID          = 1
	defaultDotEnvPath      = ".env"

	maxNodeID = 1023
)

// Load parses configuration from flags, environment variables and an optional .env file.
// Real environment variables take precedence over the .env file.
func Load() (*Config, error) {
	return load(os.Args[1:], withDotEnv(os.LookupEnv, defaultDotEnvPath))
}

type envLookup func(string) (string, bool)

// withDotEnv falls back to values from a dotenv file when the primary lookup misses.
// A missing or unreadable file leaves the primary lookup untouched.
func withDotEnv(primary envLookup, path string) envLookup {
	values, err := godotenv.Read(path)
	if err != nil || len(values) == 0 {
		return primary
	}
	return func(key string) (string, bool) {
		if v, ok := primary(key); ok {
			return v, ok
		}
		v, ok := values[key]
		return v, ok
	}
}

func load(args []string, lookup envLookup) (*Config, error) {
	cfg := &Config{
		RunAddress:      getString(lookup, "RUN_ADDRESS", defaultRunAddress),
		DatabaseURI:     getString(lookup, "DATABASE_URI", ""),
		RedisURL:        getString(lookup, "REDIS_URL", ""),
		JWTSecret:       getString(lookup, "JWT_SECRET", ""),
		TokenTTL:        getDuration(lookup, "TOKEN_TTL", defaultTokenTTL),
		ShutdownTimeout: getDuration(lookup, "SHUTDOWN_TIMEOUT", defaultShutdownTimeout),
		CatalogPath:     getString(lookup, "CATALOG_PATH", ""),
		CatalogURL:      getString(lookup, "CATALOG_URL", ""),
		CatalogTimeout:  getDuration(lookup, "CATALOG_TIMEOUT", defaultCatalogTimeout),
		NodeID:          int64(getInt(lookup, "NODE_ID", defaultNodeID)),
		CartTTL:         getDuration(lookup, "CART_TTL", 0),
		LogFile:         getString(lookup, "LOG_FILE", ""),
	}

	fs := flag.NewFlagSet("pricecompare", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var (
		tokenTTLStr        = cfg.TokenTTL.String()
		shutdownTimeoutStr = cfg.ShutdownTimeout.String()
		cartTTLStr         = cfg.CartTTL.String()
		adminEmailsStr     = getString(lookup, "ADMIN_EMAILS", "")
		logLevelStr        = getString(lookup, "LOG_LEVEL", "info")
	)

	fs.StringVar(&cfg.RunAddress, "a", cfg.RunAddress, "HTTP server listen address")
	fs.StringVar(&cfg.DatabaseURI, "d", cfg.DatabaseURI, "PostgreSQL DSN")
	fs.StringVar(&cfg.RedisURL, "redis", cfg.RedisURL, "Redis URL for cart storage")
	fs.StringVar(&cfg.JWTSecret, "jwt-secret", cfg.JWTSecret, "Secret for signing auth tokens")
	fs.StringVar(&tokenTTLStr, "token-ttl", tokenTTLStr, "Lifetime of issued auth tokens")
	fs.StringVar(&shutdownTimeoutStr, "shutdown-timeout", shutdownTimeoutStr, "Graceful shutdown timeout")
	fs.StringVar(&cfg.CatalogPath, "catalog", cfg.CatalogPath, "Path to a YAML catalog file")
	fs.StringVar(&cfg.CatalogURL, "catalog-url", cfg.CatalogURL, "URL of a YAML catalog document")
	fs.StringVar(&adminEmailsStr, "admin-emails", adminEmailsStr, "Comma separated emails granted the admin role")
	fs.Int64Var(&cfg.NodeID, "node-id", cfg.NodeID, "Order id generator node (0-1023)")
	fs.StringVar(&cartTTLStr, "cart-ttl", cartTTLStr, "Idle lifetime of stored carts, 0 keeps them forever")
	fs.StringVar(&logLevelStr, "log-level", logLevelStr, "Log level: debug, info, warn, error")
	fs.StringVar(&cfg.LogFile, "log-file", cfg.LogFile, "Write logs to a rotated file instead of stdout")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("parse flags: %w", err)
	}

	var err error

	if cfg.TokenTTL, err = time.ParseDuration(tokenTTLStr); err != nil {
		return nil, fmt.Errorf("invalid token ttl: %w", err)
	}

	if cfg.ShutdownTimeout, err = time.ParseDuration(shutdownTimeoutStr); err != nil {
		return nil, fmt.Errorf("invalid shutdown timeout: %w", err)
	}

	if cfg.CartTTL, err = time.ParseDuration(cartTTLStr); err != nil {
		return nil, fmt.Errorf("invalid cart ttl: %w", err)
	}

	if err = cfg.LogLevel.UnmarshalText([]byte(logLevelStr)); err != nil {
		return nil, fmt.Errorf("invalid log level: %w", err)
	}

	if secretFile, ok := lookup("JWT_SECRET_FILE"); ok && secretFile != "" {
		content, err := os.ReadFile(secretFile)
		if err != nil {
			return nil, fmt.Errorf("read jwt secret file: %w", err)
		}
		cfg.JWTSecret = strings.TrimSpace(string(content))
	}

	cfg.AdminEmails = splitEmails(adminEmailsStr)

	if cfg.TokenTTL <= 0 {
		cfg.TokenTTL = defaultTokenTTL
	}

	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = defaultShutdownTimeout
	}

	if cfg.CatalogTimeout <= 0 {
		cfg.CatalogTimeout = defaultCatalogTimeout
	}

	if cfg.CartTTL < 0 {
		cfg.CartTTL = 0
	}

	if cfg.NodeID < 0 || cfg.NodeID > maxNodeID {
		return nil, fmt.Errorf("node id must be within 0..%d", maxNodeID)
	}

	if cfg.DatabaseURI == "" {
		return nil, fmt.Errorf("database URI must be provided")
	}

	if cfg.RedisURL == "" {
		return nil, fmt.Errorf("redis URL must be provided")
	}

	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("jwt secret must be provided via JWT_SECRET, JWT_SECRET_FILE or --jwt-secret")
	}

	return cfg, nil
}

func splitEmails(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if email := strings.ToLower(strings.TrimSpace(part)); email != "" {
			out = append(out, email)
		}
	}
	return out
}

func getString(lookup envLookup, key, def string) string {
	if v, ok := lookup(key); ok && v != "" {
		return v
	}
	return def
}

func getInt(lookup envLookup, key string, def int) int {
	if v, ok := lookup(key); ok && v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func getDuration(lookup envLookup, key string, def time.Duration) time.Duration {
	if v, ok := lookup(key); ok && v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}
