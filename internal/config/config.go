// Package config loads and validates application configuration from
// command-line flags and environment variables.
package config

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Config holds all configuration values for the API server.
// Values are populated by Load; a flag that was set explicitly wins over the
// environment, which wins over the default.
type Config struct {
	// Port is the TCP port the HTTP server listens on. Defaults to "8080".
	Port string

	// LogLevel controls the minimum log level. Defaults to "info".
	// Valid values: debug, info, warn, error.
	LogLevel string

	// CORSOrigins is the list of allowed cross-origin request origins.
	// Defaults to ["*"] (any origin).
	// Set CORS_ORIGINS to a comma-separated list to override.
	CORSOrigins []string

	// MaxBodyBytes caps the size of request bodies. Defaults to 1 MiB.
	MaxBodyBytes int64

	// ShutdownTimeout bounds how long in-flight requests may run after a
	// shutdown signal. Defaults to 15s.
	ShutdownTimeout time.Duration
}

// Addr returns the listen address for net/http, e.g. ":8080".
func (c Config) Addr() string {
	return ":" + c.Port
}

// SlogLevel returns LogLevel as a slog.Level. Load has already validated it,
// so an unparseable value can only come from a hand-built Config; it maps to info.
func (c Config) SlogLevel() slog.Level {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo
	}
	return lvl
}

// key describes one configuration value: its viper key, env var, flag name and default.
type key struct {
	name  string
	env   string
	flag  string
	usage string
	def   string
}

var keys = []key{
	{name: "port", env: "PORT", flag: "port", usage: "TCP port to listen on", def: "8080"},
	{name: "log_level", env: "LOG_LEVEL", flag: "log-level", usage: "minimum log level (debug, info, warn, error)", def: "info"},
	{name: "cors_origins", env: "CORS_ORIGINS", flag: "cors-origins", usage: "comma-separated allowed CORS origins, or *", def: "*"},
	{name: "max_body_bytes", env: "MAX_BODY_BYTES", flag: "max-body-bytes", usage: "maximum request body size in bytes", def: "1048576"},
	{name: "shutdown_timeout", env: "SHUTDOWN_TIMEOUT", flag: "shutdown-timeout", usage: "graceful shutdown timeout", def: "15s"},
}

// RegisterFlags adds one string flag per configuration key to fs.
// Flag defaults are empty so that an unset flag never masks the environment.
func RegisterFlags(fs *pflag.FlagSet) {
	for _, k := range keys {
		fs.String(k.flag, "", fmt.Sprintf("%s (env %s, default %q)", k.usage, k.env, k.def))
	}
}

// Load reads configuration from flags (may be nil) and environment variables
// and returns a Config. Returns an error naming every invalid value.
func Load(flags *pflag.FlagSet) (Config, error) {
	v := viper.New()
	for _, k := range keys {
		v.SetDefault(k.name, k.def)
		if err := v.BindEnv(k.name, k.env); err != nil {
			return Config{}, fmt.Errorf("config.Load: bind env %s: %w", k.env, err)
		}
		if flags == nil {
			continue
		}
		if f := flags.Lookup(k.flag); f != nil {
			if err := v.BindPFlag(k.name, f); err != nil {
				return Config{}, fmt.Errorf("config.Load: bind flag --%s: %w", k.flag, err)
			}
		}
	}

	cfg := Config{
		Port:        strings.TrimSpace(v.GetString("port")),
		LogLevel:    strings.ToLower(strings.TrimSpace(v.GetString("log_level"))),
		CORSOrigins: splitCSV(v.GetString("cors_origins")),
	}

	var invalid []string

	if n, err := strconv.Atoi(cfg.Port); err != nil || n < 1 || n > 65535 {
		invalid = append(invalid, fmt.Sprintf("PORT=%q (want 1-65535)", cfg.Port))
	}

	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
		invalid = append(invalid, fmt.Sprintf("LOG_LEVEL=%q (want debug, info, warn or error)", cfg.LogLevel))
	}

	if len(cfg.CORSOrigins) == 0 {
		invalid = append(invalid, "CORS_ORIGINS is empty")
	}

	rawBody := strings.TrimSpace(v.GetString("max_body_bytes"))
	maxBody, err := strconv.ParseInt(rawBody, 10, 64)
	if err != nil || maxBody <= 0 {
		invalid = append(invalid, fmt.Sprintf("MAX_BODY_BYTES=%q (want a positive integer)", rawBody))
	}
	cfg.MaxBodyBytes = maxBody

	rawTimeout := strings.TrimSpace(v.GetString("shutdown_timeout"))
	timeout, err := time.ParseDuration(rawTimeout)
	if err != nil || timeout <= 0 {
		invalid = append(invalid, fmt.Sprintf("SHUTDOWN_TIMEOUT=%q (want a positive duration)", rawTimeout))
	}
	cfg.ShutdownTimeout = timeout

	if len(invalid) > 0 {
		return Config{}, fmt.Errorf("invalid configuration: %s", strings.Join(invalid, "; "))
	}

	return cfg, nil
}

// splitCSV splits a comma-separated string into a trimmed slice, ignoring empty entries.
func splitCSV(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if t := strings.TrimSpace(part); t != "" {
			out = append(out, t)
		}
	}
	return out
}
