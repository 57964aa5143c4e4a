package mcpserver

import (
	"log/slog"
	"os"
	"strings"
)

// serverConfig holds all configurable server defaults.
// Loaded once at startup from environment variables via loadConfig().
type serverConfig struct {
	OutputFormat outputFormat
	HTTPAddr     string
	LogLevel     slog.Level
}

// cfg is the active server configuration, initialized at package load time.
var cfg = loadConfig()

// loadConfig reads configuration from OPENAPI_EXPLORER_* environment
// variables. Invalid values log a warning and fall back to the hardcoded
// default. Command-line flags override these.
func loadConfig() *serverConfig {
	return &serverConfig{
		OutputFormat: envFormat("OPENAPI_EXPLORER_OUTPUT_FORMAT", formatJSON),
		HTTPAddr:     envString("OPENAPI_EXPLORER_HTTP_ADDR", "127.0.0.1:8080"),
		LogLevel:     envLogLevel("OPENAPI_EXPLORER_LOG_LEVEL", slog.LevelInfo),
	}
}

// DefaultOutputFormat returns the configured output format name, for use as
// a flag default.
func DefaultOutputFormat() string {
	return string(cfg.OutputFormat)
}

// DefaultHTTPAddr returns the configured HTTP listen address, for use as a
// flag default.
func DefaultHTTPAddr() string {
	return cfg.HTTPAddr
}

// LogLevel returns the configured log level.
func LogLevel() slog.Level {
	return cfg.LogLevel
}

func envString(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envFormat(key string, fallback outputFormat) outputFormat {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	f, err := parseFormat(v)
	if err != nil {
		slog.Warn("invalid format env var, using default", "key", key, "value", v, "default", fallback)
		return fallback
	}
	return f
}

func envLogLevel(key string, fallback slog.Level) slog.Level {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	switch strings.ToLower(v) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		slog.Warn("invalid log level env var, using default", "key", key, "value", v, "default", fallback)
		return fallback
	}
}
