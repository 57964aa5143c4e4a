package mcpserver

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("OPENAPI_EXPLORER_OUTPUT_FORMAT", "")
	t.Setenv("OPENAPI_EXPLORER_HTTP_ADDR", "")
	t.Setenv("OPENAPI_EXPLORER_LOG_LEVEL", "")

	c := loadConfig()
	assert.Equal(t, formatJSON, c.OutputFormat)
	assert.Equal(t, "127.0.0.1:8080", c.HTTPAddr)
	assert.Equal(t, slog.LevelInfo, c.LogLevel)
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("OPENAPI_EXPLORER_OUTPUT_FORMAT", "yaml")
	t.Setenv("OPENAPI_EXPLORER_HTTP_ADDR", "0.0.0.0:9999")
	t.Setenv("OPENAPI_EXPLORER_LOG_LEVEL", "debug")

	c := loadConfig()
	assert.Equal(t, formatYAML, c.OutputFormat)
	assert.Equal(t, "0.0.0.0:9999", c.HTTPAddr)
	assert.Equal(t, slog.LevelDebug, c.LogLevel)
}

func TestLoadConfigInvalidValuesFallBack(t *testing.T) {
	t.Setenv("OPENAPI_EXPLORER_OUTPUT_FORMAT", "xml")
	t.Setenv("OPENAPI_EXPLORER_LOG_LEVEL", "loud")

	c := loadConfig()
	assert.Equal(t, formatJSON, c.OutputFormat)
	assert.Equal(t, slog.LevelInfo, c.LogLevel)
}
