package mcpserver

import (
	"log/slog"
	"os"
	"strconv"
)

// serverConfig holds all configurable MCP server defaults.
// Loaded once at startup from environment variables via loadConfig().
type serverConfig struct {
	// ReadOnly forces dry-run on every rename call.
	ReadOnly bool

	// ActionLimit is the default page size for rename actions.
	ActionLimit int
	// MaxLimit caps an explicit limit.
	MaxLimit int
}

// cfg is the active server configuration, initialized at package load time.
var cfg = loadConfig()

// loadConfig reads configuration from RECASE_MCP_* environment variables.
// Invalid values log a warning and fall back to the hardcoded default.
func loadConfig() *serverConfig {
	c := &serverConfig{
		ReadOnly:    envBool("RECASE_MCP_READ_ONLY", false),
		ActionLimit: envInt("RECASE_MCP_ACTION_LIMIT", 100),
		MaxLimit:    envInt("RECASE_MCP_MAX_LIMIT", 1000),
	}
	if c.ActionLimit > c.MaxLimit {
		slog.Warn("action limit exceeds max limit, clamping", "action_limit", c.ActionLimit, "max_limit", c.MaxLimit)
		c.ActionLimit = c.MaxLimit
	}
	return c
}

func envBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		slog.Warn("invalid bool env var, using default", "key", key, "value", v, "default", fallback) //nolint:gosec // G706: values are structured log fields, not format strings
		return fallback
	}
	return b
}

func envInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		slog.Warn("invalid int env var, using default", "key", key, "value", v, "default", fallback) //nolint:gosec // G706: values are structured log fields, not format strings
		return fallback
	}
	return n
}
