package mcpserver

import (
	"log/slog"
	"os"
	"strconv"

	"github.com/calebmer/inflections/stylist"
)

// serverConfig holds all configurable MCP server defaults.
// Loaded once at startup from environment variables via loadConfig().
type serverConfig struct {
	// DefaultStyle is used when a tool call omits the style argument.
	DefaultStyle stylist.Style

	// MaxTextBytes bounds tool input size. The library itself is total over
	// any input; this guard only exists at the service boundary.
	MaxTextBytes int
}

// cfg is the active server configuration, initialized at package load time.
var cfg = loadConfig()

// loadConfig reads configuration from INFLECT_* environment variables.
// Invalid values log a warning and fall back to the hardcoded default.
func loadConfig() *serverConfig {
	return &serverConfig{
		DefaultStyle: envStyle("INFLECT_DEFAULT_STYLE", stylist.StyleCamel),
		MaxTextBytes: envInt("INFLECT_MAX_TEXT_BYTES", 1<<20),
	}
}

func envStyle(key string, fallback stylist.Style) stylist.Style {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	s, err := stylist.ParseStyle(v)
	if err != nil {
		slog.Warn("invalid style env var, using default", "key", key, "value", v, "default", fallback.String())
		return fallback
	}
	return s
}

func envInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		slog.Warn("invalid int env var, using default", "key", key, "value", v, "default", fallback)
		return fallback
	}
	return n
}
