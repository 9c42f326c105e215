package config

import (
	"fmt"
	"log"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"
)

// DefaultTemplateURL serves the unstyled link page template.
const DefaultTemplateURL = "https://static-links-page.signalnerve.workers.dev"

type Config struct {
	ListenPort      string        // ex: ":8080"
	ShutdownTimeout time.Duration // ex: 5s

	LogLevel  string // "debug" | "info" | "warn" | "error"
	PrettyLog bool   // true => zap dev (color), false => zap prod (JSON)

	TemplateURL  string        // upstream template document
	FetchTimeout time.Duration // outbound fetch timeout (0 = none, bounded by the client request)

	AllowedCIDRS []string // optional, restrict access to probes (e.g. "1.2.3.4, 10.0.0.0/8")
	TrustProxy   bool     // true => trust X-Forwarded-For headers (e.g. cloudflared)
}

func Load() *Config {
	cfg := &Config{
		// Server settings
		ListenPort:      getenv("LINKHUB_LISTEN_PORT", ":8080"),
		ShutdownTimeout: mustDuration("LINKHUB_SHUTDOWN_TIMEOUT", 5*time.Second),

		// Logging
		LogLevel:  getenv("LINKHUB_LOG_LEVEL", "info"),
		PrettyLog: mustBool("LINKHUB_PRETTY_LOG", true),

		// Upstream
		TemplateURL:  mustURL("LINKHUB_TEMPLATE_URL", DefaultTemplateURL),
		FetchTimeout: mustDuration("LINKHUB_FETCH_TIMEOUT", 0),

		// Access restrictions
		AllowedCIDRS: splitAndTrim(getenv("LINKHUB_ALLOWED_CIDRS", "")),
		TrustProxy:   mustBool("LINKHUB_TRUST_PROXY", true),
	}

	if cfg.LogLevel == "debug" {
		log.Printf("[DEBUG] cfg: %+v\n", *cfg)
	}

	return cfg
}

// helpers
func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func mustBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err == nil {
			return b
		}
	}
	return def
}

func mustDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d >= 0 {
			return d
		}
	}
	return def
}

// mustURL returns an absolute http(s) URL or panics.
func mustURL(key, def string) string {
	v := getenv(key, def)
	u, err := url.Parse(v)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		panic(fmt.Sprintf("❌ FATAL: %s must be an absolute http(s) URL, got %q", key, v))
	}
	return v
}

func splitAndTrim(s string) []string {
	if s == "" {
		return nil
	}
	raw := strings.Split(s, ",")
	parts := make([]string, 0, len(raw))
	for _, part := range raw {
		trimmed := strings.TrimSpace(part)
		// Remove surrounding quotes if present
		trimmed = strings.Trim(trimmed, `"'`)
		if trimmed != "" {
			parts = append(parts, trimmed)
		}
	}
	return parts
}
