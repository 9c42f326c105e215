package config

import (
	"reflect"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{
		"LINKHUB_LISTEN_PORT", "LINKHUB_SHUTDOWN_TIMEOUT", "LINKHUB_LOG_LEVEL",
		"LINKHUB_PRETTY_LOG", "LINKHUB_TEMPLATE_URL", "LINKHUB_FETCH_TIMEOUT",
		"LINKHUB_ALLOWED_CIDRS", "LINKHUB_TRUST_PROXY",
	} {
		t.Setenv(key, "")
	}

	cfg := Load()

	expected := &Config{
		ListenPort:      ":8080",
		ShutdownTimeout: 5 * time.Second,
		LogLevel:        "info",
		PrettyLog:       true,
		TemplateURL:     DefaultTemplateURL,
		FetchTimeout:    0,
		AllowedCIDRS:    nil,
		TrustProxy:      true,
	}
	if !reflect.DeepEqual(cfg, expected) {
		t.Errorf("Load() = %+v, want %+v", cfg, expected)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("LINKHUB_LISTEN_PORT", ":9000")
	t.Setenv("LINKHUB_SHUTDOWN_TIMEOUT", "10s")
	t.Setenv("LINKHUB_LOG_LEVEL", "warn")
	t.Setenv("LINKHUB_PRETTY_LOG", "false")
	t.Setenv("LINKHUB_TEMPLATE_URL", "http://localhost:8787/template.html")
	t.Setenv("LINKHUB_FETCH_TIMEOUT", "3s")
	t.Setenv("LINKHUB_ALLOWED_CIDRS", "10.0.0.0/8, '192.168.1.1'")
	t.Setenv("LINKHUB_TRUST_PROXY", "false")

	cfg := Load()

	expected := &Config{
		ListenPort:      ":9000",
		ShutdownTimeout: 10 * time.Second,
		LogLevel:        "warn",
		PrettyLog:       false,
		TemplateURL:     "http://localhost:8787/template.html",
		FetchTimeout:    3 * time.Second,
		AllowedCIDRS:    []string{"10.0.0.0/8", "192.168.1.1"},
		TrustProxy:      false,
	}
	if !reflect.DeepEqual(cfg, expected) {
		t.Errorf("Load() = %+v, want %+v", cfg, expected)
	}
}

func TestMustURL(t *testing.T) {
	tests := []struct {
		name      string
		value     string
		expected  string
		wantPanic bool
	}{
		{name: "unset uses default", value: "", expected: DefaultTemplateURL},
		{name: "https", value: "https://example.com/page", expected: "https://example.com/page"},
		{name: "http with port", value: "http://127.0.0.1:8080", expected: "http://127.0.0.1:8080"},
		{name: "relative", value: "/template.html", wantPanic: true},
		{name: "other scheme", value: "ftp://example.com", wantPanic: true},
		{name: "garbage", value: "http://[::1", wantPanic: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("TEST_URL", tt.value)

			if tt.wantPanic {
				defer func() {
					if r := recover(); r == nil {
						t.Errorf("mustURL() should have panicked")
					}
				}()
			}

			result := mustURL("TEST_URL", DefaultTemplateURL)
			if !tt.wantPanic && result != tt.expected {
				t.Errorf("mustURL() = %v, want %v", result, tt.expected)
			}
		})
	}
}

func TestMustDuration(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		def      time.Duration
		expected time.Duration
	}{
		{name: "valid duration", value: "5s", def: 1 * time.Second, expected: 5 * time.Second},
		{name: "zero duration", value: "0", def: 1 * time.Second, expected: 0},
		{name: "negative uses default", value: "-1s", def: 2 * time.Second, expected: 2 * time.Second},
		{name: "invalid duration uses default", value: "invalid", def: 10 * time.Second, expected: 10 * time.Second},
		{name: "missing variable uses default", value: "", def: 15 * time.Second, expected: 15 * time.Second},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("TEST_DURATION", tt.value)

			result := mustDuration("TEST_DURATION", tt.def)
			if result != tt.expected {
				t.Errorf("mustDuration() = %v, want %v", result, tt.expected)
			}
		})
	}
}

func TestMustBool(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		def      bool
		expected bool
	}{
		{name: "true value", value: "true", def: false, expected: true},
		{name: "false value", value: "false", def: true, expected: false},
		{name: "numeric value", value: "0", def: true, expected: false},
		{name: "invalid value uses default", value: "invalid", def: true, expected: true},
		{name: "missing variable uses default", value: "", def: false, expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("TEST_BOOL", tt.value)

			result := mustBool("TEST_BOOL", tt.def)
			if result != tt.expected {
				t.Errorf("mustBool() = %v, want %v", result, tt.expected)
			}
		})
	}
}

func TestSplitAndTrim(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{name: "empty", input: "", expected: nil},
		{name: "single", input: "10.0.0.1", expected: []string{"10.0.0.1"}},
		{name: "spaces and quotes", input: ` "10.0.0.0/8" , 127.0.0.1 ,`, expected: []string{"10.0.0.0/8", "127.0.0.1"}},
		{name: "only separators", input: " , ,", expected: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := splitAndTrim(tt.input)
			if !reflect.DeepEqual(result, tt.expected) {
				t.Errorf("splitAndTrim(%q) = %#v, want %#v", tt.input, result, tt.expected)
			}
		})
	}
}
