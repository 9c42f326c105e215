package utils

import (
	"net/http/httptest"
	"testing"
)

func TestIPMatcher(t *testing.T) {
	m := NewIPMatcher([]string{"10.0.0.0/8", " 192.168.1.10 ", "::1", "garbage", ""})

	if m.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", m.Len())
	}

	tests := []struct {
		ip       string
		expected bool
	}{
		{ip: "10.1.2.3", expected: true},
		{ip: "192.168.1.10", expected: true},
		{ip: "192.168.1.11", expected: false},
		{ip: "::1", expected: true},
		{ip: "::ffff:10.0.0.1", expected: true},
		{ip: "not-an-ip", expected: false},
		{ip: "", expected: false},
	}

	for _, tt := range tests {
		if got := m.Allow(tt.ip); got != tt.expected {
			t.Errorf("Allow(%q) = %v, want %v", tt.ip, got, tt.expected)
		}
	}
}

func TestIPMatcherEmpty(t *testing.T) {
	if !NewIPMatcher(nil).IsEmpty() {
		t.Error("IsEmpty() = false for nil list")
	}
	if !NewIPMatcher([]string{"nope"}).IsEmpty() {
		t.Error("IsEmpty() = false when every entry is invalid")
	}
}

func TestClientIP(t *testing.T) {
	tests := []struct {
		name       string
		headers    map[string]string
		remoteAddr string
		trustProxy bool
		expected   string
	}{
		{
			name:       "remote addr without proxy trust",
			headers:    map[string]string{"X-Forwarded-For": "1.1.1.1"},
			remoteAddr: "10.0.0.1:1234",
			expected:   "10.0.0.1",
		},
		{
			name:       "cloudflare header wins",
			headers:    map[string]string{"CF-Connecting-IP": "2.2.2.2", "X-Forwarded-For": "1.1.1.1"},
			remoteAddr: "10.0.0.1:1234",
			trustProxy: true,
			expected:   "2.2.2.2",
		},
		{
			name:       "left-most forwarded for",
			headers:    map[string]string{"X-Forwarded-For": " 3.3.3.3 , 4.4.4.4"},
			remoteAddr: "10.0.0.1:1234",
			trustProxy: true,
			expected:   "3.3.3.3",
		},
		{
			name:       "real ip fallback",
			headers:    map[string]string{"X-Real-IP": "5.5.5.5"},
			remoteAddr: "10.0.0.1:1234",
			trustProxy: true,
			expected:   "5.5.5.5",
		},
		{
			name:       "no headers with proxy trust",
			remoteAddr: "[::1]:8080",
			trustProxy: true,
			expected:   "::1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest("GET", "/", nil)
			r.RemoteAddr = tt.remoteAddr
			for k, v := range tt.headers {
				r.Header.Set(k, v)
			}
			if got := ClientIP(r, tt.trustProxy); got != tt.expected {
				t.Errorf("ClientIP() = %q, want %q", got, tt.expected)
			}
		})
	}
}
