package common

import "testing"

func TestSanitizeURL(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"clean", "https://example.com", "https://example.com"},
		{"whitespace", "  https://example.com  ", "https://example.com"},
		{"markdown link", "[click here](https://example.com)", "https://example.com"},
		{"trailing comma", "https://example.com,", "https://example.com"},
		{"trailing period", "https://example.com.", "https://example.com"},
		{"wrapped in quotes", `"https://example.com"`, "https://example.com"},
		{"angle brackets", "<https://example.com>", "https://example.com"},
		{"trailing paren", "https://example.com)", "https://example.com"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SanitizeURL(tt.in); got != tt.want {
				t.Errorf("SanitizeURL(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestSuspiciousURL(t *testing.T) {
	tests := []struct {
		url  string
		want bool
	}{
		{"https://example.com", false},
		{"http://example.com/news", false},
		{"javascript:alert(1)", true},
		{"ftp://example.com", true},
		{"http://localhost:8080", true},
		{"https://127.0.0.1/admin", true},
		{"http://0.0.0.0", true},
		{"https://myserver.local/page", true},
		{"https://best-casino-online.example", true},
		{"https://free-money.example", true},
		{"https://KEYGEN.example", true},
	}

	for _, tt := range tests {
		if got := SuspiciousURL(tt.url); got != tt.want {
			t.Errorf("SuspiciousURL(%q) = %v, want %v", tt.url, got, tt.want)
		}
	}
}

func TestValidURL(t *testing.T) {
	tests := []struct {
		url  string
		want bool
	}{
		{"https://example.com", true},
		{"http://example.com/path?q=1", true},
		{"example.com", false},
		{"https://", false},
		{"https://example.com/a b", false},
		{"ftp://example.com", false},
		{`https://exa"mple.com`, false},
	}

	for _, tt := range tests {
		if got := ValidURL(tt.url); got != tt.want {
			t.Errorf("ValidURL(%q) = %v, want %v", tt.url, got, tt.want)
		}
	}
}
