package cli

import (
	"testing"
	"time"
)

func TestPadRight(t *testing.T) {
	tests := []struct {
		name  string
		s     string
		width int
		want  string
	}{
		{"shorter", "abc", 6, "abc   "},
		{"exact", "abcdef", 6, "abcdef"},
		{"longer untouched", "abcdefgh", 6, "abcdefgh"},
		{"wide runes", "日本語", 8, "日本語  "},
		{"empty", "", 3, "   "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := padRight(tt.s, tt.width); got != tt.want {
				t.Errorf("padRight(%q, %d) = %q, want %q", tt.s, tt.width, got, tt.want)
			}
		})
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		name  string
		s     string
		width int
		want  string
	}{
		{"fits", "hello", 10, "hello"},
		{"cut", "hello world", 5, "hell…"},
		{"wide runes", "日本語テキスト", 7, "日本語…"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := truncate(tt.s, tt.width); got != tt.want {
				t.Errorf("truncate(%q, %d) = %q, want %q", tt.s, tt.width, got, tt.want)
			}
		})
	}
}

func TestShortSHA(t *testing.T) {
	tests := []struct {
		sha  string
		want string
	}{
		{"a1b2c3d4e5f6a7b8c9d0", "a1b2c3d"},
		{"a1b2c3d", "a1b2c3d"},
		{"abc", "abc"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := shortSHA(tt.sha); got != tt.want {
			t.Errorf("shortSHA(%q) = %q, want %q", tt.sha, got, tt.want)
		}
	}
}

func TestFormatRelativeTime(t *testing.T) {
	now := time.Now()
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"minutes", now.Add(-5 * time.Minute).Format(time.RFC3339), "5m ago"},
		{"hours", now.Add(-3 * time.Hour).Format(time.RFC3339), "3h ago"},
		{"days", now.Add(-48 * time.Hour).Format(time.RFC3339), "2d ago"},
		{"old date", "2020-01-15T10:30:00Z", "Jan 15, 2020"},
		{"unparseable passes through", "yesterday", "yesterday"},
		{"empty passes through", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := formatRelativeTime(tt.in); got != tt.want {
				t.Errorf("formatRelativeTime(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
