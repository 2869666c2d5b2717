package sanitizer

import "testing"

func TestTrimAndNormalize(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"empty string", "", ""},
		{"only whitespace", "   \t\n  ", ""},
		{"leading and trailing spaces", "  Hotel Plaza  ", "Hotel Plaza"},
		{"inner whitespace collapsed", "Hotel   \t Plaza", "Hotel Plaza"},
		{"already clean", "Hotel Plaza", "Hotel Plaza"},
		{"newlines inside", "Hotel\nPlaza", "Hotel Plaza"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TrimAndNormalize(tt.input); got != tt.expected {
				t.Errorf("TrimAndNormalize(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestNormalizeEmail(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"  R@X.Com ", "r@x.com"},
		{"user@example.com", "user@example.com"},
		{"   ", ""},
	}

	for _, tt := range tests {
		if got := NormalizeEmail(tt.input); got != tt.expected {
			t.Errorf("NormalizeEmail(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}

func TestNormalizeID(t *testing.T) {
	if got := NormalizeID("  abc-123  "); got != "abc-123" {
		t.Errorf("NormalizeID trimmed = %q, want %q", got, "abc-123")
	}
	// Inner whitespace is preserved: ids are opaque, not prose.
	if got := NormalizeID("a b"); got != "a b" {
		t.Errorf("NormalizeID(%q) = %q, want unchanged", "a b", got)
	}
}
