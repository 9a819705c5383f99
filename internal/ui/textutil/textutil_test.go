package textutil

import "testing"

func TestTruncate(t *testing.T) {
	tests := []struct {
		in    string
		width int
		want  string
	}{
		{"hello", 10, "hello"},
		{"hello", 5, "hello"},
		{"hello world", 6, "hello…"},
		{"hello", 0, ""},
		{"日本語テキスト", 5, "日本…"},
	}
	for _, tt := range tests {
		if got := Truncate(tt.in, tt.width); got != tt.want {
			t.Errorf("Truncate(%q, %d) = %q, want %q", tt.in, tt.width, got, tt.want)
		}
		if w := VisualWidth(Truncate(tt.in, tt.width)); w > tt.width {
			t.Errorf("Truncate(%q, %d) is %d columns wide", tt.in, tt.width, w)
		}
	}
}

func TestSpreadLine(t *testing.T) {
	if got := SpreadLine("ab", "cd", 8); got != "ab    cd" {
		t.Errorf("SpreadLine = %q", got)
	}
	if got := SpreadLine("abcdef", "xyz", 8); got != "abcdef" {
		t.Errorf("SpreadLine overflow = %q", got)
	}
}
