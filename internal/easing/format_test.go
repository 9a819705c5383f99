package easing

import "testing"

func TestParseTarget(t *testing.T) {
	tests := []struct {
		in     string
		want   int64
		wantOK bool
	}{
		{"1500000", 1500000, true},
		{"85%", 85, true},
		{"2.5M", 25, true},
		{"3 Million", 3, true},
		{"$1,200", 1200, true},
		{"", 0, false},
		{"none", 0, false},
		{"0", 0, false},
		{"99999999999999999999999", 0, false},
	}
	for _, tt := range tests {
		got, ok := ParseTarget(tt.in)
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("ParseTarget(%q) = %d, %v; want %d, %v", tt.in, got, ok, tt.want, tt.wantOK)
		}
	}
}

func TestDetectFormat(t *testing.T) {
	tests := []struct {
		in   string
		want Format
	}{
		{"1500000", FormatPlain},
		{"85%", FormatPercent},
		{"2.5M", FormatMillions},
		{"3 Million", FormatMillions},
		{"50% of 2M", FormatMillions},
	}
	for _, tt := range tests {
		if got := DetectFormat(tt.in); got != tt.want {
			t.Errorf("DetectFormat(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestFormatValue(t *testing.T) {
	tests := []struct {
		v    int64
		f    Format
		want string
	}{
		{1500000, FormatPlain, "1,500,000"},
		{999, FormatPlain, "999"},
		{0, FormatPlain, "0"},
		{42, FormatPercent, "42%"},
		{1500000, FormatMillions, "1.5M"},
		{25, FormatMillions, "0.0M"},
		{180000000, FormatMillions, "180.0M"},
	}
	for _, tt := range tests {
		if got := FormatValue(tt.v, tt.f); got != tt.want {
			t.Errorf("FormatValue(%d, %v) = %q, want %q", tt.v, tt.f, got, tt.want)
		}
	}
}

func TestFormat_String(t *testing.T) {
	if FormatMillions.String() != "millions" || Format(9).String() != "unknown" {
		t.Error("unexpected Format names")
	}
}

func TestCompact(t *testing.T) {
	tests := map[int64]string{
		12:       "12",
		2500:     "2.5K",
		1500000:  "1.5M",
		45000000: "45.0M",
	}
	for in, want := range tests {
		if got := Compact(in); got != want {
			t.Errorf("Compact(%d) = %q, want %q", in, got, want)
		}
	}
}
