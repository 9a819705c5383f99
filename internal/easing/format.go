package easing

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Format selects how intermediate values are displayed.
type Format int

const (
	FormatPlain    Format = iota // thousands separators: 1,500,000
	FormatPercent                // 85%
	FormatMillions               // 1.5M
)

func (f Format) String() string {
	switch f {
	case FormatPlain:
		return "plain"
	case FormatPercent:
		return "percent"
	case FormatMillions:
		return "millions"
	default:
		return "unknown"
	}
}

var printer = message.NewPrinter(language.English)

// ParseTarget extracts the end value from display text by dropping every
// non-digit and parsing what remains. "2.5M" therefore yields 25.
// ok is false when there are no digits or the value is not positive.
func ParseTarget(text string) (value int64, ok bool) {
	digits := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, text)
	if digits == "" {
		return 0, false
	}
	v, err := strconv.ParseInt(digits, 10, 64)
	if err != nil || v <= 0 {
		return 0, false
	}
	return v, true
}

// DetectFormat picks the display format from the original text.
// A "Million" or "M" marker wins over "%".
func DetectFormat(text string) Format {
	switch {
	case strings.Contains(text, "Million") || strings.ContainsRune(text, 'M'):
		return FormatMillions
	case strings.ContainsRune(text, '%'):
		return FormatPercent
	default:
		return FormatPlain
	}
}

// FormatValue renders v in the given format.
func FormatValue(v int64, f Format) string {
	switch f {
	case FormatMillions:
		return strconv.FormatFloat(float64(v)/1_000_000, 'f', 1, 64) + "M"
	case FormatPercent:
		return strconv.FormatInt(v, 10) + "%"
	default:
		return printer.Sprintf("%d", v)
	}
}

// Compact abbreviates large numbers: 1500000 -> "1.5M", 2500 -> "2.5K".
func Compact(n int64) string {
	switch {
	case n >= 1_000_000:
		return fmt.Sprintf("%.1fM", float64(n)/1_000_000)
	case n >= 1_000:
		return fmt.Sprintf("%.1fK", float64(n)/1_000)
	default:
		return strconv.FormatInt(n, 10)
	}
}
