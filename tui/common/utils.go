package common

import (
	"fmt"

	"github.com/charmbracelet/x/ansi"
)

// FormatCount renders interaction counters the way the mobile apps do:
// 1.2K, 4.1M, plain digits below a thousand.
func FormatCount(n int) string {
	switch {
	case n >= 1000000:
		return trimTrailingZero(float64(n)/1000000) + "M"
	case n >= 1000:
		return trimTrailingZero(float64(n)/1000) + "K"
	default:
		return fmt.Sprintf("%d", n)
	}
}

func trimTrailingZero(f float64) string {
	s := fmt.Sprintf("%.1f", f)
	if len(s) > 2 && s[len(s)-2:] == ".0" {
		return s[:len(s)-2]
	}
	return s
}

// Truncate cuts styled text to the given display width, appending an
// ellipsis when anything was dropped.
func Truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if ansi.StringWidth(s) <= width {
		return s
	}
	if width == 1 {
		return "…"
	}
	return ansi.Truncate(s, width-1, "") + "…"
}
