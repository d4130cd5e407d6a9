package tui

import (
	"fmt"
	"math"
	"strings"

	"github.com/akyairhashvil/nebula/internal/countdown"
	"github.com/akyairhashvil/nebula/internal/util"
)

// FormatRemaining splits the countdown into zero-padded minutes and seconds.
func FormatRemaining(r countdown.Remaining) (string, string) {
	return fmt.Sprintf("%02d", r.Minutes), fmt.Sprintf("%02d", r.Seconds)
}

// FormatVolume renders a volume level as a percentage.
func FormatVolume(v float64) string {
	return fmt.Sprintf("%d%%", int(math.Round(v*100)))
}

// volumeBar draws a slider of width cells for a level in [0,1].
func volumeBar(v float64, width int) string {
	if width <= 0 {
		return ""
	}
	filled := util.Clamp(int(math.Round(v*float64(width))), 0, width)
	return strings.Repeat("▮", filled) + strings.Repeat("▯", width-filled)
}

// spaced inserts a space between runes, the terminal stand-in for scaling
// text up.
func spaced(s string) string {
	runes := []rune(s)
	if len(runes) < 2 {
		return s
	}
	var b strings.Builder
	for i, r := range runes {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteRune(r)
	}
	return b.String()
}
