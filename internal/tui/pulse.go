package tui

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Pulse colors for the "Calling..." label
var (
	pulseBase      = [3]int{156, 163, 175} // ColorSecondaryText
	pulseHighlight = [3]int{191, 219, 254}
)

// pulseText sweeps a highlight across text. step is the animation frame;
// the highlight moves one glyph per frame and wraps with a short gap.
func pulseText(text string, step int) string {
	runes := []rune(text)
	if len(runes) == 0 {
		return ""
	}

	// Travel past both ends so the highlight fully enters and leaves
	span := len(runes) + 4
	center := float64(step%span) - 2

	sigma := float64(len(runes)) / 6
	if sigma < 1 {
		sigma = 1
	}

	var b strings.Builder
	for i, r := range runes {
		dx := float64(i) - center
		w := math.Exp(-(dx * dx) / (2 * sigma * sigma))
		b.WriteString(lipgloss.NewStyle().
			Foreground(lipgloss.Color(blend(pulseBase, pulseHighlight, w))).
			Render(string(r)))
	}
	return b.String()
}

// blend mixes two RGB colors, w in [0,1]
func blend(base, highlight [3]int, w float64) string {
	w = math.Max(0, math.Min(1, w))
	var out [3]int
	for i := range out {
		out[i] = int(float64(base[i])*(1-w) + float64(highlight[i])*w)
	}
	return fmt.Sprintf("#%02X%02X%02X", out[0], out[1], out[2])
}
