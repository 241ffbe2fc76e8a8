package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"
)

// ProgressBar renders a Unicode progress bar with percentage.
// A non-positive total is drawn as an empty bar.
func ProgressBar(done, total, width int) string {
	if width < 5 {
		width = 5
	}
	filled, pct := 0, 0
	if total > 0 {
		filled = min(width, int(float64(done)/float64(total)*float64(width)))
		pct = int(float64(done) / float64(total) * 100)
	}
	bar := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
	return fmt.Sprintf("%s %3d%%", bar, pct)
}

// Truncate shortens s to width display cells, CJK aware.
func Truncate(s string, width int) string {
	return runewidth.Truncate(s, width, "...")
}

// PanelString draws a framed box around lines using the current theme.
// Widths are measured in terminal cells, ignoring ANSI styling.
func PanelString(lines []string) string {
	b := Current().Border
	maxw := 0
	for _, ln := range lines {
		maxw = max(maxw, ansi.StringWidth(ln))
	}
	var sb strings.Builder
	sb.WriteString(b.TopLeft + strings.Repeat(b.Top, maxw+2) + b.TopRight + "\n")
	for _, ln := range lines {
		pad := maxw - ansi.StringWidth(ln)
		sb.WriteString(b.Left + " " + ln + strings.Repeat(" ", pad) + " " + b.Right + "\n")
	}
	sb.WriteString(b.BottomLeft + strings.Repeat(b.Bottom, maxw+2) + b.BottomRight)
	return sb.String()
}

// Panel prints PanelString(lines).
func Panel(lines []string) {
	fmt.Fprintln(Stdout, PanelString(lines))
}
