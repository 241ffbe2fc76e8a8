// Package toast renders transient, self-dismissing notifications over a
// bubbletea frame.
//
// A toast is shown immediately and fades out either when the user
// dismisses it or after AutoDismiss. Both paths schedule their own
// removal tick; removal is a no-op once the toast is gone, so the two
// paths may race freely.
package toast

import (
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

const (
	AutoDismiss = 3000 * time.Millisecond
	Fade        = 500 * time.Millisecond
)

const (
	minInnerWidth = 34 // 36 cells with padding
	maxInnerWidth = 60
	closeMark     = "×"
)

// Severity selects a toast's colour scheme.
type Severity string

const (
	Success Severity = "success"
	Danger  Severity = "danger"
	Warning Severity = "warning"
	Info    Severity = "info"
)

// Palette is the (background, text, border) colour triple of a severity.
type Palette struct {
	Background lipgloss.Color
	Text       lipgloss.Color
	Border     lipgloss.Color
}

// Palette returns the colours for s. Unknown severities use Info's.
func (s Severity) Palette() Palette {
	switch s {
	case Success:
		return Palette{Background: "#d4edda", Text: "#155724", Border: "#c3e6cb"}
	case Danger:
		return Palette{Background: "#f8d7da", Text: "#721c24", Border: "#f5c6cb"}
	case Warning:
		return Palette{Background: "#fff3cd", Text: "#856404", Border: "#ffeeba"}
	default:
		return Palette{Background: "#d1ecf1", Text: "#0c5460", Border: "#bee5eb"}
	}
}

// Toast is one notification on a Stack.
type Toast struct {
	ID       int
	Message  string
	Severity Severity
	fading   bool
}

// Fading reports whether the toast has been dismissed and is waiting
// to be removed.
func (t Toast) Fading() bool { return t.fading }

// Lines renders the toast as bordered lines of equal width.
func (t Toast) Lines() []string {
	return strings.Split(t.render(), "\n")
}

func (t Toast) render() string {
	p := t.Severity.Palette()
	body := lipgloss.NewStyle().Background(p.Background).Foreground(p.Text)
	if t.fading {
		body = body.Faint(true)
	}

	msg := strings.ReplaceAll(t.Message, "\n", " ")
	if ansi.StringWidth(msg) > maxInnerWidth-2 {
		msg = ansi.Truncate(msg, maxInnerWidth-2, "…")
	}
	inner := max(minInnerWidth, ansi.StringWidth(msg)+2)
	gap := inner - ansi.StringWidth(msg) - ansi.StringWidth(closeMark)

	content := body.Render(msg) +
		body.Render(strings.Repeat(" ", gap)) +
		body.Bold(true).Render(closeMark)

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(p.Border).
		BorderBackground(p.Background).
		Background(p.Background).
		Padding(0, 1)
	if t.fading {
		box = box.Faint(true)
	}
	return box.Render(content)
}

// height of a rendered toast: one content line plus top and bottom border.
const toastHeight = 3
