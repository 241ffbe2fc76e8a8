package toast

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
)

const (
	defaultWidth = 80
	resetSGR     = "\x1b[m"
)

// NotifyMsg asks the stack to show a toast. Child views return it via
// Notify instead of reaching into the stack themselves.
type NotifyMsg struct {
	Severity Severity
	Message  string
}

// Notify creates a tea.Cmd that produces a NotifyMsg.
func Notify(sev Severity, message string) tea.Cmd {
	return func() tea.Msg {
		return NotifyMsg{Severity: sev, Message: message}
	}
}

// tick schedules a timer message; tests swap it to observe durations.
var tick = tea.Tick

// autoDismissMsg fires AutoDismiss after a toast was shown.
type autoDismissMsg struct{ id int }

// removeMsg fires Fade after a toast started fading.
type removeMsg struct{ id int }

// Stack is the set of live toasts, newest last. The zero value is ready
// to use.
type Stack struct {
	toasts []Toast
	nextID int
	width  int
}

func New() Stack { return Stack{} }

// Show adds a toast right away and returns its auto-dismiss timer.
func (s *Stack) Show(message string, sev Severity) tea.Cmd {
	s.nextID++
	id := s.nextID
	s.toasts = append(s.toasts, Toast{ID: id, Message: message, Severity: sev})
	return tick(AutoDismiss, func(time.Time) tea.Msg {
		return autoDismissMsg{id: id}
	})
}

// Dismiss starts fading the toast and schedules its removal.
// Dismissing a toast that is already gone does nothing.
func (s *Stack) Dismiss(id int) tea.Cmd {
	i := s.index(id)
	if i < 0 {
		return nil
	}
	toasts := s.Toasts()
	toasts[i].fading = true
	s.toasts = toasts
	return tick(Fade, func(time.Time) tea.Msg {
		return removeMsg{id: id}
	})
}

// DismissNewest dismisses the most recently shown toast.
func (s *Stack) DismissNewest() tea.Cmd {
	if len(s.toasts) == 0 {
		return nil
	}
	return s.Dismiss(s.toasts[len(s.toasts)-1].ID)
}

// removeIfPresent drops the toast with id; false if it was already gone.
func (s *Stack) removeIfPresent(id int) bool {
	i := s.index(id)
	if i < 0 {
		return false
	}
	// copies of the Stack share the backing array, so never shift in place
	kept := make([]Toast, 0, len(s.toasts)-1)
	kept = append(kept, s.toasts[:i]...)
	s.toasts = append(kept, s.toasts[i+1:]...)
	return true
}

func (s Stack) index(id int) int {
	for i, t := range s.toasts {
		if t.ID == id {
			return i
		}
	}
	return -1
}

// Has reports whether the toast is still on the stack.
func (s Stack) Has(id int) bool { return s.index(id) >= 0 }

// Len is the number of live toasts, fading ones included.
func (s Stack) Len() int { return len(s.toasts) }

// Toasts returns a copy of the live toasts, oldest first.
func (s Stack) Toasts() []Toast {
	out := make([]Toast, len(s.toasts))
	copy(out, s.toasts)
	return out
}

// SetWidth sets the frame width toasts are aligned against.
func (s *Stack) SetWidth(w int) { s.width = w }

func (s Stack) frameWidth() int {
	if s.width <= 0 {
		return defaultWidth
	}
	return s.width
}

// Update handles notify requests, timer ticks, window resizes and
// clicks on a toast's close mark.
func (s Stack) Update(msg tea.Msg) (Stack, tea.Cmd) {
	switch msg := msg.(type) {
	case NotifyMsg:
		cmd := s.Show(msg.Message, msg.Severity)
		return s, cmd
	case autoDismissMsg:
		if !s.Has(msg.id) {
			return s, nil
		}
		cmd := s.Dismiss(msg.id)
		return s, cmd
	case removeMsg:
		s.removeIfPresent(msg.id)
		return s, nil
	case tea.WindowSizeMsg:
		s.width = msg.Width
		return s, nil
	case tea.MouseMsg:
		if msg.Action != tea.MouseActionRelease || msg.Button != tea.MouseButtonLeft {
			return s, nil
		}
		if id, ok := s.closeHit(msg.X, msg.Y); ok {
			cmd := s.Dismiss(id)
			return s, cmd
		}
	}
	return s, nil
}

// closeHit maps a click position to the toast whose close mark was hit.
func (s Stack) closeHit(x, y int) (int, bool) {
	if y < 0 {
		return 0, false
	}
	i := y / toastHeight
	if i >= len(s.toasts) || y%toastHeight != 1 {
		return 0, false
	}
	right := s.frameWidth()
	// border and padding sit right of the mark
	if x < right-4 || x >= right {
		return 0, false
	}
	return s.toasts[i].ID, true
}

// View renders the toasts stacked top to bottom, right aligned to the
// frame width.
func (s Stack) View() string {
	var lines []string
	for _, t := range s.toasts {
		for _, ln := range t.Lines() {
			lines = append(lines, padLeft(ln, s.frameWidth()))
		}
	}
	return strings.Join(lines, "\n")
}

// Overlay paints the toasts over the top-right corner of frame.
func (s Stack) Overlay(frame string) string {
	if len(s.toasts) == 0 {
		return frame
	}
	width := s.frameWidth()
	lines := strings.Split(frame, "\n")
	row := 0
	for _, t := range s.toasts {
		for _, tl := range t.Lines() {
			for row >= len(lines) {
				lines = append(lines, "")
			}
			x := max(0, width-ansi.StringWidth(tl))
			left := ansi.Truncate(lines[row], x, "")
			pad := x - ansi.StringWidth(left)
			lines[row] = left + resetSGR + strings.Repeat(" ", pad) + tl
			row++
		}
	}
	return strings.Join(lines, "\n")
}

func padLeft(s string, width int) string {
	w := ansi.StringWidth(s)
	if w >= width {
		return s
	}
	return strings.Repeat(" ", width-w) + s
}
