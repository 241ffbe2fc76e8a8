package ui

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

// ColorMode is the config/flag value controlling colour output.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

var colorMode = ColorAuto

// Stdout and Stderr are swapped out by tests.
var (
	Stdout io.Writer = os.Stdout
	Stderr io.Writer = os.Stderr
)

func SetColorMode(m ColorMode) {
	switch m {
	case ColorAlways, ColorNever:
		colorMode = m
	default:
		colorMode = ColorAuto
	}
}

func useColor() bool {
	switch colorMode {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	}
	if os.Getenv("NO_COLOR") != "" || os.Getenv("TERM") == "dumb" {
		return false
	}
	return isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
}

// C renders s with style when colour output is on.
func C(style lipgloss.Style, s string) string {
	if !useColor() {
		return s
	}
	return style.Render(s)
}

func OK(msg string) {
	fmt.Fprintln(Stdout, C(Current().Success, Current().SymDone+" "+msg))
}

func Fail(msg string) {
	fmt.Fprintln(Stderr, C(Current().Error, Current().SymFail+" "+msg))
}
