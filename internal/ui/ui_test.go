package ui

import (
	"bytes"
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProgressBar(t *testing.T) {
	assert.Equal(t, "█████░░░░░  50%", ProgressBar(1, 2, 10))
	assert.Equal(t, "░░░░░   0%", ProgressBar(3, 0, 1))
	assert.Equal(t, "█████ 200%", ProgressBar(4, 2, 5))
}

func TestPanelStringAlignsWideRunes(t *testing.T) {
	SetTheme("classic")
	out := PanelString([]string{"每周", "abcd", "\x1b[1mab\x1b[0m"})
	lines := strings.Split(out, "\n")
	require.Len(t, lines, 5)
	for _, ln := range lines {
		assert.Equal(t, 8, ansi.StringWidth(ln), "line %q", ln)
	}
	assert.Equal(t, "┌──────┐", lines[0])
	assert.Equal(t, "│ 每周 │", lines[1])
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "提前...", Truncate("提前1,3,7天", 7))
	assert.Equal(t, "short", Truncate("short", 10))
}

func TestOKAndFailWriters(t *testing.T) {
	var out, errOut bytes.Buffer
	prevOut, prevErr := Stdout, Stderr
	Stdout, Stderr = &out, &errOut
	defer func() { Stdout, Stderr = prevOut, prevErr }()
	SetColorMode(ColorNever)
	defer SetColorMode(ColorAuto)
	SetTheme("classic")

	OK("loaded")
	Fail("boom")

	assert.Equal(t, "✔ loaded\n", out.String())
	assert.Equal(t, "✖ boom\n", errOut.String())
}

func TestMonoThemeDisablesColor(t *testing.T) {
	SetTheme("mono")
	defer func() {
		SetColorMode(ColorAuto)
		SetTheme("classic")
	}()
	assert.False(t, useColor())
	assert.Equal(t, "+", Current().Border.TopLeft)
}
