package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"

	"github.com/idilsaglam/reminders/internal/format"
	"github.com/idilsaglam/reminders/internal/model"
	"github.com/idilsaglam/reminders/internal/recurrence"
	"github.com/idilsaglam/reminders/internal/timeparse"
	"github.com/idilsaglam/reminders/internal/ui"
)

const (
	nameWidth   = 20
	timeWidth   = 16
	repeatWidth = 8
	advWidth    = 12
)

func newListCmd() *cobra.Command {
	var group bool
	cmd := &cobra.Command{
		Use:     "ls",
		Aliases: []string{"list"},
		Short:   "List reminders in a panel",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := initApp(cmd)
			if err != nil {
				return err
			}
			items, err := app.Load()
			if err != nil {
				return err
			}
			ui.Panel(listLines(app, items, group))
			return nil
		},
	}
	cmd.Flags().BoolVar(&group, "group", false, "Group output by active/ended")
	return cmd
}

func newShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <index>",
		Short: "Show every label of one reminder (1-based index)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("show: not a number: %s", args[0])
			}
			app, err := initApp(cmd)
			if err != nil {
				return err
			}
			items, err := app.Load()
			if err != nil {
				return err
			}
			if n < 1 || n > len(items) {
				return fmt.Errorf("index out of range: have %d, got %d", len(items), n)
			}
			ui.Panel(detailLines(app, items[n-1]))
			return nil
		},
	}
}

func newFmtTimeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "fmt-time <datetime>",
		Short: "Trim a stored datetime to yyyy-MM-dd HH:mm",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(ui.Stdout, format.FormatDateTime(args[0]))
			return nil
		},
	}
}

// -------------- rendering helpers --------------

func stats(app *App, items []model.Reminder) (alive, ended int) {
	for _, r := range items {
		if app.Alive(r) {
			alive++
		} else {
			ended++
		}
	}
	return
}

func listLines(app *App, items []model.Reminder, group bool) []string {
	t := ui.Current()
	a, e := stats(app, items)
	header := fmt.Sprintf("%s  %s %d  %s %d  %s %d",
		ui.C(t.Title, "Reminders"),
		ui.C(t.Pending, t.SymAlive), a,
		ui.C(t.Success, t.SymEnded), e,
		ui.C(t.Accent, "Total"), len(items),
	)

	lines := []string{
		header,
		ui.C(t.Muted, "at "+app.At.Format("2006-01-02 15:04")+"  "+ui.ProgressBar(e, a+e, 28)),
		"",
	}
	if group {
		lines = append(lines, groupLines(app, items)...)
	} else {
		lines = append(lines, flatLines(app, items, 0)...)
	}
	lines = append(lines, "")
	lines = append(lines, ui.C(t.Muted, "Tip: `reminders show <index>` for details"))
	return lines
}

func flatLines(app *App, items []model.Reminder, offset int) []string {
	t := ui.Current()
	if len(items) == 0 {
		return []string{ui.C(t.Muted, "no reminders")}
	}
	out := make([]string, 0, len(items))
	for i, r := range items {
		sym, style := t.SymAlive, t.Pending
		if !app.Alive(r) {
			sym, style = t.SymEnded, t.Success
		}
		row := format.Row(r)
		out = append(out, fmt.Sprintf("%s %s %s  %s  %s  %s  %s  %s",
			ui.C(t.Muted, fmt.Sprintf("%2d.", offset+i+1)),
			ui.C(style, sym),
			column(r.Name, nameWidth),
			column(row[0], timeWidth),
			ui.C(t.Accent, column(row[1], 5)),
			column(row[2], repeatWidth),
			column(row[3], advWidth),
			ui.C(t.Muted, row[4]),
		))
	}
	return out
}

func groupLines(app *App, items []model.Reminder) []string {
	t := ui.Current()
	var active, ended []model.Reminder
	for _, r := range items {
		if app.Alive(r) {
			active = append(active, r)
		} else {
			ended = append(ended, r)
		}
	}
	var lines []string
	lines = append(lines, ui.C(t.Accent, "Active"))
	if len(active) == 0 {
		lines = append(lines, ui.C(t.Muted, "(none)"))
	} else {
		lines = append(lines, flatLines(app, active, 0)...)
	}
	lines = append(lines, "")
	lines = append(lines, ui.C(t.Accent, "Ended"))
	if len(ended) == 0 {
		lines = append(lines, ui.C(t.Muted, "(none)"))
	} else {
		lines = append(lines, flatLines(app, ended, len(active))...)
	}
	return lines
}

func detailLines(app *App, r model.Reminder) []string {
	t := ui.Current()
	row := format.Row(r)
	state := "active"
	if !app.Alive(r) {
		state = "ended"
	}
	lines := []string{
		ui.C(t.Title, r.Name) + "  " + ui.C(t.Muted, state),
	}
	if msg := strings.TrimSpace(r.Message); msg != "" {
		lines = append(lines, msg)
	}
	lines = append(lines,
		"",
		field("start", format.FormatDateTime(r.StartDatetime)),
		field("due", row[0]),
		field("progress", row[1]),
		field("repeat", row[2]),
		field("advance", row[3]),
		field("status", row[4]),
		field("previous", previousText(app, r)),
		field("next", nextText(app, r)),
		field("upcoming", upcomingText(app, r, 3)),
	)
	return lines
}

func field(label, value string) string {
	t := ui.Current()
	if value == "" {
		value = format.NoStatusLabel
	}
	return ui.C(t.Muted, runewidth.FillRight(label, 9)) + value
}

// nextText describes the occurrence after the current one.
func nextText(app *App, r model.Reminder) string {
	due := app.Due(r)
	if due.IsZero() || !r.HasNext(app.At, due) {
		return format.NoneLabel
	}
	next, ok, err := recurrence.Next(r.Repeat(), due)
	if err != nil || !ok {
		return format.NoneLabel
	}
	return next.Format("2006-01-02 15:04")
}

func previousText(app *App, r model.Reminder) string {
	due := app.Due(r)
	start, err := timeparse.ParseStored(r.StartDatetime, app.Location)
	if due.IsZero() || err != nil || start.IsZero() {
		return format.NoneLabel
	}
	prev, ok, err := recurrence.Previous(r.Repeat(), due, start)
	if err != nil || !ok {
		return format.NoneLabel
	}
	return prev.Format("2006-01-02 15:04")
}

func upcomingText(app *App, r model.Reminder, n int) string {
	due := app.Due(r)
	if due.IsZero() || !r.HasNext(app.At, due) {
		return format.NoneLabel
	}
	times, err := recurrence.Upcoming(r.Repeat(), due, n)
	if err != nil || len(times) == 0 {
		return format.NoneLabel
	}
	parts := make([]string, 0, len(times))
	for _, t := range times {
		parts = append(parts, t.Format("01-02"))
	}
	return strings.Join(parts, ", ")
}

// column truncates and pads s to exactly width cells.
func column(s string, width int) string {
	return runewidth.FillRight(ui.Truncate(s, width), width)
}
