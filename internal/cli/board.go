package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/idilsaglam/reminders/internal/format"
	"github.com/idilsaglam/reminders/internal/model"
	"github.com/idilsaglam/reminders/internal/toast"
	"github.com/idilsaglam/reminders/internal/ui"
)

var (
	selectedStyle = lipgloss.NewStyle().Bold(true).Reverse(true)
	endedStyle    = lipgloss.NewStyle().Faint(true).Strikethrough(true)
	detailStyle   = lipgloss.NewStyle().Faint(true)
	frameStyle    = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("8")).
			Padding(0, 1)
)

// listItem adapts a Reminder to bubbles/list.Item
type listItem struct {
	Reminder model.Reminder
	Alive    bool
}

func (i listItem) Title() string       { return i.Reminder.Name }
func (i listItem) Description() string { return strings.Join(format.Row(i.Reminder), " · ") }
func (i listItem) FilterValue() string { return i.Reminder.Name }

// single-line rows; the selected reminder's labels show in the footer
type itemDelegate struct{}

func (d itemDelegate) Height() int                               { return 1 }
func (d itemDelegate) Spacing() int                              { return 0 }
func (d itemDelegate) Update(msg tea.Msg, m *list.Model) tea.Cmd { return nil }
func (d itemDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	it, _ := item.(listItem)
	t := ui.Current()

	sym := t.Pending.Render(t.SymAlive)
	name := it.Reminder.Name
	if !it.Alive {
		sym = t.Success.Render(t.SymEnded)
		name = endedStyle.Render(name)
	}
	progress := format.Progress(it.Reminder.CurrentDoneTimes, it.Reminder.RepeatTimes)

	prefix := "  "
	if index == m.Index() {
		prefix = selectedStyle.Render("> ")
	}
	fmt.Fprintf(w, "%s%s %s %s\n", prefix, sym, name, detailStyle.Render("("+progress+")"))
}

var (
	nextKey    = key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "next"))
	dismissKey = key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "dismiss"))
	quitKey    = key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit"))
)

type boardModel struct {
	app     *App
	list    list.Model
	toasts  toast.Stack
	loadErr error
}

func newBoard(app *App, items []model.Reminder, loadErr error) boardModel {
	li := make([]list.Item, 0, len(items))
	for _, r := range items {
		li = append(li, listItem{Reminder: r, Alive: app.Alive(r)})
	}

	l := list.New(li, itemDelegate{}, 0, 0)
	a, e := stats(app, items)
	t := ui.Current()
	l.Title = fmt.Sprintf("%s   %s %d  %s %d  %s %d",
		t.Title.Render("Reminders"),
		t.Pending.Render(t.SymAlive), a,
		t.Success.Render(t.SymEnded), e,
		t.Accent.Render("Total"), len(items),
	)
	l.Styles.Title = t.Title
	l.Styles.HelpStyle = detailStyle
	l.Styles.PaginationStyle = detailStyle
	l.FilterInput.Prompt = "/ "
	l.SetStatusBarItemName("reminder", "reminders")
	l.SetFilteringEnabled(true)
	l.AdditionalShortHelpKeys = func() []key.Binding { return []key.Binding{nextKey, dismissKey} }
	l.AdditionalFullHelpKeys = func() []key.Binding { return []key.Binding{nextKey, dismissKey, quitKey} }

	return boardModel{app: app, list: l, toasts: toast.New(), loadErr: loadErr}
}

func runBoard(app *App) error {
	items, err := app.Load()
	p := tea.NewProgram(newBoard(app, items, err), tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, runErr := p.Run()
	return runErr
}

func (m boardModel) Init() tea.Cmd {
	if m.loadErr != nil {
		return toast.Notify(toast.Danger, m.loadErr.Error())
	}
	return toast.Notify(toast.Info, fmt.Sprintf("loaded %d reminders", len(m.list.Items())))
}

func (m boardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	var cmd tea.Cmd
	m.toasts, cmd = m.toasts.Update(msg)
	cmds = append(cmds, cmd)

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.list.SetSize(msg.Width-4, msg.Height-4)
	case tea.KeyMsg:
		if m.list.FilterState() == list.Filtering {
			break
		}
		switch {
		case key.Matches(msg, quitKey):
			return m, tea.Quit
		case key.Matches(msg, dismissKey):
			cmds = append(cmds, m.toasts.DismissNewest())
			return m, tea.Batch(cmds...)
		case key.Matches(msg, nextKey):
			cmds = append(cmds, m.announce())
			return m, tea.Batch(cmds...)
		}
	}

	m.list, cmd = m.list.Update(msg)
	cmds = append(cmds, cmd)
	return m, tea.Batch(cmds...)
}

// announce reports the selected reminder's next occurrence as a toast.
func (m *boardModel) announce() tea.Cmd {
	it, ok := m.list.SelectedItem().(listItem)
	if !ok {
		return m.toasts.Show("nothing selected", toast.Warning)
	}
	r := it.Reminder
	if !it.Alive {
		return m.toasts.Show(r.Name+" has ended", toast.Warning)
	}
	next := nextText(m.app, r)
	if next == format.NoneLabel {
		return m.toasts.Show(r.Name+": no further occurrences", toast.Info)
	}
	return m.toasts.Show(r.Name+" next: "+next, toast.Success)
}

func (m boardModel) View() string {
	content := m.list.View()
	if it, ok := m.list.SelectedItem().(listItem); ok {
		content += "\n" + detailStyle.Render(it.Description())
	}
	return m.toasts.Overlay(frameStyle.Render(content))
}
