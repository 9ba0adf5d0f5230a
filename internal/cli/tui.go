package cli

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/alexanderramin/todo/internal/cli/formatter"
	"github.com/alexanderramin/todo/internal/domain"
	"github.com/alexanderramin/todo/internal/service"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// tuiItem adapts a domain.Item to bubbles/list.Item.
type tuiItem struct {
	item domain.Item
}

func (i tuiItem) Title() string       { return formatter.FormatItemLine(i.item) }
func (i tuiItem) Description() string { return "" }
func (i tuiItem) FilterValue() string { return i.item.Title }

// itemDelegate renders each item on a single line.
type itemDelegate struct{}

func (d itemDelegate) Height() int                               { return 1 }
func (d itemDelegate) Spacing() int                              { return 0 }
func (d itemDelegate) Update(msg tea.Msg, m *list.Model) tea.Cmd { return nil }
func (d itemDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	it, ok := item.(tuiItem)
	if !ok {
		return
	}
	prefix := "  "
	if index == m.Index() {
		prefix = formatter.StyleHeader.Render("> ")
	}
	fmt.Fprintln(w, prefix+it.Title())
}

// listTUI is the interactive browser over the same TodoList service the
// plain commands use; every mutation persists as it happens.
type listTUI struct {
	ctx   context.Context
	svc   *service.TodoList
	list  list.Model
	input textinput.Model

	adding bool
	err    error
}

func newListTUI(ctx context.Context, svc *service.TodoList) listTUI {
	// Sized up front so selection works before the first WindowSizeMsg.
	l := list.New(tuiItems(svc), itemDelegate{}, 80, 24)
	l.Title = "Todos"
	l.Styles.Title = formatter.StyleHeader
	l.SetShowHelp(true)
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(true)
	l.SetStatusBarItemName("item", "items")

	completeBind := key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "complete"))
	addBind := key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add"))
	deleteBind := key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "delete"))
	extra := func() []key.Binding { return []key.Binding{completeBind, addBind, deleteBind} }
	l.AdditionalShortHelpKeys = extra
	l.AdditionalFullHelpKeys = extra

	input := textinput.New()
	input.Prompt = "> "
	input.Placeholder = "New item title..."
	input.CharLimit = 200

	return listTUI{ctx: ctx, svc: svc, list: l, input: input}
}

// tuiItems reads the current state from the service, completed included.
func tuiItems(svc *service.TodoList) []list.Item {
	items := svc.Items(true)
	out := make([]list.Item, 0, len(items))
	for _, it := range items {
		out = append(out, tuiItem{item: it})
	}
	return out
}

func runListTUI(ctx context.Context, svc *service.TodoList) error {
	p := tea.NewProgram(newListTUI(ctx, svc), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func (m listTUI) Init() tea.Cmd { return nil }

func (m listTUI) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.adding {
		return m.updateAdding(msg)
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.list.SetSize(msg.Width-2, msg.Height-4)
		return m, nil

	case tea.KeyMsg:
		if m.list.FilterState() == list.Filtering {
			break
		}
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		case " ":
			if it, ok := m.selected(); ok {
				// Completion is one-way; pressing space on a completed
				// item is a no-op by design of the data model.
				_, err := m.svc.Complete(m.ctx, it.ID)
				m.err = err
				m.reload()
			}
			return m, nil
		case "d":
			if it, ok := m.selected(); ok {
				_, err := m.svc.Remove(m.ctx, it.ID)
				m.err = err
				m.reload()
			}
			return m, nil
		case "a":
			m.adding = true
			m.input.SetValue("")
			m.input.Focus()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m listTUI) updateAdding(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "enter":
			title := strings.TrimSpace(m.input.Value())
			if title == "" {
				return m, nil
			}
			_, err := m.svc.Add(m.ctx, title, "", nil, domain.DefaultPriority)
			m.err = err
			m.adding = false
			m.input.Blur()
			m.reload()
			return m, nil
		case "esc":
			m.adding = false
			m.input.Blur()
			return m, nil
		}
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *listTUI) selected() (domain.Item, bool) {
	if it, ok := m.list.SelectedItem().(tuiItem); ok {
		return it.item, true
	}
	return domain.Item{}, false
}

func (m *listTUI) reload() {
	m.list.SetItems(tuiItems(m.svc))
}

func (m listTUI) View() string {
	view := m.list.View()
	if m.adding {
		view += "\n" + formatter.Bold("Add new item") + "\n" + m.input.View()
	}
	if m.err != nil {
		view += "\n" + formatter.StyleRed.Render("error: "+m.err.Error())
	}
	return view
}
