// Package tui is the terminal presentation layer: a Bubble Tea program over
// the list controller. All list state lives in the controller; the TUI only
// renders it and translates key presses into controller intents.
package tui

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/dmitrijs2005/todolist/internal/client/controller"
	"github.com/dmitrijs2005/todolist/internal/client/models"
	"github.com/dmitrijs2005/todolist/internal/client/services"
)

type screen int

const (
	screenLogin screen = iota
	screenList
)

// listItem adapts models.Todo to bubbles/list.Item.
type listItem struct {
	todo models.Todo
}

func (i listItem) Title() string       { return i.todo.TodoName }
func (i listItem) Description() string { return "" }
func (i listItem) FilterValue() string { return i.todo.TodoName }

// itemDelegate renders one todo per line: checkbox, name, status badge.
type itemDelegate struct{}

func (d itemDelegate) Height() int                               { return 1 }
func (d itemDelegate) Spacing() int                              { return 0 }
func (d itemDelegate) Update(msg tea.Msg, m *list.Model) tea.Cmd { return nil }
func (d itemDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	it, ok := item.(listItem)
	if !ok {
		return
	}

	box := mutedStyle.Render(boxUnchecked)
	text := it.todo.TodoName
	badge := pendingStyle.Render("pending")
	if it.todo.Done() {
		box = successStyle.Render(boxChecked)
		text = doneStyle.Render(text)
		badge = successStyle.Render("done")
	}

	prefix := "  "
	if index == m.Index() {
		prefix = selectedStyle.Render("> ")
	}

	fmt.Fprintf(w, "%s%s %s  %s\n", prefix, box, text, badge)
}

// Messages produced by controller commands.
type (
	loggedInMsg     struct{}
	listReloadedMsg struct{}
	opFailedMsg     struct{ err error }
)

type Model struct {
	ctrl *controller.Controller
	auth *services.AuthService

	screen  screen
	list    list.Model
	input   textinput.Model
	adding  bool
	editing bool
	edited  models.Todo
	errText string
	busy    bool
}

func New(ctrl *controller.Controller, auth *services.AuthService) Model {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = "email"
	ti.CharLimit = 200
	ti.Focus()

	l := list.New(nil, itemDelegate{}, 0, 0)
	l.Title = titleStyle.Render("Todos")
	l.SetShowHelp(false)
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.SetStatusBarItemName("item", "items")

	return Model{
		ctrl:   ctrl,
		auth:   auth,
		screen: screenLogin,
		list:   l,
		input:  ti,
	}
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// --- commands ---

func (m Model) loginCmd(username string) tea.Cmd {
	return func() tea.Msg {
		if err := m.auth.Login(context.Background(), username); err != nil {
			return opFailedMsg{err}
		}
		if err := m.ctrl.Start(context.Background()); err != nil {
			return opFailedMsg{err}
		}
		return loggedInMsg{}
	}
}

func (m Model) refreshCmd() tea.Cmd {
	return func() tea.Msg {
		if err := m.ctrl.Refresh(context.Background()); err != nil {
			return opFailedMsg{err}
		}
		return listReloadedMsg{}
	}
}

func (m Model) createCmd(name string) tea.Cmd {
	return func() tea.Msg {
		if err := m.ctrl.Create(context.Background(), name); err != nil {
			return opFailedMsg{err}
		}
		return listReloadedMsg{}
	}
}

func (m Model) toggleCmd(item models.Todo) tea.Cmd {
	return func() tea.Msg {
		if err := m.ctrl.Toggle(context.Background(), item, !item.Done()); err != nil {
			return opFailedMsg{err}
		}
		return listReloadedMsg{}
	}
}

func (m Model) renameCmd(item models.Todo, name string) tea.Cmd {
	return func() tea.Msg {
		if err := m.ctrl.Rename(context.Background(), item, name); err != nil {
			return opFailedMsg{err}
		}
		return listReloadedMsg{}
	}
}

func (m Model) removeCmd(item models.Todo) tea.Cmd {
	return func() tea.Msg {
		if err := m.ctrl.Remove(context.Background(), item); err != nil {
			return opFailedMsg{err}
		}
		return listReloadedMsg{}
	}
}

// --- update ---

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.list.SetSize(msg.Width, msg.Height-4)
		return m, nil
	case loggedInMsg:
		m.busy = false
		m.errText = ""
		m.screen = screenList
		m.input.Blur()
		m.input.SetValue("")
		m.syncList()
		return m, nil
	case listReloadedMsg:
		m.busy = false
		m.errText = ""
		m.syncList()
		return m, nil
	case opFailedMsg:
		m.busy = false
		m.errText = msg.err.Error()
		return m, nil
	case tea.KeyMsg:
		if m.screen == screenLogin {
			return m.updateLogin(msg)
		}
		return m.updateList(msg)
	}

	return m.updateFocused(msg)
}

func (m Model) updateLogin(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "esc":
		return m, tea.Quit
	case "enter":
		username := strings.TrimSpace(m.input.Value())
		if username == "" || m.busy {
			return m, nil
		}
		m.busy = true
		return m, m.loginCmd(username)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// an inline add/edit input swallows the keys first
	if m.adding || m.editing {
		switch msg.String() {
		case "esc":
			m.adding, m.editing = false, false
			m.input.Blur()
			m.input.SetValue("")
			return m, nil
		case "enter":
			name := strings.TrimSpace(m.input.Value())
			if name == "" {
				return m, nil
			}
			adding := m.adding
			item := m.edited
			m.adding, m.editing = false, false
			m.input.Blur()
			m.input.SetValue("")
			m.busy = true
			if adding {
				return m, m.createCmd(name)
			}
			return m, m.renameCmd(item, name)
		}
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}

	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit
	case "a":
		m.adding = true
		m.input.Placeholder = "new todo"
		m.input.Focus()
		return m, textinput.Blink
	case "e":
		item, ok := m.selected()
		if !ok {
			return m, nil
		}
		m.editing = true
		m.edited = item
		m.input.Placeholder = "new name"
		m.input.SetValue(item.TodoName)
		m.input.Focus()
		return m, textinput.Blink
	case " ", "enter":
		item, ok := m.selected()
		if !ok || m.busy {
			return m, nil
		}
		m.busy = true
		return m, m.toggleCmd(item)
	case "d":
		item, ok := m.selected()
		if !ok || m.busy {
			return m, nil
		}
		m.busy = true
		return m, m.removeCmd(item)
	case "r":
		if m.busy {
			return m, nil
		}
		m.busy = true
		return m, m.refreshCmd()
	case "ctrl+l":
		m.auth.Logout()
		m.screen = screenLogin
		m.input.Placeholder = "email"
		m.input.SetValue("")
		m.input.Focus()
		return m, textinput.Blink
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) updateFocused(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	var cmd tea.Cmd

	m.input, cmd = m.input.Update(msg)
	cmds = append(cmds, cmd)

	if m.screen == screenList {
		m.list, cmd = m.list.Update(msg)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

func (m *Model) syncList() {
	todos := m.ctrl.List()
	items := make([]list.Item, 0, len(todos))
	for _, t := range todos {
		items = append(items, listItem{todo: t})
	}
	m.list.SetItems(items)
}

func (m Model) selected() (models.Todo, bool) {
	it, ok := m.list.SelectedItem().(listItem)
	if !ok {
		return models.Todo{}, false
	}
	return it.todo, true
}

// --- view ---

func (m Model) View() string {
	if m.screen == screenLogin {
		var b strings.Builder
		b.WriteString(titleStyle.Render("todolist — sign in") + "\n\n")
		b.WriteString("email:\n")
		b.WriteString(m.input.View() + "\n\n")
		if m.errText != "" {
			b.WriteString(errorStyle.Render(m.errText) + "\n")
		}
		b.WriteString(helpStyle.Render("enter sign in · esc quit"))
		return b.String()
	}

	var b strings.Builder
	b.WriteString(m.list.View())
	b.WriteString("\n")
	if m.adding || m.editing {
		b.WriteString(m.input.View() + "\n")
	}
	if m.errText != "" {
		b.WriteString(errorStyle.Render(m.errText) + "\n")
	}
	b.WriteString(helpStyle.Render("space toggle · a add · e edit · d delete · r refresh · ctrl+l logout · q quit"))
	return b.String()
}
