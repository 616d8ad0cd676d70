package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
	listHeaderStyle   = lipgloss.NewStyle().Bold(true).Foreground(colorGray)
)

// =============================================================================
// Operations
// =============================================================================

// operation identifies one menu entry. The order matches the menu
// numbering, starting at 1.
type operation int

const (
	opNone operation = iota
	opListRepos
	opCreateRepo
	opDeleteRepo
	opUploadFile
	opDownloadFile
	opListWorkflows
	opTriggerWorkflow
	opCreateGist
	opListGists
	opUserInfo
	opListNotifications
	opMarkNotificationsRead
	opCreateIssue
	opListIssues
	opExit
)

type menuItem struct {
	op    operation
	label string
}

type menuSection struct {
	title string
	items []menuItem
}

var menuSections = []menuSection{
	{"Repository Operations", []menuItem{
		{opListRepos, "List repositories"},
		{opCreateRepo, "Create repository"},
		{opDeleteRepo, "Delete repository"},
		{opUploadFile, "Upload file to repository"},
		{opDownloadFile, "Download file from repository"},
	}},
	{"Workflow Operations", []menuItem{
		{opListWorkflows, "List workflows"},
		{opTriggerWorkflow, "Trigger workflow"},
	}},
	{"Gist Operations", []menuItem{
		{opCreateGist, "Create gist"},
		{opListGists, "List gists"},
	}},
	{"User Operations", []menuItem{
		{opUserInfo, "Get user info"},
	}},
	{"Notification Operations", []menuItem{
		{opListNotifications, "List notifications"},
		{opMarkNotificationsRead, "Mark all notifications as read"},
	}},
	{"Issue Operations", []menuItem{
		{opCreateIssue, "Create issue"},
		{opListIssues, "List issues"},
	}},
}

// =============================================================================
// MenuModel - Interactive operation selection
// =============================================================================

// menuModel is the bubbletea model for the main menu.
type menuModel struct {
	items  []menuItem
	cursor int
	choice operation
}

func newMenuModel() menuModel {
	var items []menuItem
	for _, sec := range menuSections {
		items = append(items, sec.items...)
	}
	return menuModel{items: items, choice: opNone}
}

func (m menuModel) Init() tea.Cmd {
	return nil
}

func (m menuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		key := msg.String()
		switch key {
		case "q", "ctrl+c", "esc", "0":
			m.choice = opExit
			return m, tea.Quit
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(m.items)-1 {
				m.cursor++
			}
		case "enter":
			m.choice = m.items[m.cursor].op
			return m, tea.Quit
		default:
			// Digits jump straight to the numbered entry.
			if len(key) == 1 && key[0] >= '1' && key[0] <= '9' {
				if n := int(key[0] - '0'); n <= len(m.items) {
					m.cursor = n - 1
				}
			}
		}
	}
	return m, nil
}

func (m menuModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("GitHub Automation Tool"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  ⏎ run  0 quit"))
	b.WriteString("\n")

	idx := 0
	for _, sec := range menuSections {
		b.WriteString("\n")
		b.WriteString(listHeaderStyle.Render(sec.title))
		b.WriteString("\n")
		for _, it := range sec.items {
			cursor := "  "
			if idx == m.cursor {
				cursor = "▸ "
			}
			line := fmt.Sprintf("%s%2d. %s", cursor, idx+1, it.label)
			if idx == m.cursor {
				b.WriteString(listSelectedStyle.Render(line))
			} else {
				b.WriteString(listNormalStyle.Render(line))
			}
			b.WriteString("\n")
			idx++
		}
	}

	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("   0. Exit"))
	b.WriteString("\n")

	return b.String()
}

// runMenu shows the menu and returns the chosen operation. Quitting the
// menu counts as choosing exit.
func runMenu() (operation, error) {
	p := tea.NewProgram(newMenuModel())
	finalModel, err := p.Run()
	if err != nil {
		return opNone, err
	}

	m, ok := finalModel.(menuModel)
	if !ok || m.choice == opNone {
		return opExit, nil
	}
	return m.choice, nil
}
