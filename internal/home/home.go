package home

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/ryan-rushton/omni/internal/catalog"
	"github.com/ryan-rushton/omni/internal/messages"
	"github.com/ryan-rushton/omni/internal/pager"
	"github.com/ryan-rushton/omni/internal/styles"
)

// chrome is the number of rows taken by everything except the list.
const chrome = 10

type entry struct {
	category catalog.Category
	count    int
}

// Model is the home screen: one row per category.
type Model struct {
	entries []entry
	total   int
	version string
	cursor  int
	height  int
}

func New(c *catalog.Catalog, version string) Model {
	m := Model{version: version, total: c.Len()}
	for _, cat := range catalog.Categories() {
		m.entries = append(m.entries, entry{category: cat, count: c.Count(cat)})
	}
	return m
}

// Select moves the cursor to a category, used when returning from it.
func (m Model) Select(c catalog.Category) Model {
	for i, e := range m.entries {
		if e.category == c {
			m.cursor = i
		}
	}
	return m
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.height = msg.Height
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(m.entries)-1 {
				m.cursor++
			}
		case "home", "g":
			m.cursor = 0
		case "end", "G":
			m.cursor = len(m.entries) - 1
		case "enter", " ":
			selected := m.entries[m.cursor].category
			return m, func() tea.Msg {
				return messages.CategorySelectedMsg{Category: selected}
			}
		}
	}
	return m, nil
}

func (m Model) View() string {
	content := styles.Title.Render("omni") + "  " + styles.Dimmed.Render(m.version) + "\n"
	content += styles.Subtitle.Render(fmt.Sprintf("%d tools in %d categories", m.total, len(m.entries))) + "\n\n"

	visible := 0
	if m.height > 0 {
		visible = max(3, m.height-chrome)
	}
	start, end := pager.Window(m.cursor, len(m.entries), visible)

	for i := start; i < end; i++ {
		e := m.entries[i]
		cursor := "  "
		nameStyle := lipgloss.NewStyle()
		slugStyle := styles.Dimmed

		if i == m.cursor {
			cursor = styles.Selected.Render("> ")
			nameStyle = styles.Selected
			slugStyle = styles.Subtitle
		}

		content += fmt.Sprintf("%s%-24s %s %s\n",
			cursor,
			nameStyle.Render(e.category.Label()),
			styles.Count.Render(fmt.Sprintf("%3d", e.count)),
			slugStyle.Render("#"+e.category.Slug()),
		)
	}

	content += "\n" + styles.Help.Render("↑↓/jk navigate  enter open  / search  q quit")

	return styles.Box.Render(content)
}
