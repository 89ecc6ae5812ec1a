// Package browse is the category view: every tool in one category, grouped
// by sub-category.
package browse

import (
	"fmt"
	"slices"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/ryan-rushton/omni/internal/catalog"
	"github.com/ryan-rushton/omni/internal/group"
	"github.com/ryan-rushton/omni/internal/messages"
	"github.com/ryan-rushton/omni/internal/pager"
	"github.com/ryan-rushton/omni/internal/styles"
)

const chrome = 10

// Model lists one category.
type Model struct {
	category catalog.Category
	buckets  []group.Bucket[string]
	tools    []catalog.Tool
	cursor   int
	height   int
}

func New(c *catalog.Catalog, cat catalog.Category) Model {
	buckets := group.BySubCategory(slices.Collect(c.FindByCategory(cat)))
	return Model{
		category: cat,
		buckets:  buckets,
		tools:    group.Flatten(buckets),
	}
}

// Category is the category being browsed.
func (m Model) Category() catalog.Category {
	return m.category
}

// Select moves the cursor to the tool with the given id, if listed.
func (m Model) Select(id string) Model {
	if i := slices.IndexFunc(m.tools, func(t catalog.Tool) bool { return t.ID == id }); i >= 0 {
		m.cursor = i
	}
	return m
}

// Selected returns the tool under the cursor.
func (m Model) Selected() (catalog.Tool, bool) {
	if len(m.tools) == 0 {
		return catalog.Tool{}, false
	}
	return m.tools[m.cursor], true
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
		case "ctrl+c":
			return m, tea.Quit
		case "esc", "q", "backspace":
			return m, func() tea.Msg { return messages.BackMsg{} }
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(m.tools)-1 {
				m.cursor++
			}
		case "home", "g":
			m.cursor = 0
		case "end", "G":
			m.cursor = max(0, len(m.tools)-1)
		case "enter", " ":
			t, ok := m.Selected()
			if !ok {
				return m, nil
			}
			return m, func() tea.Msg { return messages.ToolSelectedMsg{ID: t.ID} }
		}
	}
	return m, nil
}

func (m Model) View() string {
	content := styles.Title.Render(m.category.Label()) + "  " +
		styles.Count.Render(fmt.Sprintf("%d tools", len(m.tools))) + "\n\n"

	if len(m.tools) == 0 {
		content += styles.Dimmed.Render("No tools in this category") + "\n"
	}

	var lines []string
	cursorLine := 0
	i := 0
	for _, b := range m.buckets {
		lines = append(lines, styles.Section.Render(b.Key))
		for _, t := range b.Tools {
			cursor := "  "
			nameStyle := lipgloss.NewStyle()
			if i == m.cursor {
				cursor = styles.Selected.Render("> ")
				nameStyle = styles.Selected
				cursorLine = len(lines)
			}
			lines = append(lines, fmt.Sprintf("%s%s  %s",
				cursor, nameStyle.Render(t.Name), styles.Dimmed.Render(t.Description)))
			i++
		}
	}

	visible := 0
	if m.height > 0 {
		visible = max(3, m.height-chrome)
	}
	start, end := pager.Window(cursorLine, len(lines), visible)
	if len(lines) > 0 {
		content += strings.Join(lines[start:end], "\n") + "\n"
	}

	content += "\n" + styles.Help.Render("↑↓/jk navigate  enter open  / search  esc back")
	return styles.Box.Render(content)
}
