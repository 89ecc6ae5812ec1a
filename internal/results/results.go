// Package results renders live search results grouped by category.
package results

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/ryan-rushton/omni/internal/catalog"
	"github.com/ryan-rushton/omni/internal/group"
	"github.com/ryan-rushton/omni/internal/messages"
	"github.com/ryan-rushton/omni/internal/pager"
	"github.com/ryan-rushton/omni/internal/search"
	"github.com/ryan-rushton/omni/internal/styles"
)

const chrome = 14

// Model is the results list for one query.
type Model struct {
	query   string
	buckets []group.Bucket[catalog.Category]
	tools   []catalog.Tool
	recent  []string
	cursor  int
	height  int
}

// New builds the view for tools, which must already be the matches for query
// in catalog order.
func New(query string, tools []catalog.Tool, recent []string) Model {
	buckets := group.ByCategory(tools)
	return Model{
		query:   query,
		buckets: buckets,
		tools:   group.Flatten(buckets),
		recent:  recent,
	}
}

// WithHeight sets the terminal height used for paging.
func (m Model) WithHeight(h int) Model {
	m.height = h
	return m
}

// Len is the number of matching tools.
func (m Model) Len() int {
	return len(m.tools)
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
		case "esc":
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

func (m Model) mark(s string) string {
	return search.Highlight(s, m.query, styles.Mark)
}

func (m Model) View() string {
	content := styles.Title.Render("Search Results") + "\n"
	content += styles.Subtitle.Render(fmt.Sprintf("Found %d matching tools for %q", len(m.tools), m.query)) + "\n"

	if len(m.recent) > 0 {
		chips := make([]string, len(m.recent))
		for i, r := range m.recent {
			chips[i] = styles.Chip.Render(r)
		}
		content += lipgloss.JoinHorizontal(lipgloss.Center, chips...) + "\n"
	}
	content += "\n"

	if len(m.tools) == 0 {
		content += styles.Section.Render("No tools matched your query") + "\n"
		content += styles.Dimmed.Render("Try broadening your terms, or press esc to browse categories.") + "\n"
		return styles.Box.Render(content)
	}

	var lines []string
	cursorLine := 0
	i := 0
	for _, b := range m.buckets {
		lines = append(lines, styles.Section.Render(b.Key.Label())+"  "+
			styles.Count.Render(fmt.Sprintf("%d tools", len(b.Tools))))
		for _, t := range b.Tools {
			cursor := "  "
			if i == m.cursor {
				cursor = styles.Selected.Render("> ")
				cursorLine = len(lines)
			}
			lines = append(lines, fmt.Sprintf("%s%s  %s",
				cursor, m.mark(t.Name), styles.Dimmed.Render(m.mark(t.Description))))
			i++
		}
	}

	visible := 0
	if m.height > 0 {
		visible = max(3, m.height-chrome)
	}
	start, end := pager.Window(cursorLine, len(lines), visible)
	content += strings.Join(lines[start:end], "\n") + "\n"

	content += "\n" + styles.Help.Render("↑↓/jk navigate  enter open  / edit query  esc clear")
	return styles.Box.Render(content)
}
