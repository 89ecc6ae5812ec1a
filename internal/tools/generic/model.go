// Package generic renders a tool as a detail card. It is the fallback for
// every tool without a dedicated widget.
package generic

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"

	"github.com/ryan-rushton/omni/internal/catalog"
	"github.com/ryan-rushton/omni/internal/group"
	"github.com/ryan-rushton/omni/internal/messages"
	"github.com/ryan-rushton/omni/internal/registry"
	"github.com/ryan-rushton/omni/internal/styles"
)

func init() {
	registry.Register(registry.Renderer{
		Key:         catalog.DefaultRenderer,
		Description: "Tool detail card",
		New:         func(t catalog.Tool) tea.Model { return New(t) },
	})
}

const wrapWidth = 64

// glamourStyle is the standard glamour style used for the card body.
var glamourStyle = "dark"

// Model is the detail card for one tool.
type Model struct {
	tool catalog.Tool
	body string
}

func New(t catalog.Tool) Model {
	return Model{tool: t, body: renderBody(t)}
}

// markdown is the card body before rendering.
func markdown(t catalog.Tool) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", t.Name)
	fmt.Fprintf(&b, "%s\n\n", t.Description)
	fmt.Fprintf(&b, "- **Category:** %s\n", t.Category.Label())
	fmt.Fprintf(&b, "- **Section:** %s\n", group.SubCategoryLabel(t))
	fmt.Fprintf(&b, "- **Link:** `#%s`\n", t.ID)
	return b.String()
}

func renderBody(t catalog.Tool) string {
	md := markdown(t)
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(glamourStyle),
		glamour.WithWordWrap(wrapWidth),
	)
	if err != nil {
		return md
	}
	out, err := r.Render(md)
	if err != nil {
		return md
	}
	return strings.TrimSpace(out)
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "q", "esc", "backspace":
			return m, func() tea.Msg { return messages.BackMsg{} }
		}
	}
	return m, nil
}

func (m Model) View() string {
	content := m.body + "\n\n"
	content += styles.Help.Render("esc/q back")
	return styles.Box.Render(content)
}
