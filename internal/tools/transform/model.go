// Package transform is the shared shell for text-in, text-out tools: an input
// area and a live output pane recomputed on every keystroke.
package transform

import (
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ryan-rushton/omni/internal/catalog"
	"github.com/ryan-rushton/omni/internal/messages"
	"github.com/ryan-rushton/omni/internal/styles"
)

// Func turns the input text into the output text.
type Func func(string) string

const maxOutputLines = 12

var copyToClipboard = clipboard.WriteAll

// Model is a transform tool.
type Model struct {
	tool      catalog.Tool
	input     textarea.Model
	transform Func
	status    string
}

func New(t catalog.Tool, fn Func) Model {
	ta := textarea.New()
	ta.Placeholder = "Paste your text here..."
	ta.ShowLineNumbers = false
	ta.CharLimit = 0
	ta.SetWidth(60)
	ta.SetHeight(6)
	ta.Focus()

	return Model{tool: t, input: ta, transform: fn}
}

// SetInput replaces the input text.
func (m *Model) SetInput(s string) {
	m.input.SetValue(s)
}

// Output is the transform of the current input.
func (m Model) Output() string {
	return m.transform(m.input.Value())
}

func (m Model) Init() tea.Cmd {
	return textarea.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			return m, func() tea.Msg { return messages.BackMsg{} }
		case "ctrl+y":
			if err := copyToClipboard(m.Output()); err != nil {
				m.status = styles.Err.Render("copy failed: " + err.Error())
			} else {
				m.status = styles.Success.Render("✓ copied")
			}
			return m, nil
		case "ctrl+l":
			m.input.Reset()
			m.status = ""
			return m, nil
		}
		m.status = ""
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	content := styles.Title.Render(m.tool.Name) + "\n"
	content += styles.Dimmed.Render(m.tool.Description) + "\n\n"
	content += m.input.View() + "\n\n"
	content += styles.Subtitle.Render("Output") + "\n"

	out := m.Output()
	if out == "" {
		content += styles.Dimmed.Render("(empty)") + "\n"
	} else {
		lines := strings.Split(out, "\n")
		if len(lines) > maxOutputLines {
			lines = append(lines[:maxOutputLines], styles.Dimmed.Render("…"))
		}
		content += strings.Join(lines, "\n") + "\n"
	}

	if m.status != "" {
		content += "\n" + m.status
	}
	content += "\n" + styles.Help.Render("ctrl+y copy  ctrl+l clear  esc back")
	return styles.Box.Render(content)
}
