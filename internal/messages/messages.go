package messages

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ryan-rushton/omni/internal/catalog"
)

// BackMsg is sent by a view when it wants to go up one level.
type BackMsg struct{}

// HomeMsg asks the controller to navigate to the home screen.
type HomeMsg struct{}

// CategorySelectedMsg is sent when a category is chosen.
type CategorySelectedMsg struct {
	Category catalog.Category
}

// ToolSelectedMsg is sent when a tool is chosen from any list.
type ToolSelectedMsg struct {
	ID string
}

// LocationChangedMsg reports that the location port changed. Token is the
// value at notification time and may already be superseded.
type LocationChangedMsg struct {
	Token string
}

// UpdateAvailableMsg is sent when a background check finds a newer release.
type UpdateAvailableMsg struct {
	Tag string
}

// standalone wraps a tool model so that leaving the tool quits the program.
// Used when a tool is launched directly via CLI.
type standalone struct {
	inner tea.Model
}

// Standalone wraps a model for direct CLI invocation.
func Standalone(m tea.Model) tea.Model {
	return standalone{inner: m}
}

func (s standalone) Init() tea.Cmd {
	return s.inner.Init()
}

func (s standalone) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok && key.String() == "ctrl+c" {
		return s, tea.Quit
	}
	switch msg.(type) {
	case BackMsg, HomeMsg:
		return s, tea.Quit
	}
	m, cmd := s.inner.Update(msg)
	s.inner = m
	return s, cmd
}

func (s standalone) View() string {
	return s.inner.View()
}
