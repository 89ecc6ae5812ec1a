package styles

import "github.com/charmbracelet/lipgloss"

var (
	Blue    = lipgloss.Color("#2563EB")
	Sky     = lipgloss.Color("#60A5FA")
	Gray    = lipgloss.Color("#8A8F98")
	DimGray = lipgloss.Color("#3D4250")
	Green   = lipgloss.Color("#39FF14")
	Red     = lipgloss.Color("#FF3131")
	White   = lipgloss.Color("#F8FAFC")

	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Sky)

	Subtitle = lipgloss.NewStyle().
			Foreground(Sky)

	Selected = lipgloss.NewStyle().
			Foreground(Blue).
			Bold(true)

	Dimmed = lipgloss.NewStyle().
		Foreground(DimGray)

	Success = lipgloss.NewStyle().
		Foreground(Green)

	Err = lipgloss.NewStyle().
		Foreground(Red)

	Help = lipgloss.NewStyle().
		Foreground(DimGray).
		Italic(true)

	// Section is the heading above a group of tools.
	Section = lipgloss.NewStyle().
		Foreground(White).
		Bold(true)

	Count = lipgloss.NewStyle().
		Foreground(Gray)

	// Match marks the part of a name that matched the search query.
	Match = lipgloss.NewStyle().
		Foreground(White).
		Background(Blue)

	Crumb = lipgloss.NewStyle().
		Foreground(Gray)

	CurrentCrumb = lipgloss.NewStyle().
			Foreground(White).
			Bold(true)

	Chip = lipgloss.NewStyle().
		Foreground(Gray).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(DimGray).
		Padding(0, 1)

	SearchBox = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(DimGray).
			Padding(0, 1)

	SearchBoxFocused = SearchBox.
				BorderForeground(Blue)

	Box = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Sky).
		Padding(1, 2)

	UpdateBanner = lipgloss.NewStyle().
			Foreground(Sky).
			Bold(true)
)

// Mark renders a search match inside highlighted text.
func Mark(s string) string {
	return Match.Render(s)
}
