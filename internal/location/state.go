// Package location maps opaque location tokens to navigation states and
// back, and defines the port through which tokens change.
package location

import "github.com/ryan-rushton/omni/internal/catalog"

// Kind is the top-level view a State selects.
type Kind int

const (
	KindHome Kind = iota
	KindCategory
	KindTool
)

func (k Kind) String() string {
	switch k {
	case KindCategory:
		return "category"
	case KindTool:
		return "tool"
	default:
		return "home"
	}
}

// State is the navigation state. It is comparable; two states are
// equivalent exactly when they are ==.
type State struct {
	Kind     Kind
	Category catalog.Category
	ToolID   string
}

// Home returns the home state.
func Home() State {
	return State{Kind: KindHome}
}

// Category returns the state for browsing one category.
func Category(c catalog.Category) State {
	return State{Kind: KindCategory, Category: c}
}

// Tool returns the state for one tool. Its category always comes from the
// tool itself.
func Tool(t catalog.Tool) State {
	return State{Kind: KindTool, Category: t.Category, ToolID: t.ID}
}

func (s State) String() string {
	switch s.Kind {
	case KindCategory:
		return "category(" + s.Category.Label() + ")"
	case KindTool:
		return "tool(" + s.ToolID + ")"
	default:
		return "home"
	}
}
