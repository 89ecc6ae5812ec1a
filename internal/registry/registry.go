// Package registry maps renderer keys to the widgets that render tools.
// Widget packages register themselves from init.
package registry

import (
	"sort"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ryan-rushton/omni/internal/catalog"
)

// Factory builds the view for one tool.
type Factory func(t catalog.Tool) tea.Model

// Renderer is a named widget factory.
type Renderer struct {
	Key         string
	Description string
	New         Factory
}

var renderers = map[string]Renderer{}

// Register adds a renderer, replacing any with the same key.
func Register(r Renderer) {
	renderers[r.Key] = r
}

// All returns all registered renderers sorted by key.
func All() []Renderer {
	out := make([]Renderer, 0, len(renderers))
	for _, r := range renderers {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Key < out[j].Key })
	return out
}

// Get returns the renderer with the given key, or nil if not found.
func Get(key string) *Renderer {
	r, ok := renderers[key]
	if !ok {
		return nil
	}
	return &r
}

// For builds the view for t, falling back to the default renderer when t's
// renderer is not registered. It returns nil if neither is.
func For(t catalog.Tool) tea.Model {
	if r := Get(t.Renderer); r != nil {
		return r.New(t)
	}
	if r := Get(catalog.DefaultRenderer); r != nil {
		return r.New(t)
	}
	return nil
}
