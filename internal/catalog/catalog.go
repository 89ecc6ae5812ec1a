// Package catalog holds the immutable, ordered set of tool descriptors that
// everything else navigates and searches.
package catalog

import (
	"fmt"
	"iter"
	"slices"
	"strings"
)

// Tool describes one catalog entry. Values are never mutated after the
// catalog is built.
type Tool struct {
	ID          string
	Name        string
	Description string
	Category    Category
	SubCategory string
	Icon        string
	// Renderer is the registry key of the widget that renders this tool.
	Renderer string
}

// Catalog is an ordered, read-only tool store. It is safe for concurrent
// reads without synchronization.
type Catalog struct {
	tools []Tool
	byID  map[string]int
	count map[Category]int
}

// New builds a catalog from tools in the given order. Tools without an ID get
// one derived from their name. Duplicate IDs, unknown categories, IDs with a
// leading '#' and IDs that shadow a category slug are rejected.
func New(tools []Tool) (*Catalog, error) {
	slugs := make(map[string]Category)
	for _, c := range Categories() {
		slugs[c.Slug()] = c
	}

	c := &Catalog{
		tools: make([]Tool, 0, len(tools)),
		byID:  make(map[string]int, len(tools)),
		count: make(map[Category]int),
	}
	for _, t := range tools {
		if t.ID == "" {
			t.ID = Slugify(t.Name)
		}
		if t.ID == "" {
			return nil, fmt.Errorf("tool %q: empty id", t.Name)
		}
		if !t.Category.Valid() {
			return nil, fmt.Errorf("tool %q: invalid category %d", t.ID, int(t.Category))
		}
		if strings.HasPrefix(t.ID, "#") {
			return nil, fmt.Errorf("tool %q: id must not start with '#'", t.ID)
		}
		if _, dup := c.byID[t.ID]; dup {
			return nil, fmt.Errorf("tool %q: duplicate id", t.ID)
		}
		if cat, ok := slugs[t.ID]; ok {
			return nil, fmt.Errorf("tool %q: id collides with category %q", t.ID, cat.Label())
		}
		c.byID[t.ID] = len(c.tools)
		c.count[t.Category]++
		c.tools = append(c.tools, t)
	}
	return c, nil
}

// All returns every tool in catalog order.
func (c *Catalog) All() []Tool {
	return slices.Clone(c.tools)
}

// Len returns the number of tools.
func (c *Catalog) Len() int {
	return len(c.tools)
}

// FindByID returns the tool with the given ID.
func (c *Catalog) FindByID(id string) (Tool, bool) {
	i, ok := c.byID[id]
	if !ok {
		return Tool{}, false
	}
	return c.tools[i], true
}

// FindByCategory yields the tools of one category in catalog order.
func (c *Catalog) FindByCategory(cat Category) iter.Seq[Tool] {
	return func(yield func(Tool) bool) {
		for _, t := range c.tools {
			if t.Category != cat {
				continue
			}
			if !yield(t) {
				return
			}
		}
	}
}

// Count returns the number of tools in a category.
func (c *Catalog) Count(cat Category) int {
	return c.count[cat]
}
