package catalog

import (
	_ "embed"
	"fmt"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed data/tools.yaml
var builtinData []byte

type document struct {
	Sections []section `yaml:"sections"`
}

type section struct {
	Category    string   `yaml:"category"`
	SubCategory string   `yaml:"subcategory"`
	Icon        string   `yaml:"icon"`
	Renderer    string   `yaml:"renderer"`
	Describe    string   `yaml:"describe"`
	Names       []string `yaml:"names"`
	Tools       []entry  `yaml:"tools"`
}

type entry struct {
	ID          string `yaml:"id"`
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Icon        string `yaml:"icon"`
	Renderer    string `yaml:"renderer"`
}

// DefaultRenderer is used for entries that do not name one.
const DefaultRenderer = "generic"

// Load parses a catalog data file and builds the catalog.
func Load(data []byte) (*Catalog, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing catalog data: %w", err)
	}

	var tools []Tool
	for i, s := range doc.Sections {
		cat, ok := ParseCategory(s.Category)
		if !ok {
			return nil, fmt.Errorf("section %d: unknown category %q", i, s.Category)
		}
		base := Tool{
			Category:    cat,
			SubCategory: s.SubCategory,
			Icon:        s.Icon,
			Renderer:    s.Renderer,
		}
		if base.Renderer == "" {
			base.Renderer = DefaultRenderer
		}

		for _, name := range s.Names {
			t := base
			t.Name = name
			t.Description = strings.ReplaceAll(s.Describe, "{name}", name)
			tools = append(tools, t)
		}
		for _, e := range s.Tools {
			t := base
			t.ID = e.ID
			t.Name = e.Name
			t.Description = e.Description
			if e.Description == "" {
				t.Description = strings.ReplaceAll(s.Describe, "{name}", e.Name)
			}
			if e.Icon != "" {
				t.Icon = e.Icon
			}
			if e.Renderer != "" {
				t.Renderer = e.Renderer
			}
			tools = append(tools, t)
		}
	}

	c, err := New(tools)
	if err != nil {
		return nil, fmt.Errorf("building catalog: %w", err)
	}
	return c, nil
}

var builtin = sync.OnceValues(func() (*Catalog, error) {
	return Load(builtinData)
})

// Builtin returns the catalog compiled into the binary. It is parsed once.
func Builtin() (*Catalog, error) {
	return builtin()
}
