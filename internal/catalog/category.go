package catalog

import (
	"regexp"
	"strings"
)

// Category is one of the fixed catalog categories.
type Category int

const (
	Text Category = iota + 1
	Calculator
	Developer
	Image
	SEO
	File
	AI
	Social
	PDF
	Audio
	Video
	Education
	Data
	Gaming
	RealEstate
	Health
	ECommerce
	Travel
	Security
	Utilities
)

type categoryInfo struct {
	key   string
	label string
}

var categoryTable = map[Category]categoryInfo{
	Text:       {"text", "Text Tools"},
	Calculator: {"calculator", "Calculator Tools"},
	Developer:  {"developer", "Developer Tools"},
	Image:      {"image", "Image Tools"},
	SEO:        {"seo", "Web & SEO Tools"},
	File:       {"file", "File Tools"},
	AI:         {"ai", "AI & Productivity"},
	Social:     {"social", "Social Media Tools"},
	PDF:        {"pdf", "PDF Tools"},
	Audio:      {"audio", "Audio Tools"},
	Video:      {"video", "Video Tools"},
	Education:  {"education", "Education & Learning"},
	Data:       {"data", "Data & Analytics"},
	Gaming:     {"gaming", "Gaming & Entertainment"},
	RealEstate: {"real-estate", "Real Estate & Property"},
	Health:     {"health", "Health & Fitness"},
	ECommerce:  {"ecommerce", "E-Commerce & Business"},
	Travel:     {"travel", "Travel & Transport"},
	Security:   {"security", "Security & Privacy"},
	Utilities:  {"utilities", "Online Utilities"},
}

// Categories returns every category in display order.
func Categories() []Category {
	cats := make([]Category, 0, len(categoryTable))
	for c := Text; c <= Utilities; c++ {
		cats = append(cats, c)
	}
	return cats
}

// Valid reports whether c is one of the enumerated categories.
func (c Category) Valid() bool {
	_, ok := categoryTable[c]
	return ok
}

// Key is the stable identifier used in data files and CLI arguments.
func (c Category) Key() string { return categoryTable[c].key }

// Label is the display label. Search matches against it.
func (c Category) Label() string { return categoryTable[c].label }

// Slug is the location token form of the label.
func (c Category) Slug() string { return Slugify(c.Label()) }

func (c Category) String() string {
	if !c.Valid() {
		return "unknown"
	}
	return c.Label()
}

// ParseCategory looks a category up by its stable key.
func ParseCategory(key string) (Category, bool) {
	for _, c := range Categories() {
		if c.Key() == key {
			return c, true
		}
	}
	return 0, false
}

var whitespace = regexp.MustCompile(`\s+`)

// Slugify lower-cases s and replaces each run of whitespace with a hyphen.
// Tool IDs and category slugs are both derived with it.
func Slugify(s string) string {
	return whitespace.ReplaceAllString(strings.ToLower(s), "-")
}
