// Package textclean implements the text scrubbing tools.
package textclean

import (
	"regexp"
	"strings"
	"unicode"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rivo/uniseg"
	"golang.org/x/text/unicode/norm"

	"github.com/ryan-rushton/omni/internal/catalog"
	"github.com/ryan-rushton/omni/internal/registry"
	"github.com/ryan-rushton/omni/internal/tools/transform"
)

const RendererKey = "text-clean"

func init() {
	registry.Register(registry.Renderer{
		Key:         RendererKey,
		Description: "Text scrubbing tools",
		New: func(t catalog.Tool) tea.Model {
			return transform.New(t, For(t.ID))
		},
	})
}

var (
	spaceRun = regexp.MustCompile(`[ \t]+`)
	digits   = regexp.MustCompile(`\p{Nd}+`)
	special  = regexp.MustCompile(`[^\p{L}\p{N}\s]`)
	htmlTag  = regexp.MustCompile(`<[^>]*>`)
	link     = regexp.MustCompile(`(?i)\b(?:https?://|www\.)\S+`)
)

var cleaners = map[string]transform.Func{
	"remove-extra-spaces":       CollapseSpaces,
	"trim-text-tool":            Trim,
	"remove-empty-lines":        RemoveEmptyLines,
	"remove-numbers":            func(s string) string { return digits.ReplaceAllString(s, "") },
	"remove-special-characters": func(s string) string { return special.ReplaceAllString(s, "") },
	"remove-emojis":             RemoveEmojis,
	"remove-html-tags":          func(s string) string { return htmlTag.ReplaceAllString(s, "") },
	"remove-urls":               func(s string) string { return link.ReplaceAllString(s, "") },
	"remove-duplicate-lines":    RemoveDuplicateLines,
	"normalize-unicode":         norm.NFC.String,
}

// For returns the cleaner for a tool id. Unknown ids collapse spaces.
func For(id string) transform.Func {
	if fn, ok := cleaners[id]; ok {
		return fn
	}
	return CollapseSpaces
}

// CollapseSpaces squeezes runs of spaces and tabs to a single space and trims
// each line.
func CollapseSpaces(s string) string {
	lines := strings.Split(s, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimSpace(spaceRun.ReplaceAllString(l, " "))
	}
	return strings.Join(lines, "\n")
}

func Trim(s string) string {
	lines := strings.Split(s, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimSpace(l)
	}
	return strings.TrimSpace(strings.Join(lines, "\n"))
}

func RemoveEmptyLines(s string) string {
	var out []string
	for _, l := range strings.Split(s, "\n") {
		if strings.TrimSpace(l) != "" {
			out = append(out, l)
		}
	}
	return strings.Join(out, "\n")
}

// RemoveDuplicateLines keeps the first occurrence of every line.
func RemoveDuplicateLines(s string) string {
	seen := make(map[string]bool)
	var out []string
	for _, l := range strings.Split(s, "\n") {
		if seen[l] {
			continue
		}
		seen[l] = true
		out = append(out, l)
	}
	return strings.Join(out, "\n")
}

// RemoveEmojis drops every grapheme cluster that starts with a pictographic
// rune, so joined and modified emoji go as a unit.
func RemoveEmojis(s string) string {
	var b strings.Builder
	g := uniseg.NewGraphemes(s)
	for g.Next() {
		rs := g.Runes()
		if len(rs) > 0 && isPictographic(rs[0]) {
			continue
		}
		b.WriteString(g.Str())
	}
	return b.String()
}

func isPictographic(r rune) bool {
	switch {
	case r >= 0x1F000 && r <= 0x1FAFF,
		r >= 0x2600 && r <= 0x27BF,
		r >= 0x1F1E6 && r <= 0x1F1FF:
		return true
	}
	return unicode.Is(unicode.So, r) && r > 0xFF
}
