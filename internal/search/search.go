// Package search filters the catalog by case-insensitive substring match.
//
// A tool matches when the lower-cased query occurs in its name,
// description, category label, sub-category or ID. Results keep catalog
// order; there is no scoring. Every call recomputes from scratch.
package search

import (
	"strings"

	"github.com/ryan-rushton/omni/internal/catalog"
)

// Source supplies the tools to search, in catalog order.
type Source interface {
	All() []catalog.Tool
}

// Active reports whether query turns search on. Blank queries leave the
// navigation view in charge.
func Active(query string) bool {
	return strings.TrimSpace(query) != ""
}

// Search returns the tools matching query, in catalog order. Inactive
// queries return nil.
func Search(src Source, query string) []catalog.Tool {
	if !Active(query) {
		return nil
	}
	q := strings.ToLower(query)

	var out []catalog.Tool
	for _, t := range src.All() {
		if Matches(t, q) {
			out = append(out, t)
		}
	}
	return out
}

// Matches reports whether the already lower-cased query hits any field of t.
func Matches(t catalog.Tool, lowerQuery string) bool {
	fields := [...]string{t.Name, t.Description, t.Category.Label(), t.SubCategory, t.ID}
	for _, f := range fields {
		if f != "" && strings.Contains(strings.ToLower(f), lowerQuery) {
			return true
		}
	}
	return false
}
