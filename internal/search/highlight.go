package search

import "strings"

// Highlight wraps every case-insensitive, non-overlapping occurrence of query
// in text with mark, keeping the original casing. Text whose lower-cased form
// changes byte length is returned unmarked.
func Highlight(text, query string, mark func(string) string) string {
	if query == "" || text == "" {
		return text
	}
	lowerText := strings.ToLower(text)
	lowerQuery := strings.ToLower(query)
	if len(lowerText) != len(text) {
		return text
	}

	var b strings.Builder
	rest := 0
	for {
		i := strings.Index(lowerText[rest:], lowerQuery)
		if i < 0 {
			break
		}
		start := rest + i
		end := start + len(lowerQuery)
		b.WriteString(text[rest:start])
		b.WriteString(mark(text[start:end]))
		rest = end
	}
	b.WriteString(text[rest:])
	return b.String()
}
