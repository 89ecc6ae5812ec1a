// Package wordcount implements the counting and analysis tools.
package wordcount

import (
	"cmp"
	"fmt"
	"math"
	"regexp"
	"slices"
	"strings"
	"time"
	"unicode"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rivo/uniseg"

	"github.com/ryan-rushton/omni/internal/catalog"
	"github.com/ryan-rushton/omni/internal/registry"
	"github.com/ryan-rushton/omni/internal/tools/transform"
)

const RendererKey = "word-count"

const (
	readingWPM  = 200
	speakingWPM = 130
	topKeywords = 10
)

func init() {
	registry.Register(registry.Renderer{
		Key:         RendererKey,
		Description: "Counting and analysis tools",
		New: func(t catalog.Tool) tea.Model {
			return transform.New(t, For(t.ID))
		},
	})
}

var (
	sentenceEnd = regexp.MustCompile(`[.!?]+`)
	paraBreak   = regexp.MustCompile(`\n\s*\n`)
)

// Stats summarises a piece of text.
type Stats struct {
	Words             int
	Characters        int
	CharactersNoSpace int
	Sentences         int
	Paragraphs        int
	Lines             int
	Reading           time.Duration
	Speaking          time.Duration
}

// Count computes Stats. Characters are grapheme clusters.
func Count(s string) Stats {
	if strings.TrimSpace(s) == "" {
		return Stats{}
	}

	words := len(strings.Fields(s))
	st := Stats{
		Words:             words,
		Characters:        uniseg.GraphemeClusterCount(s),
		CharactersNoSpace: uniseg.GraphemeClusterCount(strings.Join(strings.Fields(s), "")),
		Lines:             strings.Count(s, "\n") + 1,
		Reading:           minutes(words, readingWPM),
		Speaking:          minutes(words, speakingWPM),
	}

	for _, part := range sentenceEnd.Split(s, -1) {
		if strings.TrimSpace(part) != "" {
			st.Sentences++
		}
	}
	for _, part := range paraBreak.Split(s, -1) {
		if strings.TrimSpace(part) != "" {
			st.Paragraphs++
		}
	}
	return st
}

// minutes rounds up to whole minutes so any text takes at least one.
func minutes(words, wpm int) time.Duration {
	return time.Duration(math.Ceil(float64(words)/float64(wpm))) * time.Minute
}

// Report renders every statistic, one per line.
func Report(s string) string {
	st := Count(s)
	return fmt.Sprintf(
		"Words: %d\nCharacters: %d\nCharacters (no spaces): %d\nSentences: %d\nParagraphs: %d\nLines: %d\nReading time: %s\nSpeaking time: %s",
		st.Words, st.Characters, st.CharactersNoSpace, st.Sentences, st.Paragraphs, st.Lines,
		formatMinutes(st.Reading), formatMinutes(st.Speaking),
	)
}

func formatMinutes(d time.Duration) string {
	m := int(d.Minutes())
	if m == 1 {
		return "1 min"
	}
	return fmt.Sprintf("%d min", m)
}

// Frequency is how often a normalised word appears.
type Frequency struct {
	Word  string
	Count int
}

// Frequencies counts lower-cased words, most frequent first and alphabetical
// within a count.
func Frequencies(s string) []Frequency {
	counts := make(map[string]int)
	for _, w := range strings.FieldsFunc(strings.ToLower(s), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '\''
	}) {
		counts[w]++
	}
	out := make([]Frequency, 0, len(counts))
	for w, n := range counts {
		out = append(out, Frequency{Word: w, Count: n})
	}
	slices.SortFunc(out, func(a, b Frequency) int {
		if c := cmp.Compare(b.Count, a.Count); c != 0 {
			return c
		}
		return cmp.Compare(a.Word, b.Word)
	})
	return out
}

func keywordReport(s string) string {
	fs := Frequencies(s)
	if len(fs) > topKeywords {
		fs = fs[:topKeywords]
	}
	lines := make([]string, len(fs))
	for i, f := range fs {
		lines[i] = fmt.Sprintf("%-16s %d", f.Word, f.Count)
	}
	return strings.Join(lines, "\n")
}

func duplicateReport(s string) string {
	var lines []string
	for _, f := range Frequencies(s) {
		if f.Count > 1 {
			lines = append(lines, fmt.Sprintf("%s (%d×)", f.Word, f.Count))
		}
	}
	if len(lines) == 0 && strings.TrimSpace(s) != "" {
		return "No duplicate words"
	}
	return strings.Join(lines, "\n")
}

// For returns the analysis for a tool id. Everything but the keyword tools
// shows the full report.
func For(id string) transform.Func {
	switch id {
	case "keyword-frequency-counter":
		return keywordReport
	case "duplicate-word-finder":
		return duplicateReport
	}
	return Report
}
