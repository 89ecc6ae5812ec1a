// Package textcase implements the case, style and encoding converters.
package textcase

import (
	"encoding/base64"
	"math/rand/v2"
	"net/url"
	"slices"
	"strconv"
	"strings"
	"unicode"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/ryan-rushton/omni/internal/catalog"
	"github.com/ryan-rushton/omni/internal/registry"
	"github.com/ryan-rushton/omni/internal/tools/transform"
)

const RendererKey = "text-case"

func init() {
	registry.Register(registry.Renderer{
		Key:         RendererKey,
		Description: "Case, style and encoding converters",
		New: func(t catalog.Tool) tea.Model {
			return transform.New(t, For(t.ID))
		},
	})
}

var converters = map[string]transform.Func{
	"uppercase-converter":     Upper,
	"lowercase-converter":     Lower,
	"sentence-case-converter": Sentence,
	"title-case-converter":    Title,
	"toggle-case-converter":   Toggle,
	"camel-case-converter":    Camel,
	"pascal-case-converter":   Pascal,
	"snake-case-converter":    Snake,
	"kebab-case-converter":    Kebab,
	"random-case-generator":   Random,
	"text-formatter":          Format,
	"add-line-numbers":        NumberLines,
	"add-prefix-&-suffix":     Bullet,
	"wrap-/-unwrap-text":      Unwrap,
	"text-reverser":           Reverse,
	"base64-encode":           Base64Encode,
	"base64-decode":           Base64Decode,
	"url-encode-/-decode":     URLToggle,
	"fancy-text-generator":    Fancy,
}

// For returns the converter for a tool id. Tools without one echo their input.
func For(id string) transform.Func {
	if fn, ok := converters[id]; ok {
		return fn
	}
	return func(s string) string { return s }
}

func Upper(s string) string { return cases.Upper(language.English).String(s) }
func Lower(s string) string { return cases.Lower(language.English).String(s) }
func Title(s string) string { return cases.Title(language.English).String(s) }

// Sentence lower-cases everything and capitalises the first letter of each
// sentence.
func Sentence(s string) string {
	rs := []rune(Lower(s))
	capNext := true
	for i, r := range rs {
		switch {
		case capNext && unicode.IsLetter(r):
			rs[i] = unicode.ToUpper(r)
			capNext = false
		case r == '.' || r == '!' || r == '?':
			capNext = true
		}
	}
	return string(rs)
}

func Toggle(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsUpper(r) {
			return unicode.ToLower(r)
		}
		return unicode.ToUpper(r)
	}, s)
}

func Random(s string) string {
	return strings.Map(func(r rune) rune {
		if rand.IntN(2) == 0 {
			return unicode.ToLower(r)
		}
		return unicode.ToUpper(r)
	}, s)
}

// words splits on anything that is not a letter or digit, and on
// lower-to-upper transitions inside a word.
func words(s string) []string {
	var out []string
	for _, f := range strings.FieldsFunc(s, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	}) {
		rs := []rune(f)
		start := 0
		for i := 1; i < len(rs); i++ {
			if unicode.IsUpper(rs[i]) && unicode.IsLower(rs[i-1]) {
				out = append(out, string(rs[start:i]))
				start = i
			}
		}
		out = append(out, string(rs[start:]))
	}
	return out
}

func capitalise(w string) string {
	rs := []rune(strings.ToLower(w))
	if len(rs) > 0 {
		rs[0] = unicode.ToUpper(rs[0])
	}
	return string(rs)
}

func Camel(s string) string {
	ws := words(s)
	for i, w := range ws {
		if i == 0 {
			ws[i] = strings.ToLower(w)
			continue
		}
		ws[i] = capitalise(w)
	}
	return strings.Join(ws, "")
}

func Pascal(s string) string {
	ws := words(s)
	for i, w := range ws {
		ws[i] = capitalise(w)
	}
	return strings.Join(ws, "")
}

func joinLower(s, sep string) string {
	ws := words(s)
	for i, w := range ws {
		ws[i] = strings.ToLower(w)
	}
	return strings.Join(ws, sep)
}

func Snake(s string) string { return joinLower(s, "_") }
func Kebab(s string) string { return joinLower(s, "-") }

// Format trims every line and collapses runs of blank lines into one.
func Format(s string) string {
	var out []string
	blank := false
	for line := range strings.Lines(s) {
		line = strings.TrimSpace(line)
		if line == "" {
			if blank || len(out) == 0 {
				continue
			}
			blank = true
		} else {
			blank = false
		}
		out = append(out, line)
	}
	return strings.TrimSpace(strings.Join(out, "\n"))
}

func NumberLines(s string) string {
	if s == "" {
		return ""
	}
	lines := strings.Split(s, "\n")
	for i, l := range lines {
		lines[i] = strconv.Itoa(i+1) + ". " + l
	}
	return strings.Join(lines, "\n")
}

// Bullet prefixes every non-empty line with "- ".
func Bullet(s string) string {
	lines := strings.Split(s, "\n")
	for i, l := range lines {
		if strings.TrimSpace(l) != "" {
			lines[i] = "- " + l
		}
	}
	return strings.Join(lines, "\n")
}

// Unwrap joins the lines of each paragraph into one line. Paragraphs are
// separated by blank lines.
func Unwrap(s string) string {
	var paras []string
	for _, p := range strings.Split(strings.ReplaceAll(s, "\r\n", "\n"), "\n\n") {
		if f := strings.Fields(p); len(f) > 0 {
			paras = append(paras, strings.Join(f, " "))
		}
	}
	return strings.Join(paras, "\n\n")
}

func Reverse(s string) string {
	rs := []rune(s)
	slices.Reverse(rs)
	return string(rs)
}

func Base64Encode(s string) string {
	return base64.StdEncoding.EncodeToString([]byte(s))
}

func Base64Decode(s string) string {
	b, err := base64.StdEncoding.DecodeString(strings.TrimSpace(s))
	if err != nil {
		return "invalid base64: " + err.Error()
	}
	return string(b)
}

// URLToggle decodes input that is already percent-encoded and encodes
// anything else.
func URLToggle(s string) string {
	if strings.Contains(s, "%") {
		if dec, err := url.QueryUnescape(s); err == nil {
			return dec
		}
	}
	return url.QueryEscape(s)
}

// Fancy maps ASCII letters and digits to their mathematical bold forms.
func Fancy(s string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'A' && r <= 'Z':
			return 0x1D400 + (r - 'A')
		case r >= 'a' && r <= 'z':
			return 0x1D41A + (r - 'a')
		case r >= '0' && r <= '9':
			return 0x1D7CE + (r - '0')
		}
		return r
	}, s)
}
