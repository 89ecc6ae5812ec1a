package registry

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ryan-rushton/omni/internal/catalog"
)

type stubModel struct{ key, toolID string }

func (m stubModel) Init() tea.Cmd                       { return nil }
func (m stubModel) Update(tea.Msg) (tea.Model, tea.Cmd) { return m, nil }
func (m stubModel) View() string                        { return m.key + ":" + m.toolID }

func stub(key string) Renderer {
	return Renderer{
		Key: key,
		New: func(t catalog.Tool) tea.Model { return stubModel{key: key, toolID: t.ID} },
	}
}

// withRenderers swaps the global table for the duration of a test.
func withRenderers(t *testing.T, rs ...Renderer) {
	t.Helper()
	saved := renderers
	renderers = map[string]Renderer{}
	for _, r := range rs {
		Register(r)
	}
	t.Cleanup(func() { renderers = saved })
}

func TestGet(t *testing.T) {
	withRenderers(t, stub("word-count"))

	if Get("word-count") == nil {
		t.Fatal("expected word-count to be registered")
	}
	if Get("missing") != nil {
		t.Error("expected nil for unregistered key")
	}
}

func TestAll_SortedByKey(t *testing.T) {
	withRenderers(t, stub("text-case"), stub("generic"), stub("word-count"))

	var keys []string
	for _, r := range All() {
		keys = append(keys, r.Key)
	}
	want := []string{"generic", "text-case", "word-count"}
	if len(keys) != len(want) {
		t.Fatalf("got %v, want %v", keys, want)
	}
	for i := range want {
		if keys[i] != want[i] {
			t.Errorf("keys[%d] = %q, want %q", i, keys[i], want[i])
		}
	}
}

func TestRegister_Replaces(t *testing.T) {
	withRenderers(t, stub("generic"))
	Register(Renderer{Key: "generic", Description: "second", New: stub("generic").New})

	if got := Get("generic").Description; got != "second" {
		t.Errorf("expected replacement, got description %q", got)
	}
}

func TestFor(t *testing.T) {
	withRenderers(t, stub("generic"), stub("word-count"))

	m := For(catalog.Tool{ID: "word-counter", Renderer: "word-count"})
	if got := m.View(); got != "word-count:word-counter" {
		t.Errorf("expected word-count renderer, got %q", got)
	}

	m = For(catalog.Tool{ID: "dice-roller", Renderer: "dice"})
	if got := m.View(); got != "generic:dice-roller" {
		t.Errorf("expected generic fallback, got %q", got)
	}
}

func TestFor_NothingRegistered(t *testing.T) {
	withRenderers(t)

	if m := For(catalog.Tool{ID: "x", Renderer: "generic"}); m != nil {
		t.Errorf("expected nil model, got %T", m)
	}
}
