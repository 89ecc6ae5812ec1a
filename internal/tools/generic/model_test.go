package generic

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ryan-rushton/omni/internal/catalog"
	"github.com/ryan-rushton/omni/internal/messages"
	"github.com/ryan-rushton/omni/internal/registry"
)

var diceRoller = catalog.Tool{
	ID:          "dice-roller",
	Name:        "Dice Roller",
	Description: "High-performance utility for Dice Roller",
	Category:    catalog.Gaming,
}

func TestMarkdown(t *testing.T) {
	md := markdown(diceRoller)
	for _, want := range []string{"# Dice Roller", "Gaming & Entertainment", "General Utilities", "#dice-roller"} {
		if !strings.Contains(md, want) {
			t.Errorf("markdown missing %q:\n%s", want, md)
		}
	}
}

func TestView_ContainsToolName(t *testing.T) {
	saved := glamourStyle
	glamourStyle = "notty"
	t.Cleanup(func() { glamourStyle = saved })

	m := New(diceRoller)
	if !strings.Contains(m.View(), "Dice Roller") {
		t.Errorf("expected tool name in view, got:\n%s", m.View())
	}
}

func TestRegistered(t *testing.T) {
	r := registry.Get(catalog.DefaultRenderer)
	if r == nil {
		t.Fatal("expected generic renderer to be registered")
	}
	if _, ok := r.New(diceRoller).(Model); !ok {
		t.Error("expected factory to build a generic.Model")
	}
}

func TestBackKeys(t *testing.T) {
	for _, key := range []tea.KeyMsg{
		{Type: tea.KeyEsc},
		{Type: tea.KeyBackspace},
		{Type: tea.KeyRunes, Runes: []rune{'q'}},
	} {
		_, cmd := New(diceRoller).Update(key)
		if cmd == nil {
			t.Fatalf("expected cmd for %q", key.String())
		}
		if _, ok := cmd().(messages.BackMsg); !ok {
			t.Errorf("expected BackMsg for %q", key.String())
		}
	}
}

func TestOtherKeys_NoOp(t *testing.T) {
	_, cmd := New(diceRoller).Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}})
	if cmd != nil {
		t.Error("expected nil cmd for unbound key")
	}
}
