package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestRegistryPriorityAndModes(t *testing.T) {
	r := NewHandlerRegistry()
	var hits []string
	r.Register(KeyBinding{Key: "a", Priority: 1, Handler: func(m MainModel, _ string) (MainModel, tea.Cmd, bool) {
		hits = append(hits, "low")
		return m, nil, true
	}})
	r.Register(KeyBinding{Key: "a", Priority: 5, Modes: []FocusMode{FocusForm}, Handler: func(m MainModel, _ string) (MainModel, tea.Cmd, bool) {
		hits = append(hits, "high")
		return m, nil, true
	}})

	m := MainModel{focus: FocusPage}
	if _, _, handled := r.Handle(m, "a"); !handled {
		t.Fatalf("expected key handled")
	}
	m.focus = FocusForm
	r.Handle(m, "a")
	if strings.Join(hits, ",") != "low,high" {
		t.Fatalf("unexpected dispatch order %v", hits)
	}
	if _, _, handled := r.Handle(m, "b"); handled {
		t.Fatalf("expected unknown key unhandled")
	}
}

func TestRegistryFallsThroughUnhandled(t *testing.T) {
	r := NewHandlerRegistry()
	r.Register(KeyBinding{Key: "k", Priority: 9, Handler: func(m MainModel, _ string) (MainModel, tea.Cmd, bool) {
		return m, nil, false
	}})
	r.Register(KeyBinding{Key: "k", Handler: func(m MainModel, _ string) (MainModel, tea.Cmd, bool) {
		m.Message = "second"
		return m, nil, true
	}})
	next, _, handled := r.Handle(MainModel{}, "k")
	if !handled || next.Message != "second" {
		t.Fatalf("expected fallthrough to the next binding")
	}
}

func TestSessionHelp(t *testing.T) {
	r := newKeyRegistry()
	page := r.HelpFor(FocusPage)
	for _, want := range []string{"[q]quit", "[m]mute", "[+]vol+", "[p]play", "[tab]subscribe"} {
		if !strings.Contains(page, want) {
			t.Fatalf("expected page help to contain %q, got %q", want, page)
		}
	}
	if strings.Contains(page, "send") {
		t.Fatalf("form bindings leaked into page help: %q", page)
	}
	form := r.HelpFor(FocusForm)
	if !strings.Contains(form, "[enter]send") || strings.Contains(form, "quit") {
		t.Fatalf("unexpected form help %q", form)
	}
}
