package ui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func testOptions() []ModeOption {
	return []ModeOption{
		{Mode: "upper", Sample: "HELLO WORLD"},
		{Mode: "lower", Sample: "hello world"},
		{Mode: "reverse", Sample: "dlrow olleh"},
	}
}

func TestPickerModel_View(t *testing.T) {
	m := NewPicker("Pick a mode:", testOptions())
	view := m.View()

	if !strings.Contains(view, "Pick a mode:") {
		t.Error("View() should contain the title")
	}
	for _, opt := range testOptions() {
		if !strings.Contains(view, opt.Mode) {
			t.Errorf("View() should list mode %q", opt.Mode)
		}
	}
	// Sample is only shown for the row under the cursor.
	if !strings.Contains(view, "HELLO WORLD") {
		t.Error("View() should show the sample for the highlighted mode")
	}
	if strings.Contains(view, "dlrow olleh") {
		t.Error("View() should not show samples for other modes")
	}
}

func TestPickerModel_Navigation(t *testing.T) {
	m := NewPicker("Pick a mode:", testOptions())

	down := tea.KeyMsg{Type: tea.KeyDown}
	updated, _ := m.Update(down)
	m = updated.(PickerModel)
	if m.cursor != 1 {
		t.Errorf("cursor = %d after down, want 1", m.cursor)
	}

	up := tea.KeyMsg{Type: tea.KeyUp}
	updated, _ = m.Update(up)
	m = updated.(PickerModel)
	if m.cursor != 0 {
		t.Errorf("cursor = %d after up, want 0", m.cursor)
	}

	// Up at the top stays at the top.
	updated, _ = m.Update(up)
	m = updated.(PickerModel)
	if m.cursor != 0 {
		t.Errorf("cursor = %d after up at top, want 0", m.cursor)
	}
}

func TestPickerModel_Select(t *testing.T) {
	m := NewPicker("Pick a mode:", testOptions())

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m = updated.(PickerModel)
	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = updated.(PickerModel)

	if got := m.Selected(); got != "lower" {
		t.Errorf("Selected() = %q, want %q", got, "lower")
	}
}

func TestPickerModel_QuitWithoutSelection(t *testing.T) {
	m := NewPicker("Pick a mode:", testOptions())

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	m = updated.(PickerModel)

	if got := m.Selected(); got != "" {
		t.Errorf("Selected() = %q after quit, want empty", got)
	}
}

func TestLabel_NoColorPassthrough(t *testing.T) {
	if got := Label("upper", false); got != "upper" {
		t.Errorf("Label(%q, false) = %q, want unstyled text", "upper", got)
	}
	if got := Dim("hint", false); got != "hint" {
		t.Errorf("Dim(%q, false) = %q, want unstyled text", "hint", got)
	}
}
