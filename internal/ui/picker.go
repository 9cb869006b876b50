package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// ModeOption is one entry in the mode picker: a mode name and a sample of
// its output shown while the cursor rests on it.
type ModeOption struct {
	Mode   string
	Sample string
}

// PickerModel is the interactive mode selection list.
type PickerModel struct {
	title    string
	options  []ModeOption
	cursor   int
	selected int
	quitting bool
}

// NewPicker creates a mode picker over the given options.
func NewPicker(title string, options []ModeOption) PickerModel {
	return PickerModel{
		title:    title,
		options:  options,
		selected: -1,
	}
}

// Init implements tea.Model
func (m PickerModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (m PickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			m.quitting = true
			return m, tea.Quit

		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}

		case "down", "j":
			if m.cursor < len(m.options)-1 {
				m.cursor++
			}

		case "enter", " ":
			m.selected = m.cursor
			m.quitting = true
			return m, tea.Quit
		}
	}

	return m, nil
}

// View implements tea.Model
func (m PickerModel) View() string {
	if m.quitting && m.selected >= 0 {
		return fmt.Sprintf("Mode: %s\n", m.options[m.selected].Mode)
	}

	var b strings.Builder

	b.WriteString(m.title)
	b.WriteString("\n\n")

	for i, opt := range m.options {
		cursor := "  "
		if m.cursor == i {
			cursor = cursorStyle.Render("> ")
		}

		label := opt.Mode
		if m.cursor == i {
			label = labelStyle.Render(label)
		} else {
			label = dimStyle.Render(label)
		}

		b.WriteString(cursor)
		b.WriteString(label)

		if opt.Sample != "" && m.cursor == i {
			b.WriteString("\n    ")
			b.WriteString(dimStyle.Render(opt.Sample))
		}

		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(dimStyle.Render("↑/↓ to move, enter to select, q to quit"))

	return b.String()
}

// Selected returns the chosen mode name, or "" if the picker was quit.
func (m PickerModel) Selected() string {
	if m.selected < 0 || m.selected >= len(m.options) {
		return ""
	}
	return m.options[m.selected].Mode
}

// RunPicker runs the mode picker and returns the chosen mode name.
// An empty string means the user quit without choosing.
func RunPicker(title string, options []ModeOption) (string, error) {
	m := NewPicker(title, options)
	p := tea.NewProgram(m)

	result, err := p.Run()
	if err != nil {
		return "", err
	}

	return result.(PickerModel).Selected(), nil
}
