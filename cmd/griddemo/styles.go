package main

import "github.com/charmbracelet/lipgloss"

// theme is the set of styles the preview renders with. Cell styles cycle
// when a definition has more cells than the palette has colors.
type theme struct {
	cells   []lipgloss.Style
	status  lipgloss.Style
	errText lipgloss.Style
}

func newTheme(name string) theme {
	var colors []string
	switch name {
	case "mono":
		colors = []string{"7"}
	case "ocean":
		colors = []string{"24", "31", "38", "45", "87"}
	default:
		colors = []string{"2", "3", "4", "5", "6", "9"}
	}

	cells := make([]lipgloss.Style, len(colors))
	for i, c := range colors {
		cells[i] = lipgloss.NewStyle().Foreground(lipgloss.Color(c))
	}
	return theme{
		cells:   cells,
		status:  lipgloss.NewStyle().Faint(true),
		errText: lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true),
	}
}
