package tui

import "github.com/charmbracelet/lipgloss"

// Styles bundles every lipgloss style the view needs, derived once per
// theme toggle instead of per frame.
type Styles struct {
	Title     lipgloss.Style
	Row       lipgloss.Style
	RowActive lipgloss.Style
	Card      lipgloss.Style
	CardTitle lipgloss.Style
	Tag       lipgloss.Style
	Project   lipgloss.Style
	Muted     lipgloss.Style
	Error     lipgloss.Style
	Status    lipgloss.Style
	FormBox   lipgloss.Style
	Confirm   lipgloss.Style
	Help      lipgloss.Style
}

type palette struct {
	accent  lipgloss.Color
	text    lipgloss.Color
	muted   lipgloss.Color
	danger  lipgloss.Color
	surface lipgloss.Color
}

var lightPalette = palette{
	accent:  lipgloss.Color("25"),
	text:    lipgloss.Color("235"),
	muted:   lipgloss.Color("245"),
	danger:  lipgloss.Color("124"),
	surface: lipgloss.Color("254"),
}

var darkPalette = palette{
	accent:  lipgloss.Color("39"),
	text:    lipgloss.Color("252"),
	muted:   lipgloss.Color("243"),
	danger:  lipgloss.Color("203"),
	surface: lipgloss.Color("236"),
}

func NewStyles(dark bool) Styles {
	p := lightPalette
	if dark {
		p = darkPalette
	}

	return Styles{
		Title:     lipgloss.NewStyle().Bold(true).Foreground(p.accent).Padding(0, 1),
		Row:       lipgloss.NewStyle().Foreground(p.text).Padding(0, 1),
		RowActive: lipgloss.NewStyle().Foreground(p.accent).Background(p.surface).Bold(true).Padding(0, 1),
		Card: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.muted).
			Padding(0, 1).
			Width(28),
		CardTitle: lipgloss.NewStyle().Bold(true).Foreground(p.accent),
		Tag:       lipgloss.NewStyle().Foreground(p.accent),
		Project:   lipgloss.NewStyle().Foreground(p.muted).Italic(true),
		Muted:     lipgloss.NewStyle().Foreground(p.muted),
		Error:     lipgloss.NewStyle().Foreground(p.danger).Bold(true),
		Status:    lipgloss.NewStyle().Foreground(p.muted),
		FormBox: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.accent).
			Padding(1, 2),
		Confirm: lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(p.danger).
			Padding(1, 2),
		Help: lipgloss.NewStyle().Foreground(p.muted),
	}
}
