// Package ui is the terminal rendition of the canvas: one card per block,
// a sticky progress header and keyboard/mouse navigation.
package ui

import "github.com/charmbracelet/lipgloss"

// Theme holds the colour scheme.
type Theme struct {
	Foreground  lipgloss.Color
	Primary     lipgloss.Color
	Accent      lipgloss.Color
	Success     lipgloss.Color
	Muted       lipgloss.Color
	Border      lipgloss.Color
	Destructive lipgloss.Color
	IsDark      bool
}

func LightTheme() Theme {
	return Theme{
		Foreground:  lipgloss.Color("#101F38"),
		Primary:     lipgloss.Color("#101F38"),
		Accent:      lipgloss.Color("#2196F3"),
		Success:     lipgloss.Color("#8BC34A"),
		Muted:       lipgloss.Color("#8a94a6"),
		Border:      lipgloss.Color("#dce0e5"),
		Destructive: lipgloss.Color("#e53935"),
	}
}

func DarkTheme() Theme {
	return Theme{
		Foreground:  lipgloss.Color("#f2f2f2"),
		Primary:     lipgloss.Color("#8BC34A"),
		Accent:      lipgloss.Color("#4db6ac"),
		Success:     lipgloss.Color("#8BC34A"),
		Muted:       lipgloss.Color("#6b7a93"),
		Border:      lipgloss.Color("#2a3850"),
		Destructive: lipgloss.Color("#e57373"),
		IsDark:      true,
	}
}

// Styles holds the styled components.
type Styles struct {
	Theme Theme

	Header lipgloss.Style
	Title  lipgloss.Style
	Footer lipgloss.Style
	Help   lipgloss.Style
	Status lipgloss.Style
	Error  lipgloss.Style

	Card         lipgloss.Style
	CardFocused  lipgloss.Style
	CardComplete lipgloss.Style
	CardHeading  lipgloss.Style
	Question     lipgloss.Style
	Answer       lipgloss.Style
	Placeholder  lipgloss.Style
	Meta         lipgloss.Style
	Done         lipgloss.Style
}

func NewStyles(theme Theme) Styles {
	card := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Padding(0, 1)

	return Styles{
		Theme: theme,

		Header: lipgloss.NewStyle().Padding(0, 1).MarginBottom(1),
		Title:  lipgloss.NewStyle().Bold(true).Foreground(theme.Primary),
		Footer: lipgloss.NewStyle().Padding(0, 1),
		Help:   lipgloss.NewStyle().Foreground(theme.Muted),
		Status: lipgloss.NewStyle().Foreground(theme.Success),
		Error:  lipgloss.NewStyle().Foreground(theme.Destructive),

		Card:         card,
		CardFocused:  card.BorderForeground(theme.Accent).BorderStyle(lipgloss.ThickBorder()),
		CardComplete: card.BorderForeground(theme.Success),
		CardHeading:  lipgloss.NewStyle().Bold(true).Foreground(theme.Foreground),
		Question:     lipgloss.NewStyle().Italic(true).Foreground(theme.Foreground),
		Answer:       lipgloss.NewStyle().Foreground(theme.Foreground),
		Placeholder:  lipgloss.NewStyle().Foreground(theme.Muted),
		Meta:         lipgloss.NewStyle().Foreground(theme.Muted),
		Done:         lipgloss.NewStyle().Bold(true).Foreground(theme.Success),
	}
}

// DefaultStyles picks the theme from the dark-mode flag.
func DefaultStyles(dark bool) Styles {
	if dark {
		return NewStyles(DarkTheme())
	}
	return NewStyles(LightTheme())
}
