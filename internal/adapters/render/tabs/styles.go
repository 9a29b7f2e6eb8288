package tabs

import "github.com/charmbracelet/lipgloss"

type styles struct {
	nav         lipgloss.Style
	tab         lipgloss.Style
	activeTab   lipgloss.Style
	title       lipgloss.Style
	card        lipgloss.Style
	author      lipgloss.Style
	content     lipgloss.Style
	empty       lipgloss.Style
	composer    lipgloss.Style
	placeholder lipgloss.Style
	send        lipgloss.Style
	avatar      lipgloss.Style
	profileKey  lipgloss.Style
	profileMeta lipgloss.Style
	help        lipgloss.Style
}

func newStyles() styles {
	return styles{
		nav:         lipgloss.NewStyle().MarginBottom(1),
		tab:         lipgloss.NewStyle().Padding(0, 1).Foreground(lipgloss.Color("252")),
		activeTab:   lipgloss.NewStyle().Padding(0, 1).Bold(true).Foreground(lipgloss.Color("231")).Background(lipgloss.Color("25")),
		title:       lipgloss.NewStyle().Bold(true).MarginBottom(1),
		card:        lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("244")).Padding(0, 1),
		author:      lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		content:     lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		empty:       lipgloss.NewStyle().Faint(true),
		composer:    lipgloss.NewStyle().MarginTop(1),
		placeholder: lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		send:        lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("231")).Background(lipgloss.Color("33")).Padding(0, 1),
		avatar:      lipgloss.NewStyle().Border(lipgloss.NormalBorder()).BorderForeground(lipgloss.Color("240")).Width(6).Height(2),
		profileKey:  lipgloss.NewStyle().Bold(true),
		profileMeta: lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		help:        lipgloss.NewStyle().Faint(true).MarginTop(1),
	}
}
