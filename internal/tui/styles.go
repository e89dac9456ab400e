package tui

import "github.com/charmbracelet/lipgloss"

// Styles
var (
	baseFg    = lipgloss.Color("252")
	baseDimFg = lipgloss.AdaptiveColor{Light: "244", Dark: "240"}
	accentFg  = lipgloss.Color("46")
	pausedFg  = lipgloss.Color("117")

	appStyle    = lipgloss.NewStyle().Foreground(baseFg)
	titleStyle  = lipgloss.NewStyle().Foreground(accentFg).Bold(true)
	dimStyle    = lipgloss.NewStyle().Foreground(baseDimFg)
	pausedStyle = lipgloss.NewStyle().Foreground(pausedFg).Bold(true)
)
