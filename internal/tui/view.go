package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/lipgloss"
)

func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	header := titleStyle.Render(" donut ─ spinning torus ")
	header = lipgloss.NewStyle().Width(m.width).MaxWidth(m.width).Render(header)

	// The frame already carries its own colour escapes, so it is placed as is
	// rather than run through a style.
	canvas := lipgloss.PlaceHorizontal(m.width, lipgloss.Left, m.frame)

	state := dimStyle.Render(" " + m.status + " ")
	if m.paused {
		state = pausedStyle.Render(" paused ")
	}
	stats := dimStyle.Render(fmt.Sprintf(" A=%.2f B=%.2f  %dx%d  %s ", m.a, m.b, m.frameW, m.frameH, m.renderTime.Round(10*time.Microsecond)))
	footer := lipgloss.JoinHorizontal(lipgloss.Bottom, state, stats, m.renderHelp())
	footer = lipgloss.NewStyle().MaxWidth(m.width).Render(footer)

	ui := lipgloss.JoinVertical(lipgloss.Left, header, canvas, footer)
	return appStyle.Render(ui)
}

func (m Model) renderHelp() string {
	if !m.helpVisible {
		return ""
	}
	return "  " + m.help.View(m.keys)
}
