package tui

import (
	"log"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"donut/internal/term"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		log.Printf("tui: resize %dx%d", msg.Width, msg.Height)
		if msg.Height-chromeRows < term.MinRows {
			m.status = tooSmall
		} else if m.status == tooSmall {
			m.status = ""
		}
		m.renderFrame()
	case tickMsg:
		m.advance()
		m.renderFrame()
		return m, m.tick()
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			log.Printf("tui: quit after %d frames", m.frames)
			return m, tea.Quit
		case key.Matches(msg, m.keys.Pause):
			m.paused = !m.paused
			if m.paused {
				m.status = "paused"
			} else {
				m.status = "running"
			}
		case key.Matches(msg, m.keys.Faster):
			m.setSpeed(m.speed * 1.5)
		case key.Matches(msg, m.keys.Slower):
			m.setSpeed(m.speed / 1.5)
		case key.Matches(msg, m.keys.Reset):
			m.a, m.b = 0, 0
			m.speed = 1.0
			m.status = "orientation reset"
			m.renderFrame()
		case key.Matches(msg, m.keys.Mode):
			m.cfg.Braille = !m.cfg.Braille
			if m.cfg.Braille {
				m.status = "braille"
			} else {
				m.status = "ascii"
			}
			m.renderFrame()
		case key.Matches(msg, m.keys.Help):
			m.helpVisible = !m.helpVisible
		}
	}
	return m, nil
}
