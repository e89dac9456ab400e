package tui

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"donut/internal/term"
)

const (
	minSpeed = 0.25
	maxSpeed = 8.0
)

type tickMsg time.Time

type Model struct {
	width  int
	height int

	cfg term.Config

	// orientation
	a, b   float64
	speed  float64
	paused bool

	// last rendered frame
	frame      string
	frameW     int
	frameH     int
	frames     int
	renderTime time.Duration

	status string

	keys        keyMap
	help        help.Model
	helpVisible bool
}

func New(cfg term.Config) Model {
	m := Model{
		cfg:         cfg,
		speed:       1.0,
		status:      "donut ready",
		keys:        defaultKeys(),
		help:        help.New(),
		helpVisible: true,
	}
	m.help.Styles.ShortKey = dimStyle.Bold(true)
	m.help.Styles.ShortDesc = dimStyle
	m.help.Styles.ShortSeparator = dimStyle
	return m
}

func (m Model) Init() tea.Cmd { return m.tick() }

func (m Model) tick() tea.Cmd {
	return tea.Tick(m.cfg.FrameDelay, func(t time.Time) tea.Msg { return tickMsg(t) })
}

// chromeRows is the header line plus the footer line.
const chromeRows = 2

const tooSmall = "window too small"

// canvasSize is the raster the torus is drawn into: the window minus header and
// footer. Below term.MinRows the canvas shrinks with the window rather than
// overflowing it.
func (m Model) canvasSize() (int, int) {
	w, h := term.Usable(m.width, m.height, nil)
	if m.height > 0 && m.height-chromeRows < h {
		h = max(1, m.height-chromeRows)
	}
	return w, h
}

func (m *Model) advance() {
	if m.paused {
		return
	}
	m.a += m.cfg.StepA * m.speed
	m.b += m.cfg.StepB * m.speed
}

func (m *Model) renderFrame() {
	w, h := m.canvasSize()
	start := time.Now()
	frame, err := term.Frame(context.Background(), m.cfg, m.a, m.b, w, h)
	if err != nil {
		log.Printf("tui: render %dx%d: %v", w, h, err)
		m.status = "render error: " + err.Error()
		return
	}
	m.frame, m.frameW, m.frameH = frame, w, h
	m.renderTime = time.Since(start)
	m.frames++
}

func (m *Model) setSpeed(s float64) {
	m.speed = min(maxSpeed, max(minSpeed, s))
	m.status = fmt.Sprintf("speed: %.2fx", m.speed)
}
