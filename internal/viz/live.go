package viz

import (
	"fmt"
	"math"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/piblocks/internal/config"
	"github.com/san-kum/piblocks/internal/sim"
)

const (
	width           = 80
	height          = 24
	historyCapacity = 240

	// World-to-canvas mapping: the wall sits a few sub-pixels in from the
	// left edge and worldWidth units span the drawable area.
	worldWidth = 1200.0
	wallX      = 4
)

var (
	canvasStyle   = lipgloss.NewStyle().Padding(1, 2)
	statsStyle    = lipgloss.NewStyle().Border(lipgloss.NormalBorder(), false, false, false, true).BorderForeground(lipgloss.Color("240")).Padding(1, 2).Width(40)
	headerStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true).MarginBottom(1)
	counterStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true)
	labelStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(12)
	valueStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	activeStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true)
	finishedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true)
	graphStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("49")).Padding(1, 0)
	helpStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(2)
)

type TickMsg time.Time

// Model drives the engine once per animation tick and renders its read-only
// state. The bubbletea event loop serializes ticks, so Advance is never
// re-entered.
type Model struct {
	drv    *sim.Driver
	canvas *Canvas
	fps    int
	dt     float64
	t      float64
	paused bool

	velHistory []float64

	// Pending parameters, applied on the next reset.
	mass     float64
	velocity float64
	selected int
}

// NewModel builds the live view around a fresh driver for cfg.
func NewModel(cfg *config.Config) (Model, error) {
	if err := cfg.Validate(); err != nil {
		return Model{}, err
	}
	drv, err := sim.NewDriver(sim.Config{
		Mass:     cfg.MassLarge,
		Velocity: cfg.VelocityLarge,
		Dt:       1.0 / float64(cfg.FPS),
		Duration: cfg.Duration,
	})
	if err != nil {
		return Model{}, err
	}
	return Model{
		drv:        drv,
		canvas:     NewCanvas(width, height),
		fps:        cfg.FPS,
		dt:         1.0 / float64(cfg.FPS),
		velHistory: make([]float64, 0, historyCapacity),
		mass:       cfg.MassLarge,
		velocity:   cfg.VelocityLarge,
	}, nil
}

func (m Model) Init() tea.Cmd {
	return m.tick()
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(time.Second/time.Duration(m.fps), func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.paused = !m.paused
		case "r":
			m.reset()
		case "tab":
			m.selected = (m.selected + 1) % 2
		case "up", "k":
			m.adjustParam(1)
		case "down", "j":
			m.adjustParam(-1)
		}
	case TickMsg:
		if !m.paused {
			m.step()
		}
		return m, m.tick()
	}
	return m, nil
}

// step advances the engine by one frame. The engine resolves every collision
// inside the frame itself, so nothing here depends on the tick rate.
func (m *Model) step() {
	if err := m.drv.Engine().Advance(m.dt); err != nil {
		return
	}
	m.t += m.dt

	m.velHistory = append(m.velHistory, m.drv.Engine().VelocitySmall())
	if len(m.velHistory) > historyCapacity {
		m.velHistory = m.velHistory[1:]
	}
}

// reset replaces the engine wholesale with the tuned parameters, matching
// the reconfiguration contract: no partial updates of a live engine.
func (m *Model) reset() {
	cfg := m.drv.Config()
	cfg.Mass = m.mass
	cfg.Velocity = m.velocity
	if err := m.drv.Reset(cfg); err != nil {
		return
	}
	m.t = 0
	m.velHistory = m.velHistory[:0]
}

func (m *Model) adjustParam(dir int) {
	switch m.selected {
	case 0:
		if dir > 0 {
			m.mass *= 100
		} else if m.mass >= 100 {
			m.mass /= 100
		}
	case 1:
		m.velocity -= float64(dir) * 10
	}
}

func (m *Model) draw() {
	m.canvas.Clear()
	eng := m.drv.Engine()

	cw, ch := m.canvas.Width*2, m.canvas.Height*4
	groundY := ch - 8
	scale := float64(cw-wallX) / worldWidth

	// Wall and floor.
	m.canvas.DrawLine(wallX, 4, wallX, groundY)
	m.canvas.DrawLine(wallX, groundY, cw-1, groundY)

	// Small block.
	sx := wallX + int(eng.PositionSmall()*scale)
	sw := int(eng.WidthSmall() * scale)
	if sw < 4 {
		sw = 4
	}
	m.canvas.FillRect(sx, groundY-sw, sx+sw, groundY-1)

	// Large block, log-scaled so huge masses stay on screen.
	sizeScale := 20.0
	if eng.MassLarge() > 1 {
		sizeScale = math.Log10(eng.MassLarge()) * 20
	}
	size := math.Max(80, math.Min(250, 50+sizeScale))
	lx := wallX + int(eng.PositionLarge()*scale)
	lw := int(size * scale)
	if lw < 6 {
		lw = 6
	}
	m.canvas.FillRect(lx, groundY-lw, lx+lw, groundY-1)
}

func (m Model) View() string {
	m.draw()
	eng := m.drv.Engine()

	var s strings.Builder
	s.WriteString(headerStyle.Render("COLLIDING BLOCKS") + "\n")

	status := "RUNNING"
	if m.paused {
		status = "PAUSED"
	}
	if eng.Finished() {
		status = finishedStyle.Render("FINISHED")
	}
	s.WriteString(status + "\n\n")

	s.WriteString(counterStyle.Render(fmt.Sprintf("collisions  %d", eng.Collisions())) + "\n")
	s.WriteString(labelStyle.Render("theoretical") + valueStyle.Render(fmt.Sprintf("%d", sim.TheoreticalCount(eng.MassLarge()))) + "\n\n")

	s.WriteString(labelStyle.Render("time") + valueStyle.Render(fmt.Sprintf("%.2fs", m.t)) + "\n")
	s.WriteString(labelStyle.Render("v large") + valueStyle.Render(fmt.Sprintf("%+.2f", eng.VelocityLarge())) + "\n")
	s.WriteString(labelStyle.Render("v small") + valueStyle.Render(fmt.Sprintf("%+.2f", eng.VelocitySmall())) + "\n")
	s.WriteString(labelStyle.Render("energy") + valueStyle.Render(fmt.Sprintf("%.1f", eng.KineticEnergy())) + "\n")

	if len(m.velHistory) > 1 {
		chart := asciigraph.Plot(m.velHistory, asciigraph.Height(4), asciigraph.Width(30), asciigraph.Caption("v small"))
		s.WriteString(graphStyle.Render(chart) + "\n")
	}

	s.WriteString("\nNEXT RESET\n")
	params := []struct {
		name  string
		value string
	}{
		{"mass", fmt.Sprintf("%.0f", m.mass)},
		{"velocity", fmt.Sprintf("%+.1f", m.velocity)},
	}
	for i, p := range params {
		line := fmt.Sprintf("%-10s %s", p.name, p.value)
		if i == m.selected {
			s.WriteString(activeStyle.Render("> "+line) + "\n")
		} else {
			s.WriteString("  " + labelStyle.Render(line) + "\n")
		}
	}

	s.WriteString(helpStyle.Render("\n──────────────────\nSP:Pause R:Reset Q:Quit\nTab:Select ↑↓:Tune"))

	canvasView := canvasStyle.Render(m.canvas.String())
	statsView := statsStyle.Render(s.String())
	return lipgloss.JoinHorizontal(lipgloss.Top, canvasView, statsView)
}
