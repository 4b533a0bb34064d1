package viz

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/san-kum/hopsim/internal/analysis"
	"github.com/san-kum/hopsim/internal/lattice"
	"github.com/san-kum/hopsim/internal/solver"
)

const liveWidth = 78

var (
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true).MarginBottom(1)
	barStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("49")).Padding(1, 2)
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(12)
	valueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	warnStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Bold(true)
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(1)
)

type TickMsg time.Time

// Live animates a hopping run column by column at a fixed frame rate.
type Live struct {
	stepper   solver.Stepper
	initial   lattice.Distribution
	current   lattice.Distribution
	scratch   lattice.Distribution
	rate, dt  float64
	t         float64
	step      int
	maxSteps  int
	frameRate int
	running   bool
	done      bool
}

func NewLive(stepper solver.Stepper, init lattice.Distribution, rate, dt float64, steps, frameRate int) Live {
	if frameRate <= 0 {
		frameRate = 30
	}
	return Live{
		stepper:   stepper,
		initial:   init.Clone(),
		current:   init.Clone(),
		scratch:   make(lattice.Distribution, len(init)),
		rate:      rate,
		dt:        dt,
		maxSteps:  steps,
		frameRate: frameRate,
		running:   true,
	}
}

func (m Live) tick() tea.Cmd {
	return tea.Tick(time.Second/time.Duration(m.frameRate), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

func (m Live) Init() tea.Cmd {
	return m.tick()
}

func (m Live) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.running = !m.running
		case "r":
			copy(m.current, m.initial)
			m.t = 0
			m.step = 0
			m.done = false
		}
		return m, nil

	case TickMsg:
		if m.running && !m.done {
			m.stepper.Step(m.scratch, m.current, m.rate, m.dt)
			m.current, m.scratch = m.scratch, m.current
			m.step++
			m.t += m.dt
			if m.maxSteps > 0 && m.step >= m.maxSteps-1 {
				m.done = true
			}
		}
		return m, m.tick()
	}

	return m, nil
}

func (m Live) View() string {
	var b strings.Builder

	b.WriteString(headerStyle.Render("hopsim — 1D diffusion master equation"))
	b.WriteString("\n")
	b.WriteString(barStyle.Render(Bars(m.current, liveWidth)))
	b.WriteString("\n")

	stat := func(label string, format string, v float64) {
		b.WriteString(labelStyle.Render(label))
		b.WriteString(valueStyle.Render(fmt.Sprintf(format, v)))
		b.WriteString("\n")
	}
	stat("time", "%.3f", m.t)
	stat("step", "%.0f", float64(m.step))
	stat("mass", "%.6f", m.current.Sum())
	stat("variance", "%.3f", analysis.Variance(m.current))
	stat("entropy", "%.3f", analysis.Entropy(m.current))

	if !solver.IsStable(m.rate, m.dt) {
		b.WriteString(warnStyle.Render(fmt.Sprintf("unstable: k*dt = %.2f > 0.5", m.rate*m.dt)))
		b.WriteString("\n")
	}
	if m.done {
		b.WriteString(valueStyle.Render("run complete"))
		b.WriteString("\n")
	}

	b.WriteString(helpStyle.Render("space pause · r reset · q quit"))
	b.WriteString("\n")
	return b.String()
}

// RunLive blocks until the user quits the live view.
func RunLive(stepper solver.Stepper, init lattice.Distribution, rate, dt float64, steps, frameRate int) error {
	p := tea.NewProgram(NewLive(stepper, init, rate, dt, steps, frameRate))
	_, err := p.Run()
	return err
}
