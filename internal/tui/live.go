// Package tui is the terminal live view of an annealing run.
package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/spinlab/internal/anneal"
	"github.com/san-kum/spinlab/internal/observe"
	"github.com/san-kum/spinlab/internal/render"
	"github.com/san-kum/spinlab/internal/schedule"
	"github.com/san-kum/spinlab/internal/zn"
)

const (
	maxCells     = 44  // widest lattice window the view draws without sampling
	chartHistory = 120 // sweeps shown in the observable charts
)

type TickMsg time.Time

// Model drives one sweep per frame and renders the lattice alongside the
// running observables.
type Model struct {
	params  zn.Params
	sched   schedule.Schedule
	model   *zn.Model
	acc     *observe.Accumulator
	step    int
	running bool

	recording bool
	recorder  *render.GIFRecorder
	gifPath   string
	cellSize  int
	fps       int

	cellStyles []lipgloss.Style
	showHelp   bool
}

// NewModel builds the live view for one parameter set and schedule.
func NewModel(p zn.Params, sched schedule.Schedule, cellSize, fps int, gifPath string) (Model, error) {
	if fps < 1 {
		fps = 30
	}
	if gifPath == "" {
		gifPath = "spinlab.gif"
	}
	m, err := zn.New(p)
	if err != nil {
		return Model{}, err
	}
	return Model{
		params:     p,
		sched:      sched,
		model:      m,
		acc:        observe.NewAccumulator(m.Sites()),
		running:    true,
		gifPath:    gifPath,
		cellSize:   cellSize,
		fps:        fps,
		cellStyles: cellStyles(p.States),
	}, nil
}

// cellStyles maps each clock state to a foreground style from the render
// palette, so the terminal and the exported frames agree on colors.
func cellStyles(states int) []lipgloss.Style {
	pal := render.Palette(states)
	styles := make([]lipgloss.Style, states)
	for s := range styles {
		r, g, b, _ := pal[s].RGBA()
		hex := fmt.Sprintf("#%02x%02x%02x", uint8(r>>8), uint8(g>>8), uint8(b>>8))
		styles[s] = lipgloss.NewStyle().Foreground(lipgloss.Color(hex))
	}
	return styles
}

func (m Model) Init() tea.Cmd {
	return m.tick()
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(time.Second/time.Duration(m.fps), func(t time.Time) tea.Msg { return TickMsg(t) })
}

// Update handles input events and advances the run one sweep per tick.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			if m.recording {
				m.recorder.Save(m.gifPath)
			}
			return m, tea.Quit
		case " ":
			m.running = !m.running
		case "r":
			m.reset()
		case "g":
			if m.recording {
				m.recorder.Save(m.gifPath)
				m.recording = false
				m.recorder = nil
			} else {
				m.recording = true
				m.recorder = render.NewGIFRecorder(m.params.States, m.cellSize, 1, m.fps)
			}
		case "?":
			m.showHelp = !m.showHelp
		}
	case TickMsg:
		if m.running && !m.done() {
			t := m.sched[m.step]
			m.model.SetTemperature(t)
			m.model.Sweep()
			m.acc.Observe(t, m.model.Energy(), m.model.Magnetization())
			if m.recording {
				m.recorder.OnPass(anneal.Pass{Index: m.step, Lattice: m.model.Lattice()})
			}
			m.step++
		}
		return m, m.tick()
	}
	return m, nil
}

func (m Model) done() bool { return m.step >= len(m.sched) }

// reset rebuilds the model from its original parameters; the seed is kept,
// so the rerun replays the same trajectory.
func (m *Model) reset() {
	model, err := zn.New(m.params)
	if err != nil {
		return
	}
	m.model = model
	m.acc = observe.NewAccumulator(model.Sites())
	m.step = 0
}

// View renders the lattice panel next to the stats panel.
func (m Model) View() string {
	latticeView := latticeStyle.Render(m.renderLattice())
	statsView := statsStyle.Render(m.renderStats())
	mainView := lipgloss.JoinHorizontal(lipgloss.Top, latticeView, statsView)
	if m.showHelp {
		return helpScreen + "\n\n" + mainView
	}
	return mainView
}

// renderLattice draws the grid as colored blocks, sampling by a fixed
// stride when the lattice is wider than the view window.
func (m Model) renderLattice() string {
	lat := m.model.Lattice()
	size := lat.Size()
	stride := (size + maxCells - 1) / maxCells

	var sb strings.Builder
	for y := 0; y < size; y += stride {
		for x := 0; x < size; x += stride {
			sb.WriteString(m.cellStyles[lat.At(x, y)].Render("██"))
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

func (m Model) renderStats() string {
	var s strings.Builder
	s.WriteString(headerStyle.Render(fmt.Sprintf("Z%d CLOCK MODEL  L=%d", m.model.States(), m.model.Size())) + "\n")

	status := "RUNNING"
	switch {
	case m.done():
		status = "DONE"
	case !m.running:
		status = "PAUSED"
	}
	if m.recording {
		status += recordingStyle.Render("  ● REC")
	}
	s.WriteString(status + "\n\n")

	if energies := tail(m.acc.Energies(), chartHistory); len(energies) > 1 {
		chart := asciigraph.Plot(energies, asciigraph.Height(4), asciigraph.Width(36), asciigraph.Caption("Energy"))
		s.WriteString(graphStyle.Render(chart) + "\n")
	}
	if mags := tail(m.acc.Magnetizations(), chartHistory); len(mags) > 1 {
		chart := asciigraph.Plot(mags, asciigraph.Height(4), asciigraph.Width(36), asciigraph.Caption("Magnetization"))
		s.WriteString(graphStyle.Render(chart) + "\n\n")
	}

	temp := 0.0
	if m.step > 0 {
		temp = m.sched[m.step-1]
	} else if len(m.sched) > 0 {
		temp = m.sched[0]
	}
	s.WriteString(labelStyle.Render("Sweep") + valueStyle.Render(fmt.Sprintf("%d / %d", m.step, len(m.sched))) + "\n")
	s.WriteString(labelStyle.Render("Temp") + valueStyle.Render(fmt.Sprintf("%.4f", temp)) + "\n")
	s.WriteString(labelStyle.Render("Energy") + valueStyle.Render(fmt.Sprintf("%.1f", m.model.Energy())) + "\n")
	s.WriteString(labelStyle.Render("Magnet") + valueStyle.Render(fmt.Sprintf("%d", m.model.Magnetization())) + "\n")
	if heat, ok := m.acc.SpecificHeat(); ok {
		s.WriteString(labelStyle.Render("Spec heat") + valueStyle.Render(fmt.Sprintf("%.4g", heat)) + "\n")
	}
	if susc, ok := m.acc.Susceptibility(); ok {
		s.WriteString(labelStyle.Render("Suscept") + valueStyle.Render(fmt.Sprintf("%.4g", susc)) + "\n")
	}
	s.WriteString(labelStyle.Render("Accept") + valueStyle.Render(fmt.Sprintf("%.1f%%", m.model.AcceptRatio()*100)) + "\n")

	s.WriteString(helpStyle.Render("\n─────────────────────\nSP:Pause R:Reset Q:Quit\nG:Record ?:Help"))
	return s.String()
}

func tail(vs []float64, n int) []float64 {
	if len(vs) <= n {
		return vs
	}
	return vs[len(vs)-n:]
}

const helpScreen = `
╔══════════════════════════════════════╗
║          KEYBOARD SHORTCUTS          ║
╠══════════════════════════════════════╣
║  Space    - Pause/Resume annealing   ║
║  R        - Reset (replays the run)  ║
║  G        - Toggle GIF recording     ║
║  Q        - Quit                     ║
║  ?        - Toggle this help         ║
╚══════════════════════════════════════╝`
