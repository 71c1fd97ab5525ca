package viz

import (
	"fmt"
	"sort"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/jsperk/chaoslab/internal/clock"
	"github.com/jsperk/chaoslab/internal/dynamo"
)

const (
	canvasWidth  = 60
	canvasHeight = 22
	graphWindow  = 120
)

type TickMsg time.Time

// phaseAxes picks the two state components projected onto the trail
// canvas: Lorenz shows x-z, the Brusselator its X-Y concentration plane.
func phaseAxes(system string) (int, int) {
	if system == "lorenz" {
		return 0, 2
	}
	return 0, 1
}

// Model is the bubbletea model for the live view. Each frame tick
// advances the clock once and re-renders from its snapshot; parameter
// edits land on the system directly and take effect at the next tick
// without rebuilding anything.
type Model struct {
	clk    *clock.Clock
	system string
	fps    int

	canvas        *Canvas
	params        map[string]float64
	initialParams map[string]float64
	paramKeys     []string
	selected      int
	showHelp      bool
}

func NewModel(clk *clock.Clock, system string, fps int) Model {
	if fps <= 0 {
		fps = 30
	}

	params := make(map[string]float64)
	if cfg, ok := clk.System().(dynamo.Configurable); ok {
		for k, v := range cfg.GetParams() {
			params[k] = v
		}
	}
	keys := make([]string, 0, len(params))
	initial := make(map[string]float64, len(params))
	for k, v := range params {
		keys = append(keys, k)
		initial[k] = v
	}
	sort.Strings(keys)

	return Model{
		clk:           clk,
		system:        system,
		fps:           fps,
		canvas:        NewCanvas(canvasWidth, canvasHeight),
		params:        params,
		initialParams: initial,
		paramKeys:     keys,
	}
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(time.Second/time.Duration(m.fps), func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m Model) Init() tea.Cmd {
	return m.tick()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.clk.Toggle()
		case "r":
			m.reset()
		case "tab":
			m.cycleParam()
		case "up", "k":
			m.adjustParam(1.05)
		case "down", "j":
			m.adjustParam(0.95)
		case "+", "=":
			m.clk.SetSpeed(m.clk.Speed() * 1.25)
		case "-", "_":
			m.clk.SetSpeed(m.clk.Speed() / 1.25)
		case "?":
			m.showHelp = !m.showHelp
		}
	case TickMsg:
		m.clk.Tick()
		return m, m.tick()
	}
	return m, nil
}

func (m *Model) cycleParam() {
	if len(m.paramKeys) == 0 {
		return
	}
	m.selected = (m.selected + 1) % len(m.paramKeys)
}

func (m *Model) adjustParam(factor float64) {
	if len(m.paramKeys) == 0 {
		return
	}
	key := m.paramKeys[m.selected]
	val := m.params[key] * factor
	m.params[key] = val
	if cfg, ok := m.clk.System().(dynamo.Configurable); ok {
		cfg.SetParam(key, val)
	}
}

func (m *Model) reset() {
	m.clk.Reset()
	if cfg, ok := m.clk.System().(dynamo.Configurable); ok {
		for k, v := range m.initialParams {
			m.params[k] = v
			cfg.SetParam(k, v)
		}
	}
}

func (m Model) View() string {
	snap := m.clk.Snapshot()

	ax, ay := phaseAxes(m.system)
	xs := make([]float64, 0, len(snap.Trail))
	ys := make([]float64, 0, len(snap.Trail))
	for i, s := range snap.Trail {
		switch {
		case len(s) == 1:
			// Scalar systems have no phase plane; show the value
			// against its position in the trail instead.
			xs = append(xs, float64(i))
			ys = append(ys, s[0])
		case ax < len(s) && ay < len(s):
			xs = append(xs, s[ax])
			ys = append(ys, s[ay])
		}
	}
	m.canvas.Clear()
	m.canvas.PlotXY(xs, ys)
	canvasView := canvasStyle.Render(m.canvas.String())

	var s strings.Builder
	s.WriteString(headerStyle.Render(strings.ToUpper(m.system)) + "\n")
	status := "RUNNING"
	if !snap.Running {
		status = "PAUSED"
	}
	s.WriteString(status + "\n\n")

	if series := m.clk.Trail().Component(ax); len(series) > 1 {
		if len(series) > graphWindow {
			series = series[len(series)-graphWindow:]
		}
		chart := asciigraph.Plot(series, asciigraph.Height(4), asciigraph.Width(30))
		s.WriteString(graphStyle.Render(chart) + "\n\n")
	}

	s.WriteString(labelStyle.Render("Time") + valueStyle.Render(fmt.Sprintf("%.2fs", snap.T)) + "\n")
	s.WriteString(labelStyle.Render("Speed") + valueStyle.Render(fmt.Sprintf("%.2fx", m.clk.Speed())) + "\n")
	s.WriteString(labelStyle.Render("Trail") + valueStyle.Render(fmt.Sprintf("%d/%d", m.clk.Trail().Len(), m.clk.Trail().Cap())) + "\n")
	for i, v := range snap.State {
		s.WriteString(labelStyle.Render(fmt.Sprintf("x%d", i)) + valueStyle.Render(fmt.Sprintf("%+.4f", v)) + "\n")
	}

	s.WriteString("\nPARAMETERS\n")
	if len(m.paramKeys) == 0 {
		s.WriteString(labelStyle.Render("  (none)") + "\n")
	}
	for i, k := range m.paramKeys {
		line := fmt.Sprintf("%-6s %.4f", k, m.params[k])
		if i == m.selected {
			s.WriteString(activeParamStyle.Render("> "+line) + "\n")
		} else {
			s.WriteString("  " + labelStyle.Render(line) + "\n")
		}
	}

	s.WriteString(helpStyle.Render("\nSP:Pause R:Reset Q:Quit\nTab:Select ↑↓:Tune +/-:Speed ?:Help"))

	stats := statsStyle.Render(s.String())
	main := lipgloss.JoinHorizontal(lipgloss.Top, canvasView, stats)

	if m.showHelp {
		help := strings.Join([]string{
			"Space  pause/resume",
			"R      reset state, trail and parameters",
			"Tab    select parameter",
			"Up/K   selected parameter +5%",
			"Down/J selected parameter -5%",
			"+/-    speed multiplier",
			"Q      quit",
		}, "\n")
		return helpStyle.Render(help) + "\n\n" + main
	}
	return main
}

// Run starts the live view and blocks until the user quits.
func Run(clk *clock.Clock, system string, fps int) error {
	p := tea.NewProgram(NewModel(clk, system, fps))
	_, err := p.Run()
	return err
}
