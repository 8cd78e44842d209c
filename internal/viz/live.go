package viz

import (
	"fmt"
	"io"
	"math"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/san-kum/planeview/internal/feed"
	"github.com/san-kum/planeview/internal/log"
)

const (
	width           = 80
	height          = 24
	historyCapacity = 200
	orbitStep       = 5 * deg
)

type (
	lineMsg    string
	eofMsg     struct{}
	readErrMsg struct{ err error }
	nextMsg    struct{}
)

// LiveModel is the bubbletea program behind the live view. Reading is a
// chain of commands: a line is only requested once the previous one has
// been handled and the pause has elapsed.
type LiveModel struct {
	reader   *feed.Reader
	pause    time.Duration
	render   *Renderer
	styles   styles
	log      log.Logger
	stats    feed.Stats
	phi      []float64
	err      error
	done     bool
	showHelp bool
}

// NewLiveModel reads records from r.
func NewLiveModel(r io.Reader, lg log.Logger) LiveModel {
	rd := NewRenderer(width, height)
	return LiveModel{
		reader: feed.NewReader(r),
		pause:  feed.DefaultPause,
		render: rd,
		styles: newStyles(rd.Theme),
		log:    lg,
		phi:    make([]float64, 0, historyCapacity),
	}
}

// Err returns the error that stopped the feed, if any.
func (m LiveModel) Err() error { return m.err }

// Stats returns the feed counters.
func (m LiveModel) Stats() feed.Stats { return m.stats }

func (m LiveModel) Init() tea.Cmd { return m.read() }

func (m LiveModel) read() tea.Cmd {
	rd := m.reader
	return func() tea.Msg {
		line, err := rd.Next()
		if err == io.EOF {
			return eofMsg{}
		}
		if err != nil {
			return readErrMsg{err}
		}
		return lineMsg(line)
	}
}

func (m LiveModel) next() tea.Cmd {
	if m.pause <= 0 {
		return m.read()
	}
	return tea.Tick(m.pause, func(time.Time) tea.Msg { return nextMsg{} })
}

// Update handles feed messages and key presses.
func (m LiveModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case lineMsg:
		return m.handleLine(string(msg))
	case nextMsg:
		return m, m.read()
	case eofMsg:
		m.done = true
		m.log.Debugf("end of input after %d lines, %d frames", m.stats.Lines, m.stats.Frames)
		return m, tea.Quit
	case readErrMsg:
		m.err = fmt.Errorf("feed: read: %w", msg.err)
		return m, tea.Quit
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "left", "h":
			m.render.Camera.Orbit(-orbitStep, 0)
		case "right", "l":
			m.render.Camera.Orbit(orbitStep, 0)
		case "up", "k":
			m.render.Camera.Orbit(0, orbitStep)
		case "down", "j":
			m.render.Camera.Orbit(0, -orbitStep)
		case "+", "=":
			m.render.Camera.ZoomIn()
		case "-", "_":
			m.render.Camera.ZoomOut()
		case "t":
			m.render.Theme = NextTheme(m.render.Theme)
			m.styles = newStyles(m.render.Theme)
		case "?":
			m.showHelp = !m.showHelp
		default:
			return m, nil
		}
		m.render.Redraw()
	}
	return m, nil
}

func (m LiveModel) handleLine(line string) (tea.Model, tea.Cmd) {
	m.stats.Lines++
	s, ok, err := feed.Decode(line)
	if err != nil {
		m.err = fmt.Errorf("feed: line %d: %w", m.stats.Lines, err)
		return m, tea.Quit
	}
	if !ok {
		m.stats.Skipped++
		m.log.WithField("line", m.stats.Lines).Debugf("skipped record with wrong field count")
		return m, m.read()
	}
	if err := m.render.Draw(s); err != nil {
		m.err = fmt.Errorf("feed: draw: %w", err)
		return m, tea.Quit
	}
	m.stats.Frames++
	m.phi = pushHistory(m.phi, s.Phi)
	return m, m.next()
}

// View renders the canvas beside the stats panel.
func (m LiveModel) View() string {
	st := m.styles
	canvasView := st.canvas.Render(m.render.Canvas.Render())

	var s strings.Builder
	title := "waiting for data"
	sc, drawn := m.render.Last()
	if drawn {
		title = sc.Title
	}
	s.WriteString(st.header.Render(title) + "\n")

	if drawn {
		s.WriteString(st.label.Render("P") + st.value.Render(vecString(sc.P.Pos)) + "\n")
		s.WriteString(st.label.Render("Q") + st.value.Render(vecString(sc.Q.Pos)) + "\n")
		s.WriteString(st.label.Render("center") + st.value.Render(vecString(sc.Center)) + "\n")
	}
	s.WriteString(st.label.Render("frames") + st.value.Render(fmt.Sprintf("%d", m.stats.Frames)) + "\n")
	s.WriteString(st.label.Render("skipped") + st.value.Render(fmt.Sprintf("%d", m.stats.Skipped)) + "\n")

	if len(m.phi) > 1 {
		chart := asciigraph.Plot(m.phi, asciigraph.Height(5), asciigraph.Width(30), asciigraph.Caption("phi"))
		s.WriteString(st.graph.Render(chart) + "\n")
	}
	if m.err != nil {
		s.WriteString(st.err.Render(m.err.Error()) + "\n")
	} else if m.done {
		s.WriteString(st.value.Render("end of input") + "\n")
	}

	help := "Q:Quit ?:Help"
	if m.showHelp {
		help = "←/→ orbit  ↑/↓ tilt\n+/- zoom  T theme\nQ quit  ? hide help"
	}
	s.WriteString(st.help.Render(help))

	return lipgloss.JoinHorizontal(lipgloss.Top, canvasView, st.stats.Render(s.String()))
}

// pushHistory appends a finite phi, keeping at most historyCapacity values.
// Infinite and NaN values are left out of the chart.
func pushHistory(h []float64, phi float64) []float64 {
	if math.IsInf(phi, 0) || math.IsNaN(phi) {
		return h
	}
	h = append(h, phi)
	if len(h) > historyCapacity {
		h = h[1:]
	}
	return h
}

func vecString(v r3.Vec) string {
	return fmt.Sprintf("(%.2f, %.2f, %.2f)", v.X, v.Y, v.Z)
}
