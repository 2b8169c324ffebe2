package viz

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/butterfly/internal/view"
)

const (
	animWidth  = 78
	animHeight = 16
)

var (
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true).MarginBottom(1)
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(1)
)

type TickMsg time.Time

// Model animates a composed view set frame by frame: each tick reveals the
// next prefix, cycling through the view kinds with tab.
type Model struct {
	views   *view.Views
	mode    view.Kind
	frame   int
	running bool
	camera  *Camera
	fps     int
}

func NewModel(views *view.Views, fps int) Model {
	if fps <= 0 {
		fps = 10
	}
	return Model{
		views:   views,
		mode:    view.KindPortrait,
		running: true,
		camera:  NewCamera(),
		fps:     fps,
	}
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(time.Second/time.Duration(m.fps), func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m Model) Init() tea.Cmd { return m.tick() }

func (m Model) current() view.ViewSpec {
	switch m.mode {
	case view.KindTime:
		return m.views.Time
	case view.KindPlane:
		return m.views.Plane
	default:
		return m.views.Portrait
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.running = !m.running
		case "r":
			m.frame = 0
		case "tab":
			switch m.mode {
			case view.KindPortrait:
				m.mode = view.KindTime
			case view.KindTime:
				m.mode = view.KindPlane
			default:
				m.mode = view.KindPortrait
			}
			m.frame = 0
		case "x":
			m.camera.RotateX(0.1)
		case "X":
			m.camera.RotateX(-0.1)
		case "y":
			m.camera.RotateY(0.1)
		case "Y":
			m.camera.RotateY(-0.1)
		case "z":
			m.camera.RotateZ(0.1)
		case "Z":
			m.camera.RotateZ(-0.1)
		case "+", "=":
			m.camera.ZoomIn()
		case "-", "_":
			m.camera.ZoomOut()
		}
	case TickMsg:
		if m.running {
			frames := m.current().Frames
			if m.frame < len(frames)-1 {
				m.frame++
			}
			if m.mode == view.KindPortrait {
				// Idle rotation keeps depth readable while revealing.
				m.camera.RotateY(0.01)
			}
		}
		return m, m.tick()
	}
	return m, nil
}

func (m Model) View() string {
	spec := m.current()
	if len(spec.Frames) == 0 || len(spec.Panels) == 0 {
		return "no frames"
	}
	if m.frame >= len(spec.Frames) {
		m.frame = len(spec.Frames) - 1
	}
	prefix := spec.Frames[m.frame].PrefixLen

	var sb strings.Builder
	sb.WriteString(headerStyle.Render("THE BUTTERFLY EFFECT") + "\n")
	sb.WriteString(statusStyle.Render(fmt.Sprintf("view: %s  frame %d/%d  samples %d",
		spec.Kind, m.frame+1, len(spec.Frames), prefix)) + "\n\n")

	switch m.mode {
	case view.KindTime:
		for _, p := range spec.Panels {
			sb.WriteString(RenderTimePanel(p, animWidth, 6, prefix))
			sb.WriteString("\n")
		}
	case view.KindPlane:
		for _, p := range spec.Panels {
			sb.WriteString(RenderPlanePanel(p, animWidth/2, 8, prefix))
			sb.WriteString("\n")
		}
	default:
		p := spec.Panels[0]
		sb.WriteString(RenderPortraitPanel(p, m.camera, animWidth, animHeight, prefix))
		sb.WriteString(Legend(p) + "\n")
	}

	sb.WriteString(helpStyle.Render("SP:Pause R:Restart Tab:View X/Y/Z:Rotate +/-:Zoom Q:Quit"))
	return sb.String()
}
