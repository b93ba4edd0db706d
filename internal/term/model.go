package term

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/Faultbox/orrery/internal/logger"
	"github.com/Faultbox/orrery/internal/scene"
)

type tickMsg time.Time

var statusStyle = lipgloss.NewStyle().Faint(true)

// Model is the bubbletea model for the terminal preview. Bubbletea runs
// Update and View on one goroutine, so the scene needs no locking.
type Model struct {
	scene   *scene.Scene
	surface *Surface
	ready   bool
}

// NewModel wraps a scene for the terminal.
func NewModel(sc *scene.Scene, width, height int) Model {
	m := Model{
		scene:   sc,
		surface: NewSurface(width, height),
	}
	sc.Resize(width, height, m.surface)
	return m
}

// Init starts the animation timer.
func (m Model) Init() tea.Cmd {
	return m.tick()
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(m.scene.Animation().Interval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Update handles ticks, resizes and quit keys.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		// One row is reserved for the status line.
		h := msg.Height - 1
		m.surface.SetSize(msg.Width, h)
		m.scene.Resize(msg.Width, h, m.surface)
		m.ready = true

	case tickMsg:
		m.scene.Tick()
		return m, m.tick()
	}

	return m, nil
}

// View draws the current frame.
func (m Model) View() string {
	if m.scene.NeedsRedraw() {
		m.scene.Render(m.surface)
	}
	status := statusStyle.Render(fmt.Sprintf("angle %.1f°  ticks %d  q to quit",
		m.scene.Angle(), m.scene.Animation().Ticks()))
	return m.surface.String() + "\n" + status
}

// Run runs the preview until the user quits.
func Run(sc *scene.Scene, width, height int) error {
	log := logger.Named("term")
	log.Info("starting terminal preview", zap.Int("width", width), zap.Int("height", height))

	p := tea.NewProgram(NewModel(sc, width, height), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("terminal preview: %w", err)
	}

	log.Info("terminal preview closed", zap.Uint64("ticks", sc.Animation().Ticks()))
	return nil
}
