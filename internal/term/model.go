package term

import (
	"fmt"
	"math/rand"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/okachamie/portfolio/internal/starfield"
)

// DefaultInterval is about 30 frames per second; terminals redraw slower
// than displays.
const DefaultInterval = time.Second / 30

// frameMsg pumps the frame queue.
type frameMsg time.Time

var statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("51"))

// Options configures a Model.
type Options struct {
	Seed       int64
	Interval   time.Duration
	ShowStatus bool
}

// Model is the Bubble Tea model hosting one animator.
type Model struct {
	viewport *starfield.Signal
	frames   *starfield.FrameQueue
	canvas   *Canvas
	anim     *starfield.Animator

	interval   time.Duration
	showStatus bool
	ready      bool
}

// New returns a model that mounts on the first window size message.
func New(opts Options) Model {
	if opts.Interval <= 0 {
		opts.Interval = DefaultInterval
	}
	m := Model{
		viewport:   starfield.NewSignal(0, 0),
		frames:     &starfield.FrameQueue{},
		canvas:     NewCanvas(),
		interval:   opts.Interval,
		showStatus: opts.ShowStatus,
	}
	m.anim = starfield.New(m.canvas, m.viewport, m.frames,
		starfield.WithSource(rand.NewSource(opts.Seed)))
	return m
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		rows := msg.Height
		if m.showStatus {
			rows--
		}
		m.viewport.Set(msg.Width*CellWidth, max(rows, 0)*CellHeight)
		if !m.ready {
			m.ready = true
			m.anim.Mount()
			return m, m.tick()
		}
		return m, nil

	case frameMsg:
		m.frames.Run()
		if m.frames.Pending() > 0 {
			return m, m.tick()
		}
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			m.anim.Unmount()
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m Model) View() string {
	if !m.ready {
		return ""
	}
	view := m.canvas.Render()
	if m.showStatus {
		w, h := m.anim.Size()
		view += "\n" + statusStyle.Render(fmt.Sprintf("%d stars  %dx%d px  frame %d  q to quit",
			len(m.anim.Stars()), w, h, m.anim.Frames()))
	}
	return view
}

// Animator exposes the hosted animator.
func (m Model) Animator() *starfield.Animator { return m.anim }

func (m Model) tick() tea.Cmd {
	return tea.Tick(m.interval, func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}
