// Package app owns the root Bubble Tea model: the screen router, the
// header/footer frame, and global key handling.
package app

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/SebastianBuritica/interviewprep/internal/router"
	"github.com/SebastianBuritica/interviewprep/internal/screen"
	"github.com/SebastianBuritica/interviewprep/internal/screens/home"
	"github.com/SebastianBuritica/interviewprep/internal/screens/welcome"
	"github.com/SebastianBuritica/interviewprep/internal/ui/layout"
)

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router *router.Router
	width  int
	height int
	stats  layout.HeaderStats
}

// newAppModel starts on the welcome splash, which replaces itself with
// the home screen.
func newAppModel(deps home.Deps) AppModel {
	splash := welcome.New(func() screen.Screen {
		return home.New(deps)
	})
	return AppModel{
		router: router.New(splash),
	}
}

func (m AppModel) Init() tea.Cmd {
	return m.router.Active().Init()
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// The header shows streak and answered-today from the same query
	// the home dashboard runs.
	if stats, ok := msg.(home.StatsLoadedMsg); ok {
		m.stats = layout.HeaderStats{
			Streak:        stats.Streak,
			AnsweredToday: stats.AnsweredToday,
		}
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyPressMsg:
		// Esc is deliberately left to the screens: the drill uses it
		// for its quit confirmation.
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}

	case router.PopScreenMsg:
		cmd := m.router.Update(msg)
		if m.router.Depth() == 1 {
			refresh := func() tea.Msg { return home.RefreshMsg{} }
			if cmd == nil {
				return m, refresh
			}
			return m, tea.Batch(cmd, refresh)
		}
		return m, cmd
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	if active == nil {
		return v
	}

	// Titleless screens (the welcome splash) render without the frame.
	title := active.Title()
	if title == "" {
		v.SetContent(active.View(m.width, m.height))
		return v
	}

	header := layout.RenderHeader(title, m.stats, m.width)
	footer := layout.RenderFooter(m.footerHints(active), m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	v.SetContent(layout.RenderFrame(header, content, footer, m.width, m.height))
	return v
}

// footerHints asks the active screen for its hints, falling back to
// stack-position defaults, and always appends the quit key.
func (m AppModel) footerHints(active screen.Screen) []layout.KeyHint {
	var hints []layout.KeyHint
	if hp, ok := active.(screen.KeyHintProvider); ok {
		hints = hp.KeyHints()
	}
	if hints == nil {
		if m.router.Depth() > 1 {
			hints = []layout.KeyHint{{Key: "Esc", Description: "Back"}}
		} else {
			hints = []layout.KeyHint{
				{Key: "↑↓", Description: "Navigate"},
				{Key: "Enter", Description: "Select"},
			}
		}
	}
	return append(hints, layout.KeyHint{Key: "Ctrl+C", Description: "Quit"})
}

// Run starts the Bubble Tea program and blocks until it exits.
func Run(deps home.Deps) error {
	p := tea.NewProgram(newAppModel(deps))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run program: %w", err)
	}
	return nil
}
