// Package reader displays a single study guide rendered for the
// terminal, with scrolling, and records reading activity.
package reader

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"go.uber.org/zap"

	"github.com/SebastianBuritica/interviewprep/internal/guides"
	"github.com/SebastianBuritica/interviewprep/internal/markdown"
	"github.com/SebastianBuritica/interviewprep/internal/router"
	"github.com/SebastianBuritica/interviewprep/internal/screen"
	"github.com/SebastianBuritica/interviewprep/internal/store"
	"github.com/SebastianBuritica/interviewprep/internal/ui/layout"
	"github.com/SebastianBuritica/interviewprep/internal/ui/theme"
)

// ReaderScreen renders one guide. Opening records a study "opened"
// event; leaving records "completed" once the end of the document has
// been on screen, with the seconds spent reading.
type ReaderScreen struct {
	guide    guides.Guide
	renderer *markdown.Renderer
	events   store.EventRepo
	logger   *zap.Logger

	openedAt     time.Time
	scrollOffset int
	reachedEnd   bool

	renderedWidth int
	lines         []string
}

var _ screen.Screen = (*ReaderScreen)(nil)
var _ screen.KeyHintProvider = (*ReaderScreen)(nil)

// New creates a reader for the given guide.
func New(g guides.Guide, renderer *markdown.Renderer, events store.EventRepo, logger *zap.Logger) *ReaderScreen {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ReaderScreen{
		guide:    g,
		renderer: renderer,
		events:   events,
		logger:   logger,
		openedAt: time.Now(),
	}
}

func (s *ReaderScreen) Init() tea.Cmd {
	return s.appendStudy(store.StudyOpened, 0)
}

func (s *ReaderScreen) Title() string {
	return s.guide.Title
}

func (s *ReaderScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Scroll"},
		{Key: "G", Description: "End"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *ReaderScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if s.scrollOffset > 0 {
			s.scrollOffset--
		}
	case "down", "j":
		s.scrollOffset++
	case "pgup":
		s.scrollOffset -= 10
		if s.scrollOffset < 0 {
			s.scrollOffset = 0
		}
	case "pgdown":
		s.scrollOffset += 10
	case "g":
		s.scrollOffset = 0
	case "G":
		s.scrollOffset = len(s.lines)
	case "esc":
		return s, s.leave()
	}
	return s, nil
}

// leave pops the screen, recording completion when the learner read to
// the end.
func (s *ReaderScreen) leave() tea.Cmd {
	pop := func() tea.Msg { return router.PopScreenMsg{} }
	if !s.reachedEnd {
		return pop
	}
	seconds := int(time.Since(s.openedAt).Seconds())
	return tea.Batch(s.appendStudy(store.StudyCompleted, seconds), pop)
}

func (s *ReaderScreen) appendStudy(action string, seconds int) tea.Cmd {
	return func() tea.Msg {
		err := s.events.AppendStudyEvent(context.Background(), store.StudyEventData{
			GuideSlug:    s.guide.Slug,
			Topic:        s.guide.Topic,
			Action:       action,
			SecondsSpent: seconds,
		})
		if err != nil {
			s.logger.Warn("append study event",
				zap.String("guide", s.guide.Slug),
				zap.String("action", action),
				zap.Error(err))
		}
		return nil
	}
}

func (s *ReaderScreen) View(width, height int) string {
	textWidth := width - 4
	if textWidth > 84 {
		textWidth = 84
	}
	s.renderLines(textWidth)

	// Heading and meta rows plus a blank line.
	avail := height - 3
	if avail < 1 {
		avail = 1
	}

	maxOffset := len(s.lines) - avail
	if maxOffset < 0 {
		maxOffset = 0
	}
	if s.scrollOffset > maxOffset {
		s.scrollOffset = maxOffset
	}

	end := s.scrollOffset + avail
	if end > len(s.lines) {
		end = len(s.lines)
	}
	if end >= len(s.lines) {
		s.reachedEnd = true
	}

	title := lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Render(s.guide.Title)
	meta := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("%s · %d min read", guides.TopicName(s.guide.Topic), s.guide.EstimatedMinutes))

	body := strings.Join(s.lines[s.scrollOffset:end], "\n")
	if end < len(s.lines) {
		body += "\n" + lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Render(fmt.Sprintf("... %d more", len(s.lines)-end))
	}

	content := title + "  " + meta + "\n\n" + body
	return lipgloss.NewStyle().Padding(0, 2).Render(content)
}

// renderLines fills the line cache, re-rendering only on width change.
func (s *ReaderScreen) renderLines(width int) {
	if s.renderedWidth == width && s.lines != nil {
		return
	}
	out, err := s.renderer.Render(s.guide.Body, width)
	if err != nil {
		s.logger.Warn("render guide", zap.String("guide", s.guide.Slug), zap.Error(err))
		out = s.guide.Body
	}
	s.renderedWidth = width
	s.lines = strings.Split(strings.TrimRight(out, "\n"), "\n")
}
