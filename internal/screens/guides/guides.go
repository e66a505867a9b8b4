// Package guides lists the study guide catalog grouped by topic, with
// fuzzy search, and opens guides in the reader.
package guides

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"go.uber.org/zap"

	guidelib "github.com/SebastianBuritica/interviewprep/internal/guides"
	"github.com/SebastianBuritica/interviewprep/internal/markdown"
	"github.com/SebastianBuritica/interviewprep/internal/router"
	"github.com/SebastianBuritica/interviewprep/internal/screen"
	"github.com/SebastianBuritica/interviewprep/internal/screens/reader"
	"github.com/SebastianBuritica/interviewprep/internal/store"
	"github.com/SebastianBuritica/interviewprep/internal/ui/components"
	"github.com/SebastianBuritica/interviewprep/internal/ui/layout"
	"github.com/SebastianBuritica/interviewprep/internal/ui/theme"
)

// countsLoadedMsg carries per-guide opened counts from the store.
type countsLoadedMsg struct {
	Counts map[string]int
	Err    error
}

type rowKind int

const (
	rowTopicHeader rowKind = iota
	rowGuide
)

// row is one display row: a topic section header or a guide entry.
type row struct {
	kind  rowKind
	topic guidelib.Topic
	guide guidelib.Guide
}

// GuidesScreen is the guide catalog listing.
type GuidesScreen struct {
	lib      *guidelib.Library
	renderer *markdown.Renderer
	events   store.EventRepo
	logger   *zap.Logger

	search       components.SearchBox
	rows         []row
	cursor       int
	scrollOffset int
	readCounts   map[string]int
}

var _ screen.Screen = (*GuidesScreen)(nil)
var _ screen.KeyHintProvider = (*GuidesScreen)(nil)

// New creates the guide listing screen.
func New(lib *guidelib.Library, renderer *markdown.Renderer, events store.EventRepo, logger *zap.Logger) *GuidesScreen {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &GuidesScreen{
		lib:        lib,
		renderer:   renderer,
		events:     events,
		logger:     logger,
		search:     components.NewSearchBox("search guides..."),
		readCounts: make(map[string]int),
	}
	s.buildRows()
	return s
}

func (s *GuidesScreen) Init() tea.Cmd {
	return func() tea.Msg {
		counts, err := s.events.StudyCounts(context.Background())
		if err != nil {
			return countsLoadedMsg{Err: err}
		}
		return countsLoadedMsg{Counts: counts}
	}
}

func (s *GuidesScreen) Title() string {
	return "Study Guides"
}

func (s *GuidesScreen) KeyHints() []layout.KeyHint {
	if s.search.Active {
		return []layout.KeyHint{
			{Key: "Enter", Description: "Done"},
			{Key: "Esc", Description: "Clear"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Read"},
		{Key: "/", Description: "Search"},
		{Key: "Esc", Description: "Back"},
	}
}

// buildRows rebuilds the display rows for the current query. Without a
// query, guides are grouped under topic headers in catalog order; with
// one, matches are listed flat in rank order.
func (s *GuidesScreen) buildRows() {
	s.rows = s.rows[:0]

	query := s.search.Query()
	if strings.TrimSpace(query) == "" {
		for _, topic := range guidelib.Topics {
			group := s.lib.ByTopic(topic.Key)
			if len(group) == 0 {
				continue
			}
			s.rows = append(s.rows, row{kind: rowTopicHeader, topic: topic})
			for _, g := range group {
				s.rows = append(s.rows, row{kind: rowGuide, guide: g})
			}
		}
	} else {
		for _, g := range s.lib.Search(query) {
			s.rows = append(s.rows, row{kind: rowGuide, guide: g})
		}
	}

	s.cursor = s.firstGuideRow()
	s.scrollOffset = 0
}

// firstGuideRow returns the index of the first selectable row.
func (s *GuidesScreen) firstGuideRow() int {
	for i, r := range s.rows {
		if r.kind == rowGuide {
			return i
		}
	}
	return 0
}

func (s *GuidesScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case countsLoadedMsg:
		if msg.Err != nil {
			s.logger.Warn("load study counts", zap.Error(msg.Err))
			return s, nil
		}
		s.readCounts = msg.Counts
		return s, nil

	case tea.KeyMsg:
		return s.handleKey(msg)
	}
	return s, nil
}

func (s *GuidesScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	if s.search.Active {
		switch msg.String() {
		case "esc":
			s.search.Clear()
			s.buildRows()
			return s, nil
		case "enter":
			s.search.Deactivate()
			return s, nil
		case "up", "down":
			// Let the learner walk results while still typing.
		default:
			var cmd tea.Cmd
			s.search, cmd = s.search.Update(msg)
			s.buildRows()
			return s, cmd
		}
	}

	switch msg.String() {
	case "/":
		return s, s.search.Activate()
	case "up", "k":
		s.moveCursor(-1)
		return s, nil
	case "down", "j":
		s.moveCursor(1)
		return s, nil
	case "enter":
		return s, s.openSelected()
	case "esc":
		if s.search.Query() != "" {
			s.search.Clear()
			s.buildRows()
			return s, nil
		}
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	}
	return s, nil
}

// moveCursor shifts the cursor to the next guide row in the given
// direction, skipping topic headers.
func (s *GuidesScreen) moveCursor(delta int) {
	for i := s.cursor + delta; i >= 0 && i < len(s.rows); i += delta {
		if s.rows[i].kind == rowGuide {
			s.cursor = i
			return
		}
	}
}

// openSelected pushes the reader for the guide under the cursor.
func (s *GuidesScreen) openSelected() tea.Cmd {
	if s.cursor < 0 || s.cursor >= len(s.rows) {
		return nil
	}
	r := s.rows[s.cursor]
	if r.kind != rowGuide {
		return nil
	}
	readerScreen := reader.New(r.guide, s.renderer, s.events, s.logger)
	return func() tea.Msg {
		return router.PushScreenMsg{Screen: readerScreen}
	}
}

// Cursor returns the guide currently under the cursor, if any.
func (s *GuidesScreen) Cursor() (guidelib.Guide, bool) {
	if s.cursor < 0 || s.cursor >= len(s.rows) || s.rows[s.cursor].kind != rowGuide {
		return guidelib.Guide{}, false
	}
	return s.rows[s.cursor].guide, true
}

func (s *GuidesScreen) View(width, height int) string {
	var b strings.Builder

	if s.search.Active || s.search.Query() != "" {
		b.WriteString("  " + s.search.View())
		b.WriteString("\n\n")
	}

	if len(s.rows) == 0 {
		b.WriteString(lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Italic(true).
			Render(fmt.Sprintf("  No guides match %q", s.search.Query())))
		return b.String()
	}

	listHeight := height - 3
	if listHeight < 3 {
		listHeight = 3
	}
	s.adjustScroll(listHeight)

	visible := 0
	for i, r := range s.rows {
		if i < s.scrollOffset {
			continue
		}
		if visible >= listHeight {
			break
		}

		switch r.kind {
		case rowTopicHeader:
			b.WriteString(lipgloss.NewStyle().
				Foreground(theme.Secondary).
				Bold(true).
				Render("  " + r.topic.Name))
		case rowGuide:
			b.WriteString(s.renderGuideRow(r.guide, i == s.cursor))
		}
		b.WriteString("\n")
		visible++
	}

	if s.scrollOffset+listHeight < len(s.rows) {
		b.WriteString(lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Render(fmt.Sprintf("  ... %d more", len(s.rows)-s.scrollOffset-listHeight)))
	}

	return b.String()
}

func (s *GuidesScreen) renderGuideRow(g guidelib.Guide, selected bool) string {
	marker := "  "
	if s.readCounts[g.Slug] > 0 {
		marker = theme.Done.Render("✓") + " "
	}

	est := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("  %d min", g.EstimatedMinutes))

	if selected {
		return "  " + marker + theme.Selected.Render("▸ "+g.Title) + est
	}
	return "  " + marker + theme.Unselected.Render("  "+g.Title) + est
}

// adjustScroll keeps the cursor inside the visible window.
func (s *GuidesScreen) adjustScroll(height int) {
	if height <= 0 {
		return
	}
	if s.cursor < s.scrollOffset {
		s.scrollOffset = s.cursor
	}
	if s.cursor >= s.scrollOffset+height {
		s.scrollOffset = s.cursor - height + 1
	}
}
