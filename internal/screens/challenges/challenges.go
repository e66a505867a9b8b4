// Package challenges implements the practice challenge shell: a fixed
// list of exercises on the left, the active exercise's template on the
// right. Selection is the only mutable state; switching challenges is
// a direct, synchronous transition.
package challenges

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"go.uber.org/zap"

	"github.com/SebastianBuritica/interviewprep/internal/challenge"
	"github.com/SebastianBuritica/interviewprep/internal/markdown"
	"github.com/SebastianBuritica/interviewprep/internal/router"
	"github.com/SebastianBuritica/interviewprep/internal/screen"
	"github.com/SebastianBuritica/interviewprep/internal/store"
	"github.com/SebastianBuritica/interviewprep/internal/ui/layout"
	"github.com/SebastianBuritica/interviewprep/internal/ui/theme"
)

// completionLoadedMsg carries the stored completion set.
type completionLoadedMsg struct {
	Completed map[int]bool
	Err       error
}

// ChallengesScreen is the challenge shell. The list pane drives
// selection; the body pane shows the active challenge's template with
// scrolling. Tab moves focus between the two.
type ChallengesScreen struct {
	reg      *challenge.Registry
	renderer *markdown.Renderer
	events   store.EventRepo
	logger   *zap.Logger

	selectedID   int
	bodyFocused  bool
	scrollOffset int
	completed    map[int]bool

	// Rendered-body cache. Glamour renders are expensive and the body
	// only changes with selection or width.
	renderedID    int
	renderedWidth int
	renderedBody  []string
}

var _ screen.Screen = (*ChallengesScreen)(nil)
var _ screen.KeyHintProvider = (*ChallengesScreen)(nil)

// New creates the challenge shell. Selection starts at the first
// challenge in registry order.
func New(reg *challenge.Registry, renderer *markdown.Renderer, events store.EventRepo, logger *zap.Logger) *ChallengesScreen {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ChallengesScreen{
		reg:        reg,
		renderer:   renderer,
		events:     events,
		logger:     logger,
		selectedID: reg.First().ID,
		completed:  make(map[int]bool),
	}
}

func (s *ChallengesScreen) Init() tea.Cmd {
	return tea.Batch(
		s.loadCompletion(),
		s.appendOpened(s.selectedID),
	)
}

func (s *ChallengesScreen) Title() string {
	return "Challenges"
}

func (s *ChallengesScreen) KeyHints() []layout.KeyHint {
	if s.bodyFocused {
		return []layout.KeyHint{
			{Key: "↑↓", Description: "Scroll"},
			{Key: "Tab", Description: "List"},
			{Key: "C", Description: "Toggle done"},
			{Key: "Esc", Description: "Back"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Switch"},
		{Key: "Tab", Description: "Body"},
		{Key: "C", Description: "Toggle done"},
		{Key: "Esc", Description: "Back"},
	}
}

// Selected returns the active challenge's descriptor.
func (s *ChallengesScreen) Selected() challenge.Descriptor {
	d, err := s.reg.Get(s.selectedID)
	if err != nil {
		// Selection always tracks a registry id, so this cannot
		// happen; fall back to the first entry anyway.
		return s.reg.First()
	}
	return d
}

// Select makes the challenge with the given id the active one and
// records the view. Selecting the already-active id changes nothing
// and records nothing; ids not in the registry are ignored.
func (s *ChallengesScreen) Select(id int) tea.Cmd {
	if id == s.selectedID {
		return nil
	}
	if _, err := s.reg.Get(id); err != nil {
		return nil
	}
	s.selectedID = id
	s.scrollOffset = 0
	return s.appendOpened(id)
}

func (s *ChallengesScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case completionLoadedMsg:
		if msg.Err != nil {
			s.logger.Warn("load challenge completion", zap.Error(msg.Err))
			return s, nil
		}
		s.completed = msg.Completed
		return s, nil

	case tea.KeyMsg:
		return s.handleKey(msg)
	}
	return s, nil
}

func (s *ChallengesScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch msg.String() {
	case "esc":
		return s, func() tea.Msg { return router.PopScreenMsg{} }

	case "tab":
		s.bodyFocused = !s.bodyFocused
		return s, nil

	case "up", "k":
		if s.bodyFocused {
			if s.scrollOffset > 0 {
				s.scrollOffset--
			}
			return s, nil
		}
		return s, s.moveSelection(-1)

	case "down", "j":
		if s.bodyFocused {
			s.scrollOffset++
			return s, nil
		}
		return s, s.moveSelection(1)

	case "pgup":
		if s.bodyFocused {
			s.scrollOffset -= 10
			if s.scrollOffset < 0 {
				s.scrollOffset = 0
			}
		}
		return s, nil

	case "pgdown":
		if s.bodyFocused {
			s.scrollOffset += 10
		}
		return s, nil

	case "c":
		return s, s.toggleCompletion()
	}
	return s, nil
}

// moveSelection shifts the active challenge up or down the list.
func (s *ChallengesScreen) moveSelection(delta int) tea.Cmd {
	list := s.reg.List()
	idx := s.selectedIndex(list)
	next := idx + delta
	if next < 0 || next >= len(list) {
		return nil
	}
	return s.Select(list[next].ID)
}

func (s *ChallengesScreen) selectedIndex(list []challenge.Descriptor) int {
	for i, d := range list {
		if d.ID == s.selectedID {
			return i
		}
	}
	return 0
}

// toggleCompletion flips the active challenge between completed and
// reopened, recording the transition.
func (s *ChallengesScreen) toggleCompletion() tea.Cmd {
	id := s.selectedID
	action := store.ChallengeCompleted
	if s.completed[id] {
		action = store.ChallengeReopened
	}
	s.completed[id] = !s.completed[id]

	return func() tea.Msg {
		err := s.events.AppendChallengeEvent(context.Background(), store.ChallengeEventData{
			ChallengeID: id,
			Action:      action,
		})
		if err != nil {
			s.logger.Warn("append challenge event",
				zap.Int("challenge_id", id),
				zap.String("action", action),
				zap.Error(err))
		}
		return nil
	}
}

func (s *ChallengesScreen) loadCompletion() tea.Cmd {
	return func() tea.Msg {
		completed, err := s.events.CompletedChallenges(context.Background())
		if err != nil {
			return completionLoadedMsg{Err: err}
		}
		return completionLoadedMsg{Completed: completed}
	}
}

func (s *ChallengesScreen) appendOpened(id int) tea.Cmd {
	return func() tea.Msg {
		err := s.events.AppendChallengeEvent(context.Background(), store.ChallengeEventData{
			ChallengeID: id,
			Action:      store.ChallengeOpened,
		})
		if err != nil {
			s.logger.Warn("append challenge event",
				zap.Int("challenge_id", id),
				zap.String("action", store.ChallengeOpened),
				zap.Error(err))
		}
		return nil
	}
}

const (
	minListWidth = 24
	maxListWidth = 34
)

func (s *ChallengesScreen) View(width, height int) string {
	listWidth := width / 3
	if listWidth < minListWidth {
		listWidth = minListWidth
	}
	if listWidth > maxListWidth {
		listWidth = maxListWidth
	}
	bodyWidth := width - listWidth - 2

	paneHeight := height - 2
	if paneHeight < 4 {
		paneHeight = 4
	}

	listPane := s.renderList(listWidth-4, paneHeight)
	bodyPane := s.renderBody(bodyWidth-4, paneHeight)

	listStyle := theme.PaneInactive
	bodyStyle := theme.PaneInactive
	if s.bodyFocused {
		bodyStyle = theme.PaneActive
	} else {
		listStyle = theme.PaneActive
	}

	left := listStyle.Width(listWidth - 2).Height(paneHeight).Render(listPane)
	right := bodyStyle.Width(bodyWidth - 2).Height(paneHeight).Render(bodyPane)

	return lipgloss.JoinHorizontal(lipgloss.Top, left, right)
}

// renderList renders the selection list pane.
func (s *ChallengesScreen) renderList(width, height int) string {
	var b strings.Builder

	b.WriteString(lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Bold(true).
		Render("CHALLENGES"))
	b.WriteString("\n\n")

	for _, d := range s.reg.List() {
		marker := "  "
		if s.completed[d.ID] {
			marker = theme.Done.Render("✓") + " "
		}

		name := fmt.Sprintf("%d. %s", d.ID, d.Name)
		est := lipgloss.NewStyle().Foreground(theme.TextDim).Render(d.EstimatedTime)

		if d.ID == s.selectedID {
			b.WriteString(theme.Selected.Render("▸ " + name))
		} else {
			b.WriteString(theme.Unselected.Render("  " + name))
		}
		b.WriteString("\n")
		b.WriteString("  " + marker + est)
		b.WriteString("\n\n")
	}

	return b.String()
}

// renderBody renders the active challenge's template with the current
// scroll window applied.
func (s *ChallengesScreen) renderBody(width, height int) string {
	d := s.Selected()
	lines := s.bodyLines(d, width)

	// Reserve two rows for the heading.
	avail := height - 2
	if avail < 1 {
		avail = 1
	}

	maxOffset := len(lines) - avail
	if maxOffset < 0 {
		maxOffset = 0
	}
	if s.scrollOffset > maxOffset {
		s.scrollOffset = maxOffset
	}

	end := s.scrollOffset + avail
	if end > len(lines) {
		end = len(lines)
	}
	window := lines[s.scrollOffset:end]

	heading := lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Render(d.Name)
	heading += lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render("  " + d.EstimatedTime)

	body := strings.Join(window, "\n")
	if end < len(lines) {
		body += "\n" + lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Render(fmt.Sprintf("... %d more", len(lines)-end))
	}

	return heading + "\n\n" + body
}

// bodyLines returns the glamour-rendered body split into lines,
// re-rendering only when the selection or width changed.
func (s *ChallengesScreen) bodyLines(d challenge.Descriptor, width int) []string {
	if s.renderedID == d.ID && s.renderedWidth == width && s.renderedBody != nil {
		return s.renderedBody
	}

	out, err := s.renderer.Render(d.Body, width)
	if err != nil {
		s.logger.Warn("render challenge body", zap.Int("challenge_id", d.ID), zap.Error(err))
		out = d.Body
	}

	s.renderedID = d.ID
	s.renderedWidth = width
	s.renderedBody = strings.Split(strings.TrimRight(out, "\n"), "\n")
	return s.renderedBody
}
