// Package home implements the main menu screen with the progress
// dashboard: streak, topic strength, challenge completion, and due
// reviews.
package home

import (
	"context"
	"time"

	tea "charm.land/bubbletea/v2"
	"go.uber.org/zap"

	"github.com/SebastianBuritica/interviewprep/internal/challenge"
	"github.com/SebastianBuritica/interviewprep/internal/guides"
	"github.com/SebastianBuritica/interviewprep/internal/markdown"
	"github.com/SebastianBuritica/interviewprep/internal/progress"
	"github.com/SebastianBuritica/interviewprep/internal/quiz"
	"github.com/SebastianBuritica/interviewprep/internal/review"
	"github.com/SebastianBuritica/interviewprep/internal/router"
	"github.com/SebastianBuritica/interviewprep/internal/screen"
	"github.com/SebastianBuritica/interviewprep/internal/screens/challenges"
	"github.com/SebastianBuritica/interviewprep/internal/screens/drill"
	guidescreen "github.com/SebastianBuritica/interviewprep/internal/screens/guides"
	"github.com/SebastianBuritica/interviewprep/internal/screens/history"
	"github.com/SebastianBuritica/interviewprep/internal/store"
	"github.com/SebastianBuritica/interviewprep/internal/ui/components"
	"github.com/SebastianBuritica/interviewprep/internal/ui/layout"
)

// RefreshMsg asks the home screen to reload its dashboard stats. The
// app sends it after a drill or challenge pops back to home.
type RefreshMsg struct{}

// StatsLoadedMsg carries the dashboard numbers. It is exported so the
// app can pick up streak and answered-today for the header from the
// same query.
type StatsLoadedMsg struct {
	Streak         int
	AnsweredToday  int
	TotalAnswered  int
	StrongTopics   int
	ChallengesDone int
	DueReviews     int
}

// Deps bundles everything the home screen and the screens it launches
// need.
type Deps struct {
	Events    store.EventRepo
	Snapshots store.SnapshotRepo
	Registry  *challenge.Registry
	Library   *guides.Library
	Renderer  *markdown.Renderer
	Generator quiz.Generator
	Fallback  quiz.Generator
	Grader    quiz.Grader
	Scheduler *review.Scheduler
	Logger    *zap.Logger
	Duration  time.Duration
	LLMActive bool
}

// HomeScreen is the main menu of the application.
type HomeScreen struct {
	deps       Deps
	menu       components.Menu
	stats      StatsLoadedMsg
	statsReady bool
}

var _ screen.Screen = (*HomeScreen)(nil)
var _ screen.KeyHintProvider = (*HomeScreen)(nil)

// New creates the home screen.
func New(deps Deps) *HomeScreen {
	if deps.Logger == nil {
		deps.Logger = zap.NewNop()
	}

	items := []components.MenuItem{
		{Label: "Study Guides", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{
					Screen: guidescreen.New(deps.Library, deps.Renderer, deps.Events, deps.Logger),
				}
			}
		}},
		{Label: "Practice Drill", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{
					Screen: drill.New(drill.Deps{
						Events:    deps.Events,
						Snapshots: deps.Snapshots,
						Library:   deps.Library,
						Generator: deps.Generator,
						Fallback:  deps.Fallback,
						Grader:    deps.Grader,
						Scheduler: deps.Scheduler,
						Logger:    deps.Logger,
						Duration:  deps.Duration,
					}),
				}
			}
		}},
		{Label: "Challenges", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{
					Screen: challenges.New(deps.Registry, deps.Renderer, deps.Events, deps.Logger),
				}
			}
		}},
		{Label: "Drill History", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: history.New(deps.Events)}
			}
		}},
		{Label: "Quit", Action: func() tea.Cmd {
			return tea.Quit
		}},
	}

	return &HomeScreen{
		deps: deps,
		menu: components.NewMenu(items),
	}
}

func (h *HomeScreen) Title() string {
	return "Home"
}

func (h *HomeScreen) Init() tea.Cmd {
	return h.loadStats()
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case RefreshMsg:
		return h, h.loadStats()

	case StatsLoadedMsg:
		h.stats = msg
		h.statsReady = true
		return h, nil

	case tea.KeyPressMsg:
		if msg.String() == "q" {
			return h, tea.Quit
		}
	}

	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "q", Description: "Quit"},
	}
}

// loadStats recomputes the dashboard from the event log, falling back
// to the latest snapshot if the log query fails.
func (h *HomeScreen) loadStats() tea.Cmd {
	deps := h.deps
	return func() tea.Msg {
		if deps.Events == nil {
			return StatsLoadedMsg{}
		}
		ctx := context.Background()
		now := time.Now()

		prog, err := progress.Compute(ctx, deps.Events, now)
		if err != nil {
			deps.Logger.Warn("progress compute failed", zap.Error(err))
			prog = nil
			if deps.Snapshots != nil {
				if snap, serr := deps.Snapshots.Latest(ctx); serr == nil && snap != nil {
					prog = progress.FromSnapshot(&snap.Data)
				}
			}
			if prog == nil {
				return StatsLoadedMsg{}
			}
		}

		msg := StatsLoadedMsg{
			Streak:         prog.StreakDays,
			AnsweredToday:  prog.AnsweredToday,
			TotalAnswered:  prog.TotalAnswered,
			StrongTopics:   len(prog.StrongTopics()),
			ChallengesDone: prog.ChallengesCompleted,
		}
		if deps.Scheduler != nil {
			msg.DueReviews = len(deps.Scheduler.DueTopics(now))
		}
		return msg
	}
}
