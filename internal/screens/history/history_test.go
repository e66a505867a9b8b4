package history

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/SebastianBuritica/interviewprep/internal/router"
	"github.com/SebastianBuritica/interviewprep/internal/store"
)

// mockEventRepo implements store.EventRepo with canned session
// summaries.
type mockEventRepo struct {
	sessions []store.SessionSummary
	err      error
	gotOpts  store.QueryOpts
}

func (m *mockEventRepo) AppendSessionEvent(_ context.Context, _ store.SessionEventData) error {
	return nil
}
func (m *mockEventRepo) AppendAnswerEvent(_ context.Context, _ store.AnswerEventData) error {
	return nil
}
func (m *mockEventRepo) AppendStudyEvent(_ context.Context, _ store.StudyEventData) error {
	return nil
}
func (m *mockEventRepo) AppendChallengeEvent(_ context.Context, _ store.ChallengeEventData) error {
	return nil
}
func (m *mockEventRepo) AppendLLMRequest(_ context.Context, _ store.LLMRequestEventData) error {
	return nil
}
func (m *mockEventRepo) ListSessions(_ context.Context, opts store.QueryOpts) ([]store.SessionSummary, error) {
	m.gotOpts = opts
	return m.sessions, m.err
}
func (m *mockEventRepo) ListAnswers(_ context.Context, _ store.QueryOpts) ([]store.AnswerRecord, error) {
	return nil, nil
}
func (m *mockEventRepo) TallyAnswers(_ context.Context) (map[string]store.TopicTally, error) {
	return nil, nil
}
func (m *mockEventRepo) AnswerTimesSince(_ context.Context, _ time.Time) ([]time.Time, error) {
	return nil, nil
}
func (m *mockEventRepo) LatestAnswerTime(_ context.Context, _ string) (time.Time, error) {
	return time.Time{}, nil
}
func (m *mockEventRepo) CompletedChallenges(_ context.Context) (map[int]bool, error) {
	return nil, nil
}
func (m *mockEventRepo) StudyCounts(_ context.Context) (map[string]int, error) {
	return nil, nil
}
func (m *mockEventRepo) RecentLLMRequests(_ context.Context, _ int) ([]store.LLMRequestRecord, error) {
	return nil, nil
}
func (m *mockEventRepo) GetLLMRequest(_ context.Context, _ int) (*store.LLMRequestRecord, error) {
	return nil, nil
}
func (m *mockEventRepo) LLMUsageByPurpose(_ context.Context) ([]store.LLMUsageStats, error) {
	return nil, nil
}
func (m *mockEventRepo) LLMUsageByModel(_ context.Context) ([]store.LLMModelUsage, error) {
	return nil, nil
}

func testSessions() []store.SessionSummary {
	return []store.SessionSummary{
		{
			SessionID:       "s2",
			StartedAt:       time.Date(2025, 3, 14, 9, 30, 0, 0, time.UTC),
			Topics:          []string{"react", "css"},
			QuestionsServed: 12,
			CorrectAnswers:  9,
			DurationSecs:    462,
			Completed:       true,
		},
		{
			SessionID:       "s1",
			StartedAt:       time.Date(2025, 3, 12, 19, 0, 0, 0, time.UTC),
			Topics:          []string{"javascript"},
			QuestionsServed: 4,
			CorrectAnswers:  1,
			DurationSecs:    180,
			Completed:       false,
		},
	}
}

func loadedScreen(t *testing.T, repo *mockEventRepo) *HistoryScreen {
	t.Helper()
	s := New(repo)
	cmd := s.Init()
	if cmd == nil {
		t.Fatal("expected load command from Init")
	}
	s.Update(cmd())
	return s
}

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func TestLoadsAndRendersSessions(t *testing.T) {
	repo := &mockEventRepo{sessions: testSessions()}
	s := loadedScreen(t, repo)

	if repo.gotOpts.Limit != historyLimit {
		t.Errorf("query limit = %d, want %d", repo.gotOpts.Limit, historyLimit)
	}

	view := s.View(100, 30)
	for _, want := range []string{"Mar 14, 2025", "7:42", "12 questions", "75% accuracy"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestAbandonedDrillMarked(t *testing.T) {
	s := loadedScreen(t, &mockEventRepo{sessions: testSessions()})
	if !strings.Contains(s.View(100, 30), "abandoned") {
		t.Error("abandoned drill should carry a marker")
	}
}

func TestEnterExpandsTopics(t *testing.T) {
	s := loadedScreen(t, &mockEventRepo{sessions: testSessions()})

	view := s.View(100, 30)
	if strings.Contains(view, "Topics:") {
		t.Fatal("details should start collapsed")
	}

	s.Update(specialKey(tea.KeyEnter))
	view = s.View(100, 30)
	if !strings.Contains(view, "Topics: React, CSS") {
		t.Error("expected expanded topic names for the selected drill")
	}

	s.Update(specialKey(tea.KeyEnter))
	if strings.Contains(s.View(100, 30), "Topics:") {
		t.Error("second enter should collapse the details")
	}
}

func TestNavigationClamps(t *testing.T) {
	s := loadedScreen(t, &mockEventRepo{sessions: testSessions()})

	s.Update(keyPress('k'))
	if s.selected != 0 {
		t.Errorf("selected = %d, want 0 (clamped at top)", s.selected)
	}
	s.Update(keyPress('j'))
	if s.selected != 1 {
		t.Errorf("selected = %d, want 1", s.selected)
	}
	s.Update(keyPress('j'))
	if s.selected != 1 {
		t.Errorf("selected = %d, want 1 (clamped at bottom)", s.selected)
	}
}

func TestEscPops(t *testing.T) {
	s := loadedScreen(t, &mockEventRepo{sessions: testSessions()})
	_, cmd := s.Update(specialKey(tea.KeyEscape))
	if cmd == nil {
		t.Fatal("expected pop command")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Error("esc should pop back home")
	}
}

func TestEmptyState(t *testing.T) {
	s := loadedScreen(t, &mockEventRepo{})
	if !strings.Contains(s.View(100, 30), "No drills yet") {
		t.Error("expected empty-state message")
	}
}

func TestLoadErrorShown(t *testing.T) {
	s := loadedScreen(t, &mockEventRepo{err: errors.New("db locked")})
	if !strings.Contains(s.View(100, 30), "db locked") {
		t.Error("expected load error in view")
	}
}
