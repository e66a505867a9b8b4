package app

import (
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/SebastianBuritica/interviewprep/internal/router"
	"github.com/SebastianBuritica/interviewprep/internal/screen"
	"github.com/SebastianBuritica/interviewprep/internal/screens/home"
	"github.com/SebastianBuritica/interviewprep/internal/ui/layout"
)

// stubScreen records every message it receives.
type stubScreen struct {
	title    string
	received []tea.Msg
}

func (s *stubScreen) Init() tea.Cmd { return nil }

func (s *stubScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	s.received = append(s.received, msg)
	return s, nil
}

func (s *stubScreen) View(_, _ int) string { return "stub" }

func (s *stubScreen) Title() string { return s.title }

// hintedStub also provides footer hints.
type hintedStub struct {
	stubScreen
}

func (s *hintedStub) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{{Key: "x", Description: "Do it"}}
}

func sizedModel(t *testing.T) AppModel {
	t.Helper()
	m := newAppModel(home.Deps{})
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	return updated.(AppModel)
}

func TestCtrlCQuits(t *testing.T) {
	m := sizedModel(t)
	_, cmd := m.Update(tea.KeyPressMsg{Code: 'c', Mod: tea.ModCtrl})
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("ctrl+c should quit")
	}
}

func TestEscForwardedToActiveScreen(t *testing.T) {
	m := sizedModel(t)
	stub := &stubScreen{title: "Stub"}
	m.Update(router.PushScreenMsg{Screen: stub})

	m.Update(tea.KeyPressMsg{Code: tea.KeyEscape})

	if m.router.Depth() != 2 {
		t.Fatalf("depth = %d, want 2 (app must not pop on esc)", m.router.Depth())
	}
	found := false
	for _, msg := range stub.received {
		if _, ok := msg.(tea.KeyPressMsg); ok {
			found = true
		}
	}
	if !found {
		t.Error("esc should reach the active screen")
	}
}

func TestPopBackToBottomRefreshesHome(t *testing.T) {
	m := sizedModel(t)
	m.Update(router.PushScreenMsg{Screen: &stubScreen{title: "Stub"}})

	_, cmd := m.Update(router.PopScreenMsg{})
	if cmd == nil {
		t.Fatal("expected refresh command after popping to the bottom")
	}
	if _, ok := cmd().(home.RefreshMsg); !ok {
		t.Error("popping back to the bottom screen should refresh home")
	}
}

func TestPopBetweenStackedScreensDoesNotRefresh(t *testing.T) {
	m := sizedModel(t)
	m.Update(router.PushScreenMsg{Screen: &stubScreen{title: "First"}})
	m.Update(router.PushScreenMsg{Screen: &stubScreen{title: "Second"}})

	_, cmd := m.Update(router.PopScreenMsg{})
	if cmd != nil {
		t.Error("popping within the stack should not refresh home")
	}
}

func TestStatsMessageUpdatesHeader(t *testing.T) {
	m := sizedModel(t)
	updated, _ := m.Update(home.StatsLoadedMsg{Streak: 3, AnsweredToday: 5})
	got := updated.(AppModel).stats
	if got.Streak != 3 || got.AnsweredToday != 5 {
		t.Errorf("header stats = %+v, want streak 3 / answered 5", got)
	}
}

func TestFooterHintsPreferScreenHints(t *testing.T) {
	m := sizedModel(t)
	hints := m.footerHints(&hintedStub{})

	if len(hints) != 2 {
		t.Fatalf("hints = %d, want screen hint + quit", len(hints))
	}
	if hints[0].Key != "x" {
		t.Errorf("first hint = %q, want screen-provided %q", hints[0].Key, "x")
	}
	if hints[len(hints)-1].Key != "Ctrl+C" {
		t.Error("quit hint should always be appended")
	}
}

func TestWelcomeKeyTransitionsToHome(t *testing.T) {
	m := sizedModel(t)
	_, cmd := m.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected transition command")
	}
	m.Update(cmd())

	if _, ok := m.router.Active().(*home.HomeScreen); !ok {
		t.Errorf("active screen = %T, want *home.HomeScreen", m.router.Active())
	}
	if m.router.Depth() != 1 {
		t.Errorf("depth = %d, want 1", m.router.Depth())
	}
}
