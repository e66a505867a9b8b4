package summary

import (
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/SebastianBuritica/interviewprep/internal/quiz"
	"github.com/SebastianBuritica/interviewprep/internal/router"
)

func testSummary() *quiz.Summary {
	return &quiz.Summary{
		Duration:       3*time.Minute + 25*time.Second,
		TotalQuestions: 12,
		TotalCorrect:   9,
		Accuracy:       0.75,
		TopicResults: []quiz.TopicResult{
			{Topic: "react", Category: quiz.CategoryChosen, Attempted: 6, Correct: 5},
			{Topic: "css", Category: quiz.CategoryReview, Attempted: 6, Correct: 6},
			{Topic: "apis", Category: quiz.CategoryChosen, Attempted: 0, Correct: 0},
		},
	}
}

func TestSummaryScreen_Title(t *testing.T) {
	s := New(testSummary())
	if s.Title() != "Drill Summary" {
		t.Errorf("Title = %q, want %q", s.Title(), "Drill Summary")
	}
}

func TestSummaryScreen_Display(t *testing.T) {
	s := New(testSummary())
	view := s.View(100, 30)

	for _, want := range []string{
		"Drill complete!",
		"3:25",
		"Questions: 12",
		"Accuracy: 75%",
		"React",
		"5/6 correct",
		"(review)",
	} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestSummaryScreen_SkipsUnattemptedTopics(t *testing.T) {
	s := New(testSummary())
	view := s.View(100, 30)
	if strings.Contains(view, "APIs") {
		t.Error("topic with zero attempts should not be listed")
	}
}

func TestSummaryScreen_NilSummary(t *testing.T) {
	s := New(nil)
	if view := s.View(80, 24); view != "" {
		t.Errorf("expected empty view for nil summary, got %q", view)
	}
}

func TestSummaryScreen_Navigation_Enter(t *testing.T) {
	s := New(testSummary())
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected a command on Enter")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Error("expected Enter to pop back home")
	}
}

func TestSummaryScreen_Navigation_Esc(t *testing.T) {
	s := New(testSummary())
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	if cmd == nil {
		t.Fatal("expected a command on Esc")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Error("expected Esc to pop back home")
	}
}

func TestSummaryScreen_KeyHints(t *testing.T) {
	s := New(testSummary())
	if len(s.KeyHints()) == 0 {
		t.Error("expected key hints")
	}
}
