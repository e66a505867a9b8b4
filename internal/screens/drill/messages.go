package drill

import (
	"time"

	"github.com/SebastianBuritica/interviewprep/internal/quiz"
)

// drillInitMsg carries the freshly built drill state, or the reason it
// could not be built.
type drillInitMsg struct {
	State *quiz.State
	Err   error
}

// questionReadyMsg carries the next question for the current slot.
type questionReadyMsg struct {
	Question *quiz.Question
	Err      error
}

// timerTickMsg fires once a second while a drill is running.
type timerTickMsg time.Time

// gradedMsg carries the grader's judgement of a free-text answer.
// Err means grading failed and the local exact check should be used.
type gradedMsg struct {
	Answer  string
	TimeMs  int64
	Verdict *quiz.Verdict
	Err     error
}

// drillEndMsg starts the end-of-drill persistence flow.
type drillEndMsg struct{}

// drillFinishedMsg signals that persistence is done and the summary is
// ready to show.
type drillFinishedMsg struct {
	Summary *quiz.Summary
}
