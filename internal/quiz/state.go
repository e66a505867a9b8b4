package quiz

import (
	"fmt"
	"time"
)

// MaxRecentErrors is the maximum number of recent errors tracked per topic.
const MaxRecentErrors = 5

// Phase represents the current phase of a drill.
type Phase int

const (
	PhaseLoading  Phase = iota // Restoring state and fetching the first question
	PhaseActive                // Serving questions
	PhaseFeedback              // Showing answer feedback
	PhaseEnding                // Drill time expired or quit confirmed
	PhaseSummary               // Showing summary screen
)

// State tracks the runtime state of an active drill.
type State struct {
	// Plan is the drill plan built at start.
	Plan *Plan

	// CurrentSlotIndex is the index into Plan.Slots for the current topic.
	CurrentSlotIndex int

	// QuestionsInSlot is the number of questions served in the current slot.
	QuestionsInSlot int

	// CurrentQuestion is the active question being displayed (nil between questions).
	CurrentQuestion *Question

	// TotalQuestions is the count of questions answered so far.
	TotalQuestions int

	// TotalCorrect is the count of correct answers so far.
	TotalCorrect int

	// PerTopic tracks per-topic stats for the summary screen.
	PerTopic map[string]*TopicResult

	// StartTime is when the drill began.
	StartTime time.Time

	// Elapsed tracks total elapsed time.
	Elapsed time.Duration

	// Phase is the current drill phase.
	Phase Phase

	// PriorQuestions tracks questions asked per topic in this drill (for dedup).
	PriorQuestions map[string][]string

	// RecentErrors tracks recent errors per topic (for LLM context).
	RecentErrors map[string][]string

	// ShowingQuitConfirm is true when the quit confirmation dialog is displayed.
	ShowingQuitConfirm bool

	// LastVerdict is the verdict for the most recent answer.
	LastVerdict *Verdict

	// LastAnswer is the learner's most recent submitted answer.
	LastAnswer string

	// SessionID is the UUID for this drill.
	SessionID string

	// QuestionStartTime tracks when the current question was first displayed.
	QuestionStartTime time.Time

	// TimeExpired indicates the drill timer has run out.
	TimeExpired bool

	// CompletedSlots tracks slot indices whose mini-block is done.
	CompletedSlots map[int]bool
}

// TopicResult tracks per-topic performance within a single drill.
type TopicResult struct {
	Topic     string
	Category  PlanCategory
	Attempted int
	Correct   int
}

// NewState creates a drill state with initialized maps.
func NewState(plan *Plan, sessionID string) *State {
	perTopic := make(map[string]*TopicResult)
	for _, slot := range plan.Slots {
		if _, exists := perTopic[slot.Topic]; !exists {
			perTopic[slot.Topic] = &TopicResult{
				Topic:    slot.Topic,
				Category: slot.Category,
			}
		}
	}

	return &State{
		Plan:           plan,
		SessionID:      sessionID,
		PerTopic:       perTopic,
		PriorQuestions: make(map[string][]string),
		RecentErrors:   make(map[string][]string),
		StartTime:      time.Now(),
		Phase:          PhaseActive,
		CompletedSlots: make(map[int]bool),
	}
}

// HandleAnswer processes a learner's answer, updating drill state. When
// verdict is nil the answer is checked locally against the question;
// otherwise the grader's verdict decides correctness. Returns the
// verdict used, for feedback display.
func HandleAnswer(state *State, learnerAnswer string, verdict *Verdict) *Verdict {
	q := state.CurrentQuestion
	if q == nil {
		return nil
	}

	if verdict == nil {
		verdict = localVerdict(q, learnerAnswer)
	}
	correct := verdict.Correct()

	state.LastVerdict = verdict
	state.LastAnswer = learnerAnswer
	state.TotalQuestions++
	if correct {
		state.TotalCorrect++
	}

	// Update per-topic results.
	if tr := state.PerTopic[q.Topic]; tr != nil {
		tr.Attempted++
		if correct {
			tr.Correct++
		}
	}

	// Track prior questions for dedup.
	state.PriorQuestions[q.Topic] = append(state.PriorQuestions[q.Topic], q.Text)

	// Track errors for LLM context.
	if !correct {
		errors := state.RecentErrors[q.Topic]
		errors = append(errors, BuildErrorContext(q, learnerAnswer))
		if len(errors) > MaxRecentErrors {
			errors = errors[len(errors)-MaxRecentErrors:]
		}
		state.RecentErrors[q.Topic] = errors
	}

	return verdict
}

// localVerdict grades an answer without the LLM. The question's own
// explanation doubles as feedback.
func localVerdict(q *Question, learnerAnswer string) *Verdict {
	if CheckAnswer(learnerAnswer, q) {
		return &Verdict{Verdict: VerdictCorrect, Score: 100, Feedback: q.Explanation}
	}
	return &Verdict{Verdict: VerdictIncorrect, Score: 0, Feedback: q.Explanation}
}

// AdvanceSlot moves to the next slot in the plan, skipping completed
// slots. Returns false if all slots are completed.
func AdvanceSlot(state *State) bool {
	state.QuestionsInSlot = 0
	numSlots := len(state.Plan.Slots)
	if numSlots == 0 {
		return false
	}

	// Try each slot in round-robin.
	for i := 0; i < numSlots; i++ {
		state.CurrentSlotIndex = (state.CurrentSlotIndex + 1) % numSlots
		if !state.CompletedSlots[state.CurrentSlotIndex] {
			return true
		}
	}

	return false // All slots completed.
}

// ShouldAdvanceSlot returns true if the current slot's mini-block is done.
func ShouldAdvanceSlot(state *State) bool {
	return state.QuestionsInSlot >= QuestionsPerSlot
}

// CurrentSlot returns the current plan slot, or nil if invalid.
func CurrentSlot(state *State) *PlanSlot {
	if state.CurrentSlotIndex < 0 || state.CurrentSlotIndex >= len(state.Plan.Slots) {
		return nil
	}
	return &state.Plan.Slots[state.CurrentSlotIndex]
}

// BuildErrorContext constructs an error description string for LLM context.
func BuildErrorContext(question *Question, learnerAnswer string) string {
	return fmt.Sprintf(
		"Answered %s for '%s', correct answer was %s",
		learnerAnswer,
		question.Text,
		question.Answer,
	)
}
