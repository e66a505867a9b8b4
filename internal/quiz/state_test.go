package quiz

import (
	"testing"
	"time"
)

func testPlan() *Plan {
	return &Plan{
		Slots: []PlanSlot{
			{Topic: "react", Category: CategoryChosen},
			{Topic: "css", Category: CategoryChosen},
		},
		Duration: DefaultDrillDuration,
	}
}

func testState() *State {
	return NewState(testPlan(), "test-session-id")
}

func testQuestion(topic string) *Question {
	return &Question{
		Topic:   topic,
		Text:    "Which hook memoizes a computation?",
		Format:  FormatMultipleChoice,
		Choices: []string{"useState", "useMemo", "useEffect", "useRef"},
		Answer:  "useMemo",
		Source:  SourceBank,
	}
}

func TestSlotCycling_AfterThreeQuestions(t *testing.T) {
	state := testState()
	state.QuestionsInSlot = QuestionsPerSlot

	if !ShouldAdvanceSlot(state) {
		t.Error("expected ShouldAdvanceSlot to return true after 3 questions")
	}

	if !AdvanceSlot(state) {
		t.Error("expected AdvanceSlot to succeed")
	}

	if state.CurrentSlotIndex != 1 {
		t.Errorf("CurrentSlotIndex = %d, want 1", state.CurrentSlotIndex)
	}
	if state.QuestionsInSlot != 0 {
		t.Errorf("QuestionsInSlot = %d, want 0", state.QuestionsInSlot)
	}
}

func TestSlotCycling_Wraparound(t *testing.T) {
	state := testState()
	state.CurrentSlotIndex = len(state.Plan.Slots) - 1

	if !AdvanceSlot(state) {
		t.Error("expected AdvanceSlot to succeed on wraparound")
	}

	if state.CurrentSlotIndex != 0 {
		t.Errorf("CurrentSlotIndex = %d, want 0 (wraparound)", state.CurrentSlotIndex)
	}
}

func TestSlotCycling_SkipCompleted(t *testing.T) {
	state := &State{
		Plan: &Plan{
			Slots: []PlanSlot{
				{Topic: "react", Category: CategoryChosen},
				{Topic: "css", Category: CategoryChosen},
				{Topic: "apis", Category: CategoryReview},
			},
		},
		CompletedSlots: map[int]bool{1: true},
	}

	if !AdvanceSlot(state) {
		t.Error("expected AdvanceSlot to succeed (should skip completed slot)")
	}

	if state.CurrentSlotIndex != 2 {
		t.Errorf("CurrentSlotIndex = %d, want 2 (skip completed)", state.CurrentSlotIndex)
	}
}

func TestSlotCycling_AllCompleted(t *testing.T) {
	state := testState()
	for i := range state.Plan.Slots {
		state.CompletedSlots[i] = true
	}

	if AdvanceSlot(state) {
		t.Error("expected AdvanceSlot to return false when all slots completed")
	}
}

func TestHandleAnswer_Correct(t *testing.T) {
	state := testState()
	state.CurrentQuestion = testQuestion("react")
	state.QuestionStartTime = time.Now()

	v := HandleAnswer(state, "useMemo", nil)

	if v == nil {
		t.Fatal("expected a verdict")
	}
	if !v.Correct() {
		t.Error("expected a correct verdict")
	}
	if state.TotalCorrect != 1 {
		t.Errorf("TotalCorrect = %d, want 1", state.TotalCorrect)
	}
	if state.TotalQuestions != 1 {
		t.Errorf("TotalQuestions = %d, want 1", state.TotalQuestions)
	}
	if state.LastVerdict != v {
		t.Error("expected LastVerdict to hold the returned verdict")
	}

	tr := state.PerTopic["react"]
	if tr == nil {
		t.Fatal("expected PerTopic to have an entry")
	}
	if tr.Correct != 1 {
		t.Errorf("TopicResult.Correct = %d, want 1", tr.Correct)
	}
}

func TestHandleAnswer_Incorrect(t *testing.T) {
	state := testState()
	state.CurrentQuestion = testQuestion("react")

	v := HandleAnswer(state, "useEffect", nil)

	if v.Correct() {
		t.Error("expected an incorrect verdict")
	}
	if state.TotalCorrect != 0 {
		t.Errorf("TotalCorrect = %d, want 0", state.TotalCorrect)
	}

	errors := state.RecentErrors["react"]
	if len(errors) != 1 {
		t.Errorf("RecentErrors length = %d, want 1", len(errors))
	}
}

func TestHandleAnswer_GraderVerdict(t *testing.T) {
	state := testState()
	state.CurrentQuestion = &Question{
		Topic:  "css",
		Text:   "Which box-sizing value includes padding in width?",
		Format: FormatShortText,
		Answer: "border-box",
	}

	// The grader's verdict wins even when the raw text wouldn't match.
	v := HandleAnswer(state, "the border box model", &Verdict{
		Verdict:  VerdictCorrect,
		Score:    90,
		Feedback: "Right idea.",
	})

	if !v.Correct() {
		t.Error("expected the grader verdict to decide correctness")
	}
	if state.TotalCorrect != 1 {
		t.Errorf("TotalCorrect = %d, want 1", state.TotalCorrect)
	}
}

func TestHandleAnswer_PartialCountsAsWrong(t *testing.T) {
	state := testState()
	state.CurrentQuestion = &Question{
		Topic:  "css",
		Text:   "Which box-sizing value includes padding in width?",
		Format: FormatShortText,
		Answer: "border-box",
	}

	HandleAnswer(state, "box sizing", &Verdict{Verdict: VerdictPartial, Score: 50})

	if state.TotalCorrect != 0 {
		t.Errorf("TotalCorrect = %d, want 0 (partial is not correct)", state.TotalCorrect)
	}
	if len(state.RecentErrors["css"]) != 1 {
		t.Error("expected a partial answer to be tracked as an error")
	}
}

func TestHandleAnswer_NoQuestion(t *testing.T) {
	state := testState()

	if v := HandleAnswer(state, "anything", nil); v != nil {
		t.Errorf("expected nil verdict with no current question, got %+v", v)
	}
	if state.TotalQuestions != 0 {
		t.Errorf("TotalQuestions = %d, want 0", state.TotalQuestions)
	}
}

func TestErrorContext_Construction(t *testing.T) {
	q := &Question{
		Text:   "Which HTTP method is idempotent and replaces a resource?",
		Answer: "PUT",
	}

	result := BuildErrorContext(q, "POST")
	expected := "Answered POST for 'Which HTTP method is idempotent and replaces a resource?', correct answer was PUT"

	if result != expected {
		t.Errorf("BuildErrorContext = %q, want %q", result, expected)
	}
}

func TestErrorContext_Limit(t *testing.T) {
	state := testState()

	// Add more than MaxRecentErrors errors.
	for i := 0; i < MaxRecentErrors+3; i++ {
		state.CurrentQuestion = testQuestion("react")
		HandleAnswer(state, "wrong", nil)
	}

	errors := state.RecentErrors["react"]
	if len(errors) != MaxRecentErrors {
		t.Errorf("RecentErrors length = %d, want %d", len(errors), MaxRecentErrors)
	}
}

func TestBuildSummary(t *testing.T) {
	state := testState()
	state.TotalQuestions = 8
	state.TotalCorrect = 6
	state.Elapsed = 9 * time.Minute

	tr := state.PerTopic["react"]
	tr.Attempted = 5
	tr.Correct = 4

	summary := BuildSummary(state)

	if summary.TotalQuestions != 8 {
		t.Errorf("TotalQuestions = %d, want 8", summary.TotalQuestions)
	}
	if summary.TotalCorrect != 6 {
		t.Errorf("TotalCorrect = %d, want 6", summary.TotalCorrect)
	}
	if summary.Accuracy != 0.75 {
		t.Errorf("Accuracy = %f, want 0.75", summary.Accuracy)
	}
	if len(summary.TopicResults) != 2 {
		t.Fatalf("TopicResults length = %d, want 2", len(summary.TopicResults))
	}
	if summary.TopicResults[0].Topic != "react" {
		t.Errorf("first topic = %q, want plan order (react)", summary.TopicResults[0].Topic)
	}
}

func TestBuildSummary_DedupesRepeatedTopics(t *testing.T) {
	plan := &Plan{
		Slots: []PlanSlot{
			{Topic: "react", Category: CategoryChosen},
			{Topic: "react", Category: CategoryChosen},
			{Topic: "css", Category: CategoryReview},
		},
	}
	state := NewState(plan, "dedup-test")

	summary := BuildSummary(state)

	if len(summary.TopicResults) != 2 {
		t.Errorf("TopicResults length = %d, want 2 (react listed once)", len(summary.TopicResults))
	}
}

func TestCurrentSlot(t *testing.T) {
	state := testState()

	slot := CurrentSlot(state)
	if slot == nil {
		t.Fatal("expected non-nil slot")
	}
	if slot.Topic != "react" {
		t.Errorf("slot topic = %q, want %q", slot.Topic, "react")
	}

	state.CurrentSlotIndex = 99
	if CurrentSlot(state) != nil {
		t.Error("expected nil slot for out-of-range index")
	}
}

func TestNewState(t *testing.T) {
	state := NewState(testPlan(), "test-id")

	if state.SessionID != "test-id" {
		t.Errorf("SessionID = %q, want %q", state.SessionID, "test-id")
	}
	if state.Phase != PhaseActive {
		t.Errorf("Phase = %d, want PhaseActive", state.Phase)
	}
	if len(state.PerTopic) != 2 {
		t.Errorf("PerTopic length = %d, want 2", len(state.PerTopic))
	}
	if state.PerTopic["css"].Category != CategoryChosen {
		t.Errorf("css category = %q, want chosen", state.PerTopic["css"].Category)
	}
	if state.PriorQuestions == nil || state.RecentErrors == nil || state.CompletedSlots == nil {
		t.Error("expected maps to be initialized")
	}
}
