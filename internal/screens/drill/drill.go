// Package drill implements the timed practice drill: a topic chooser,
// the question loop with feedback, and the end-of-drill persistence
// that feeds the summary screen.
package drill

import (
	"context"
	"errors"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/SebastianBuritica/interviewprep/internal/guides"
	"github.com/SebastianBuritica/interviewprep/internal/progress"
	"github.com/SebastianBuritica/interviewprep/internal/questiongen"
	"github.com/SebastianBuritica/interviewprep/internal/quiz"
	"github.com/SebastianBuritica/interviewprep/internal/review"
	"github.com/SebastianBuritica/interviewprep/internal/router"
	"github.com/SebastianBuritica/interviewprep/internal/screen"
	"github.com/SebastianBuritica/interviewprep/internal/screens/summary"
	"github.com/SebastianBuritica/interviewprep/internal/store"
	"github.com/SebastianBuritica/interviewprep/internal/ui/components"
	"github.com/SebastianBuritica/interviewprep/internal/ui/layout"
)

const (
	// generateAttempts bounds retries against the primary generator
	// before the bank fallback takes over.
	generateAttempts = 3

	// gradeTimeout caps how long a single grading call may take. The
	// screen swallows keys while grading, so a hung call must not hang
	// the drill.
	gradeTimeout = 20 * time.Second

	// snapshotKeep is how many snapshots survive the post-drill prune.
	snapshotKeep = 10

	// maxSummaryLen bounds the guide excerpt passed to the generator.
	maxSummaryLen = 600
)

// Deps carries the collaborators a drill needs. Fallback serves bank
// questions when the primary generator fails; Grader may be nil, in
// which case free-text answers are judged by exact match only.
type Deps struct {
	Events    store.EventRepo
	Snapshots store.SnapshotRepo
	Library   *guides.Library
	Generator quiz.Generator
	Fallback  quiz.Generator
	Grader    quiz.Grader
	Scheduler *review.Scheduler
	Logger    *zap.Logger
	Duration  time.Duration
}

// topicChoice is one row in the pre-drill topic chooser.
type topicChoice struct {
	key    string
	name   string
	due    bool
	chosen bool
}

// DrillScreen runs a practice drill from topic selection through the
// handoff to the summary screen.
type DrillScreen struct {
	deps Deps

	// Topic chooser, shown until the drill starts.
	choosing bool
	topics   []topicChoice
	cursor   int
	notice   string

	// Running drill.
	state      *quiz.State
	input      components.TextInput
	mcSelected int
	grading    bool
	abandoned  bool
	finishing  bool
	errMsg     string
}

var _ screen.Screen = (*DrillScreen)(nil)
var _ screen.KeyHintProvider = (*DrillScreen)(nil)

// New creates the drill screen, opening on the topic chooser. Topics
// due for review are badged so the learner knows what the plan will
// pull in.
func New(deps Deps) *DrillScreen {
	if deps.Logger == nil {
		deps.Logger = zap.NewNop()
	}
	if deps.Duration <= 0 {
		deps.Duration = quiz.DefaultDrillDuration
	}

	due := make(map[string]bool)
	if deps.Scheduler != nil {
		for _, topic := range deps.Scheduler.DueTopics(time.Now()) {
			due[topic] = true
		}
	}
	topics := make([]topicChoice, 0, len(guides.Topics))
	for _, t := range guides.Topics {
		topics = append(topics, topicChoice{key: t.Key, name: t.Name, due: due[t.Key]})
	}

	return &DrillScreen{deps: deps, choosing: true, topics: topics}
}

func (d *DrillScreen) Init() tea.Cmd {
	return nil
}

func (d *DrillScreen) Title() string {
	return "Practice Drill"
}

func (d *DrillScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case drillInitMsg:
		return d.handleInit(msg)
	case questionReadyMsg:
		return d.handleQuestionReady(msg)
	case timerTickMsg:
		return d.handleTick()
	case gradedMsg:
		return d.handleGraded(msg)
	case drillEndMsg:
		return d.endDrill()
	case drillFinishedMsg:
		return d, func() tea.Msg {
			return router.ReplaceScreenMsg{Screen: summary.New(msg.Summary)}
		}
	case tea.KeyPressMsg:
		return d.handleKey(msg)
	}
	return d, nil
}

func (d *DrillScreen) handleKey(msg tea.KeyPressMsg) (screen.Screen, tea.Cmd) {
	if d.errMsg != "" {
		return d, func() tea.Msg { return router.PopScreenMsg{} }
	}
	if d.choosing {
		return d.handleChooserKey(msg)
	}
	if d.state == nil || d.finishing || d.grading {
		return d, nil
	}
	if d.state.ShowingQuitConfirm {
		return d.handleQuitConfirmKey(msg)
	}
	if d.state.Phase == quiz.PhaseFeedback {
		return d.continueAfterFeedback()
	}
	if d.state.CurrentQuestion == nil {
		if msg.String() == "esc" {
			d.state.ShowingQuitConfirm = true
		}
		return d, nil
	}
	return d.handleQuestionKey(msg)
}

func (d *DrillScreen) handleChooserKey(msg tea.KeyPressMsg) (screen.Screen, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		if d.cursor > 0 {
			d.cursor--
		}
	case "down", "j":
		if d.cursor < len(d.topics)-1 {
			d.cursor++
		}
	case "space", " ":
		d.topics[d.cursor].chosen = !d.topics[d.cursor].chosen
		d.notice = ""
	case "a":
		all := true
		for _, t := range d.topics {
			if !t.chosen {
				all = false
				break
			}
		}
		for i := range d.topics {
			d.topics[i].chosen = !all
		}
		d.notice = ""
	case "enter":
		return d.startDrill()
	case "esc":
		return d, func() tea.Msg { return router.PopScreenMsg{} }
	}
	return d, nil
}

// startDrill builds the plan and records the session start event off
// the UI goroutine. A drill with nothing chosen still starts when
// review topics are due; with nothing at all it stays on the chooser.
func (d *DrillScreen) startDrill() (screen.Screen, tea.Cmd) {
	var chosen []string
	hasDue := false
	for _, t := range d.topics {
		if t.chosen {
			chosen = append(chosen, t.key)
		} else if t.due {
			hasDue = true
		}
	}
	if len(chosen) == 0 && !hasDue {
		d.notice = "Pick at least one topic (space toggles)."
		return d, nil
	}

	d.choosing = false
	deps := d.deps
	return d, func() tea.Msg {
		var due []string
		if deps.Scheduler != nil {
			due = deps.Scheduler.DueTopics(time.Now())
		}
		plan := quiz.BuildPlan(chosen, due)
		if len(plan.Slots) == 0 {
			return drillInitMsg{Err: errors.New("no topics to drill")}
		}
		plan.Duration = deps.Duration

		state := quiz.NewState(plan, uuid.New().String())
		err := deps.Events.AppendSessionEvent(context.Background(), store.SessionEventData{
			SessionID: state.SessionID,
			Action:    store.SessionStart,
			Topics:    planTopics(plan),
		})
		if err != nil {
			return drillInitMsg{Err: err}
		}
		return drillInitMsg{State: state}
	}
}

func (d *DrillScreen) handleInit(msg drillInitMsg) (screen.Screen, tea.Cmd) {
	if msg.Err != nil {
		d.errMsg = msg.Err.Error()
		return d, nil
	}
	d.state = msg.State
	return d, tea.Batch(d.generateQuestion(), d.tick())
}

func (d *DrillScreen) tick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return timerTickMsg(t)
	})
}

// handleTick advances the clock. Expiry is only flagged here; the
// current question always gets to finish, and the feedback step acts
// on the flag.
func (d *DrillScreen) handleTick() (screen.Screen, tea.Cmd) {
	if d.state == nil || d.state.Phase == quiz.PhaseEnding || d.finishing {
		return d, nil
	}
	d.state.Elapsed = time.Since(d.state.StartTime)
	if d.state.Elapsed >= d.state.Plan.Duration {
		d.state.TimeExpired = true
	}
	return d, d.tick()
}

// generateQuestion produces the next question for the current slot.
// The primary generator gets three attempts, with non-retryable
// validation failures cutting the loop short; the bank fallback gets
// one chance after that.
func (d *DrillScreen) generateQuestion() tea.Cmd {
	deps := d.deps
	state := d.state
	return func() tea.Msg {
		slot := quiz.CurrentSlot(state)
		if slot == nil {
			return questionReadyMsg{Err: errors.New("drill has no current slot")}
		}

		difficulty := state.QuestionsInSlot + 1
		if difficulty > 3 {
			difficulty = 3
		}
		input := quiz.GenerateInput{
			Topic:          slot.Topic,
			TopicName:      guides.TopicName(slot.Topic),
			Difficulty:     difficulty,
			PriorQuestions: state.PriorQuestions[slot.Topic],
			RecentErrors:   state.RecentErrors[slot.Topic],
		}
		if deps.Library != nil {
			input.TopicSummary = deps.Library.TopicSummary(slot.Topic, maxSummaryLen)
		}

		q, err := generateWithRetry(deps.Generator, input)
		if err != nil && deps.Fallback != nil {
			deps.Logger.Warn("question generation failed, trying bank",
				zap.String("topic", slot.Topic), zap.Error(err))
			q, err = deps.Fallback.Generate(context.Background(), input)
		}
		if err != nil {
			return questionReadyMsg{Err: err}
		}
		return questionReadyMsg{Question: q}
	}
}

func generateWithRetry(gen quiz.Generator, input quiz.GenerateInput) (*quiz.Question, error) {
	var lastErr error
	for attempt := 0; attempt < generateAttempts; attempt++ {
		q, err := gen.Generate(context.Background(), input)
		if err == nil {
			return q, nil
		}
		lastErr = err
		var valErr *questiongen.ValidationError
		if errors.As(err, &valErr) && !valErr.Retryable {
			break
		}
	}
	return nil, lastErr
}

func (d *DrillScreen) handleQuestionReady(msg questionReadyMsg) (screen.Screen, tea.Cmd) {
	if d.state == nil || d.finishing {
		return d, nil
	}
	if msg.Err != nil {
		// A slot that cannot produce questions drops out of the rotation.
		d.deps.Logger.Warn("dropping slot after generation failure",
			zap.Int("slot", d.state.CurrentSlotIndex), zap.Error(msg.Err))
		d.state.CompletedSlots[d.state.CurrentSlotIndex] = true
		if !quiz.AdvanceSlot(d.state) {
			return d.endDrill()
		}
		return d, d.generateQuestion()
	}

	d.state.CurrentQuestion = msg.Question
	d.state.QuestionsInSlot++
	d.state.QuestionStartTime = time.Now()
	d.mcSelected = 0
	if msg.Question.Format == quiz.FormatShortText {
		d.input = components.NewTextInput("Type your answer...", 120)
		return d, d.input.Init()
	}
	return d, nil
}

func (d *DrillScreen) handleQuestionKey(msg tea.KeyPressMsg) (screen.Screen, tea.Cmd) {
	q := d.state.CurrentQuestion
	key := msg.String()

	if key == "esc" {
		d.state.ShowingQuitConfirm = true
		return d, nil
	}

	if q.Format == quiz.FormatMultipleChoice {
		switch key {
		case "up", "k":
			if d.mcSelected > 0 {
				d.mcSelected--
			}
		case "down", "j":
			if d.mcSelected < len(q.Choices)-1 {
				d.mcSelected++
			}
		case "1", "2", "3", "4":
			idx := int(key[0] - '1')
			if idx < len(q.Choices) {
				d.mcSelected = idx
				return d.submitAnswer(q.Choices[idx])
			}
		case "enter":
			return d.submitAnswer(q.Choices[d.mcSelected])
		}
		return d, nil
	}

	if key == "enter" {
		answer := d.input.Value()
		if answer == "" {
			return d, nil
		}
		return d.submitAnswer(answer)
	}
	var cmd tea.Cmd
	d.input, cmd = d.input.Update(msg)
	return d, cmd
}

// submitAnswer routes the answer: exact matches and multiple choice
// are judged locally, everything else goes to the grader when one is
// wired.
func (d *DrillScreen) submitAnswer(answer string) (screen.Screen, tea.Cmd) {
	q := d.state.CurrentQuestion
	timeMs := time.Since(d.state.QuestionStartTime).Milliseconds()

	if q.Format == quiz.FormatShortText && d.deps.Grader != nil && !quiz.CheckAnswer(answer, q) {
		d.grading = true
		return d, d.gradeAnswer(q, answer, timeMs)
	}

	v := quiz.HandleAnswer(d.state, answer, nil)
	return d, d.afterAnswer(v, answer, timeMs)
}

func (d *DrillScreen) gradeAnswer(q *quiz.Question, answer string, timeMs int64) tea.Cmd {
	grader := d.deps.Grader
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), gradeTimeout)
		defer cancel()
		v, err := grader.Grade(ctx, q, answer)
		return gradedMsg{Answer: answer, TimeMs: timeMs, Verdict: v, Err: err}
	}
}

func (d *DrillScreen) handleGraded(msg gradedMsg) (screen.Screen, tea.Cmd) {
	if d.state == nil || !d.grading {
		return d, nil
	}
	d.grading = false
	verdict := msg.Verdict
	if msg.Err != nil {
		d.deps.Logger.Warn("grading failed, falling back to exact match", zap.Error(msg.Err))
		verdict = nil
	}
	v := quiz.HandleAnswer(d.state, msg.Answer, verdict)
	return d, d.afterAnswer(v, msg.Answer, msg.TimeMs)
}

// afterAnswer moves to feedback and persists the answer event.
// Review-slot answers also feed the spaced repetition schedule.
func (d *DrillScreen) afterAnswer(v *quiz.Verdict, answer string, timeMs int64) tea.Cmd {
	d.state.Phase = quiz.PhaseFeedback

	q := d.state.CurrentQuestion
	slot := quiz.CurrentSlot(d.state)
	if slot != nil && slot.Category == quiz.CategoryReview && d.deps.Scheduler != nil {
		d.deps.Scheduler.RecordReview(slot.Topic, v.Correct(), time.Now())
	}

	deps := d.deps
	data := store.AnswerEventData{
		SessionID:      d.state.SessionID,
		Topic:          q.Topic,
		QuestionText:   q.Text,
		QuestionSource: string(q.Source),
		Format:         string(q.Format),
		CorrectAnswer:  q.Answer,
		LearnerAnswer:  answer,
		Correct:        v.Correct(),
		Score:          v.Score,
		TimeMs:         timeMs,
	}
	return func() tea.Msg {
		if err := deps.Events.AppendAnswerEvent(context.Background(), data); err != nil {
			deps.Logger.Warn("failed to record answer", zap.Error(err))
		}
		return nil
	}
}

func (d *DrillScreen) continueAfterFeedback() (screen.Screen, tea.Cmd) {
	st := d.state
	if st.TimeExpired {
		return d.endDrill()
	}
	if quiz.ShouldAdvanceSlot(st) {
		st.CompletedSlots[st.CurrentSlotIndex] = true
		if !quiz.AdvanceSlot(st) {
			return d.endDrill()
		}
	}
	st.Phase = quiz.PhaseActive
	st.CurrentQuestion = nil
	return d, d.generateQuestion()
}

func (d *DrillScreen) handleQuitConfirmKey(msg tea.KeyPressMsg) (screen.Screen, tea.Cmd) {
	switch msg.String() {
	case "y":
		d.state.ShowingQuitConfirm = false
		d.abandoned = true
		return d.endDrill()
	case "n", "esc":
		d.state.ShowingQuitConfirm = false
	}
	return d, nil
}

func (d *DrillScreen) endDrill() (screen.Screen, tea.Cmd) {
	if d.state == nil || d.finishing {
		return d, nil
	}
	d.finishing = true
	d.state.Phase = quiz.PhaseEnding
	d.state.Elapsed = time.Since(d.state.StartTime)
	return d, d.finishDrill()
}

// finishDrill records the session end, refreshes derived progress,
// syncs the review schedule, and captures a snapshot. Persistence
// failures are logged and the summary still shows.
func (d *DrillScreen) finishDrill() tea.Cmd {
	deps := d.deps
	state := d.state
	abandoned := d.abandoned
	return func() tea.Msg {
		ctx := context.Background()
		now := time.Now()

		action := store.SessionEnd
		if abandoned {
			action = store.SessionAbandon
		}
		err := deps.Events.AppendSessionEvent(ctx, store.SessionEventData{
			SessionID:       state.SessionID,
			Action:          action,
			Topics:          planTopics(state.Plan),
			QuestionsServed: state.TotalQuestions,
			CorrectAnswers:  state.TotalCorrect,
			DurationSecs:    int(state.Elapsed.Seconds()),
		})
		if err != nil {
			deps.Logger.Warn("failed to record drill end", zap.Error(err))
		}

		if prog, err := progress.Compute(ctx, deps.Events, now); err != nil {
			deps.Logger.Warn("failed to recompute progress", zap.Error(err))
		} else {
			var revStates map[string]store.ReviewState
			if deps.Scheduler != nil {
				deps.Scheduler.Sync(prog.StrongTopics(), now)
				revStates = deps.Scheduler.SnapshotData()
			}
			if deps.Snapshots != nil {
				snap := &store.Snapshot{
					Timestamp: now,
					Data: store.SnapshotData{
						Version:  1,
						Topics:   prog.SnapshotTopics(),
						Review:   revStates,
						Counters: prog.SnapshotCounters(),
					},
				}
				if err := deps.Snapshots.Save(ctx, snap); err != nil {
					deps.Logger.Warn("failed to save snapshot", zap.Error(err))
				} else if err := deps.Snapshots.Prune(ctx, snapshotKeep); err != nil {
					deps.Logger.Warn("failed to prune snapshots", zap.Error(err))
				}
			}
		}

		return drillFinishedMsg{Summary: quiz.BuildSummary(state)}
	}
}

// planTopics returns the plan's topics in slot order, each once.
func planTopics(plan *quiz.Plan) []string {
	var topics []string
	seen := make(map[string]bool)
	for _, slot := range plan.Slots {
		if !seen[slot.Topic] {
			seen[slot.Topic] = true
			topics = append(topics, slot.Topic)
		}
	}
	return topics
}

func (d *DrillScreen) KeyHints() []layout.KeyHint {
	switch {
	case d.errMsg != "":
		return []layout.KeyHint{{Key: "any", Description: "Back"}}
	case d.choosing:
		return []layout.KeyHint{
			{Key: "Space", Description: "Toggle"},
			{Key: "a", Description: "All"},
			{Key: "Enter", Description: "Start"},
			{Key: "Esc", Description: "Back"},
		}
	case d.state == nil || d.finishing:
		return nil
	case d.state.ShowingQuitConfirm:
		return []layout.KeyHint{
			{Key: "y", Description: "End drill"},
			{Key: "n", Description: "Keep going"},
		}
	case d.state.Phase == quiz.PhaseFeedback:
		return []layout.KeyHint{{Key: "any", Description: "Continue"}}
	default:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Submit"},
			{Key: "Esc", Description: "End drill"},
		}
	}
}
