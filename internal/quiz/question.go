package quiz

import "context"

// Format describes how the learner provides their answer.
type Format string

const (
	// FormatMultipleChoice means the learner picks from 4 choices.
	FormatMultipleChoice Format = "multiple_choice"

	// FormatShortText means the learner types a short free-text answer.
	FormatShortText Format = "short_text"
)

// Source records where a question came from.
type Source string

const (
	SourceBank Source = "bank"
	SourceLLM  Source = "llm"
)

// Question represents a single interview drill question ready for display.
type Question struct {
	// Topic is the topic key this question belongs to ("react", "css", ...).
	Topic string

	// Text is the question prompt displayed to the learner.
	Text string

	// Format indicates how the learner answers this question.
	Format Format

	// Choices is populated only when Format is FormatMultipleChoice.
	// Contains exactly 4 options, one of which matches Answer.
	Choices []string

	// Answer is the canonical correct answer.
	// For multiple choice: the text of the correct option.
	// For short text: the model answer shown in feedback.
	Answer string

	// Accepted holds alternative short-text answers also counted as
	// correct ("ref" for "useRef", "strict equality" for "===").
	Accepted []string

	// Explanation is a brief model answer shown after the learner answers.
	Explanation string

	// Difficulty runs 1 (warm-up) to 3 (senior-round).
	Difficulty int

	// Source is "bank" for curated questions, "llm" for generated ones.
	Source Source
}

// GenerateInput holds the context a Generator needs to produce a fresh
// question for a topic.
type GenerateInput struct {
	// Topic is the topic key.
	Topic string

	// TopicName is the display name ("React", "Design Patterns").
	TopicName string

	// TopicSummary is a short excerpt from the topic's guide, giving the
	// generator concrete material to draw on.
	TopicSummary string

	// Difficulty is the requested difficulty (1-3).
	Difficulty int

	// PriorQuestions contains the Text of questions already asked in this
	// session for this topic. Used for deduplication in the prompt.
	PriorQuestions []string

	// RecentErrors contains descriptions of the learner's recent mistakes
	// on this topic. Up to 5 most recent. Empty slice if no history.
	RecentErrors []string
}

// Generator produces interview questions, typically via an LLM provider.
type Generator interface {
	// Generate produces a single validated question for the given input.
	Generate(ctx context.Context, input GenerateInput) (*Question, error)
}

// Verdict is a graded judgment of a free-text answer.
type Verdict struct {
	// Verdict is "correct", "partial", or "incorrect".
	Verdict string

	// Score runs 0-100.
	Score int

	// Feedback is a short paragraph explaining the judgment.
	Feedback string
}

// Correct reports whether the verdict counts as a correct answer.
// Partial credit does not count toward the correct tally.
func (v *Verdict) Correct() bool {
	return v != nil && v.Verdict == VerdictCorrect
}

const (
	VerdictCorrect   = "correct"
	VerdictPartial   = "partial"
	VerdictIncorrect = "incorrect"
)

// Grader judges free-text answers, typically via an LLM provider.
type Grader interface {
	// Grade evaluates the learner's answer against the question's model
	// answer and returns a structured verdict.
	Grade(ctx context.Context, q *Question, learnerAnswer string) (*Verdict, error)
}
