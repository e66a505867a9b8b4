package questiongen

import (
	"strings"
	"testing"

	"github.com/SebastianBuritica/interviewprep/internal/quiz"
)

func validMCQuestion() *quiz.Question {
	return &quiz.Question{
		Topic:       "design-patterns",
		Text:        "An event emitter with subscribers is an example of which pattern?",
		Format:      quiz.FormatMultipleChoice,
		Choices:     []string{"Singleton", "Observer", "Factory", "Adapter"},
		Answer:      "Observer",
		Explanation: "Observer decouples a subject from its listeners.",
		Difficulty:  1,
		Source:      quiz.SourceLLM,
	}
}

func TestAnswerFormat_ValidMultipleChoice(t *testing.T) {
	v := &AnswerFormatValidator{}
	if err := v.Validate(validMCQuestion(), quiz.GenerateInput{}); err != nil {
		t.Fatalf("expected nil, got %v", err)
	}
}

func TestAnswerFormat_ValidShortText(t *testing.T) {
	v := &AnswerFormatValidator{}
	if err := v.Validate(validQuestion(), quiz.GenerateInput{}); err != nil {
		t.Fatalf("expected nil, got %v", err)
	}
}

func TestAnswerFormat_EmptyAnswer(t *testing.T) {
	v := &AnswerFormatValidator{}
	q := validQuestion()
	q.Answer = "   "
	if err := v.Validate(q, quiz.GenerateInput{}); err == nil {
		t.Fatal("expected error for empty answer")
	}
}

func TestAnswerFormat_WrongChoiceCount(t *testing.T) {
	v := &AnswerFormatValidator{}

	for _, n := range []int{0, 2, 3, 5} {
		q := validMCQuestion()
		q.Choices = q.Choices[:0]
		for i := 0; i < n; i++ {
			q.Choices = append(q.Choices, strings.Repeat("x", i+1))
		}
		if n >= 2 {
			q.Choices[1] = q.Answer
		}
		err := v.Validate(q, quiz.GenerateInput{})
		if err == nil {
			t.Errorf("expected error for %d choices", n)
		}
	}
}

func TestAnswerFormat_EmptyChoice(t *testing.T) {
	v := &AnswerFormatValidator{}
	q := validMCQuestion()
	q.Choices[2] = "  "
	if err := v.Validate(q, quiz.GenerateInput{}); err == nil {
		t.Fatal("expected error for empty choice")
	}
}

func TestAnswerFormat_DuplicateChoices(t *testing.T) {
	v := &AnswerFormatValidator{}
	q := validMCQuestion()
	q.Choices[3] = "observer"
	if err := v.Validate(q, quiz.GenerateInput{}); err == nil {
		t.Fatal("expected error for duplicate choices (case-insensitive)")
	}
}

func TestAnswerFormat_AnswerNotInChoices(t *testing.T) {
	v := &AnswerFormatValidator{}
	q := validMCQuestion()
	q.Answer = "Strategy"
	if err := v.Validate(q, quiz.GenerateInput{}); err == nil {
		t.Fatal("expected error for answer missing from choices")
	}
}

func TestAnswerFormat_MCWithAcceptedVariants(t *testing.T) {
	v := &AnswerFormatValidator{}
	q := validMCQuestion()
	q.Accepted = []string{"the observer pattern"}
	if err := v.Validate(q, quiz.GenerateInput{}); err == nil {
		t.Fatal("expected error for accepted variants on multiple choice")
	}
}

func TestAnswerFormat_ShortTextWithChoices(t *testing.T) {
	v := &AnswerFormatValidator{}
	q := validQuestion()
	q.Choices = []string{"a", "b", "c", "d"}
	if err := v.Validate(q, quiz.GenerateInput{}); err == nil {
		t.Fatal("expected error for short_text with choices")
	}
}

func TestAnswerFormat_ShortTextAnswerTooLong(t *testing.T) {
	v := &AnswerFormatValidator{}
	q := validQuestion()
	q.Answer = strings.Repeat("a", 101)
	if err := v.Validate(q, quiz.GenerateInput{}); err == nil {
		t.Fatal("expected error for over-long short_text answer")
	}
}

func TestAnswerFormat_EmptyAcceptedVariant(t *testing.T) {
	v := &AnswerFormatValidator{}
	q := validQuestion()
	q.Accepted = []string{"state and setter", ""}
	if err := v.Validate(q, quiz.GenerateInput{}); err == nil {
		t.Fatal("expected error for empty accepted variant")
	}
}
