package questiongen

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/SebastianBuritica/interviewprep/internal/llm"
	"github.com/SebastianBuritica/interviewprep/internal/quiz"
)

func testInput() quiz.GenerateInput {
	return quiz.GenerateInput{
		Topic:        "react",
		TopicName:    "React",
		TopicSummary: "Hooks, rendering behavior, and state management",
		Difficulty:   2,
	}
}

func validQuestionJSON() json.RawMessage {
	return json.RawMessage(`{
		"question_text": "Which hook memoizes an expensive computation against a dependency list?",
		"format": "short_text",
		"choices": [],
		"answer": "useMemo",
		"accepted": ["use memo", "the useMemo hook"],
		"explanation": "useMemo recomputes its value only when a dependency changes, so expensive work is skipped on unrelated re-renders.",
		"difficulty": 2
	}`)
}

func mcQuestionJSON() json.RawMessage {
	return json.RawMessage(`{
		"question_text": "Why must React state updates go through the setter?",
		"format": "multiple_choice",
		"choices": ["Mutation is slower", "The setter schedules a re-render", "State objects are frozen", "The setter validates types"],
		"answer": "The setter schedules a re-render",
		"accepted": [],
		"explanation": "React compares state by reference and re-renders on setter calls; in-place mutation never reaches React.",
		"difficulty": 1
	}`)
}

func TestGenerate_ShortText(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: validQuestionJSON(),
	})
	gen := New(mock, DefaultConfig())

	q, err := gen.Generate(context.Background(), testInput())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if q.Format != quiz.FormatShortText {
		t.Errorf("expected short_text format, got %q", q.Format)
	}
	if q.Answer != "useMemo" {
		t.Errorf("expected answer useMemo, got %q", q.Answer)
	}
	if len(q.Accepted) != 2 {
		t.Errorf("expected 2 accepted variants, got %d", len(q.Accepted))
	}
	if q.Topic != "react" {
		t.Errorf("expected topic react, got %q", q.Topic)
	}
	if q.Source != quiz.SourceLLM {
		t.Errorf("expected llm source, got %q", q.Source)
	}
}

func TestGenerate_MultipleChoice(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: mcQuestionJSON(),
	})
	gen := New(mock, DefaultConfig())

	q, err := gen.Generate(context.Background(), testInput())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if q.Format != quiz.FormatMultipleChoice {
		t.Errorf("expected multiple_choice format, got %q", q.Format)
	}
	if len(q.Choices) != 4 {
		t.Errorf("expected 4 choices, got %d", len(q.Choices))
	}
}

func TestGenerate_ValidationFailure(t *testing.T) {
	raw := json.RawMessage(`{
		"question_text": "Which hook runs side effects?",
		"format": "multiple_choice",
		"choices": ["useState", "useMemo", "useRef", "useCallback"],
		"answer": "useEffect",
		"accepted": [],
		"explanation": "useEffect runs after commit.",
		"difficulty": 1
	}`)
	mock := llm.NewMockProvider(llm.MockResponse{Content: raw})
	gen := New(mock, DefaultConfig())

	_, err := gen.Generate(context.Background(), testInput())
	if err == nil {
		t.Fatal("expected validation error")
	}
	var valErr *ValidationError
	if !errors.As(err, &valErr) {
		t.Fatalf("expected *ValidationError, got %T", err)
	}
	if valErr.Validator != "answer-format" {
		t.Errorf("expected answer-format validator, got %q", valErr.Validator)
	}
}

// customValidator rejects questions with difficulty above a threshold.
type customValidator struct {
	maxDifficulty int
}

func (v *customValidator) Name() string { return "custom-max-difficulty" }

func (v *customValidator) Validate(q *quiz.Question, _ quiz.GenerateInput) *ValidationError {
	if q.Difficulty > v.maxDifficulty {
		return &ValidationError{
			Validator: v.Name(),
			Message:   "difficulty too high",
			Retryable: true,
		}
	}
	return nil
}

func TestGenerate_CustomValidator(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: validQuestionJSON()})
	cfg := DefaultConfig()
	cfg.Validators = append(cfg.Validators, &customValidator{maxDifficulty: 1})
	gen := New(mock, cfg)

	_, err := gen.Generate(context.Background(), testInput())
	if err == nil {
		t.Fatal("expected custom validator to reject")
	}
	var valErr *ValidationError
	if !errors.As(err, &valErr) {
		t.Fatalf("expected *ValidationError, got %T", err)
	}
	if valErr.Validator != "custom-max-difficulty" {
		t.Errorf("expected custom-max-difficulty, got %q", valErr.Validator)
	}
}

// alwaysRejectValidator always rejects.
type alwaysRejectValidator struct{ name string }

func (v *alwaysRejectValidator) Name() string { return v.name }
func (v *alwaysRejectValidator) Validate(*quiz.Question, quiz.GenerateInput) *ValidationError {
	return &ValidationError{Validator: v.name, Message: "rejected", Retryable: true}
}

// trackingValidator records whether it was called.
type trackingValidator struct {
	called bool
}

func (v *trackingValidator) Name() string { return "tracking" }
func (v *trackingValidator) Validate(*quiz.Question, quiz.GenerateInput) *ValidationError {
	v.called = true
	return nil
}

func TestGenerate_ValidatorOrder(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: validQuestionJSON()})
	tracker := &trackingValidator{}
	cfg := Config{
		Validators:  []Validator{&alwaysRejectValidator{name: "first"}, tracker},
		MaxTokens:   512,
		Temperature: 0.7,
	}
	gen := New(mock, cfg)

	_, err := gen.Generate(context.Background(), testInput())
	if err == nil {
		t.Fatal("expected first validator to reject")
	}
	var valErr *ValidationError
	if !errors.As(err, &valErr) {
		t.Fatalf("expected *ValidationError, got %T", err)
	}
	if valErr.Validator != "first" {
		t.Errorf("expected error from 'first', got %q", valErr.Validator)
	}
	if tracker.called {
		t.Error("second validator should not have been called")
	}
}

func TestGenerate_NoValidators(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: validQuestionJSON()})
	cfg := Config{
		Validators:  nil,
		MaxTokens:   512,
		Temperature: 0.7,
	}
	gen := New(mock, cfg)

	q, err := gen.Generate(context.Background(), testInput())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if q.Answer != "useMemo" {
		t.Errorf("unexpected answer: %q", q.Answer)
	}
}

func TestGenerate_PriorQuestionsInPrompt(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: validQuestionJSON()})
	gen := New(mock, DefaultConfig())

	input := testInput()
	input.PriorQuestions = []string{
		"What does useState return?",
		"When does useEffect cleanup run?",
	}
	if _, err := gen.Generate(context.Background(), input); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if mock.CallCount() != 1 {
		t.Fatalf("expected 1 call, got %d", mock.CallCount())
	}
	userMsg := mock.Calls[0].Messages[0].Content
	for _, p := range input.PriorQuestions {
		if !strings.Contains(userMsg, p) {
			t.Errorf("expected user message to contain %q", p)
		}
	}
}

func TestGenerate_RecentErrorsInPrompt(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: validQuestionJSON()})
	gen := New(mock, DefaultConfig())

	input := testInput()
	input.RecentErrors = []string{
		"Answered useEffect for 'Which hook memoizes a computation?', correct answer was useMemo",
	}
	if _, err := gen.Generate(context.Background(), input); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	userMsg := mock.Calls[0].Messages[0].Content
	for _, e := range input.RecentErrors {
		if !strings.Contains(userMsg, e) {
			t.Errorf("expected user message to contain %q", e)
		}
	}
}

func TestGenerate_ConfigOverrides(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: validQuestionJSON()})
	cfg := DefaultConfig()
	cfg.MaxTokens = 256
	cfg.Temperature = 0.5
	gen := New(mock, cfg)

	if _, err := gen.Generate(context.Background(), testInput()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if mock.Calls[0].MaxTokens != 256 {
		t.Errorf("expected MaxTokens 256, got %d", mock.Calls[0].MaxTokens)
	}
	if mock.Calls[0].Temperature != 0.5 {
		t.Errorf("expected Temperature 0.5, got %f", mock.Calls[0].Temperature)
	}
	if mock.Calls[0].Schema != QuestionSchema {
		t.Error("expected the question schema on the request")
	}
}

func TestGenerate_ProviderError(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Err: errors.New("API error"),
	})
	gen := New(mock, DefaultConfig())

	_, err := gen.Generate(context.Background(), testInput())
	if err == nil {
		t.Fatal("expected error from provider")
	}
	if !strings.Contains(err.Error(), "LLM generation failed") {
		t.Errorf("unexpected error message: %v", err)
	}
}

func TestGenerate_MalformedJSON(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"question_text": `),
	})
	gen := New(mock, DefaultConfig())

	_, err := gen.Generate(context.Background(), testInput())
	if err == nil {
		t.Fatal("expected parse error")
	}
	if !strings.Contains(err.Error(), "failed to parse LLM response") {
		t.Errorf("unexpected error message: %v", err)
	}
}
