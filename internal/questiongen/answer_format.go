package questiongen

import (
	"fmt"
	"strings"

	"github.com/SebastianBuritica/interviewprep/internal/quiz"
)

// AnswerFormatValidator checks that the answer and choices satisfy the
// constraints of the declared format.
type AnswerFormatValidator struct{}

func (v *AnswerFormatValidator) Name() string { return "answer-format" }

func (v *AnswerFormatValidator) Validate(q *quiz.Question, _ quiz.GenerateInput) *ValidationError {
	if strings.TrimSpace(q.Answer) == "" {
		return &ValidationError{
			Validator: v.Name(),
			Message:   "answer is empty",
			Retryable: true,
		}
	}

	// Validate multiple choice constraints.
	if q.Format == quiz.FormatMultipleChoice {
		if len(q.Choices) != 4 {
			return &ValidationError{
				Validator: v.Name(),
				Message:   fmt.Sprintf("multiple choice must have exactly 4 choices, got %d", len(q.Choices)),
				Retryable: true,
			}
		}
		// All choices must be non-empty and distinct.
		seen := make(map[string]bool, 4)
		for i, c := range q.Choices {
			c = strings.TrimSpace(c)
			if c == "" {
				return &ValidationError{
					Validator: v.Name(),
					Message:   fmt.Sprintf("choice %d is empty", i+1),
					Retryable: true,
				}
			}
			key := strings.ToLower(c)
			if seen[key] {
				return &ValidationError{
					Validator: v.Name(),
					Message:   fmt.Sprintf("duplicate choice %q", c),
					Retryable: true,
				}
			}
			seen[key] = true
		}
		// Exactly one choice must match the answer.
		answerLower := strings.ToLower(strings.TrimSpace(q.Answer))
		found := false
		for _, c := range q.Choices {
			if strings.ToLower(strings.TrimSpace(c)) == answerLower {
				found = true
				break
			}
		}
		if !found {
			return &ValidationError{
				Validator: v.Name(),
				Message:   fmt.Sprintf("answer %q not found in choices", q.Answer),
				Retryable: true,
			}
		}
		// Accepted variants only apply to short text.
		if len(q.Accepted) > 0 {
			return &ValidationError{
				Validator: v.Name(),
				Message:   "multiple choice must have empty accepted list",
				Retryable: true,
			}
		}
	}

	// Short text format must have no choices and a concise answer.
	if q.Format == quiz.FormatShortText {
		if len(q.Choices) > 0 {
			return &ValidationError{
				Validator: v.Name(),
				Message:   "short_text format must have empty choices",
				Retryable: true,
			}
		}
		if len(q.Answer) > 100 {
			return &ValidationError{
				Validator: v.Name(),
				Message:   "short_text answer exceeds 100 characters",
				Retryable: true,
			}
		}
		for i, a := range q.Accepted {
			if strings.TrimSpace(a) == "" {
				return &ValidationError{
					Validator: v.Name(),
					Message:   fmt.Sprintf("accepted variant %d is empty", i+1),
					Retryable: true,
				}
			}
		}
	}

	return nil
}
