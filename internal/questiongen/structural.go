package questiongen

import "github.com/SebastianBuritica/interviewprep/internal/quiz"

// StructuralValidator checks that required fields are present, within
// length limits, and have valid enum values.
type StructuralValidator struct{}

func (v *StructuralValidator) Name() string { return "structural" }

func (v *StructuralValidator) Validate(q *quiz.Question, _ quiz.GenerateInput) *ValidationError {
	if q.Text == "" {
		return &ValidationError{
			Validator: v.Name(),
			Message:   "question_text is empty",
			Retryable: true,
		}
	}
	if len(q.Text) > 500 {
		return &ValidationError{
			Validator: v.Name(),
			Message:   "question_text exceeds 500 characters",
			Retryable: true,
		}
	}
	if q.Explanation == "" {
		return &ValidationError{
			Validator: v.Name(),
			Message:   "explanation is empty",
			Retryable: true,
		}
	}
	if len(q.Explanation) > 1000 {
		return &ValidationError{
			Validator: v.Name(),
			Message:   "explanation exceeds 1000 characters",
			Retryable: true,
		}
	}
	if q.Difficulty < 1 || q.Difficulty > 3 {
		return &ValidationError{
			Validator: v.Name(),
			Message:   "difficulty must be between 1 and 3",
			Retryable: true,
		}
	}
	if q.Format != quiz.FormatMultipleChoice && q.Format != quiz.FormatShortText {
		return &ValidationError{
			Validator: v.Name(),
			Message:   "format must be \"multiple_choice\" or \"short_text\"",
			Retryable: true,
		}
	}
	return nil
}
