package quiz

import (
	"strconv"
	"strings"
)

// CheckAnswer compares the learner's input against the correct answer.
// Returns true if the answer is correct.
//
// Normalization rules:
// - Whitespace is trimmed and inner runs collapse to one space
// - Comparison is case-insensitive
// - Trailing sentence punctuation is ignored
// - For multiple choice: matches against the choice text or index (1-4)
// - For short text: the canonical answer and every accepted variant count
func CheckAnswer(learnerAnswer string, question *Question) bool {
	learnerAnswer = strings.TrimSpace(learnerAnswer)
	if learnerAnswer == "" {
		return false
	}

	if question.Format == FormatMultipleChoice {
		return checkMultipleChoice(learnerAnswer, question)
	}

	normalized := normalizeAnswer(learnerAnswer)
	if normalized == normalizeAnswer(question.Answer) {
		return true
	}
	for _, variant := range question.Accepted {
		if normalized == normalizeAnswer(variant) {
			return true
		}
	}
	return false
}

// checkMultipleChoice checks the learner's answer against MC choices.
func checkMultipleChoice(learnerAnswer string, question *Question) bool {
	// Try matching by index (1-4).
	if idx, err := strconv.Atoi(learnerAnswer); err == nil && idx >= 1 && idx <= len(question.Choices) {
		return strings.EqualFold(
			strings.TrimSpace(question.Choices[idx-1]),
			strings.TrimSpace(question.Answer),
		)
	}

	// Match by text (case-insensitive).
	return strings.EqualFold(
		strings.TrimSpace(learnerAnswer),
		strings.TrimSpace(question.Answer),
	)
}

// CorrectChoiceIndex returns the index of the choice matching the
// question's answer, or -1 when none matches. The comparison follows
// the same rules CheckAnswer applies to multiple choice.
func CorrectChoiceIndex(question *Question) int {
	for i, choice := range question.Choices {
		if strings.EqualFold(strings.TrimSpace(choice), strings.TrimSpace(question.Answer)) {
			return i
		}
	}
	return -1
}

// normalizeAnswer lowercases, collapses whitespace, and strips trailing
// sentence punctuation for short-text comparison.
func normalizeAnswer(answer string) string {
	answer = strings.ToLower(strings.TrimSpace(answer))
	answer = strings.Join(strings.Fields(answer), " ")
	return strings.TrimRight(answer, ".!?")
}
