package questiongen

import (
	"fmt"
	"strings"

	"github.com/SebastianBuritica/interviewprep/internal/quiz"
)

const systemPrompt = `You are a front-end interview coach creating practice questions for web developer job interviews.

Rules:
- Generate a single interview question for the given topic and difficulty.
- The question must be one an interviewer would realistically ask: concrete, focused on one concept, answerable in under a minute.
- Choose "multiple_choice" format for conceptual, comparison, or spot-the-bug questions (the candidate picks from 4 options).
- Choose "short_text" format when the answer is a specific term, API name, or one-line phrase the candidate should produce unprompted.
- For multiple choice, provide exactly 4 options where exactly one is correct. Distractors should reflect common misunderstandings, not filler.
- For short_text, keep the canonical answer short and list common alternative phrasings in "accepted".
- The explanation should be the answer a strong candidate would give: correct, concise, and mentioning the key trade-off or pitfall.
- Difficulty 1 is junior level, 2 is mid level, 3 is senior level.
- Do not repeat any question from the "already asked" list.
- If recent errors are listed, lean toward the concepts the candidate is getting wrong.`

// buildUserMessage constructs the user message from GenerateInput and Config limits.
func buildUserMessage(input quiz.GenerateInput, cfg Config) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Topic: %s\n", input.TopicName)
	if input.TopicSummary != "" {
		fmt.Fprintf(&b, "Topic scope: %s\n", input.TopicSummary)
	}
	fmt.Fprintf(&b, "Difficulty: %d\n", input.Difficulty)

	b.WriteString("\nAlready asked in this session:\n")
	b.WriteString(buildDedup(input.PriorQuestions, cfg.MaxPriorQuestions))

	b.WriteString("\nRecent errors by this candidate:\n")
	b.WriteString(buildErrors(input.RecentErrors, cfg.MaxRecentErrors))

	return b.String()
}

// buildErrors formats recent errors for the prompt, respecting the max limit.
func buildErrors(errors []string, max int) string {
	if len(errors) == 0 {
		return "None"
	}

	// Keep only the most recent N errors.
	if max > 0 && len(errors) > max {
		errors = errors[len(errors)-max:]
	}

	var b strings.Builder
	for i, e := range errors {
		fmt.Fprintf(&b, "%d. %s\n", i+1, e)
	}
	return strings.TrimRight(b.String(), "\n")
}
