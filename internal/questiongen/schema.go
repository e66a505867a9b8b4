package questiongen

import "github.com/SebastianBuritica/interviewprep/internal/llm"

// QuestionSchema defines the JSON schema for LLM question generation responses.
var QuestionSchema = &llm.Schema{
	Name:        "interview-question",
	Description: "A single front-end interview practice question with answer and explanation",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"question_text": map[string]any{
				"type":        "string",
				"description": "The question prompt shown to the learner, phrased as an interviewer would ask it",
			},
			"format": map[string]any{
				"type":        "string",
				"enum":        []any{"multiple_choice", "short_text"},
				"description": "How the learner answers: pick from choices or type a short answer",
			},
			"choices": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "string",
				},
				"description": "Exactly 4 options for multiple_choice format. Empty array for short_text format.",
			},
			"answer": map[string]any{
				"type":        "string",
				"description": "The correct answer. For multiple_choice: the text of the correct option. For short_text: the canonical term or phrase.",
			},
			"accepted": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "string",
				},
				"description": "Alternative phrasings accepted as correct for short_text format. Empty array for multiple_choice.",
			},
			"explanation": map[string]any{
				"type":        "string",
				"description": "A concise explanation of the answer, the way a strong candidate would give it",
			},
			"difficulty": map[string]any{
				"type":        "integer",
				"minimum":     1,
				"maximum":     3,
				"description": "Self-assessed difficulty from 1 (junior) to 3 (senior)",
			},
		},
		"required":             []any{"question_text", "format", "choices", "answer", "accepted", "explanation", "difficulty"},
		"additionalProperties": false,
	},
}
