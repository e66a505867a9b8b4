package grader

import "github.com/SebastianBuritica/interviewprep/internal/llm"

// GradeSchema defines the JSON schema for LLM answer grading responses.
var GradeSchema = &llm.Schema{
	Name:        "answer-grade",
	Description: "Judgment of a candidate's free-text answer against the reference answer",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"verdict": map[string]any{
				"type":        "string",
				"enum":        []any{"correct", "partial", "incorrect"},
				"description": "correct if the answer demonstrates the concept, partial if incomplete or imprecise, incorrect otherwise",
			},
			"score": map[string]any{
				"type":        "integer",
				"minimum":     0,
				"maximum":     100,
				"description": "Numeric score from 0 (wrong) to 100 (fully correct)",
			},
			"feedback": map[string]any{
				"type":        "string",
				"description": "One or two sentences telling the candidate what was right and what was missing",
			},
		},
		"required":             []any{"verdict", "score", "feedback"},
		"additionalProperties": false,
	},
}
