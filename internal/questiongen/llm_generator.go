package questiongen

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/SebastianBuritica/interviewprep/internal/llm"
	"github.com/SebastianBuritica/interviewprep/internal/quiz"
)

// LLMGenerator implements quiz.Generator using the LLM provider.
type LLMGenerator struct {
	provider llm.Provider
	config   Config
}

// New creates a new LLMGenerator with the given provider and config.
func New(provider llm.Provider, cfg Config) *LLMGenerator {
	return &LLMGenerator{provider: provider, config: cfg}
}

// questionOutput is the raw LLM response before validation.
type questionOutput struct {
	QuestionText string   `json:"question_text"`
	Format       string   `json:"format"`
	Choices      []string `json:"choices"`
	Answer       string   `json:"answer"`
	Accepted     []string `json:"accepted"`
	Explanation  string   `json:"explanation"`
	Difficulty   int      `json:"difficulty"`
}

// Generate produces a single question for the given input context.
func (g *LLMGenerator) Generate(ctx context.Context, input quiz.GenerateInput) (*quiz.Question, error) {
	ctx = llm.WithPurpose(ctx, "quiz-question")

	userMsg := buildUserMessage(input, g.config)

	req := llm.Request{
		System: systemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: userMsg},
		},
		Schema:      QuestionSchema,
		MaxTokens:   g.config.MaxTokens,
		Temperature: g.config.Temperature,
	}

	resp, err := g.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("LLM generation failed: %w", err)
	}

	var raw questionOutput
	if err := json.Unmarshal(resp.Content, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse LLM response: %w", err)
	}

	q := &quiz.Question{
		Topic:       input.Topic,
		Text:        raw.QuestionText,
		Format:      quiz.Format(raw.Format),
		Choices:     raw.Choices,
		Answer:      raw.Answer,
		Accepted:    raw.Accepted,
		Explanation: raw.Explanation,
		Difficulty:  raw.Difficulty,
		Source:      quiz.SourceLLM,
	}

	// Run validators in order.
	for _, v := range g.config.Validators {
		if verr := v.Validate(q, input); verr != nil {
			return nil, verr
		}
	}

	return q, nil
}
