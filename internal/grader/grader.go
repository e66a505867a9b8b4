package grader

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"text/template"

	"github.com/SebastianBuritica/interviewprep/internal/llm"
	"github.com/SebastianBuritica/interviewprep/internal/quiz"
)

// Config holds configuration for the LLM grader.
type Config struct {
	MaxTokens   int
	Temperature float64
}

// DefaultConfig returns sensible defaults. Grading wants low
// temperature: the same answer should get the same verdict.
func DefaultConfig() Config {
	return Config{
		MaxTokens:   256,
		Temperature: 0.3,
	}
}

// Grader implements quiz.Grader using the LLM provider.
type Grader struct {
	provider llm.Provider
	cfg      Config
}

// New creates an LLM-based grader.
func New(provider llm.Provider, cfg Config) *Grader {
	return &Grader{provider: provider, cfg: cfg}
}

// gradeOutput is the raw LLM response.
type gradeOutput struct {
	Verdict  string `json:"verdict"`
	Score    int    `json:"score"`
	Feedback string `json:"feedback"`
}

// Grade sends a free-text answer to the LLM for judgment against the
// question's reference answer.
func (g *Grader) Grade(ctx context.Context, q *quiz.Question, learnerAnswer string) (*quiz.Verdict, error) {
	ctx = llm.WithPurpose(ctx, "answer-grading")

	userMsg, err := buildGradeMessage(q, learnerAnswer)
	if err != nil {
		return nil, fmt.Errorf("build grading prompt: %w", err)
	}

	req := llm.Request{
		System: gradeSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: userMsg},
		},
		Schema:      GradeSchema,
		MaxTokens:   g.cfg.MaxTokens,
		Temperature: g.cfg.Temperature,
	}

	resp, err := g.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("LLM grading failed: %w", err)
	}

	var raw gradeOutput
	if err := json.Unmarshal(resp.Content, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse grading response: %w", err)
	}

	switch raw.Verdict {
	case quiz.VerdictCorrect, quiz.VerdictPartial, quiz.VerdictIncorrect:
	default:
		return nil, fmt.Errorf("grading returned unknown verdict %q", raw.Verdict)
	}

	score := raw.Score
	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}

	return &quiz.Verdict{
		Verdict:  raw.Verdict,
		Score:    score,
		Feedback: raw.Feedback,
	}, nil
}

const gradeSystemPrompt = `You are grading a candidate's answer in a front-end interview practice drill.

Instructions:
- Judge meaning, not wording. An answer phrased differently from the reference is still correct if it demonstrates the concept.
- "correct" means the candidate would satisfy an interviewer: the core concept is right even if brief.
- "partial" means the answer is on the right track but incomplete, imprecise, or mixes in a wrong claim.
- "incorrect" means the core concept is wrong or missing.
- Score from 0 to 100 consistently with the verdict.
- Feedback is one or two sentences: confirm what was right, name what was missing or wrong. Address the candidate directly.`

var gradeUserTemplate = template.Must(template.New("grade").Parse(`Question: {{.Question}}
Reference answer: {{.Answer}}
{{- if .Accepted}}
Also accepted: {{range $i, $a := .Accepted}}{{if $i}}; {{end}}{{$a}}{{end}}
{{- end}}
{{- if .Explanation}}
Reference explanation: {{.Explanation}}
{{- end}}

Candidate's answer: {{.LearnerAnswer}}`))

type gradeTemplateData struct {
	Question      string
	Answer        string
	Accepted      []string
	Explanation   string
	LearnerAnswer string
}

func buildGradeMessage(q *quiz.Question, learnerAnswer string) (string, error) {
	var buf bytes.Buffer
	err := gradeUserTemplate.Execute(&buf, gradeTemplateData{
		Question:      q.Text,
		Answer:        q.Answer,
		Accepted:      q.Accepted,
		Explanation:   q.Explanation,
		LearnerAnswer: learnerAnswer,
	})
	if err != nil {
		return "", err
	}
	return buf.String(), nil
}
