package quiz

import (
	"context"
	"testing"
)

func TestBankSeedIntegrity(t *testing.T) {
	if len(seedQuestions) == 0 {
		t.Fatal("seed bank is empty")
	}

	for _, q := range seedQuestions {
		if q.Topic == "" || q.Text == "" || q.Answer == "" || q.Explanation == "" {
			t.Errorf("question %q missing required fields", q.Text)
		}
		if q.Source != SourceBank {
			t.Errorf("question %q source = %q, want bank", q.Text, q.Source)
		}
		if q.Difficulty < 1 || q.Difficulty > 3 {
			t.Errorf("question %q difficulty = %d, want 1-3", q.Text, q.Difficulty)
		}

		switch q.Format {
		case FormatMultipleChoice:
			if len(q.Choices) != 4 {
				t.Errorf("question %q has %d choices, want 4", q.Text, len(q.Choices))
			}
			found := false
			for _, c := range q.Choices {
				if c == q.Answer {
					found = true
				}
			}
			if !found {
				t.Errorf("question %q answer not among choices", q.Text)
			}
		case FormatShortText:
			if len(q.Choices) != 0 {
				t.Errorf("short-text question %q has choices", q.Text)
			}
		default:
			t.Errorf("question %q has unknown format %q", q.Text, q.Format)
		}
	}
}

func TestBankCoversEveryTopic(t *testing.T) {
	topics := BankTopics()
	want := []string{"apis", "css", "design-patterns", "html", "javascript", "nestjs", "react", "typescript"}

	if len(topics) != len(want) {
		t.Fatalf("BankTopics() = %v, want %v", topics, want)
	}
	for i, topic := range want {
		if topics[i] != topic {
			t.Errorf("BankTopics()[%d] = %q, want %q", i, topics[i], topic)
		}
	}

	for _, topic := range want {
		if n := len(BankQuestions(topic)); n < 5 {
			t.Errorf("topic %q has %d bank questions, want at least 5", topic, n)
		}
	}
}

func TestBankGenerate_DrawsFromTopic(t *testing.T) {
	bank := NewBank()

	q, err := bank.Generate(context.Background(), GenerateInput{Topic: "react"})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if q.Topic != "react" {
		t.Errorf("Topic = %q, want react", q.Topic)
	}
	if q.Source != SourceBank {
		t.Errorf("Source = %q, want bank", q.Source)
	}
}

func TestBankGenerate_UnknownTopic(t *testing.T) {
	bank := NewBank()

	if _, err := bank.Generate(context.Background(), GenerateInput{Topic: "cobol"}); err == nil {
		t.Error("expected error for unknown topic")
	}
}

func TestBankGenerate_AvoidsPriorQuestions(t *testing.T) {
	bank := NewBank()
	pool := BankQuestions("css")

	// Exclude all but the last question; every draw must return it.
	var prior []string
	for _, q := range pool[:len(pool)-1] {
		prior = append(prior, q.Text)
	}
	want := pool[len(pool)-1].Text

	for i := 0; i < 10; i++ {
		q, err := bank.Generate(context.Background(), GenerateInput{
			Topic:          "css",
			PriorQuestions: prior,
		})
		if err != nil {
			t.Fatalf("Generate: %v", err)
		}
		if q.Text != want {
			t.Errorf("draw %d = %q, want the only unasked question %q", i, q.Text, want)
		}
	}
}

func TestBankGenerate_ExhaustedTopicRepeats(t *testing.T) {
	bank := NewBank()

	var prior []string
	for _, q := range BankQuestions("html") {
		prior = append(prior, q.Text)
	}

	q, err := bank.Generate(context.Background(), GenerateInput{
		Topic:          "html",
		PriorQuestions: prior,
	})
	if err != nil {
		t.Fatalf("Generate: %v (exhaustion should fall back to repeats)", err)
	}
	if q.Topic != "html" {
		t.Errorf("Topic = %q, want html", q.Topic)
	}
}

func TestBankGenerate_PrefersRequestedDifficulty(t *testing.T) {
	bank := NewBank()

	for i := 0; i < 10; i++ {
		q, err := bank.Generate(context.Background(), GenerateInput{
			Topic:      "javascript",
			Difficulty: 1,
		})
		if err != nil {
			t.Fatalf("Generate: %v", err)
		}
		if q.Difficulty != 1 {
			t.Errorf("Difficulty = %d, want 1", q.Difficulty)
		}
	}
}

func TestBankGenerate_ReturnsCopies(t *testing.T) {
	bank := NewBank()

	q, err := bank.Generate(context.Background(), GenerateInput{Topic: "react"})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	original := q.Text
	q.Text = "mutated"

	for _, seeded := range BankQuestions("react") {
		if seeded.Text == "mutated" {
			t.Errorf("mutating a drawn question changed the seed (was %q)", original)
		}
	}
}
