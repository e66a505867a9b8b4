package quiz

import (
	"context"
	"fmt"
	"math/rand/v2"
	"sort"
)

// byTopic indexes the seed questions by topic slug.
var byTopic map[string][]*Question

func init() {
	byTopic = make(map[string][]*Question)
	for i := range seedQuestions {
		q := &seedQuestions[i]
		byTopic[q.Topic] = append(byTopic[q.Topic], q)
	}
}

// BankQuestions returns the curated questions for a topic, or nil if
// the topic has none.
func BankQuestions(topic string) []*Question {
	return byTopic[topic]
}

// BankTopics returns every topic slug with bank coverage, sorted.
func BankTopics() []string {
	topics := make([]string, 0, len(byTopic))
	for t := range byTopic {
		topics = append(topics, t)
	}
	sort.Strings(topics)
	return topics
}

// Bank draws curated questions from the built-in set. It implements
// Generator so a drill can fall back from the LLM to the bank without
// the caller changing shape.
type Bank struct{}

// NewBank returns the built-in question bank.
func NewBank() *Bank {
	return &Bank{}
}

// Generate draws a question for the topic, avoiding texts listed in
// input.PriorQuestions. Questions matching the requested difficulty are
// preferred. When every question for the topic has been asked, the
// exclusion is dropped rather than failing the drill.
func (b *Bank) Generate(_ context.Context, input GenerateInput) (*Question, error) {
	pool := byTopic[input.Topic]
	if len(pool) == 0 {
		return nil, fmt.Errorf("no bank questions for topic %q", input.Topic)
	}

	asked := make(map[string]bool, len(input.PriorQuestions))
	for _, text := range input.PriorQuestions {
		asked[text] = true
	}

	fresh := make([]*Question, 0, len(pool))
	for _, q := range pool {
		if !asked[q.Text] {
			fresh = append(fresh, q)
		}
	}
	if len(fresh) == 0 {
		fresh = pool
	}

	if input.Difficulty > 0 {
		matched := make([]*Question, 0, len(fresh))
		for _, q := range fresh {
			if q.Difficulty == input.Difficulty {
				matched = append(matched, q)
			}
		}
		if len(matched) > 0 {
			fresh = matched
		}
	}

	// Copy so callers never mutate the seed set.
	q := *fresh[rand.IntN(len(fresh))]
	return &q, nil
}
