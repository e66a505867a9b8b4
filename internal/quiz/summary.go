package quiz

import "time"

// Summary holds the data displayed on the drill summary screen.
type Summary struct {
	Duration       time.Duration
	TotalQuestions int
	TotalCorrect   int
	Accuracy       float64
	TopicResults   []TopicResult
}

// BuildSummary creates a Summary from the current drill state. Topic
// results follow plan order, each topic listed once.
func BuildSummary(state *State) *Summary {
	var results []TopicResult
	seen := make(map[string]bool)
	for _, slot := range state.Plan.Slots {
		if seen[slot.Topic] {
			continue
		}
		seen[slot.Topic] = true
		if tr, ok := state.PerTopic[slot.Topic]; ok {
			results = append(results, *tr)
		}
	}

	var accuracy float64
	if state.TotalQuestions > 0 {
		accuracy = float64(state.TotalCorrect) / float64(state.TotalQuestions)
	}

	return &Summary{
		Duration:       state.Elapsed,
		TotalQuestions: state.TotalQuestions,
		TotalCorrect:   state.TotalCorrect,
		Accuracy:       accuracy,
		TopicResults:   results,
	}
}
