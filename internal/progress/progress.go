// Package progress derives learner state from the event log: per-topic
// strength, overall totals, the daily answer streak, and challenge
// completion. Everything here is recomputable, so the store snapshot is
// an optimization, never the source of truth.
package progress

import (
	"context"
	"sort"
	"time"

	"github.com/SebastianBuritica/interviewprep/internal/store"
)

// streakLookback bounds how far back Compute scans answer timestamps
// when counting the daily streak.
const streakLookback = 365 // days

const dayFormat = "2006-01-02"

// TopicProgress is the derived state for one topic.
type TopicProgress struct {
	Topic        string
	Attempts     int
	Correct      int
	Strength     Strength
	LastAnswered time.Time
}

// Accuracy returns the fraction of correct answers (0.0 to 1.0).
// Returns 0 when the topic has no attempts.
func (tp *TopicProgress) Accuracy() float64 {
	if tp.Attempts == 0 {
		return 0
	}
	return float64(tp.Correct) / float64(tp.Attempts)
}

// Progress is the learner state derived from the event log.
type Progress struct {
	Topics              map[string]*TopicProgress
	TotalAnswered       int
	TotalCorrect        int
	StreakDays          int
	AnsweredToday       int
	ChallengesCompleted int
}

// Accuracy returns the overall correct ratio across all topics.
func (p *Progress) Accuracy() float64 {
	if p.TotalAnswered == 0 {
		return 0
	}
	return float64(p.TotalCorrect) / float64(p.TotalAnswered)
}

// Topic returns the progress record for one topic. Topics that were
// never answered get a StrengthNew record.
func (p *Progress) Topic(topic string) *TopicProgress {
	if tp, ok := p.Topics[topic]; ok {
		return tp
	}
	return &TopicProgress{Topic: topic, Strength: StrengthNew}
}

// StrongTopics returns the set of topics currently rated strong. The
// review scheduler syncs its tracked set against this.
func (p *Progress) StrongTopics() map[string]bool {
	result := make(map[string]bool)
	for topic, tp := range p.Topics {
		if tp.Strength == StrengthStrong {
			result[topic] = true
		}
	}
	return result
}

// SortedTopics returns progress records ordered by attempts descending,
// ties broken by topic key, for stats tables.
func (p *Progress) SortedTopics() []*TopicProgress {
	topics := make([]*TopicProgress, 0, len(p.Topics))
	for _, tp := range p.Topics {
		topics = append(topics, tp)
	}
	sort.Slice(topics, func(i, j int) bool {
		if topics[i].Attempts != topics[j].Attempts {
			return topics[i].Attempts > topics[j].Attempts
		}
		return topics[i].Topic < topics[j].Topic
	})
	return topics
}

// Compute derives learner progress from the event log.
func Compute(ctx context.Context, repo store.EventRepo, now time.Time) (*Progress, error) {
	tallies, err := repo.TallyAnswers(ctx)
	if err != nil {
		return nil, err
	}

	p := &Progress{Topics: make(map[string]*TopicProgress, len(tallies))}
	for topic, tally := range tallies {
		p.Topics[topic] = &TopicProgress{
			Topic:        topic,
			Attempts:     tally.Attempts,
			Correct:      tally.Correct,
			Strength:     StrengthFor(tally.Attempts, tally.Correct),
			LastAnswered: tally.LastAnswered,
		}
		p.TotalAnswered += tally.Attempts
		p.TotalCorrect += tally.Correct
	}

	times, err := repo.AnswerTimesSince(ctx, now.AddDate(0, 0, -streakLookback))
	if err != nil {
		return nil, err
	}
	p.StreakDays, p.AnsweredToday = streak(times, now)

	completed, err := repo.CompletedChallenges(ctx)
	if err != nil {
		return nil, err
	}
	p.ChallengesCompleted = len(completed)

	return p, nil
}

// streak counts consecutive calendar days with at least one answer,
// walking back from now. A day with no answers yet does not break the
// streak: answering yesterday but not today keeps it alive until
// midnight passes.
func streak(times []time.Time, now time.Time) (days, answeredToday int) {
	seen := make(map[string]bool, len(times))
	today := now.Format(dayFormat)
	for _, t := range times {
		key := t.In(now.Location()).Format(dayFormat)
		seen[key] = true
		if key == today {
			answeredToday++
		}
	}

	cursor := now
	if !seen[today] {
		cursor = cursor.AddDate(0, 0, -1)
	}
	for seen[cursor.Format(dayFormat)] {
		days++
		cursor = cursor.AddDate(0, 0, -1)
	}
	return days, answeredToday
}
