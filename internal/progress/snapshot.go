package progress

import (
	"github.com/SebastianBuritica/interviewprep/internal/store"
)

// Counter keys written into snapshot payloads.
const (
	counterStreakDays          = "streak_days"
	counterChallengesCompleted = "challenges_completed"
)

// SnapshotTopics exports per-topic progress in snapshot form.
func (p *Progress) SnapshotTopics() map[string]store.TopicState {
	out := make(map[string]store.TopicState, len(p.Topics))
	for topic, tp := range p.Topics {
		out[topic] = store.TopicState{
			Attempts:     tp.Attempts,
			Correct:      tp.Correct,
			Strength:     string(tp.Strength),
			LastAnswered: tp.LastAnswered,
		}
	}
	return out
}

// SnapshotCounters exports the scalar counters in snapshot form.
// AnsweredToday is deliberately not stored: it only means anything on
// the day it was counted.
func (p *Progress) SnapshotCounters() map[string]int {
	return map[string]int{
		counterStreakDays:          p.StreakDays,
		counterChallengesCompleted: p.ChallengesCompleted,
	}
}

// FromSnapshot rebuilds progress from a stored snapshot so the home
// screen has numbers before the event log has been queried. The streak
// reflects the snapshot's capture time and may be stale; AnsweredToday
// starts at zero until the next Compute.
func FromSnapshot(snap *store.SnapshotData) *Progress {
	p := &Progress{Topics: make(map[string]*TopicProgress)}
	if snap == nil {
		return p
	}
	for topic, ts := range snap.Topics {
		p.Topics[topic] = &TopicProgress{
			Topic:        topic,
			Attempts:     ts.Attempts,
			Correct:      ts.Correct,
			Strength:     Strength(ts.Strength),
			LastAnswered: ts.LastAnswered,
		}
		p.TotalAnswered += ts.Attempts
		p.TotalCorrect += ts.Correct
	}
	if snap.Counters != nil {
		p.StreakDays = snap.Counters[counterStreakDays]
		p.ChallengesCompleted = snap.Counters[counterChallengesCompleted]
	}
	return p
}
