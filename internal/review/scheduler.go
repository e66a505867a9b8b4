package review

import (
	"sort"
	"time"

	"github.com/SebastianBuritica/interviewprep/internal/store"
)

// Scheduler manages the spaced review schedule across topics.
type Scheduler struct {
	reviews map[string]*TopicReview
}

// NewScheduler creates a scheduler, loading review state from the
// snapshot when one exists.
func NewScheduler(snap *store.SnapshotData) *Scheduler {
	s := &Scheduler{reviews: make(map[string]*TopicReview)}

	if snap == nil || snap.Review == nil {
		return s
	}
	for topic, rs := range snap.Review {
		s.reviews[topic] = &TopicReview{
			Topic:   topic,
			Stage:   rs.Stage,
			DueAt:   rs.DueAt,
			LastHit: rs.LastHit,
		}
	}
	return s
}

// DueTopics returns tracked topics that are due for review, sorted by
// most overdue first. The quiz planner feeds this straight into the
// review slot.
func (s *Scheduler) DueTopics(now time.Time) []string {
	type dueTopic struct {
		topic   string
		overdue float64
	}
	var due []dueTopic

	for topic, tr := range s.reviews {
		if tr.IsDue(now) {
			due = append(due, dueTopic{topic: topic, overdue: tr.OverdueDays(now)})
		}
	}

	sort.Slice(due, func(i, j int) bool {
		if due[i].overdue != due[j].overdue {
			return due[i].overdue > due[j].overdue
		}
		return due[i].topic < due[j].topic
	})

	topics := make([]string, len(due))
	for i, d := range due {
		topics[i] = d.topic
	}
	return topics
}

// RecordReview updates the schedule after a review answer. A correct
// answer advances the stage and pushes the due date out by the new
// interval; a miss demotes the topic to stage 0 and leaves it due, so
// it keeps surfacing until answered correctly.
func (s *Scheduler) RecordReview(topic string, correct bool, now time.Time) {
	tr := s.reviews[topic]
	if tr == nil {
		return
	}

	if correct {
		if tr.Stage < MaxStage {
			tr.Stage++
		}
		tr.LastHit = now
		tr.DueAt = now.AddDate(0, 0, tr.CurrentIntervalDays())
	} else {
		tr.Stage = 0
	}
}

// InitTopic starts tracking a topic that just reached strong. The first
// review comes due after the base interval.
func (s *Scheduler) InitTopic(topic string, now time.Time) {
	s.reviews[topic] = &TopicReview{
		Topic:   topic,
		Stage:   0,
		DueAt:   now.AddDate(0, 0, BaseIntervals[0]),
		LastHit: now,
	}
}

// Remove stops tracking a topic.
func (s *Scheduler) Remove(topic string) {
	delete(s.reviews, topic)
}

// Sync reconciles the tracked set against the current strong topics:
// newly strong topics start their schedule, topics that fell from
// strong drop out. Called after progress is recomputed.
func (s *Scheduler) Sync(strong map[string]bool, now time.Time) {
	for topic := range strong {
		if _, ok := s.reviews[topic]; !ok {
			s.InitTopic(topic, now)
		}
	}
	for topic := range s.reviews {
		if !strong[topic] {
			delete(s.reviews, topic)
		}
	}
}

// Get returns the review state for a topic, or nil if not tracked.
func (s *Scheduler) Get(topic string) *TopicReview {
	return s.reviews[topic]
}

// All returns every tracked review state (for stats/UI).
func (s *Scheduler) All() map[string]*TopicReview {
	result := make(map[string]*TopicReview, len(s.reviews))
	for topic, tr := range s.reviews {
		result[topic] = tr
	}
	return result
}

// SnapshotData exports the current review state for persistence.
func (s *Scheduler) SnapshotData() map[string]store.ReviewState {
	data := make(map[string]store.ReviewState, len(s.reviews))
	for topic, tr := range s.reviews {
		data[topic] = store.ReviewState{
			Stage:   tr.Stage,
			DueAt:   tr.DueAt,
			LastHit: tr.LastHit,
		}
	}
	return data
}
