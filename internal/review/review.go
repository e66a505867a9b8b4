package review

import "time"

// TopicReview holds the review schedule state for a single topic.
type TopicReview struct {
	Topic   string
	Stage   int
	DueAt   time.Time
	LastHit time.Time // last correct review answer
}

// IsDue returns true if the topic is due for review (at or past the due date).
func (tr *TopicReview) IsDue(now time.Time) bool {
	return !now.Before(tr.DueAt)
}

// OverdueDays returns how many days past due the topic is. Returns 0 if
// not yet due.
func (tr *TopicReview) OverdueDays(now time.Time) float64 {
	if now.Before(tr.DueAt) {
		return 0
	}
	return now.Sub(tr.DueAt).Hours() / 24.0
}

// CurrentIntervalDays returns the current interval in days.
func (tr *TopicReview) CurrentIntervalDays() int {
	if tr.Stage >= len(BaseIntervals) {
		return BaseIntervals[len(BaseIntervals)-1]
	}
	return BaseIntervals[tr.Stage]
}

// DaysUntilReview returns the number of days until the next review.
// Returns 0 if already due.
func (tr *TopicReview) DaysUntilReview(now time.Time) int {
	if tr.IsDue(now) {
		return 0
	}
	return int(tr.DueAt.Sub(now).Hours()/24.0) + 1
}
