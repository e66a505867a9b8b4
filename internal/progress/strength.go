package progress

// Strength describes how well the learner currently knows a topic.
type Strength string

const (
	// StrengthNew means the topic has never been answered.
	StrengthNew Strength = "new"

	// StrengthPracticing means the topic has answers but has not yet
	// cleared the strong thresholds.
	StrengthPracticing Strength = "practicing"

	// StrengthStrong means the topic cleared both thresholds and is
	// eligible for spaced review.
	StrengthStrong Strength = "strong"
)

// Thresholds a topic must clear before it counts as strong. Both must
// hold: enough attempts for the accuracy to mean something, and the
// accuracy itself.
const (
	StrongMinAttempts = 10
	StrongMinAccuracy = 0.8
)

// StrengthFor classifies a topic from its answer tally.
func StrengthFor(attempts, correct int) Strength {
	if attempts == 0 {
		return StrengthNew
	}
	if attempts >= StrongMinAttempts &&
		float64(correct)/float64(attempts) >= StrongMinAccuracy {
		return StrengthStrong
	}
	return StrengthPracticing
}
