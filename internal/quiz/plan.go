package quiz

import "time"

// PlanCategory records why a topic earned a slot in the drill plan.
type PlanCategory string

const (
	CategoryChosen PlanCategory = "chosen"
	CategoryReview PlanCategory = "review"
)

// PlanSlot is a single slot in the drill plan: a topic that will
// receive a mini-block of questions.
type PlanSlot struct {
	Topic    string
	Category PlanCategory
}

// Plan is the ordered list of topic slots for a drill.
type Plan struct {
	Slots    []PlanSlot
	Duration time.Duration
}

// DefaultDrillDuration is the standard drill time cap.
const DefaultDrillDuration = 10 * time.Minute

// QuestionsPerSlot is the number of questions served per mini-block.
const QuestionsPerSlot = 3

// DefaultTotalSlots is the default number of slots in a drill plan.
const DefaultTotalSlots = 4
