package quiz

// BuildPlan assembles the slot list for a drill. Chosen topics fill
// the plan round-robin, with the last slot reserved for the most
// overdue review topic when one is due. With nothing chosen, review
// topics take over the whole plan; with nothing at all, the plan is
// empty and the caller should send the learner back to topic selection.
//
// The due list is expected most-overdue first, as the review scheduler
// produces it.
func BuildPlan(chosen, due []string) *Plan {
	totalSlots := DefaultTotalSlots

	// A topic the learner already chose doesn't need a second slot for
	// review; drilling it counts.
	chosenSet := make(map[string]bool, len(chosen))
	for _, t := range chosen {
		chosenSet[t] = true
	}
	var reviewable []string
	for _, t := range due {
		if !chosenSet[t] {
			reviewable = append(reviewable, t)
		}
	}

	chosenCount := totalSlots - 1
	reviewCount := 1
	if len(reviewable) == 0 {
		chosenCount = totalSlots
		reviewCount = 0
	}
	if len(chosen) == 0 {
		chosenCount = 0
		reviewCount = totalSlots
		if reviewCount > len(reviewable) {
			reviewCount = len(reviewable)
		}
	}

	var slots []PlanSlot
	for i := 0; i < chosenCount && len(chosen) > 0; i++ {
		slots = append(slots, PlanSlot{
			Topic:    chosen[i%len(chosen)],
			Category: CategoryChosen,
		})
	}
	for i := 0; i < reviewCount && i < len(reviewable); i++ {
		slots = append(slots, PlanSlot{
			Topic:    reviewable[i],
			Category: CategoryReview,
		})
	}

	if len(slots) == 0 {
		return &Plan{Duration: DefaultDrillDuration}
	}
	return &Plan{
		Slots:    slots,
		Duration: DefaultDrillDuration,
	}
}
