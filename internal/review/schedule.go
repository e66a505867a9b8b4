package review

// BaseIntervals defines the expanding interval schedule in days.
// Stage 0 = first review after a topic reaches strong.
var BaseIntervals = []int{1, 3, 7, 14, 30}

// MaxStage is the highest stage index in BaseIntervals. Topics at
// MaxStage stay on the longest interval.
const MaxStage = 4
