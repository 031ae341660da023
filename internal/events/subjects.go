package events

const (
	SubjectWeightsRecommended = "rentwise.weights.recommended"
	SubjectWeightsAdjusted    = "rentwise.weights.adjusted"
	SubjectComparisonScored   = "rentwise.comparison.scored"

	StreamName     = "RENTWISE_EVENTS"
	StreamSubjects = "rentwise.>"
	StreamMaxAge   = "168h" // 7 days
)
