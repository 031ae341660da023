package events

import (
	"time"

	"github.com/google/uuid"

	"github.com/MikeSquared-Agency/RentWise/internal/scoring"
)

// Envelope fields shared by every event.
type Envelope struct {
	EventID   uuid.UUID `json:"event_id"`
	RequestID string    `json:"request_id,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

func newEnvelope(requestID string) Envelope {
	return Envelope{EventID: uuid.New(), RequestID: requestID, Timestamp: time.Now().UTC()}
}

type WeightsRecommendedEvent struct {
	Envelope
	Answers scoring.Answers `json:"answers"`
	Weights scoring.Weights `json:"weights"`
	Rules   []string        `json:"rules"`
}

func NewWeightsRecommended(requestID string, a scoring.Answers, w scoring.Weights, rules []string) WeightsRecommendedEvent {
	return WeightsRecommendedEvent{Envelope: newEnvelope(requestID), Answers: a, Weights: w, Rules: rules}
}

type WeightsAdjustedEvent struct {
	Envelope
	Dimension string          `json:"dimension"`
	Value     int             `json:"value"`
	Weights   scoring.Weights `json:"weights"`
}

func NewWeightsAdjusted(requestID, dimension string, value int, w scoring.Weights) WeightsAdjustedEvent {
	return WeightsAdjustedEvent{Envelope: newEnvelope(requestID), Dimension: dimension, Value: value, Weights: w}
}

type ComparisonScoredEvent struct {
	Envelope
	Left       string          `json:"left"`
	Right      string          `json:"right"`
	LeftScore  int             `json:"left_score"`
	RightScore int             `json:"right_score"`
	Leader     string          `json:"leader,omitempty"`
	Gap        int             `json:"gap"`
	Weights    scoring.Weights `json:"weights"`
}

func NewComparisonScored(requestID string, c scoring.Comparison, w scoring.Weights) ComparisonScoredEvent {
	return ComparisonScoredEvent{
		Envelope:   newEnvelope(requestID),
		Left:       c.Left.Neighborhood,
		Right:      c.Right.Neighborhood,
		LeftScore:  c.Left.TotalScore,
		RightScore: c.Right.TotalScore,
		Leader:     c.Leader,
		Gap:        c.Gap,
		Weights:    w,
	}
}
