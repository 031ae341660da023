package events

import (
	"encoding/json"
	"testing"

	"github.com/google/uuid"

	"github.com/MikeSquared-Agency/RentWise/internal/catalog"
	"github.com/MikeSquared-Agency/RentWise/internal/scoring"
)

func TestSubjectsUnderStream(t *testing.T) {
	for _, s := range []string{SubjectWeightsRecommended, SubjectWeightsAdjusted, SubjectComparisonScored} {
		if len(s) < len("rentwise.") || s[:len("rentwise.")] != "rentwise." {
			t.Errorf("subject %q not covered by %s", s, StreamSubjects)
		}
	}
}

func TestNewComparisonScored(t *testing.T) {
	cat := catalog.Builtin()
	w := scoring.Uniform()
	c, err := scoring.CompareByName(cat, "University Town Center", "Northwood", w)
	if err != nil {
		t.Fatal(err)
	}

	e := NewComparisonScored("req-1", c, w)
	if e.EventID == uuid.Nil {
		t.Error("expected event id")
	}
	if e.Left != "University Town Center" || e.Right != "Northwood" {
		t.Errorf("names = %q / %q", e.Left, e.Right)
	}
	if e.LeftScore != 77 || e.RightScore != 78 || e.Leader != "Northwood" || e.Gap != 1 {
		t.Errorf("unexpected event %+v", e)
	}

	data, err := json.Marshal(e)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var decoded map[string]interface{}
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatal(err)
	}
	if decoded["request_id"] != "req-1" {
		t.Errorf("request_id = %v", decoded["request_id"])
	}
	if _, ok := decoded["event_id"]; !ok {
		t.Error("envelope not flattened into payload")
	}
}

func TestNewWeightsRecommended(t *testing.T) {
	a := scoring.DefaultAnswers()
	e := NewWeightsRecommended("", a, scoring.Recommend(a), scoring.Explain(a))
	if e.Weights.Sum() != scoring.Total {
		t.Errorf("weights sum to %d", e.Weights.Sum())
	}
	if len(e.Rules) == 0 {
		t.Error("expected fired rules")
	}
	if e.Timestamp.IsZero() {
		t.Error("expected timestamp")
	}
}
