package scoring

import (
	"fmt"

	"github.com/MikeSquared-Agency/RentWise/internal/catalog"
)

// Comparison is the head-to-head result for two neighborhoods.
type Comparison struct {
	Left             ScoringResult `json:"left"`
	Right            ScoringResult `json:"right"`
	Leader           string        `json:"leader,omitempty"`
	Gap              int           `json:"gap"`
	Tied             bool          `json:"tied"`
	SameNeighborhood bool          `json:"same_neighborhood"`
	Summary          string        `json:"summary"`
	TopDrivers       []Driver      `json:"top_drivers"`
}

// DefaultDriverCount is how many top drivers accompany a comparison.
const DefaultDriverCount = 3

// Compare scores left and right under w.
func Compare(left, right catalog.Neighborhood, w Weights) Comparison {
	c := Comparison{
		Left:             Breakdown(left, w),
		Right:            Breakdown(right, w),
		SameNeighborhood: left.Name == right.Name,
		TopDrivers:       TopDrivers(w, DefaultDriverCount),
	}

	ls, rs := c.Left.TotalScore, c.Right.TotalScore
	switch {
	case ls == rs:
		c.Tied = true
		c.Summary = fmt.Sprintf("Both neighborhoods are currently tied at %d/100 under your weights.", ls)
		return c
	case ls > rs:
		c.Leader = left.Name
		c.Gap = ls - rs
	default:
		c.Leader = right.Name
		c.Gap = rs - ls
	}
	c.Summary = fmt.Sprintf("%s leads by %d points based on your personalized objective weighting.", c.Leader, c.Gap)
	return c
}

// CompareByName resolves both names in cat and compares them. An unknown left
// name falls back to the first neighborhood, an unknown right name to the
// second.
func CompareByName(cat *catalog.Catalog, leftName, rightName string, w Weights) (Comparison, error) {
	left, err := cat.GetOr(leftName, 0)
	if err != nil {
		return Comparison{}, fmt.Errorf("resolve left: %w", err)
	}
	right, err := cat.GetOr(rightName, 1)
	if err != nil {
		return Comparison{}, fmt.Errorf("resolve right: %w", err)
	}
	return Compare(left, right, w), nil
}
