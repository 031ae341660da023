package scoring

import (
	"fmt"
	"sort"

	"github.com/MikeSquared-Agency/RentWise/internal/catalog"
)

// FactorResult captures one dimension's contribution to a neighborhood score.
type FactorResult struct {
	Dimension catalog.Dimension `json:"dimension"`
	Label     string            `json:"label"`
	Value     catalog.Metric    `json:"value"`
	Weight    int               `json:"weight"`
	Weighted  float64           `json:"weighted"`
	Available bool              `json:"available"`
}

// ScoringResult is the full scoring output for one neighborhood.
type ScoringResult struct {
	Neighborhood string         `json:"neighborhood"`
	TotalScore   int            `json:"total_score"`
	UsedWeight   int            `json:"used_weight"`
	Factors      []FactorResult `json:"factors"`
}

// Score computes the 0-100 weighted mean of n's known dimensions. Unknown
// dimensions are dropped from both the weighted sum and the weight total.
// A neighborhood with no usable weight scores 0.
func Score(n catalog.Neighborhood, w Weights) int {
	return Breakdown(n, w).TotalScore
}

// Breakdown is Score with the per-dimension contributions.
func Breakdown(n catalog.Neighborhood, w Weights) ScoringResult {
	result := ScoringResult{Neighborhood: n.Name}

	var weightedSum float64
	for _, d := range catalog.Dimensions() {
		m := n.Metric(d)
		f := FactorResult{
			Dimension: d,
			Label:     d.Label(),
			Value:     m,
			Weight:    w[d],
		}
		if v, ok := m.Value(); ok {
			f.Available = true
			f.Weighted = v * float64(w[d])
			weightedSum += f.Weighted
			result.UsedWeight += w[d]
		}
		result.Factors = append(result.Factors, f)
	}

	if result.UsedWeight == 0 {
		return result
	}
	result.TotalScore = round(weightedSum / float64(result.UsedWeight))
	return result
}

// Driver is a dimension labelled with its weight.
type Driver struct {
	Dimension catalog.Dimension `json:"dimension"`
	Label     string            `json:"label"`
	Weight    int               `json:"weight"`
}

func (d Driver) String() string {
	return fmt.Sprintf("%s (%d%%)", d.Label, d.Weight)
}

// TopDrivers returns the count heaviest dimensions. Equal weights keep
// canonical dimension order.
func TopDrivers(w Weights, count int) []Driver {
	dims := catalog.Dimensions()
	sort.SliceStable(dims, func(i, j int) bool {
		return w[dims[i]] > w[dims[j]]
	})

	count = clampInt(count, 0, len(dims))
	drivers := make([]Driver, 0, count)
	for _, d := range dims[:count] {
		drivers = append(drivers, Driver{Dimension: d, Label: d.Label(), Weight: w[d]})
	}
	return drivers
}
