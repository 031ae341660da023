package scoring

import (
	"fmt"

	"github.com/MikeSquared-Agency/RentWise/internal/catalog"
)

const (
	// Total is the sum every normalized weight vector adds up to.
	Total = 100

	// SliderMin and SliderMax bound a single manually edited weight.
	SliderMin = 5
	SliderMax = 60
)

// Weights maps every dimension to an integer percentage. Missing keys read as 0.
type Weights map[catalog.Dimension]int

// Uniform returns Total split evenly across the dimensions, with any
// remainder on the anchor dimension.
func Uniform() Weights {
	dims := catalog.Dimensions()
	w := make(Weights, len(dims))
	share := Total / len(dims)
	for _, d := range dims {
		w[d] = share
	}
	w[catalog.Anchor()] += Total - share*len(dims)
	return w
}

// Sum returns the total of all weights over the dimension set.
func (w Weights) Sum() int {
	var total int
	for _, d := range catalog.Dimensions() {
		total += w[d]
	}
	return total
}

// Clone returns an independent copy holding every dimension.
func (w Weights) Clone() Weights {
	out := make(Weights, len(catalog.Dimensions()))
	for _, d := range catalog.Dimensions() {
		out[d] = w[d]
	}
	return out
}

// Validate checks that weights sum to Total and carry only known dimensions.
func (w Weights) Validate() error {
	for d := range w {
		if !d.Valid() {
			return fmt.Errorf("unknown dimension %q", d)
		}
	}
	if s := w.Sum(); s != Total {
		return fmt.Errorf("weights sum to %d, must sum to %d", s, Total)
	}
	return nil
}

// Normalize rescales draft so it sums to exactly Total. Each entry is rounded
// independently and the anchor dimension absorbs the rounding difference. An
// all-zero draft yields Uniform. draft is not modified.
func Normalize(draft Weights) Weights {
	total := draft.Sum()
	if total == 0 {
		return Uniform()
	}

	normalized := make(Weights, len(catalog.Dimensions()))
	for _, d := range catalog.Dimensions() {
		normalized[d] = round(float64(draft[d]) / float64(total) * Total)
	}

	normalized[catalog.Anchor()] += Total - normalized.Sum()
	return normalized
}

// Adjust sets dimension d to value, clamped to the slider range, and
// renormalizes. The floor applied by Recommend is not enforced here, so other
// dimensions may drop below it.
func Adjust(w Weights, d catalog.Dimension, value int) (Weights, error) {
	if !d.Valid() {
		return nil, fmt.Errorf("unknown dimension %q", d)
	}
	draft := w.Clone()
	draft[d] = clampInt(value, SliderMin, SliderMax)
	return Normalize(draft), nil
}

func clampInt(v, min, max int) int {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
