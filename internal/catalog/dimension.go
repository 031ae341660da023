package catalog

// Dimension is one evaluative axis used for weighting and scoring.
type Dimension string

const (
	Safety      Dimension = "safety"
	Transit     Dimension = "transit"
	Convenience Dimension = "convenience"
	Parking     Dimension = "parking"
	Environment Dimension = "environment"
)

// dimensions is the canonical declaration order. It drives iteration,
// rounding slack and tie-breaking everywhere.
var dimensions = [...]Dimension{Safety, Transit, Convenience, Parking, Environment}

var labels = map[Dimension]string{
	Safety:      "Safety",
	Transit:     "Transit Access",
	Convenience: "Daily Convenience",
	Parking:     "Parking",
	Environment: "Environment",
}

// Dimensions returns the dimensions in canonical order.
func Dimensions() []Dimension {
	out := make([]Dimension, len(dimensions))
	copy(out, dimensions[:])
	return out
}

// Anchor is the dimension that absorbs rounding slack during normalization.
func Anchor() Dimension { return dimensions[0] }

// Valid reports whether d is part of the dimension set.
func (d Dimension) Valid() bool {
	_, ok := labels[d]
	return ok
}

// Label returns the display label for d, or the raw identifier if unknown.
func (d Dimension) Label() string {
	if l, ok := labels[d]; ok {
		return l
	}
	return string(d)
}

// Index returns d's position in canonical order, or -1.
func (d Dimension) Index() int {
	for i, v := range dimensions {
		if v == d {
			return i
		}
	}
	return -1
}
