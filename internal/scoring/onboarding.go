package scoring

import (
	"errors"
	"fmt"

	"github.com/MikeSquared-Agency/RentWise/internal/catalog"
)

// ProfileType describes the renter's household.
type ProfileType string

const (
	ProfileStudent      ProfileType = "student"
	ProfileProfessional ProfileType = "professional"
	ProfileFamily       ProfileType = "family"
)

// WeightFloor is the minimum any recommended weight is raised to before
// normalization.
const WeightFloor = 5

var ErrInvalidAnswers = errors.New("invalid onboarding answers")

// Answers is the onboarding questionnaire.
type Answers struct {
	HasCar          bool        `json:"has_car"`
	CommuteDays     int         `json:"commute_days"`
	SafetyPriority  int         `json:"safety_priority"`
	ParkingPriority bool        `json:"parking_priority"`
	ProfileType     ProfileType `json:"profile_type"`
	SharesHousing   bool        `json:"shares_housing"`
	BikeComfort     bool        `json:"bike_comfort"`
	NeedsQuietArea  bool        `json:"needs_quiet_area"`
}

// DefaultAnswers mirrors the questionnaire's initial state.
func DefaultAnswers() Answers {
	return Answers{
		CommuteDays:    4,
		SafetyPriority: 4,
		ProfileType:    ProfileStudent,
		SharesHousing:  true,
		BikeComfort:    true,
	}
}

// Validate reports answers outside the questionnaire's ranges.
// Recommend does not call it and accepts any input.
func (a Answers) Validate() error {
	if a.CommuteDays < 0 || a.CommuteDays > 7 {
		return fmt.Errorf("%w: commute_days %d outside 0-7", ErrInvalidAnswers, a.CommuteDays)
	}
	if a.SafetyPriority < 1 || a.SafetyPriority > 5 {
		return fmt.Errorf("%w: safety_priority %d outside 1-5", ErrInvalidAnswers, a.SafetyPriority)
	}
	switch a.ProfileType {
	case ProfileStudent, ProfileProfessional, ProfileFamily:
	default:
		return fmt.Errorf("%w: unknown profile_type %q", ErrInvalidAnswers, a.ProfileType)
	}
	return nil
}

// Rule is one additive adjustment keyed on the answers.
type Rule struct {
	Name    string
	Applies func(Answers) bool
	Delta   Weights
}

// Rules are applied in order; each adds its delta to the running draft.
var Rules = []Rule{
	{
		Name:    "no_car",
		Applies: func(a Answers) bool { return !a.HasCar },
		Delta:   Weights{catalog.Transit: 18, catalog.Parking: -10, catalog.Environment: -8},
	},
	{
		Name:    "profile_student",
		Applies: func(a Answers) bool { return a.ProfileType == ProfileStudent },
		Delta:   Weights{catalog.Transit: 4, catalog.Convenience: 6, catalog.Parking: -5, catalog.Environment: -5},
	},
	{
		Name:    "profile_professional",
		Applies: func(a Answers) bool { return a.ProfileType == ProfileProfessional },
		Delta: Weights{
			catalog.Safety: 4, catalog.Transit: 3, catalog.Parking: 3,
			catalog.Environment: -5, catalog.Convenience: -5,
		},
	},
	{
		Name:    "profile_family",
		Applies: func(a Answers) bool { return a.ProfileType == ProfileFamily },
		Delta: Weights{
			catalog.Safety: 10, catalog.Environment: 8, catalog.Transit: -8,
			catalog.Parking: -5, catalog.Convenience: -5,
		},
	},
	{
		Name:    "shares_housing",
		Applies: func(a Answers) bool { return a.SharesHousing },
		Delta:   Weights{catalog.Convenience: 6, catalog.Safety: -3, catalog.Parking: -3},
	},
	{
		Name:    "bikes_without_car",
		Applies: func(a Answers) bool { return !a.HasCar && a.BikeComfort },
		Delta:   Weights{catalog.Transit: -6, catalog.Convenience: 4, catalog.Environment: 2},
	},
	{
		Name:    "needs_quiet_area",
		Applies: func(a Answers) bool { return a.NeedsQuietArea },
		Delta: Weights{
			catalog.Environment: 10, catalog.Convenience: -4, catalog.Transit: -3, catalog.Parking: -3,
		},
	},
	{
		Name:    "car_parking_priority",
		Applies: func(a Answers) bool { return a.HasCar && a.ParkingPriority },
		Delta:   Weights{catalog.Parking: 16, catalog.Transit: -8, catalog.Convenience: -8},
	},
	{
		Name:    "frequent_commute",
		Applies: func(a Answers) bool { return a.CommuteDays >= 4 },
		Delta:   Weights{catalog.Transit: 10, catalog.Environment: -6, catalog.Convenience: -4},
	},
	{
		Name:    "high_safety_priority",
		Applies: func(a Answers) bool { return a.SafetyPriority >= 4 },
		Delta:   Weights{catalog.Safety: 12, catalog.Convenience: -6, catalog.Environment: -6},
	},
}

// Draft returns the raw weights after applying every matching rule to the
// uniform baseline, before the floor and normalization.
func Draft(a Answers) Weights {
	draft := Uniform()
	for _, r := range Rules {
		if !r.Applies(a) {
			continue
		}
		for d, delta := range r.Delta {
			draft[d] += delta
		}
	}
	return draft
}

// Recommend derives a normalized weight vector from onboarding answers. The
// draft is floored at WeightFloor and normalized; if rounding pushes an entry
// back under the floor, the shortfall is taken from the heaviest dimensions.
func Recommend(a Answers) Weights {
	draft := Draft(a)
	for _, d := range catalog.Dimensions() {
		if draft[d] < WeightFloor {
			draft[d] = WeightFloor
		}
	}
	return liftToFloor(Normalize(draft), WeightFloor)
}

// liftToFloor raises entries below floor and removes the same amount, one
// point at a time, from the currently heaviest dimension (earliest in
// canonical order on ties). A vector already at or above floor is returned
// unchanged.
func liftToFloor(w Weights, floor int) Weights {
	out := w.Clone()
	var deficit int
	for _, d := range catalog.Dimensions() {
		if out[d] < floor {
			deficit += floor - out[d]
			out[d] = floor
		}
	}
	for ; deficit > 0; deficit-- {
		heaviest := catalog.Anchor()
		for _, d := range catalog.Dimensions() {
			if out[d] > out[heaviest] {
				heaviest = d
			}
		}
		if out[heaviest] <= floor {
			break
		}
		out[heaviest]--
	}
	return out
}

// Explain lists the names of the rules that fire for a, in application order.
func Explain(a Answers) []string {
	var fired []string
	for _, r := range Rules {
		if r.Applies(a) {
			fired = append(fired, r.Name)
		}
	}
	return fired
}
