package scoring

import (
	"testing"

	"github.com/MikeSquared-Agency/RentWise/internal/catalog"
)

func weights(safety, transit, convenience, parking, environment int) Weights {
	return Weights{
		catalog.Safety:      safety,
		catalog.Transit:     transit,
		catalog.Convenience: convenience,
		catalog.Parking:     parking,
		catalog.Environment: environment,
	}
}

func assertWeights(t *testing.T, got, want Weights) {
	t.Helper()
	for _, d := range catalog.Dimensions() {
		if got[d] != want[d] {
			t.Errorf("%s: got %d, want %d (full: %v)", d, got[d], want[d], got)
		}
	}
}

func TestRound(t *testing.T) {
	tests := []struct {
		in   float64
		want int
	}{
		{0.49, 0},
		{0.5, 1},
		{2.5, 3},
		{16.19, 16},
		{43.81, 44},
		{-2.5, -2},
		{-2.51, -3},
	}
	for _, tt := range tests {
		if got := round(tt.in); got != tt.want {
			t.Errorf("round(%v) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestUniform(t *testing.T) {
	w := Uniform()
	assertWeights(t, w, weights(20, 20, 20, 20, 20))
	if w.Sum() != Total {
		t.Errorf("uniform sums to %d", w.Sum())
	}
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		name  string
		draft Weights
		want  Weights
	}{
		{"already normalized", weights(40, 30, 10, 10, 10), weights(40, 30, 10, 10, 10)},
		{"scale down", weights(17, 46, 32, 5, 5), weights(16, 44, 30, 5, 5)},
		{"anchor absorbs shortfall", weights(1, 1, 1, 0, 0), weights(34, 33, 33, 0, 0)},
		{"anchor absorbs surplus", weights(1, 1, 1, 1, 2), weights(16, 17, 17, 17, 33)},
		{"negative entry", weights(-10, 30, 0, 0, 0), weights(-50, 150, 0, 0, 0)},
		{"all zero falls back", weights(0, 0, 0, 0, 0), weights(20, 20, 20, 20, 20)},
		{"zero total with negatives falls back", weights(10, -10, 0, 0, 0), weights(20, 20, 20, 20, 20)},
		{"missing keys read as zero", Weights{catalog.Transit: 3, catalog.Parking: 1}, weights(0, 75, 0, 25, 0)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Normalize(tt.draft)
			assertWeights(t, got, tt.want)
			if got.Sum() != Total {
				t.Errorf("sum = %d, want %d", got.Sum(), Total)
			}
		})
	}
}

func TestNormalizeSumInvariant(t *testing.T) {
	for s := -3; s <= 40; s += 7 {
		for tr := 0; tr <= 60; tr += 11 {
			for c := 1; c <= 50; c += 13 {
				for p := 0; p <= 30; p += 9 {
					for e := 0; e <= 45; e += 8 {
						draft := weights(s, tr, c, p, e)
						if draft.Sum() == 0 {
							continue
						}
						if got := Normalize(draft).Sum(); got != Total {
							t.Fatalf("Normalize(%v) sums to %d", draft, got)
						}
					}
				}
			}
		}
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	drafts := []Weights{
		weights(17, 46, 32, 5, 5),
		weights(1, 1, 1, 1, 2),
		weights(1, 1, 1, 0, 0),
		weights(-10, 30, 0, 0, 0),
		weights(29, 46, 26, 5, 5),
		weights(7, 13, 19, 23, 29),
	}
	for _, d := range drafts {
		once := Normalize(d)
		assertWeights(t, Normalize(once), once)
	}
}

func TestNormalizeDoesNotMutateInput(t *testing.T) {
	draft := weights(1, 1, 1, 0, 0)
	Normalize(draft)
	assertWeights(t, draft, weights(1, 1, 1, 0, 0))
}

func TestValidate(t *testing.T) {
	if err := weights(20, 20, 20, 20, 20).Validate(); err != nil {
		t.Errorf("uniform invalid: %v", err)
	}
	if err := weights(20, 20, 20, 20, 19).Validate(); err == nil {
		t.Error("expected error for sum 99")
	}
	bad := weights(20, 20, 20, 20, 20)
	bad["noise"] = 0
	if err := bad.Validate(); err == nil {
		t.Error("expected error for unknown dimension")
	}
}

func TestAdjust(t *testing.T) {
	t.Run("raise one slider", func(t *testing.T) {
		got, err := Adjust(Uniform(), catalog.Transit, 60)
		if err != nil {
			t.Fatalf("Adjust: %v", err)
		}
		// 14 + 43 + 14 + 14 + 14 = 99, anchor takes the last point
		assertWeights(t, got, weights(15, 43, 14, 14, 14))
		if got.Sum() != Total {
			t.Errorf("sum = %d", got.Sum())
		}
	})

	t.Run("value clamped to slider range", func(t *testing.T) {
		high, _ := Adjust(Uniform(), catalog.Parking, 500)
		capped, _ := Adjust(Uniform(), catalog.Parking, SliderMax)
		assertWeights(t, high, capped)

		low, _ := Adjust(Uniform(), catalog.Parking, -4)
		floored, _ := Adjust(Uniform(), catalog.Parking, SliderMin)
		assertWeights(t, low, floored)
	})

	t.Run("unknown dimension", func(t *testing.T) {
		if _, err := Adjust(Uniform(), "noise", 30); err == nil {
			t.Error("expected error")
		}
	})

	t.Run("input untouched", func(t *testing.T) {
		w := Uniform()
		_, _ = Adjust(w, catalog.Safety, 50)
		assertWeights(t, w, Uniform())
	})
}
