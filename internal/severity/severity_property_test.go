package severity

import (
	"math/rand"
	"testing"

	"pgregory.net/rapid"
)

// *For any* non-negative weights with at least one positive entry, Pick
// SHALL only return severities whose weight is positive.
func TestPropertyPickRespectsZeroWeights(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		w := Weights{
			Info: rapid.IntRange(0, 1000).Draw(rt, "info"),
			Warn: rapid.IntRange(0, 1000).Draw(rt, "warn"),
			Err:  rapid.IntRange(0, 1000).Draw(rt, "err"),
		}
		if w.Info+w.Warn+w.Err == 0 {
			rt.Skip("all-zero weights are rejected by construction")
		}

		c, err := NewChooser(w)
		if err != nil {
			rt.Fatalf("NewChooser(%+v): %v", w, err)
		}

		weightOf := map[Severity]int{Info: w.Info, Warn: w.Warn, Err: w.Err}
		seed := rapid.Int64().Draw(rt, "seed")
		rng := rand.New(rand.NewSource(seed))
		for i := 0; i < 200; i++ {
			sev := c.Pick(rng)
			if weightOf[sev] == 0 {
				rt.Fatalf("Pick returned %s which has zero weight (%+v)", sev, w)
			}
		}
	})
}

// *For any* weights with exactly one positive entry, Pick SHALL always
// return that severity.
func TestPropertyPickSinglePositiveWeight(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		winner := rapid.SampledFrom(all[:]).Draw(rt, "winner")
		weight := rapid.IntRange(1, 1000).Draw(rt, "weight")

		var w Weights
		switch winner {
		case Info:
			w.Info = weight
		case Warn:
			w.Warn = weight
		case Err:
			w.Err = weight
		}

		c, err := NewChooser(w)
		if err != nil {
			rt.Fatalf("NewChooser(%+v): %v", w, err)
		}

		seed := rapid.Int64().Draw(rt, "seed")
		rng := rand.New(rand.NewSource(seed))
		for i := 0; i < 50; i++ {
			if got := c.Pick(rng); got != winner {
				rt.Fatalf("Pick = %s, want %s (weights %+v)", got, winner, w)
			}
		}
	})
}

// *For any* negative weight, NewChooser SHALL return an error.
func TestPropertyNewChooserRejectsNegative(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		w := Weights{
			Info: rapid.IntRange(-1000, 1000).Draw(rt, "info"),
			Warn: rapid.IntRange(-1000, 1000).Draw(rt, "warn"),
			Err:  rapid.IntRange(-1000, 1000).Draw(rt, "err"),
		}
		if w.Info >= 0 && w.Warn >= 0 && w.Err >= 0 {
			rt.Skip("only negative-weight inputs are under test")
		}
		if _, err := NewChooser(w); err == nil {
			rt.Fatalf("NewChooser(%+v) succeeded, want error", w)
		}
	})
}
