// Package severity defines the log severity levels loggen attaches to
// emitted messages and the weighted random chooser that selects between
// them.
package severity

import (
	"fmt"
	"math/rand"
)

// Severity is the level tag attached to each emitted log line.
type Severity int

const (
	Info Severity = iota
	Warn
	Err
)

// all lists every severity in ascending order. Chooser relies on this
// ordering when walking cumulative weights.
var all = [...]Severity{Info, Warn, Err}

// Label returns the uppercase priority label used on the wire:
// INFO, WARN or ERR.
func (s Severity) Label() string {
	switch s {
	case Info:
		return "INFO"
	case Warn:
		return "WARN"
	case Err:
		return "ERR"
	default:
		return fmt.Sprintf("SEVERITY(%d)", int(s))
	}
}

// String returns the same label as Label.
func (s Severity) String() string {
	return s.Label()
}

// ParseLabel maps a priority label back to its Severity. It accepts
// exactly the labels Label produces.
func ParseLabel(label string) (Severity, error) {
	switch label {
	case "INFO":
		return Info, nil
	case "WARN":
		return Warn, nil
	case "ERR":
		return Err, nil
	default:
		return 0, fmt.Errorf("unknown severity label %q", label)
	}
}

// Weights holds the relative selection weights for each severity. The
// ratios matter, not the absolute values; they are not normalized.
type Weights struct {
	Info int
	Warn int
	Err  int
}

// DefaultWeights returns the stock demo distribution: 85% info,
// 12% warn, 3% err.
func DefaultWeights() Weights {
	return Weights{Info: 85, Warn: 12, Err: 3}
}

// Chooser selects severities at random according to fixed relative
// weights. It is safe for concurrent use as long as each caller supplies
// its own rand source.
type Chooser struct {
	cumulative [len(all)]int
	total      int
}

// NewChooser builds a Chooser from the given weights. Weights must be
// non-negative and at least one must be positive.
func NewChooser(w Weights) (*Chooser, error) {
	weights := [len(all)]int{w.Info, w.Warn, w.Err}

	c := &Chooser{}
	for i, wt := range weights {
		if wt < 0 {
			return nil, fmt.Errorf("weight for %s is negative (%d)", all[i], wt)
		}
		c.total += wt
		c.cumulative[i] = c.total
	}
	if c.total == 0 {
		return nil, fmt.Errorf("all severity weights are zero")
	}
	return c, nil
}

// Pick draws one severity using the given source. A severity with zero
// weight is never returned.
func (c *Chooser) Pick(rng *rand.Rand) Severity {
	n := rng.Intn(c.total)
	for i, cum := range c.cumulative {
		if n < cum {
			return all[i]
		}
	}
	// Unreachable: n < total == cumulative[last].
	return all[len(all)-1]
}
