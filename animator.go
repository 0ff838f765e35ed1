package plot

import (
	"time"
)

// Animator keys used by the standard two-phase draw cycle.
const (
	AnimatorReset = "reset"
	AnimatorMain  = "main"
)

// Animator drives one phase of a paint. It reports the total duration of the transition for a number of drawn elements and applies the final channel values to the retained nodes; hosts that animate drive intermediate frames off the reported duration.
type Animator interface {
	// TotalTime returns the duration of the transition for n drawn elements.
	TotalTime(n int) time.Duration

	// Animate applies the final channel values to the nodes, one value map per node, and returns the duration of the transition.
	Animate(nodes []*Node, vals []map[string]Value) time.Duration
}

////////////////////////////////////////////////////////////////

// Instant applies values immediately without a transition.
type Instant struct{}

// TotalTime returns zero.
func (Instant) TotalTime(n int) time.Duration {
	return 0
}

// Animate applies the final channel values to the nodes immediately.
func (Instant) Animate(nodes []*Node, vals []map[string]Value) time.Duration {
	for i, n := range nodes {
		if i < len(vals) {
			n.apply(vals[i])
		}
	}
	return 0
}

////////////////////////////////////////////////////////////////

// Easing is a staggered transition: every element starts StepDelay after the previous one and transitions over StepDuration, after an initial StartDelay. When many elements would exceed MaxTotalDuration, the stagger between elements is compressed to fit.
type Easing struct {
	StartDelay       time.Duration
	StepDuration     time.Duration
	StepDelay        time.Duration
	MaxTotalDuration time.Duration
}

// NewEasing returns an easing animator with the default timings.
func NewEasing() *Easing {
	return &Easing{
		StartDelay:       0,
		StepDuration:     300 * time.Millisecond,
		StepDelay:        15 * time.Millisecond,
		MaxTotalDuration: 600 * time.Millisecond,
	}
}

// TotalTime returns the duration of the staggered transition for n drawn elements.
func (a *Easing) TotalTime(n int) time.Duration {
	return a.StartDelay + a.adjustedStepDelay(n)*time.Duration(max(n-1, 0)) + a.StepDuration
}

// Animate applies the final channel values to the nodes and returns the duration of the transition.
func (a *Easing) Animate(nodes []*Node, vals []map[string]Value) time.Duration {
	for i, n := range nodes {
		if i < len(vals) {
			n.apply(vals[i])
		}
	}
	return a.TotalTime(len(nodes))
}

// adjustedStepDelay compresses the stagger between elements so that the whole transition fits in MaxTotalDuration.
func (a *Easing) adjustedStepDelay(n int) time.Duration {
	if n <= 1 {
		return a.StepDelay
	}
	room := a.MaxTotalDuration - a.StartDelay - a.StepDuration
	if room < 0 {
		room = 0
	}
	adjusted := room / time.Duration(n-1)
	if adjusted < a.StepDelay {
		return adjusted
	}
	return a.StepDelay
}
