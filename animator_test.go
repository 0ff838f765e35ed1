package plot

import (
	"testing"
	"time"

	"github.com/tdewolff/test"
)

func TestInstant(t *testing.T) {
	a := Instant{}
	test.T(t, a.TotalTime(100), time.Duration(0))

	nodes := []*Node{newNode()}
	d := a.Animate(nodes, []map[string]Value{{ChannelSize: 4.0}})
	test.T(t, d, time.Duration(0))
	test.T(t, toFloat(nodes[0].Attrs[ChannelSize]), 4.0)
}

func TestEasingTotalTime(t *testing.T) {
	a := &Easing{
		StartDelay:       100 * time.Millisecond,
		StepDuration:     300 * time.Millisecond,
		StepDelay:        10 * time.Millisecond,
		MaxTotalDuration: time.Hour,
	}
	test.T(t, a.TotalTime(1), 400*time.Millisecond)
	test.T(t, a.TotalTime(11), 500*time.Millisecond)
	test.T(t, a.TotalTime(0), 400*time.Millisecond)
}

func TestEasingMaxTotalDuration(t *testing.T) {
	a := &Easing{
		StepDuration:     300 * time.Millisecond,
		StepDelay:        15 * time.Millisecond,
		MaxTotalDuration: 600 * time.Millisecond,
	}
	// stagger is compressed so the whole transition fits
	test.That(t, a.TotalTime(10000) <= 600*time.Millisecond)
	// few elements keep the configured stagger
	test.T(t, a.TotalTime(2), 315*time.Millisecond)
}
