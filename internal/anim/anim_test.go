package anim

import (
	"math"
	"testing"
	"time"

	"github.com/five82/flipgrid/internal/flip"
)

func near(a, b float64) bool { return math.Abs(a-b) < 1e-9 }

func TestEasingEndpoints(t *testing.T) {
	for name, ease := range map[string]Easing{"linear": Linear, "accelerate": Accelerate, "decelerate": Decelerate} {
		if !near(ease(0), 0) || !near(ease(1), 1) {
			t.Fatalf("%s endpoints = %v,%v want 0,1", name, ease(0), ease(1))
		}
	}
	if Accelerate(0.5) >= 0.5 {
		t.Fatalf("Accelerate(0.5) = %v, want < 0.5", Accelerate(0.5))
	}
	if Decelerate(0.5) <= 0.5 {
		t.Fatalf("Decelerate(0.5) = %v, want > 0.5", Decelerate(0.5))
	}
}

func TestRotationAt(t *testing.T) {
	r := Rotation{From: 0, To: -90, Duration: 100 * time.Millisecond}
	cases := []struct {
		elapsed  time.Duration
		want     float64
		finished bool
	}{
		{-time.Millisecond, 0, false},
		{0, 0, false},
		{50 * time.Millisecond, -45, false},
		{100 * time.Millisecond, -90, true},
		{time.Second, -90, true},
	}
	for _, tc := range cases {
		got, done := r.At(tc.elapsed)
		if !near(got, tc.want) || done != tc.finished {
			t.Fatalf("At(%v) = %v,%t want %v,%t", tc.elapsed, got, done, tc.want, tc.finished)
		}
	}
}

func TestProjection(t *testing.T) {
	if !near(Projection(0), 1) || !near(Projection(-180), 1) {
		t.Fatalf("Projection flat = %v", Projection(0))
	}
	if Projection(90) > 1e-9 || Projection(-90) > 1e-9 {
		t.Fatalf("Projection edge-on = %v", Projection(90))
	}
}

func TestSequencerPhases(t *testing.T) {
	base := time.Unix(0, 0)
	at := func(ms int) time.Time { return base.Add(time.Duration(ms) * time.Millisecond) }

	swaps, dones := 0, 0
	var swapAngle float64
	var seq *Sequencer
	seq = NewSequencer(flip.Front, flip.Back, flip.Left, 200*time.Millisecond, Pivot{X: 5, Y: 2},
		func() {
			swaps++
			swapAngle = seq.Frame().Angle
		},
		func() { dones++ },
	)

	f := seq.Step(at(0))
	if f.Slot != flip.Front || f.Phase != PhaseDepart || !near(f.Angle, 0) {
		t.Fatalf("first frame = %+v", f)
	}
	f = seq.Step(at(50))
	if f.Angle >= 0 || f.Angle <= -45 {
		t.Fatalf("accelerating left rotation at 50ms = %v, want in (-45,0)", f.Angle)
	}
	f = seq.Step(at(100))
	if !near(f.Angle, -90) || f.Slot != flip.Front || swaps != 0 {
		t.Fatalf("edge frame = %+v swaps=%d, want front at -90 before swap", f, swaps)
	}

	f = seq.Step(at(101))
	if swaps != 1 || !near(swapAngle, -90) {
		t.Fatalf("swaps=%d at angle %v, want one swap at -90", swaps, swapAngle)
	}
	if f.Slot != flip.Back || f.Phase != PhaseArrive || !near(f.Angle, 90) || f.Pivot != (Pivot{X: 5, Y: 2}) {
		t.Fatalf("arrive start = %+v, want back at +90 with same pivot", f)
	}

	f = seq.Step(at(151))
	if f.Angle <= 0 || f.Angle >= 45 {
		t.Fatalf("decelerating at half = %v, want in (0,45)", f.Angle)
	}
	f = seq.Step(at(201))
	if !near(f.Angle, 0) || dones != 0 {
		t.Fatalf("rest frame = %+v dones=%d", f, dones)
	}
	f = seq.Step(at(202))
	if dones != 1 || f.Phase != PhaseDone || seq.Running() {
		t.Fatalf("dones=%d frame=%+v running=%t", dones, f, seq.Running())
	}
	seq.Step(at(300))
	if swaps != 1 || dones != 1 {
		t.Fatalf("callbacks repeated: swaps=%d dones=%d", swaps, dones)
	}
}

func TestSequencerRightRotatesPositive(t *testing.T) {
	base := time.Unix(0, 0)
	seq := NewSequencer(flip.Back, flip.Front, flip.Right, 100*time.Millisecond, Pivot{}, nil, nil)
	seq.Step(base)
	f := seq.Step(base.Add(50 * time.Millisecond))
	if !near(f.Angle, 90) {
		t.Fatalf("angle = %v, want 90", f.Angle)
	}
	f = seq.Step(base.Add(51 * time.Millisecond))
	if !near(f.Angle, -90) || f.Slot != flip.Front {
		t.Fatalf("arrive = %+v, want front at -90", f)
	}
}

func TestSequencerCancel(t *testing.T) {
	base := time.Unix(0, 0)
	called := false
	seq := NewSequencer(flip.Front, flip.Back, flip.Left, 0, Pivot{}, func() { called = true }, func() { called = true })
	seq.Step(base)
	seq.Cancel()
	for i := 0; i < 5; i++ {
		seq.Step(base.Add(time.Duration(i) * time.Second))
	}
	if called || seq.Running() {
		t.Fatalf("cancelled sequencer ran callbacks=%t running=%t", called, seq.Running())
	}
}

func TestSequencerZeroDurationTakesThreeSteps(t *testing.T) {
	now := time.Unix(0, 0)
	done := false
	seq := NewSequencer(flip.Front, flip.Back, flip.Left, 0, Pivot{}, nil, func() { done = true })
	seq.Step(now)
	seq.Step(now)
	if done {
		t.Fatalf("completed before the resting frame was produced")
	}
	seq.Step(now)
	if !done {
		t.Fatalf("not completed after three steps")
	}
}
