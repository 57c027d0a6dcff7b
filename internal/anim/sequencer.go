package anim

import (
	"time"

	"github.com/five82/flipgrid/internal/flip"
)

// Phase is the stage of a flip.
type Phase int

const (
	PhaseDepart Phase = iota
	PhaseArrive
	PhaseDone
)

func (p Phase) String() string {
	switch p {
	case PhaseDepart:
		return "depart"
	case PhaseArrive:
		return "arrive"
	default:
		return "done"
	}
}

// Frame is one rendered step of a flip.
type Frame struct {
	Slot  flip.Side
	Angle float64
	Phase Phase
	Pivot Pivot
}

// Sequencer runs one flip as two half rotations: the departing face turns
// edge-on while accelerating, the faces swap, then the arriving face turns
// back from the opposite edge while decelerating.
//
// Boundaries are crossed on the Step after the frame that reached them, so
// the edge-on frame of phase 1 is always produced before the swap and the
// resting frame of phase 2 is always produced before completion.
type Sequencer struct {
	from, to flip.Side
	rot      Rotation
	phase    Phase

	started    bool
	phaseStart time.Time
	landed     bool
	cancelled  bool

	onSwap func()
	onDone func()
	frame  Frame
}

// NewSequencer prepares a flip from one face to another. The total duration
// is split evenly between the two phases. The clock starts on the first Step.
func NewSequencer(from, to flip.Side, dir flip.Direction, total time.Duration, pivot Pivot, onSwap, onDone func()) *Sequencer {
	rot := Rotation{
		From:     0,
		To:       90 * dir.Sign(),
		Pivot:    pivot,
		Duration: total / 2,
		Ease:     Accelerate,
	}
	return &Sequencer{
		from:   from,
		to:     to,
		rot:    rot,
		phase:  PhaseDepart,
		onSwap: onSwap,
		onDone: onDone,
		frame:  Frame{Slot: from, Angle: 0, Phase: PhaseDepart, Pivot: pivot},
	}
}

// Step advances to now and returns the frame to draw.
func (s *Sequencer) Step(now time.Time) Frame {
	if s.cancelled || s.phase == PhaseDone {
		return s.frame
	}
	if !s.started {
		s.started = true
		s.phaseStart = now
	}

	if s.landed {
		s.landed = false
		switch s.phase {
		case PhaseDepart:
			s.phase = PhaseArrive
			s.rot = Rotation{
				From:     -s.rot.To,
				To:       0,
				Pivot:    s.rot.Pivot,
				Duration: s.rot.Duration,
				Ease:     Decelerate,
			}
			s.phaseStart = now
			if s.onSwap != nil {
				s.onSwap()
			}
			if s.cancelled {
				return s.frame
			}
		case PhaseArrive:
			s.phase = PhaseDone
			s.frame.Phase = PhaseDone
			if s.onDone != nil {
				s.onDone()
			}
			return s.frame
		}
	}

	slot := s.from
	if s.phase == PhaseArrive {
		slot = s.to
	}
	angle, finished := s.rot.At(now.Sub(s.phaseStart))
	s.landed = finished
	s.frame = Frame{Slot: slot, Angle: angle, Phase: s.phase, Pivot: s.rot.Pivot}
	return s.frame
}

// Cancel stops the flip. No further callbacks run.
func (s *Sequencer) Cancel() {
	s.cancelled = true
}

// Running reports whether the flip still has steps to take.
func (s *Sequencer) Running() bool {
	return !s.cancelled && s.phase != PhaseDone
}

// Frame returns the last produced frame.
func (s *Sequencer) Frame() Frame {
	return s.frame
}
