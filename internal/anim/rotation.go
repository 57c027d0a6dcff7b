// Package anim provides the rotation primitive and the two-phase flip
// sequencer that drives it frame by frame.
package anim

import (
	"math"
	"time"
)

// Easing maps linear progress in [0,1] to eased progress.
type Easing func(t float64) float64

// Linear leaves progress untouched.
func Linear(t float64) float64 { return t }

// Accelerate starts slow and speeds up.
func Accelerate(t float64) float64 { return t * t }

// Decelerate starts fast and slows down.
func Decelerate(t float64) float64 { return 1 - (1-t)*(1-t) }

// Pivot is the rotation center in cell coordinates.
type Pivot struct {
	X, Y float64
}

// Rotation turns a face around the vertical axis through Pivot from From to
// To degrees over Duration.
type Rotation struct {
	From     float64
	To       float64
	Pivot    Pivot
	Duration time.Duration
	Ease     Easing
}

// At returns the angle after elapsed and whether the rotation has reached To.
func (r Rotation) At(elapsed time.Duration) (float64, bool) {
	if r.Duration <= 0 || elapsed >= r.Duration {
		return r.To, true
	}
	if elapsed < 0 {
		elapsed = 0
	}
	t := float64(elapsed) / float64(r.Duration)
	ease := r.Ease
	if ease == nil {
		ease = Linear
	}
	return r.From + (r.To-r.From)*ease(t), false
}

// Projection returns how much of a face's width stays visible when it is
// turned deg degrees away from the viewer.
func Projection(deg float64) float64 {
	return math.Abs(math.Cos(deg * math.Pi / 180))
}
