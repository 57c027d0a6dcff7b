package flip

import (
	"io"
	"log"
	"time"
)

const (
	DefaultDuration    = 500 * time.Millisecond
	DefaultFrontToBack = Left
	DefaultBackToFront = Right
)

// Options are the construction-time settings of a State.
type Options struct {
	Duration    time.Duration
	FrontToBack Direction
	BackToFront Direction
}

// DefaultOptions returns a 500ms flip, rotating left to the back and right
// to the front.
func DefaultOptions() Options {
	return Options{
		Duration:    DefaultDuration,
		FrontToBack: DefaultFrontToBack,
		BackToFront: DefaultBackToFront,
	}
}

// DirectionFor returns the rotation used when leaving from.
func (o Options) DirectionFor(from Side) Direction {
	if from == Front {
		return o.FrontToBack
	}
	return o.BackToFront
}

var logger = log.New(io.Discard, "", 0)

// SetLogger routes the state machine's decision trace to l. Passing nil
// silences it again.
func SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard, "", 0)
	}
	logger = l
}
