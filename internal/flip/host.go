package flip

import "time"

// Host renders a State. It is purely mechanical: it never knows which logical
// item it is showing and is never asked for flip truth. The only thing a host
// reports back is the Completion handed to AnimateTo.
type Host interface {
	// ShowInstant displays side with no animation.
	ShowInstant(side Side)
	// AnimateTo rotates from the visible face to side and signals done once
	// the arriving face has settled.
	AnimateTo(side Side, dir Direction, duration time.Duration, done *Completion)
	// SetInteractive enables or disables input on one face.
	SetInteractive(side Side, enabled bool)
	// ClearAnimation drops the running animation without signalling, but
	// only when it is the one that would signal done. A host rebound to
	// another state keeps that state's animation.
	ClearAnimation(done *Completion)
}

// Completion is a one-shot settle signal.
type Completion struct {
	fn    func()
	fired bool
}

// NewCompletion wraps fn so it runs at most once.
func NewCompletion(fn func()) *Completion {
	return &Completion{fn: fn}
}

// Signal runs the callback the first time it is called.
func (c *Completion) Signal() {
	if c == nil || c.fired {
		return
	}
	c.fired = true
	if c.fn != nil {
		c.fn()
	}
}

// Fired reports whether Signal has been called.
func (c *Completion) Fired() bool {
	return c != nil && c.fired
}

// Listener observes flip progress on a State.
//
// StartedFlipping fires at most once per physical animation and never for a
// corrective hop that resolves an override. FinishedFlipping fires exactly
// once per settle, including host-less and rebind settles.
type Listener interface {
	StartedFlipping(s *State, from Side, userInitiated bool)
	FinishedFlipping(s *State, to Side, userInitiated bool)
}

// ListenerFuncs adapts plain functions to Listener. Nil fields are skipped.
type ListenerFuncs struct {
	Started  func(s *State, from Side, userInitiated bool)
	Finished func(s *State, to Side, userInitiated bool)
}

func (l ListenerFuncs) StartedFlipping(s *State, from Side, userInitiated bool) {
	if l.Started != nil {
		l.Started(s, from, userInitiated)
	}
}

func (l ListenerFuncs) FinishedFlipping(s *State, to Side, userInitiated bool) {
	if l.Finished != nil {
		l.Finished(s, to, userInitiated)
	}
}
