package flip

// State is the long-lived flip truth for one logical item. It outlives the
// hosts that render it: hosts are bound and unbound as a recycling container
// reuses them.
//
// A State is not safe for concurrent use. All calls, including the
// Completion signals delivered by hosts, must come from a single event loop.
type State struct {
	id   int
	opts Options

	current Side
	target  Side

	inProgress      bool
	overridePending bool
	// userInitiated belongs to the hop chain in flight.
	userInitiated bool

	host     Host
	listener Listener

	// pending is the completion handed to the host for the running hop.
	pending *Completion

	// gen invalidates completions handed to hosts that were since
	// unbound or rebound.
	gen uint64
}

// NewState returns a state idle on Front.
func NewState(id int, opts Options) *State {
	if opts.Duration <= 0 {
		opts.Duration = DefaultDuration
	}
	return &State{id: id, opts: opts, current: Front, target: Front}
}

// ID returns the stable identity given at construction.
func (s *State) ID() int { return s.id }

// CurrentSide returns the side shown once settled.
func (s *State) CurrentSide() Side { return s.current }

// TargetSide returns the side the state is driving toward. It equals
// CurrentSide when idle.
func (s *State) TargetSide() Side { return s.target }

// InProgress reports whether a transition is running.
func (s *State) InProgress() bool { return s.inProgress }

// OverridePending reports whether a forced side is waiting for the running
// transition to settle.
func (s *State) OverridePending() bool { return s.overridePending }

// Host returns the bound host, or nil.
func (s *State) Host() Host { return s.host }

// Options returns the construction-time options.
func (s *State) Options() Options { return s.opts }

// SetListener replaces the listener. nil removes it.
func (s *State) SetListener(l Listener) { s.listener = l }

// RequestFlip flips to the other side. A request while a transition is
// running is ignored; only ForceTo can redirect a flight. Without a bound
// host the flip settles before RequestFlip returns. It reports whether a
// transition was started.
func (s *State) RequestFlip(userInitiated bool) bool {
	if s.inProgress {
		logger.Printf("%d: flip request ignored, already flipping to %s", s.id, s.target)
		return false
	}
	s.target = s.current.Other()
	s.start(true, userInitiated)
	return true
}

// ForceTo drives the state toward side. Repeated calls while an override is
// pending only replace the desired side. A running animation is never
// interrupted; the override is resolved when it settles.
func (s *State) ForceTo(side Side) {
	mustSide(side)
	switch {
	case s.overridePending:
		logger.Printf("%d: already forced, retarget to %s", s.id, side)
		s.target = side
	case !s.inProgress && s.current == side:
		logger.Printf("%d: already on %s", s.id, side)
	case !s.inProgress:
		logger.Printf("%d: forcing to %s", s.id, side)
		s.target = side
		s.start(true, false)
	default:
		logger.Printf("%d: already flipping, override to %s", s.id, side)
		s.overridePending = true
		s.target = side
	}
}

// Bind attaches h, or detaches when h is nil. A transition still running on
// the departing host is resolved instantly to its intended side, reported
// as a finish, and its pending completion is discarded. The new host is
// synchronized to CurrentSide without animation.
func (s *State) Bind(h Host) {
	old := s.host
	flying := s.inProgress
	user := s.userInitiated && !s.overridePending

	if flying {
		if old != nil && s.pending != nil {
			old.ClearAnimation(s.pending)
		}
		logger.Printf("%d: rebound mid-flight, resolving to %s", s.id, s.target)
		s.current = s.target
	}
	s.target = s.current
	s.inProgress = false
	s.overridePending = false
	s.pending = nil
	s.gen++

	s.host = h
	if h != nil {
		h.ShowInstant(s.current)
		h.SetInteractive(s.current, true)
		h.SetInteractive(s.current.Other(), false)
	}

	if flying && s.listener != nil {
		s.listener.FinishedFlipping(s, s.current, user)
	}
}

// Unbind detaches the current host. An animation it is still running for
// this state is cleared so the host can be reused immediately; one it runs
// for another state is left alone.
func (s *State) Unbind() {
	s.Bind(nil)
}

func (s *State) start(notify, userInitiated bool) {
	from := s.current
	to := from.Other()
	s.inProgress = true
	s.userInitiated = userInitiated
	s.gen++
	gen := s.gen

	if notify && s.listener != nil {
		s.listener.StartedFlipping(s, from, userInitiated)
		if gen != s.gen {
			// The listener rebound us; Bind already settled the flight.
			return
		}
	}

	if s.host == nil {
		logger.Printf("%d: no host, settling on %s", s.id, to)
		s.settle(gen, to)
		return
	}
	s.host.SetInteractive(from, false)
	s.pending = NewCompletion(func() {
		s.settle(gen, to)
	})
	s.host.AnimateTo(to, s.opts.DirectionFor(from), s.opts.Duration, s.pending)
}

func (s *State) settle(gen uint64, side Side) {
	if gen != s.gen || !s.inProgress {
		logger.Printf("%d: dropping stale completion to %s", s.id, side)
		return
	}
	s.current = side
	s.pending = nil

	if s.overridePending {
		s.overridePending = false
		if s.target != side {
			logger.Printf("%d: landed on %s, flipping back to %s", s.id, side, s.target)
			s.start(false, false)
			return
		}
		s.finish(false)
		return
	}
	s.finish(s.userInitiated)
}

func (s *State) finish(userInitiated bool) {
	s.inProgress = false
	s.target = s.current
	logger.Printf("%d: finished on %s (user=%t)", s.id, s.current, userInitiated)
	if s.host != nil {
		s.host.SetInteractive(s.current, true)
	}
	if s.listener != nil {
		s.listener.FinishedFlipping(s, s.current, userInitiated)
	}
}
