package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/five82/flipgrid/internal/card"
	"github.com/five82/flipgrid/internal/config"
	"github.com/five82/flipgrid/internal/flip"
)

// session is shared by every copy of Model. Flip listeners fire from inside
// state calls, long after the Model value that registered them was copied.
type session struct {
	cfg       config.Config
	states    []*flip.State
	theme     Theme
	exclusive bool
	events    []string
	now       func() time.Time
}

func newSession(cfg config.Config, states []*flip.State, theme Theme, exclusive bool) *session {
	s := &session{
		cfg:       cfg,
		states:    states,
		theme:     theme,
		exclusive: exclusive,
		now:       time.Now,
	}
	for _, st := range states {
		st.SetListener(s)
	}
	return s
}

// StartedFlipping implements flip.Listener. In exclusive mode a user flip
// sends every other card back to its front.
func (s *session) StartedFlipping(st *flip.State, from flip.Side, userInitiated bool) {
	s.record(fmt.Sprintf("card %d  %s -> %s%s", st.ID()+1, from, from.Other(), origin(userInitiated)))
	if !userInitiated || !s.exclusive {
		return
	}
	for _, other := range s.states {
		if other != st {
			other.ForceTo(flip.Front)
		}
	}
}

// FinishedFlipping implements flip.Listener.
func (s *session) FinishedFlipping(st *flip.State, to flip.Side, userInitiated bool) {
	s.record(fmt.Sprintf("card %d  settled on %s%s", st.ID()+1, to, origin(userInitiated)))
}

func (s *session) record(line string) {
	s.events = append(s.events, s.now().Format("15:04:05")+"  "+line)
	if over := len(s.events) - EventBufferLimit; over > 0 {
		s.events = s.events[over:]
	}
}

// forceAll drives every state to side.
func (s *session) forceAll(side flip.Side) {
	for _, st := range s.states {
		st.ForceTo(side)
	}
}

// paint fills a recycled card with the identity of the item at position.
func (s *session) paint(position int, h flip.Host) {
	c, ok := h.(*card.Card)
	if !ok {
		return
	}
	n := position + 1
	back := s.cfg.BackBody
	if back == "" {
		back = fmt.Sprintf("#%d of %d", n, len(s.states))
	}
	c.SetFace(flip.Front, card.Face{Title: numbered(s.cfg.FrontTitle, n), Color: s.theme.FrontFace})
	c.SetFace(flip.Back, card.Face{Title: numbered(s.cfg.BackTitle, n), Body: back, Color: s.theme.BackFace})
}

func numbered(pattern string, n int) string {
	if strings.Contains(pattern, "%d") {
		return fmt.Sprintf(pattern, n)
	}
	return pattern
}

func origin(userInitiated bool) string {
	if userInitiated {
		return "  (user)"
	}
	return ""
}
