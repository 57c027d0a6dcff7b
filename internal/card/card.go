// Package card implements the terminal visual host for a flip state.
//
// A Card is a blank stage with one slot per face plus an overlay slot that
// is up only while a flip animates and swallows clicks. It never remembers
// which item it shows; the grid adapter paints faces on every rebind and the
// state machine drives it through the flip.Host methods.
package card

import (
	"fmt"
	"strings"
	"time"

	"github.com/five82/flipgrid/internal/anim"
	"github.com/five82/flipgrid/internal/flip"
)

// Overlay is the input-blocking slot index, after the real faces.
const Overlay = flip.NumSides

// ScaleMode controls how face text fits the card.
type ScaleMode int

const (
	ScaleCenter ScaleMode = iota
	ScaleStart
	ScaleStretch
)

func (m ScaleMode) String() string {
	switch m {
	case ScaleStart:
		return "start"
	case ScaleStretch:
		return "stretch"
	default:
		return "center"
	}
}

// ParseScaleMode accepts "center", "start" or "stretch".
func ParseScaleMode(s string) (ScaleMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "center":
		return ScaleCenter, nil
	case "start":
		return ScaleStart, nil
	case "stretch":
		return ScaleStretch, nil
	default:
		return ScaleCenter, fmt.Errorf("unknown scale mode %q", s)
	}
}

// Face is the content of one side.
type Face struct {
	Title string
	Body  string
	Color string // background, hex
}

// Options size a card. Width and Height include the border; Padding is the
// gap between border and text, Margin the gap around the card.
type Options struct {
	Width   int
	Height  int
	Padding int
	Margin  int
	Scale   ScaleMode
}

const (
	minWidth  = 5
	minHeight = 3
)

func (o Options) normalized() Options {
	o.Width = max(o.Width, minWidth)
	o.Height = max(o.Height, minHeight)
	o.Padding = max(o.Padding, 0)
	o.Margin = max(o.Margin, 0)
	return o
}

// Footprint returns the screen cells a card takes, margin included.
func (o Options) Footprint() (width, height int) {
	o = o.normalized()
	return o.Width + 2*o.Margin, o.Height + 2*(o.Margin/2)
}

// Card is a flip.Host drawn with lipgloss.
type Card struct {
	opts        Options
	faces       [flip.NumSides]Face
	visible     flip.Side
	interactive [flip.NumSides]bool

	seq   *anim.Sequencer
	done  *flip.Completion // signalled when seq lands
	frame anim.Frame
}

var _ flip.Host = (*Card)(nil)

// New returns a card showing a blue front and a red back.
func New(opts Options) *Card {
	c := &Card{opts: opts.normalized()}
	c.faces[flip.Front] = Face{Color: "#1d4ed8"}
	c.faces[flip.Back] = Face{Color: "#b91c1c"}
	c.interactive[flip.Front] = true
	c.frame = anim.Frame{Slot: flip.Front, Phase: anim.PhaseDone}
	return c
}

// SetFace replaces the content of one side.
func (c *Card) SetFace(side flip.Side, f Face) {
	mustSlot(side)
	c.faces[side] = f
}

// Face returns the content of one side.
func (c *Card) Face(side flip.Side) Face {
	mustSlot(side)
	return c.faces[side]
}

// Options returns the card geometry.
func (c *Card) Options() Options {
	return c.opts
}

// Visible returns the face currently on stage.
func (c *Card) Visible() flip.Side {
	return c.visible
}

// Interactive reports whether clicks on side are accepted.
func (c *Card) Interactive(side flip.Side) bool {
	mustSlot(side)
	return c.interactive[side]
}

// Animating reports whether a flip is running. The overlay is up exactly
// while this is true.
func (c *Card) Animating() bool {
	return c.seq != nil
}

// Frame returns the frame that View draws.
func (c *Card) Frame() anim.Frame {
	return c.frame
}

// Click reports whether a click reaches the visible face. Clicks landing on
// the overlay or on a disabled face are swallowed.
func (c *Card) Click() bool {
	if c.TopSlot() == Overlay {
		return false
	}
	return c.interactive[c.visible]
}

// TopSlot returns the slot receiving input: Overlay during a flip, the
// visible face otherwise.
func (c *Card) TopSlot() int {
	if c.seq != nil {
		return Overlay
	}
	return int(c.visible)
}

// ShowInstant implements flip.Host.
func (c *Card) ShowInstant(side flip.Side) {
	mustSlot(side)
	c.stop()
	c.visible = side
	c.frame = anim.Frame{Slot: side, Phase: anim.PhaseDone, Pivot: c.pivot()}
}

// AnimateTo implements flip.Host.
func (c *Card) AnimateTo(side flip.Side, dir flip.Direction, d time.Duration, done *flip.Completion) {
	mustSlot(side)
	c.stop()

	var seq *anim.Sequencer
	seq = anim.NewSequencer(c.visible, side, dir, d, c.pivot(),
		func() {
			c.visible = side
			c.interactive[side] = true
		},
		func() {
			if c.seq == seq {
				c.seq = nil
				c.done = nil
			}
			c.frame = anim.Frame{Slot: side, Phase: anim.PhaseDone, Pivot: c.pivot()}
			done.Signal()
		},
	)
	c.seq = seq
	c.done = done
	c.frame = seq.Frame()
}

// SetInteractive implements flip.Host.
func (c *Card) SetInteractive(side flip.Side, enabled bool) {
	mustSlot(side)
	c.interactive[side] = enabled
}

// ClearAnimation implements flip.Host. A flip started with a different
// completion keeps running.
func (c *Card) ClearAnimation(done *flip.Completion) {
	if c.done != done {
		return
	}
	c.stop()
}

func (c *Card) stop() {
	if c.seq == nil {
		return
	}
	c.seq.Cancel()
	c.seq = nil
	c.done = nil
	c.frame = anim.Frame{Slot: c.visible, Phase: anim.PhaseDone, Pivot: c.pivot()}
}

// Advance steps the running flip to now. It returns false when the card is
// at rest.
func (c *Card) Advance(now time.Time) bool {
	seq := c.seq
	if seq == nil {
		return false
	}
	f := seq.Step(now)
	if c.seq == seq && seq.Running() {
		c.frame = f
	}
	return true
}

func (c *Card) pivot() anim.Pivot {
	return anim.Pivot{X: float64(c.opts.Width) / 2, Y: float64(c.opts.Height) / 2}
}

func mustSlot(side flip.Side) {
	if !side.Valid() {
		panic(fmt.Sprintf("card: face slot %d out of range", int(side)))
	}
}
