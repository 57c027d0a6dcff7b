// Package ui provides the terminal interface of flipgrid.
//
// # Architecture Overview
//
// The interface is a Bubble Tea program. Model owns a grid.View whose pool of
// card.Card hosts is rebound to flip.State values as the page scrolls. Every
// state mutation happens inside Update, so the flip and grid packages need no
// locking. Other goroutines, such as the autoplay driver, talk to the model
// only through messages (ForceMsg).
//
// # Package Structure
//
//   - app.go: Model, Update loop, key handling and frame ticking
//   - session.go: state shared with flip listeners (event log, exclusive mode, painting)
//   - render.go: header, card grid, event log and footer rendering
//   - help.go: keyboard shortcut overlay
//   - keys.go: key bindings built with bubbles/key
//   - theme.go: Dracula and Slate color themes
//   - layout.go: screen budget and timing constants
//
// # Frame Ticking
//
// Cards animate only while a frame tick is scheduled. Any action that may
// start a flip calls startFrames, which schedules a tick when a card is
// turning and none is pending. Each tick advances every card in the pool
// and reschedules itself until the grid is still again.
//
// # Exclusive Mode
//
// When enabled, a flip the user starts forces every other card to its front,
// so at most one card shows its back. Forced flips are not user initiated and
// do not cascade.
package ui
