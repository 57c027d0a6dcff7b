package ui

import "time"

// Screen budget outside the card grid.
const (
	// HeaderHeight is the status line above the grid.
	HeaderHeight = 1

	// FooterHeight is the key hint line below the event log.
	FooterHeight = 1

	// EventLogHeight is the number of event lines kept on screen.
	EventLogHeight = 5
)

// Event log limits.
const (
	// EventBufferLimit is the maximum number of event lines kept in memory.
	EventBufferLimit = 500
)

// Timing constants.
const (
	// FrameInterval is the redraw period while any card is turning.
	FrameInterval = 16 * time.Millisecond
)
