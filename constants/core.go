package constants

import "time"

// Game Loop & Engine Timing
const (
	// FrameUpdateInterval is the simulation tick interval (~60 ticks/second).
	// Movement constants are tuned per tick, not per second.
	FrameUpdateInterval = 16 * time.Millisecond

	// TerminalEventBuffer is the capacity of the terminal event channel
	TerminalEventBuffer = 256
)

// Event Queue Limits
const (
	// EventQueueSize is the fixed capacity of the event ring buffer
	EventQueueSize = 64

	// EventBufferMask is the bitmask for fast modulo operations (64 - 1)
	EventBufferMask = 63
)

// Terminal Requirements
const (
	// MinTermCols is the minimum terminal width needed to map the world onto cells
	MinTermCols = 70

	// MinTermRows is the minimum terminal height needed to map the world onto cells
	MinTermRows = 24
)
