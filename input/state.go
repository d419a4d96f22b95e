package input

import "sync/atomic"

// State is the held-state table shared between the terminal poll goroutine
// (writer) and the tick loop (reader). Atomic flags keep the two sides free
// of locks.
type State struct {
	held [actionCount]atomic.Bool
}

// NewState creates an empty input table.
func NewState() *State {
	return &State{}
}

// Press latches an action. Called from the event poll goroutine.
func (s *State) Press(a Action) {
	s.held[a].Store(true)
}

// Held reports whether the action is currently latched without clearing it.
// Used for continuous actions (movement, fire) that repeat while held.
func (s *State) Held(a Action) bool {
	return s.held[a].Load()
}

// Consume returns whether the action was latched and clears it, so an
// edge-triggered key acts exactly once per press even across many ticks.
func (s *State) Consume(a Action) bool {
	return s.held[a].Swap(false)
}

// EndTick clears every latch. The tick loop calls it after the state machine
// has read the table, so a press never leaks into a later tick as a phantom
// hold.
func (s *State) EndTick() {
	for i := range s.held {
		s.held[i].Store(false)
	}
}
