package events

import "time"

// Type identifies a game event.
type Type int

const (
	// TypeEnemyFire requests one enemy shot from a random living alien.
	// Trigger: engine.FireScheduler (wall-clock timer)
	// Consumer: game Playing state | Payload: none
	TypeEnemyFire Type = iota
)

// Event is a single queued game event.
// The queue serializes timer-driven producers with the tick loop: producers
// only push, and the tick callback is the sole consumer, so no event handler
// ever runs concurrently with a simulation update.
type Event struct {
	Type      Type
	Timestamp time.Time
}
