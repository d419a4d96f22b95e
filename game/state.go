// Package game implements the top-level finite state machine that owns the
// level number and at most one live session. Transitions are edge-triggered
// on consumed key presses, so holding a key across frames never re-triggers.
package game

import "github.com/lixenwraith/term-invaders/render"

// StateID identifies a top-level game state.
type StateID int

const (
	StateMenu StateID = iota
	StateInstructions
	StatePlaying
	StateLevelComplete
	StateGameOver
	StateVictory
)

func (id StateID) String() string {
	switch id {
	case StateMenu:
		return "menu"
	case StateInstructions:
		return "instructions"
	case StatePlaying:
		return "playing"
	case StateLevelComplete:
		return "level_complete"
	case StateGameOver:
		return "game_over"
	case StateVictory:
		return "victory"
	default:
		return "unknown"
	}
}

// State is one node of the machine. Enter and Exit bracket the state's
// lifetime; Update runs once per tick and performs transitions through the
// Game; Draw renders onto an already-cleared surface.
type State interface {
	Enter(g *Game)
	Update(g *Game)
	Draw(g *Game, s render.Surface)
	Exit(g *Game)
}
