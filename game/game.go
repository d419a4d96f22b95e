package game

import (
	"math/rand"

	"github.com/rs/zerolog"

	"github.com/lixenwraith/term-invaders/asset"
	"github.com/lixenwraith/term-invaders/constants"
	"github.com/lixenwraith/term-invaders/engine"
	"github.com/lixenwraith/term-invaders/events"
	"github.com/lixenwraith/term-invaders/input"
	"github.com/lixenwraith/term-invaders/render"
	"github.com/lixenwraith/term-invaders/session"
)

// Config carries the collaborators the machine needs.
type Config struct {
	Assets asset.Store
	Input  *input.State
	Keymap *input.Keymap
	Queue  *events.Queue
	Clock  engine.TimeProvider
	Rand   *rand.Rand
	Log    zerolog.Logger

	// StartLevel lets a config file skip ahead for testing; 0 means level 1
	StartLevel int
}

// Game is the state machine instance. It owns the level number, the active
// state, and at most one session at a time.
type Game struct {
	level   int
	active  StateID
	states  map[StateID]State
	session *session.Session

	assets asset.Store
	in     *input.State
	keymap *input.Keymap
	queue  *events.Queue
	clock  engine.TimeProvider
	rng    *rand.Rand
	log    zerolog.Logger

	quit bool
}

// New creates the machine in the menu state.
func New(cfg Config) *Game {
	level := cfg.StartLevel
	if level < constants.FirstLevel {
		level = constants.FirstLevel
	}

	g := &Game{
		level:  level,
		active: StateMenu,
		states: map[StateID]State{
			StateMenu:          &menuState{},
			StateInstructions:  &instructionsState{},
			StatePlaying:       &playingState{},
			StateLevelComplete: &levelCompleteState{},
			StateGameOver:      &endState{title: "GAME OVER", color: render.ColorRed},
			StateVictory:       &endState{title: "VICTORY", color: render.ColorGreen},
		},
		assets: cfg.Assets,
		in:     cfg.Input,
		keymap: cfg.Keymap,
		queue:  cfg.Queue,
		clock:  cfg.Clock,
		rng:    cfg.Rand,
		log:    cfg.Log,
	}
	g.states[g.active].Enter(g)
	return g
}

// Tick runs one frame: drain queued events, update the active state, draw.
// It is the queue's only consumer, which serializes the enemy-fire timer
// with the simulation.
func (g *Game) Tick(surf render.Surface) {
	for _, ev := range g.queue.Consume() {
		g.handleEvent(ev)
	}

	g.states[g.active].Update(g)

	surf.Clear()
	g.states[g.active].Draw(g, surf)
	surf.Present()

	g.in.EndTick()
}

func (g *Game) handleEvent(ev events.Event) {
	switch ev.Type {
	case events.TypeEnemyFire:
		// Only a live session may shoot; stale events from a closed
		// session are dropped here
		if g.active == StatePlaying && g.session != nil {
			g.session.SpawnEnemyFire()
		}
	}
}

// transition switches the active state, running Exit and Enter hooks.
func (g *Game) transition(to StateID) {
	g.log.Info().
		Stringer("from", g.active).
		Stringer("to", to).
		Int("level", g.level).
		Msg("state transition")

	g.states[g.active].Exit(g)
	g.active = to
	g.states[g.active].Enter(g)
}

// requestQuit stops the run loop after the current tick.
func (g *Game) requestQuit() {
	g.quit = true
}

// Done reports whether the run loop should terminate.
func (g *Game) Done() bool {
	return g.quit
}

// Active returns the current state tag.
func (g *Game) Active() StateID {
	return g.active
}

// Level returns the current 1-based level number.
func (g *Game) Level() int {
	return g.level
}

// startSession builds a fresh session for the current level.
func (g *Game) startSession() {
	g.session = session.New(g.level, g.assets, g.queue, g.clock, g.rng, g.log)
}

// closeSession cancels the enemy-fire timer and discards the session along
// with any fire events it already queued.
func (g *Game) closeSession() {
	if g.session != nil {
		g.session.Close()
		g.session = nil
	}
	g.queue.Consume()
}
