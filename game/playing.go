package game

import (
	"fmt"

	"github.com/lixenwraith/term-invaders/constants"
	"github.com/lixenwraith/term-invaders/input"
	"github.com/lixenwraith/term-invaders/render"
	"github.com/lixenwraith/term-invaders/session"
)

// playingState delegates the frame to the level session and maps its
// outcome to transitions. Leaving this state, for any reason, tears the
// session down, which cancels the enemy-fire timer.
type playingState struct{}

func (s *playingState) Enter(g *Game) {
	g.startSession()
}

func (s *playingState) Exit(g *Game) {
	g.closeSession()
}

func (s *playingState) Update(g *Game) {
	// Restart and quit work at any time mid-level
	if g.in.Consume(input.ActionRestart) {
		g.level = constants.FirstLevel
		g.transition(StateMenu)
		return
	}
	if g.in.Consume(input.ActionQuit) {
		g.requestQuit()
		g.closeSession()
		return
	}

	switch g.session.Update(g.in) {
	case session.OutcomeLevelComplete:
		g.transition(StateLevelComplete)
	case session.OutcomeGameOver:
		g.transition(StateGameOver)
	}
}

func (s *playingState) Draw(g *Game, surf render.Surface) {
	if g.session == nil {
		return
	}
	g.session.Draw(surf)
	surf.DrawText(fmt.Sprintf("LEVEL %d", g.level), render.TextSmall, render.ColorYellow, false, 10, 8)
}

// levelCompleteState waits for confirmation, then either starts the next
// level or declares victory past the last one.
type levelCompleteState struct{}

func (s *levelCompleteState) Enter(g *Game) {}
func (s *levelCompleteState) Exit(g *Game)  {}

func (s *levelCompleteState) Update(g *Game) {
	if g.in.Consume(input.ActionQuit) {
		g.requestQuit()
		return
	}
	if g.in.Consume(input.ActionConfirm) {
		g.level++
		if g.level > constants.LastLevel {
			g.transition(StateVictory)
			return
		}
		g.transition(StatePlaying)
	}
}

func (s *levelCompleteState) Draw(g *Game, surf render.Surface) {
	h := constants.ScreenHeight
	surf.DrawText(fmt.Sprintf("LEVEL %d CLEAR", g.level), render.TextLarge, render.ColorGreen, true, 0, h*0.40)
	surf.DrawText(fmt.Sprintf("<%s> continue", g.keymap.KeyName(input.ActionConfirm)),
		render.TextSmall, render.ColorWhite, true, 0, h*0.55)
}
