package game

import (
	"fmt"

	"github.com/lixenwraith/term-invaders/constants"
	"github.com/lixenwraith/term-invaders/input"
	"github.com/lixenwraith/term-invaders/render"
)

// endState serves both game over and victory: restart returns to the menu
// with the level reset to 1, quit terminates the run loop.
type endState struct {
	title string
	color render.Color
}

func (s *endState) Enter(g *Game) {}
func (s *endState) Exit(g *Game)  {}

func (s *endState) Update(g *Game) {
	if g.in.Consume(input.ActionRestart) {
		g.level = constants.FirstLevel
		g.transition(StateMenu)
		return
	}
	if g.in.Consume(input.ActionQuit) {
		g.requestQuit()
	}
}

func (s *endState) Draw(g *Game, surf render.Surface) {
	h := constants.ScreenHeight
	surf.DrawText(s.title, render.TextLarge, s.color, true, 0, h*0.40)
	surf.DrawText(fmt.Sprintf("<%s> menu  <%s> quit",
		g.keymap.KeyName(input.ActionRestart), g.keymap.KeyName(input.ActionQuit)),
		render.TextSmall, render.ColorWhite, true, 0, h*0.55)
}
