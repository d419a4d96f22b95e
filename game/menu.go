package game

import (
	"fmt"

	"github.com/lixenwraith/term-invaders/constants"
	"github.com/lixenwraith/term-invaders/input"
	"github.com/lixenwraith/term-invaders/render"
)

// menuState is the entry screen. Starting a run resets nothing: the level
// number carries whatever the previous transition left (1 after a restart).
type menuState struct{}

func (s *menuState) Enter(g *Game) {}
func (s *menuState) Exit(g *Game)  {}

func (s *menuState) Update(g *Game) {
	switch {
	case g.in.Consume(input.ActionConfirm):
		g.transition(StatePlaying)
	case g.in.Consume(input.ActionInfo):
		g.transition(StateInstructions)
	case g.in.Consume(input.ActionQuit):
		g.requestQuit()
	}
}

func (s *menuState) Draw(g *Game, surf render.Surface) {
	h := constants.ScreenHeight

	surf.DrawText("T E R M   I N V A D E R S", render.TextLarge, render.ColorGreen, true, 0, h*0.30)
	surf.DrawText(fmt.Sprintf("<%s> play", g.keymap.KeyName(input.ActionConfirm)),
		render.TextSmall, render.ColorWhite, true, 0, h*0.45)
	surf.DrawText(fmt.Sprintf("<%s> instructions", g.keymap.KeyName(input.ActionInfo)),
		render.TextSmall, render.ColorWhite, true, 0, h*0.50)
	surf.DrawText(fmt.Sprintf("<%s> quit", g.keymap.KeyName(input.ActionQuit)),
		render.TextSmall, render.ColorWhite, true, 0, h*0.55)
}

// instructionsState shows the bound keys; any confirm or cancel press
// returns to the menu.
type instructionsState struct{}

func (s *instructionsState) Enter(g *Game) {}
func (s *instructionsState) Exit(g *Game)  {}

func (s *instructionsState) Update(g *Game) {
	if g.in.Consume(input.ActionConfirm) || g.in.Consume(input.ActionCancel) {
		g.transition(StateMenu)
	}
}

func (s *instructionsState) Draw(g *Game, surf render.Surface) {
	h := constants.ScreenHeight
	km := g.keymap

	surf.DrawText("INSTRUCTIONS", render.TextLarge, render.ColorGreen, true, 0, h*0.25)

	lines := []string{
		fmt.Sprintf("move    <%s> <%s>", km.KeyName(input.ActionLeft), km.KeyName(input.ActionRight)),
		fmt.Sprintf("fire    <%s>", km.KeyName(input.ActionFire)),
		fmt.Sprintf("restart <%s>", km.KeyName(input.ActionRestart)),
		fmt.Sprintf("quit    <%s>", km.KeyName(input.ActionQuit)),
		"",
		"Clear every wave before it reaches you.",
		fmt.Sprintf("Survive %d levels to win.", constants.LastLevel),
	}
	for i, line := range lines {
		surf.DrawText(line, render.TextSmall, render.ColorWhite, true, 0, h*(0.35+0.05*float64(i)))
	}

	surf.DrawText(fmt.Sprintf("<%s> back", km.KeyName(input.ActionCancel)),
		render.TextSmall, render.ColorYellow, true, 0, h*0.80)
}
