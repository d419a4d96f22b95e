// Package render maps the fixed world coordinate space onto terminal cells.
// Game code only sees the Surface interface; tcell stays behind it the same
// way platform specifics stay behind a backend interface.
package render

import (
	"github.com/lixenwraith/term-invaders/asset"
	"github.com/lixenwraith/term-invaders/core"
)

// Color is a logical color resolved by the concrete surface.
type Color int

const (
	ColorDefault Color = iota
	ColorWhite
	ColorGreen
	ColorRed
	ColorYellow
)

// TextSize selects a text style, not a pixel size; the terminal surface
// renders TextLarge bold.
type TextSize int

const (
	TextSmall TextSize = iota
	TextLarge
)

// Surface is the rendering collaborator of the simulation. The core calls
// it once per frame per visible element; it owns neither fonts nor cell
// formats.
type Surface interface {
	// Clear erases the frame buffer.
	Clear()

	// DrawImage draws one animation frame of a sprite with its box anchor
	// at the world position of box. The art keeps its own cell dimensions;
	// the box communicates world placement, not art scaling.
	DrawImage(spr *asset.Sprite, frame int, box core.Box)

	// DrawText draws a text line at the world position (x, y).
	// When center is true, x is ignored and the line is centered.
	DrawText(text string, size TextSize, color Color, center bool, x, y float64)

	// Present flushes the frame to the terminal.
	Present()
}
