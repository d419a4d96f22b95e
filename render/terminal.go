package render

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/term-invaders/asset"
	"github.com/lixenwraith/term-invaders/constants"
	"github.com/lixenwraith/term-invaders/core"
)

// TermSurface renders the world onto a tcell screen.
// World units are scaled to cells from the current terminal size; a resize
// re-derives the scale so the playfield always fills the terminal.
type TermSurface struct {
	screen tcell.Screen

	cols, rows     int
	scaleX, scaleY float64
}

// NewTermSurface wraps an initialized screen. It fails if the terminal is
// too small to hold the playfield.
func NewTermSurface(screen tcell.Screen) (*TermSurface, error) {
	ts := &TermSurface{screen: screen}
	cols, rows := screen.Size()
	if err := ts.Resize(cols, rows); err != nil {
		return nil, err
	}
	return ts, nil
}

// Resize recomputes the world-to-cell scale for a new terminal size.
func (ts *TermSurface) Resize(cols, rows int) error {
	if cols < constants.MinTermCols || rows < constants.MinTermRows {
		return fmt.Errorf("terminal %dx%d too small, need at least %dx%d",
			cols, rows, constants.MinTermCols, constants.MinTermRows)
	}
	ts.cols = cols
	ts.rows = rows
	ts.scaleX = float64(cols) / constants.ScreenWidth
	ts.scaleY = float64(rows) / constants.ScreenHeight
	return nil
}

// Clear erases the frame buffer.
func (ts *TermSurface) Clear() {
	ts.screen.Clear()
}

// Present flushes the frame to the terminal.
func (ts *TermSurface) Present() {
	ts.screen.Show()
}

// cell converts a world position to a cell position.
func (ts *TermSurface) cell(x, y float64) (int, int) {
	return int(x * ts.scaleX), int(y * ts.scaleY)
}

// DrawImage draws sprite art anchored at the scaled top-left of box,
// clipped to the screen.
func (ts *TermSurface) DrawImage(spr *asset.Sprite, frame int, box core.Box) {
	col, row := ts.cell(box.X, box.Y)

	for dy, line := range spr.Frame(frame) {
		y := row + dy
		if y < 0 || y >= ts.rows {
			continue
		}
		for dx, r := range []rune(line) {
			x := col + dx
			if x < 0 || x >= ts.cols || r == ' ' {
				continue
			}
			ts.screen.SetContent(x, y, r, nil, tcell.StyleDefault)
		}
	}
}

// DrawText draws a single text line, bold for TextLarge.
func (ts *TermSurface) DrawText(text string, size TextSize, color Color, center bool, x, y float64) {
	style := tcell.StyleDefault.Foreground(termColor(color))
	if size == TextLarge {
		style = style.Bold(true)
	}

	runes := []rune(text)
	col, row := ts.cell(x, y)
	if center {
		col = (ts.cols - len(runes)) / 2
	}
	if row < 0 || row >= ts.rows {
		return
	}

	for i, r := range runes {
		c := col + i
		if c < 0 || c >= ts.cols {
			continue
		}
		ts.screen.SetContent(c, row, r, nil, style)
	}
}

func termColor(c Color) tcell.Color {
	switch c {
	case ColorWhite:
		return tcell.ColorWhite
	case ColorGreen:
		return tcell.ColorGreen
	case ColorRed:
		return tcell.ColorRed
	case ColorYellow:
		return tcell.ColorYellow
	default:
		return tcell.ColorDefault
	}
}
