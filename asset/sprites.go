// Package asset holds the rune-art sprites and the startup-time store that
// maps logical names to them. Art is embedded; Load validates every sprite
// and any failure is fatal to startup, there is no retry path.
package asset

import "fmt"

// Sprite is a named piece of rune art with one or more animation frames.
// Every frame has the same dimensions.
type Sprite struct {
	Name   string
	Frames [][]string
}

// Frame returns the rows of frame i, wrapping out-of-range indices.
func (s *Sprite) Frame(i int) []string {
	return s.Frames[i%len(s.Frames)]
}

// FrameCount returns the number of animation frames.
func (s *Sprite) FrameCount() int {
	return len(s.Frames)
}

// Store maps logical sprite names to decoded sprites.
type Store map[string]*Sprite

// Get returns the named sprite. Lookup of a missing name is a programming
// error caught at Load time, so Get does not return an error.
func (st Store) Get(name string) *Sprite {
	return st[name]
}

// Logical sprite names used by the simulation.
const (
	SpritePlayer      = "player"
	SpriteAlien       = "alien"
	SpriteBullet      = "bullet"
	SpriteEnemyBullet = "enemy_bullet"
)

// Load builds and validates the sprite store.
func Load() (Store, error) {
	st := Store{
		SpritePlayer: {
			Name: SpritePlayer,
			Frames: [][]string{{
				"  ╔╩╗  ",
				"╔═╩═╩═╗",
			}},
		},
		SpriteAlien: {
			Name: SpriteAlien,
			Frames: [][]string{
				{
					"╔═╦═╗",
					"╠═╬═╣",
					"╝   ╚",
				},
				{
					"╔═╦═╗",
					"╠═╬═╣",
					"╚   ╝",
				},
			},
		},
		SpriteBullet: {
			Name:   SpriteBullet,
			Frames: [][]string{{"^"}},
		},
		SpriteEnemyBullet: {
			Name:   SpriteEnemyBullet,
			Frames: [][]string{{"v"}},
		},
	}

	for name, spr := range st {
		if err := validate(spr); err != nil {
			return nil, fmt.Errorf("sprite %q: %w", name, err)
		}
	}
	return st, nil
}

// validate rejects sprites the renderer cannot draw: empty frames or frames
// whose rows differ in width (rune count, not byte count).
func validate(s *Sprite) error {
	if len(s.Frames) == 0 {
		return fmt.Errorf("no frames")
	}

	refRows := len(s.Frames[0])
	if refRows == 0 {
		return fmt.Errorf("empty frame")
	}
	refCols := len([]rune(s.Frames[0][0]))
	if refCols == 0 {
		return fmt.Errorf("empty frame")
	}

	for fi, frame := range s.Frames {
		if len(frame) != refRows {
			return fmt.Errorf("frame %d: row count %d, want %d", fi, len(frame), refRows)
		}
		for ri, row := range frame {
			if len([]rune(row)) != refCols {
				return fmt.Errorf("frame %d row %d: width %d, want %d", fi, ri, len([]rune(row)), refCols)
			}
		}
	}
	return nil
}
