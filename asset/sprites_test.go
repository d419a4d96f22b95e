package asset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	st, err := Load()
	require.NoError(t, err)

	for _, name := range []string{SpritePlayer, SpriteAlien, SpriteBullet, SpriteEnemyBullet} {
		spr := st.Get(name)
		require.NotNil(t, spr, "missing sprite %q", name)
		assert.Equal(t, name, spr.Name)
		assert.GreaterOrEqual(t, spr.FrameCount(), 1)
	}

	assert.Equal(t, 2, st.Get(SpriteAlien).FrameCount(), "aliens animate between two frames")
}

func TestFrameWraps(t *testing.T) {
	st, err := Load()
	require.NoError(t, err)

	alien := st.Get(SpriteAlien)
	assert.Equal(t, alien.Frame(0), alien.Frame(2))
	assert.Equal(t, alien.Frame(1), alien.Frame(3))
	assert.NotEqual(t, alien.Frame(0), alien.Frame(1))
}

func TestValidateRejectsBadArt(t *testing.T) {
	tests := []struct {
		name string
		spr  *Sprite
	}{
		{"no frames", &Sprite{Name: "x"}},
		{"empty frame", &Sprite{Name: "x", Frames: [][]string{{}}}},
		{"empty row", &Sprite{Name: "x", Frames: [][]string{{""}}}},
		{"ragged rows", &Sprite{Name: "x", Frames: [][]string{{"abc", "ab"}}}},
		{"frame size mismatch", &Sprite{Name: "x", Frames: [][]string{{"ab"}, {"ab", "cd"}}}},
		{"frame width mismatch", &Sprite{Name: "x", Frames: [][]string{{"ab"}, {"abc"}}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Error(t, validate(tt.spr))
		})
	}
}

func TestValidateCountsRunesNotBytes(t *testing.T) {
	// Box-drawing art is multi-byte per rune; width must compare rune counts
	spr := &Sprite{Name: "x", Frames: [][]string{{"╔═╗", "═══"}}}
	assert.NoError(t, validate(spr))
}
