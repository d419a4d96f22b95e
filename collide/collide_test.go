package collide

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/term-invaders/asset"
	"github.com/lixenwraith/term-invaders/entity"
)

func testAssets(t *testing.T) asset.Store {
	t.Helper()
	assets, err := asset.Load()
	require.NoError(t, err)
	return assets
}

// alienAt places an alien with its box top-left at (x, y).
func alienAt(assets asset.Store, x, y float64) *entity.Alien {
	return entity.NewAlien(assets.Get(asset.SpriteAlien), x, y, time.Time{})
}

// bulletAt places a player shot with its box top-left at (x, y).
func bulletAt(assets asset.Store, x, y float64) *entity.Bullet {
	b := entity.NewBullet(assets.Get(asset.SpriteBullet), 0, 0)
	b.Bounds().X = x
	b.Bounds().Y = y
	return b
}

func TestGroupsKillsPerFlags(t *testing.T) {
	assets := testAssets(t)

	bullets := entity.NewGroup()
	aliens := entity.NewGroup()

	b := bulletAt(assets, 10, 10)
	a := alienAt(assets, 0, 0) // 30x30 box covers the bullet
	bullets.Add(b)
	aliens.Add(a)

	pairs := Groups(bullets, aliens, true, true)

	require.Len(t, pairs, 1)
	assert.Same(t, b, pairs[0].A)
	assert.Same(t, a, pairs[0].B)
	assert.False(t, b.Alive())
	assert.False(t, a.Alive())

	// Removal is deferred: both stay group members until pruning
	assert.Equal(t, 1, bullets.Count())
	assert.Equal(t, 1, aliens.Count())
	bullets.Prune()
	aliens.Prune()
	assert.Equal(t, 0, bullets.Count())
	assert.Equal(t, 0, aliens.Count())
}

func TestGroupsKilledEntityExcludedFromFurtherMatches(t *testing.T) {
	assets := testAssets(t)

	bullets := entity.NewGroup()
	aliens := entity.NewGroup()

	// One bullet overlapping two stacked aliens: once it dies on the first
	// match it must not match the second
	bullets.Add(bulletAt(assets, 10, 10))
	aliens.Add(alienAt(assets, 0, 0))
	aliens.Add(alienAt(assets, 0, 5))

	pairs := Groups(bullets, aliens, true, true)

	require.Len(t, pairs, 1)

	dead := 0
	for _, e := range aliens.Members() {
		if !e.Alive() {
			dead++
		}
	}
	assert.Equal(t, 1, dead, "exactly one alien should die")
}

func TestGroupsNeverDoubleKills(t *testing.T) {
	assets := testAssets(t)

	bullets := entity.NewGroup()
	aliens := entity.NewGroup()

	// Two bullets over the same alien with killA unset: the alien dies on
	// the first pair and is excluded from the second bullet's scan
	bullets.Add(bulletAt(assets, 5, 5))
	bullets.Add(bulletAt(assets, 15, 5))
	a := alienAt(assets, 0, 0)
	aliens.Add(a)

	pairs := Groups(bullets, aliens, false, true)

	require.Len(t, pairs, 1)
	assert.False(t, a.Alive())
	for _, e := range bullets.Members() {
		assert.True(t, e.Alive())
	}
}

func TestSpriteDeadProbeShortCircuits(t *testing.T) {
	assets := testAssets(t)

	aliens := entity.NewGroup()
	aliens.Add(alienAt(assets, 0, 0))

	probe := bulletAt(assets, 5, 5)
	probe.Kill()

	assert.Nil(t, Sprite(probe, aliens, true))
	assert.True(t, aliens.Members()[0].Alive())
}

func TestSpriteKillFlag(t *testing.T) {
	assets := testAssets(t)

	aliens := entity.NewGroup()
	a := alienAt(assets, 0, 0)
	aliens.Add(a)

	probe := bulletAt(assets, 5, 5)

	// kill=false leaves group members alive
	hits := Sprite(probe, aliens, false)
	require.Len(t, hits, 1)
	assert.True(t, a.Alive())

	// kill=true marks them dead but the probe survives
	hits = Sprite(probe, aliens, true)
	require.Len(t, hits, 1)
	assert.False(t, a.Alive())
	assert.True(t, probe.Alive())
}

func TestSpriteNilProbe(t *testing.T) {
	assets := testAssets(t)

	aliens := entity.NewGroup()
	aliens.Add(alienAt(assets, 0, 0))

	assert.Nil(t, Sprite(nil, aliens, true))
}
