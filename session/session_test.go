package session

import (
	"math/rand"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/term-invaders/asset"
	"github.com/lixenwraith/term-invaders/constants"
	"github.com/lixenwraith/term-invaders/engine"
	"github.com/lixenwraith/term-invaders/entity"
	"github.com/lixenwraith/term-invaders/events"
	"github.com/lixenwraith/term-invaders/input"
)

func newTestSession(t *testing.T, level int) (*Session, *engine.MockTimeProvider) {
	t.Helper()

	assets, err := asset.Load()
	require.NoError(t, err)

	clock := engine.NewMockTimeProvider(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))
	s := New(level, assets, events.NewQueue(), clock, rand.New(rand.NewSource(1)), zerolog.Nop())
	t.Cleanup(s.Close)
	return s, clock
}

func TestFormationSize(t *testing.T) {
	tests := []struct {
		level  int
		aliens int
	}{
		{1, 30},
		{2, 40},
		{3, 50},
	}

	for _, tt := range tests {
		s, _ := newTestSession(t, tt.level)
		assert.Equal(t, tt.aliens, s.AlienCount(), "level %d", tt.level)
		assert.Equal(t, tt.aliens, s.initialAlienCount)
	}
}

func TestFormationLayout(t *testing.T) {
	s, _ := newTestSession(t, 1)

	first := s.aliens.Members()[0].Bounds()
	assert.Equal(t, constants.FormationOriginX, first.X)
	assert.Equal(t, constants.FormationOriginY, first.Y)

	// Second column, same row
	second := s.aliens.Members()[1].Bounds()
	assert.Equal(t, constants.FormationOriginX+constants.FormationSpacingX, second.X)

	// First column, second row
	row2 := s.aliens.Members()[constants.FormationCols].Bounds()
	assert.Equal(t, constants.FormationOriginY+constants.FormationSpacingY, row2.Y)
}

func TestFirePeriod(t *testing.T) {
	tests := []struct {
		level  int
		period time.Duration
	}{
		{1, 600 * time.Millisecond},
		{2, 500 * time.Millisecond},
		{3, 400 * time.Millisecond},
		{4, 300 * time.Millisecond},
		{10, 300 * time.Millisecond}, // clamped
	}

	for _, tt := range tests {
		assert.Equal(t, tt.period, FirePeriod(tt.level), "level %d", tt.level)
	}
}

func TestSpeedScale(t *testing.T) {
	s, _ := newTestSession(t, 1)

	assert.Equal(t, 1.0, s.speedScale(), "full formation moves at base speed")

	// Kill half the formation
	for _, e := range s.aliens.Members()[:15] {
		e.Kill()
	}
	s.aliens.Prune()
	assert.Equal(t, 1.5, s.speedScale())

	// One survivor
	for _, e := range s.aliens.Members()[:14] {
		e.Kill()
	}
	s.aliens.Prune()
	assert.InDelta(t, 1.0+29.0/30.0, s.speedScale(), 1e-9)
}

func TestFormationReversalAndDescent(t *testing.T) {
	s, _ := newTestSession(t, 1)

	// Push one alien to the right edge so the scan trips
	edge := s.aliens.Members()[0]
	edge.Bounds().X = constants.ScreenWidth - constants.AlienWidth

	startY := make([]float64, s.aliens.Count())
	for i, e := range s.aliens.Members() {
		startY[i] = e.Bounds().Y
	}

	in := input.NewState()
	require.Equal(t, OutcomeContinue, s.Update(in))

	assert.Equal(t, -1.0, s.dir, "direction reverses at the edge")
	drop := constants.DescentBase + 1*constants.DescentPerLevel
	for i, e := range s.aliens.Members() {
		assert.Equal(t, startY[i]+drop, e.Bounds().Y, "alien %d descends by the raw amount", i)
	}

	// The same tick still applies the horizontal step, now leftward
	want := constants.ScreenWidth - constants.AlienWidth - constants.AlienBaseStep
	assert.Equal(t, want, edge.Bounds().X)
}

func TestDescentAmountPerLevel(t *testing.T) {
	for _, level := range []int{1, 2, 3} {
		s, _ := newTestSession(t, level)
		edge := s.aliens.Members()[0]
		edge.Bounds().X = constants.ScreenWidth - constants.AlienWidth
		y := s.aliens.Members()[1].Bounds().Y

		s.Update(input.NewState())

		drop := constants.DescentBase + float64(level)*constants.DescentPerLevel
		assert.Equal(t, y+drop, s.aliens.Members()[1].Bounds().Y, "level %d", level)
	}
}

func TestFireCooldown(t *testing.T) {
	s, clock := newTestSession(t, 1)

	in := input.NewState()
	in.Press(input.ActionFire)

	s.Update(in)
	assert.Equal(t, 1, s.bullets.Count(), "first press fires immediately")

	// Held through the cooldown window: no second bullet
	clock.Advance(100 * time.Millisecond)
	s.Update(in)
	assert.Equal(t, 1, s.bullets.Count())

	// Past the cooldown the held key fires again
	clock.Advance(constants.FireCooldown)
	s.Update(in)
	assert.Equal(t, 2, s.bullets.Count())
}

func TestBulletSpawnsAtPlayerUpperCenter(t *testing.T) {
	s, _ := newTestSession(t, 1)

	p := s.player.Occupant()
	in := input.NewState()
	in.Press(input.ActionFire)
	s.Update(in)

	require.Equal(t, 1, s.bullets.Count())
	b := s.bullets.Members()[0].Bounds()
	assert.Equal(t, p.Bounds().CenterX(), b.CenterX())
	// One update already moved the bullet up from the player's top edge
	assert.Equal(t, p.Bounds().Y-constants.BulletHeight-constants.BulletSpeed, b.Y)
}

func TestBulletKillsAlien(t *testing.T) {
	s, _ := newTestSession(t, 1)

	target := s.aliens.Members()[0]
	b := entity.NewBullet(s.assets.Get(asset.SpriteBullet), target.Bounds().CenterX(), target.Bounds().Bottom())
	// Park the bullet so this tick's upward move lands it inside the alien
	b.Bounds().Y = target.Bounds().Y + constants.BulletSpeed
	s.bullets.Add(b)

	require.Equal(t, OutcomeContinue, s.Update(input.NewState()))

	assert.Equal(t, 29, s.AlienCount())
	assert.Equal(t, 0, s.bullets.Count(), "bullet is consumed by the hit")
}

func TestEnemyFireKillsPlayer(t *testing.T) {
	s, _ := newTestSession(t, 1)

	p := s.player.Occupant()
	shot := entity.NewEnemyBullet(s.assets.Get(asset.SpriteEnemyBullet), p.Bounds().CenterX(), p.Bounds().Y)
	s.enemyFire.Add(shot)

	assert.Equal(t, OutcomeGameOver, s.Update(input.NewState()))
	assert.Nil(t, s.player.Occupant())
	assert.Equal(t, 0, s.enemyFire.Count(), "the hit removes the bullet too")
}

func TestAlienReachingPlayerEndsGame(t *testing.T) {
	s, _ := newTestSession(t, 1)

	p := s.player.Occupant()
	invader := s.aliens.Members()[0]
	invader.Bounds().X = p.Bounds().X
	invader.Bounds().Y = p.Bounds().Y

	assert.Equal(t, OutcomeGameOver, s.Update(input.NewState()))
	assert.Nil(t, s.player.Occupant())
	assert.True(t, invader.Alive(), "the alien survives the contact")
}

func TestClearingFormationCompletesLevel(t *testing.T) {
	s, _ := newTestSession(t, 1)

	for _, e := range s.aliens.Members() {
		e.Kill()
	}
	s.aliens.Prune()

	assert.Equal(t, OutcomeLevelComplete, s.Update(input.NewState()))
}

func TestSpawnEnemyFire(t *testing.T) {
	s, _ := newTestSession(t, 1)

	s.SpawnEnemyFire()
	require.Equal(t, 1, s.enemyFire.Count())

	// Shot starts at some alien's lower center
	shot := s.enemyFire.Members()[0].Bounds()
	found := false
	for _, e := range s.aliens.Members() {
		if e.Bounds().CenterX() == shot.CenterX() && e.Bounds().Bottom() == shot.Y {
			found = true
			break
		}
	}
	assert.True(t, found, "shot origin matches a formation member")
}

func TestSpawnEnemyFireWithEmptyFormation(t *testing.T) {
	s, _ := newTestSession(t, 1)

	for _, e := range s.aliens.Members() {
		e.Kill()
	}
	s.aliens.Prune()

	s.SpawnEnemyFire()
	assert.Equal(t, 0, s.enemyFire.Count())
}

func TestCloseIsIdempotent(t *testing.T) {
	assets, err := asset.Load()
	require.NoError(t, err)

	clock := engine.NewMockTimeProvider(time.Now())
	s := New(1, assets, events.NewQueue(), clock, rand.New(rand.NewSource(1)), zerolog.Nop())

	s.Close()
	s.Close()
}
