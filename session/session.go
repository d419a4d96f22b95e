// Package session owns everything that lives for exactly one level: the
// four entity groups, the formation movement and descent logic, the enemy
// fire scheduling, and the win/lose evaluation. A session reports outcomes;
// it never performs state transitions itself.
package session

import (
	"math/rand"
	"time"

	"github.com/rs/zerolog"

	"github.com/lixenwraith/term-invaders/asset"
	"github.com/lixenwraith/term-invaders/collide"
	"github.com/lixenwraith/term-invaders/constants"
	"github.com/lixenwraith/term-invaders/engine"
	"github.com/lixenwraith/term-invaders/entity"
	"github.com/lixenwraith/term-invaders/events"
	"github.com/lixenwraith/term-invaders/input"
	"github.com/lixenwraith/term-invaders/render"
)

// Outcome is the per-frame result a session hands to the state machine.
type Outcome int

const (
	OutcomeContinue Outcome = iota
	OutcomeLevelComplete
	OutcomeGameOver
)

func (o Outcome) String() string {
	switch o {
	case OutcomeLevelComplete:
		return "level_complete"
	case OutcomeGameOver:
		return "game_over"
	default:
		return "continue"
	}
}

// Session is the live state of one level. It is rebuilt from scratch for
// every level; no entity survives across sessions.
type Session struct {
	level int

	// initialAlienCount is captured at formation creation and only ever
	// read for speed scaling
	initialAlienCount int

	// dir is the shared formation direction: +1 rightward, -1 leftward
	dir float64

	player    *entity.Slot
	bullets   *entity.Group
	enemyFire *entity.Group
	aliens    *entity.Group

	// lastShot is the elapsed-time reference for the player fire cooldown.
	// The zero value lets the first shot fire immediately.
	lastShot time.Time

	scheduler *engine.FireScheduler
	assets    asset.Store
	clock     engine.TimeProvider
	rng       *rand.Rand
	log       zerolog.Logger
}

// FirePeriod returns the enemy-fire timer period for a 1-based level:
// 600ms at level 1, 100ms less per level, clamped at 300ms.
func FirePeriod(level int) time.Duration {
	period := constants.EnemyFireBasePeriod - time.Duration(level-1)*constants.EnemyFirePeriodStep
	if period < constants.EnemyFireMinPeriod {
		period = constants.EnemyFireMinPeriod
	}
	return period
}

// New builds the session for a 1-based level: player, empty bullet groups,
// the alien formation, and a started fire scheduler pushing into queue.
func New(level int, assets asset.Store, queue *events.Queue, clock engine.TimeProvider, rng *rand.Rand, log zerolog.Logger) *Session {
	s := &Session{
		level:     level,
		dir:       1, // rightward
		player:    entity.NewSlot(),
		bullets:   entity.NewGroup(),
		enemyFire: entity.NewGroup(),
		aliens:    entity.NewGroup(),
		scheduler: engine.NewFireScheduler(queue, FirePeriod(level)),
		assets:    assets,
		clock:     clock,
		rng:       rng,
		log:       log,
	}

	s.player.Add(entity.NewPlayer(assets.Get(asset.SpritePlayer)))
	s.spawnFormation()
	s.initialAlienCount = s.aliens.Count()

	s.scheduler.Start()
	s.log.Info().
		Int("level", level).
		Int("aliens", s.initialAlienCount).
		Dur("fire_period", s.scheduler.Period()).
		Msg("session started")

	return s
}

// spawnFormation lays out 3+(level-1) rows of 10 aliens on the fixed grid.
func (s *Session) spawnFormation() {
	now := s.clock.Now()
	rows := constants.FormationBaseRows + (s.level - 1)
	img := s.assets.Get(asset.SpriteAlien)

	for row := 0; row < rows; row++ {
		for col := 0; col < constants.FormationCols; col++ {
			x := constants.FormationOriginX + float64(col)*constants.FormationSpacingX
			y := constants.FormationOriginY + float64(row)*constants.FormationSpacingY
			s.aliens.Add(entity.NewAlien(img, x, y, now))
		}
	}
}

// Close stops the enemy-fire scheduler. After Close returns no further fire
// events reach the queue, so a torn-down session cannot be mutated.
func (s *Session) Close() {
	s.scheduler.Stop()
	s.log.Info().Int("level", s.level).Msg("session closed")
}

// Level returns the session's 1-based level number.
func (s *Session) Level() int {
	return s.level
}

// AlienCount returns the number of aliens still in the formation.
func (s *Session) AlienCount() int {
	return s.aliens.Count()
}

// EnemyFireCount returns the number of enemy shots in flight.
func (s *Session) EnemyFireCount() int {
	return s.enemyFire.Count()
}

// speedScale is 1.0 with the formation intact and approaches 2.0 as it is
// wiped out. It scales only the per-tick horizontal alien step.
func (s *Session) speedScale() float64 {
	current := s.aliens.Count()
	if current == 0 {
		return 1
	}
	return 1 + float64(s.initialAlienCount-current)/float64(s.initialAlienCount)
}

// SpawnEnemyFire picks one living alien uniformly at random and spawns an
// enemy shot at its lower center. Called by the tick loop when it drains a
// fire event, never from the timer goroutine itself.
func (s *Session) SpawnEnemyFire() {
	aliens := s.aliens.Members()
	if len(aliens) == 0 {
		return
	}

	shooter := aliens[s.rng.Intn(len(aliens))]
	box := shooter.Bounds()
	s.enemyFire.Add(entity.NewEnemyBullet(
		s.assets.Get(asset.SpriteEnemyBullet),
		box.CenterX(),
		box.Bottom(),
	))
}

// Update advances the simulation by one tick and reports the outcome.
// A game over short-circuits the remaining steps for the frame.
func (s *Session) Update(in *input.State) Outcome {
	now := s.clock.Now()

	// Player movement, clamped to the screen
	s.player.Update(&entity.Context{
		Now:      now,
		MoveLeft: in.Held(input.ActionLeft), MoveRight: in.Held(input.ActionRight),
	})

	// Player fire: hold-to-repeat at the cooldown rate
	if in.Held(input.ActionFire) {
		s.tryFire(now)
	}

	// Projectiles move and self-destroy off screen
	s.bullets.Update(&entity.Context{Now: now})
	s.enemyFire.Update(&entity.Context{Now: now})

	// Formation edge scan against current positions, then reversal descent
	if s.formationAtEdge() {
		s.dir = -s.dir
		drop := constants.DescentBase + float64(s.level)*constants.DescentPerLevel
		for _, e := range s.aliens.Members() {
			if a, ok := e.(*entity.Alien); ok && a.Alive() {
				a.Descend(drop)
			}
		}
	}

	// Horizontal step with this tick's speed scale, plus wall-clock animation
	s.aliens.Update(&entity.Context{
		Now:        now,
		Dir:        s.dir,
		SpeedScale: s.speedScale(),
	})

	if outcome := s.resolveCollisions(); outcome != OutcomeContinue {
		return outcome
	}

	if s.aliens.Empty() {
		return OutcomeLevelComplete
	}
	return OutcomeContinue
}

// tryFire spawns a shot at the player's upper center if the cooldown has
// elapsed, and resets the cooldown clock.
func (s *Session) tryFire(now time.Time) {
	p := s.player.Occupant()
	if p == nil || !p.Alive() {
		return
	}
	if now.Sub(s.lastShot) <= constants.FireCooldown {
		return
	}

	box := p.Bounds()
	s.bullets.Add(entity.NewBullet(s.assets.Get(asset.SpriteBullet), box.CenterX(), box.Y))
	s.lastShot = now
}

// formationAtEdge reports whether any living alien has reached the screen
// edge the formation is moving toward.
func (s *Session) formationAtEdge() bool {
	for _, e := range s.aliens.Members() {
		if !e.Alive() {
			continue
		}
		box := e.Bounds()
		if s.dir > 0 && box.Right() >= constants.ScreenWidth {
			return true
		}
		if s.dir < 0 && box.X <= 0 {
			return true
		}
	}
	return false
}

// resolveCollisions runs the fixed collision order:
//  1. player bullets vs aliens, both killed
//  2. player vs enemy bullets, both removed, game over
//  3. player vs aliens by direct overlap, alien survives, game over
//     (an alien has reached the player)
func (s *Session) resolveCollisions() Outcome {
	collide.Groups(s.bullets, s.aliens, true, true)
	s.bullets.Prune()
	s.aliens.Prune()

	p := s.player.Occupant()

	if hits := collide.Sprite(p, s.enemyFire, true); len(hits) > 0 {
		p.Kill()
		s.enemyFire.Prune()
		s.player.Prune()
		s.log.Info().Int("level", s.level).Msg("player hit by enemy fire")
		return OutcomeGameOver
	}

	if hits := collide.Sprite(p, s.aliens, false); len(hits) > 0 {
		p.Kill()
		s.player.Prune()
		s.log.Info().Int("level", s.level).Msg("alien reached the player")
		return OutcomeGameOver
	}

	return OutcomeContinue
}

// Draw renders all four groups.
func (s *Session) Draw(surf render.Surface) {
	s.player.Draw(surf)
	s.bullets.Draw(surf)
	s.enemyFire.Draw(surf)
	s.aliens.Draw(surf)
}
