// Package entity defines the movable objects of the simulation: the player,
// both bullet kinds, and the aliens. All four share a box-and-alive record
// with one per-kind update function; there is no deeper hierarchy.
package entity

import (
	"time"

	"github.com/lixenwraith/term-invaders/asset"
	"github.com/lixenwraith/term-invaders/constants"
	"github.com/lixenwraith/term-invaders/core"
	"github.com/lixenwraith/term-invaders/render"
)

// Kind tags the entity variant.
type Kind int

const (
	KindPlayer Kind = iota
	KindBullet
	KindEnemyBullet
	KindAlien
)

// Context is the shared per-tick update context a group hands to each of
// its members. Aliens read the formation fields, the player reads the
// movement flags, bullets need only the screen bounds baked into constants.
type Context struct {
	// Now is the wall-clock time of this tick (animation only)
	Now time.Time

	// Dir is the formation direction: +1 rightward, -1 leftward
	Dir float64

	// SpeedScale multiplies the alien base step for this tick only
	SpeedScale float64

	// MoveLeft and MoveRight mirror the held movement keys
	MoveLeft, MoveRight bool
}

// Entity is one movable, drawable object.
// A dead entity stays in its group until end-of-pass pruning so collision
// checks within a pass see a consistent snapshot; it is never drawn or
// collided against after the pass completes.
type Entity interface {
	Kind() Kind
	Bounds() *core.Box
	Alive() bool
	Kill()
	Update(ctx *Context)
	Draw(s render.Surface)
}

// sprite is the shared box/alive record embedded by every kind.
type sprite struct {
	box   core.Box
	alive bool
	img   *asset.Sprite
}

func (s *sprite) Bounds() *core.Box { return &s.box }
func (s *sprite) Alive() bool       { return s.alive }
func (s *sprite) Kill()             { s.alive = false }

func (s *sprite) Draw(surf render.Surface) {
	surf.DrawImage(s.img, 0, s.box)
}

// Player is the controllable ship, clamped to the horizontal screen bounds.
type Player struct {
	sprite
}

// NewPlayer creates the player centered at the bottom of the screen.
func NewPlayer(img *asset.Sprite) *Player {
	return &Player{sprite: sprite{
		box: core.NewBox(
			(constants.ScreenWidth-constants.PlayerWidth)/2,
			constants.PlayerY,
			constants.PlayerWidth,
			constants.PlayerHeight,
		),
		alive: true,
		img:   img,
	}}
}

func (p *Player) Kind() Kind { return KindPlayer }

// Update moves the player while a movement key is held, keeping the whole
// box inside [0, ScreenWidth].
func (p *Player) Update(ctx *Context) {
	dx := 0.0
	if ctx.MoveLeft {
		dx -= constants.PlayerSpeed
	}
	if ctx.MoveRight {
		dx += constants.PlayerSpeed
	}
	p.box.X = core.Clamp(p.box.X+dx, 0, constants.ScreenWidth-p.box.W)
}

// Bullet is a player shot moving straight up.
type Bullet struct {
	sprite
}

// NewBullet spawns a player shot with its horizontal center at x and its
// bottom edge at y.
func NewBullet(img *asset.Sprite, x, y float64) *Bullet {
	return &Bullet{sprite: sprite{
		box:   core.NewBox(x-constants.BulletWidth/2, y-constants.BulletHeight, constants.BulletWidth, constants.BulletHeight),
		alive: true,
		img:   img,
	}}
}

func (b *Bullet) Kind() Kind { return KindBullet }

// Update moves the shot up and self-destroys it once fully above the screen.
func (b *Bullet) Update(ctx *Context) {
	b.box.Y -= constants.BulletSpeed
	if b.box.Bottom() < 0 {
		b.Kill()
	}
}

// EnemyBullet is an alien shot moving straight down.
type EnemyBullet struct {
	sprite
}

// NewEnemyBullet spawns an enemy shot with its horizontal center at x and
// its top edge at y.
func NewEnemyBullet(img *asset.Sprite, x, y float64) *EnemyBullet {
	return &EnemyBullet{sprite: sprite{
		box:   core.NewBox(x-constants.BulletWidth/2, y, constants.BulletWidth, constants.BulletHeight),
		alive: true,
		img:   img,
	}}
}

func (b *EnemyBullet) Kind() Kind { return KindEnemyBullet }

// Update moves the shot down and self-destroys it below the screen.
func (b *EnemyBullet) Update(ctx *Context) {
	b.box.Y += constants.EnemyBulletSpeed
	if b.box.Y > constants.ScreenHeight {
		b.Kill()
	}
}

// Alien is one formation member. Horizontal velocity and direction are
// shared through the update context; the two-frame animation runs on the
// wall clock, decoupled from movement ticks.
type Alien struct {
	sprite
	frame    int
	lastFlip time.Time
}

// NewAlien creates an alien at the given formation position.
func NewAlien(img *asset.Sprite, x, y float64, now time.Time) *Alien {
	return &Alien{
		sprite: sprite{
			box:   core.NewBox(x, y, constants.AlienWidth, constants.AlienHeight),
			alive: true,
			img:   img,
		},
		lastFlip: now,
	}
}

func (a *Alien) Kind() Kind { return KindAlien }

// Update applies the shared horizontal step, speed-scaled for this tick,
// and toggles the animation frame every AlienAnimPeriod of wall time.
func (a *Alien) Update(ctx *Context) {
	a.box.X += ctx.Dir * constants.AlienBaseStep * ctx.SpeedScale

	if ctx.Now.Sub(a.lastFlip) >= constants.AlienAnimPeriod {
		a.frame = (a.frame + 1) % a.img.FrameCount()
		a.lastFlip = ctx.Now
	}
}

// Descend drops the alien by dy. Reversal descent uses the raw constant,
// so it bypasses the speed-scaled Update path.
func (a *Alien) Descend(dy float64) {
	a.box.Y += dy
}

func (a *Alien) Draw(surf render.Surface) {
	surf.DrawImage(a.img, a.frame, a.box)
}
