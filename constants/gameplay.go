package constants

import "time"

// World Dimensions
// All gameplay math runs in a fixed coordinate space; the render surface
// scales world units to terminal cells.
const (
	// ScreenWidth is the world width in units
	ScreenWidth = 800.0

	// ScreenHeight is the world height in units
	ScreenHeight = 600.0
)

// Player Mechanics
const (
	// PlayerWidth is the player box width in world units
	PlayerWidth = 60.0

	// PlayerHeight is the player box height in world units
	PlayerHeight = 20.0

	// PlayerY is the fixed vertical position of the player's top edge
	PlayerY = ScreenHeight - 40.0

	// PlayerSpeed is the horizontal player step per tick while a move key is held
	PlayerSpeed = 5.0

	// FireCooldown is the minimum wall-clock time between player shots.
	// Holding the fire key fires repeatedly at this rate.
	FireCooldown = 500 * time.Millisecond
)

// Projectiles
const (
	// BulletWidth and BulletHeight size both player and enemy shots
	BulletWidth  = 5.0
	BulletHeight = 10.0

	// BulletSpeed is the upward player-shot step per tick
	BulletSpeed = 10.0

	// EnemyBulletSpeed is the downward enemy-shot step per tick
	EnemyBulletSpeed = 5.0
)

// Alien Formation
const (
	// AlienWidth and AlienHeight size one alien box in world units
	AlienWidth  = 30.0
	AlienHeight = 30.0

	// FormationCols is the fixed number of columns in every formation
	FormationCols = 10

	// FormationBaseRows is the row count at level 1; each level adds one row
	FormationBaseRows = 3

	// FormationSpacingX and FormationSpacingY are the grid cell pitch
	FormationSpacingX = 60.0
	FormationSpacingY = 50.0

	// FormationOriginX and FormationOriginY place the top-left alien
	FormationOriginX = 40.0
	FormationOriginY = 60.0

	// AlienBaseStep is the horizontal alien step per tick before speed scaling
	AlienBaseStep = 0.5

	// AlienAnimPeriod is the wall-clock period of the two-frame alien animation,
	// independent of movement ticks
	AlienAnimPeriod = 500 * time.Millisecond
)

// Formation Descent
// On edge reversal every alien drops by DescentBase + level*DescentPerLevel.
// The descent uses these raw constants; the speed multiplier does not apply.
const (
	DescentBase     = 10.0
	DescentPerLevel = 5.0
)

// Enemy Fire Scheduling
const (
	// EnemyFireBasePeriod is the fire timer period at level 1
	EnemyFireBasePeriod = 600 * time.Millisecond

	// EnemyFirePeriodStep is how much the period shrinks per level
	EnemyFirePeriodStep = 100 * time.Millisecond

	// EnemyFireMinPeriod clamps the period at high levels
	EnemyFireMinPeriod = 300 * time.Millisecond
)

// Level Progression
const (
	// FirstLevel is where a fresh run starts
	FirstLevel = 1

	// LastLevel is the final level; clearing it wins the run
	LastLevel = 3
)
