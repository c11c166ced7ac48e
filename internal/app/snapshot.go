// internal/app/snapshot.go
package app

import (
	"image/color"

	"go-galactic-traveler/internal/component"
	"go-galactic-traveler/internal/types"
)

// Entity kinds exposed in snapshots.
type EntityKind int

const (
	KindEnemy EntityKind = iota
	KindProjectile
	KindPowerUp
)

// EntitySnapshot is the read-only view of one live entity, handed to the
// rendering and collision collaborators each tick.
type EntitySnapshot struct {
	ID           types.EntityID
	Kind         EntityKind
	X, Y         float64
	VX, VY       float64
	Health       int
	State        component.BehaviorState // enemies only
	Slot         int                     // formation slot; -1 when not formation-bound
	Friendly     bool                    // projectiles only
	PowerUpKind  string                  // power-ups only
	HalfW, HalfH float64
	Color        color.RGBA
	Radius       float32
	HasStroke    bool
}

// Snapshot is the output of one Advance call.
type Snapshot struct {
	Entities    []EntitySnapshot // ordered by ID
	WaveNumber  int
	Score       int
	Multiplier  float64
	WaveCleared bool // true exactly on the tick that cleared the wave
}

// PlayerState is the shell-owned player data the core consumes each tick.
// The core references the player for targeting; it never mutates it.
type PlayerState struct {
	X, Y          float64
	Lives         int
	FireRequested bool // the shell's fire cooldown already elapsed
	SpreadActive  bool
	Invulnerable  bool // shield or post-hit grace; contact damage is ignored
}

// CollisionKind classifies a pair reported by the collision resolver.
type CollisionKind int

const (
	CollisionBulletEnemy CollisionKind = iota // A: friendly bullet, B: enemy
	CollisionBulletPlayer                     // A: hostile bullet, B: player
	CollisionPlayerEnemy                      // A: enemy, B: player
	CollisionPlayerPowerUp                    // A: power-up, B: player
)

// CollisionEvent is one colliding pair, produced outside the core from the
// previous tick's snapshot. The player side uses types.PlayerID.
type CollisionEvent struct {
	A, B types.EntityID
	Kind CollisionKind
}
