// internal/entity/ecs.go
package entity

import (
	"go-galactic-traveler/internal/component"
	"go-galactic-traveler/internal/types"
)

// ECS stores all live entity components, keyed by entity ID. An entity's
// kind is implied by which maps hold it: enemies appear in Enemies,
// projectiles in Projectiles, power-ups in PowerUps. The simulation core is
// the only writer; collaborators see read-only snapshots.
type ECS struct {
	GameTime    float64
	NextID      types.EntityID
	Positions   map[types.EntityID]*component.Position
	Velocities  map[types.EntityID]*component.Velocity
	Healths     map[types.EntityID]*component.Health
	Hitboxes    map[types.EntityID]*component.Hitbox
	Renderables map[types.EntityID]*component.Renderable
	Enemies     map[types.EntityID]*component.Enemy
	Projectiles map[types.EntityID]*component.Projectile
	PowerUps    map[types.EntityID]*component.PowerUp
	Wave        *component.Wave
}

func NewECS() *ECS {
	return &ECS{
		NextID:      1,
		Positions:   make(map[types.EntityID]*component.Position),
		Velocities:  make(map[types.EntityID]*component.Velocity),
		Healths:     make(map[types.EntityID]*component.Health),
		Hitboxes:    make(map[types.EntityID]*component.Hitbox),
		Renderables: make(map[types.EntityID]*component.Renderable),
		Enemies:     make(map[types.EntityID]*component.Enemy),
		Projectiles: make(map[types.EntityID]*component.Projectile),
		PowerUps:    make(map[types.EntityID]*component.PowerUp),
		Wave:        nil,
	}
}

// NewEntity reserves a fresh entity ID. IDs are monotonic and never reused,
// so collision events that arrive after an entity died stay recognizable as
// stale.
func (ecs *ECS) NewEntity() types.EntityID {
	id := ecs.NextID
	ecs.NextID++
	return id
}

// Remove deletes every component of an entity. Removing an unknown ID is a
// no-op.
func (ecs *ECS) Remove(id types.EntityID) {
	delete(ecs.Positions, id)
	delete(ecs.Velocities, id)
	delete(ecs.Healths, id)
	delete(ecs.Hitboxes, id)
	delete(ecs.Renderables, id)
	delete(ecs.Enemies, id)
	delete(ecs.Projectiles, id)
	delete(ecs.PowerUps, id)
}
