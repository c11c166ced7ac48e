// internal/system/projectile.go
package system

import (
	"sort"

	"go-galactic-traveler/internal/config"
	"go-galactic-traveler/internal/entity"
	"go-galactic-traveler/internal/types"
)

// ProjectileSystem integrates bullet motion and culls bullets that leave the
// playfield.
type ProjectileSystem struct {
	ecs *entity.ECS
}

func NewProjectileSystem(ecs *entity.ECS) *ProjectileSystem {
	return &ProjectileSystem{ecs: ecs}
}

func (s *ProjectileSystem) Update(deltaTime float64) {
	var expired []types.EntityID
	for id := range s.ecs.Projectiles {
		pos := s.ecs.Positions[id]
		vel := s.ecs.Velocities[id]
		pos.X += vel.X * deltaTime
		pos.Y += vel.Y * deltaTime

		if pos.Y < config.SpawnHeight-config.OffscreenMargin ||
			pos.Y > config.ScreenHeight+config.OffscreenMargin ||
			pos.X < -config.OffscreenMargin ||
			pos.X > config.ScreenWidth+config.OffscreenMargin {
			expired = append(expired, id)
		}
	}
	sort.Slice(expired, func(i, j int) bool { return expired[i] < expired[j] })
	for _, id := range expired {
		s.ecs.Remove(id)
	}
}
