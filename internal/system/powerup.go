// internal/system/powerup.go
package system

import (
	"math"
	"sort"

	"go-galactic-traveler/internal/component"
	"go-galactic-traveler/internal/config"
	"go-galactic-traveler/internal/defs"
	"go-galactic-traveler/internal/entity"
	"go-galactic-traveler/internal/event"
	"go-galactic-traveler/internal/types"
	"go-galactic-traveler/internal/utils"
)

// PowerUpSystem drifts dropped power-ups down the screen and rolls new drops
// when enemies are destroyed with score.
type PowerUpSystem struct {
	ecs *entity.ECS
	rng *utils.PRNGService
}

func NewPowerUpSystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher, rng *utils.PRNGService) *PowerUpSystem {
	ps := &PowerUpSystem{ecs: ecs, rng: rng}
	eventDispatcher.Subscribe(event.EnemyDestroyed, ps)
	return ps
}

func (s *PowerUpSystem) Update(deltaTime float64) {
	var expired []types.EntityID
	for id, pu := range s.ecs.PowerUps {
		pu.Elapsed += deltaTime
		pos := s.ecs.Positions[id]
		pos.Y += config.PowerUpFallSpeed * deltaTime
		pos.X += math.Sin(pu.Elapsed*4.0) * 18.0 * deltaTime

		if pos.Y > config.ScreenHeight+config.OffscreenMargin/2 {
			expired = append(expired, id)
		}
	}
	sort.Slice(expired, func(i, j int) bool { return expired[i] < expired[j] })
	for _, id := range expired {
		s.ecs.Remove(id)
	}
}

// OnEvent rolls a drop at the position of a scored kill. Forced destroys
// never drop.
func (s *PowerUpSystem) OnEvent(e event.Event) {
	if e.Type != event.EnemyDestroyed {
		return
	}
	data, ok := e.Data.(event.EnemyEvent)
	if !ok || !data.Scored {
		return
	}
	if s.rng.Float64() > config.PowerUpDropChance {
		return
	}
	kind := s.rng.ChooseWeighted(defs.PowerUpDropTable)
	if kind == "" {
		return
	}
	s.spawn(data.X, data.Y, kind)
}

func (s *PowerUpSystem) spawn(x, y float64, kind string) {
	id := s.ecs.NewEntity()
	s.ecs.Positions[id] = &component.Position{X: x, Y: y}
	s.ecs.Velocities[id] = &component.Velocity{Y: config.PowerUpFallSpeed}
	s.ecs.Hitboxes[id] = &component.Hitbox{HalfW: config.PowerUpRadius, HalfH: config.PowerUpRadius}
	s.ecs.Renderables[id] = &component.Renderable{Color: config.PowerUpColor, Radius: config.PowerUpRadius}
	s.ecs.PowerUps[id] = &component.PowerUp{Kind: kind}
}
