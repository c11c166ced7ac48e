// internal/system/behavior.go
package system

import (
	"sort"

	"go-galactic-traveler/internal/component"
	"go-galactic-traveler/internal/config"
	"go-galactic-traveler/internal/defs"
	"go-galactic-traveler/internal/entity"
	"go-galactic-traveler/internal/event"
	"go-galactic-traveler/internal/types"
	"go-galactic-traveler/internal/utils"
	"go-galactic-traveler/pkg/formation"
)

// BehaviorSystem drives the per-enemy state machine: entering the formation,
// holding the slot, breaking away to attack, retreating back, firing. It
// never resurrects a destroyed enemy.
type BehaviorSystem struct {
	ecs             *entity.ECS
	eventDispatcher *event.Dispatcher
	rng             *utils.PRNGService
	maxAttackers    int
}

func NewBehaviorSystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher, rng *utils.PRNGService, maxAttackers int) *BehaviorSystem {
	return &BehaviorSystem{
		ecs:             ecs,
		eventDispatcher: eventDispatcher,
		rng:             rng,
		maxAttackers:    maxAttackers,
	}
}

// Update ticks every live enemy. playerX is the player's last known
// x-position, used as the dive target of new attack runs.
func (s *BehaviorSystem) Update(deltaTime float64, wave *component.Wave, playerX float64) {
	if wave == nil {
		return
	}

	// Map iteration order is randomized; enemies are ticked in ID order so
	// that runs with the same seed and inputs stay bit-identical.
	ids := make([]types.EntityID, 0, len(s.ecs.Enemies))
	for id := range s.ecs.Enemies {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	attackers := 0
	for _, id := range ids {
		if s.ecs.Enemies[id].State == component.StateAttacking {
			attackers++
		}
	}

	for _, id := range ids {
		enemy, ok := s.ecs.Enemies[id]
		if !ok || enemy.State == component.StateDestroyed {
			continue
		}
		pos := s.ecs.Positions[id]
		def := defs.EnemyLibrary[enemy.DefID]

		targetX, targetY := formation.TargetPosition(wave.Pattern, wave.OriginX, wave.OriginY, enemy.FormationSlot, wave.EnemyCount, wave.Elapsed)

		// A slot that drifted out of the playfield can never be reached;
		// destroy the enemy instead of leaving it stuck off-screen. No
		// points are awarded.
		if enemy.FormationBound() && slotUnreachable(targetX, targetY) {
			s.forceDestroy(id, enemy, pos)
			continue
		}

		speedScale := wave.SpeedScale * def.SpeedFactor

		switch enemy.State {
		case component.StateEntering:
			if s.moveToward(id, pos, targetX, targetY, config.EnemyEnterSpeed*speedScale, deltaTime) {
				enemy.State = component.StateFormation
			}

		case component.StateFormation:
			// Holding enemies track their drifting slot at the slower base
			// speed; the enter speed is reserved for crossing the field.
			s.moveToward(id, pos, targetX, targetY, config.EnemyBaseSpeed*speedScale, deltaTime)
			s.tickFire(deltaTime, wave, enemy, pos, def)

			if attackers < s.maxAttackers && s.wantsToAttack(deltaTime, wave) {
				enemy.State = component.StateAttacking
				enemy.AttackElapsed = 0
				enemy.AttackTargetX = playerX
				attackers++
			}

		case component.StateAttacking:
			enemy.AttackElapsed += deltaTime
			s.dive(id, pos, enemy, speedScale, deltaTime)
			s.tickFire(deltaTime, wave, enemy, pos, def)

			if pos.Y >= config.AttackBoundsY || enemy.AttackElapsed >= config.AttackTimeLimit {
				enemy.State = component.StateRetreating
				attackers--
			}

		case component.StateRetreating:
			if s.moveToward(id, pos, targetX, targetY, config.EnemyEnterSpeed*speedScale, deltaTime) {
				enemy.State = component.StateFormation
			}
		}
	}
}

// wantsToAttack rolls the per-tick attack trigger. The roll probability
// scales with the wave's difficulty; when only a handful of enemies remain
// the wave turns aggressive and attacks unconditionally.
func (s *BehaviorSystem) wantsToAttack(deltaTime float64, wave *component.Wave) bool {
	if len(s.ecs.Enemies) < config.AggressionThreshold {
		return true
	}
	return s.rng.Float64() < wave.AttackChance*deltaTime
}

// moveToward advances the position toward a target at the given speed and
// reports arrival within the formation epsilon. Arrival snaps to the target
// so a holding enemy tracks its drifting slot exactly.
func (s *BehaviorSystem) moveToward(id types.EntityID, pos *component.Position, targetX, targetY, speed, deltaTime float64) bool {
	dx := targetX - pos.X
	dy := targetY - pos.Y
	dist := utils.Dist(pos.X, pos.Y, targetX, targetY)

	step := speed * deltaTime
	if dist <= step || dist <= config.FormationEpsilon {
		pos.X = targetX
		pos.Y = targetY
		s.setVelocity(id, 0, 0)
		return true
	}

	vx := dx / dist * speed
	vy := dy / dist * speed
	pos.X += vx * deltaTime
	pos.Y += vy * deltaTime
	s.setVelocity(id, vx, vy)
	return false
}

// dive runs the attack trajectory: straight down with a horizontal
// correction toward the x-position the player held when the run started.
func (s *BehaviorSystem) dive(id types.EntityID, pos *component.Position, enemy *component.Enemy, speedScale, deltaTime float64) {
	vy := config.EnemyDiveSpeed * speedScale
	vx := 0.0
	if enemy.AttackTargetX > pos.X+config.FormationEpsilon {
		vx = config.EnemyDiveSteer
	} else if enemy.AttackTargetX < pos.X-config.FormationEpsilon {
		vx = -config.EnemyDiveSteer
	}
	pos.X += vx * deltaTime
	pos.Y += vy * deltaTime
	s.setVelocity(id, vx, vy)
}

// tickFire runs the cooldown-based fire roll. Only enemies holding formation
// or attacking may fire; entering and retreating enemies hold fire.
func (s *BehaviorSystem) tickFire(deltaTime float64, wave *component.Wave, enemy *component.Enemy, pos *component.Position, def defs.EnemyDefinition) {
	enemy.FireCooldown -= deltaTime
	if enemy.FireCooldown > 0 {
		return
	}
	rate := config.BaseFireRate * wave.FireRateScale * def.FireRateFactor
	if rate <= 0 {
		return
	}
	enemy.FireCooldown = s.rng.FloatRange(1.0, 2.2) / rate
	s.spawnEnemyBullet(pos)
}

func (s *BehaviorSystem) spawnEnemyBullet(pos *component.Position) {
	id := s.ecs.NewEntity()
	s.ecs.Positions[id] = &component.Position{X: pos.X, Y: pos.Y + config.EnemyRadius}
	s.ecs.Velocities[id] = &component.Velocity{
		X: s.rng.FloatRange(-config.EnemyBulletSpread, config.EnemyBulletSpread),
		Y: config.EnemyBulletSpeed,
	}
	s.ecs.Hitboxes[id] = &component.Hitbox{HalfW: config.BulletRadius, HalfH: config.BulletRadius}
	s.ecs.Renderables[id] = &component.Renderable{Color: config.EnemyBulletColor, Radius: config.BulletRadius}
	s.ecs.Projectiles[id] = &component.Projectile{Damage: 1, Friendly: false}
}

// forceDestroy removes a stuck enemy without score.
func (s *BehaviorSystem) forceDestroy(id types.EntityID, enemy *component.Enemy, pos *component.Position) {
	enemy.State = component.StateDestroyed
	s.eventDispatcher.Dispatch(event.Event{Type: event.EnemyDestroyed, Data: event.EnemyEvent{
		ID: id, X: pos.X, Y: pos.Y, Points: enemy.Points, Scored: false,
	}})
	s.ecs.Remove(id)
}

func (s *BehaviorSystem) setVelocity(id types.EntityID, vx, vy float64) {
	if vel, ok := s.ecs.Velocities[id]; ok {
		vel.X = vx
		vel.Y = vy
	}
}

func slotUnreachable(x, y float64) bool {
	return x < -config.OffscreenMargin || x > config.ScreenWidth+config.OffscreenMargin ||
		y < config.SpawnHeight-config.OffscreenMargin || y > config.ScreenHeight+config.OffscreenMargin
}
