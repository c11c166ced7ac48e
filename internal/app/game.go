// internal/app/game.go
package app

import (
	"sort"

	"go-galactic-traveler/internal/component"
	"go-galactic-traveler/internal/config"
	"go-galactic-traveler/internal/defs"
	"go-galactic-traveler/internal/entity"
	"go-galactic-traveler/internal/event"
	"go-galactic-traveler/internal/system"
	"go-galactic-traveler/internal/types"
	"go-galactic-traveler/internal/utils"
)

// Game is the simulation core: it owns the live entity set, the wave
// lifecycle, and the score. The shell drives it through Advance, once per
// frame, and communicates back only through PlayerState and collision
// events. Nothing here touches rendering or input.
type Game struct {
	ECS              *entity.ECS
	WaveSystem       *system.WaveSystem
	BehaviorSystem   *system.BehaviorSystem
	ProjectileSystem *system.ProjectileSystem
	PowerUpSystem    *system.PowerUpSystem
	EventDispatcher  *event.Dispatcher
	Rng              *utils.PRNGService

	cfg             Config
	waveNumber      int
	score           int
	multiplier      float64
	multiplierTimer float64
	betweenTimer    float64
	gameTime        float64
}

// NewGame initializes the core and starts wave 1.
func NewGame(cfg Config) *Game {
	cfg = cfg.sanitize()

	ecs := entity.NewECS()
	eventDispatcher := event.NewDispatcher()
	rng := utils.NewPRNGService(cfg.Seed)
	ramp := defs.Ramp{
		BaseEnemyCount:    cfg.BaseEnemyCount,
		BaseSpawnInterval: cfg.BaseSpawnInterval,
		RampRate:          cfg.DifficultyRampRate,
	}

	g := &Game{
		ECS:              ecs,
		EventDispatcher:  eventDispatcher,
		Rng:              rng,
		cfg:              cfg,
		waveNumber:       1,
		multiplier:       1.0,
		WaveSystem:       system.NewWaveSystem(ecs, eventDispatcher, rng, ramp, cfg.PatternSequence),
		BehaviorSystem:   system.NewBehaviorSystem(ecs, eventDispatcher, rng, cfg.MaxConcurrentAttackers),
		ProjectileSystem: system.NewProjectileSystem(ecs),
		PowerUpSystem:    system.NewPowerUpSystem(ecs, eventDispatcher, rng),
	}
	g.ECS.Wave = g.WaveSystem.StartWave(g.waveNumber)
	return g
}

// Advance runs one simulation tick. Within a tick the order is fixed and
// load-bearing: spawning first, then the behavior tick, then collision
// application, then the wave-clear check. A freshly spawned enemy can never
// be destroyed by the same tick's collision events because those events were
// resolved against the previous snapshot.
func (g *Game) Advance(deltaTime float64, player PlayerState, collisions []CollisionEvent) Snapshot {
	if deltaTime < 0 {
		deltaTime = 0
	}
	g.gameTime += deltaTime
	g.ECS.GameTime = g.gameTime

	if g.multiplierTimer > 0 {
		g.multiplierTimer -= deltaTime
		if g.multiplierTimer <= 0 {
			g.multiplier = 1.0
		}
	}

	wave := g.ECS.Wave
	if wave.Cleared {
		g.betweenTimer -= deltaTime
		if g.betweenTimer <= 0 {
			wave = g.WaveSystem.StartWave(g.waveNumber)
			g.ECS.Wave = wave
		}
	}

	g.WaveSystem.Update(deltaTime, wave)

	if player.FireRequested {
		g.spawnPlayerBullets(player)
	}

	g.BehaviorSystem.Update(deltaTime, wave, player.X)
	g.ProjectileSystem.Update(deltaTime)
	g.PowerUpSystem.Update(deltaTime)

	g.applyCollisions(collisions, player)

	cleared := g.WaveSystem.CheckCleared(wave)
	if cleared {
		g.waveNumber++
		g.betweenTimer = config.WaveTimeBetween
	}

	return g.buildSnapshot(cleared)
}

// Score returns the accumulated score.
func (g *Game) Score() int {
	return g.score
}

// WaveNumber returns the current wave counter. It advances the moment a
// wave is cleared, before the next wave's first spawn.
func (g *Game) WaveNumber() int {
	return g.waveNumber
}

// applyCollisions folds the resolver's output back into the simulation.
// Events referencing entities that already died this tick are stale and are
// ignored, so a duplicated destroy report can never double-count score.
// Contact with an invulnerable player is also ignored: a surviving ram
// enemy overlaps the player for many consecutive frames, and only the first
// one counts.
func (g *Game) applyCollisions(collisions []CollisionEvent, player PlayerState) {
	for _, ev := range collisions {
		switch ev.Kind {
		case CollisionBulletEnemy:
			proj, ok := g.ECS.Projectiles[ev.A]
			if !ok || !proj.Friendly {
				continue
			}
			health, ok := g.ECS.Healths[ev.B]
			if !ok {
				continue
			}
			if _, isEnemy := g.ECS.Enemies[ev.B]; !isEnemy {
				continue
			}
			g.ECS.Remove(ev.A)
			health.Value -= proj.Damage
			if health.Value <= 0 {
				health.Value = 0
				g.killEnemy(ev.B, true)
			}

		case CollisionBulletPlayer:
			proj, ok := g.ECS.Projectiles[ev.A]
			if !ok || proj.Friendly {
				continue
			}
			g.ECS.Remove(ev.A)
			g.EventDispatcher.Dispatch(event.Event{Type: event.PlayerHit})

		case CollisionPlayerEnemy:
			enemy, ok := g.ECS.Enemies[ev.A]
			if !ok || player.Invulnerable {
				continue
			}
			g.EventDispatcher.Dispatch(event.Event{Type: event.PlayerHit})
			g.score += int(float64(config.ScoreRamBonus) * g.multiplier)
			// The enemy survives contact by default; only definitions that
			// opt out self-destruct on impact.
			if def, found := defs.EnemyLibrary[enemy.DefID]; found && !def.SurvivesRam {
				g.killEnemy(ev.A, true)
			}

		case CollisionPlayerPowerUp:
			pu, ok := g.ECS.PowerUps[ev.A]
			if !ok {
				continue
			}
			kind := pu.Kind
			g.ECS.Remove(ev.A)
			if kind == component.PowerUpMultiplier {
				g.multiplier *= 2.0
				if g.multiplier > config.MaxMultiplier {
					g.multiplier = config.MaxMultiplier
				}
				g.multiplierTimer = config.PowerUpDuration
			}
			g.EventDispatcher.Dispatch(event.Event{Type: event.PowerUpCollected, Data: kind})
		}
	}
}

// killEnemy scores and removes one enemy. Removal happens immediately so any
// later event this tick that references the enemy becomes a stale no-op.
func (g *Game) killEnemy(id types.EntityID, scored bool) {
	enemy, ok := g.ECS.Enemies[id]
	if !ok || enemy.State == component.StateDestroyed {
		return
	}
	pos := g.ECS.Positions[id]
	if scored {
		waveBonus := 1.0 + config.ScoreWaveBonus*float64(g.ECS.Wave.Number-1)
		g.score += int(float64(enemy.Points) * waveBonus * g.multiplier)
	}
	enemy.State = component.StateDestroyed
	g.EventDispatcher.Dispatch(event.Event{Type: event.EnemyDestroyed, Data: event.EnemyEvent{
		ID: id, X: pos.X, Y: pos.Y, Points: enemy.Points, Scored: scored,
	}})
	g.ECS.Remove(id)
}

// spawnPlayerBullets creates the player's shot at the shell-provided
// position: one straight bullet, or three when spread is active.
func (g *Game) spawnPlayerBullets(player PlayerState) {
	muzzleY := player.Y - 22
	if player.SpreadActive {
		for _, vx := range []float64{-220, 0, 220} {
			g.spawnPlayerBullet(player.X, muzzleY, vx)
		}
		return
	}
	g.spawnPlayerBullet(player.X, muzzleY, 0)
}

func (g *Game) spawnPlayerBullet(x, y, vx float64) {
	id := g.ECS.NewEntity()
	g.ECS.Positions[id] = &component.Position{X: x, Y: y}
	g.ECS.Velocities[id] = &component.Velocity{X: vx, Y: -config.BulletSpeed}
	g.ECS.Hitboxes[id] = &component.Hitbox{HalfW: config.BulletRadius, HalfH: config.BulletRadius}
	g.ECS.Renderables[id] = &component.Renderable{Color: config.BulletColor, Radius: config.BulletRadius}
	g.ECS.Projectiles[id] = &component.Projectile{Damage: 1, Friendly: true}
}

// buildSnapshot assembles the read-only view of the tick, ordered by entity
// ID so consumers see a stable ordering.
func (g *Game) buildSnapshot(cleared bool) Snapshot {
	ids := make([]types.EntityID, 0, len(g.ECS.Positions))
	for id := range g.ECS.Positions {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	entities := make([]EntitySnapshot, 0, len(ids))
	for _, id := range ids {
		pos := g.ECS.Positions[id]
		es := EntitySnapshot{ID: id, X: pos.X, Y: pos.Y, Slot: -1}
		if vel, ok := g.ECS.Velocities[id]; ok {
			es.VX = vel.X
			es.VY = vel.Y
		}
		if health, ok := g.ECS.Healths[id]; ok {
			es.Health = health.Value
		}
		if hb, ok := g.ECS.Hitboxes[id]; ok {
			es.HalfW = hb.HalfW
			es.HalfH = hb.HalfH
		}
		if r, ok := g.ECS.Renderables[id]; ok {
			es.Color = r.Color
			es.Radius = r.Radius
			es.HasStroke = r.HasStroke
		}
		switch {
		case g.ECS.Enemies[id] != nil:
			enemy := g.ECS.Enemies[id]
			es.Kind = KindEnemy
			es.State = enemy.State
			if enemy.FormationBound() {
				es.Slot = enemy.FormationSlot
			}
		case g.ECS.Projectiles[id] != nil:
			es.Kind = KindProjectile
			es.Friendly = g.ECS.Projectiles[id].Friendly
		case g.ECS.PowerUps[id] != nil:
			es.Kind = KindPowerUp
			es.PowerUpKind = g.ECS.PowerUps[id].Kind
		default:
			continue
		}
		entities = append(entities, es)
	}

	return Snapshot{
		Entities:    entities,
		WaveNumber:  g.waveNumber,
		Score:       g.score,
		Multiplier:  g.multiplier,
		WaveCleared: cleared,
	}
}
