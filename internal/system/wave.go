// internal/system/wave.go
package system

import (
	"log"

	"go-galactic-traveler/internal/component"
	"go-galactic-traveler/internal/config"
	"go-galactic-traveler/internal/defs"
	"go-galactic-traveler/internal/entity"
	"go-galactic-traveler/internal/event"
	"go-galactic-traveler/internal/types"
	"go-galactic-traveler/internal/utils"
	"go-galactic-traveler/pkg/formation"
)

// WaveSystem owns the spawn schedule, the formation reference frame, and the
// bookkeeping of the current wave. It is the only component that creates
// enemies.
type WaveSystem struct {
	ecs             *entity.ECS
	eventDispatcher *event.Dispatcher
	rng             *utils.PRNGService
	ramp            defs.Ramp
	patterns        []formation.Kind
	activeEnemies   int
	slots           map[int]types.EntityID // occupied formation slots this wave
}

func NewWaveSystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher, rng *utils.PRNGService, ramp defs.Ramp, patterns []formation.Kind) *WaveSystem {
	ws := &WaveSystem{
		ecs:             ecs,
		eventDispatcher: eventDispatcher,
		rng:             rng,
		ramp:            ramp,
		patterns:        patterns,
		slots:           make(map[int]types.EntityID),
	}
	eventDispatcher.Subscribe(event.EnemyDestroyed, ws)
	return ws
}

// StartWave builds the wave component for the given wave number. Parameters
// come from the deterministic ramp, so restarting the same wave number
// always yields the same wave.
func (s *WaveSystem) StartWave(waveNumber int) *component.Wave {
	params := defs.ParamsForWave(waveNumber, s.ramp)
	pattern := defs.PatternForWave(waveNumber, s.patterns)

	originY := float64(config.FormationRowY)
	if pattern == formation.Ring {
		originY += 80 // rings need room to rotate below the HUD
	}

	s.activeEnemies = 0
	s.slots = make(map[int]types.EntityID)

	s.eventDispatcher.Dispatch(event.Event{Type: event.WaveStarted, Data: waveNumber})

	return &component.Wave{
		Number:        waveNumber,
		Pattern:       pattern,
		EnemyID:       params.EnemyID,
		EnemyCount:    params.EnemyCount,
		SpawnTimer:    params.SpawnInterval, // first enemy spawns immediately
		SpawnInterval: params.SpawnInterval,
		SpeedScale:    params.SpeedScale,
		FireRateScale: params.FireRateScale,
		AttackChance:  params.AttackChance,
		OriginX:       float64(config.ScreenWidth) / 2,
		OriginY:       originY,
	}
}

// Update advances the spawn timer and the formation clock. The wave-clear
// check is separate (CheckCleared) because it must run after the tick's
// collision events have been applied.
func (s *WaveSystem) Update(deltaTime float64, wave *component.Wave) {
	if wave == nil {
		return
	}
	wave.SpawnTimer += deltaTime
	for wave.SpawnTimer >= wave.SpawnInterval && wave.Spawned < wave.EnemyCount {
		wave.SpawnTimer -= wave.SpawnInterval
		s.spawnEnemy(wave)
	}
	wave.Elapsed += deltaTime
}

// CheckCleared reports whether the wave has just been cleared. The signal
// fires exactly once per wave.
func (s *WaveSystem) CheckCleared(wave *component.Wave) bool {
	if wave == nil || wave.Cleared {
		return false
	}
	if wave.Spawned == wave.EnemyCount && s.activeEnemies == 0 {
		wave.Cleared = true
		s.eventDispatcher.Dispatch(event.Event{Type: event.WaveCleared, Data: wave.Number})
		return true
	}
	return false
}

// ActiveEnemies returns the number of live enemies of the current wave.
func (s *WaveSystem) ActiveEnemies() int {
	return s.activeEnemies
}

func (s *WaveSystem) spawnEnemy(wave *component.Wave) {
	def, ok := defs.EnemyLibrary[wave.EnemyID]
	if !ok {
		log.Printf("enemy definition not found for ID %s, spawn refused", wave.EnemyID)
		return
	}

	slot := s.nextFreeSlot(wave.EnemyCount)
	if slot < 0 {
		// More spawns than formation slots is a logic defect; refuse the
		// spawn rather than crash. Spawned is left untouched so the counts
		// stay conserved.
		log.Printf("wave %d: no free formation slot for spawn %d, spawn refused", wave.Number, wave.Spawned)
		return
	}

	// Enter from above the screen, lined up with the slot's current target.
	targetX, _ := formation.TargetPosition(wave.Pattern, wave.OriginX, wave.OriginY, slot, wave.EnemyCount, wave.Elapsed)

	id := s.ecs.NewEntity()
	radius := config.EnemyRadius * def.RadiusFactor
	s.ecs.Positions[id] = &component.Position{X: targetX, Y: config.SpawnHeight}
	s.ecs.Velocities[id] = &component.Velocity{}
	s.ecs.Healths[id] = &component.Health{Value: def.Health}
	s.ecs.Hitboxes[id] = &component.Hitbox{HalfW: radius, HalfH: radius}
	s.ecs.Renderables[id] = &component.Renderable{
		Color:     config.EnemyColor,
		Radius:    float32(radius),
		HasStroke: true,
	}
	s.ecs.Enemies[id] = &component.Enemy{
		DefID:         wave.EnemyID,
		State:         component.StateEntering,
		FormationSlot: slot,
		Points:        def.Points,
		FireCooldown:  s.rng.FloatRange(0.8, 1.9),
	}

	s.slots[slot] = id
	s.activeEnemies++
	wave.Spawned++

	s.eventDispatcher.Dispatch(event.Event{Type: event.EnemySpawned, Data: event.EnemyEvent{
		ID: id, X: targetX, Y: config.SpawnHeight, Points: def.Points,
	}})
}

// nextFreeSlot returns the lowest unoccupied slot index, or -1 when the
// formation is full.
func (s *WaveSystem) nextFreeSlot(slotCount int) int {
	for i := 0; i < slotCount; i++ {
		if _, taken := s.slots[i]; !taken {
			return i
		}
	}
	return -1
}

// OnEvent frees the slot and the live count when an enemy dies.
func (s *WaveSystem) OnEvent(e event.Event) {
	if e.Type != event.EnemyDestroyed {
		return
	}
	data, ok := e.Data.(event.EnemyEvent)
	if !ok {
		return
	}
	for slot, id := range s.slots {
		if id == data.ID {
			delete(s.slots, slot)
			break
		}
	}
	if s.activeEnemies > 0 {
		s.activeEnemies--
	}
}
