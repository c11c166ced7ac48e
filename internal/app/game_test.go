// internal/app/game_test.go
package app

import (
	"reflect"
	"testing"

	"go-galactic-traveler/internal/component"
	"go-galactic-traveler/internal/config"
	"go-galactic-traveler/internal/event"
	"go-galactic-traveler/internal/types"
	"go-galactic-traveler/pkg/formation"
)

// eventRecorder collects dispatched events for assertions.
type eventRecorder struct {
	events []event.Event
}

func (r *eventRecorder) OnEvent(e event.Event) {
	r.events = append(r.events, e)
}

func (r *eventRecorder) count(t event.EventType) int {
	n := 0
	for _, e := range r.events {
		if e.Type == t {
			n++
		}
	}
	return n
}

func testConfig() Config {
	return Config{
		BaseEnemyCount:         3,
		BaseSpawnInterval:      0.3,
		DifficultyRampRate:     1.0,
		PatternSequence:        []formation.Kind{formation.Line},
		MaxConcurrentAttackers: 0, // keep every enemy in formation
		Seed:                   42,
	}
}

func idlePlayer() PlayerState {
	return PlayerState{X: float64(config.ScreenWidth) / 2, Y: 600, Lives: 3}
}

func enemyIDs(snap Snapshot) []types.EntityID {
	var ids []types.EntityID
	for _, e := range snap.Entities {
		if e.Kind == KindEnemy {
			ids = append(ids, e.ID)
		}
	}
	return ids
}

// advanceUntilSpawned ticks the game until the snapshot holds n enemies.
func advanceUntilSpawned(t *testing.T, g *Game, n int) Snapshot {
	t.Helper()
	var snap Snapshot
	for i := 0; i < 200; i++ {
		snap = g.Advance(0.05, idlePlayer(), nil)
		if len(enemyIDs(snap)) >= n {
			return snap
		}
	}
	t.Fatalf("never reached %d live enemies", n)
	return snap
}

func addFriendlyBullet(g *Game) types.EntityID {
	id := g.ECS.NewEntity()
	g.ECS.Positions[id] = &component.Position{X: 450, Y: 500}
	g.ECS.Velocities[id] = &component.Velocity{Y: -config.BulletSpeed}
	g.ECS.Projectiles[id] = &component.Projectile{Damage: 1, Friendly: true}
	return id
}

func addHostileBullet(g *Game) types.EntityID {
	id := g.ECS.NewEntity()
	g.ECS.Positions[id] = &component.Position{X: 450, Y: 580}
	g.ECS.Velocities[id] = &component.Velocity{Y: config.EnemyBulletSpeed}
	g.ECS.Projectiles[id] = &component.Projectile{Damage: 1, Friendly: false}
	return id
}

func addMultiplierPowerUp(g *Game) types.EntityID {
	id := g.ECS.NewEntity()
	g.ECS.Positions[id] = &component.Position{X: 450, Y: 590}
	g.ECS.PowerUps[id] = &component.PowerUp{Kind: component.PowerUpMultiplier}
	return id
}

func TestAdvanceDeterministic(t *testing.T) {
	g1 := NewGame(testConfig())
	g2 := NewGame(testConfig())

	var s1, s2 Snapshot
	for i := 0; i < 300; i++ {
		s1 = g1.Advance(0.016, idlePlayer(), nil)
		s2 = g2.Advance(0.016, idlePlayer(), nil)
	}

	if !reflect.DeepEqual(s1, s2) {
		t.Fatal("identical seeds and inputs diverged")
	}
	if g1.Score() != g2.Score() {
		t.Errorf("scores diverged: %d vs %d", g1.Score(), g2.Score())
	}
}

func TestKillingWaveClearsAndAdvancesCounter(t *testing.T) {
	g := NewGame(testConfig())
	snap := advanceUntilSpawned(t, g, 3)

	var collisions []CollisionEvent
	for _, enemyID := range enemyIDs(snap) {
		collisions = append(collisions, CollisionEvent{
			A: addFriendlyBullet(g), B: enemyID, Kind: CollisionBulletEnemy,
		})
	}

	snap = g.Advance(0.016, idlePlayer(), collisions)

	if !snap.WaveCleared {
		t.Fatal("wave not reported cleared after the last kill")
	}
	if snap.WaveNumber != 2 {
		t.Errorf("wave number = %d, want 2", snap.WaveNumber)
	}
	if got := g.Score(); got != 300 {
		t.Errorf("score = %d, want 300", got)
	}

	// The cleared flag is a one-tick signal.
	snap = g.Advance(0.016, idlePlayer(), nil)
	if snap.WaveCleared {
		t.Error("cleared signal repeated on the next tick")
	}
}

func TestNextWaveStartsAfterDelay(t *testing.T) {
	g := NewGame(testConfig())
	snap := advanceUntilSpawned(t, g, 3)

	var collisions []CollisionEvent
	for _, enemyID := range enemyIDs(snap) {
		collisions = append(collisions, CollisionEvent{
			A: addFriendlyBullet(g), B: enemyID, Kind: CollisionBulletEnemy,
		})
	}
	g.Advance(0.016, idlePlayer(), collisions)

	// The field stays empty through the between-wave pause.
	elapsed := 0.0
	for elapsed < config.WaveTimeBetween-0.2 {
		snap = g.Advance(0.1, idlePlayer(), nil)
		elapsed += 0.1
		if len(enemyIDs(snap)) != 0 {
			t.Fatalf("enemy spawned %0.1fs into the between-wave pause", elapsed)
		}
	}

	snap = advanceUntilSpawned(t, g, 1)
	if snap.WaveNumber != 2 {
		t.Errorf("wave number = %d, want 2", snap.WaveNumber)
	}
}

func TestStaleCollisionEventsIgnored(t *testing.T) {
	g := NewGame(testConfig())
	snap := advanceUntilSpawned(t, g, 1)
	enemyID := enemyIDs(snap)[0]

	// Two bullets report hits on the same one-health enemy; the second
	// report arrives after the enemy is already gone.
	collisions := []CollisionEvent{
		{A: addFriendlyBullet(g), B: enemyID, Kind: CollisionBulletEnemy},
		{A: addFriendlyBullet(g), B: enemyID, Kind: CollisionBulletEnemy},
		{A: 9999, B: 9998, Kind: CollisionBulletEnemy}, // never existed
	}
	g.Advance(0.016, idlePlayer(), collisions)

	if got := g.Score(); got != 100 {
		t.Errorf("score = %d, want 100 (single kill)", got)
	}
}

func TestRamAwardsBonusAndEnemySurvives(t *testing.T) {
	g := NewGame(testConfig())
	rec := &eventRecorder{}
	g.EventDispatcher.Subscribe(event.PlayerHit, rec)

	snap := advanceUntilSpawned(t, g, 1)
	enemyID := enemyIDs(snap)[0]

	snap = g.Advance(0.016, idlePlayer(), []CollisionEvent{
		{A: enemyID, Kind: CollisionPlayerEnemy},
	})

	if got := g.Score(); got != config.ScoreRamBonus {
		t.Errorf("score = %d, want %d", got, config.ScoreRamBonus)
	}
	if rec.count(event.PlayerHit) != 1 {
		t.Errorf("PlayerHit dispatched %d times, want 1", rec.count(event.PlayerHit))
	}
	found := false
	for _, id := range enemyIDs(snap) {
		if id == enemyID {
			found = true
		}
	}
	if !found {
		t.Error("enemy did not survive the ram")
	}
}

func TestSustainedRamContactCountsOnce(t *testing.T) {
	g := NewGame(testConfig())
	rec := &eventRecorder{}
	g.EventDispatcher.Subscribe(event.PlayerHit, rec)

	snap := advanceUntilSpawned(t, g, 1)
	enemyID := enemyIDs(snap)[0]
	contact := []CollisionEvent{{A: enemyID, Kind: CollisionPlayerEnemy}}

	// First contact tick: the player is vulnerable, the ram counts.
	player := idlePlayer()
	g.Advance(0.016, player, contact)
	if got := g.Score(); got != config.ScoreRamBonus {
		t.Fatalf("score after first contact = %d, want %d", got, config.ScoreRamBonus)
	}

	// The enemy survives and keeps overlapping; the shell reports the
	// post-hit grace window and the contact must stop counting.
	player.Invulnerable = true
	for i := 0; i < 5; i++ {
		g.Advance(0.016, player, contact)
	}

	if got := g.Score(); got != config.ScoreRamBonus {
		t.Errorf("score after sustained contact = %d, want %d", got, config.ScoreRamBonus)
	}
	if got := rec.count(event.PlayerHit); got != 1 {
		t.Errorf("PlayerHit dispatched %d times for one continuous contact, want 1", got)
	}
	if _, alive := g.ECS.Enemies[enemyID]; !alive {
		t.Error("ignored contact destroyed the enemy")
	}
}

func TestHostileBulletHitsPlayer(t *testing.T) {
	g := NewGame(testConfig())
	rec := &eventRecorder{}
	g.EventDispatcher.Subscribe(event.PlayerHit, rec)

	bullet := addHostileBullet(g)
	g.Advance(0.016, idlePlayer(), []CollisionEvent{
		{A: bullet, Kind: CollisionBulletPlayer},
	})

	if rec.count(event.PlayerHit) != 1 {
		t.Errorf("PlayerHit dispatched %d times, want 1", rec.count(event.PlayerHit))
	}
	if _, exists := g.ECS.Projectiles[bullet]; exists {
		t.Error("hostile bullet not consumed by the hit")
	}
	if g.Score() != 0 {
		t.Errorf("player hit changed the score: %d", g.Score())
	}
}

func TestMultiplierDoublesCapsAndExpires(t *testing.T) {
	g := NewGame(testConfig())

	var snap Snapshot
	for i := 0; i < 4; i++ {
		pu := addMultiplierPowerUp(g)
		snap = g.Advance(0.016, idlePlayer(), []CollisionEvent{
			{A: pu, Kind: CollisionPlayerPowerUp},
		})
	}
	if snap.Multiplier != config.MaxMultiplier {
		t.Fatalf("multiplier = %f, want cap %f", snap.Multiplier, config.MaxMultiplier)
	}

	for elapsed := 0.0; elapsed < config.PowerUpDuration+1; elapsed += 0.5 {
		snap = g.Advance(0.5, idlePlayer(), nil)
	}
	if snap.Multiplier != 1.0 {
		t.Errorf("multiplier = %f after expiry, want 1.0", snap.Multiplier)
	}
}

func TestMultiplierScalesKillScore(t *testing.T) {
	g := NewGame(testConfig())
	snap := advanceUntilSpawned(t, g, 1)
	enemyID := enemyIDs(snap)[0]

	pu := addMultiplierPowerUp(g)
	g.Advance(0.016, idlePlayer(), []CollisionEvent{
		{A: pu, Kind: CollisionPlayerPowerUp},
	})

	g.Advance(0.016, idlePlayer(), []CollisionEvent{
		{A: addFriendlyBullet(g), B: enemyID, Kind: CollisionBulletEnemy},
	})

	if got := g.Score(); got != 200 {
		t.Errorf("score = %d, want 200 (doubled kill)", got)
	}
}

func TestFireRequestSpawnsBullets(t *testing.T) {
	tests := []struct {
		name   string
		spread bool
		want   int
	}{
		{"single shot", false, 1},
		{"spread shot", true, 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := NewGame(testConfig())
			player := idlePlayer()
			player.FireRequested = true
			player.SpreadActive = tt.spread

			snap := g.Advance(0.001, player, nil)

			friendly := 0
			for _, e := range snap.Entities {
				if e.Kind == KindProjectile && e.Friendly {
					friendly++
				}
			}
			if friendly != tt.want {
				t.Errorf("friendly bullets = %d, want %d", friendly, tt.want)
			}
		})
	}
}

func TestNegativeDeltaClamped(t *testing.T) {
	g := NewGame(testConfig())
	g.Advance(0.05, idlePlayer(), nil) // first enemy in
	before := g.ECS.GameTime

	snap := g.Advance(-5.0, idlePlayer(), nil)

	if g.ECS.GameTime != before {
		t.Errorf("negative delta advanced game time: %f -> %f", before, g.ECS.GameTime)
	}
	if len(snap.Entities) == 0 {
		t.Error("negative delta emptied the snapshot")
	}
}

func TestSnapshotOrderedByID(t *testing.T) {
	g := NewGame(testConfig())
	snap := advanceUntilSpawned(t, g, 3)

	for i := 1; i < len(snap.Entities); i++ {
		if snap.Entities[i-1].ID >= snap.Entities[i].ID {
			t.Fatalf("snapshot not strictly ordered at index %d", i)
		}
	}
}

func TestAttackingEnemyReportsNoSlot(t *testing.T) {
	cfg := testConfig()
	cfg.BaseEnemyCount = 2 // below the aggression threshold, attacks are unconditional
	cfg.MaxConcurrentAttackers = 2
	g := NewGame(cfg)

	// With fewer live enemies than the aggression threshold the first
	// formation enemy attacks as soon as it arrives.
	deadline := 0.0
	for deadline < 30 {
		snap := g.Advance(0.05, idlePlayer(), nil)
		deadline += 0.05
		for _, e := range snap.Entities {
			if e.Kind != KindEnemy {
				continue
			}
			if e.State == component.StateAttacking {
				if e.Slot != -1 {
					t.Fatalf("attacking enemy reports slot %d, want -1", e.Slot)
				}
				return
			}
			if e.State == component.StateFormation && e.Slot < 0 {
				t.Fatal("formation enemy reports no slot")
			}
		}
	}
	t.Fatal("no enemy ever attacked")
}
