// internal/app/config.go
package app

import (
	"log"

	"go-galactic-traveler/internal/config"
	"go-galactic-traveler/pkg/formation"
)

// Config holds the construction-time options of the simulation core.
type Config struct {
	BaseEnemyCount         int
	BaseSpawnInterval      float64 // seconds
	DifficultyRampRate     float64
	PatternSequence        []formation.Kind // cycled per wave
	MaxConcurrentAttackers int
	Seed                   int64 // 0 seeds from the clock; fix it for reproducible runs
}

// DefaultConfig returns the tuning shipped with the game.
func DefaultConfig() Config {
	return Config{
		BaseEnemyCount:         config.BaseEnemyCount,
		BaseSpawnInterval:      config.BaseSpawnInterval,
		DifficultyRampRate:     1.0,
		PatternSequence:        []formation.Kind{formation.Line, formation.V, formation.SineDrift, formation.Ring},
		MaxConcurrentAttackers: config.MaxConcurrentAttackers,
	}
}

// sanitize absorbs configuration defects instead of failing: zero-enemy
// waves and a negative ramp would wedge the wave lifecycle.
func (c Config) sanitize() Config {
	if c.BaseEnemyCount < 1 {
		log.Printf("config: base enemy count %d raised to 1", c.BaseEnemyCount)
		c.BaseEnemyCount = 1
	}
	if c.BaseSpawnInterval <= 0 {
		log.Printf("config: spawn interval %f reset to default", c.BaseSpawnInterval)
		c.BaseSpawnInterval = config.BaseSpawnInterval
	}
	if c.DifficultyRampRate < 0 {
		log.Printf("config: negative ramp rate %f reset to 1.0", c.DifficultyRampRate)
		c.DifficultyRampRate = 1.0
	}
	if c.MaxConcurrentAttackers < 0 {
		c.MaxConcurrentAttackers = 0
	}
	if len(c.PatternSequence) == 0 {
		c.PatternSequence = DefaultConfig().PatternSequence
	}
	return c
}
