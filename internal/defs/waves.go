// internal/defs/waves.go
package defs

import (
	"go-galactic-traveler/internal/config"
	"go-galactic-traveler/pkg/formation"
)

// WaveParams are the spawn and difficulty parameters of one wave. They are a
// pure function of the wave number, so the same wave always plays out with
// the same parameters.
type WaveParams struct {
	EnemyCount    int
	SpawnInterval float64
	SpeedScale    float64
	FireRateScale float64
	AttackChance  float64 // attack rolls per second while in formation
	EnemyID       string
}

// Ramp holds the construction-time knobs of the difficulty ramp.
type Ramp struct {
	BaseEnemyCount    int
	BaseSpawnInterval float64
	RampRate          float64 // scales the growth of every per-wave parameter
}

// DefaultRamp returns the ramp tuned in config.
func DefaultRamp() Ramp {
	return Ramp{
		BaseEnemyCount:    config.BaseEnemyCount,
		BaseSpawnInterval: config.BaseSpawnInterval,
		RampRate:          1.0,
	}
}

// ParamsForWave derives wave parameters from the wave number. Speed and fire
// rate are non-decreasing in the wave number and capped; the spawn interval
// shrinks to a floor; the enemy count grows to a cap and is never below 1.
func ParamsForWave(n int, ramp Ramp) WaveParams {
	if n < 1 {
		n = 1
	}
	steps := float64(n-1) * ramp.RampRate

	count := ramp.BaseEnemyCount + int(steps*config.WaveDensityScaler)
	if count > config.MaxEnemiesPerWave {
		count = config.MaxEnemiesPerWave
	}
	if count < 1 {
		count = 1
	}

	interval := ramp.BaseSpawnInterval - steps*config.SpawnIntervalStep
	if interval < config.MinSpawnInterval {
		interval = config.MinSpawnInterval
	}

	speed := 1.0 + steps*config.WaveSpeedScaler
	if speed > config.MaxSpeedScale {
		speed = config.MaxSpeedScale
	}

	fireRate := 1.0 + steps*config.WaveFireRateScaler
	if fireRate > config.MaxFireRateScale {
		fireRate = config.MaxFireRateScale
	}

	attack := config.BaseAttackChance * (1.0 + steps*config.WaveFireRateScaler)
	if attack > config.MaxAttackChance {
		attack = config.MaxAttackChance
	}

	return WaveParams{
		EnemyCount:    count,
		SpawnInterval: interval,
		SpeedScale:    speed,
		FireRateScale: fireRate,
		AttackChance:  attack,
		EnemyID:       enemyForWave(n),
	}
}

// enemyForWave picks which definition a wave spawns. Tougher variants enter
// the rotation as the waves climb.
func enemyForWave(n int) string {
	switch {
	case n >= 8 && n%3 == 2:
		return "ENEMY_FAST"
	case n >= 4 && n%3 == 1:
		return "ENEMY_TOUGH"
	default:
		return "ENEMY_GRUNT"
	}
}

// PatternForWave cycles the configured pattern sequence. Ring formations are
// held back until wave 3; early waves that land on Ring fall through to Line.
func PatternForWave(n int, sequence []formation.Kind) formation.Kind {
	if len(sequence) == 0 {
		return formation.Line
	}
	kind := sequence[(n-1)%len(sequence)]
	if kind == formation.Ring && n < 3 {
		return formation.Line
	}
	return kind
}
