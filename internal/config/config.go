// internal/config/config.go
package config

import "image/color"

const (
	ScreenWidth  = 900
	ScreenHeight = 650
	MaxDeltaTime = 0.06

	PlayerSpeed        = 420.0
	PlayerFireCooldown = 0.22 // seconds (base)
	PlayerRadius       = 18.0
	PlayerLives        = 3
	PlayerHitInvuln    = 1.1 // brief shield after losing a life

	BulletSpeed       = 900.0
	BulletRadius      = 4.0
	EnemyBulletSpeed  = 420.0
	EnemyBulletSpread = 70.0 // max horizontal velocity of enemy shots

	EnemyBaseSpeed  = 120.0 // slot-tracking speed while holding formation
	EnemyRadius     = 16.0
	EnemyEnterSpeed = 240.0 // approach speed while flying to the slot
	EnemyDiveSpeed  = 260.0
	EnemyDiveSteer  = 90.0 // horizontal correction toward the dive target

	FormationEpsilon = 4.0 // slot arrival distance
	FormationRowY    = 120.0
	AttackTimeLimit  = 3.5 // seconds before an attack run gives up
	AttackBoundsY    = ScreenHeight * 0.85

	PowerUpDropChance = 0.18
	PowerUpDuration   = 10.0
	PowerUpFallSpeed  = 140.0
	PowerUpRadius     = 12.0

	ScoreWaveBonus = 0.06 // per-wave scaling of kill points
	ScoreRamBonus  = 60
	MaxMultiplier  = 6.0

	// Difficulty ramp. All derived values are deterministic in the wave
	// number; see defs.ParamsForWave.
	BaseEnemyCount     = 6
	MaxEnemiesPerWave  = 18
	WaveDensityScaler  = 0.8
	BaseSpawnInterval  = 0.8 // seconds
	MinSpawnInterval   = 0.25
	SpawnIntervalStep  = 0.05
	WaveSpeedScaler    = 0.06
	MaxSpeedScale      = 2.0
	WaveFireRateScaler = 0.08
	MaxFireRateScale   = 2.5
	BaseFireRate       = 0.55 // enemy shots per second at scale 1.0
	BaseAttackChance   = 0.10 // attack rolls per second at scale 1.0
	MaxAttackChance    = 0.45

	AggressionThreshold    = 3 // fewer live enemies than this attack unconditionally
	MaxConcurrentAttackers = 2
	WaveTimeBetween        = 2.0

	OffscreenMargin = 80.0 // cull distance past the playfield
	SpawnHeight     = -40.0
)

var (
	BackgroundColor  = color.RGBA{8, 10, 18, 255}
	ForegroundColor  = color.RGBA{220, 230, 255, 255}
	PlayerColor      = color.RGBA{70, 210, 255, 255}
	EnemyColor       = color.RGBA{255, 100, 130, 255}
	BulletColor      = color.RGBA{255, 240, 140, 255}
	EnemyBulletColor = color.RGBA{255, 160, 80, 255}
	PowerUpColor     = color.RGBA{140, 255, 140, 255}
	ShieldColor      = color.RGBA{120, 170, 255, 255}
	StarColor        = color.RGBA{160, 170, 200, 255}
	BannerColor      = color.RGBA{190, 255, 190, 255}
	HintColor        = color.RGBA{160, 170, 200, 255}
	SubtitleColor    = color.RGBA{190, 200, 230, 255}
	GameOverColor    = color.RGBA{255, 140, 160, 255}
)
