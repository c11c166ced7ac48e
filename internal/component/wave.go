// internal/component/wave.go
package component

import "go-galactic-traveler/pkg/formation"

// Wave holds the state of the active enemy wave. The wave system is its only
// writer.
type Wave struct {
	Number        int
	Pattern       formation.Kind
	EnemyID       string
	EnemyCount    int     // total enemies this wave will spawn
	Spawned       int     // enemies spawned so far, never exceeds EnemyCount
	SpawnTimer    float64
	SpawnInterval float64
	Elapsed       float64 // formation time, drives drift and rotation
	SpeedScale    float64
	FireRateScale float64
	AttackChance  float64
	OriginX       float64 // formation reference frame
	OriginY       float64
	Cleared       bool // set once, when the clear signal has been emitted
}
