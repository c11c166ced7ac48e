// internal/defs/enemies.go
package defs

// EnemyDefinition holds all the static data for a specific type of enemy.
type EnemyDefinition struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	Health         int     `json:"health"`
	SpeedFactor    float64 `json:"speed_factor"`     // multiplier on the wave's base speed
	FireRateFactor float64 `json:"fire_rate_factor"` // multiplier on the wave's fire rate
	Points         int     `json:"points"`
	RadiusFactor   float64 `json:"radius_factor"`
	SurvivesRam    bool    `json:"survives_ram"` // whether the enemy survives contact with the player
}

// EnemyLibrary is the library of all enemy definitions, mapped by their ID.
// Populated with the built-in set; LoadEnemyDefinitions can replace it from a
// JSON file.
var EnemyLibrary = map[string]EnemyDefinition{
	"ENEMY_GRUNT": {
		ID:             "ENEMY_GRUNT",
		Name:           "Grunt",
		Health:         1,
		SpeedFactor:    1.0,
		FireRateFactor: 1.0,
		Points:         100,
		RadiusFactor:   1.0,
		SurvivesRam:    true,
	},
	"ENEMY_TOUGH": {
		ID:             "ENEMY_TOUGH",
		Name:           "Bruiser",
		Health:         3,
		SpeedFactor:    0.8,
		FireRateFactor: 0.9,
		Points:         180,
		RadiusFactor:   1.2,
		SurvivesRam:    true,
	},
	"ENEMY_FAST": {
		ID:             "ENEMY_FAST",
		Name:           "Darter",
		Health:         1,
		SpeedFactor:    1.5,
		FireRateFactor: 1.3,
		Points:         140,
		RadiusFactor:   0.85,
		SurvivesRam:    true,
	},
}
