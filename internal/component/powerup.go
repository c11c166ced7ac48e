// internal/component/powerup.go
package component

// Power-up kinds. Values match the defs drop table.
const (
	PowerUpSpread     = "spread"
	PowerUpRapid      = "rapid"
	PowerUpShield     = "shield"
	PowerUpMultiplier = "multiplier"
)

// PowerUp represents a collectible drifting down the screen.
type PowerUp struct {
	Kind    string
	Elapsed float64 // drives the horizontal sway
}
