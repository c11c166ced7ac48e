// internal/component/projectile.go
package component

// Projectile represents a bullet in flight. Friendly projectiles were fired
// by the player, hostile ones by enemies.
type Projectile struct {
	Damage   int
	Friendly bool
}
