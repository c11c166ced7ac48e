// component/movement.go
package component

// Position is the entity's position in screen space.
type Position struct {
	X, Y float64
}

// Velocity is the entity's velocity in pixels per second.
type Velocity struct {
	X, Y float64
}

// Hitbox is an axis-aligned bounding box centered on the position, used only
// by the collision resolver outside the core.
type Hitbox struct {
	HalfW, HalfH float64
}
