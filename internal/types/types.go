// internal/types/types.go
package types

// EntityID identifies an entity for its whole lifetime. IDs are handed out
// monotonically and never reused, so stale references stay distinguishable.
type EntityID uint64

// PlayerID is the reserved ID for the player entity. The player is owned by
// the game shell, not the simulation core; collision events use this ID to
// refer to it. Core entity IDs start at 1.
const PlayerID EntityID = 0
