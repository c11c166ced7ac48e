// internal/event/types.go
package event

import "go-galactic-traveler/internal/types"

const (
	WaveStarted      EventType = "WaveStarted"      // Data: wave number (int)
	WaveCleared      EventType = "WaveCleared"      // Data: cleared wave number (int)
	EnemySpawned     EventType = "EnemySpawned"     // Data: EnemyEvent
	EnemyDestroyed   EventType = "EnemyDestroyed"   // Data: EnemyEvent
	PlayerHit        EventType = "PlayerHit"        // Data: nil
	PowerUpCollected EventType = "PowerUpCollected" // Data: power-up kind (string)
)

// EnemyEvent is the payload of enemy lifecycle events. Scored is false when
// the enemy was removed without awarding points, e.g. a forced destroy of an
// enemy whose formation slot drifted out of reach.
type EnemyEvent struct {
	ID     types.EntityID
	X, Y   float64
	Points int
	Scored bool
}
