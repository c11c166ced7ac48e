// internal/collision/resolver.go
package collision

import (
	"go-galactic-traveler/internal/app"
	"go-galactic-traveler/internal/types"
)

// PlayerBox is the player's hitbox as the shell reports it. Alive false
// suppresses all player-side pairs (e.g. during the game-over freeze).
type PlayerBox struct {
	X, Y         float64
	HalfW, HalfH float64
	Alive        bool
}

// Resolve detects colliding pairs in a snapshot. It is a pure reader: it
// interprets nothing, it only pairs boxes. The core applies the returned
// events on the next Advance call.
func Resolve(snap app.Snapshot, player PlayerBox) []app.CollisionEvent {
	var events []app.CollisionEvent

	// Friendly bullets against enemies.
	for _, b := range snap.Entities {
		if b.Kind != app.KindProjectile || !b.Friendly {
			continue
		}
		for _, e := range snap.Entities {
			if e.Kind != app.KindEnemy {
				continue
			}
			if overlap(b.X, b.Y, b.HalfW, b.HalfH, e.X, e.Y, e.HalfW, e.HalfH) {
				events = append(events, app.CollisionEvent{A: b.ID, B: e.ID, Kind: app.CollisionBulletEnemy})
				break // one hit per bullet
			}
		}
	}

	if !player.Alive {
		return events
	}

	for _, ent := range snap.Entities {
		hit := overlap(ent.X, ent.Y, ent.HalfW, ent.HalfH, player.X, player.Y, player.HalfW, player.HalfH)
		if !hit {
			continue
		}
		switch ent.Kind {
		case app.KindProjectile:
			if !ent.Friendly {
				events = append(events, app.CollisionEvent{A: ent.ID, B: types.PlayerID, Kind: app.CollisionBulletPlayer})
			}
		case app.KindEnemy:
			events = append(events, app.CollisionEvent{A: ent.ID, B: types.PlayerID, Kind: app.CollisionPlayerEnemy})
		case app.KindPowerUp:
			events = append(events, app.CollisionEvent{A: ent.ID, B: types.PlayerID, Kind: app.CollisionPlayerPowerUp})
		}
	}

	return events
}

func overlap(ax, ay, aw, ah, bx, by, bw, bh float64) bool {
	return ax-aw < bx+bw && ax+aw > bx-bw && ay-ah < by+bh && ay+ah > by-bh
}
