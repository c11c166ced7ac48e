// internal/state/player.go
package state

import (
	"math"

	"go-galactic-traveler/internal/config"
	"go-galactic-traveler/internal/utils"
)

// Player is the shell-owned player entity. The simulation core references
// its position and lives through PlayerState but never mutates it.
type Player struct {
	X, Y  float64
	Lives int

	// Power-up timers, in seconds remaining.
	Shield float64
	Spread float64
	Rapid  float64

	fireCooldown float64
}

func NewPlayer() *Player {
	return &Player{
		X:     config.ScreenWidth / 2,
		Y:     config.ScreenHeight - 70,
		Lives: config.PlayerLives,
	}
}

func (p *Player) Alive() bool {
	return p.Lives > 0
}

// Update applies movement and ticks the timers. The player is confined to
// the lower part of the screen.
func (p *Player) Update(deltaTime float64, in Intent) {
	mx, my := in.MoveX, in.MoveY
	if mx != 0 || my != 0 {
		length := math.Sqrt(mx*mx + my*my)
		mx /= length
		my /= length
	}
	p.X = utils.Clamp(p.X+mx*config.PlayerSpeed*deltaTime, 30, config.ScreenWidth-30)
	p.Y = utils.Clamp(p.Y+my*config.PlayerSpeed*deltaTime, config.ScreenHeight*0.55, config.ScreenHeight-30)

	p.fireCooldown = math.Max(0, p.fireCooldown-deltaTime)
	p.Shield = math.Max(0, p.Shield-deltaTime)
	p.Spread = math.Max(0, p.Spread-deltaTime)
	p.Rapid = math.Max(0, p.Rapid-deltaTime)
}

// TryFire consumes the fire cooldown. It returns true when a shot should be
// requested from the core this frame.
func (p *Player) TryFire() bool {
	if p.fireCooldown > 0 {
		return false
	}
	cd := float64(config.PlayerFireCooldown)
	if p.Rapid > 0 {
		cd *= 0.55
	}
	p.fireCooldown = cd
	return true
}

// Hit applies one incoming hit. A running shield absorbs it and keeps
// ticking, so repeated hits inside one grace window cost nothing extra;
// otherwise a life is lost and a short invulnerability window starts.
// Returns whether a life was actually lost.
func (p *Player) Hit() bool {
	if p.Shield > 0 {
		return false
	}
	p.Lives--
	p.Shield = config.PlayerHitInvuln
	return true
}
