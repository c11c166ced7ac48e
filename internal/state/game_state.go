// internal/state/game_state.go
package state

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	game "go-galactic-traveler/internal/app"
	"go-galactic-traveler/internal/collision"
	"go-galactic-traveler/internal/component"
	"go-galactic-traveler/internal/config"
	"go-galactic-traveler/internal/event"
	"go-galactic-traveler/internal/ui"
)

const (
	bannerDuration = 2.5
	flashDuration  = 0.18
)

// GameState runs the actual game: it owns the player, drives the simulation
// core once per frame, feeds collision results back in, and draws the
// resulting snapshot.
type GameState struct {
	sm        *StateMachine
	game      *game.Game
	player    *Player
	renderer  *ui.EntityRenderer
	hud       *ui.HUD
	starfield *ui.Starfield

	lastSnap    game.Snapshot
	banner      string
	bannerTimer float64
	flash       float64
	pendingHits int
}

func NewGameState(sm *StateMachine, cfg game.Config) *GameState {
	gs := &GameState{
		sm:        sm,
		game:      game.NewGame(cfg),
		player:    NewPlayer(),
		renderer:  ui.NewEntityRenderer(),
		hud:       ui.NewHUD(),
		starfield: ui.NewStarfield(160),
	}
	gs.game.EventDispatcher.Subscribe(event.PlayerHit, gs)
	gs.game.EventDispatcher.Subscribe(event.PowerUpCollected, gs)
	return gs
}

func (g *GameState) Enter() {}

func (g *GameState) Update(deltaTime float64) {
	in := ReadIntent()
	if in.PauseToggled {
		g.sm.SetState(NewPauseState(g.sm, g))
		return
	}

	g.starfield.Update(deltaTime)
	g.player.Update(deltaTime, in)

	fireRequested := in.Fire && g.player.TryFire()

	// Collisions are resolved against the previous tick's snapshot and fed
	// into this tick, so a freshly spawned entity is never hit on its spawn
	// tick.
	events := collision.Resolve(g.lastSnap, collision.PlayerBox{
		X: g.player.X, Y: g.player.Y,
		HalfW: config.PlayerRadius, HalfH: config.PlayerRadius,
		Alive: g.player.Alive(),
	})

	g.pendingHits = 0
	g.lastSnap = g.game.Advance(deltaTime, game.PlayerState{
		X:             g.player.X,
		Y:             g.player.Y,
		Lives:         g.player.Lives,
		FireRequested: fireRequested,
		SpreadActive:  g.player.Spread > 0,
		Invulnerable:  g.player.Shield > 0,
	}, events)

	for i := 0; i < g.pendingHits; i++ {
		if g.player.Hit() {
			g.flash = flashDuration
		}
	}

	if g.bannerTimer > 0 {
		g.bannerTimer -= deltaTime
		if g.bannerTimer <= 0 {
			g.banner = ""
		}
	}
	if g.flash > 0 {
		g.flash -= deltaTime
	}

	if !g.player.Alive() {
		g.sm.SetState(NewGameOverState(g.sm, g.lastSnap.Score))
	}
}

// OnEvent reacts to core events dispatched during Advance.
func (g *GameState) OnEvent(e event.Event) {
	switch e.Type {
	case event.PlayerHit:
		g.pendingHits++
	case event.PowerUpCollected:
		kind, _ := e.Data.(string)
		g.applyPowerUp(kind)
	}
}

func (g *GameState) applyPowerUp(kind string) {
	switch kind {
	case component.PowerUpSpread:
		g.player.Spread = config.PowerUpDuration
		g.banner = "Power-up: Spread Shot"
	case component.PowerUpRapid:
		g.player.Rapid = config.PowerUpDuration
		g.banner = "Power-up: Rapid Fire"
	case component.PowerUpShield:
		if config.PowerUpDuration*0.6 > g.player.Shield {
			g.player.Shield = config.PowerUpDuration * 0.6
		}
		g.banner = "Power-up: Shield"
	case component.PowerUpMultiplier:
		// The multiplier itself is applied inside the core; the HUD shows
		// the current value next to the lives counter.
		g.banner = "Power-up: Score Multiplier"
	default:
		return
	}
	g.bannerTimer = bannerDuration
}

func (g *GameState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	g.starfield.Draw(screen)
	g.renderer.Draw(screen, g.lastSnap)
	if g.player.Alive() {
		g.renderer.DrawPlayer(screen, g.player.X, g.player.Y, g.player.Shield > 0)
	}
	g.hud.Draw(screen, g.lastSnap.Score, g.lastSnap.WaveNumber, g.player.Lives, g.lastSnap.Multiplier, g.banner, false)

	if g.flash > 0 {
		alpha := uint8(120 * (g.flash / flashDuration))
		vector.DrawFilledRect(screen, 0, 0, config.ScreenWidth, config.ScreenHeight, color.RGBA{255, 80, 90, alpha}, false)
	}
}

func (g *GameState) Exit() {}
