// internal/state/menu_state.go
package state

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	game "go-galactic-traveler/internal/app"
	"go-galactic-traveler/internal/config"
	"go-galactic-traveler/internal/ui"
)

// MenuState is the title screen.
type MenuState struct {
	sm        *StateMachine
	cfg       game.Config
	hud       *ui.HUD
	starfield *ui.Starfield
	blink     float64
}

func NewMenuState(sm *StateMachine, cfg game.Config) *MenuState {
	return &MenuState{
		sm:        sm,
		cfg:       cfg,
		hud:       ui.NewHUD(),
		starfield: ui.NewStarfield(190),
	}
}

func (m *MenuState) Enter() {}

func (m *MenuState) Update(deltaTime float64) {
	m.starfield.Update(deltaTime)
	m.blink += deltaTime
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		m.sm.SetState(NewGameState(m.sm, m.cfg))
	}
}

func (m *MenuState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	m.starfield.Draw(screen)

	m.hud.DrawCentered(screen, "GALACTIC TRAVELER", 160, config.ForegroundColor)
	m.hud.DrawCentered(screen, "Waves - Patterns - Power-ups - Multipliers", 230, config.SubtitleColor)
	if int(m.blink*2)%2 == 0 {
		m.hud.DrawCentered(screen, "Press ENTER to Start", 330, config.ForegroundColor)
	}
	m.hud.DrawCentered(screen, "Move: WASD/Arrows   Shoot: Space   Pause: P/Esc", config.ScreenHeight-90, config.HintColor)
}

func (m *MenuState) Exit() {}
